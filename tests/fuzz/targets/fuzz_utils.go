package targets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/funlam/internal/ast"
	"github.com/funvibe/funlam/internal/config"
	"github.com/funvibe/funlam/internal/diagnostics"
	"github.com/funvibe/funlam/internal/lexer"
	"github.com/funvibe/funlam/internal/parser"
	"github.com/funvibe/funlam/internal/pipeline"
)

// parse runs the front half of the pipeline on one source string.
func parse(input string) (ast.Term, []*diagnostics.DiagnosticError) {
	ctx := pipeline.NewPipelineContext(input)
	l := lexer.New(input)
	stream := lexer.NewTokenStream(l)
	p := parser.New(stream, ctx)
	term := p.ParseProgram()
	return term, ctx.Errors
}

// LoadCorpus loads all .lam files under the given directories and adds
// them to the fuzz corpus.
func LoadCorpus(f *testing.F, dirs ...string) {
	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && strings.HasSuffix(path, config.SourceFileExt) {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				f.Add(data)
			}
			return nil
		})
		if err != nil {
			// It's okay if we can't load the corpus, just log it
			f.Logf("Failed to load corpus from %s: %v", dir, err)
		}
	}
}

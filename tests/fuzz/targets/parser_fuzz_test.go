package targets

import (
	"testing"

	"github.com/funvibe/funlam/internal/lexer"
	"github.com/funvibe/funlam/internal/parser"
	"github.com/funvibe/funlam/internal/pipeline"
)

// FuzzParser is the entry point for fuzzing the parser. It feeds
// arbitrary bytes through the lexer and parser: malformed input must
// come back as diagnostics, never as a panic.
func FuzzParser(f *testing.F) {
	// Add seed corpus
	f.Add([]byte("(λx.x) (λy.y)"))
	f.Add([]byte("λ (λ 1)"))
	f.Add([]byte("(λf:(A)→B. (λx:A. (f x)))"))
	f.Add([]byte("(λx.x):(A)→A"))
	f.Add([]byte("(\\x.\\y.x)"))
	f.Add([]byte("((("))
	f.Add([]byte("λ 99999999999999999999"))
	LoadCorpus(f, "../../../tests")

	f.Fuzz(func(t *testing.T, data []byte) {
		input := string(data)

		ctx := pipeline.NewPipelineContext(input)
		l := lexer.New(input)
		stream := lexer.NewTokenStream(l)
		p := parser.New(stream, ctx)

		term := p.ParseProgram()

		// The parser's contract: exactly one of term and errors.
		if term == nil && len(ctx.Errors) == 0 {
			t.Fatalf("parser returned nil without reporting an error:\n%s", input)
		}
		if term != nil && len(ctx.Errors) > 0 {
			t.Fatalf("parser returned a term alongside errors: %v\n%s", ctx.Errors, input)
		}
	})
}

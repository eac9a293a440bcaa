// Package funlam embeds the evaluator in Go programs: one call parses,
// type-checks and reduces a source string and hands back the rendered
// result. The CLI in cmd/funlam is a thin shell over the same pipeline.
package funlam

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/funvibe/funlam/internal/analyzer"
	"github.com/funvibe/funlam/internal/ast"
	"github.com/funvibe/funlam/internal/lexer"
	"github.com/funvibe/funlam/internal/parser"
	"github.com/funvibe/funlam/internal/pipeline"
	"github.com/funvibe/funlam/internal/prettyprinter"
	"github.com/funvibe/funlam/internal/reducer"
)

// Options tunes one evaluation.
type Options struct {
	// MaxSteps caps the number of β-contractions. 0 means unbounded:
	// a diverging term spins until the caller kills the process.
	MaxSteps int
	// ASCII renders \ and -> instead of λ and →.
	ASCII bool
	// Trace, when set, receives one line per contraction.
	Trace io.Writer
}

// Result is a finished evaluation.
type Result struct {
	// Term is the reduced term in source notation. Feeding it back to
	// Eval returns the same term again.
	Term string
	// Type is the term's rendered type, or "" when the source never
	// opted into the typed variant.
	Type string
	// Steps counts the β-contractions performed.
	Steps int
}

// Eval parses, checks and reduces one source string with default options.
func Eval(source string) (*Result, error) {
	return EvalWithOptions(source, Options{})
}

// EvalWithOptions is Eval with a step budget, ASCII rendering or a
// trace writer.
func EvalWithOptions(source string, opts Options) (*Result, error) {
	ctx, err := frontend(source, "<eval>")
	if err != nil {
		return nil, err
	}
	return finish(ctx.Term, ctx.Typed, ctx.FilePath, opts)
}

// EvalFile reads path and evaluates its contents. Diagnostics carry
// the file path.
func EvalFile(path string, opts Options) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ctx, err := frontend(string(source), path)
	if err != nil {
		return nil, err
	}
	return finish(ctx.Term, ctx.Typed, ctx.FilePath, opts)
}

// Apply composes two sources as function and argument before checking
// and reducing, mirroring the CLI's -a flag. One annotated side makes
// the whole composed term typed.
func Apply(fnSource, argSource string, opts Options) (*Result, error) {
	fnCtx, err := frontend(fnSource, "<function>")
	if err != nil {
		return nil, err
	}
	argCtx, err := frontend(argSource, "<argument>")
	if err != nil {
		return nil, err
	}

	term := &ast.Application{
		Token:    fnCtx.Term.GetToken(),
		Function: fnCtx.Term,
		Argument: argCtx.Term,
	}
	return finish(term, fnCtx.Typed || argCtx.Typed, fnCtx.FilePath, opts)
}

// frontend runs lexing, parsing and the per-source type check. Each
// source's ascription is verified against that source's own term.
func frontend(source, path string) (*pipeline.PipelineContext, error) {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = path

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.TypeCheckProcessor{},
	)
	ctx = p.Run(ctx)
	if len(ctx.Errors) > 0 {
		return nil, combine(ctx)
	}
	return ctx, nil
}

// finish checks and reduces the composed term, mirroring the CLI's
// final stage. One annotated source makes the whole term typed.
func finish(term ast.Term, typed bool, path string, opts Options) (*Result, error) {
	ctx := pipeline.NewPipelineContext("")
	ctx.FilePath = path
	ctx.Term = term
	ctx.Typed = typed
	ctx.MaxSteps = opts.MaxSteps
	ctx.Trace = opts.Trace

	p := pipeline.New(
		&analyzer.TypeCheckProcessor{},
		&reducer.ReduceProcessor{},
	)
	ctx = p.Run(ctx)
	if len(ctx.Errors) > 0 {
		return nil, combine(ctx)
	}

	printer := prettyprinter.NewCodePrinter()
	if opts.ASCII {
		printer = prettyprinter.NewCodePrinterASCII()
	}

	res := &Result{Term: printer.Print(ctx.Term), Steps: ctx.Steps}
	if ctx.Typed && ctx.TermType != nil {
		res.Type = printer.TypeString(ctx.TermType)
	}
	return res, nil
}

// combine folds accumulated diagnostics into a single error, one line
// per diagnostic.
func combine(ctx *pipeline.PipelineContext) error {
	var sb strings.Builder
	sb.WriteString("evaluation failed:")
	for _, e := range ctx.Errors {
		sb.WriteString("\n- " + e.Error())
	}
	return fmt.Errorf("%s", sb.String())
}

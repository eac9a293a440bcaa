package analyzer

import (
	"errors"

	"github.com/funvibe/funlam/internal/diagnostics"
	"github.com/funvibe/funlam/internal/pipeline"
	"github.com/funvibe/funlam/internal/prettyprinter"
	"github.com/funvibe/funlam/internal/token"
)

// TypeCheckProcessor validates the term when the source opted into the
// typed variant. Untyped sources pass through untouched. The check
// runs on the term as parsed, before any reduction.
type TypeCheckProcessor struct{}

func (tp *TypeCheckProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Term == nil || len(ctx.Errors) > 0 || !ctx.Typed {
		return ctx
	}

	termType, err := TypeOf(ctx.Term)
	if err != nil {
		ctx.Errors = append(ctx.Errors, toDiagnostic(err))
	} else {
		ctx.TermType = termType
		if ctx.Ascription != nil && CheckAscription(termType, ctx.Ascription) != nil {
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(
				diagnostics.ErrT003, ctx.Term.GetToken(),
				termType.String(), ctx.Ascription.String()))
		}
	}

	// Ensure all errors have file path set
	for _, derr := range ctx.Errors {
		if derr.File == "" {
			derr.File = ctx.FilePath
		}
	}

	return ctx
}

func toDiagnostic(err error) *diagnostics.DiagnosticError {
	var appErr *InvalidApplicationError
	if errors.As(err, &appErr) {
		p := prettyprinter.NewCodePrinter()
		return diagnostics.NewError(
			diagnostics.ErrT001, appErr.Function.GetToken(),
			p.Print(appErr.Function), appErr.FunctionType.String(),
			p.Print(appErr.Argument), appErr.ArgumentType.String())
	}

	var annErr *MissingAnnotationError
	if errors.As(err, &annErr) {
		return diagnostics.NewError(diagnostics.ErrT002, annErr.Abstraction.GetToken())
	}

	return diagnostics.NewError("T000", token.Token{}, err.Error())
}

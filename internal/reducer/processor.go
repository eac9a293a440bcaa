package reducer

import (
	"github.com/funvibe/funlam/internal/diagnostics"
	"github.com/funvibe/funlam/internal/pipeline"
)

// ReduceProcessor is the pipeline stage that rewrites the parsed term
// to weak-head normal form, honoring the context's step limit and
// trace writer.
type ReduceProcessor struct{}

func (rp *ReduceProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Term == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	r := NewWithLimit(ctx.MaxSteps)
	if ctx.Trace != nil {
		r.SetTrace(ctx.Trace)
	}

	reduced, err := r.Reduce(ctx.Term)
	ctx.Steps = r.Steps()
	if err != nil {
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(
			diagnostics.ErrR001, ctx.Term.GetToken(), err.Error()))
		// Ensure all errors have file path set
		for _, derr := range ctx.Errors {
			if derr.File == "" {
				derr.File = ctx.FilePath
			}
		}
		return ctx
	}

	ctx.Term = reduced
	return ctx
}

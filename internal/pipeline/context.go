package pipeline

import (
	"io"

	"github.com/funvibe/funlam/internal/ast"
	"github.com/funvibe/funlam/internal/diagnostics"
	"github.com/funvibe/funlam/internal/token"
	"github.com/funvibe/funlam/internal/typesystem"
)

// Processor is a single pipeline stage. Stages read and extend the
// shared context and must not mutate results produced by earlier
// stages.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one term through lexing, parsing,
// type checking and reduction.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	TokenStream *token.Stream

	// Term is the parsed (and later the reduced) term tree.
	Term ast.Term

	// Ascription is the optional top-level ": type" the source
	// carried. The checker verifies it against the computed type.
	Ascription typesystem.Type

	// Typed is set by the parser when the source carries any type
	// annotation or ascription; it selects the typed variant.
	Typed bool

	// TermType is the checked type of the original term (typed mode).
	TermType typesystem.Type

	// MaxSteps bounds reduction; 0 means unbounded. Steps reports the
	// β-contractions actually performed.
	MaxSteps int
	Steps    int

	// Trace, when non-nil, receives one rendered line per contraction.
	Trace io.Writer

	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{SourceCode: sourceCode}
}

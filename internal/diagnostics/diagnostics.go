package diagnostics

import (
	"fmt"

	"github.com/funvibe/funlam/internal/token"
)

// ErrorCode identifies a diagnostic kind. L-codes come from the lexer,
// P-codes from the parser, T-codes from the type checker and R-codes
// from reduction.
type ErrorCode string

const (
	ErrL001 ErrorCode = "L001" // illegal character
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // expected X, got Y
	ErrP003 ErrorCode = "P003" // unbound variable
	ErrP004 ErrorCode = "P004" // de Bruijn index out of range
	ErrP005 ErrorCode = "P005" // nesting depth limit exceeded
	ErrP006 ErrorCode = "P006" // trailing input after term
	ErrT001 ErrorCode = "T001" // invalid application
	ErrT002 ErrorCode = "T002" // missing type annotation
	ErrT003 ErrorCode = "T003" // ascription mismatch
	ErrR001 ErrorCode = "R001" // reduction error
)

var messageTemplates = map[ErrorCode]string{
	ErrL001: "illegal character %q",
	ErrP001: "unexpected token '%s'",
	ErrP002: "expected %s, got '%s'",
	ErrP003: "unbound variable '%s'",
	ErrP004: "index %d exceeds binder depth %d",
	ErrP005: "term nesting too deep (limit %d)",
	ErrP006: "unexpected trailing input '%s'",
	ErrT001: "attempted to apply term (%s):%s to term (%s):%s",
	ErrT002: "abstraction argument has no type annotation",
	ErrT003: "term has type %s, but is ascribed type %s",
	ErrR001: "%s",
}

// DiagnosticError is a positioned error with a stable code. File is
// filled in by the pipeline once the source path is known.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
	Column  int
	Offset  int
	Length  int
}

// NewError builds a diagnostic from a code, the offending token and the
// arguments of the code's message template. Unknown codes pass their
// first argument through as the message.
func NewError(code ErrorCode, tok token.Token, args ...any) *DiagnosticError {
	template, ok := messageTemplates[code]
	if !ok {
		template = "%s"
	}
	return &DiagnosticError{
		Code:    code,
		Message: fmt.Sprintf(template, args...),
		Line:    tok.Line,
		Column:  tok.Column,
		Offset:  tok.Offset,
		Length:  len(tok.Lexeme),
	}
}

func (e *DiagnosticError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	if e.File == "" {
		return fmt.Sprintf("[%s] %d:%d: %s", e.Code, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("[%s] %s:%d:%d: %s", e.Code, e.File, e.Line, e.Column, e.Message)
}

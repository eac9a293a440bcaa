package analyzer

import (
	"fmt"

	"github.com/funvibe/funlam/internal/ast"
	"github.com/funvibe/funlam/internal/prettyprinter"
	"github.com/funvibe/funlam/internal/typesystem"
)

// InvalidApplicationError reports an application whose function side is
// not a function of the argument's type. Both sub-terms and both
// computed types are carried so callers can render either side.
type InvalidApplicationError struct {
	Function     ast.Term
	FunctionType typesystem.Type
	Argument     ast.Term
	ArgumentType typesystem.Type
}

func (e *InvalidApplicationError) Error() string {
	p := prettyprinter.NewCodePrinter()
	return fmt.Sprintf("attempted to apply term (%s):%s to term (%s):%s",
		p.Print(e.Function), e.FunctionType, p.Print(e.Argument), e.ArgumentType)
}

// MissingAnnotationError reports an abstraction without a type
// annotation reached in typed mode. Types are never inferred.
type MissingAnnotationError struct {
	Abstraction *ast.Abstraction
}

func (e *MissingAnnotationError) Error() string {
	return "abstraction argument has no type annotation"
}

// AscriptionError reports a term whose computed type differs from the
// type it was ascribed.
type AscriptionError struct {
	Computed typesystem.Type
	Ascribed typesystem.Type
}

func (e *AscriptionError) Error() string {
	return fmt.Sprintf("term has type %s, but is ascribed type %s", e.Computed, e.Ascribed)
}

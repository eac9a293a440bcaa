// Package analyzer implements the simply typed checking rules. It
// validates the term as parsed; checking before reduction means a
// well-typed result is guaranteed by preservation, not re-verified.
package analyzer

import (
	"fmt"

	"github.com/funvibe/funlam/internal/ast"
	"github.com/funvibe/funlam/internal/symbols"
	"github.com/funvibe/funlam/internal/typesystem"
)

// TypeOf computes the type of a closed term. It returns
// *MissingAnnotationError for an unannotated abstraction and
// *InvalidApplicationError for an application that does not type-check.
func TypeOf(term ast.Term) (typesystem.Type, error) {
	return typeOf(term, symbols.NewTypeEnv())
}

func typeOf(term ast.Term, env symbols.TypeEnv) (typesystem.Type, error) {
	switch t := term.(type) {
	case *ast.Variable:
		typ, ok := env.Lookup(t.Idx)
		if !ok {
			panic(fmt.Sprintf("analyzer: variable %d out of scope", t.Idx))
		}
		return typ, nil

	case *ast.Abstraction:
		if t.ArgType == nil {
			return nil, &MissingAnnotationError{Abstraction: t}
		}
		bodyType, err := typeOf(t.Body, env.Push(t.ArgType))
		if err != nil {
			return nil, err
		}
		return typesystem.Function{Argument: t.ArgType, Return: bodyType}, nil

	case *ast.Application:
		fnType, err := typeOf(t.Function, env)
		if err != nil {
			return nil, err
		}
		argType, err := typeOf(t.Argument, env)
		if err != nil {
			return nil, err
		}

		fn, ok := fnType.(typesystem.Function)
		if !ok || !typesystem.Equal(fn.Argument, argType) {
			return nil, &InvalidApplicationError{
				Function:     t.Function,
				FunctionType: fnType,
				Argument:     t.Argument,
				ArgumentType: argType,
			}
		}
		return fn.Return, nil
	}

	panic(fmt.Sprintf("analyzer: unknown term %T", term))
}

// CheckAscription verifies a computed type against an ascribed one.
func CheckAscription(computed, ascribed typesystem.Type) error {
	if !typesystem.Equal(computed, ascribed) {
		return &AscriptionError{Computed: computed, Ascribed: ascribed}
	}
	return nil
}

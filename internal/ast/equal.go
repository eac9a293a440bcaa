package ast

import "github.com/funvibe/funlam/internal/typesystem"

// Equal reports structural equality of two terms: indices, annotation
// types and tree shape. Source tokens are ignored, so terms from
// different spellings of the same program compare equal.
func Equal(a, b Term) bool {
	switch at := a.(type) {
	case *Variable:
		bt, ok := b.(*Variable)
		return ok && at.Idx == bt.Idx
	case *Abstraction:
		bt, ok := b.(*Abstraction)
		if !ok {
			return false
		}
		if (at.ArgType == nil) != (bt.ArgType == nil) {
			return false
		}
		if at.ArgType != nil && !typesystem.Equal(at.ArgType, bt.ArgType) {
			return false
		}
		return Equal(at.Body, bt.Body)
	case *Application:
		bt, ok := b.(*Application)
		return ok && Equal(at.Function, bt.Function) && Equal(at.Argument, bt.Argument)
	}
	return false
}

package ast

import (
	"github.com/funvibe/funlam/internal/token"
	"github.com/funvibe/funlam/internal/typesystem"
)

// TokenProvider is an interface for any node that can provide its
// primary token. Used by error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all term nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Term is a node of the lambda term tree. Exactly three forms exist:
// Variable, Abstraction and Application. Terms are immutable once
// built; reduction and substitution construct new trees.
type Term interface {
	Node
	termNode()
	GetToken() token.Token
}

// Variable is a bound variable, identified by its de Bruijn index:
// the number of abstractions between the occurrence and its binder,
// 0 for the innermost. The parser never produces an index that
// escapes its enclosing binders.
type Variable struct {
	Token token.Token // the IDENT or INDEX token
	Idx   int
}

func (v *Variable) Accept(vis Visitor)   { vis.VisitVariable(v) }
func (v *Variable) termNode()            {}
func (v *Variable) TokenLiteral() string { return v.Token.Lexeme }
func (v *Variable) GetToken() token.Token {
	if v == nil {
		return token.Token{}
	}
	return v.Token
}

// Abstraction introduces exactly one binder. ArgType is nil for
// untyped terms and mandatory in typed mode; there is no inference.
type Abstraction struct {
	Token   token.Token // the LAMBDA token
	ArgType typesystem.Type
	Body    Term
}

func (a *Abstraction) Accept(vis Visitor)   { vis.VisitAbstraction(a) }
func (a *Abstraction) termNode()            {}
func (a *Abstraction) TokenLiteral() string { return a.Token.Lexeme }
func (a *Abstraction) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Token
}

// Application applies Function to Argument. n-ary surface
// applications desugar left-associatively into nested binary nodes
// before this type is ever constructed.
type Application struct {
	Token    token.Token // the token that opened the application
	Function Term
	Argument Term
}

func (ap *Application) Accept(vis Visitor)   { vis.VisitApplication(ap) }
func (ap *Application) termNode()            {}
func (ap *Application) TokenLiteral() string { return ap.Token.Lexeme }
func (ap *Application) GetToken() token.Token {
	if ap == nil {
		return token.Token{}
	}
	return ap.Token
}

// Visitor dispatches over the three term forms.
type Visitor interface {
	VisitVariable(v *Variable)
	VisitAbstraction(a *Abstraction)
	VisitApplication(ap *Application)
}

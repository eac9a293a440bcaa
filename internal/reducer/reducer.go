// Package reducer implements normal-order β-reduction of de Bruijn
// terms to weak-head normal form.
package reducer

import (
	"fmt"
	"io"

	"github.com/funvibe/funlam/internal/ast"
	"github.com/funvibe/funlam/internal/prettyprinter"
)

// StepLimitError reports that reduction did not reach weak-head normal
// form within the configured number of β-contractions.
type StepLimitError struct {
	Limit int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("reduction exceeded %d steps", e.Limit)
}

// Reducer rewrites terms to weak-head normal form. The zero value
// reduces without a step limit and without tracing.
type Reducer struct {
	maxSteps int
	steps    int
	trace    io.Writer
	printer  *prettyprinter.CodePrinter
}

func New() *Reducer {
	return &Reducer{}
}

// NewWithLimit bounds reduction to maxSteps β-contractions. A limit of
// 0 means unbounded.
func NewWithLimit(maxSteps int) *Reducer {
	return &Reducer{maxSteps: maxSteps}
}

// SetTrace makes the reducer write one line per contraction: the step
// number and the sub-term that replaced the redex.
func (r *Reducer) SetTrace(w io.Writer) {
	r.trace = w
}

// Steps reports how many contractions the last Reduce performed.
func (r *Reducer) Steps() int { return r.steps }

// Reduce rewrites term to weak-head normal form: the leftmost
// outermost redex is contracted until the term is an abstraction or a
// variable. Arguments are substituted unreduced, so an argument the
// function discards is never entered.
//
// Reduce does not terminate on diverging terms unless a step limit is
// set. It panics if an application head reduces to something that
// cannot be applied, which no closed term produces.
func (r *Reducer) Reduce(term ast.Term) (ast.Term, error) {
	r.steps = 0
	return r.reduce(term)
}

func (r *Reducer) reduce(term ast.Term) (ast.Term, error) {
	for {
		app, ok := term.(*ast.Application)
		if !ok {
			return term, nil
		}

		fn, err := r.reduce(app.Function)
		if err != nil {
			return nil, err
		}

		abs, ok := fn.(*ast.Abstraction)
		if !ok {
			panic(fmt.Sprintf("reducer: application head is %s, not an abstraction", r.render(fn)))
		}

		if r.maxSteps > 0 && r.steps >= r.maxSteps {
			return nil, &StepLimitError{Limit: r.maxSteps}
		}
		r.steps++

		term = Substitute(abs.Body, 0, app.Argument)
		if r.trace != nil {
			fmt.Fprintf(r.trace, "step %d: %s\n", r.steps, r.render(term))
		}
	}
}

func (r *Reducer) render(t ast.Term) string {
	if r.printer == nil {
		r.printer = prettyprinter.NewCodePrinter()
	}
	return r.printer.Print(t)
}

// Substitute replaces every occurrence of the variable with de Bruijn
// index idx in term by replacement, adding one to idx for each binder
// crossed. The replacement is inserted as-is, without index shifting.
// The input term is not modified; unaffected subtrees are shared with
// the result.
func Substitute(term ast.Term, idx int, replacement ast.Term) ast.Term {
	switch t := term.(type) {
	case *ast.Variable:
		if t.Idx == idx {
			return replacement
		}
		return t
	case *ast.Abstraction:
		return &ast.Abstraction{
			Token:   t.Token,
			ArgType: t.ArgType,
			Body:    Substitute(t.Body, idx+1, replacement),
		}
	case *ast.Application:
		return &ast.Application{
			Token:    t.Token,
			Function: Substitute(t.Function, idx, replacement),
			Argument: Substitute(t.Argument, idx, replacement),
		}
	}
	panic(fmt.Sprintf("reducer: unknown term %T", term))
}

package mutator

import (
	"math/rand"

	"github.com/funvibe/funlam/internal/ast"
	"github.com/funvibe/funlam/internal/typesystem"
)

// TermMutator applies random mutations to a term tree. Every mutation
// keeps the term closed: indices stay below the enclosing binder
// count, so a mutated term always prints back to parseable source.
type TermMutator struct {
	rnd *rand.Rand
}

// NewTermMutator creates a new TermMutator with the given seed.
func NewTermMutator(seed int64) *TermMutator {
	return &TermMutator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Mutate rewrites one random spot in the term, in place.
func (m *TermMutator) Mutate(term ast.Term) {
	m.mutate(term, 0)
}

func (m *TermMutator) mutate(term ast.Term, depth int) {
	switch t := term.(type) {
	case *ast.Variable:
		// Retarget the variable at another enclosing binder.
		if depth > 0 {
			t.Idx = m.rnd.Intn(depth)
		}
	case *ast.Abstraction:
		switch m.rnd.Intn(5) {
		case 0:
			t.ArgType = m.randomType(0)
		case 1:
			t.ArgType = nil
		default:
			m.mutate(t.Body, depth+1)
		}
	case *ast.Application:
		switch m.rnd.Intn(5) {
		case 0:
			// Both sides see the same binders, so the swap is safe.
			t.Function, t.Argument = t.Argument, t.Function
		case 1, 2:
			m.mutate(t.Function, depth)
		default:
			m.mutate(t.Argument, depth)
		}
	}
}

func (m *TermMutator) randomType(depth int) typesystem.Type {
	if depth >= 2 || m.rnd.Intn(2) == 0 {
		names := []string{"A", "B", "C"}
		return typesystem.Base{Name: names[m.rnd.Intn(len(names))]}
	}
	return typesystem.Function{
		Argument: m.randomType(depth + 1),
		Return:   m.randomType(depth + 1),
	}
}

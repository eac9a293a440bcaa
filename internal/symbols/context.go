// symbols/context.go - Binding contexts for the two resolution phases
//
// The parser maps surface identifiers to de Bruijn indices, the type
// checker maps indices back to declared types. Both contexts are
// transient: they live for a single parse or check call and are
// extended copy-on-write so sibling branches of an application can
// never observe each other's bindings.

package symbols

import (
	"github.com/samber/lo"

	"github.com/funvibe/funlam/internal/typesystem"
)

// Bindings is the parser-time context: surface name → de Bruijn index
// under the current binder depth. The zero value is not usable; start
// from NewBindings.
type Bindings struct {
	names map[string]int
	depth int
}

func NewBindings() Bindings {
	return Bindings{names: map[string]int{}}
}

// Extend returns a new context one binder deeper: every existing index
// shifts by one and the new binder, when named, is installed at 0.
// Shadowing falls out of the map overwrite. The receiver is unchanged.
func (b Bindings) Extend(name string) Bindings {
	shifted := lo.MapValues(b.names, func(idx int, _ string) int {
		return idx + 1
	})
	if name != "" {
		shifted[name] = 0
	}
	return Bindings{names: shifted, depth: b.depth + 1}
}

// Lookup resolves a surface identifier to its index.
func (b Bindings) Lookup(name string) (int, bool) {
	idx, ok := b.names[name]
	return idx, ok
}

// Depth is the number of enclosing binders. A literal index token is
// valid only when strictly below this.
func (b Bindings) Depth() int {
	return b.depth
}

// TypeEnv is the checker-time context: declared types ordered from the
// outermost binder to the innermost, so index i resolves to position
// len-1-i. Extended copy-on-write like Bindings.
type TypeEnv struct {
	types []typesystem.Type
}

func NewTypeEnv() TypeEnv {
	return TypeEnv{}
}

// Push returns a new environment with t bound at the innermost
// position. The receiver is unchanged.
func (e TypeEnv) Push(t typesystem.Type) TypeEnv {
	extended := make([]typesystem.Type, len(e.types)+1)
	copy(extended, e.types)
	extended[len(e.types)] = t
	return TypeEnv{types: extended}
}

// Lookup resolves a de Bruijn index to its declared type.
func (e TypeEnv) Lookup(idx int) (typesystem.Type, bool) {
	pos := len(e.types) - 1 - idx
	if idx < 0 || pos < 0 {
		return nil, false
	}
	return e.types[pos], true
}

// Depth is the number of bound types.
func (e TypeEnv) Depth() int {
	return len(e.types)
}

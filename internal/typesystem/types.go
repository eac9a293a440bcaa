package typesystem

// Type is the interface for all types in the simply typed calculus.
// There are exactly two forms: opaque base types and function types.
// No inference, no variables, no subtyping; equality is structural.
type Type interface {
	String() string
	typeNode()
}

// Base is an atomic type identified only by its name.
type Base struct {
	Name string
}

func (t Base) typeNode() {}

func (t Base) String() string {
	return t.Name
}

// Function is the type of an abstraction. The arrow is right-associative:
// (A)→(B)→C associates as (A)→((B)→C).
type Function struct {
	Argument Type
	Return   Type
}

func (t Function) typeNode() {}

// String renders the type in the surface notation. The argument side is
// always parenthesized so the output re-parses unambiguously.
func (t Function) String() string {
	return "(" + t.Argument.String() + ")→" + t.Return.String()
}

// Equal reports structural equality: base types match by name, function
// types component-wise. A nil type never equals anything.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}
	switch at := a.(type) {
	case Base:
		bt, ok := b.(Base)
		return ok && at.Name == bt.Name
	case Function:
		bt, ok := b.(Function)
		return ok && Equal(at.Argument, bt.Argument) && Equal(at.Return, bt.Return)
	}
	return false
}

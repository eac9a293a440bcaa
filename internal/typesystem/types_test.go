package typesystem

import "testing"

// -----------------------------------------------------------------------------
// Structural equality
// -----------------------------------------------------------------------------

func TestEqual(t *testing.T) {
	a := Base{Name: "A"}
	b := Base{Name: "B"}

	tests := []struct {
		name string
		x, y Type
		want bool
	}{
		{"same base", a, Base{Name: "A"}, true},
		{"different base", a, b, false},
		{"base vs function", a, Function{Argument: a, Return: a}, false},
		{"same function", Function{Argument: a, Return: b}, Function{Argument: a, Return: b}, true},
		{"different argument", Function{Argument: a, Return: b}, Function{Argument: b, Return: b}, false},
		{"different return", Function{Argument: a, Return: a}, Function{Argument: a, Return: b}, false},
		{
			"nested right association",
			Function{Argument: a, Return: Function{Argument: b, Return: a}},
			Function{Argument: a, Return: Function{Argument: b, Return: a}},
			true,
		},
		{
			"nested left vs right",
			Function{Argument: Function{Argument: a, Return: b}, Return: a},
			Function{Argument: a, Return: Function{Argument: b, Return: a}},
			false,
		},
		{"nil left", nil, a, false},
		{"nil right", a, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.x, tt.y); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	a := Base{Name: "A"}
	b := Base{Name: "B"}
	c := Base{Name: "C"}

	tests := []struct {
		typ  Type
		want string
	}{
		{a, "A"},
		{Function{Argument: a, Return: b}, "(A)→B"},
		{Function{Argument: a, Return: Function{Argument: b, Return: c}}, "(A)→(B)→C"},
		{Function{Argument: Function{Argument: a, Return: b}, Return: c}, "((A)→B)→C"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

package generators

import (
	"fmt"
	"math/rand"
	"strings"
)

// RandomSource abstracts the source of randomness.
type RandomSource interface {
	Intn(n int) int
}

// RandSource wraps math/rand.
type RandSource struct {
	*rand.Rand
}

// ByteSource uses a byte slice as a source of randomness. Once the
// bytes run out every draw returns 0, which steers the generator
// toward the smallest forms.
type ByteSource struct {
	data []byte
	pos  int
}

func (s *ByteSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

const MaxDepth = 6

var binderNames = []string{"x", "y", "z", "f", "g", "s", "arg"}

var baseTypes = []string{"A", "B", "C", "Int", "Bool"}

// Generator produces random source text that is always a well-formed
// term: groups hold at least two items, indices stay below the binder
// depth, and names refer to enclosing binders only. Binder markers,
// arrows, comments and whitespace vary freely.
type Generator struct {
	src   RandomSource
	depth int
	scope []string // binder names, innermost last; "" for nameless binders
}

func New(seed int64) *Generator {
	return &Generator{src: &RandSource{rand.New(rand.NewSource(seed))}}
}

func NewFromData(data []byte) *Generator {
	return &Generator{src: &ByteSource{data: data}}
}

// GenerateProgram emits one top-level unit: a term or an application
// sequence, sometimes ascribed, with noise mixed in.
func (g *Generator) GenerateProgram() string {
	var sb strings.Builder
	sb.WriteString(g.GenerateNoise())

	count := g.src.Intn(3) + 1
	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteString(g.separator())
		}
		sb.WriteString(g.GenerateTerm())
	}

	// Ascription is only legal once, at the very top.
	if g.src.Intn(5) == 0 {
		sb.WriteString(":" + g.GenerateType())
	}

	sb.WriteString(g.GenerateNoise())
	return sb.String()
}

func (g *Generator) GenerateTerm() string {
	if g.depth > MaxDepth {
		return g.generateLeaf()
	}
	g.depth++
	defer func() { g.depth-- }()

	choice := g.src.Intn(10)
	switch {
	case choice < 4:
		return g.generateAbstraction()
	case choice < 7:
		return g.generateGroup()
	default:
		return g.generateLeaf()
	}
}

// generateLeaf emits a variable when a binder is in scope and a tiny
// closed term otherwise.
func (g *Generator) generateLeaf() string {
	if len(g.scope) == 0 {
		return []string{"(λx.x)", "(λ 0)", "(λ:A. 0)"}[g.src.Intn(3)]
	}

	if g.src.Intn(2) == 0 {
		var named []string
		for _, name := range g.scope {
			if name != "" {
				named = append(named, name)
			}
		}
		if len(named) > 0 {
			return named[g.src.Intn(len(named))]
		}
	}
	return fmt.Sprintf("%d", g.src.Intn(len(g.scope)))
}

func (g *Generator) generateAbstraction() string {
	marker := "λ"
	if g.src.Intn(4) == 0 {
		marker = "\\"
	}

	name := ""
	head := marker
	switch g.src.Intn(4) {
	case 0:
		name = binderNames[g.src.Intn(len(binderNames))]
		head += name + "."
	case 1:
		name = binderNames[g.src.Intn(len(binderNames))]
		head += name + ":" + g.GenerateType() + "."
	case 2:
		head += ":" + g.GenerateType() + "."
	case 3:
		// bare marker, the body follows directly
	}

	g.scope = append(g.scope, name)
	body := g.GenerateTerm()
	g.scope = g.scope[:len(g.scope)-1]

	return "(" + head + " " + body + ")"
}

func (g *Generator) generateGroup() string {
	count := g.src.Intn(2) + 2
	parts := make([]string, count)
	for i := range parts {
		parts[i] = g.GenerateTerm()
	}
	return "(" + strings.Join(parts, g.separator()) + ")"
}

func (g *Generator) GenerateType() string {
	if g.depth > MaxDepth || g.src.Intn(3) < 2 {
		return baseTypes[g.src.Intn(len(baseTypes))]
	}
	g.depth++
	defer func() { g.depth-- }()

	arrow := "→"
	if g.src.Intn(4) == 0 {
		arrow = "->"
	}
	switch g.src.Intn(3) {
	case 0:
		return "(" + g.GenerateType() + ")" + arrow + g.GenerateType()
	case 1:
		return g.GenerateType() + arrow + g.GenerateType()
	default:
		return "(" + g.GenerateType() + ")"
	}
}

// separator joins terms with plain spaces most of the time, sometimes
// with newlines or a comment to stress the lexer.
func (g *Generator) separator() string {
	switch g.src.Intn(8) {
	case 0:
		return "\n  "
	case 1:
		return " # gap\n  "
	default:
		return " "
	}
}

func (g *Generator) GenerateNoise() string {
	if g.src.Intn(10) != 0 {
		return ""
	}
	switch g.src.Intn(4) {
	case 0:
		return " "
	case 1:
		return "\t"
	case 2:
		return "\n"
	default:
		return "# noise\n"
	}
}

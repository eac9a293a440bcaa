package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/funlam/internal/ast"
)

// --- Tree Printer (structural debug output) ---

// TreePrinter renders the term tree one node per line with two-space
// indentation. The output shows the exact structure the engine
// operates on and is not meant to re-parse.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (tp *TreePrinter) String() string {
	return tp.buf.String()
}

// Print renders one term. The buffer is reset first.
func (tp *TreePrinter) Print(term ast.Term) string {
	tp.buf.Reset()
	tp.indent = 0
	term.Accept(tp)
	return tp.buf.String()
}

func (tp *TreePrinter) VisitVariable(v *ast.Variable) {
	fmt.Fprintf(&tp.buf, "Variable(%d)", v.Idx)
}

func (tp *TreePrinter) VisitAbstraction(a *ast.Abstraction) {
	tp.buf.WriteString("Abstraction")
	tp.indent++
	if a.ArgType != nil {
		tp.newlineIndent()
		tp.buf.WriteString("ArgType: ")
		tp.buf.WriteString(a.ArgType.String())
	}
	tp.newlineIndent()
	tp.buf.WriteString("Body: ")
	a.Body.Accept(tp)
	tp.indent--
}

func (tp *TreePrinter) VisitApplication(ap *ast.Application) {
	tp.buf.WriteString("Application")
	tp.indent++
	tp.newlineIndent()
	tp.buf.WriteString("Function: ")
	ap.Function.Accept(tp)
	tp.newlineIndent()
	tp.buf.WriteString("Argument: ")
	ap.Argument.Accept(tp)
	tp.indent--
}

func (tp *TreePrinter) newlineIndent() {
	tp.buf.WriteString("\n")
	tp.buf.WriteString(strings.Repeat("  ", tp.indent))
}

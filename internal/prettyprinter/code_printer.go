package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/funvibe/funlam/internal/ast"
	"github.com/funvibe/funlam/internal/typesystem"
)

// --- Code Printer (output is valid source) ---

// CodePrinter renders a term back into the surface syntax. Variables
// print as their de Bruijn index and abstractions as nameless lambda
// forms, so the output references binders by position, never by a
// reconstructed name. Composite children are parenthesized, which
// keeps the output unambiguous under the same grammar that produced
// the term.
type CodePrinter struct {
	buf   bytes.Buffer
	ascii bool
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// NewCodePrinterASCII renders \ and -> instead of λ and →.
func NewCodePrinterASCII() *CodePrinter {
	return &CodePrinter{ascii: true}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

// Print renders one term. The buffer is reset first, so a printer can
// be reused.
func (p *CodePrinter) Print(term ast.Term) string {
	p.buf.Reset()
	term.Accept(p)
	return p.buf.String()
}

// TypeString renders a type in this printer's alphabet. The argument
// side of an arrow is always parenthesized so the result re-parses
// without precedence rules.
func (p *CodePrinter) TypeString(t typesystem.Type) string {
	var buf bytes.Buffer
	p.writeType(&buf, t)
	return buf.String()
}

func (p *CodePrinter) VisitVariable(v *ast.Variable) {
	p.buf.WriteString(strconv.Itoa(v.Idx))
}

func (p *CodePrinter) VisitAbstraction(a *ast.Abstraction) {
	if p.ascii {
		p.buf.WriteString("\\")
	} else {
		p.buf.WriteString("λ")
	}
	if a.ArgType != nil {
		p.buf.WriteString(":")
		p.writeType(&p.buf, a.ArgType)
		p.buf.WriteString(".")
	}
	p.buf.WriteString(" ")
	p.printChild(a.Body)
}

func (p *CodePrinter) VisitApplication(ap *ast.Application) {
	p.printChild(ap.Function)
	p.buf.WriteString(" ")
	p.printChild(ap.Argument)
}

// printChild wraps abstractions and applications in parentheses;
// a bare variable needs none.
func (p *CodePrinter) printChild(t ast.Term) {
	if isComposite(t) {
		p.buf.WriteString("(")
		t.Accept(p)
		p.buf.WriteString(")")
	} else {
		t.Accept(p)
	}
}

func isComposite(t ast.Term) bool {
	switch t.(type) {
	case *ast.Abstraction, *ast.Application:
		return true
	}
	return false
}

func (p *CodePrinter) writeType(buf *bytes.Buffer, t typesystem.Type) {
	switch typ := t.(type) {
	case typesystem.Base:
		buf.WriteString(typ.Name)
	case typesystem.Function:
		buf.WriteString("(")
		p.writeType(buf, typ.Argument)
		if p.ascii {
			buf.WriteString(")->")
		} else {
			buf.WriteString(")→")
		}
		p.writeType(buf, typ.Return)
	}
}

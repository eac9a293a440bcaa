package parser

import (
	"github.com/funvibe/funlam/internal/diagnostics"
	"github.com/funvibe/funlam/internal/token"
	"github.com/funvibe/funlam/internal/typesystem"
)

// parseType parses a type expression. The arrow is right-associative:
// A→B→C parses as A→(B→C). Both → and -> are accepted.
func (p *Parser) parseType() typesystem.Type {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP005, p.curToken, MaxRecursionDepth))
		return nil
	}

	atom := p.parseTypeAtom()
	if atom == nil {
		return nil
	}

	if p.peekTokenIs(token.ARROW) {
		p.nextToken() // the arrow
		p.nextToken() // first token of the return type
		ret := p.parseType()
		if ret == nil {
			return nil
		}
		return typesystem.Function{Argument: atom, Return: ret}
	}

	return atom
}

func (p *Parser) parseTypeAtom() typesystem.Type {
	switch p.curToken.Type {
	case token.IDENT:
		return typesystem.Base{Name: p.curToken.Lexeme}
	case token.LPAREN:
		p.nextToken()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return inner
	default:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002, p.curToken, "a type", describe(p.curToken)))
		return nil
	}
}

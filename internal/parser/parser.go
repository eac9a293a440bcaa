package parser

import (
	"github.com/funvibe/funlam/internal/ast"
	"github.com/funvibe/funlam/internal/diagnostics"
	"github.com/funvibe/funlam/internal/pipeline"
	"github.com/funvibe/funlam/internal/symbols"
	"github.com/funvibe/funlam/internal/token"
	"github.com/funvibe/funlam/internal/typesystem"
)

// MaxRecursionDepth bounds term and type nesting so a hostile input
// produces a diagnostic instead of a stack overflow.
const MaxRecursionDepth = 10000

// Parser builds a term tree from a token stream, resolving surface
// identifiers to de Bruijn indices as it descends. Every parse
// function is entered with curToken on its first token and returns
// with curToken on its last.
type Parser struct {
	stream *token.Stream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	depth int
}

func New(stream *token.Stream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP002,
		p.peekToken,
		"'"+string(t)+"'",
		describe(p.peekToken),
	))
	return false
}

// describe renders a token for an error message.
func describe(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of input"
	}
	return tok.Lexeme
}

// ParseProgram parses a whole source: one term, an optional ": type"
// ascription, then end of input. The top level accepts an
// unparenthesized application sequence because that is exactly what
// the printer emits, so printed output is always valid input.
func (p *Parser) ParseProgram() ast.Term {
	if p.curTokenIs(token.EOF) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002, p.curToken, "a term", "end of input"))
		return nil
	}

	term := p.parseApplicationSeq(symbols.NewBindings(), token.COLON)
	if term == nil {
		return nil
	}

	if p.peekTokenIs(token.COLON) {
		p.nextToken() // the ':'
		p.nextToken() // first type token
		ascription := p.parseType()
		if ascription == nil {
			return nil
		}
		p.ctx.Ascription = ascription
		p.ctx.Typed = true
	}

	if !p.peekTokenIs(token.EOF) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP006, p.peekToken, describe(p.peekToken)))
		return nil
	}

	return term
}

// parseApplicationSeq parses one or more adjacent terms and folds them
// left-associatively into nested applications, so "f a b" builds
// ((f a) b). Parsing stops before EOF or any stop token.
func (p *Parser) parseApplicationSeq(b symbols.Bindings, stop ...token.TokenType) ast.Term {
	result := p.parseTerm(b)
	if result == nil {
		return nil
	}

	for !p.peekTokenIs(token.EOF) && !p.peekIsAny(stop) {
		p.nextToken()
		next := p.parseTerm(b)
		if next == nil {
			return nil
		}
		result = &ast.Application{Token: result.GetToken(), Function: result, Argument: next}
	}

	return result
}

func (p *Parser) peekIsAny(types []token.TokenType) bool {
	for _, t := range types {
		if p.peekToken.Type == t {
			return true
		}
	}
	return false
}

// parseTerm parses exactly one term: a variable, an index, a
// parenthesized group or a lambda form.
func (p *Parser) parseTerm(b symbols.Bindings) ast.Term {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP005, p.curToken, MaxRecursionDepth))
		return nil
	}

	switch p.curToken.Type {
	case token.IDENT:
		return p.parseVariable(b)
	case token.INDEX:
		return p.parseIndexVariable(b)
	case token.LPAREN:
		return p.parseGroup(b)
	case token.LAMBDA:
		return p.parseLambdaForm(b)
	case token.ILLEGAL:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrL001, p.curToken, p.curToken.Lexeme))
		return nil
	case token.EOF:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002, p.curToken, "a term", "end of input"))
		return nil
	default:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001, p.curToken, p.curToken.Lexeme))
		return nil
	}
}

// parseVariable resolves a named variable against the binding context.
// The grammar admits no free variables: an unknown name is an error,
// not a fresh global.
func (p *Parser) parseVariable(b symbols.Bindings) ast.Term {
	idx, ok := b.Lookup(p.curToken.Lexeme)
	if !ok {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP003, p.curToken, p.curToken.Lexeme))
		return nil
	}
	return &ast.Variable{Token: p.curToken, Idx: idx}
}

// parseIndexVariable accepts a literal de Bruijn index, the form the
// printer emits. The index must point at an enclosing binder.
func (p *Parser) parseIndexVariable(b symbols.Bindings) ast.Term {
	idx := p.curToken.Literal.(int)
	if idx >= b.Depth() {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP004, p.curToken, idx, b.Depth()))
		return nil
	}
	return &ast.Variable{Token: p.curToken, Idx: idx}
}

// parseGroup parses a parenthesized term: either a single lambda form
// or an application of at least two terms. A lone parenthesized
// variable is rejected, matching the grammar rather than extending it.
func (p *Parser) parseGroup(b symbols.Bindings) ast.Term {
	lparen := p.curToken
	p.nextToken()

	if p.curTokenIs(token.LAMBDA) {
		lam := p.parseLambdaForm(b)
		if lam == nil {
			return nil
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return lam
	}

	first := p.parseTerm(b)
	if first == nil {
		return nil
	}
	if p.peekTokenIs(token.RPAREN) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002, p.peekToken, "a second term in the application", "')'"))
		return nil
	}

	result := first
	for !p.peekTokenIs(token.RPAREN) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		next := p.parseTerm(b)
		if next == nil {
			return nil
		}
		result = &ast.Application{Token: lparen, Function: result, Argument: next}
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return result
}

// parseLambdaForm parses an abstraction after its λ (or \) marker.
// Four binder heads exist:
//
//	λx. body      named, untyped
//	λx:T. body    named, typed
//	λ:T. body     nameless, typed
//	λ body        nameless, untyped (printer output)
//
// The body is exactly one term; composite bodies need parentheses.
func (p *Parser) parseLambdaForm(b symbols.Bindings) ast.Term {
	lambdaTok := p.curToken
	bindName := ""
	var argType typesystem.Type

	switch p.peekToken.Type {
	case token.IDENT:
		p.nextToken()
		bindName = p.curToken.Lexeme
		switch p.peekToken.Type {
		case token.DOT:
			p.nextToken()
		case token.COLON:
			p.nextToken() // the ':'
			p.nextToken() // first type token
			argType = p.parseType()
			if argType == nil {
				return nil
			}
			if !p.expectPeek(token.DOT) {
				return nil
			}
		default:
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP002, p.peekToken, "'.' or ':' after the binder", describe(p.peekToken)))
			return nil
		}
	case token.COLON:
		p.nextToken() // the ':'
		p.nextToken() // first type token
		argType = p.parseType()
		if argType == nil {
			return nil
		}
		if !p.expectPeek(token.DOT) {
			return nil
		}
	default:
		// Nameless untyped form: the body follows the marker directly.
	}

	p.nextToken()
	body := p.parseTerm(b.Extend(bindName))
	if body == nil {
		return nil
	}

	if argType != nil {
		p.ctx.Typed = true
	}
	return &ast.Abstraction{Token: lambdaTok, ArgType: argType, Body: body}
}

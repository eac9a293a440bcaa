package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/funlam/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '(':
		tok = l.newToken(token.LPAREN)
	case ')':
		tok = l.newToken(token.RPAREN)
	case 'λ', '\\':
		tok = l.newToken(token.LAMBDA)
	case '.':
		tok = l.newToken(token.DOT)
	case ':':
		tok = l.newToken(token.COLON)
	case '→':
		tok = l.newToken(token.ARROW)
	case '-':
		if l.peekChar() == '>' {
			startLine, startCol, startOff := l.line, l.column, l.position
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Literal: "->", Line: startLine, Column: startCol, Offset: startOff}
		} else {
			tok = l.newToken(token.ILLEGAL)
		}
	case 0:
		tok.Type = token.EOF
		tok.Lexeme = ""
		tok.Line = l.line
		tok.Column = l.column
		tok.Offset = l.position
	default:
		if isLetter(l.ch) {
			startLine, startCol, startOff := l.line, l.column, l.position
			lexeme := l.readIdentifier()
			return token.Token{Type: token.IDENT, Lexeme: lexeme, Literal: lexeme, Line: startLine, Column: startCol, Offset: startOff}
		} else if isDigit(l.ch) {
			return l.readIndex()
		}
		tok = l.newToken(token.ILLEGAL)
	}

	l.readChar()
	return tok
}

// readIdentifier consumes a maximal run of letters. Digits do not
// continue an identifier here: "x0" must lex as IDENT then INDEX so
// indices stay a distinct token class.
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readIndex() token.Token {
	startLine, startCol, startOff := l.line, l.column, l.position
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[position:l.position]

	val, err := strconv.Atoi(lexeme)
	if err != nil {
		// Out of int range; surface as ILLEGAL and let the parser report it.
		return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: lexeme, Line: startLine, Column: startCol, Offset: startOff}
	}
	return token.Token{Type: token.INDEX, Lexeme: lexeme, Literal: val, Line: startLine, Column: startCol, Offset: startOff}
}

func isLetter(ch rune) bool {
	if ch == 'λ' {
		return false
	}
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) newToken(tokenType token.TokenType) token.Token {
	literal := string(l.ch)
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: l.line, Column: l.column, Offset: l.position}
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		// # starts a line comment
		if l.ch == '#' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		break
	}
}

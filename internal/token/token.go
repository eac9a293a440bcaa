package token

// TokenType identifies the lexical class of a token.
type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Structural characters
	LPAREN TokenType = "("
	RPAREN TokenType = ")"
	LAMBDA TokenType = "LAMBDA" // λ or \
	DOT    TokenType = "."
	COLON  TokenType = ":"
	ARROW  TokenType = "ARROW" // → or ->

	// Names and de Bruijn references
	IDENT TokenType = "IDENT" // variable or base type name
	INDEX TokenType = "INDEX" // numeric de Bruijn index
)

// Token is a single lexical unit with its source position.
// Line and Column are 1-based and rune-oriented; Offset is the byte
// offset of the lexeme start, so diagnostics can report exact spans.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any // parsed value: string for names, int for INDEX
	Line    int
	Column  int
	Offset  int
}

// Span returns the byte range [start, end) covered by the token.
func (t Token) Span() (int, int) {
	return t.Offset, t.Offset + len(t.Lexeme)
}

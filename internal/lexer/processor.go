package lexer

import (
	"github.com/funvibe/funlam/internal/pipeline"
	"github.com/funvibe/funlam/internal/token"
)

// NewTokenStream drains the lexer into a replayable stream, EOF
// token included.
func NewTokenStream(l *Lexer) *token.Stream {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return token.NewStream(tokens)
}

// LexerProcessor tokenizes the full source into the context's token
// stream. Illegal characters are reported by the parser when it
// reaches them, so lexing itself never fails.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TokenStream = NewTokenStream(New(ctx.SourceCode))
	return ctx
}

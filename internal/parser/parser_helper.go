package parser

import (
	"fmt"

	"teeny/internal/ast"
	"teeny/internal/lexer"
)

// ParseError reports the first token that does not fit the production being parsed.
type ParseError struct {
	Expected string
	Found    lexer.Token
	Partial  []ast.Statement // top-level statements completed before the error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: expected %s, found %s", e.Found.Position, e.Expected, e.Found.Describe())
}

// peek returns the next token without consuming it, or EOF once the tokens run out.
func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.eof
	}
	return p.tokens[p.current]
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt lexer.TokenType, expected string) (lexer.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAtCurrent(expected)
}

func (p *Parser) consumeIdent(keyword string) (string, error) {
	tok, err := p.consume(lexer.IDENTIFIER, fmt.Sprintf("identifier after '%s'", keyword))
	if err != nil {
		return "", err
	}
	return tok.Lexeme, nil
}

func (p *Parser) skipNewlines() {
	for p.match(lexer.NEWLINE) {
	}
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens)
}

func (p *Parser) errorAtCurrent(expected string) *ParseError {
	return &ParseError{
		Expected: expected,
		Found:    p.peek(),
	}
}

// endPosition is where the synthetic EOF token sits: just past the last token.
func endPosition(tokens []lexer.Token) lexer.Position {
	if len(tokens) == 0 {
		return lexer.Position{Line: 1, Column: 1}
	}
	last := tokens[len(tokens)-1]
	if last.Type == lexer.NEWLINE {
		return lexer.Position{Line: last.Position.Line + 1, Column: 1, Offset: last.Position.Offset + 1}
	}
	width := last.Width()
	return lexer.Position{
		Line:   last.Position.Line,
		Column: last.Position.Column + width,
		Offset: last.Position.Offset + width,
	}
}

package parser

import (
	"errors"
	"fmt"

	"teeny/internal/ast"
	"teeny/internal/lexer"
)

// DefaultMaxDepth bounds if/while nesting so that pathological input fails
// with a ParseError instead of exhausting the stack.
const DefaultMaxDepth = 256

type Parser struct {
	tokens   []lexer.Token
	current  int
	eof      lexer.Token
	depth    int
	maxDepth int
}

type Option func(*Parser)

// WithMaxDepth sets the deepest if/while nesting the parser accepts.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

func NewParser(tokens []lexer.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
	}
	p.eof = lexer.Token{Type: lexer.EOF, Position: endPosition(tokens)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse builds the Program for a complete token sequence, or returns the first ParseError.
func Parse(tokens []lexer.Token, opts ...Option) (*ast.Program, error) {
	return NewParser(tokens, opts...).ParseProgram()
}

func (p *Parser) ParseProgram() (*ast.Program, error) {
	var statements []ast.Statement

	for {
		p.skipNewlines()
		if p.isAtEnd() {
			break
		}

		stmt, err := p.parseStatement()
		if err != nil {
			var parseErr *ParseError
			if errors.As(err, &parseErr) && parseErr.Partial == nil {
				parseErr.Partial = statements
			}
			return nil, err
		}
		statements = append(statements, stmt)
	}

	return &ast.Program{Statements: statements}, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.peek().Type {
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.LABEL:
		p.advance()
		name, err := p.consumeIdent("label")
		if err != nil {
			return nil, err
		}
		return &ast.Label{Name: name}, nil
	case lexer.GOTO:
		p.advance()
		name, err := p.consumeIdent("goto")
		if err != nil {
			return nil, err
		}
		return &ast.Goto{Name: name}, nil
	case lexer.LET:
		return p.parseLet()
	case lexer.INPUT:
		p.advance()
		ident, err := p.consumeIdent("input")
		if err != nil {
			return nil, err
		}
		return &ast.Input{Ident: ident}, nil
	}

	return nil, p.errorAtCurrent("statement (print, if, while, label, goto, let or input)")
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	p.advance() // 'print'

	if p.check(lexer.STRING) {
		return &ast.PrintString{Text: p.advance().Lexeme}, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.PrintExpression{Expression: expr}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	p.advance() // 'if'

	comparison, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	p.skipNewlines()
	if _, err := p.consume(lexer.THEN, "'then'"); err != nil {
		return nil, err
	}

	body, err := p.parseBody(lexer.ENDIF, "'endif'")
	if err != nil {
		return nil, err
	}

	return &ast.If{Comparison: comparison, Body: body}, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	p.advance() // 'while'

	comparison, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	p.skipNewlines()
	if _, err := p.consume(lexer.REPEAT, "'repeat'"); err != nil {
		return nil, err
	}

	body, err := p.parseBody(lexer.ENDWHILE, "'endwhile'")
	if err != nil {
		return nil, err
	}

	return &ast.While{Comparison: comparison, Body: body}, nil
}

// parseBody reads statements up to and including the closing keyword.
// Stray 'then' and 'repeat' tokens between body statements are skipped.
func (p *Parser) parseBody(closing lexer.TokenType, expected string) ([]ast.Statement, error) {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > p.maxDepth {
		return nil, p.errorAtCurrent(fmt.Sprintf("nesting depth of at most %d", p.maxDepth))
	}

	var body []ast.Statement
	for {
		if p.match(lexer.NEWLINE, lexer.THEN, lexer.REPEAT) {
			continue
		}
		if p.match(closing) {
			return body, nil
		}
		if p.isAtEnd() {
			return nil, p.errorAtCurrent(expected)
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
}

func (p *Parser) parseLet() (ast.Statement, error) {
	p.advance() // 'let'

	ident, err := p.consumeIdent("let")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.EQUAL, "'=' after identifier in let"); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Let{Ident: ident, Expression: expr}, nil
}

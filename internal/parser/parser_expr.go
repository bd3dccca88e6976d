package parser

import (
	"teeny/internal/ast"
	"teeny/internal/lexer"
)

var comparisonOps = map[lexer.TokenType]ast.CompareOp{
	lexer.EQUAL_EQUAL:   ast.Equal,
	lexer.NOT_EQUAL:     ast.NotEqual,
	lexer.GREATER:       ast.Greater,
	lexer.GREATER_EQUAL: ast.GreaterEqual,
	lexer.LESS:          ast.Less,
	lexer.LESS_EQUAL:    ast.LessEqual,
}

// parseComparison reads expression, exactly one relational operator, expression.
func (p *Parser) parseComparison() (*ast.Comparison, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	op, ok := comparisonOps[p.peek().Type]
	if !ok {
		return nil, p.errorAtCurrent("comparison operator (==, !=, >, >=, <, <=)")
	}
	p.advance()

	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.peek().Type.IsComparison() {
		return nil, p.errorAtCurrent("end of comparison (comparisons do not chain)")
	}

	return &ast.Comparison{Op: op, Left: left, Right: right}, nil
}

// parseExpression: term {("+" | "-") term}, kept as a flat left-to-right tail.
func (p *Parser) parseExpression() (*ast.Expression, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	var tail []ast.TermTail
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		op := ast.Add
		if p.advance().Type == lexer.MINUS {
			op = ast.Subtract
		}

		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		tail = append(tail, ast.TermTail{Op: op, Term: next})
	}

	return &ast.Expression{Term: term, Tail: tail}, nil
}

// parseTerm: unary {("*" | "/") unary}.
func (p *Parser) parseTerm() (*ast.Term, error) {
	unary, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	var tail []ast.UnaryTail
	for p.check(lexer.ASTERISK) || p.check(lexer.SLASH) {
		op := ast.Multiply
		if p.advance().Type == lexer.SLASH {
			op = ast.Divide
		}

		next, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		tail = append(tail, ast.UnaryTail{Op: op, Unary: next})
	}

	return &ast.Term{Unary: unary, Tail: tail}, nil
}

// parseUnary: ["+" | "-"] primary. Signs do not chain.
func (p *Parser) parseUnary() (*ast.Unary, error) {
	sign := ast.Plus
	if p.match(lexer.MINUS) {
		sign = ast.Minus
	} else {
		p.match(lexer.PLUS)
	}

	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	return &ast.Unary{Sign: sign, Primary: primary}, nil
}

func (p *Parser) parsePrimary() (*ast.Primary, error) {
	if p.check(lexer.NUMBER) {
		return ast.NewNumber(p.advance().Value), nil
	}
	if p.check(lexer.IDENTIFIER) {
		return ast.NewIdent(p.advance().Lexeme), nil
	}
	return nil, p.errorAtCurrent("number or identifier")
}

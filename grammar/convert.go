package grammar

import (
	"strconv"

	"teeny/internal/ast"
)

// ToAST converts the declarative parse tree into the compiler's AST.
func (p *Program) ToAST() *ast.Program {
	return &ast.Program{Statements: convertStatements(p.Statements)}
}

func convertStatements(stmts []*Statement) []ast.Statement {
	var out []ast.Statement
	for _, s := range stmts {
		out = append(out, s.toAST())
	}
	return out
}

func (s *Statement) toAST() ast.Statement {
	switch {
	case s.Print != nil && s.Print.Text != nil:
		return &ast.PrintString{Text: *s.Print.Text}
	case s.Print != nil:
		return &ast.PrintExpression{Expression: s.Print.Expression.toAST()}
	case s.If != nil:
		return &ast.If{Comparison: s.If.Comparison.toAST(), Body: convertStatements(s.If.Body)}
	case s.While != nil:
		return &ast.While{Comparison: s.While.Comparison.toAST(), Body: convertStatements(s.While.Body)}
	case s.Label != nil:
		return &ast.Label{Name: s.Label.Value}
	case s.Goto != nil:
		return &ast.Goto{Name: s.Goto.Value}
	case s.Let != nil:
		return &ast.Let{Ident: s.Let.Ident.Value, Expression: s.Let.Expression.toAST()}
	case s.Input != nil:
		return &ast.Input{Ident: s.Input.Value}
	}
	return nil
}

var compareOps = map[string]ast.CompareOp{
	"==": ast.Equal,
	"!=": ast.NotEqual,
	">":  ast.Greater,
	">=": ast.GreaterEqual,
	"<":  ast.Less,
	"<=": ast.LessEqual,
}

func (c *Comparison) toAST() *ast.Comparison {
	return &ast.Comparison{Op: compareOps[c.Op], Left: c.Left.toAST(), Right: c.Right.toAST()}
}

func (e *Expression) toAST() *ast.Expression {
	expr := &ast.Expression{Term: e.Head.toAST()}
	for _, t := range e.Tail {
		op := ast.Add
		if t.Op == "-" {
			op = ast.Subtract
		}
		expr.Tail = append(expr.Tail, ast.TermTail{Op: op, Term: t.Term.toAST()})
	}
	return expr
}

func (t *Term) toAST() *ast.Term {
	term := &ast.Term{Unary: t.Head.toAST()}
	for _, u := range t.Tail {
		op := ast.Multiply
		if u.Op == "/" {
			op = ast.Divide
		}
		term.Tail = append(term.Tail, ast.UnaryTail{Op: op, Unary: u.Unary.toAST()})
	}
	return term
}

func (u *Unary) toAST() *ast.Unary {
	sign := ast.Plus
	if u.Sign == "-" {
		sign = ast.Minus
	}
	if u.Number != nil {
		return &ast.Unary{Sign: sign, Primary: ast.NewNumber(u.value())}
	}
	return &ast.Unary{Sign: sign, Primary: ast.NewIdent(*u.Ident)}
}

// value is the decimal value of a number literal. Literals are range
// checked right after parsing.
func (u *Unary) value() int {
	n, _ := strconv.Atoi(*u.Number)
	return n
}

// visitUnaries calls f for every Unary in the program, in source order.
func (p *Program) visitUnaries(f func(*Unary)) {
	stack := make([]*Statement, 0, len(p.Statements))
	for i := len(p.Statements) - 1; i >= 0; i-- {
		stack = append(stack, p.Statements[i])
	}

	visitExpr := func(e *Expression) {
		if e == nil {
			return
		}
		terms := []*Term{e.Head}
		for _, t := range e.Tail {
			terms = append(terms, t.Term)
		}
		for _, t := range terms {
			f(t.Head)
			for _, u := range t.Tail {
				f(u.Unary)
			}
		}
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var body []*Statement
		switch {
		case s.Print != nil:
			visitExpr(s.Print.Expression)
		case s.Let != nil:
			visitExpr(s.Let.Expression)
		case s.If != nil:
			visitExpr(s.If.Comparison.Left)
			visitExpr(s.If.Comparison.Right)
			body = s.If.Body
		case s.While != nil:
			visitExpr(s.While.Comparison.Left)
			visitExpr(s.While.Comparison.Right)
			body = s.While.Body
		}
		for i := len(body) - 1; i >= 0; i-- {
			stack = append(stack, body[i])
		}
	}
}

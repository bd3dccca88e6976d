package emitter

import (
	"strconv"
	"strings"

	"teeny/internal/ast"
)

func (e *Emitter) emitStatements(stmts []ast.Statement) {
	for _, stmt := range stmts {
		e.emitStatement(stmt)
	}
}

func (e *Emitter) emitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.PrintString:
		// The text is the format string, so a literal '%' must be doubled.
		e.writeLine("printf(\"%s\\n\");", strings.ReplaceAll(s.Text, "%", "%%"))
	case *ast.PrintExpression:
		e.writeLine("printf(\"%%d\\n\", %s);", expression(s.Expression))
	case *ast.If:
		e.emitBlock("if", s.Comparison, s.Body)
	case *ast.While:
		e.emitBlock("while", s.Comparison, s.Body)
	case *ast.Label:
		e.writeLine("%s:;", s.Name)
	case *ast.Goto:
		e.writeLine("goto %s;", s.Name)
	case *ast.Let:
		e.writeLine("%s = %s;", s.Ident, expression(s.Expression))
	case *ast.Input:
		e.writeLine("scanf(\"%%d\", &%s);", s.Ident)
	}
}

func (e *Emitter) emitBlock(keyword string, cmp *ast.Comparison, body []ast.Statement) {
	e.writeLine("%s (%s) {", keyword, comparison(cmp))
	e.indent++
	e.emitStatements(body)
	e.indent--
	e.writeLine("}")
}

func comparison(c *ast.Comparison) string {
	return expression(c.Left) + " " + c.Op.String() + " " + expression(c.Right)
}

// expression folds the tail from the left, one pair of parentheses per operator.
func expression(expr *ast.Expression) string {
	acc := term(expr.Term)
	for _, t := range expr.Tail {
		acc = binary(acc, t.Op.String(), term(t.Term))
	}
	return acc
}

func term(t *ast.Term) string {
	acc := unary(t.Unary)
	for _, u := range t.Tail {
		acc = binary(acc, u.Op.String(), unary(u.Unary))
	}
	return acc
}

func binary(left, op, right string) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(left)
	b.WriteString(" ")
	b.WriteString(op)
	b.WriteString(" ")
	b.WriteString(right)
	b.WriteString(")")
	return b.String()
}

// unary parenthesises negation only. A plus sign never changes the value or
// the grouping, so the primary is written bare.
func unary(u *ast.Unary) string {
	if u.Sign == ast.Minus {
		return "(-" + primary(u.Primary) + ")"
	}
	return primary(u.Primary)
}

func primary(p *ast.Primary) string {
	if p.Kind == ast.NumberPrimary {
		return strconv.Itoa(p.Number)
	}
	return p.Ident
}

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

const indentUnit = "    "

// String renders the program back to teeny source, one statement per line.
func (p *Program) String() string {
	var b strings.Builder
	writeStatements(&b, p.Statements, 0)
	return b.String()
}

func writeStatements(b *strings.Builder, stmts []Statement, level int) {
	for _, stmt := range stmts {
		text := stmt.String()
		prefix := strings.Repeat(indentUnit, level)
		b.WriteString(prefix + strings.ReplaceAll(text, "\n", "\n"+prefix) + "\n")
	}
}

func (ps *PrintString) String() string {
	return fmt.Sprintf("print \"%s\"", ps.Text)
}

func (pe *PrintExpression) String() string {
	return "print " + pe.Expression.String()
}

func (i *If) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("if %s then\n", i.Comparison))
	writeStatements(&b, i.Body, 1)
	b.WriteString("endif")
	return b.String()
}

func (w *While) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("while %s repeat\n", w.Comparison))
	writeStatements(&b, w.Body, 1)
	b.WriteString("endwhile")
	return b.String()
}

func (l *Label) String() string {
	return "label " + l.Name
}

func (g *Goto) String() string {
	return "goto " + g.Name
}

func (l *Let) String() string {
	return fmt.Sprintf("let %s = %s", l.Ident, l.Expression)
}

func (i *Input) String() string {
	return "input " + i.Ident
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Op, c.Right)
}

func (e *Expression) String() string {
	var b strings.Builder
	b.WriteString(e.Term.String())
	for _, t := range e.Tail {
		b.WriteString(fmt.Sprintf(" %s %s", t.Op, t.Term))
	}
	return b.String()
}

func (t *Term) String() string {
	var b strings.Builder
	b.WriteString(t.Unary.String())
	for _, u := range t.Tail {
		b.WriteString(fmt.Sprintf(" %s %s", u.Op, u.Unary))
	}
	return b.String()
}

// String omits the default plus sign.
func (u *Unary) String() string {
	if u.Sign == Minus {
		return "-" + u.Primary.String()
	}
	return u.Primary.String()
}

func (p *Primary) String() string {
	if p.Kind == IdentPrimary {
		return p.Ident
	}
	return strconv.Itoa(p.Number)
}

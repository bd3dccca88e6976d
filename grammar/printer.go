package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

// String renders canonical teeny: one statement per line, single spaces
// around operators and four spaces per block level.
func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.StringWithIndent(0))
	}
	return b.String()
}

func (s *Statement) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(indent(level))

	switch {
	case s.Print != nil:
		b.WriteString(s.Print.String())
	case s.If != nil:
		b.WriteString(fmt.Sprintf("if %s then\n", s.If.Comparison))
		for _, stmt := range s.If.Body {
			b.WriteString(stmt.StringWithIndent(level + 1))
		}
		b.WriteString(indent(level) + "endif")
	case s.While != nil:
		b.WriteString(fmt.Sprintf("while %s repeat\n", s.While.Comparison))
		for _, stmt := range s.While.Body {
			b.WriteString(stmt.StringWithIndent(level + 1))
		}
		b.WriteString(indent(level) + "endwhile")
	case s.Label != nil:
		b.WriteString("label " + s.Label.Value)
	case s.Goto != nil:
		b.WriteString("goto " + s.Goto.Value)
	case s.Let != nil:
		b.WriteString(fmt.Sprintf("let %s = %s", s.Let.Ident.Value, s.Let.Expression))
	case s.Input != nil:
		b.WriteString("input " + s.Input.Value)
	}

	b.WriteString("\n")
	return b.String()
}

func (p *Print) String() string {
	if p.Text != nil {
		return fmt.Sprintf("print \"%s\"", *p.Text)
	}
	return "print " + p.Expression.String()
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Op, c.Right)
}

func (e *Expression) String() string {
	var b strings.Builder
	b.WriteString(e.Head.String())
	for _, t := range e.Tail {
		b.WriteString(fmt.Sprintf(" %s %s", t.Op, t.Term))
	}
	return b.String()
}

func (t *Term) String() string {
	var b strings.Builder
	b.WriteString(t.Head.String())
	for _, u := range t.Tail {
		b.WriteString(fmt.Sprintf(" %s %s", u.Op, u.Unary))
	}
	return b.String()
}

// String drops a leading '+', which never changes the value.
func (u *Unary) String() string {
	var operand string
	if u.Number != nil {
		operand = strconv.Itoa(u.value())
	} else if u.Ident != nil {
		operand = *u.Ident
	}
	if u.Sign == "-" {
		return "-" + operand
	}
	return operand
}

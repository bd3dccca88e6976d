package ast

import "fmt"

type NodeType int

const (
	ILLEGAL NodeType = iota

	PROGRAM

	// Statements
	PRINT_STRING
	PRINT_EXPRESSION
	IF_STMT
	WHILE_STMT
	LABEL_STMT
	GOTO_STMT
	LET_STMT
	INPUT_STMT

	// Expressions
	COMPARISON
	EXPRESSION
	TERM
	UNARY
	PRIMARY
)

var nodeTypeNames = [...]string{
	ILLEGAL:          "Illegal",
	PROGRAM:          "Program",
	PRINT_STRING:     "PrintString",
	PRINT_EXPRESSION: "PrintExpression",
	IF_STMT:          "If",
	WHILE_STMT:       "While",
	LABEL_STMT:       "Label",
	GOTO_STMT:        "Goto",
	LET_STMT:         "Let",
	INPUT_STMT:       "Input",
	COMPARISON:       "Comparison",
	EXPRESSION:       "Expression",
	TERM:             "Term",
	UNARY:            "Unary",
	PRIMARY:          "Primary",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// CompareOp is one of the six relational operators of a Comparison.
type CompareOp int

const (
	Equal CompareOp = iota
	NotEqual
	Greater
	GreaterEqual
	Less
	LessEqual
)

var compareOpSymbols = [...]string{
	Equal:        "==",
	NotEqual:     "!=",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
}

func (op CompareOp) String() string { return compareOpSymbols[op] }

type AddOp int

const (
	Add AddOp = iota
	Subtract
)

func (op AddOp) String() string {
	if op == Subtract {
		return "-"
	}
	return "+"
}

type MulOp int

const (
	Multiply MulOp = iota
	Divide
)

func (op MulOp) String() string {
	if op == Divide {
		return "/"
	}
	return "*"
}

// Sign is the leading sign of a Unary. Plus is used when the source has none.
type Sign int

const (
	Plus Sign = iota
	Minus
)

func (s Sign) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

type PrimaryKind int

const (
	NumberPrimary PrimaryKind = iota
	IdentPrimary
)

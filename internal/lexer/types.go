package lexer

import "fmt"

type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	NEWLINE

	// Identifiers + literals
	NUMBER
	IDENTIFIER
	STRING

	// Keywords
	LABEL
	GOTO
	PRINT
	INPUT
	LET
	IF
	THEN
	ENDIF
	WHILE
	REPEAT
	ENDWHILE

	// Operators
	EQUAL
	PLUS
	MINUS
	ASTERISK
	SLASH
	EQUAL_EQUAL
	NOT_EQUAL
	LESS
	GREATER
	LESS_EQUAL
	GREATER_EQUAL
)

var tokenTypeNames = [...]string{
	EOF:           "EOF",
	NEWLINE:       "NEWLINE",
	NUMBER:        "NUMBER",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	LABEL:         "LABEL",
	GOTO:          "GOTO",
	PRINT:         "PRINT",
	INPUT:         "INPUT",
	LET:           "LET",
	IF:            "IF",
	THEN:          "THEN",
	ENDIF:         "ENDIF",
	WHILE:         "WHILE",
	REPEAT:        "REPEAT",
	ENDWHILE:      "ENDWHILE",
	EQUAL:         "EQUAL",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	ASTERISK:      "ASTERISK",
	SLASH:         "SLASH",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	NOT_EQUAL:     "NOT_EQUAL",
	LESS:          "LESS",
	GREATER:       "GREATER",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER_EQUAL: "GREATER_EQUAL",
}

func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsKeyword reports whether tt is one of the reserved words.
func (tt TokenType) IsKeyword() bool {
	return tt >= LABEL && tt <= ENDWHILE
}

// IsOperator reports whether tt is an arithmetic, assignment or relational operator.
func (tt TokenType) IsOperator() bool {
	return tt >= EQUAL && tt <= GREATER_EQUAL
}

// IsComparison reports whether tt is one of the six relational operators.
func (tt TokenType) IsComparison() bool {
	return tt >= EQUAL_EQUAL && tt <= GREATER_EQUAL
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

package parser

import (
	"teeny/internal/ast"
	"teeny/internal/lexer"
)

// ParseSource lexes and parses source in one step.
func ParseSource(source string, opts ...Option) (*ast.Program, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, opts...)
}

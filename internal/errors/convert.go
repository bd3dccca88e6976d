package errors

import (
	stderrors "errors"
	"strconv"
	"strings"

	"teeny/internal/emitter"
	"teeny/internal/lexer"
	"teeny/internal/parser"
)

const nestingPrefix = "nesting depth of at most "

// FromError turns a pipeline error into a diagnostic. tokens is the lexer
// output for the same source and is used to place emitter errors, which
// carry only a label name.
func FromError(err error, tokens []lexer.Token) CompilerError {
	var lexErr *lexer.LexError
	var parseErr *parser.ParseError
	var emitErr *emitter.EmitError
	var compilerErr CompilerError

	switch {
	case stderrors.As(err, &lexErr):
		return fromLexError(lexErr)
	case stderrors.As(err, &parseErr):
		return fromParseError(parseErr)
	case stderrors.As(err, &emitErr):
		return fromEmitError(emitErr, tokens)
	case stderrors.As(err, &compilerErr):
		return compilerErr
	}

	return CompilerError{
		Level:    Error,
		Message:  err.Error(),
		Position: lexer.Position{Line: 1, Column: 1},
	}
}

func fromLexError(err *lexer.LexError) CompilerError {
	switch err.Kind {
	case lexer.BareBang:
		return BareBang(err.Position)
	case lexer.NumberOverflow:
		literal := err.Context
		start := err.Position.Column - 1
		if start >= 0 && start+err.Length <= len(literal) {
			literal = literal[start : start+err.Length]
		}
		return NumberOverflow(literal, err.Position)
	default:
		ce := UnexpectedCharacter(err.Char, err.Position)
		ce.Length = err.Length
		return ce
	}
}

func fromParseError(err *parser.ParseError) CompilerError {
	if strings.HasPrefix(err.Expected, nestingPrefix) {
		limit, _ := strconv.Atoi(strings.TrimPrefix(err.Expected, nestingPrefix))
		return NestingTooDeep(limit, err.Found)
	}
	if err.Found.Type == lexer.EOF {
		return UnexpectedEOF(err.Expected, err.Found.Position)
	}
	return UnexpectedToken(err.Expected, err.Found)
}

func fromEmitError(err *emitter.EmitError, tokens []lexer.Token) CompilerError {
	labels := declaredLabels(tokens)

	switch err.Kind {
	case emitter.DuplicateLabel:
		var first, second lexer.Position
		seen := 0
		for _, tok := range labels {
			if tok.Lexeme != err.Name {
				continue
			}
			seen++
			if seen == 1 {
				first = tok.Position
			} else {
				second = tok.Position
				break
			}
		}
		return DuplicateLabel(err.Name, second, first)
	case emitter.ReservedName:
		return ReservedName(err.Name, identPosition(err.Name, tokens))
	default:
		var names []string
		for _, tok := range labels {
			names = append(names, tok.Lexeme)
		}
		return DanglingLabel(err.Name, gotoPosition(err.Name, tokens), names)
	}
}

// declaredLabels returns the name token of every label statement.
func declaredLabels(tokens []lexer.Token) []lexer.Token {
	var labels []lexer.Token
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Type == lexer.LABEL && tokens[i+1].Type == lexer.IDENTIFIER {
			labels = append(labels, tokens[i+1])
		}
	}
	return labels
}

func gotoPosition(name string, tokens []lexer.Token) lexer.Position {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Type == lexer.GOTO && tokens[i+1].Lexeme == name {
			return tokens[i+1].Position
		}
	}
	return lexer.Position{Line: 1, Column: 1}
}

func identPosition(name string, tokens []lexer.Token) lexer.Position {
	for _, tok := range tokens {
		if tok.Type == lexer.IDENTIFIER && tok.Lexeme == name {
			return tok.Position
		}
	}
	return lexer.Position{Line: 1, Column: 1}
}

// Warnings reports identifiers that are read without ever being assigned,
// placed at their first occurrence.
func Warnings(symbols *emitter.Symbols, tokens []lexer.Token) []CompilerError {
	if symbols == nil {
		return nil
	}
	var warnings []CompilerError
	for _, name := range symbols.Unassigned {
		for _, tok := range tokens {
			if tok.Type == lexer.IDENTIFIER && tok.Lexeme == name {
				warnings = append(warnings, UnassignedVariable(name, tok.Position))
				break
			}
		}
	}
	return warnings
}

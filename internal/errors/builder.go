package errors

import (
	"fmt"
	"strings"

	"teeny/internal/lexer"
)

// ErrorBuilder provides a fluent interface for creating diagnostics with suggestions
type ErrorBuilder struct {
	err CompilerError
}

func NewError(code, message string, pos lexer.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func NewWarning(code, message string, pos lexer.Position) *ErrorBuilder {
	b := NewError(code, message, pos)
	b.err.Level = Warning
	return b
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *ErrorBuilder) WithReplacement(message, replacement string, pos lexer.Position, length int) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// Lexer diagnostics

func UnexpectedCharacter(char rune, pos lexer.Position) CompilerError {
	builder := NewError(ErrorUnexpectedCharacter, fmt.Sprintf("unexpected character %q", char), pos)
	switch char {
	case '(', ')':
		builder = builder.WithNote("teeny has no parentheses; '*' and '/' bind tighter than '+' and '-'")
	case '#', ';':
		builder = builder.WithNote("teeny has no comments")
	case '\'':
		builder = builder.WithSuggestion("strings are written with double quotes")
	}
	return builder.WithHelp("teeny source may contain letters, digits, '_', '\"', + - * / = < > ! and whitespace").Build()
}

func BareBang(pos lexer.Position) CompilerError {
	return NewError(ErrorBareBang, "unexpected character '!'", pos).
		WithReplacement("write not-equal as '!='", "!=", pos, 1).
		Build()
}

func NumberOverflow(literal string, pos lexer.Position) CompilerError {
	return NewError(ErrorNumberOverflow, fmt.Sprintf("integer literal %s does not fit in a 32-bit int", literal), pos).
		WithLength(len(literal)).
		WithNote("the largest integer literal is 2147483647").
		Build()
}

// Parser diagnostics

func UnexpectedToken(expected string, found lexer.Token) CompilerError {
	builder := NewError(ErrorUnexpectedToken, fmt.Sprintf("expected %s, found %s", expected, found.Describe()), found.Position).
		WithLength(found.Width())

	switch {
	case found.Type == lexer.EQUAL && strings.Contains(expected, "comparison"):
		builder = builder.WithReplacement("use '==' to compare", "==", found.Position, 1)
	case found.Type == lexer.IDENTIFIER && strings.HasPrefix(expected, "statement"):
		builder = builder.WithSuggestion(fmt.Sprintf("assignments start with 'let': let %s = ...", found.Lexeme))
	case found.Type.IsKeyword() && strings.HasPrefix(expected, "identifier"):
		builder = builder.WithNote(fmt.Sprintf("'%s' is a keyword and cannot be used as a name", found.Lexeme))
	}
	return builder.Build()
}

func UnexpectedEOF(expected string, pos lexer.Position) CompilerError {
	builder := NewError(ErrorUnexpectedEOF, fmt.Sprintf("unexpected end of input, expected %s", expected), pos)
	if expected == "'endif'" || expected == "'endwhile'" {
		builder = builder.WithSuggestion(fmt.Sprintf("close the block with %s", expected))
	}
	return builder.Build()
}

func NestingTooDeep(limit int, found lexer.Token) CompilerError {
	return NewError(ErrorNestingTooDeep, fmt.Sprintf("blocks nested more than %d deep", limit), found.Position).
		WithLength(found.Width()).
		WithHelp("raise the limit with --max-depth or flatten the program with label and goto").
		Build()
}

// Emitter diagnostics

func DanglingLabel(name string, pos lexer.Position, declared []string) CompilerError {
	builder := NewError(ErrorDanglingLabel, fmt.Sprintf("goto targets undeclared label '%s'", name), pos).
		WithLength(len(name))

	similar := findSimilarNames(name, declared)
	switch len(similar) {
	case 0:
		builder = builder.WithSuggestion(fmt.Sprintf("declare it somewhere in the program: label %s", name))
	case 1:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	default:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}
	return builder.Build()
}

func DuplicateLabel(name string, pos lexer.Position, first lexer.Position) CompilerError {
	return NewError(ErrorDuplicateLabel, fmt.Sprintf("label '%s' is declared more than once", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("first declared at %s", first)).
		Build()
}

func ReservedName(name string, pos lexer.Position) CompilerError {
	return NewError(ErrorReservedName, fmt.Sprintf("'%s' is reserved in C and cannot be used as a name", name), pos).
		WithLength(len(name)).
		WithNote("teeny names are used unchanged in the generated C").
		WithSuggestion(fmt.Sprintf("rename it, for example '%s_'", name)).
		Build()
}

func UnassignedVariable(name string, pos lexer.Position) CompilerError {
	return NewWarning(WarningUnassignedVariable, fmt.Sprintf("variable '%s' is never assigned", name), pos).
		WithLength(len(name)).
		WithNote("it is declared as 0 in the generated program").
		WithSuggestion(fmt.Sprintf("assign it first with 'let %s = ...' or 'input %s'", name, name)).
		Build()
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if candidate != target && levenshteinDistance(target, candidate) <= 2 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

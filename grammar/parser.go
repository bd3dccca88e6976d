package grammar

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var teenyParser = participle.MustBuild[Program](
	participle.Lexer(TeenyLexer),
	participle.Elide("Whitespace"),
	participle.Map(unquote, "String"),
	participle.UseLookahead(2),
)

// unquote strips the delimiters from a string token. teeny strings have no
// escapes, so the text between the quotes is taken as is.
func unquote(token lexer.Token) (lexer.Token, error) {
	value := strings.TrimPrefix(token.Value, `"`)
	token.Value = strings.TrimSuffix(value, `"`)
	return token, nil
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

func ParseString(filename, source string) (*Program, error) {
	program, err := teenyParser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	if err := checkNumbers(program); err != nil {
		return nil, err
	}
	return program, nil
}

// checkNumbers rejects literals that do not fit a 32-bit int, which the
// generated C stores them in.
func checkNumbers(program *Program) error {
	var err error
	program.visitUnaries(func(u *Unary) {
		if err != nil || u.Number == nil {
			return
		}
		if n, convErr := strconv.Atoi(*u.Number); convErr != nil || n > math.MaxInt32 {
			err = participle.Errorf(u.Pos, "integer literal %s out of range", *u.Number)
		}
	})
	return err
}

// FormatError renders a caret-style message for a participle error.
func FormatError(source string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return fmt.Sprintf("unexpected error: %s", err)
	}

	pos := pe.Position()
	lines := strings.Split(source, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return fmt.Sprintf("syntax error at unknown location: %s", err)
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	var b strings.Builder
	b.WriteString(fmt.Sprintf("syntax error in %s at line %d, column %d:\n", pos.Filename, pos.Line, pos.Column))
	b.WriteString(line + "\n")
	b.WriteString(caret + "\n")
	b.WriteString(fmt.Sprintf("→ %s\n", pe.Message()))
	return b.String()
}

package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teeny/internal/emitter"
	"teeny/internal/lexer"
	"teeny/internal/parser"
)

func init() {
	color.NoColor = true
}

// diagnose runs the pipeline far enough to fail and converts the error.
func diagnose(t *testing.T, source string) CompilerError {
	t.Helper()
	tokens, err := lexer.Lex(source)
	if err != nil {
		return FromError(err, nil)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return FromError(err, tokens)
	}
	_, err = emitter.Emit(program)
	require.Error(t, err, "source should fail to compile")
	return FromError(err, tokens)
}

func TestErrorReporter(t *testing.T) {
	source := "label loop\nlet x = x + 1\ngoto lop\n"

	reporter := NewErrorReporter("count.teeny", source)
	formatted := reporter.FormatError(diagnose(t, source))

	assert.Contains(t, formatted, "error["+ErrorDanglingLabel+"]: goto targets undeclared label 'lop'")
	assert.Contains(t, formatted, "--> count.teeny:3:6")
	assert.Contains(t, formatted, "  3 │ goto lop")
	assert.Contains(t, formatted, "  2 │ let x = x + 1")
	assert.Contains(t, formatted, "help try: did you mean 'loop'?")

	lines := strings.Split(formatted, "\n")
	var marker string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			marker = line
		}
	}
	assert.Equal(t, "    │      ^^^", marker)
}

func TestFormatErrorsSummary(t *testing.T) {
	reporter := NewErrorReporter("a.teeny", "print x\n")

	warning := UnassignedVariable("x", lexer.Position{Line: 1, Column: 7})
	out := reporter.FormatErrors([]CompilerError{warning})
	assert.Contains(t, out, "warning["+WarningUnassignedVariable+"]")
	assert.Contains(t, out, "a.teeny: 1 previous warning emitted")

	errs := []CompilerError{
		NewError(ErrorUnexpectedToken, "one", lexer.Position{Line: 1, Column: 1}).Build(),
		NewError(ErrorUnexpectedToken, "two", lexer.Position{Line: 1, Column: 1}).Build(),
	}
	out = reporter.FormatErrors(errs)
	assert.Contains(t, out, "a.teeny: could not compile due to 2 previous errors")
}

func TestLexDiagnostics(t *testing.T) {
	tests := []struct {
		source string
		code   string
		line   int
		column int
		length int
		text   string
	}{
		{"print 1\nlet y = (1)\n", ErrorUnexpectedCharacter, 2, 9, 1, "unexpected character '('"},
		{"if a ! b then\nendif", ErrorBareBang, 1, 6, 1, "unexpected character '!'"},
		{"let big = 99999999999", ErrorNumberOverflow, 1, 11, 11, "integer literal 99999999999 does not fit"},
		{"print é", ErrorUnexpectedCharacter, 1, 7, 2, "unexpected character 'é'"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ce := diagnose(t, tt.source)
			assert.Equal(t, Error, ce.Level)
			assert.Equal(t, tt.code, ce.Code)
			assert.Equal(t, tt.line, ce.Position.Line)
			assert.Equal(t, tt.column, ce.Position.Column)
			assert.Equal(t, tt.length, ce.Length)
			assert.Contains(t, ce.Message, tt.text)
		})
	}
}

func TestBareBangSuggestsNotEqual(t *testing.T) {
	ce := diagnose(t, "if a ! b then endif")
	require.Len(t, ce.Suggestions, 1)
	assert.Equal(t, "!=", ce.Suggestions[0].Replacement)
}

func TestParseDiagnostics(t *testing.T) {
	ce := diagnose(t, "let x 5")
	assert.Equal(t, ErrorUnexpectedToken, ce.Code)
	assert.Equal(t, "expected '=' after identifier in let, found number 5", ce.Message)
	assert.Equal(t, lexer.Position{Line: 1, Column: 7, Offset: 6}, ce.Position)

	ce = diagnose(t, "if x = 1 then endif")
	assert.Equal(t, ErrorUnexpectedToken, ce.Code)
	require.NotEmpty(t, ce.Suggestions)
	assert.Equal(t, "==", ce.Suggestions[0].Replacement)

	ce = diagnose(t, "x = 1")
	require.NotEmpty(t, ce.Suggestions)
	assert.Contains(t, ce.Suggestions[0].Message, "let x = ...")

	ce = diagnose(t, "input while")
	require.NotEmpty(t, ce.Notes)
	assert.Contains(t, ce.Notes[0], "'while' is a keyword")
}

func TestUnexpectedEOFDiagnostic(t *testing.T) {
	ce := diagnose(t, "while i < 10 repeat\nlet i = i + 1\n")
	assert.Equal(t, ErrorUnexpectedEOF, ce.Code)
	assert.Equal(t, "unexpected end of input, expected 'endwhile'", ce.Message)
	assert.Equal(t, 3, ce.Position.Line)
	require.Len(t, ce.Suggestions, 1)
	assert.Equal(t, "close the block with 'endwhile'", ce.Suggestions[0].Message)
}

func TestNestingDiagnostic(t *testing.T) {
	source := strings.Repeat("if 1 == 1 then\n", 3)
	tokens, err := lexer.Lex(source)
	require.NoError(t, err)
	_, err = parser.Parse(tokens, parser.WithMaxDepth(2))
	require.Error(t, err)

	ce := FromError(err, tokens)
	assert.Equal(t, ErrorNestingTooDeep, ce.Code)
	assert.Equal(t, "blocks nested more than 2 deep", ce.Message)
}

func TestDuplicateLabelDiagnostic(t *testing.T) {
	ce := diagnose(t, "label a\nprint 1\nlabel a\n")
	assert.Equal(t, ErrorDuplicateLabel, ce.Code)
	assert.Equal(t, lexer.Position{Line: 3, Column: 7, Offset: 22}, ce.Position)
	require.Len(t, ce.Notes, 1)
	assert.Equal(t, "first declared at 1:7", ce.Notes[0])
}

func TestReservedNameDiagnostic(t *testing.T) {
	ce := diagnose(t, "let x = 1\nlet int = x\n")
	assert.Equal(t, ErrorReservedName, ce.Code)
	assert.Equal(t, "'int' is reserved in C and cannot be used as a name", ce.Message)
	assert.Equal(t, lexer.Position{Line: 2, Column: 5, Offset: 14}, ce.Position)
	assert.Equal(t, 3, ce.Length)
	require.Len(t, ce.Suggestions, 1)
	assert.Equal(t, "rename it, for example 'int_'", ce.Suggestions[0].Message)
}

func TestDanglingLabelSuggestions(t *testing.T) {
	ce := diagnose(t, "goto bar")
	require.Len(t, ce.Suggestions, 1)
	assert.Equal(t, "declare it somewhere in the program: label bar", ce.Suggestions[0].Message)

	ce = diagnose(t, "label start\nlabel stop\ngoto stat\n")
	require.Len(t, ce.Suggestions, 1)
	assert.Equal(t, "did you mean one of: 'start', 'stop'?", ce.Suggestions[0].Message)
}

func TestFromUnknownError(t *testing.T) {
	ce := FromError(fmt.Errorf("read failed"), nil)
	assert.Equal(t, Error, ce.Level)
	assert.Empty(t, ce.Code)
	assert.Equal(t, "read failed", ce.Message)

	wrapped := fmt.Errorf("compile main.teeny: %w", &emitter.EmitError{Kind: emitter.DanglingLabel, Name: "x"})
	assert.Equal(t, ErrorDanglingLabel, FromError(wrapped, nil).Code)

	original := NewError(ErrorBareBang, "boom", lexer.Position{Line: 2, Column: 3}).Build()
	assert.Equal(t, original, FromError(fmt.Errorf("wrapped: %w", original), nil))
}

func TestCompilerErrorString(t *testing.T) {
	ce := NewError(ErrorUnexpectedToken, "expected 'then', found newline", lexer.Position{Line: 4, Column: 12}).Build()
	assert.Equal(t, "4:12: error[E0100]: expected 'then', found newline", ce.Error())
}

func TestWarnings(t *testing.T) {
	source := "print a\nlet b = a + c\n"
	tokens, err := lexer.Lex(source)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)
	symbols, err := emitter.Collect(program)
	require.NoError(t, err)

	warnings := Warnings(symbols, tokens)
	require.Len(t, warnings, 2)
	assert.Equal(t, Warning, warnings[0].Level)
	assert.Equal(t, "variable 'a' is never assigned", warnings[0].Message)
	assert.Equal(t, lexer.Position{Line: 1, Column: 7, Offset: 6}, warnings[0].Position)
	assert.Equal(t, "variable 'c' is never assigned", warnings[1].Message)

	assert.Nil(t, Warnings(nil, tokens))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("loop", "loop"))
	assert.Equal(t, 1, levenshteinDistance("lop", "loop"))
	assert.Equal(t, 3, levenshteinDistance("", "end"))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestGetErrorDescription(t *testing.T) {
	assert.Equal(t, "Goto to undeclared label", GetErrorDescription(ErrorDanglingLabel))
	assert.Equal(t, "Name reserved in C", GetErrorDescription(ErrorReservedName))
	assert.Equal(t, "Unknown error", GetErrorDescription("E9999"))
}

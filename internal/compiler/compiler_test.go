package compiler

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"

	"teeny/internal/ast"
	"teeny/internal/emitter"
	"teeny/internal/lexer"
	"teeny/internal/parser"
)

const scenario = `print "waddup"
if 1 == 1 then
print 2
endif
label foo
goto foo
let x = 1
input x
`

func TestCompileScenario(t *testing.T) {
	lines, err := Compile(scenario)
	require.NoError(t, err)
	assert.Equal(t, "#include <stdio.h>", lines[0])
	assert.Equal(t, "}", lines[len(lines)-1])
	assert.Contains(t, lines, "    goto foo;")
}

func TestCompileFailsFast(t *testing.T) {
	tests := []struct {
		name   string
		source string
		stage  Stage
	}{
		{"lex", "print 1\nprint $\n", LexStage},
		{"parse", "if 1 == 1 then\nprint 1\n", ParseStage},
		{"emit", "goto bar", EmitStage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Compile(tt.source)
			assert.Nil(t, lines)
			require.Error(t, err)
			assert.Equal(t, tt.stage, StageOf(err))
			assert.Equal(t, tt.name, StageOf(err).String())
		})
	}
}

func TestErrorTypes(t *testing.T) {
	_, err := Compile("let x = 1 ! 2")
	var lexErr *lexer.LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.BareBang, lexErr.Kind)

	_, err = Compile("print")
	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)

	_, err = Compile("goto bar")
	var emitErr *emitter.EmitError
	require.ErrorAs(t, err, &emitErr)
	assert.Equal(t, &emitter.EmitError{Kind: emitter.DanglingLabel, Name: "bar"}, emitErr)
}

func TestStageOfForeignError(t *testing.T) {
	assert.Equal(t, UnknownStage, StageOf(fmt.Errorf("disk full")))
	assert.Equal(t, UnknownStage, StageOf(nil))
	assert.Equal(t, EmitStage, StageOf(fmt.Errorf("main.teeny: %w", &emitter.EmitError{Name: "x"})))
}

func TestRunKeepsArtifacts(t *testing.T) {
	c := New(WithLogger(commonlog.MOCK_LOGGER))

	result, err := c.Run(scenario)
	require.NoError(t, err)
	assert.Len(t, result.Tokens, 28)
	require.NotNil(t, result.Program)
	assert.Len(t, result.Program.Statements, 6)
	assert.Equal(t, []string{"x"}, result.Symbols.Variables)
	assert.Equal(t, []string{"foo"}, result.Symbols.Labels)
	assert.NotEmpty(t, result.Lines)

	result, err = c.Run("let y = 2\ngoto nowhere\n")
	require.Error(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Tokens)
	assert.NotNil(t, result.Program)
	assert.Equal(t, []string{"y"}, result.Symbols.Variables)
	assert.Nil(t, result.Lines)

	result, err = c.Run("let y = @")
	require.Error(t, err)
	assert.Nil(t, result.Tokens)
	assert.Nil(t, result.Program)
}

func TestOptions(t *testing.T) {
	source := strings.Repeat("while 1 < 2 repeat\n", 3) + strings.Repeat("endwhile\n", 3)

	_, err := New(WithMaxDepth(2)).Compile(source)
	assert.Equal(t, ParseStage, StageOf(err))

	lines, err := New(WithMaxDepth(3), WithIndent(1)).Compile(source)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"#include <stdio.h>",
		"int main(void) {",
		" while (1 < 2) {",
		"  while (1 < 2) {",
		"   while (1 < 2) {",
		"   }",
		"  }",
		" }",
		" return 0;",
		"}",
	}, lines)
}

func TestCompileIsDeterministic(t *testing.T) {
	first, err := Compile(scenario)
	require.NoError(t, err)
	second, err := Compile(scenario)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "a\nb\n", Join([]string{"a", "b"}))
}

func TestCompileMatchesStages(t *testing.T) {
	tokens, err := lexer.Lex(scenario)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)
	expected, err := emitter.Emit(program)
	require.NoError(t, err)

	lines, err := Compile(program.String())
	require.NoError(t, err)
	assert.Equal(t, expected, lines, "printing a program and compiling it again gives the same C")
	assert.IsType(t, &ast.Program{}, program)
}

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func run(input string) string {
	var out bytes.Buffer
	Start(strings.NewReader(input), &out)
	return out.String()
}

func TestStartTranslatesOnBlankLine(t *testing.T) {
	out := run("let x = 2\nprint x * 3\n\n")

	assert.Contains(t, out, "#include <stdio.h>")
	assert.Contains(t, out, "int x = 0;")
	assert.Contains(t, out, "    x = 2;")
	assert.Contains(t, out, `    printf("%d\n", (x * 3));`)
	assert.True(t, strings.HasPrefix(out, PROMPT+CONTINUATION))
}

func TestStartTranslatesRemainingBufferAtEOF(t *testing.T) {
	out := run(`print "hi"`)

	assert.Contains(t, out, `printf("hi\n");`)
}

func TestStartIgnoresLeadingBlankLines(t *testing.T) {
	out := run("\n\n")

	assert.Equal(t, PROMPT+PROMPT+PROMPT, out)
}

func TestStartReportsDiagnostics(t *testing.T) {
	out := run("let x 1\n\nprint 7\n\n")

	assert.Contains(t, out, "error[E0100]: expected '=' after identifier in let, found number 1")
	assert.Contains(t, out, "<repl>:1:7")
	// The session keeps going after a failed program.
	assert.Contains(t, out, `printf("%d\n", 7);`)
	assert.NotContains(t, out, "int x = 0;")
}

func TestStartReportsWarnings(t *testing.T) {
	out := run("print y\n\n")

	assert.Contains(t, out, "warning[E0800]: variable 'y' is never assigned")
	assert.Contains(t, out, "int y = 0;")
}

func TestStartReportsDanglingLabel(t *testing.T) {
	out := run("label start\ngoto strat\n\n")

	assert.Contains(t, out, "error[E0200]: goto targets undeclared label 'strat'")
	assert.Contains(t, out, "did you mean 'start'?")
}

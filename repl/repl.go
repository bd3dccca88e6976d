// Package repl reads teeny programs interactively and prints the C they
// translate to. Lines are buffered until a blank line, then the buffered
// program is compiled as a whole.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"teeny/internal/compiler"
	"teeny/internal/errors"
)

const PROMPT = ">> "
const CONTINUATION = ".. "

const sourceName = "<repl>"

func Start(in io.Reader, out io.Writer, opts ...compiler.Option) {
	scanner := bufio.NewScanner(in)
	c := compiler.New(opts...)

	var buffer []string
	for {
		if len(buffer) == 0 {
			fmt.Fprint(out, PROMPT)
		} else {
			fmt.Fprint(out, CONTINUATION)
		}

		if !scanner.Scan() {
			if len(buffer) > 0 {
				fmt.Fprintln(out)
				translate(c, out, buffer)
			}
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			buffer = append(buffer, line)
			continue
		}
		if len(buffer) == 0 {
			continue
		}
		translate(c, out, buffer)
		buffer = buffer[:0]
	}
}

func translate(c *compiler.Compiler, out io.Writer, buffer []string) {
	source := strings.Join(buffer, "\n") + "\n"
	reporter := errors.NewErrorReporter(sourceName, source)

	result, err := c.Run(source)
	if err != nil {
		fmt.Fprint(out, reporter.FormatError(errors.FromError(err, result.Tokens)))
		return
	}
	for _, warning := range errors.Warnings(result.Symbols, result.Tokens) {
		fmt.Fprint(out, reporter.FormatError(warning))
	}
	fmt.Fprint(out, compiler.Join(result.Lines))
}

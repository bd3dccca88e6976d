package emitter

import (
	"fmt"
	"strings"

	"teeny/internal/ast"
)

const DefaultIndent = 4

// Emitter lowers a Program into C source lines.
type Emitter struct {
	unit    string
	indent  int
	lines   []string
	symbols *Symbols
}

type Option func(*Emitter)

// WithIndent sets the number of spaces per nesting level.
func WithIndent(width int) Option {
	return func(e *Emitter) {
		if width >= 0 {
			e.unit = strings.Repeat(" ", width)
		}
	}
}

func New(opts ...Option) *Emitter {
	e := &Emitter{unit: strings.Repeat(" ", DefaultIndent)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit lowers program with a fresh Emitter.
func Emit(program *ast.Program, opts ...Option) ([]string, error) {
	return New(opts...).Emit(program)
}

// Emit returns the C lines for program. Label problems are reported before
// anything is written, so on error no lines are returned.
func (e *Emitter) Emit(program *ast.Program) ([]string, error) {
	symbols, err := Collect(program)
	e.symbols = symbols
	if err != nil {
		return nil, err
	}

	e.lines = nil
	e.indent = 0

	e.writeLine("#include <stdio.h>")
	e.writeLine("int main(void) {")
	e.indent++

	for _, name := range symbols.Variables {
		e.writeLine("int %s = 0;", name)
	}
	if program != nil {
		e.emitStatements(program.Statements)
	}

	e.writeLine("return 0;")
	e.indent--
	e.writeLine("}")

	return e.lines, nil
}

// Symbols returns what the last call to Emit collected.
func (e *Emitter) Symbols() *Symbols {
	return e.symbols
}

func (e *Emitter) writeLine(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	e.lines = append(e.lines, strings.Repeat(e.unit, e.indent)+line)
}

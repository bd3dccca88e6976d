// Package compiler runs the teeny pipeline: source text to tokens, tokens to
// a Program, and the Program to C source lines. Every stage fails fast, and
// no lines are produced once any stage has failed.
package compiler

import (
	stderrors "errors"
	"strings"
	"time"

	"github.com/tliron/commonlog"

	"teeny/internal/ast"
	"teeny/internal/emitter"
	"teeny/internal/lexer"
	"teeny/internal/parser"
)

// Stage names the pipeline step an error came from.
type Stage int

const (
	UnknownStage Stage = iota
	LexStage
	ParseStage
	EmitStage
)

func (s Stage) String() string {
	switch s {
	case LexStage:
		return "lex"
	case ParseStage:
		return "parse"
	case EmitStage:
		return "emit"
	default:
		return "unknown"
	}
}

// StageOf reports which stage produced err.
func StageOf(err error) Stage {
	var lexErr *lexer.LexError
	var parseErr *parser.ParseError
	var emitErr *emitter.EmitError

	switch {
	case stderrors.As(err, &lexErr):
		return LexStage
	case stderrors.As(err, &parseErr):
		return ParseStage
	case stderrors.As(err, &emitErr):
		return EmitStage
	}
	return UnknownStage
}

// Result holds every artifact the pipeline produced. After a failure it
// holds what the earlier stages built; Lines is only set on success.
type Result struct {
	Tokens  []lexer.Token
	Program *ast.Program
	Symbols *emitter.Symbols
	Lines   []string
}

type Compiler struct {
	maxDepth int
	indent   int
	log      commonlog.Logger
}

type Option func(*Compiler)

func WithMaxDepth(n int) Option {
	return func(c *Compiler) {
		c.maxDepth = n
	}
}

// WithIndent sets the spaces per nesting level in the generated C.
func WithIndent(width int) Option {
	return func(c *Compiler) {
		c.indent = width
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(c *Compiler) {
		if log != nil {
			c.log = log
		}
	}
}

func New(opts ...Option) *Compiler {
	c := &Compiler{
		maxDepth: parser.DefaultMaxDepth,
		indent:   emitter.DefaultIndent,
		log:      commonlog.GetLogger("teeny.compiler"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile translates source with the default settings.
func Compile(source string) ([]string, error) {
	return New().Compile(source)
}

func (c *Compiler) Compile(source string) ([]string, error) {
	result, err := c.Run(source)
	if err != nil {
		return nil, err
	}
	return result.Lines, nil
}

// Run executes every stage and returns all intermediate artifacts. The
// returned Result is never nil.
func (c *Compiler) Run(source string) (*Result, error) {
	result := &Result{}

	start := time.Now()
	tokens, err := lexer.Lex(source)
	if err != nil {
		c.log.Debugf("lex failed: %s", err)
		return result, err
	}
	result.Tokens = tokens
	c.log.Debugf("lexed %d tokens in %s", len(tokens), time.Since(start))

	start = time.Now()
	program, err := parser.Parse(tokens, parser.WithMaxDepth(c.maxDepth))
	if err != nil {
		c.log.Debugf("parse failed: %s", err)
		return result, err
	}
	result.Program = program
	c.log.Debugf("parsed %d top-level statements in %s", len(program.Statements), time.Since(start))

	start = time.Now()
	e := emitter.New(emitter.WithIndent(c.indent))
	lines, err := e.Emit(program)
	result.Symbols = e.Symbols()
	if err != nil {
		c.log.Debugf("emit failed: %s", err)
		return result, err
	}
	result.Lines = lines
	c.log.Debugf("emitted %d lines (%d variables, %d labels) in %s",
		len(lines), len(result.Symbols.Variables), len(result.Symbols.Labels), time.Since(start))

	return result, nil
}

// Join renders lines as the contents of a .c file.
func Join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

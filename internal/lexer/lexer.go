package lexer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Value    int // NUMBER payload
	Position Position
}

func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return fmt.Sprintf("%s(%d)", t.Type, t.Value)
	case IDENTIFIER:
		return fmt.Sprintf("%s(%s)", t.Type, t.Lexeme)
	case STRING:
		return fmt.Sprintf("%s(%q)", t.Type, t.Lexeme)
	default:
		return t.Type.String()
	}
}

// Describe renders the token the way it would be quoted in a diagnostic.
func (t Token) Describe() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case NEWLINE:
		return "newline"
	case NUMBER:
		return fmt.Sprintf("number %d", t.Value)
	case IDENTIFIER:
		return fmt.Sprintf("identifier '%s'", t.Lexeme)
	case STRING:
		return fmt.Sprintf("string \"%s\"", t.Lexeme)
	default:
		return fmt.Sprintf("'%s'", t.Lexeme)
	}
}

// Width is the number of source bytes the token spans.
func (t Token) Width() int {
	switch t.Type {
	case EOF:
		return 0
	case NEWLINE:
		return 1
	case STRING:
		return len(t.Lexeme) + 2
	default:
		return len(t.Lexeme)
	}
}

type LexErrorKind int

const (
	UnexpectedCharacter LexErrorKind = iota
	BareBang
	NumberOverflow
)

// LexError aborts lexing at the first malformed character.
type LexError struct {
	Kind     LexErrorKind
	Char     rune
	Context  string // source line containing the offending character
	Position Position
	Length   int
}

func (e *LexError) Error() string {
	switch e.Kind {
	case BareBang:
		return fmt.Sprintf("lex error at %s: unexpected character '!' (expected '!=')", e.Position)
	case NumberOverflow:
		return fmt.Sprintf("lex error at %s: integer literal out of range", e.Position)
	default:
		return fmt.Sprintf("lex error at %s: unexpected character %q", e.Position, e.Char)
	}
}

// Lexer turns teeny source text into tokens. It stops at the first error.
type Lexer struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	lineStart   int
	startColumn int
	column      int
	err         *LexError
}

func New(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
	}
}

// Lex is the pipeline entry point: the full token sequence, or the first LexError.
// No EOF token is appended; the parser's cursor reports end of input itself.
func Lex(source string) ([]Token, error) {
	tokens, err := New(source).Tokens()
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (l *Lexer) Tokens() ([]Token, error) {
	for !l.isAtEnd() && l.err == nil {
		l.start = l.current
		l.startColumn = l.column
		l.scanToken()
	}
	if l.err != nil {
		return l.tokens, l.err
	}
	return l.tokens, nil
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case ' ', '\t', '\r':
		// Ignore whitespace
	case '\n':
		l.addToken(NEWLINE)
		l.line++
		l.column = 1
		l.lineStart = l.current

	case '+':
		l.addToken(PLUS)
	case '-':
		l.addToken(MINUS)
	case '*':
		l.addToken(ASTERISK)
	case '/':
		l.addToken(SLASH)

	case '=':
		if l.matchNext('=') {
			l.addToken(EQUAL_EQUAL)
		} else {
			l.addToken(EQUAL)
		}
	case '<':
		if l.matchNext('=') {
			l.addToken(LESS_EQUAL)
		} else {
			l.addToken(LESS)
		}
	case '>':
		if l.matchNext('=') {
			l.addToken(GREATER_EQUAL)
		} else {
			l.addToken(GREATER)
		}
	case '!':
		if l.matchNext('=') {
			l.addToken(NOT_EQUAL)
		} else {
			l.reportError(BareBang, '!')
		}

	case '"':
		l.scanString()

	default:
		l.scanDefault(c)
	}
}

func (l *Lexer) scanDefault(c byte) {
	switch {
	case isDigit(c):
		l.scanNumber()
	case isAlpha(c):
		l.scanIdentifier()
	default:
		r, size := utf8.DecodeRuneInString(l.source[l.start:])
		l.current = l.start + size
		l.reportError(UnexpectedCharacter, r)
	}
}

func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	text := l.source[l.start:l.current]
	value, err := strconv.Atoi(text)
	if err != nil || value > math.MaxInt32 {
		l.reportError(NumberOverflow, rune(text[0]))
		return
	}
	l.tokens = append(l.tokens, Token{Type: NUMBER, Lexeme: text, Value: value, Position: l.startPosition()})
}

func (l *Lexer) scanIdentifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	l.addToken(lookupIdentifier(l.source[l.start:l.current]))
}

// scanString reads up to the closing quote. An unterminated string runs to the
// end of the line; the newline itself is left for the next token, and the CR
// of a CRLF line ending is not part of the text.
func (l *Lexer) scanString() {
	for l.peek() != '"' && l.peek() != '\n' && !l.isAtEnd() {
		l.advance()
	}
	value := l.source[l.start+1 : l.current]
	if l.peek() == '"' {
		l.advance()
	} else {
		value = strings.TrimRight(value, "\r")
	}
	l.tokens = append(l.tokens, Token{Type: STRING, Lexeme: value, Position: l.startPosition()})
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	l.column++
	return c
}

func (l *Lexer) matchNext(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) startPosition() Position {
	return Position{Line: l.line, Column: l.startColumn, Offset: l.start}
}

func (l *Lexer) addToken(tokenType TokenType) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Lexeme:   l.source[l.start:l.current],
		Position: l.startPosition(),
	})
}

func (l *Lexer) reportError(kind LexErrorKind, c rune) {
	l.err = &LexError{
		Kind:     kind,
		Char:     c,
		Context:  l.currentLine(),
		Position: l.startPosition(),
		Length:   max(1, l.current-l.start),
	}
}

func (l *Lexer) currentLine() string {
	rest := l.source[l.lineStart:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSuffix(rest, "\r")
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

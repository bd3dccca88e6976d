package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var TeenyLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Keywords must win over identifiers, but not inside longer names.
		{"Keyword", `(label|goto|print|input|let|if|then|endif|while|repeat|endwhile)\b`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		{"Number", `[0-9]+`, nil},

		// No escapes; an unterminated string ends at the newline, minus any CR
		{"String", `"[^"\n]*"|"(?:[^"\n]*[^"\r\n])?`, nil},

		{"Operator", `==|!=|<=|>=|[-+*/=<>]`, nil},

		// Newlines separate statements, so only horizontal space is elided
		{"EOL", `\n`, nil},
		{"Whitespace", `[ \t\r]+`, nil},
	},
})

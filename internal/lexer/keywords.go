package lexer

var KEYWORDS = map[string]TokenType{
	"label":    LABEL,
	"goto":     GOTO,
	"print":    PRINT,
	"input":    INPUT,
	"let":      LET,
	"if":       IF,
	"then":     THEN,
	"endif":    ENDIF,
	"while":    WHILE,
	"repeat":   REPEAT,
	"endwhile": ENDWHILE,
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}

package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"teeny/internal/lexer"
)

// SemanticTokenTypes is the legend advertised in Initialize; token types
// below are indexes into it.
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"string",
	"operator",
	"function",
}

var SemanticTokenModifiers = []string{
	"declaration",
}

const (
	tokenKeyword = iota
	tokenVariable
	tokenNumber
	tokenString
	tokenOperator
	tokenLabel
)

const modifierDeclaration = 1 << 0

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions; StartChar and Length count
// UTF-16 code units
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies the lexer stream. Label names are reported
// as functions so editors color jump targets apart from variables.
func collectSemanticTokens(text string, tokens []lexer.Token) []SemanticToken {
	var result []SemanticToken

	for i, tok := range tokens {
		var prev lexer.TokenType = lexer.NEWLINE
		if i > 0 {
			prev = tokens[i-1].Type
		}

		tokenType, modifiers := -1, 0
		switch {
		case tok.Type.IsKeyword():
			tokenType = tokenKeyword
		case tok.Type == lexer.NUMBER:
			tokenType = tokenNumber
		case tok.Type == lexer.STRING:
			tokenType = tokenString
		case tok.Type.IsOperator():
			tokenType = tokenOperator
		case tok.Type == lexer.IDENTIFIER && prev == lexer.LABEL:
			tokenType, modifiers = tokenLabel, modifierDeclaration
		case tok.Type == lexer.IDENTIFIER && prev == lexer.GOTO:
			tokenType = tokenLabel
		case tok.Type == lexer.IDENTIFIER && (prev == lexer.LET || prev == lexer.INPUT):
			tokenType, modifiers = tokenVariable, modifierDeclaration
		case tok.Type == lexer.IDENTIFIER:
			tokenType = tokenVariable
		}
		if tokenType < 0 {
			continue
		}

		start, end := characterRange(text, tok.Position, tok.Width())
		result = append(result, SemanticToken{
			Line:           uint32(tok.Position.Line - 1),
			StartChar:      start,
			Length:         end - start,
			TokenType:      tokenType,
			TokenModifiers: modifiers,
		})
	}

	return result
}

// encodeSemanticTokens applies the LSP relative encoding: each entry is
// deltaLine, deltaStart, length, type, modifiers.
func encodeSemanticTokens(tokens []SemanticToken) []protocol.UInteger {
	data := []protocol.UInteger{}
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

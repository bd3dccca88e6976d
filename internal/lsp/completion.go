package lsp

import (
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"teeny/internal/lexer"
)

// completions offers label names after goto, variables after let and input,
// and keywords plus variables anywhere else.
func completions(doc *document, pos protocol.Position) []protocol.CompletionItem {
	variables, labels := names(doc)

	switch previousType(doc.tokens, bytePosition(doc.text, pos)) {
	case lexer.GOTO:
		return items(labels, protocol.CompletionItemKindFunction, "label")
	case lexer.LABEL:
		return []protocol.CompletionItem{}
	case lexer.LET, lexer.INPUT:
		return items(variables, protocol.CompletionItemKindVariable, "int")
	}

	keywords := make([]string, 0, len(lexer.KEYWORDS))
	for kw := range lexer.KEYWORDS {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	result := items(keywords, protocol.CompletionItemKindKeyword, "keyword")
	return append(result, items(variables, protocol.CompletionItemKindVariable, "int")...)
}

// names prefers the emitter's collection pass and falls back to scanning
// tokens when the document does not parse.
func names(doc *document) (variables, labels []string) {
	if doc.result != nil && doc.result.Symbols != nil {
		return doc.result.Symbols.Variables, doc.result.Symbols.Labels
	}

	seen := make(map[string]bool)
	for i := 1; i < len(doc.tokens); i++ {
		tok := doc.tokens[i]
		if tok.Type != lexer.IDENTIFIER {
			continue
		}
		if doc.tokens[i-1].Type == lexer.LABEL {
			labels = append(labels, tok.Lexeme)
			continue
		}
		if doc.tokens[i-1].Type != lexer.GOTO && !seen[tok.Lexeme] {
			seen[tok.Lexeme] = true
			variables = append(variables, tok.Lexeme)
		}
	}
	return variables, labels
}

func items(labels []string, kind protocol.CompletionItemKind, detail string) []protocol.CompletionItem {
	result := make([]protocol.CompletionItem, 0, len(labels))
	for _, label := range labels {
		result = append(result, protocol.CompletionItem{
			Label:  label,
			Kind:   &kind,
			Detail: ptrString(detail),
		})
	}
	return result
}

// previousType is the type of the token before the one being typed at pos,
// or NEWLINE at the start of a line.
func previousType(tokens []lexer.Token, pos protocol.Position) lexer.TokenType {
	line := int(pos.Line) + 1
	char := int(pos.Character) + 1

	last := -1
	for i, tok := range tokens {
		if tok.Position.Line > line || (tok.Position.Line == line && tok.Position.Column >= char) {
			break
		}
		last = i
	}
	if last < 0 {
		return lexer.NEWLINE
	}

	// A word touching the cursor is the one being completed.
	if tok := tokens[last]; tok.Type == lexer.IDENTIFIER || tok.Type.IsKeyword() {
		if tok.Position.Line == line && tok.Position.Column+tok.Width() >= char {
			last--
		}
	}
	if last < 0 || tokens[last].Position.Line != line {
		return lexer.NEWLINE
	}
	return tokens[last].Type
}

// tokenAt returns the index of the token covering pos, or -1.
func tokenAt(tokens []lexer.Token, pos protocol.Position) int {
	line := int(pos.Line) + 1
	char := int(pos.Character) + 1

	for i, tok := range tokens {
		if tok.Position.Line != line || tok.Type == lexer.NEWLINE {
			continue
		}
		if tok.Position.Column <= char && char <= tok.Position.Column+tok.Width() {
			return i
		}
	}
	return -1
}

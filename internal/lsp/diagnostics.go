package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"teeny/internal/errors"
	"teeny/internal/lexer"
)

// diagnostics reports the single error that stopped compilation, if any,
// followed by unassigned-variable warnings once the program is known.
func diagnostics(doc *document) []protocol.Diagnostic {
	result := []protocol.Diagnostic{}

	if doc.err != nil {
		result = append(result, toDiagnostic(doc.text, errors.FromError(doc.err, doc.tokens)))
	}
	if doc.result != nil && doc.result.Symbols != nil {
		for _, warning := range errors.Warnings(doc.result.Symbols, doc.tokens) {
			result = append(result, toDiagnostic(doc.text, warning))
		}
	}
	return result
}

func toDiagnostic(text string, ce errors.CompilerError) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	if ce.Level == errors.Warning {
		severity = protocol.DiagnosticSeverityWarning
	}

	diagnostic := protocol.Diagnostic{
		Range:    spanRange(text, ce.Position, max(1, ce.Length)),
		Severity: &severity,
		Source:   ptrString("teeny"),
		Message:  ce.Message,
	}
	if ce.Code != "" {
		diagnostic.Code = &protocol.IntegerOrString{Value: ce.Code}
	}
	for _, suggestion := range ce.Suggestions {
		diagnostic.Message += "\nhelp: " + suggestion.Message
	}
	return diagnostic
}

// spanRange converts a 1-based source position and byte length into a
// 0-based LSP range on one line.
func spanRange(text string, pos lexer.Position, length int) protocol.Range {
	line := protocol.UInteger(max(0, pos.Line-1))
	start, end := characterRange(text, pos, length)
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: start},
		End:   protocol.Position{Line: line, Character: end},
	}
}

func tokenRange(text string, tok lexer.Token) protocol.Range {
	return spanRange(text, tok.Position, tok.Width())
}

// wholeDocument spans text from its first character to past its last line.
func wholeDocument(text string) protocol.Range {
	lines := protocol.UInteger(0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines++
		}
	}
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: lines + 1, Character: 0},
	}
}

func ptrString(s string) *string {
	return &s
}

package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"teeny/internal/lsp"
)

const uri = "file:///tmp/count.teeny"

const countdown = `label top
let count = count + 1
if count < 10 then
    goto top
endif
print "done"
`

// recorder captures published diagnostics.
type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last() []protocol.Diagnostic {
	if len(r.published) == 0 {
		return nil
	}
	return r.published[len(r.published)-1].Diagnostics
}

func open(t *testing.T, handler *lsp.TeenyHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "teeny", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestInitialize(t *testing.T) {
	handler := lsp.NewTeenyHandler("1.2.3")

	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	init, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, "teeny", init.ServerInfo.Name)
	assert.Equal(t, "1.2.3", *init.ServerInfo.Version)
	assert.Equal(t, true, init.Capabilities.DefinitionProvider)

	tokens, ok := init.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, tokens.Legend.TokenTypes)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	ctx := &glsp.Context{}
	open(t, handler, ctx, countdown)

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 18)

	assertToken(t, &decoded[0], 1, 1, 5, "keyword", nil)
	assertToken(t, &decoded[1], 1, 7, 3, "function", []string{"declaration"})
	assertToken(t, &decoded[2], 2, 1, 3, "keyword", nil)
	assertToken(t, &decoded[3], 2, 5, 5, "variable", []string{"declaration"})
	assertToken(t, &decoded[4], 2, 11, 1, "operator", nil)
	assertToken(t, &decoded[5], 2, 13, 5, "variable", nil)
	assertToken(t, &decoded[6], 2, 19, 1, "operator", nil)
	assertToken(t, &decoded[7], 2, 21, 1, "number", nil)
	assertToken(t, &decoded[8], 3, 1, 2, "keyword", nil)
	assertToken(t, &decoded[9], 3, 4, 5, "variable", nil)
	assertToken(t, &decoded[10], 3, 10, 1, "operator", nil)
	assertToken(t, &decoded[11], 3, 12, 2, "number", nil)
	assertToken(t, &decoded[12], 3, 15, 4, "keyword", nil)
	assertToken(t, &decoded[13], 4, 5, 4, "keyword", nil)
	assertToken(t, &decoded[14], 4, 10, 3, "function", nil)
	assertToken(t, &decoded[15], 5, 1, 5, "keyword", nil)
	assertToken(t, &decoded[16], 6, 1, 5, "keyword", nil)
	assertToken(t, &decoded[17], 6, 7, 6, "string", nil)
}

func TestSemanticTokensSurviveLexErrors(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	ctx := &glsp.Context{}
	open(t, handler, ctx, "let x = 1\nprint x $ 2\n")

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 6, "tokens before the bad character are still highlighted")
	assertToken(t, &decoded[5], 2, 7, 1, "variable", nil)
}

func TestDiagnostics(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	rec := &recorder{}
	ctx := rec.context()

	open(t, handler, ctx, "label bart\ngoto bar\n")
	diagnostics := rec.last()
	require.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, "E0200", d.Code.Value)
	assert.Equal(t, "teeny", *d.Source)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 5},
		End:   protocol.Position{Line: 1, Character: 8},
	}, d.Range)
	assert.Contains(t, d.Message, "goto targets undeclared label 'bar'")
	assert.Contains(t, d.Message, "help: did you mean 'bart'?")

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument:   protocol.VersionedTextDocumentIdentifier{TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri}, Version: 2},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "label bar\ngoto bar\n"}},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last())
	assert.Len(t, rec.published, 2)
}

func TestPositionsCountUTF16Units(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	rec := &recorder{}
	ctx := rec.context()
	// the emoji is four bytes in UTF-8 and two UTF-16 code units
	open(t, handler, ctx, "print \"\U0001F600\" 1\n")

	diagnostics := rec.last()
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "E0100", diagnostics[0].Code.Value)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 11},
		End:   protocol.Position{Line: 0, Character: 12},
	}, diagnostics[0].Range)

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assertToken(t, &decoded[1], 1, 7, 4, "string", nil)
	assertToken(t, &decoded[2], 1, 12, 1, "number", nil)
}

func TestCompletionPositionAfterNonASCII(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	ctx := &glsp.Context{}
	open(t, handler, ctx, "print \"\u00e9\U0001F600\" goto \nlabel top\n")

	result, err := handler.TextDocumentCompletion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 0, Character: 17},
		},
	})
	require.NoError(t, err)

	list := result.(*protocol.CompletionList)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "top", list.Items[0].Label)
}

func TestDiagnosticsFirstErrorOnly(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	rec := &recorder{}

	open(t, handler, rec.context(), "if 1 == 1 then\nprint )\ngoto nowhere\n")
	diagnostics := rec.last()
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "E0001", diagnostics[0].Code.Value)
	assert.Equal(t, protocol.UInteger(1), diagnostics[0].Range.Start.Line)
}

func TestWarningDiagnostics(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	rec := &recorder{}

	open(t, handler, rec.context(), "print y\n")
	diagnostics := rec.last()
	require.Len(t, diagnostics, 1)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *diagnostics[0].Severity)
	assert.Equal(t, "E0800", diagnostics[0].Code.Value)
}

func TestCompletion(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	ctx := &glsp.Context{}
	open(t, handler, ctx, "label top\nlet a = 1\ngoto \n\n")

	labelsOf := func(line, char uint32) []string {
		result, err := handler.TextDocumentCompletion(ctx, &protocol.CompletionParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: uri},
				Position:     protocol.Position{Line: line, Character: char},
			},
		})
		require.NoError(t, err)
		list := result.(*protocol.CompletionList)
		var labels []string
		for _, item := range list.Items {
			labels = append(labels, item.Label)
		}
		return labels
	}

	assert.Equal(t, []string{"top"}, labelsOf(2, 5))
	assert.Empty(t, labelsOf(0, 6))

	everything := labelsOf(3, 0)
	assert.Contains(t, everything, "endwhile")
	assert.Contains(t, everything, "print")
	assert.Contains(t, everything, "a")
	assert.NotContains(t, everything, "top")
	assert.Len(t, everything, 12)
}

func TestCompletionUsesCollectedSymbols(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	ctx := &glsp.Context{}
	open(t, handler, ctx, "input n\nlet total = total + n\nlet total = 0\n")

	// cursor inside the let target on the last line
	result, err := handler.TextDocumentCompletion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 2, Character: 5},
		},
	})
	require.NoError(t, err)

	list := result.(*protocol.CompletionList)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "n", list.Items[0].Label)
	assert.Equal(t, "total", list.Items[1].Label)
	assert.Equal(t, protocol.CompletionItemKindVariable, *list.Items[0].Kind)
}

func TestDefinition(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	ctx := &glsp.Context{}
	open(t, handler, ctx, "goto end\nprint 1\nlabel end\n")

	definition := func(line, char uint32) any {
		result, err := handler.TextDocumentDefinition(ctx, &protocol.DefinitionParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: uri},
				Position:     protocol.Position{Line: line, Character: char},
			},
		})
		require.NoError(t, err)
		return result
	}

	assert.Equal(t, protocol.Location{
		URI: uri,
		Range: protocol.Range{
			Start: protocol.Position{Line: 2, Character: 6},
			End:   protocol.Position{Line: 2, Character: 9},
		},
	}, definition(0, 6))
	assert.Nil(t, definition(1, 0))
}

func TestFormatting(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	ctx := &glsp.Context{}
	params := &protocol.DocumentFormattingParams{TextDocument: protocol.TextDocumentIdentifier{URI: uri}}

	open(t, handler, ctx, "let   x=1\nif x>0 then print x endif\n")
	edits, err := handler.TextDocumentFormatting(ctx, params)
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, "let x = 1\nif x > 0 then\n    print x\nendif\n", edits[0].NewText)
	assert.Equal(t, protocol.Position{Line: 3, Character: 0}, edits[0].Range.End)

	open(t, handler, ctx, "let x 1\n")
	edits, err = handler.TextDocumentFormatting(ctx, params)
	require.NoError(t, err)
	assert.Nil(t, edits)
}

func TestClose(t *testing.T) {
	handler := lsp.NewTeenyHandler("test")
	rec := &recorder{}
	ctx := rec.context()
	open(t, handler, ctx, "goto nowhere\n")
	require.Len(t, rec.last(), 1)

	err := handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last(), "closing clears the document's diagnostics")

	_, err = handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	assert.Error(t, err)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}

package lsp

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"teeny/grammar"
	"teeny/internal/compiler"
	"teeny/internal/lexer"
)

// document is an open buffer and the last compile of its text.
type document struct {
	text   string
	tokens []lexer.Token // lexed as far as possible, even after a lex error
	result *compiler.Result
	err    error
}

// TeenyHandler implements the LSP server handlers for teeny
type TeenyHandler struct {
	mu       sync.RWMutex
	docs     map[protocol.DocumentUri]*document
	compiler *compiler.Compiler
	log      commonlog.Logger
	version  string
}

func NewTeenyHandler(version string, opts ...compiler.Option) *TeenyHandler {
	log := commonlog.GetLogger("teeny.lsp")
	return &TeenyHandler{
		docs:     make(map[protocol.DocumentUri]*document),
		compiler: compiler.New(append([]compiler.Option{compiler.WithLogger(log)}, opts...)...),
		log:      log,
		version:  version,
	}
}

// Initialize advertises the server's capabilities
func (h *TeenyHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: true,
			},
			DefinitionProvider:         true,
			DocumentFormattingProvider: true,
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "teeny",
			Version: &h.version,
		},
	}, nil
}

func (h *TeenyHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (h *TeenyHandler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")
	return nil
}

func (h *TeenyHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (h *TeenyHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Infof("opened %s", params.TextDocument.URI)
	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange takes the last whole-document change; the server
// only advertises full sync.
func (h *TeenyHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	var text *string
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = &c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = &c.Text
			}
		}
	}
	if text == nil {
		return fmt.Errorf("no full-text change for %s", params.TextDocument.URI)
	}

	h.update(ctx, params.TextDocument.URI, *text)
	return nil
}

func (h *TeenyHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()

	publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

func (h *TeenyHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, err := h.get(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions(doc, params.Position),
	}, nil
}

func (h *TeenyHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.get(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return &protocol.SemanticTokens{Data: encodeSemanticTokens(collectSemanticTokens(doc.text, doc.tokens))}, nil
}

// TextDocumentDefinition jumps from a goto target to its label.
func (h *TeenyHandler) TextDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	doc, err := h.get(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	i := tokenAt(doc.tokens, bytePosition(doc.text, params.Position))
	if i < 1 || doc.tokens[i].Type != lexer.IDENTIFIER || doc.tokens[i-1].Type != lexer.GOTO {
		return nil, nil
	}
	name := doc.tokens[i].Lexeme
	for j := 1; j < len(doc.tokens); j++ {
		if doc.tokens[j-1].Type == lexer.LABEL && doc.tokens[j].Lexeme == name {
			return protocol.Location{URI: params.TextDocument.URI, Range: tokenRange(doc.text, doc.tokens[j])}, nil
		}
	}
	return nil, nil
}

// TextDocumentFormatting rewrites the document in canonical form. Documents
// that do not parse are left alone.
func (h *TeenyHandler) TextDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc, err := h.get(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	program, err := grammar.ParseString(params.TextDocument.URI, doc.text)
	if err != nil {
		h.log.Debugf("not formatting %s: %s", params.TextDocument.URI, err)
		return nil, nil
	}
	formatted := program.String()
	if formatted == doc.text {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{{Range: wholeDocument(doc.text), NewText: formatted}}, nil
}

func (h *TeenyHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	result, err := h.compiler.Run(text)
	doc := &document{text: text, result: result, err: err, tokens: result.Tokens}
	if doc.tokens == nil {
		doc.tokens, _ = lexer.New(text).Tokens()
	}

	h.mu.Lock()
	h.docs[uri] = doc
	h.mu.Unlock()

	publish(ctx, uri, diagnostics(doc))
}

func (h *TeenyHandler) get(uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.docs[uri]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}
	return doc, nil
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

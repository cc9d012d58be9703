package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"dwarf/internal/compiler"
	"dwarf/internal/types"
	"dwarf/token"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var log = commonlog.GetLogger("dwarf.lsp")

var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"function",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"string",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
}

// DwarfHandler serves one editor session. Documents are keyed by file path.
type DwarfHandler struct {
	mu    sync.RWMutex
	model types.Catalog
	units map[string]*compiler.Unit
}

// NewDwarfHandler creates a handler. model may be nil, in which case
// documents are parsed and analyzed but not lowered.
func NewDwarfHandler(model types.Catalog) *DwarfHandler {
	return &DwarfHandler{
		model: model,
		units: make(map[string]*compiler.Unit),
	}
}

func (h *DwarfHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initializing dwarf language server")

	capabilities := protocol.ServerCapabilities{
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
			Full: ptrBool(true),
		},
	}

	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: "dwarf",
		},
	}, nil
}

func (h *DwarfHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (h *DwarfHandler) Shutdown(ctx *glsp.Context) error {
	return nil
}

func (h *DwarfHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (h *DwarfHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}
	h.update(ctx, params.TextDocument.URI, path, params.TextDocument.Text)
	return nil
}

func (h *DwarfHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	delete(h.units, path)
	h.mu.Unlock()
	return nil
}

func (h *DwarfHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	// Sync is full, so the last whole-document change wins.
	text, ok := "", false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text, ok = c.Text, true
			}
		}
	}
	if !ok {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Errorf("could not read %s: %s", path, err)
			return err
		}
		text = string(data)
	}

	h.update(ctx, params.TextDocument.URI, path, text)
	return nil
}

func (h *DwarfHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	keywordKind := protocol.CompletionItemKindKeyword
	structKind := protocol.CompletionItemKindStruct

	words := token.Keywords()
	sort.Strings(words)

	items := make([]protocol.CompletionItem, 0, len(words))
	for _, w := range words {
		items = append(items, protocol.CompletionItem{Label: w, Kind: &keywordKind})
	}

	if path, err := uriToPath(params.TextDocument.URI); err == nil {
		h.mu.RLock()
		unit := h.units[path]
		h.mu.RUnlock()
		for _, name := range structNames(unit) {
			items = append(items, protocol.CompletionItem{Label: name, Kind: &structKind})
		}
	}

	return items, nil
}

func (h *DwarfHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	unit, err := h.getOrLoad(ctx, params.TextDocument.URI, path)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(unit.Source, unit.Result)

	// Delta encoding relative to the previous token
	var data []protocol.UInteger
	var prevLine, prevStart uint32
	for i, tok := range tokens {
		deltaLine := tok.Line
		deltaStart := tok.StartChar
		if i > 0 {
			deltaLine = tok.Line - prevLine
			if deltaLine == 0 {
				deltaStart = tok.StartChar - prevStart
			}
		}

		data = append(data,
			deltaLine,
			deltaStart,
			tok.Length,
			protocol.UInteger(tok.TokenType),
			protocol.UInteger(tok.TokenModifiers),
		)

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return &protocol.SemanticTokens{Data: data}, nil
}

// Diagnostics returns the last published diagnostics for path.
func (h *DwarfHandler) Diagnostics(path string) []protocol.Diagnostic {
	h.mu.RLock()
	unit := h.units[path]
	h.mu.RUnlock()
	if unit == nil {
		return nil
	}
	return ConvertDiagnostics(unit.Source, unit.Diagnostics)
}

func (h *DwarfHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, path, text string) *compiler.Unit {
	unit := compiler.Check(path, text, h.model)

	h.mu.Lock()
	h.units[path] = unit
	h.mu.Unlock()

	log.Debugf("checked %s: %d diagnostics", path, len(unit.Diagnostics))
	sendDiagnosticNotification(ctx, uri, ConvertDiagnostics(text, unit.Diagnostics))
	return unit
}

func (h *DwarfHandler) getOrLoad(ctx *glsp.Context, uri protocol.DocumentUri, path string) (*compiler.Unit, error) {
	h.mu.RLock()
	unit, ok := h.units[path]
	h.mu.RUnlock()
	if ok {
		return unit, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return h.update(ctx, uri, path, string(data)), nil
}

func structNames(unit *compiler.Unit) []string {
	if unit == nil || unit.Result == nil || unit.Result.File == nil {
		return nil
	}
	var names []string
	for _, s := range unit.Result.File.Items.Structs() {
		names = append(names, s.Name.Value)
	}
	return names
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// /C:/... on Windows
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}

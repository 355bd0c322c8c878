// Package lsp serves superset sources over the language server protocol.
// Open documents are parsed on every change and syntax errors published as
// diagnostics; formatting a document replaces it with its plain Java
// lowering.
package lsp

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/jpp/config"
	"github.com/dhamidi/jpp/format"
	"github.com/dhamidi/jpp/java/parser"
)

const lsName = "jpp"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	log     commonlog.Logger

	mu   sync.Mutex
	opts format.Options
	docs map[protocol.DocumentUri]string
}

func NewServer(version string) *Server {
	ls := &Server{
		version: version,
		log:     commonlog.GetLogger("jpp.lsp"),
		opts:    format.DefaultOptions(),
		docs:    map[protocol.DocumentUri]string{},
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentFormatting: ls.textDocumentFormatting,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}
	ls.configure(rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.DocumentFormattingProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

// configure loads the project file governing rootDir. A broken project
// file is logged and the defaults are kept.
func (ls *Server) configure(rootDir string) {
	c, path, err := config.FindAndLoad(rootDir)
	if err != nil {
		ls.log.Errorf("%s", err)
		return
	}
	opts, err := format.OptionsFromConfig(c)
	if err != nil {
		ls.log.Errorf("%s", err)
		return
	}
	if path != "" {
		ls.log.Infof("using %s", path)
	}
	ls.mu.Lock()
	ls.opts = opts
	ls.mu.Unlock()
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.docs, params.TextDocument.URI)
	ls.mu.Unlock()
	publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *Server) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	ls.mu.Lock()
	text, ok := ls.docs[params.TextDocument.URI]
	opts := ls.opts
	ls.mu.Unlock()
	if !ok {
		return nil, nil
	}
	opts.File = displayPath(params.TextDocument.URI)
	ls.log.Debugf("formatting %s", opts.File)
	return FormatEdits(text, opts)
}

func (ls *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	ls.mu.Lock()
	ls.docs[uri] = text
	opts := ls.opts
	ls.mu.Unlock()
	opts.File = displayPath(uri)
	publish(ctx, uri, Diagnostics(text, opts))
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Diagnostics parses text and reports its first error. A clean parse
// yields an empty, non-nil slice so that clients clear stale markers.
func Diagnostics(text string, opts format.Options) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	_, err := format.Parse(strings.NewReader(text), opts)
	if err == nil {
		return diagnostics
	}
	pos, msg := errorPosition(err)
	start := protocol.Position{}
	if pos.Line > 0 {
		start = positionOf(text, pos.Line, pos.Column)
	}
	return append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: start},
		Severity: severityPtr(protocol.DiagnosticSeverityError),
		Source:   stringPtr(lsName),
		Message:  msg,
	})
}

func errorPosition(err error) (parser.Position, string) {
	var se *parser.SyntaxError
	if errors.As(err, &se) {
		msg := se.Msg
		if se.Expected != "" {
			msg = "expected " + se.Expected + ", found " + se.Found.String()
		}
		return se.Pos, msg
	}
	var fe *parser.FeatureError
	if errors.As(err, &fe) {
		return fe.Pos, parser.ErrFeatureDisabled.Error() + ": " + fe.Feature.String()
	}
	return parser.Position{}, err.Error()
}

// FormatEdits returns a single edit replacing the whole of text with its
// lowering.
func FormatEdits(text string, opts format.Options) ([]protocol.TextEdit, error) {
	out, err := format.Transpile(strings.NewReader(text), opts)
	if err != nil {
		return nil, err
	}
	return []protocol.TextEdit{{
		Range:   protocol.Range{End: endOf(text)},
		NewText: out,
	}}, nil
}

// endOf returns the position just past the last character of text, with
// columns counted in UTF-16 code units.
func endOf(text string) protocol.Position {
	line := strings.Count(text, "\n")
	last := text[strings.LastIndexByte(text, '\n')+1:]
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(utf16Len(last))}
}

// positionOf converts a one-based line and rune column into a protocol
// position counted in UTF-16 code units.
func positionOf(text string, line, column int) protocol.Position {
	rest := text
	for i := 1; i < line; i++ {
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			rest = ""
			break
		}
		rest = rest[nl+1:]
	}
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	var prefix []rune
	for _, r := range rest {
		if len(prefix) >= column-1 {
			break
		}
		prefix = append(prefix, r)
	}
	return protocol.Position{
		Line:      protocol.UInteger(line - 1),
		Character: protocol.UInteger(utf16Len(string(prefix))),
	}
}

func utf16Len(s string) int {
	var units int
	for _, r := range s {
		units += len(utf16.Encode([]rune{r}))
	}
	return units
}

func displayPath(uri protocol.DocumentUri) string {
	if path, err := uriToPath(uri); err == nil {
		return path
	}
	return uri
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

package main

import (
	"context"
	"errors"
	"sync"

	"github.com/signadot/rpgmap/ir"
	"github.com/signadot/rpgmap/parse"

	"go.lsp.dev/protocol"
)

type document struct {
	text      string
	node      *ir.Node
	positions map[*ir.Node]parse.Pos
	err       error
}

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) set(uri string, doc *document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) delete(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// load parses text twice: generically with positions for hover, and
// into the map layout for errors a converter would report.
func load(text string) *document {
	doc := &document{text: text, positions: map[*ir.Node]parse.Pos{}}
	node, err := parse.ParseGeneric([]byte(text), parse.ParsePositions(doc.positions), parse.ParseLogger(theLog))
	if err != nil {
		doc.err = err
		return doc
	}
	doc.node = node
	if _, err := parse.Parse([]byte(text), parse.ParseLogger(theLog)); err != nil {
		doc.err = err
	}
	return doc
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := load(params.TextDocument.Text)
	s.docs.set(uri, doc)
	return s.publish(ctx, params.TextDocument.URI, doc)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	n := len(params.ContentChanges)
	if n == 0 {
		return nil
	}
	doc := load(params.ContentChanges[n-1].Text)
	s.docs.set(string(params.TextDocument.URI), doc)
	return s.publish(ctx, params.TextDocument.URI, doc)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.delete(string(params.TextDocument.URI))
	return s.publish(ctx, params.TextDocument.URI, &document{})
}

func (s *Server) publish(ctx context.Context, uri protocol.DocumentURI, doc *document) error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics(doc.err),
	})
}

// diagnostics turns a parse error into editor diagnostics. Positions
// from the parser start at 1, editor positions at 0.
func diagnostics(err error) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if err == nil {
		return res
	}
	msg := err.Error()
	var p parse.Pos
	var pe *parse.PosError
	if errors.As(err, &pe) {
		p = pe.Pos
		msg = pe.Msg
	}
	line, col := uint32(0), uint32(0)
	if p.Line > 0 {
		line = uint32(p.Line - 1)
	}
	if p.Column > 0 {
		col = uint32(p.Column - 1)
	}
	return append(res, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + 1},
		},
		Severity: protocol.DiagnosticSeverityError,
		Source:   lsName,
		Message:  msg,
	})
}

package main

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/treespan/treespan/textpos"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri        string
	languageID string
	content    string
	version    int32
	pos        *textpos.Doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri, languageID, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = &document{
		uri:        uri,
		languageID: languageID,
		content:    content,
		version:    version,
		pos:        textpos.New(content),
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	td := params.TextDocument
	s.docs.put(string(td.URI), string(td.LanguageID), td.Text, td.Version)
	s.log.Debug("opened", "uri", td.URI, "language", td.LanguageID)
	return nil
}

// DidChange replaces the document wholesale; the server announces full sync,
// and every mapping call re-parses anyway.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = change.Text
	}
	s.docs.put(doc.uri, doc.languageID, content, params.TextDocument.Version)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/mapper"
)

// Hover reports the structural address under the cursor and the exact text
// it covers.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	m, ok := mapper.Select(doc.languageID, doc.uri)
	if !ok {
		return nil, nil
	}
	offset := doc.pos.Offset(int(params.Position.Line), int(params.Position.Character))
	ptr, ok := m.PointerAt(doc.content, offset)
	if !ok {
		return nil, nil
	}
	hover := &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: fmt.Sprintf("`%s`", displayPointer(ptr.String())),
		},
	}
	sp, ok := m.SpanOf(doc.content, ptr)
	if !ok {
		return hover, nil
	}
	rng := doc.lspRange(sp)
	hover.Range = &rng
	hover.Contents.Value = fmt.Sprintf("`%s`\n\ncovers `%s`",
		displayPointer(ptr.String()), doc.content[sp.Start:sp.End])
	return hover, nil
}

// DocumentHighlight highlights the range of the node containing the cursor.
func (s *Server) DocumentHighlight(ctx context.Context, params *protocol.DocumentHighlightParams) ([]protocol.DocumentHighlight, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	m, ok := mapper.Select(doc.languageID, doc.uri)
	if !ok {
		return nil, nil
	}
	offset := doc.pos.Offset(int(params.Position.Line), int(params.Position.Character))
	ptr, ok := m.PointerAt(doc.content, offset)
	if !ok {
		return nil, nil
	}
	sp, ok := m.SpanOf(doc.content, ptr)
	if !ok {
		return nil, nil
	}
	return []protocol.DocumentHighlight{{
		Range: doc.lspRange(sp),
		Kind:  protocol.DocumentHighlightKindText,
	}}, nil
}

func (doc *document) lspRange(sp ast.Span) protocol.Range {
	sl, sc := doc.pos.LineCol(sp.Start)
	el, ec := doc.pos.LineCol(sp.End)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(sl), Character: uint32(sc)},
		End:   protocol.Position{Line: uint32(el), Character: uint32(ec)},
	}
}

// displayPointer keeps the root pointer visible in hover text.
func displayPointer(s string) string {
	if s == "" {
		return "/"
	}
	return s
}

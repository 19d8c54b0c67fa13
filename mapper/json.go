package mapper

import (
	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/parse"
	"github.com/treespan/treespan/pointer"
)

// JSON maps JSON, JSONC, and JSON5 documents through the tolerant parser.
type JSON struct{}

func (JSON) PointerAt(text string, offset int) (pointer.Pointer, bool) {
	off, ok := clampOffset(text, offset)
	if !ok {
		return nil, false
	}
	root := parse.Parse(text)
	if root == nil {
		return nil, false
	}
	return ast.PointerAt(root, off), true
}

func (JSON) SpanOf(text string, ptr pointer.Pointer) (ast.Span, bool) {
	root := parse.Parse(text)
	if root == nil {
		return ast.Span{}, false
	}
	node, ok := ast.FindPointer(root, ptr)
	if !ok {
		return ast.Span{}, false
	}
	return node.Span(), true
}

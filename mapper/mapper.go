// Package mapper translates between cursor offsets in structured-data text
// and JSON-Pointer-shaped structural addresses, one Mapper per format
// family. Every operation is a pure function of its arguments: each call
// re-parses the supplied text, so edits between calls can never leave a
// mapper holding a stale model.
package mapper

import (
	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/pointer"
)

// Mapper is a pair of pure functions translating between a structural
// address and a text range for one format. PointerAt maps a cursor offset
// to the address of the containing node; SpanOf maps an address back to the
// exact range it occupies. Both report ok=false instead of failing: a false
// result means "selection cannot be synced this time", never a fatal
// condition.
type Mapper interface {
	PointerAt(text string, offset int) (pointer.Pointer, bool)
	SpanOf(text string, ptr pointer.Pointer) (ast.Span, bool)
}

// clampOffset rejects negative offsets and clamps overshooting ones to the
// end of text.
func clampOffset(text string, offset int) (int, bool) {
	if offset < 0 {
		return 0, false
	}
	if offset > len(text) {
		return len(text), true
	}
	return offset, true
}

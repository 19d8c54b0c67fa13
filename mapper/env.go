package mapper

import (
	"strconv"

	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/pointer"
)

// Env addresses each line as one unit: [lineIndex]. Besides dotenv files it
// serves TOML, which reuses this mapper verbatim.
type Env struct{}

func (Env) PointerAt(text string, offset int) (pointer.Pointer, bool) {
	off, ok := clampOffset(text, offset)
	if !ok {
		return nil, false
	}
	row, _ := lineAt(text, off)
	return pointer.Pointer{strconv.Itoa(row)}, true
}

// SpanOf returns the line's span excluding its terminator.
func (Env) SpanOf(text string, ptr pointer.Pointer) (ast.Span, bool) {
	if len(ptr) != 1 {
		return ast.Span{}, false
	}
	row, err := strconv.ParseUint(ptr[0], 10, 31)
	if err != nil {
		return ast.Span{}, false
	}
	return lineSpan(text, int(row))
}

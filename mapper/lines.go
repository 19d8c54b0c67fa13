package mapper

import (
	"strings"

	"github.com/treespan/treespan/ast"
)

// terminatorWidth detects the line-terminator width once per call: 2 for
// \r\n text, 1 otherwise.
func terminatorWidth(text string) int {
	if strings.Contains(text, "\r\n") {
		return 2
	}
	return 1
}

func splitLines(text string) []string {
	if terminatorWidth(text) == 2 {
		return strings.Split(text, "\r\n")
	}
	return strings.Split(text, "\n")
}

// lineAt walks cumulative line lengths to the line owning offset and
// returns its index and terminator-free span. Offsets past the last line
// clamp to it.
func lineAt(text string, offset int) (int, ast.Span) {
	lines := splitLines(text)
	tw := terminatorWidth(text)
	start := 0
	for i, line := range lines {
		end := start + len(line)
		if offset <= end || i == len(lines)-1 {
			return i, ast.Span{Start: start, End: end}
		}
		start = end + tw
	}
	return 0, ast.Span{}
}

// lineSpan recomputes the span of line idx by the same cumulative walk.
func lineSpan(text string, idx int) (ast.Span, bool) {
	lines := splitLines(text)
	if idx < 0 || idx >= len(lines) {
		return ast.Span{}, false
	}
	tw := terminatorWidth(text)
	start := 0
	for i, line := range lines {
		end := start + len(line)
		if i == idx {
			return ast.Span{Start: start, End: end}, true
		}
		start = end + tw
	}
	return ast.Span{}, false
}

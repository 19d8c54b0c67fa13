// Package textpos converts between character offsets and line/column
// positions over a fixed text.
package textpos

import (
	"sort"
	"strings"
)

// Doc indexes the line starts of one text. Lines and columns are 0-based.
type Doc struct {
	text   string
	starts []int
}

func New(text string) *Doc {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Doc{text: text, starts: starts}
}

func (d *Doc) NumLines() int {
	return len(d.starts)
}

// LineCol returns the line and column of offset, clamped into the text.
func (d *Doc) LineCol(offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.text) {
		offset = len(d.text)
	}
	line := sort.Search(len(d.starts), func(i int) bool {
		return d.starts[i] > offset
	}) - 1
	return line, offset - d.starts[line]
}

// Offset returns the character offset of (line, col), clamped so the result
// never leaves the text or spills onto the next line.
func (d *Doc) Offset(line, col int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.starts) {
		return len(d.text)
	}
	if col < 0 {
		col = 0
	}
	off := d.starts[line] + col
	end := d.lineEnd(line)
	if off > end {
		off = end
	}
	return off
}

// LineSpan returns the [start, end) span of a line excluding its
// terminator.
func (d *Doc) LineSpan(line int) (start, end int, ok bool) {
	if line < 0 || line >= len(d.starts) {
		return 0, 0, false
	}
	return d.starts[line], d.lineEnd(line), true
}

func (d *Doc) lineEnd(line int) int {
	if line+1 < len(d.starts) {
		end := d.starts[line+1] - 1 // drop '\n'
		if strings.HasSuffix(d.text[:end+1], "\r\n") {
			end--
		}
		return end
	}
	return len(d.text)
}

package mapper

import (
	"strconv"
	"strings"

	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/pointer"
)

// CSV maps delimited text to [rowIndex, columnIndex] addresses. The field
// separator is sniffed per call, so the same mapper serves CSV and TSV.
// Rows split on the raw separator with no quote awareness: a quoted field
// containing the separator counts as several fields. That is a documented
// limitation of this mapper, not one to silently fix.
type CSV struct{}

func (CSV) PointerAt(text string, offset int) (pointer.Pointer, bool) {
	off, ok := clampOffset(text, offset)
	if !ok {
		return nil, false
	}
	delim := Sniff(text, nil)
	row, span := lineAt(text, off)
	inRow := off - span.Start
	if inRow > span.Len() {
		inRow = span.Len()
	}
	fields := strings.Split(text[span.Start:span.End], string(delim))
	col := len(fields) - 1 // default to the last field past all separators
	start := 0
	for i, f := range fields {
		end := start + len(f)
		if inRow <= end {
			col = i
			break
		}
		start = end + 1
	}
	return pointer.Pointer{strconv.Itoa(row), strconv.Itoa(col)}, true
}

func (CSV) SpanOf(text string, ptr pointer.Pointer) (ast.Span, bool) {
	if len(ptr) != 2 {
		return ast.Span{}, false
	}
	row, err := strconv.ParseUint(ptr[0], 10, 31)
	if err != nil {
		return ast.Span{}, false
	}
	col, err := strconv.ParseUint(ptr[1], 10, 31)
	if err != nil {
		return ast.Span{}, false
	}
	span, ok := lineSpan(text, int(row))
	if !ok {
		return ast.Span{}, false
	}
	delim := Sniff(text, nil)
	fields := strings.Split(text[span.Start:span.End], string(delim))
	if int(col) >= len(fields) {
		return ast.Span{}, false
	}
	start := span.Start
	for i := 0; i < int(col); i++ {
		start += len(fields[i]) + 1
	}
	return ast.Span{Start: start, End: start + len(fields[col])}, true
}

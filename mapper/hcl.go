package mapper

import (
	"regexp"
	"strconv"

	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/pointer"
)

var hclIdentRe = regexp.MustCompile(`^[ \t]*[A-Za-z_][\w-]*`)

// HCL treats every line beginning with an identifier token as one
// addressable unit, counted from the top of the file: [occurrenceIndex].
// Nested blocks, strings, and comments are not modeled.
type HCL struct{}

func (HCL) PointerAt(text string, offset int) (pointer.Pointer, bool) {
	off, ok := clampOffset(text, offset)
	if !ok {
		return nil, false
	}
	target, _ := lineAt(text, off)
	occurrence := -1
	for i, line := range splitLines(text) {
		if hclIdentRe.MatchString(line) {
			occurrence++
		}
		if i == target {
			break
		}
	}
	// A cursor on a closing brace or blank line falls back to the most
	// recent addressable line.
	if occurrence < 0 {
		return nil, false
	}
	return pointer.Pointer{strconv.Itoa(occurrence)}, true
}

func (HCL) SpanOf(text string, ptr pointer.Pointer) (ast.Span, bool) {
	if len(ptr) != 1 {
		return ast.Span{}, false
	}
	want, err := strconv.ParseUint(ptr[0], 10, 31)
	if err != nil {
		return ast.Span{}, false
	}
	occurrence := -1
	for i, line := range splitLines(text) {
		if !hclIdentRe.MatchString(line) {
			continue
		}
		occurrence++
		if occurrence == int(want) {
			return lineSpan(text, i)
		}
	}
	return ast.Span{}, false
}

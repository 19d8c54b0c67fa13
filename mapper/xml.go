package mapper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/pointer"
)

var xmlNameRe = regexp.MustCompile(`^[A-Za-z_][\w.:-]*`)

// XML is a shallow tag-occurrence heuristic. The forward pass counts prior
// start tags sharing the found tag's name; the backward pass counts start
// tags across all names in document order. The asymmetry is a known
// correctness gap carried as-is: round trips hold only for documents whose
// start-tag order matches per-name order. A cursor before the first '<'
// (leading whitespace, an XML declaration-free prolog) resolves forward to
// the first tag instead of reporting no result.
type XML struct{}

func (XML) PointerAt(text string, offset int) (pointer.Pointer, bool) {
	off, ok := clampOffset(text, offset)
	if !ok {
		return nil, false
	}
	// Nearest '<' at or before the offset.
	limit := off
	if limit > len(text) {
		limit = len(text)
	}
	lt := strings.LastIndexByte(text[:limit], '<')
	if lt < 0 {
		if lt = strings.IndexByte(text, '<'); lt < 0 {
			return nil, false
		}
	}
	nameStart := lt + 1
	if nameStart < len(text) && text[nameStart] == '/' {
		nameStart++
	}
	name := xmlNameRe.FindString(text[nameStart:])
	if name == "" {
		return nil, false
	}
	occurrence := countStartTags(text[:lt], name)
	return pointer.Pointer{strconv.Itoa(occurrence)}, true
}

func (XML) SpanOf(text string, ptr pointer.Pointer) (ast.Span, bool) {
	if len(ptr) != 1 {
		return ast.Span{}, false
	}
	want, err := strconv.ParseUint(ptr[0], 10, 31)
	if err != nil {
		return ast.Span{}, false
	}
	occurrence := -1
	for i := 0; i < len(text); i++ {
		if text[i] != '<' {
			continue
		}
		if i+1 >= len(text) || xmlNameRe.FindString(text[i+1:]) == "" {
			continue
		}
		occurrence++
		if occurrence != int(want) {
			continue
		}
		end := strings.IndexByte(text[i:], '>')
		if end < 0 {
			return ast.Span{Start: i, End: len(text)}, true
		}
		return ast.Span{Start: i, End: i + end + 1}, true
	}
	return ast.Span{}, false
}

// countStartTags counts start tags named name in head, so the result is the
// occurrence index of the next one.
func countStartTags(head, name string) int {
	count := 0
	for i := 0; i+len(name) < len(head); i++ {
		if head[i] != '<' {
			continue
		}
		rest := head[i+1:]
		if !strings.HasPrefix(rest, name) {
			continue
		}
		after := rest[len(name):]
		if after == "" || after[0] == ' ' || after[0] == '>' || after[0] == '/' ||
			after[0] == '\t' || after[0] == '\n' || after[0] == '\r' {
			count++
		}
	}
	return count
}

package mapper

import (
	"regexp"
	"strconv"

	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/pointer"
)

var (
	iniSectionRe = regexp.MustCompile(`^\s*\[.*\]\s*$`)
	iniKeyRe     = regexp.MustCompile(`^\s*[^;#\s].*=`)
)

// INI maps sectioned key files. Section headers address as
// [sectionIndex]; key lines inside a section as [sectionIndex, keyIndex];
// key lines above any section as ["-", lineIndex], the "-" sentinel marking
// "no section". Both directions recompute counts by one linear scan from
// the top, which is fine since every call re-parses anyway.
type INI struct{}

const noSection = "-"

func (INI) PointerAt(text string, offset int) (pointer.Pointer, bool) {
	off, ok := clampOffset(text, offset)
	if !ok {
		return nil, false
	}
	target, _ := lineAt(text, off)
	section := -1
	key := 0
	for i, line := range splitLines(text) {
		header := iniSectionRe.MatchString(line)
		if header {
			section++
			key = 0
		}
		if i != target {
			if !header && iniKeyRe.MatchString(line) {
				key++
			}
			continue
		}
		switch {
		case header:
			return pointer.Pointer{strconv.Itoa(section)}, true
		case iniKeyRe.MatchString(line) && section >= 0:
			return pointer.Pointer{strconv.Itoa(section), strconv.Itoa(key)}, true
		case section >= 0:
			// Comment or blank inside a section: best effort, the
			// section itself.
			return pointer.Pointer{strconv.Itoa(section)}, true
		default:
			return pointer.Pointer{noSection, strconv.Itoa(i)}, true
		}
	}
	return nil, false
}

func (INI) SpanOf(text string, ptr pointer.Pointer) (ast.Span, bool) {
	switch len(ptr) {
	case 1:
		want, err := strconv.ParseUint(ptr[0], 10, 31)
		if err != nil {
			return ast.Span{}, false
		}
		section := -1
		for i, line := range splitLines(text) {
			if !iniSectionRe.MatchString(line) {
				continue
			}
			section++
			if section == int(want) {
				return lineSpan(text, i)
			}
		}
		return ast.Span{}, false
	case 2:
		if ptr[0] == noSection {
			row, err := strconv.ParseUint(ptr[1], 10, 31)
			if err != nil {
				return ast.Span{}, false
			}
			return lineSpan(text, int(row))
		}
		wantSection, err := strconv.ParseUint(ptr[0], 10, 31)
		if err != nil {
			return ast.Span{}, false
		}
		wantKey, err := strconv.ParseUint(ptr[1], 10, 31)
		if err != nil {
			return ast.Span{}, false
		}
		section := -1
		key := 0
		for i, line := range splitLines(text) {
			if iniSectionRe.MatchString(line) {
				section++
				key = 0
				continue
			}
			if section != int(wantSection) || !iniKeyRe.MatchString(line) {
				continue
			}
			if key == int(wantKey) {
				return lineSpan(text, i)
			}
			key++
		}
		return ast.Span{}, false
	}
	return ast.Span{}, false
}

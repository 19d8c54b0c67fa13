package ast_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/parse"
	"github.com/treespan/treespan/pointer"
)

const doc = `{"a":{"b":1},"c":[10,20]}`

func TestPointerAt(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   pointer.Pointer
	}{
		{"value of b", strings.Index(doc, "1}"), pointer.Pointer{"a", "b"}},
		{"key a", strings.Index(doc, `"a"`) + 1, pointer.Pointer{"a"}},
		{"first array item", strings.Index(doc, "10"), pointer.Pointer{"c", "0"}},
		{"second array item", strings.Index(doc, "20"), pointer.Pointer{"c", "1"}},
		{"opening brace", 0, pointer.Pointer{}},
	}
	root := parse.Parse(doc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ast.PointerAt(root, tt.offset)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PointerAt(%d) (-want +got):\n%s", tt.offset, diff)
			}
		})
	}
}

func TestPointerAtWhitespaceFallback(t *testing.T) {
	text := "{\n  \"a\": 1,\n  \"b\": [1, 2]\n}"
	root := parse.Parse(text)
	// Cursor in the gap after "1," falls back to the last member started
	// at or before it.
	off := strings.Index(text, "1,") + 2
	got := ast.PointerAt(root, off)
	want := pointer.Pointer{"a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fallback pointer (-want +got):\n%s", diff)
	}
}

func TestFindPointer(t *testing.T) {
	root := parse.Parse(doc)
	tests := []struct {
		ptr  pointer.Pointer
		want string // raw text of the found node
	}{
		{pointer.Pointer{}, doc},
		{pointer.Pointer{"a"}, `{"b":1}`},
		{pointer.Pointer{"a", "b"}, "1"},
		{pointer.Pointer{"c"}, "[10,20]"},
		{pointer.Pointer{"c", "1"}, "20"},
	}
	for _, tt := range tests {
		node, ok := ast.FindPointer(root, tt.ptr)
		if !ok {
			t.Errorf("FindPointer(%v) not found", tt.ptr)
			continue
		}
		sp := node.Span()
		if got := doc[sp.Start:sp.End]; got != tt.want {
			t.Errorf("FindPointer(%v) covers %q, want %q", tt.ptr, got, tt.want)
		}
	}
}

func TestFindPointerMisses(t *testing.T) {
	root := parse.Parse(doc)
	misses := []pointer.Pointer{
		{"nope"},
		{"a", "b", "deeper"},   // indexing into a scalar
		{"c", "2"},             // out of range
		{"c", "x"},             // non-numeric array index
		{"c", "-1"},            // negative index
		{"c", "+1"},            // sign prefix is not a base-10 index
	}
	for _, ptr := range misses {
		if _, ok := ast.FindPointer(root, ptr); ok {
			t.Errorf("FindPointer(%v) unexpectedly found a node", ptr)
		}
	}
}

func TestDuplicateKeysFirstMatch(t *testing.T) {
	text := `{"k": 1, "k": 2}`
	root := parse.Parse(text)
	node, ok := ast.FindPointer(root, pointer.Pointer{"k"})
	if !ok {
		t.Fatal("duplicate key not found")
	}
	sp := node.Span()
	if text[sp.Start:sp.End] != "1" {
		t.Errorf("duplicate key resolved to %q, want first value \"1\"", text[sp.Start:sp.End])
	}
}

// For any resolvable pointer p, PointerAt(text, FindPointer(p).Start) == p.
func TestForwardBackwardIdempotence(t *testing.T) {
	text := `{"a": {"b": [1, {"c": "x"}], "d": null}, "e": [true, false]}`
	root := parse.Parse(text)
	ptrs := []pointer.Pointer{
		{"a"},
		{"a", "b"},
		{"a", "b", "0"},
		{"a", "b", "1", "c"},
		{"a", "d"},
		{"e", "1"},
	}
	for _, ptr := range ptrs {
		node, ok := ast.FindPointer(root, ptr)
		if !ok {
			t.Fatalf("FindPointer(%v) not found", ptr)
		}
		got := ast.PointerAt(root, node.Span().Start)
		if diff := cmp.Diff(ptr, got); diff != "" {
			t.Errorf("idempotence broken for %v (-want +got):\n%s", ptr, diff)
		}
	}
}

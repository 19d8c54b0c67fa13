package mapper

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treespan/treespan/pointer"
)

func TestJSONRoundTrip(t *testing.T) {
	text := `{"a":{"b":1},"c":[10,20]}`
	m := JSON{}

	ptr, ok := m.PointerAt(text, strings.Index(text, "1}"))
	if !ok {
		t.Fatal("forward failed")
	}
	if diff := cmp.Diff(pointer.Pointer{"a", "b"}, ptr); diff != "" {
		t.Errorf("forward (-want +got):\n%s", diff)
	}

	backPtr, err := pointer.Parse("/c/1")
	if err != nil {
		t.Fatal(err)
	}
	sp, ok := m.SpanOf(text, backPtr)
	if !ok {
		t.Fatal("backward failed")
	}
	if got := text[sp.Start:sp.End]; got != "20" {
		t.Errorf("backward covers %q, want \"20\"", got)
	}
}

func TestJSONIdempotence(t *testing.T) {
	text := `{"user": {"name": "ada", "langs": ["go", "ml"]}, "n": 5}`
	m := JSON{}
	for _, raw := range []string{"/user/name", "/user/langs/1", "/n"} {
		ptr, err := pointer.Parse(raw)
		if err != nil {
			t.Fatal(err)
		}
		sp, ok := m.SpanOf(text, ptr)
		if !ok {
			t.Fatalf("SpanOf(%s) failed", raw)
		}
		got, ok := m.PointerAt(text, sp.Start)
		if !ok {
			t.Fatalf("PointerAt(%d) failed", sp.Start)
		}
		if diff := cmp.Diff(ptr, got); diff != "" {
			t.Errorf("idempotence broken for %s (-want +got):\n%s", raw, diff)
		}
	}
}

func TestJSONToleratesCommentsAndTrailingComma(t *testing.T) {
	text := "{\n // note\n \"a\": 1,\n}"
	m := JSON{}
	ptr, ok := m.PointerAt(text, strings.Index(text, "1,"))
	if !ok {
		t.Fatal("forward failed on tolerated input")
	}
	if diff := cmp.Diff(pointer.Pointer{"a"}, ptr); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestJSONNoResult(t *testing.T) {
	m := JSON{}
	if _, ok := m.PointerAt("", 0); ok {
		t.Error("empty text should map to no result")
	}
	if _, ok := m.PointerAt(`{"a":1}`, -1); ok {
		t.Error("negative offset should map to no result")
	}
	if _, ok := m.SpanOf(`{"a":1}`, pointer.Pointer{"zzz"}); ok {
		t.Error("missing key should map to no result")
	}
	// Overshooting offsets clamp instead of failing.
	if _, ok := m.PointerAt(`{"a":1}`, 10_000); !ok {
		t.Error("overshooting offset should clamp")
	}
}

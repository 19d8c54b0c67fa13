package pointer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		ptr  Pointer
		want string
	}{
		{"root", Pointer{}, ""},
		{"single", Pointer{"a"}, "/a"},
		{"nested", Pointer{"a", "b", "0"}, "/a/b/0"},
		{"empty segment", Pointer{""}, "/"},
		{"tilde", Pointer{"a~b"}, "/a~0b"},
		{"slash", Pointer{"a/b"}, "/a~1b"},
		{"both", Pointer{"~/"}, "/~0~1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ptr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Pointer
	}{
		{"", Pointer{}},
		{"/a", Pointer{"a"}},
		{"/a/b/0", Pointer{"a", "b", "0"}},
		{"/", Pointer{""}},
		{"/a~0b", Pointer{"a~b"}},
		{"/a~1b", Pointer{"a/b"}},
		{"/~01", Pointer{"~1"}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"a", "a/b", "~1", " /a"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidPointer) {
			t.Errorf("Parse(%q) = %v, want ErrInvalidPointer", in, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	ptrs := []Pointer{
		{},
		{"a"},
		{"a", "b~c", "d/e", "0"},
		{"", "~", "/"},
	}
	for _, ptr := range ptrs {
		got, err := Parse(ptr.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", ptr.String(), err)
		}
		if diff := cmp.Diff(ptr, got); diff != "" {
			t.Errorf("round trip of %q (-want +got):\n%s", ptr.String(), diff)
		}
	}
}

func TestAppendDoesNotMutate(t *testing.T) {
	base := Pointer{"a"}
	p1 := base.Append("b")
	p2 := base.Append("c")
	if p1[1] != "b" || p2[1] != "c" {
		t.Errorf("Append shared backing array: %v %v", p1, p2)
	}
	if len(base) != 1 {
		t.Errorf("Append mutated receiver: %v", base)
	}
}

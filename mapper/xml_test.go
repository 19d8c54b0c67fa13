package mapper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treespan/treespan/pointer"
)

const xmlDoc = `<root><item id="1"/><item id="2"/><note>x</note></root>`

func TestXMLForward(t *testing.T) {
	m := XML{}
	tests := []struct {
		name   string
		offset int
		want   pointer.Pointer
	}{
		{"root tag", 1, pointer.Pointer{"0"}},
		{"second item", strings.Index(xmlDoc, `id="2"`), pointer.Pointer{"1"}},
		{"note tag", strings.Index(xmlDoc, "<note>") + 1, pointer.Pointer{"0"}},
		{"text content binds to enclosing tag", strings.Index(xmlDoc, "x</note>"), pointer.Pointer{"0"}},
		{"closing tag counts its start tag", strings.Index(xmlDoc, "</note>") + 2, pointer.Pointer{"1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ptr, ok := m.PointerAt(xmlDoc, tt.offset)
			require.True(t, ok)
			require.Equal(t, tt.want, ptr)
		})
	}
}

func TestXMLForwardBeforeFirstTag(t *testing.T) {
	m := XML{}
	doc := "  \n<a/>"
	ptr, ok := m.PointerAt(doc, 0)
	require.True(t, ok)
	require.Equal(t, pointer.Pointer{"0"}, ptr)
}

func TestXMLForwardNoTags(t *testing.T) {
	m := XML{}
	_, ok := m.PointerAt("plain text, no markup", 3)
	require.False(t, ok)
}

func TestXMLBackward(t *testing.T) {
	m := XML{}
	tests := []struct {
		ptr  pointer.Pointer
		want string
	}{
		{pointer.Pointer{"0"}, `<root>`},
		{pointer.Pointer{"1"}, `<item id="1"/>`},
		{pointer.Pointer{"2"}, `<item id="2"/>`},
		{pointer.Pointer{"3"}, `<note>`},
	}
	for _, tt := range tests {
		sp, ok := m.SpanOf(xmlDoc, tt.ptr)
		require.True(t, ok, "ptr %v", tt.ptr)
		require.Equal(t, tt.want, xmlDoc[sp.Start:sp.End])
	}
}

func TestXMLBackwardMisses(t *testing.T) {
	m := XML{}
	for _, ptr := range []pointer.Pointer{{"9"}, {"x"}, {"0", "0"}, {}} {
		_, ok := m.SpanOf(xmlDoc, ptr)
		require.False(t, ok, "ptr %v", ptr)
	}
}

func TestXMLBackwardUnterminatedTag(t *testing.T) {
	m := XML{}
	sp, ok := m.SpanOf("<root", pointer.Pointer{"0"})
	require.True(t, ok)
	require.Equal(t, "<root", "<root"[sp.Start:sp.End])
}

// The forward pass numbers tags per name while the backward pass numbers
// them across all names, so round trips only hold while the two orders
// coincide. This pins the divergence on a document where they differ.
func TestXMLForwardBackwardDivergence(t *testing.T) {
	m := XML{}
	sp, ok := m.SpanOf(xmlDoc, pointer.Pointer{"1"})
	require.True(t, ok)
	ptr, ok := m.PointerAt(xmlDoc, sp.Start+1)
	require.True(t, ok)
	require.Equal(t, pointer.Pointer{"0"}, ptr)
}

package mapper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treespan/treespan/pointer"
)

func TestEnvForward(t *testing.T) {
	text := "A=1\nB=2\nC=3"
	m := Env{}
	ptr, ok := m.PointerAt(text, strings.Index(text, "B=2"))
	require.True(t, ok)
	require.Equal(t, pointer.Pointer{"1"}, ptr)

	ptr, ok = m.PointerAt(text, 0)
	require.True(t, ok)
	require.Equal(t, pointer.Pointer{"0"}, ptr)

	// End of text lands on the last line.
	ptr, ok = m.PointerAt(text, len(text))
	require.True(t, ok)
	require.Equal(t, pointer.Pointer{"2"}, ptr)
}

func TestEnvBackwardExcludesTerminator(t *testing.T) {
	text := "A=1\nB=2\nC=3"
	m := Env{}
	sp, ok := m.SpanOf(text, pointer.Pointer{"1"})
	require.True(t, ok)
	require.Equal(t, "B=2", text[sp.Start:sp.End])

	crlf := "A=1\r\nB=2\r\n"
	sp, ok = m.SpanOf(crlf, pointer.Pointer{"1"})
	require.True(t, ok)
	require.Equal(t, "B=2", crlf[sp.Start:sp.End])
}

func TestEnvNoResult(t *testing.T) {
	m := Env{}
	_, ok := m.SpanOf("A=1", pointer.Pointer{"4"})
	require.False(t, ok, "line out of range")
	_, ok = m.SpanOf("A=1", pointer.Pointer{"x"})
	require.False(t, ok, "non-numeric line")
	_, ok = m.SpanOf("A=1", pointer.Pointer{"0", "0"})
	require.False(t, ok, "line addresses have one segment")
	_, ok = m.PointerAt("A=1", -2)
	require.False(t, ok, "negative offset")
}

// The TOML mapper is the line mapper: every line is one addressable unit.
func TestTOMLDelegatesToEnv(t *testing.T) {
	m, ok := Select("toml", "config.toml")
	require.True(t, ok)
	require.IsType(t, Env{}, m)

	text := "[server]\nhost = \"localhost\"\nport = 8080"
	ptr, ok := m.PointerAt(text, strings.Index(text, "port"))
	require.True(t, ok)
	require.Equal(t, pointer.Pointer{"2"}, ptr)

	sp, ok := m.SpanOf(text, ptr)
	require.True(t, ok)
	require.Equal(t, "port = 8080", text[sp.Start:sp.End])
}

// Package pointer builds and parses structural addresses in JSON Pointer
// (RFC 6901) text form.
package pointer

import (
	"errors"
	"strings"
)

// ErrInvalidPointer is returned by Parse for text that is neither the root
// pointer nor a /-prefixed segment list.
var ErrInvalidPointer = errors.New("invalid pointer")

const (
	encodedTilde = "~0"
	encodedSlash = "~1"
)

// Pointer addresses a node in a document's logical tree as an ordered list
// of segments. Segments are stored decoded; escaping applies only to the
// text form. The empty Pointer addresses the document root.
type Pointer []string

// Append returns a new Pointer with one more segment. The receiver is not
// modified.
func (p Pointer) Append(segment string) Pointer {
	res := make(Pointer, len(p), len(p)+1)
	copy(res, p)
	return append(res, segment)
}

// String renders the pointer in RFC 6901 text form. The root pointer
// renders as "".
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(escape(seg))
	}
	return b.String()
}

// IsRoot reports whether p addresses the document root.
func (p Pointer) IsRoot() bool {
	return len(p) == 0
}

// Parse decodes a pointer from text form. "" yields the root pointer; any
// other input must begin with '/' or Parse fails with ErrInvalidPointer,
// which keeps malformed input distinguishable from root.
func Parse(s string) (Pointer, error) {
	if s == "" {
		return Pointer{}, nil
	}
	if s[0] != '/' {
		return nil, ErrInvalidPointer
	}
	parts := strings.Split(s[1:], "/")
	res := make(Pointer, len(parts))
	for i, part := range parts {
		res[i] = unescape(part)
	}
	return res, nil
}

// escape order matters: '~' first, or escaped slashes would re-escape.
func escape(seg string) string {
	seg = strings.ReplaceAll(seg, "~", encodedTilde)
	return strings.ReplaceAll(seg, "/", encodedSlash)
}

// unescape order matters: '~1' first, so "~01" decodes to "~1" not "/".
func unescape(seg string) string {
	seg = strings.ReplaceAll(seg, encodedSlash, "/")
	return strings.ReplaceAll(seg, encodedTilde, "~")
}

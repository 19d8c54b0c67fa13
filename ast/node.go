// Package ast defines the position-tagged node tree produced by the tolerant
// parser, and resolves between text offsets and structural addresses over it.
package ast

// Span is a half-open character range over the raw source text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether off falls inside the span. The end offset counts
// as inside so a cursor sitting just after a node still selects it.
func (s Span) Contains(off int) bool {
	return off >= s.Start && off <= s.End
}

// Node is a value, property, or container in a parsed document, tagged with
// the exact span it occupies in the raw text.
type Node interface {
	Span() Span
}

// Kind discriminates scalar values.
type Kind int

const (
	StringKind Kind = iota
	NumberKind
	BoolKind
	NullKind
)

func (k Kind) String() string {
	switch k {
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case BoolKind:
		return "bool"
	case NullKind:
		return "null"
	}
	return "<unknown kind>"
}

// Object is a set of properties in document order. Duplicate keys are kept;
// resolution is first-match.
type Object struct {
	Loc        Span
	Properties []*Property
}

func (o *Object) Span() Span { return o.Loc }

// Array is a list of items in document order.
type Array struct {
	Loc   Span
	Items []Node
}

func (a *Array) Span() Span { return a.Loc }

// Property is one key/value member of an object. Value is nil when the
// source text broke off after the key.
type Property struct {
	Loc   Span
	Key   *Scalar
	Value Node
}

func (p *Property) Span() Span { return p.Loc }

// Scalar is a leaf value. Value holds string, float64, bool, or nil
// according to Kind. Loc covers the raw textual form, quotes included.
type Scalar struct {
	Loc   Span
	Kind  Kind
	Value any
}

func (s *Scalar) Span() Span { return s.Loc }

// StringValue returns the decoded string for string scalars.
func (s *Scalar) StringValue() (string, bool) {
	v, ok := s.Value.(string)
	return v, ok
}

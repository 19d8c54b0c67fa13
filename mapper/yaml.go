package mapper

import (
	"strconv"
	"strings"

	yamlast "github.com/goccy/go-yaml/ast"
	yamlparser "github.com/goccy/go-yaml/parser"
	yamltoken "github.com/goccy/go-yaml/token"

	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/pointer"
	"github.com/treespan/treespan/textpos"
)

// YAML maps YAML documents through a range-bearing model built on the
// goccy parser's AST: every map, sequence, and key/value pair carries its
// own [start, end) computed from token positions. Only the first document
// of a multi-document stream is addressed.
type YAML struct{}

func (YAML) PointerAt(text string, offset int) (pointer.Pointer, bool) {
	off, ok := clampOffset(text, offset)
	if !ok {
		return nil, false
	}
	body, doc := parseYAML(text)
	if body == nil {
		return nil, false
	}
	r := &yamlRanges{doc: doc}
	ptr := pointer.Pointer{}
	node := unwrapYAML(body)
	for node != nil {
		switch n := node.(type) {
		case *yamlast.MappingNode:
			next, key, ok := r.pairAt(n.Values, off)
			if !ok {
				return ptr, true
			}
			ptr = ptr.Append(key)
			node = unwrapYAML(next)
		case *yamlast.MappingValueNode:
			next, key, ok := r.pairAt([]*yamlast.MappingValueNode{n}, off)
			if !ok {
				return ptr, true
			}
			ptr = ptr.Append(key)
			node = unwrapYAML(next)
		case *yamlast.SequenceNode:
			idx := -1
			for i, item := range n.Values {
				if r.span(item).Contains(off) {
					idx = i
					break
				}
			}
			if idx < 0 {
				return ptr, true
			}
			ptr = ptr.Append(strconv.Itoa(idx))
			node = unwrapYAML(n.Values[idx])
		default:
			return ptr, true
		}
	}
	return ptr, true
}

func (YAML) SpanOf(text string, ptr pointer.Pointer) (ast.Span, bool) {
	body, doc := parseYAML(text)
	if body == nil {
		return ast.Span{}, false
	}
	r := &yamlRanges{doc: doc}
	node := unwrapYAML(body)
	for _, seg := range ptr {
		switch n := node.(type) {
		case *yamlast.MappingNode:
			next, ok := pairValue(n.Values, seg)
			if !ok {
				return ast.Span{}, false
			}
			node = unwrapYAML(next)
		case *yamlast.MappingValueNode:
			next, ok := pairValue([]*yamlast.MappingValueNode{n}, seg)
			if !ok {
				return ast.Span{}, false
			}
			node = unwrapYAML(next)
		case *yamlast.SequenceNode:
			idx, err := strconv.ParseUint(seg, 10, 31)
			if err != nil || int(idx) >= len(n.Values) {
				return ast.Span{}, false
			}
			node = unwrapYAML(n.Values[idx])
		default:
			return ast.Span{}, false
		}
		if node == nil {
			return ast.Span{}, false
		}
	}
	if node == nil {
		return ast.Span{}, false
	}
	return r.span(node), true
}

func parseYAML(text string) (yamlast.Node, *textpos.Doc) {
	f, err := yamlparser.ParseBytes([]byte(text), 0)
	if err != nil || len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return nil, nil
	}
	return f.Docs[0].Body, textpos.New(text)
}

// unwrapYAML strips anchor and tag wrappers, which occupy no address
// segment of their own.
func unwrapYAML(node yamlast.Node) yamlast.Node {
	for {
		switch n := node.(type) {
		case *yamlast.AnchorNode:
			node = n.Value
		case *yamlast.TagNode:
			node = n.Value
		default:
			return node
		}
	}
}

func keyOf(pair *yamlast.MappingValueNode) string {
	if pair.Key == nil {
		return ""
	}
	tok := pair.Key.GetToken()
	if tok == nil {
		return ""
	}
	return tok.Value
}

func pairValue(pairs []*yamlast.MappingValueNode, key string) (yamlast.Node, bool) {
	for _, pair := range pairs {
		if keyOf(pair) == key {
			return pair.Value, true
		}
	}
	return nil, false
}

// yamlRanges computes [start, end) spans from goccy token line/column
// positions. Quoted scalar lengths come from the token's raw text, so
// escape sequences and quote doubling count at their source width.
type yamlRanges struct {
	doc *textpos.Doc
}

// pairAt picks the pair whose value range contains off and descends into
// the value; a pair containing off only in its key region contributes its
// key segment without descending.
func (r *yamlRanges) pairAt(pairs []*yamlast.MappingValueNode, off int) (yamlast.Node, string, bool) {
	for _, pair := range pairs {
		if pair.Value != nil && r.span(pair.Value).Contains(off) {
			return pair.Value, keyOf(pair), true
		}
	}
	for _, pair := range pairs {
		if r.pairSpan(pair).Contains(off) {
			return nil, keyOf(pair), true
		}
	}
	return nil, "", false
}

func (r *yamlRanges) span(node yamlast.Node) ast.Span {
	switch n := node.(type) {
	case *yamlast.MappingNode:
		if len(n.Values) == 0 {
			return r.tokenSpan(n.GetToken())
		}
		first := r.pairSpan(n.Values[0])
		last := r.pairSpan(n.Values[len(n.Values)-1])
		start := first.Start
		if n.IsFlowStyle {
			start = r.tokenStart(n.GetToken())
		}
		return ast.Span{Start: start, End: last.End}
	case *yamlast.MappingValueNode:
		return r.pairSpan(n)
	case *yamlast.SequenceNode:
		if len(n.Values) == 0 {
			return r.tokenSpan(n.GetToken())
		}
		start := r.span(n.Values[0]).Start
		if n.IsFlowStyle {
			start = r.tokenStart(n.GetToken())
		}
		return ast.Span{Start: start, End: r.span(n.Values[len(n.Values)-1]).End}
	case *yamlast.AnchorNode:
		return r.span(n.Value)
	case *yamlast.TagNode:
		return r.span(n.Value)
	default:
		return r.tokenSpan(node.GetToken())
	}
}

func (r *yamlRanges) pairSpan(pair *yamlast.MappingValueNode) ast.Span {
	start := 0
	if pair.Key != nil {
		start = r.tokenStart(pair.Key.GetToken())
	}
	end := start
	if pair.Key != nil {
		end = r.tokenSpan(pair.Key.GetToken()).End
	}
	if pair.Value != nil {
		if vs := r.span(pair.Value); vs.End > end {
			end = vs.End
		}
	}
	return ast.Span{Start: start, End: end}
}

func (r *yamlRanges) tokenStart(tok *yamltoken.Token) int {
	if tok == nil || tok.Position == nil {
		return 0
	}
	return r.doc.Offset(tok.Position.Line-1, tok.Position.Column-1)
}

func (r *yamlRanges) tokenSpan(tok *yamltoken.Token) ast.Span {
	start := r.tokenStart(tok)
	if tok == nil {
		return ast.Span{Start: start, End: start}
	}
	n := len(tok.Value)
	switch tok.Type {
	case yamltoken.SingleQuoteType, yamltoken.DoubleQuoteType:
		// Value is the decoded string, so escapes make the raw form
		// longer. Origin keeps the raw text (with the whitespace the
		// scanner buffered around it); the quotes bound the token, so
		// trimming recovers the exact quoted form.
		if raw := strings.TrimSpace(tok.Origin); raw != "" {
			n = len(raw)
		} else {
			n += 2
		}
	}
	return ast.Span{Start: start, End: start + n}
}

// Package parse is a tolerant recursive-descent parser for JSON-family text
// (JSON, JSONC, JSON5-ish). It tags every node with its exact span over the
// raw input, accepts comments and trailing commas, and never returns an
// error: malformed input degrades to the largest prefix structure that could
// be built, because it runs on every keystroke over half-typed documents.
package parse

import (
	"strconv"
	"strings"

	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/debug"
)

// Parse parses text into a node tree. It returns nil when no value starts
// the text at all.
func Parse(text string) ast.Node {
	p := &parser{text: text}
	p.skipTrivia()
	return p.parseValue()
}

type parser struct {
	text string
	pos  int
}

func (p *parser) parseValue() ast.Node {
	p.skipTrivia()
	if p.pos >= len(p.text) {
		return nil
	}
	switch c := p.text[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"' || c == '\'':
		return p.parseString()
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return p.parseLiteral()
	}
}

func (p *parser) parseObject() ast.Node {
	start := p.pos
	p.pos++ // consume '{'
	obj := &ast.Object{}
	for {
		p.skipTrivia()
		if p.pos >= len(p.text) {
			break
		}
		if p.text[p.pos] == '}' {
			p.pos++
			break
		}
		key := p.parseKey()
		if key == nil {
			p.recover('{', '}')
			break
		}
		p.skipTrivia()
		if p.pos >= len(p.text) || p.text[p.pos] != ':' {
			// Key with no value; keep the dangling property.
			obj.Properties = append(obj.Properties, &ast.Property{Loc: key.Loc, Key: key})
			p.recover('{', '}')
			break
		}
		p.pos++ // consume ':'
		val := p.parseValue()
		prop := &ast.Property{Key: key, Value: val}
		prop.Loc = ast.Span{Start: key.Loc.Start, End: key.Loc.End}
		if val != nil {
			prop.Loc.End = val.Span().End
		}
		obj.Properties = append(obj.Properties, prop)
		if val == nil {
			p.recover('{', '}')
			break
		}
		p.skipTrivia()
		if p.pos < len(p.text) && p.text[p.pos] == ',' {
			p.pos++
			continue
		}
		if p.pos < len(p.text) && p.text[p.pos] == '}' {
			p.pos++
			break
		}
		p.recover('{', '}')
		break
	}
	obj.Loc = ast.Span{Start: start, End: p.pos}
	return obj
}

func (p *parser) parseArray() ast.Node {
	start := p.pos
	p.pos++ // consume '['
	arr := &ast.Array{}
	for {
		p.skipTrivia()
		if p.pos >= len(p.text) {
			break
		}
		if p.text[p.pos] == ']' {
			p.pos++
			break
		}
		item := p.parseValue()
		if item == nil {
			p.recover('[', ']')
			break
		}
		arr.Items = append(arr.Items, item)
		p.skipTrivia()
		if p.pos < len(p.text) && p.text[p.pos] == ',' {
			p.pos++
			continue
		}
		if p.pos < len(p.text) && p.text[p.pos] == ']' {
			p.pos++
			break
		}
		p.recover('[', ']')
		break
	}
	arr.Loc = ast.Span{Start: start, End: p.pos}
	return arr
}

// parseKey accepts a quoted string or a bare JSON5-style identifier.
func (p *parser) parseKey() *ast.Scalar {
	if p.pos >= len(p.text) {
		return nil
	}
	c := p.text[p.pos]
	if c == '"' || c == '\'' {
		s, _ := p.parseString().(*ast.Scalar)
		return s
	}
	if !isIdentStart(c) {
		return nil
	}
	start := p.pos
	for p.pos < len(p.text) && isIdentPart(p.text[p.pos]) {
		p.pos++
	}
	return &ast.Scalar{
		Loc:   ast.Span{Start: start, End: p.pos},
		Kind:  ast.StringKind,
		Value: p.text[start:p.pos],
	}
}

func (p *parser) parseString() ast.Node {
	start := p.pos
	quote := p.text[p.pos]
	p.pos++
	var b strings.Builder
	for p.pos < len(p.text) {
		c := p.text[p.pos]
		if c == quote {
			p.pos++
			break
		}
		if c != '\\' {
			b.WriteByte(c)
			p.pos++
			continue
		}
		p.pos++
		if p.pos >= len(p.text) {
			break
		}
		switch e := p.text[p.pos]; e {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			// Unrecognized escape: the following character passes
			// through unchanged.
			b.WriteByte(e)
		}
		p.pos++
	}
	return &ast.Scalar{
		Loc:   ast.Span{Start: start, End: p.pos},
		Kind:  ast.StringKind,
		Value: b.String(),
	}
}

// parseNumber keeps the raw textual span even though Value stores the
// parsed double.
func (p *parser) parseNumber() ast.Node {
	start := p.pos
	for p.pos < len(p.text) && isNumberChar(p.text[p.pos]) {
		p.pos++
	}
	raw := p.text[start:p.pos]
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: bad number %q at %d\n", raw, start)
		}
		p.pos = start
		return nil
	}
	return &ast.Scalar{
		Loc:   ast.Span{Start: start, End: p.pos},
		Kind:  ast.NumberKind,
		Value: f,
	}
}

func (p *parser) parseLiteral() ast.Node {
	for _, lit := range [...]struct {
		word  string
		kind  ast.Kind
		value any
	}{
		{"true", ast.BoolKind, true},
		{"false", ast.BoolKind, false},
		{"null", ast.NullKind, nil},
	} {
		if !strings.HasPrefix(p.text[p.pos:], lit.word) {
			continue
		}
		end := p.pos + len(lit.word)
		if end < len(p.text) && isIdentPart(p.text[end]) {
			continue
		}
		node := &ast.Scalar{
			Loc:   ast.Span{Start: p.pos, End: end},
			Kind:  lit.kind,
			Value: lit.value,
		}
		p.pos = end
		return node
	}
	return nil
}

// recover scans forward to the closing bracket of the container being
// parsed, or to end of text, skipping strings so quoted brackets don't
// unbalance the count. The container closes with the children it has.
func (p *parser) recover(open, close byte) {
	if debug.Parse() {
		debug.Logf("parse: recovering to %q from %d\n", string(close), p.pos)
	}
	depth := 1
	for p.pos < len(p.text) {
		switch c := p.text[p.pos]; c {
		case '"', '\'':
			p.skipStringRaw(c)
			continue
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				p.pos++
				return
			}
		}
		p.pos++
	}
}

func (p *parser) skipStringRaw(quote byte) {
	p.pos++
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case '\\':
			p.pos++
		case quote:
			p.pos++
			return
		}
		p.pos++
	}
}

// skipTrivia skips whitespace, // line comments, and /* */ block comments.
func (p *parser) skipTrivia() {
	for p.pos < len(p.text) {
		switch c := p.text[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '/' && p.pos+1 < len(p.text) && p.text[p.pos+1] == '/':
			for p.pos < len(p.text) && p.text[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.pos+1 < len(p.text) && p.text[p.pos+1] == '*':
			p.pos += 2
			for p.pos < len(p.text) {
				if p.text[p.pos] == '*' && p.pos+1 < len(p.text) && p.text[p.pos+1] == '/' {
					p.pos += 2
					break
				}
				p.pos++
			}
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isNumberChar(c byte) bool {
	switch c {
	case '-', '+', '.', 'e', 'E':
		return true
	}
	return c >= '0' && c <= '9'
}

package ast

import (
	"strconv"

	"github.com/treespan/treespan/debug"
	"github.com/treespan/treespan/pointer"
)

// PointerAt returns the pointer of the deepest node containing offset,
// descending from root. Offsets in trailing or interstitial whitespace
// resolve to the last member starting at or before them, so a cursor between
// elements still maps to something useful. PointerAt never fails; the worst
// case is the root pointer.
func PointerAt(root Node, offset int) pointer.Pointer {
	ptr := pointer.Pointer{}
	node := root
	for node != nil {
		switch n := node.(type) {
		case *Object:
			prop := propertyAt(n, offset)
			if prop == nil {
				return ptr
			}
			ptr = ptr.Append(keyString(prop.Key))
			node = prop.Value
		case *Array:
			idx := itemAt(n, offset)
			if idx < 0 {
				return ptr
			}
			ptr = ptr.Append(strconv.Itoa(idx))
			node = n.Items[idx]
		default:
			return ptr
		}
	}
	return ptr
}

// FindPointer walks ptr from root and returns the node it addresses. Key
// segments resolve against object properties first-match on duplicates;
// index segments must be base-10 non-negative integers within range.
func FindPointer(root Node, ptr pointer.Pointer) (Node, bool) {
	node := root
	for _, seg := range ptr {
		if node == nil {
			return nil, false
		}
		switch n := node.(type) {
		case *Object:
			next, ok := propertyValue(n, seg)
			if !ok {
				return nil, false
			}
			node = next
		case *Array:
			idx, err := strconv.ParseUint(seg, 10, 31)
			if err != nil || int(idx) >= len(n.Items) {
				return nil, false
			}
			node = n.Items[idx]
		default:
			return nil, false
		}
	}
	if node == nil {
		return nil, false
	}
	return node, true
}

// propertyAt picks the property owning offset: one whose key, value, or
// whole span contains it, else the last property starting at or before it.
func propertyAt(obj *Object, offset int) *Property {
	var last *Property
	for _, prop := range obj.Properties {
		if prop.Key != nil && prop.Key.Loc.Contains(offset) {
			return prop
		}
		if prop.Value != nil && prop.Value.Span().Contains(offset) {
			return prop
		}
		if prop.Loc.Contains(offset) {
			return prop
		}
		if prop.Loc.Start <= offset {
			last = prop
		}
	}
	if last != nil && debug.Resolve() {
		debug.Logf("resolve: offset %d outside members, fell back to property %q\n",
			offset, keyString(last.Key))
	}
	return last
}

func itemAt(arr *Array, offset int) int {
	last := -1
	for i, item := range arr.Items {
		if item == nil {
			continue
		}
		if item.Span().Contains(offset) {
			return i
		}
		if item.Span().Start <= offset {
			last = i
		}
	}
	if last >= 0 && debug.Resolve() {
		debug.Logf("resolve: offset %d outside items, fell back to index %d\n", offset, last)
	}
	return last
}

func propertyValue(obj *Object, key string) (Node, bool) {
	for _, prop := range obj.Properties {
		if keyString(prop.Key) != key {
			continue
		}
		if prop.Value == nil {
			return nil, false
		}
		return prop.Value, true
	}
	return nil, false
}

func keyString(key *Scalar) string {
	if key == nil {
		return ""
	}
	s, _ := key.StringValue()
	return s
}

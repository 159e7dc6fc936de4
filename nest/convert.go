package nest

import (
	"fmt"
	"reflect"
	"sort"
)

// FromValue converts an untyped nested value into the Node variant.
// Every map (of any key/value type, typically the map[string]any shape
// produced by JSON or YAML decoding) becomes a *Branch; everything
// else becomes a Leaf. Map iteration order is not deterministic in Go,
// so branch entries are ordered by the formatted representation of
// their keys to keep traversal output reproducible.
func FromValue(v any) Node {
	if n, ok := v.(Node); ok {
		return n
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return Leaf{Value: v}
	}

	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})

	b := NewBranch()
	for _, k := range keys {
		b.Set(k.Interface(), FromValue(rv.MapIndex(k).Interface()))
	}
	return b
}

// FromMap converts an untyped nested map into a tree root. A non-map
// argument yields an empty branch.
func FromMap(m any) *Branch {
	if b, ok := FromValue(m).(*Branch); ok {
		return b
	}
	return NewBranch()
}

// ToValue is the inverse of FromValue: branches become map[Key]any
// (insertion order is necessarily lost) and leaves yield their
// payload.
func ToValue(n Node) any {
	cb, ok := n.(*Branch)
	if !ok {
		return n.(Leaf).Value
	}
	m := make(map[Key]any, cb.Len())
	for _, e := range cb.entries {
		m[e.key] = ToValue(e.node)
	}
	return m
}

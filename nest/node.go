package nest

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// Key identifies a child within a Branch. Keys must be comparable
// values (usable as map keys); keys within one branch are unique.
type Key = any

// Node is a node in a nested key-value tree. A node is either a
// *Branch (a mapping from keys to child nodes) or a Leaf (any terminal
// value). There are no other implementations.
type Node interface {
	isNode()
}

// Leaf wraps a terminal, non-branch value. The payload is opaque to
// the engine: it is never descended into, and it is compared and
// cloned as a unit.
type Leaf struct {
	Value any
}

func (Leaf) isNode() {}

// String renders the payload with fmt's default formatting.
func (l Leaf) String() string {
	return fmt.Sprint(l.Value)
}

// entry pairs a key with its child node.
type entry struct {
	key  Key
	node Node
}

// Branch is an ordered mapping from Key to child Node. Children are
// kept in insertion order and iterated in that order, so traversal
// output is reproducible. Order carries no meaning for equality.
type Branch struct {
	entries []entry
}

func (*Branch) isNode() {}

// String renders the branch in dict notation, e.g. "{1: 2, 3: {4: 5}}",
// in iteration order.
func (b *Branch) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range b.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", e.key, e.node)
	}
	sb.WriteByte('}')
	return sb.String()
}

// NewBranch returns an empty branch.
func NewBranch() *Branch {
	return &Branch{}
}

// Pair couples a key with a child value, for building branch literals
// with BranchOf. Value may be a Node or a raw value (wrapped in Leaf).
type Pair struct {
	Key   Key
	Value any
}

// BranchOf builds a branch from the given pairs, in order. A repeated
// key overwrites the earlier entry, keeping its position.
func BranchOf(pairs ...Pair) *Branch {
	b := NewBranch()
	for _, p := range pairs {
		b.Set(p.Key, asNode(p.Value))
	}
	return b
}

// Len returns the number of children.
func (b *Branch) Len() int {
	return len(b.entries)
}

// Get returns the child stored under key.
func (b *Branch) Get(key Key) (Node, bool) {
	for _, e := range b.entries {
		if e.key == key {
			return e.node, true
		}
	}
	return nil, false
}

// Set stores the child under key, overwriting an existing entry in
// place or appending a new one.
func (b *Branch) Set(key Key, n Node) {
	for i := range b.entries {
		if b.entries[i].key == key {
			b.entries[i].node = n
			return
		}
	}
	b.entries = append(b.entries, entry{key: key, node: n})
}

// Delete removes the child stored under key and reports whether an
// entry was removed.
func (b *Branch) Delete(key Key) bool {
	for i := range b.entries {
		if b.entries[i].key == key {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Keys returns the branch's keys in iteration order.
func (b *Branch) Keys() []Key {
	keys := make([]Key, len(b.entries))
	for i, e := range b.entries {
		keys[i] = e.key
	}
	return keys
}

// All iterates over the branch's immediate children in order.
func (b *Branch) All() iter.Seq2[Key, Node] {
	return func(yield func(Key, Node) bool) {
		for _, e := range b.entries {
			if !yield(e.key, e.node) {
				return
			}
		}
	}
}

// Clone returns a structurally independent copy of the branch: every
// descendant branch is copied, so no sub-branch is shared with the
// original. Leaf payloads are carried over as-is.
func (b *Branch) Clone() *Branch {
	out := &Branch{entries: make([]entry, len(b.entries))}
	for i, e := range b.entries {
		out.entries[i] = entry{key: e.key, node: cloneNode(e.node)}
	}
	return out
}

// cloneNode is the structural clone over the Node variant. Cloning is
// explicit rather than a generic deep copy so behavior stays
// well-defined for arbitrary leaf payload types.
func cloneNode(n Node) Node {
	if cb, ok := n.(*Branch); ok {
		return cb.Clone()
	}
	return n
}

// Equal reports structural equality of two nodes. Branches are equal
// when they hold equal children under the same keys, regardless of
// order; leaves are compared by deep equality of their payloads.
func Equal(a, b Node) bool {
	ab, aBranch := a.(*Branch)
	bb, bBranch := b.(*Branch)
	if aBranch != bBranch {
		return false
	}
	if aBranch {
		if ab.Len() != bb.Len() {
			return false
		}
		for _, e := range ab.entries {
			other, ok := bb.Get(e.key)
			if !ok || !Equal(e.node, other) {
				return false
			}
		}
		return true
	}
	return valueEqual(a.(Leaf).Value, b.(Leaf).Value)
}

// valueEqual compares two arbitrary values structurally. Unlike ==,
// it never panics on non-comparable values.
func valueEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// matchesValue reports whether node n holds the target value. A Node
// target is compared structurally against n; any other target matches
// only a leaf with a deep-equal payload.
func matchesValue(n Node, target any) bool {
	if tn, ok := target.(Node); ok {
		return Equal(n, tn)
	}
	l, ok := n.(Leaf)
	return ok && valueEqual(l.Value, target)
}

// asNode lifts a raw value into the Node variant. Nodes pass through
// unchanged; anything else becomes a Leaf.
func asNode(v any) Node {
	if n, ok := v.(Node); ok {
		return n
	}
	return Leaf{Value: v}
}

// Unwrap is the inverse of asNode: it returns a leaf's payload, or the
// node itself for branches.
func Unwrap(n Node) any {
	if l, ok := n.(Leaf); ok {
		return l.Value
	}
	return n
}

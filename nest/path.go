package nest

import "fmt"

// Path is an ordered sequence of keys locating a node from the root of
// a tree, read left (root-adjacent) to right (deepest). The empty path
// denotes the root itself.
type Path []Key

// String renders the path in slice notation, e.g. "[6 3 12]".
func (p Path) String() string {
	return fmt.Sprintf("%v", []Key(p))
}

// Equal reports whether p and q walk the same keys.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !valueEqual(p[i], q[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// child returns a new path extended by key. The backing array is never
// shared with p, so paths held by different recursive frames cannot
// alias each other.
func (p Path) child(key Key) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = key
	return out
}

// Entry pairs a key path with the value that resides (or should
// reside) at that path. Value may be a Node, or a raw value that is
// wrapped into a Leaf on insertion.
type Entry struct {
	Path  Path
	Value any
}

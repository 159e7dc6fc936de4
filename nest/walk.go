package nest

import "iter"

// ValuesForKey returns every value stored under key at any depth of
// the tree, in depth-first pre-order: a branch's own match is
// collected before its children are descended into, and children are
// visited in branch order. Descent continues into every branch child
// whether or not the current branch matched.
func ValuesForKey(b *Branch, key Key) []Node {
	var out []Node
	valuesForKey(b, key, &out)
	return out
}

func valuesForKey(b *Branch, key Key, out *[]Node) {
	if n, ok := b.Get(key); ok {
		*out = append(*out, n)
	}
	for _, e := range b.entries {
		if cb, ok := e.node.(*Branch); ok {
			valuesForKey(cb, key, out)
		}
	}
}

// ValuesForKeys applies ValuesForKey to each key independently and
// returns the per-key match lists. Every requested key is present in
// the result, with an empty list when nothing matched.
func ValuesForKeys(b *Branch, keys []Key) map[Key][]Node {
	out := make(map[Key][]Node, len(keys))
	for _, key := range keys {
		out[key] = ValuesForKey(b, key)
	}
	return out
}

// Match is one location where a searched-for value occurs: the path to
// the enclosing context plus the matched key or value. A key match
// carries the path to the branch holding the key and the key itself; a
// value match carries the full path to the value and the value.
type Match struct {
	Path  Path
	Value any
}

// PathsForValue finds every place where value occurs in the tree,
// either as a key or as a stored value. Both rules apply at every
// branch: a key equal to value is reported as (path-to-branch, key),
// and an entry whose value is structurally equal to value is reported
// as (path-to-entry, value), deduplicated against earlier matches.
// Stored values are compared structurally, so a *Branch target matches
// equal sub-branches.
func PathsForValue(b *Branch, value any) []Match {
	var out []Match
	pathsForValue(b, Path{}, value, &out)
	return out
}

func pathsForValue(b *Branch, prefix Path, value any, out *[]Match) {
	for _, e := range b.entries {
		if valueEqual(e.key, value) {
			*out = append(*out, Match{Path: prefix.Clone(), Value: e.key})
		}
		if cb, ok := e.node.(*Branch); ok {
			pathsForValue(cb, prefix.child(e.key), value, out)
		}
		if matchesValue(e.node, value) {
			m := Match{Path: prefix.child(e.key), Value: Unwrap(e.node)}
			if !containsMatch(*out, m) {
				*out = append(*out, m)
			}
		}
	}
}

func containsMatch(matches []Match, m Match) bool {
	for _, have := range matches {
		if have.Path.Equal(m.Path) && valueEqual(have.Value, m.Value) {
			return true
		}
	}
	return false
}

// Walk returns the linearization of the tree: one (path, node) pair
// for every entry at every depth. A branch's children are yielded
// before the branch entry itself, so a sub-branch appears after
// everything it contains. The sequence is lazy and restartable; the
// yielded paths are safe to retain.
//
// Feeding the linearization back through Build reproduces the tree.
func Walk(b *Branch) iter.Seq2[Path, Node] {
	return func(yield func(Path, Node) bool) {
		walk(b, Path{}, yield)
	}
}

func walk(b *Branch, prefix Path, yield func(Path, Node) bool) bool {
	for _, e := range b.entries {
		p := prefix.child(e.key)
		if cb, ok := e.node.(*Branch); ok {
			if !walk(cb, p, yield) {
				return false
			}
		}
		if !yield(p, e.node) {
			return false
		}
	}
	return true
}

package nest

import "github.com/joshuapare/nestkit/pkg/diag"

// Add inserts the entry's value at its path, creating empty
// intermediate branches for missing keys along the way. The final key
// is set unconditionally, overwriting any existing entry. If a key
// along the path already holds a leaf, the insertion is abandoned
// where it stands: the tree keeps whatever intermediate branches were
// already created, a LeafObstruction warning naming the full path and
// the value goes to opts.Diag, and no error is reported.
//
// The inserted value is cloned, so the result never shares structure
// with a caller-held node. An empty path denotes the root, which
// cannot be re-assigned; such an entry is ignored.
//
// Unless opts.InPlace is set, b is deep-cloned first and the clone is
// returned; otherwise b itself is mutated and returned.
func Add(b *Branch, e Entry, opts *Options) *Branch {
	target := b
	if !opts.inPlace() {
		target = b.Clone()
	}
	addEntry(target, e, opts.sink())
	return target
}

// addEntry is the shared insertion step behind Add, Build and Merge.
func addEntry(root *Branch, e Entry, sink diag.Sink) {
	if len(e.Path) == 0 {
		return
	}

	cur := root
	for _, key := range e.Path[:len(e.Path)-1] {
		child, ok := cur.Get(key)
		if !ok {
			next := NewBranch()
			cur.Set(key, next)
			cur = next
			continue
		}
		next, ok := child.(*Branch)
		if !ok {
			sink.Warn(diag.Warning{
				Code:  diag.LeafObstruction,
				Path:  []any(e.Path),
				Value: e.Value,
			})
			return
		}
		cur = next
	}
	cur.Set(e.Path[len(e.Path)-1], cloneNode(asNode(e.Value)))
}

// Replace overwrites the value at the entry's path. Every key along
// the path except the last must already resolve to a branch: if an
// intermediate key is absent, or resolves to a leaf, the call is a
// silent no-op (legacy behavior, kept deliberately). If the final key
// is absent a *KeyNotFoundError naming the path walked is returned.
//
// Unless opts.InPlace is set, b is deep-cloned first and the clone is
// returned.
func Replace(b *Branch, e Entry, opts *Options) (*Branch, error) {
	target := b
	if !opts.inPlace() {
		target = b.Clone()
	}
	if err := replaceEntry(target, e); err != nil {
		return nil, err
	}
	return target, nil
}

func replaceEntry(root *Branch, e Entry) error {
	cur, last, ok := walkToParent(root, e.Path)
	if !ok {
		return nil
	}
	if _, found := cur.Get(last); !found {
		return &KeyNotFoundError{Path: e.Path.Clone()}
	}
	cur.Set(last, cloneNode(asNode(e.Value)))
	return nil
}

// Remove deletes the key (and its subtree) at the entry's path, after
// checking that the stored value equals the expected one supplied with
// the entry. A missing final key yields a *KeyNotFoundError; an
// unexpected stored value yields a *ValueMismatchError carrying both
// values. As with Replace, a missing intermediate key is a silent
// no-op.
//
// Unless opts.InPlace is set, b is deep-cloned first and the clone is
// returned.
func Remove(b *Branch, e Entry, opts *Options) (*Branch, error) {
	target := b
	if !opts.inPlace() {
		target = b.Clone()
	}
	if err := removeEntry(target, e); err != nil {
		return nil, err
	}
	return target, nil
}

func removeEntry(root *Branch, e Entry) error {
	cur, last, ok := walkToParent(root, e.Path)
	if !ok {
		return nil
	}
	existing, found := cur.Get(last)
	if !found {
		return &KeyNotFoundError{Path: e.Path.Clone()}
	}
	if !matchesValue(existing, e.Value) {
		return &ValueMismatchError{
			Path:     e.Path.Clone(),
			Expected: e.Value,
			Actual:   Unwrap(existing),
		}
	}
	cur.Delete(last)
	return nil
}

// walkToParent resolves the path down to the branch holding the final
// key. It reports ok=false when the path is empty or an intermediate
// key does not resolve to an existing branch.
func walkToParent(root *Branch, path Path) (parent *Branch, last Key, ok bool) {
	if len(path) == 0 {
		return nil, nil, false
	}
	cur := root
	for _, key := range path[:len(path)-1] {
		child, found := cur.Get(key)
		if !found {
			return nil, nil, false
		}
		next, isBranch := child.(*Branch)
		if !isBranch {
			return nil, nil, false
		}
		cur = next
	}
	return cur, path[len(path)-1], true
}

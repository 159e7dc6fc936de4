package nest

import "slices"

// Transform produces a replacement for a leaf payload. Returning a
// Node turns the leaf into that node (a *Branch result grows the tree
// there); any other value becomes the new leaf payload.
type Transform func(v any) (any, error)

// Predicate reports whether a leaf should be kept. The result is
// deliberately untyped: adapters over dynamically typed rule sources
// can surface whatever they produced, and FilterLeaves rejects
// anything that is not a bool with a *PredicateResultError.
type Predicate func(v any) (any, error)

// MapLeaves traverses the tree and replaces each selected leaf payload
// with fn's result. Descent into branches is unconditional; a leaf is
// selected when its key passes opts.Keys (empty selection means all
// keys, judged per branch level). When fn fails for a leaf: with
// opts.Permissive the leaf is left untouched and traversal continues,
// otherwise the whole call aborts with a *TransformError wrapping the
// failure and naming the leaf payload.
//
// Unless opts.InPlace is set, b is deep-cloned first and the clone is
// returned. An in-place call that aborts may have already applied some
// replacements.
func MapLeaves(b *Branch, fn Transform, opts *Options) (*Branch, error) {
	target := b
	if !opts.inPlace() {
		target = b.Clone()
	}
	if err := mapLeaves(target, fn, opts.keys(), opts.permissive()); err != nil {
		return nil, err
	}
	return target, nil
}

func mapLeaves(b *Branch, fn Transform, keys []Key, permissive bool) error {
	for _, e := range slices.Clone(b.entries) {
		if cb, ok := e.node.(*Branch); ok {
			if err := mapLeaves(cb, fn, keys, permissive); err != nil {
				return err
			}
			continue
		}
		if !keySelected(keys, e.key) {
			continue
		}
		leaf := e.node.(Leaf)
		replacement, err := fn(leaf.Value)
		if err != nil {
			if permissive {
				continue
			}
			return &TransformError{Value: leaf.Value, Err: err}
		}
		b.Set(e.key, asNode(replacement))
	}
	return nil
}

// FilterLeaves traverses the tree and deletes each selected leaf whose
// predicate result is false, along with its key. Branches are never
// filtered directly, and a branch emptied by the deletions is not
// pruned. A predicate result that is not a bool aborts the call with a
// *PredicateResultError regardless of opts.Permissive; a predicate
// failure follows the same permissive contract as MapLeaves.
//
// Unless opts.InPlace is set, b is deep-cloned first and the clone is
// returned.
func FilterLeaves(b *Branch, pred Predicate, opts *Options) (*Branch, error) {
	target := b
	if !opts.inPlace() {
		target = b.Clone()
	}
	if err := filterLeaves(target, pred, opts.keys(), opts.permissive()); err != nil {
		return nil, err
	}
	return target, nil
}

func filterLeaves(b *Branch, pred Predicate, keys []Key, permissive bool) error {
	for _, e := range slices.Clone(b.entries) {
		if cb, ok := e.node.(*Branch); ok {
			if err := filterLeaves(cb, pred, keys, permissive); err != nil {
				return err
			}
			continue
		}
		if !keySelected(keys, e.key) {
			continue
		}
		leaf := e.node.(Leaf)
		result, err := pred(leaf.Value)
		if err != nil {
			if permissive {
				continue
			}
			return &TransformError{Value: leaf.Value, Err: err}
		}
		keep, ok := result.(bool)
		if !ok {
			return &PredicateResultError{Value: leaf.Value, Result: result}
		}
		if !keep {
			b.Delete(e.key)
		}
	}
	return nil
}

/*
Package nest implements recursive operations over nested key-value
trees: maps whose values may themselves be maps, forming an
arbitrarily deep tree addressed by "key paths".

A tree node is either a *Branch (an ordered mapping from keys to child
nodes) or a Leaf (any terminal value). All operations are stateless
functions built on one traversal primitive: depth-first recursive
descent, guided either by an explicit Path or by a scan of every
branch.

# Quick start

Build a tree and look things up:

	t := nest.BranchOf(
		nest.Pair{Key: 1, Value: 2},
		nest.Pair{Key: 3, Value: nest.BranchOf(nest.Pair{Key: 4, Value: 5})},
	)

	vals := nest.ValuesForKey(t, 4) // [Leaf{5}]

Insert, replace and remove by path:

	t2 := nest.Add(t, nest.Entry{Path: nest.Path{3, 12}, Value: 13}, nil)
	t3, err := nest.Remove(t2, nest.Entry{Path: nest.Path{1}, Value: 2}, nil)

Operations return a structurally independent copy by default; pass
&nest.Options{InPlace: true} to mutate the input instead.

Rebuild and merge through linearization:

	var entries []nest.Entry
	for p, n := range nest.Walk(t) {
		entries = append(entries, nest.Entry{Path: p, Value: n})
	}
	same := nest.Build(entries, nil)    // structurally equal to t
	all := nest.Merge([]*nest.Branch{t, other}, nil)

# Warnings and errors

Fatal conditions are returned as errors matchable with errors.Is
(ErrKeyNotFound, ErrValueMismatch, ErrTransform, ErrPredicateResult).
Advisory conditions, such as a duplicate path discarded during Build
or an insertion abandoned by Add, go to the diag.Sink supplied in
Options and never abort a call.

Trees are plain in-memory values with no locking; callers must not
mutate a tree concurrently with a traversal.
*/
package nest

package nest

// Pop returns a new tree with every entry whose key is in keys
// removed, at any depth. Recursion continues into retained branches;
// leaves are carried over unchanged. The input tree is never modified:
// Pop is a purely functional rebuild and has no in-place variant.
func Pop(b *Branch, keys []Key) *Branch {
	out := NewBranch()
	for _, e := range b.entries {
		if keyRemoved(keys, e.key) {
			continue
		}
		out.Set(e.key, popNode(e.node, keys))
	}
	return out
}

func popNode(n Node, keys []Key) Node {
	if cb, ok := n.(*Branch); ok {
		return Pop(cb, keys)
	}
	return n
}

func keyRemoved(keys []Key, key Key) bool {
	for _, k := range keys {
		if valueEqual(k, key) {
			return true
		}
	}
	return false
}

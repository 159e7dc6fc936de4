package nest

import "github.com/joshuapare/nestkit/pkg/diag"

// Build constructs a fresh tree from a list of (path, value) entries.
// Entries are deduplicated by path first: when the same path appears
// more than once the first occurrence wins, and each discarded
// occurrence is reported to opts.Diag as a DuplicatePath warning
// naming the path and the value kept. The surviving entries are then
// inserted in encounter order with the Add algorithm, so later entries
// may still overwrite earlier ones when a longer path descends through
// them.
//
// Only opts.Diag is honored.
func Build(entries []Entry, opts *Options) *Branch {
	sink := opts.sink()

	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if prev, dup := findByPath(kept, e.Path); dup {
			sink.Warn(diag.Warning{
				Code:  diag.DuplicatePath,
				Path:  []any(e.Path),
				Value: prev.Value,
			})
			continue
		}
		kept = append(kept, e)
	}

	root := NewBranch()
	for _, e := range kept {
		addEntry(root, e, sink)
	}
	return root
}

func findByPath(entries []Entry, p Path) (Entry, bool) {
	for _, e := range entries {
		if e.Path.Equal(p) {
			return e, true
		}
	}
	return Entry{}, false
}

// Merge combines several trees into one. Every input tree is
// linearized with Walk, the linearizations are concatenated in input
// order and deduplicated by exact path (first occurrence wins, so
// earlier trees take precedence on conflicts), and the result is fed
// through the Build insertion. Because every descendant path is
// enumerated, branches contributed by different trees at the same path
// merge deeply instead of replacing one another.
//
// The merged tree shares no structure with the inputs. Only opts.Diag
// is honored.
func Merge(trees []*Branch, opts *Options) *Branch {
	var entries []Entry
	for _, t := range trees {
		for p, n := range Walk(t) {
			entries = append(entries, Entry{Path: p, Value: n})
		}
	}
	return Build(entries, opts)
}

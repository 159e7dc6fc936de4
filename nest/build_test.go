package nest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nestkit/pkg/diag"
)

func TestBuild(t *testing.T) {
	got := Build([]Entry{
		{Path: Path{1, 2}, Value: 3},
		{Path: Path{4}, Value: 5},
	}, nil)

	want := BranchOf(
		Pair{Key: 1, Value: BranchOf(Pair{Key: 2, Value: 3})},
		Pair{Key: 4, Value: 5},
	)
	mustEqual(t, want, got)
}

func TestBuildDuplicatePathFirstWins(t *testing.T) {
	var warnings diag.Collector

	got := Build([]Entry{
		{Path: Path{1, 2}, Value: 3},
		{Path: Path{4}, Value: 5},
		{Path: Path{4}, Value: 6},
	}, &Options{Diag: &warnings})

	want := BranchOf(
		Pair{Key: 1, Value: BranchOf(Pair{Key: 2, Value: 3})},
		Pair{Key: 4, Value: 5},
	)
	mustEqual(t, want, got)

	require.Equal(t, 1, warnings.Len())
	w := warnings.Warnings()[0]
	require.Equal(t, diag.DuplicatePath, w.Code)
	require.Equal(t, []any{4}, w.Path)
	require.Equal(t, 5, w.Value, "the warning names the value that was kept")
}

func TestBuildEmpty(t *testing.T) {
	mustEqual(t, NewBranch(), Build(nil, nil))
}

func TestBuildWalkRoundTrip(t *testing.T) {
	for name, tree := range map[string]*Branch{
		"numeric":  fixture(),
		"campaign": campaign(),
		"empty":    NewBranch(),
	} {
		t.Run(name, func(t *testing.T) {
			mustEqual(t, tree, Build(collectWalk(tree), nil))
		})
	}
}

func TestMergeSingleTreeIsIdentity(t *testing.T) {
	orig := fixture()
	got := Merge([]*Branch{orig}, nil)

	mustEqual(t, orig, got)
	require.NotSame(t, orig, got)
}

func TestMergeDeepMergesSharedBranches(t *testing.T) {
	a := BranchOf(
		Pair{Key: 1, Value: 2},
		Pair{Key: 3, Value: BranchOf(Pair{Key: 4, Value: 5})},
	)
	b := BranchOf(Pair{Key: 3, Value: BranchOf(Pair{Key: 17, Value: 18})})

	got := Merge([]*Branch{a, b}, nil)

	// Both trees contribute children under the shared path 3.
	want := BranchOf(
		Pair{Key: 1, Value: 2},
		Pair{Key: 3, Value: BranchOf(Pair{Key: 4, Value: 5}, Pair{Key: 17, Value: 18})},
	)
	mustEqual(t, want, got)
}

func TestMergeEarlierTreeWinsOnConflicts(t *testing.T) {
	a := fixture()
	b := BranchOf(
		Pair{Key: 14, Value: BranchOf(Pair{Key: 15, Value: 16})},
		Pair{Key: 3, Value: 6}, // conflicts with a's branch at path 3
	)

	got := Merge([]*Branch{a, b}, nil)

	want := BranchOf(
		Pair{Key: 1, Value: 2},
		Pair{Key: 3, Value: BranchOf(Pair{Key: 4, Value: 5})},
		Pair{Key: 6, Value: BranchOf(
			Pair{Key: 3, Value: BranchOf(Pair{Key: 7, Value: 8})},
			Pair{Key: 7, Value: 10},
		)},
		Pair{Key: 7, Value: 11},
		Pair{Key: 14, Value: BranchOf(Pair{Key: 15, Value: 16})},
	)
	mustEqual(t, want, got)
}

func TestMergeThreeTrees(t *testing.T) {
	a := fixture()
	b := BranchOf(
		Pair{Key: 14, Value: BranchOf(Pair{Key: 15, Value: 16})},
		Pair{Key: 3, Value: BranchOf(Pair{Key: 17, Value: 18})},
	)
	c := BranchOf(Pair{Key: 6, Value: BranchOf(
		Pair{Key: 3, Value: BranchOf(Pair{Key: 9, Value: 10})},
	)})

	got := Merge([]*Branch{a, b, c}, nil)

	want := BranchOf(
		Pair{Key: 1, Value: 2},
		Pair{Key: 3, Value: BranchOf(Pair{Key: 4, Value: 5}, Pair{Key: 17, Value: 18})},
		Pair{Key: 6, Value: BranchOf(
			Pair{Key: 3, Value: BranchOf(Pair{Key: 7, Value: 8}, Pair{Key: 9, Value: 10})},
			Pair{Key: 7, Value: 10},
		)},
		Pair{Key: 7, Value: 11},
		Pair{Key: 14, Value: BranchOf(Pair{Key: 15, Value: 16})},
	)
	mustEqual(t, want, got)
}

func TestMergeReportsDuplicatePaths(t *testing.T) {
	var warnings diag.Collector

	a := BranchOf(Pair{Key: 1, Value: 2})
	b := BranchOf(Pair{Key: 1, Value: 3})
	got := Merge([]*Branch{a, b}, &Options{Diag: &warnings})

	mustEqual(t, BranchOf(Pair{Key: 1, Value: 2}), got)
	require.Equal(t, 1, warnings.Len())
	require.Equal(t, diag.DuplicatePath, warnings.Warnings()[0].Code)
}

func TestMergeSharesNothingWithInputs(t *testing.T) {
	a := BranchOf(Pair{Key: "cfg", Value: BranchOf(Pair{Key: "on", Value: true})})
	got := Merge([]*Branch{a}, nil)

	// Mutating the input after the merge must not affect the result.
	inner, _ := a.Get("cfg")
	inner.(*Branch).Set("on", Leaf{Value: false})
	inner.(*Branch).Set("added", Leaf{Value: 1})

	mustEqual(t, BranchOf(Pair{Key: "cfg", Value: BranchOf(Pair{Key: "on", Value: true})}), got)
}

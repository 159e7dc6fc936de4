package nest

import "testing"

// fixture returns the tree {1:2, 3:{4:5}, 6:{3:{7:8}, 7:10}, 7:11}
// used throughout the traversal and mutation tests.
func fixture() *Branch {
	return BranchOf(
		Pair{Key: 1, Value: 2},
		Pair{Key: 3, Value: BranchOf(Pair{Key: 4, Value: 5})},
		Pair{Key: 6, Value: BranchOf(
			Pair{Key: 3, Value: BranchOf(Pair{Key: 7, Value: 8})},
			Pair{Key: 7, Value: 10},
		)},
		Pair{Key: 7, Value: 11},
	)
}

// campaign returns a nested string-keyed fixture modeled on a tabletop
// party roster, exercising the engine with non-integer keys.
func campaign() *Branch {
	return BranchOf(
		Pair{Key: "Aurelia Silgar", Value: BranchOf(
			Pair{Key: "class", Value: "Cleric"},
			Pair{Key: "race", Value: "Dwarf"},
			Pair{Key: "alignment", Value: "Chaotic Good"},
			Pair{Key: "equipment", Value: BranchOf(
				Pair{Key: "Bedroll", Value: BranchOf(
					Pair{Key: "number", Value: 1},
					Pair{Key: "cost", Value: 1},
					Pair{Key: "weight", Value: 7},
				)},
			)},
		)},
		Pair{Key: "Martinus Olsenir", Value: BranchOf(
			Pair{Key: "class", Value: "Fighter"},
			Pair{Key: "race", Value: "Dwarf"},
			Pair{Key: "alignment", Value: "Lawful Good"},
		)},
		Pair{Key: "Non-playing characters", Value: BranchOf(
			Pair{Key: "Loton Burmingson", Value: BranchOf(
				Pair{Key: "class", Value: "Bard"},
				Pair{Key: "race", Value: "Human"},
				Pair{Key: "alignment", Value: "Lawful Good"},
			)},
		)},
	)
}

// mustEqual fails the test when the two trees are not structurally
// equal, printing both renderings for diffing.
func mustEqual(t *testing.T, want, got Node) {
	t.Helper()
	if !Equal(want, got) {
		wantStr, gotStr := "<leaf>", "<leaf>"
		if wb, ok := want.(*Branch); ok {
			wantStr = Sprint(wb)
		}
		if gb, ok := got.(*Branch); ok {
			gotStr = Sprint(gb)
		}
		t.Fatalf("trees differ\nwant:\n%s\ngot:\n%s", wantStr, gotStr)
	}
}

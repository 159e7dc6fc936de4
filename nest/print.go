package nest

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Sprint renders the tree as indented ASCII art, one line per entry.
// Branch keys become inner nodes, leaves are shown as "key: value".
func Sprint(b *Branch) string {
	t := treeprint.New()
	printBranch(b, t)
	return t.String()
}

// Fprint writes the Sprint rendering to w.
func Fprint(w io.Writer, b *Branch) error {
	_, err := io.WriteString(w, Sprint(b))
	return err
}

func printBranch(b *Branch, t treeprint.Tree) {
	for _, e := range b.entries {
		switch n := e.node.(type) {
		case *Branch:
			printBranch(n, t.AddBranch(fmt.Sprintf("%v", e.key)))
		case Leaf:
			t.AddNode(fmt.Sprintf("%v: %v", e.key, n.Value))
		}
	}
}

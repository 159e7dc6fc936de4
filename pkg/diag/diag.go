// Package diag carries the non-fatal warnings emitted by tree
// operations.
//
// Operations that can partially decline work (discarding a duplicate
// key path while building a tree, aborting an insertion that ran into
// a leaf) report what happened through a Sink instead of failing.
// Sinks are injected per call, so the engine itself keeps no global
// logger state and stays deterministic under test.
//
// The zero configuration is silence: passing no sink (or Discard)
// costs one interface call per warning and nothing else.
package diag

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Code classifies a warning.
type Code int

const (
	// DuplicatePath marks a key path that appeared more than once in a
	// build or merge input. The first occurrence wins; later ones are
	// discarded.
	DuplicatePath Code = iota

	// LeafObstruction marks an insertion that was abandoned because an
	// intermediate key along the path holds a leaf, not a branch.
	LeafObstruction
)

// String returns a short identifier for the code.
func (c Code) String() string {
	switch c {
	case DuplicatePath:
		return "duplicate-path"
	case LeafObstruction:
		return "leaf-obstruction"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Warning is a single non-fatal diagnostic. Path is the key path the
// warning refers to (root-adjacent key first) and Value the value
// involved: the value kept for DuplicatePath, the value that could not
// be placed for LeafObstruction.
type Warning struct {
	Code  Code
	Path  []any
	Value any
}

// Message renders the warning as a single human-readable line.
func (w Warning) Message() string {
	switch w.Code {
	case DuplicatePath:
		return fmt.Sprintf("key path %v appeared more than once; keeping %s",
			w.Path, renderValue(w.Value))
	case LeafObstruction:
		return fmt.Sprintf("cannot place %s at %v: a key along the path holds a leaf, not a branch",
			renderValue(w.Value), w.Path)
	default:
		return fmt.Sprintf("%s at %v: %s", w.Code, w.Path, renderValue(w.Value))
	}
}

// renderValue formats an arbitrary caller value for messages. spew
// handles pointers and unexported fields without panicking, which
// fmt's %#v does not guarantee for every value a caller may store.
func renderValue(v any) string {
	s := spew.Sprintf("%#v", v)
	return strings.TrimSpace(s)
}

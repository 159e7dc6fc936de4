package nest

import "github.com/joshuapare/nestkit/pkg/diag"

// Options configures the mutating and transforming operations. A nil
// *Options is valid and means: copy before mutating, consider all
// keys, fail on transform errors, discard warnings. Each operation
// documents which fields it honors.
type Options struct {
	// InPlace mutates the caller's tree directly instead of deep-cloning
	// it first. Honored by Add, Replace, Remove, MapLeaves and
	// FilterLeaves.
	InPlace bool

	// Keys restricts MapLeaves and FilterLeaves to leaves stored under
	// one of these keys. Empty means every key is considered.
	Keys []Key

	// Permissive makes MapLeaves and FilterLeaves skip leaves whose
	// transform or predicate fails, instead of aborting the call.
	Permissive bool

	// Diag receives non-fatal warnings: duplicate key paths discarded by
	// Build and Merge, and insertions abandoned by Add. Nil discards.
	Diag diag.Sink
}

func (o *Options) inPlace() bool {
	return o != nil && o.InPlace
}

func (o *Options) permissive() bool {
	return o != nil && o.Permissive
}

func (o *Options) keys() []Key {
	if o == nil {
		return nil
	}
	return o.Keys
}

func (o *Options) sink() diag.Sink {
	if o == nil || o.Diag == nil {
		return diag.Discard
	}
	return o.Diag
}

// keySelected reports whether key is covered by the selection. An
// empty selection covers everything.
func keySelected(keys []Key, key Key) bool {
	if len(keys) == 0 {
		return true
	}
	for _, k := range keys {
		if valueEqual(k, key) {
			return true
		}
	}
	return false
}

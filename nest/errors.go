package nest

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching. The typed errors below carry
// the details and satisfy Is against their sentinel.
var (
	// ErrKeyNotFound reports that the final key of a path is absent.
	ErrKeyNotFound = errors.New("nest: key path does not exist")

	// ErrValueMismatch reports that the value found at a path differs
	// from the expected one.
	ErrValueMismatch = errors.New("nest: value mismatch")

	// ErrTransform reports a failing caller-supplied transform or
	// predicate in non-permissive mode.
	ErrTransform = errors.New("nest: transform failed")

	// ErrPredicateResult reports a predicate result that is not a bool.
	ErrPredicateResult = errors.New("nest: predicate returned a non-boolean")
)

// KeyNotFoundError is returned by Replace and Remove when the final
// key of the path is absent. Path is the full path walked, including
// the missing key.
type KeyNotFoundError struct {
	Path Path
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("nest: the key path %v does not exist", e.Path)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// ValueMismatchError is returned by Remove when the final key exists
// but holds a value different from the expected one.
type ValueMismatchError struct {
	Path     Path
	Expected any
	Actual   any
}

func (e *ValueMismatchError) Error() string {
	return fmt.Sprintf("nest: the key path %v was found, but the expected value (%v) does not correspond to the stored one (%v)",
		e.Path, e.Expected, e.Actual)
}

func (e *ValueMismatchError) Is(target error) bool {
	return target == ErrValueMismatch
}

// TransformError is returned by MapLeaves and FilterLeaves when the
// caller-supplied function fails for a leaf and permissive mode is
// off. It wraps the original failure.
type TransformError struct {
	Value any
	Err   error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("nest: could not apply the function to %v: %v", e.Value, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

func (e *TransformError) Is(target error) bool {
	return target == ErrTransform
}

// PredicateResultError is returned by FilterLeaves when the predicate
// produced something other than a bool for a leaf.
type PredicateResultError struct {
	Value  any
	Result any
}

func (e *PredicateResultError) Error() string {
	return fmt.Sprintf("nest: the predicate must return a bool, but it returned %v (%T) for %v",
		e.Result, e.Result, e.Value)
}

func (e *PredicateResultError) Is(target error) bool {
	return target == ErrPredicateResult
}

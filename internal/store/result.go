package store

import "errors"

var (
	// ErrClosed is reported by queries against a store that has been closed
	ErrClosed = errors.New("store is closed")
	// ErrProjectNotFound is returned when an item names a project the store does not hold
	ErrProjectNotFound = errors.New("project not found")
)

// Result carries a query value together with the reason it fell back to a
// safe default. Value is always usable; Err is informational.
type Result[T any] struct {
	Value T
	Err   error
}

// Degraded reports whether Value is a fallback rather than a real answer
func (r Result[T]) Degraded() bool {
	return r.Err != nil
}

func succeeded[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func degraded[T any](fallback T, err error) Result[T] {
	return Result[T]{Value: fallback, Err: err}
}

// SaveResult reports the outcome of a Save. A failed durable write shows up
// as Err while the in-memory graph keeps the changes.
type SaveResult struct {
	// Changes is the number of records written or deleted; 0 means Save was a no-op
	Changes int
	Err     error
}

// Degraded reports whether the durable write failed
func (r SaveResult) Degraded() bool {
	return r.Err != nil
}

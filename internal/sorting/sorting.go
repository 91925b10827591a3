// Package sorting orders items and projects by lists of sort descriptors.
//
// A descriptor list is applied key by key: a tie on one key falls through to
// the next, and a tie on every key means neither element precedes the other.
// Sorting is always stable, so elements equal on every key keep their input
// order.
package sorting

import (
	"slices"
)

// Descriptor compares two values on a single key
type Descriptor[T any] struct {
	Key        string
	Compare    func(a, b T) int
	Descending bool
}

// compare applies the descriptor's direction
func (d Descriptor[T]) compare(a, b T) int {
	c := d.Compare(a, b)
	if d.Descending {
		return -c
	}
	return c
}

// Cmp folds descriptors into a single three-way comparison
func Cmp[T any](ds ...Descriptor[T]) func(a, b T) int {
	return func(a, b T) int {
		for _, d := range ds {
			if c := d.compare(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// Less reports whether a sorts before b under ds
func Less[T any](ds ...Descriptor[T]) func(a, b T) bool {
	cmp := Cmp(ds...)
	return func(a, b T) bool {
		return cmp(a, b) < 0
	}
}

// Stable sorts xs in place. With no descriptors the order is left unchanged.
func Stable[T any](xs []T, ds ...Descriptor[T]) {
	if len(ds) == 0 {
		return
	}
	slices.SortStableFunc(xs, Cmp(ds...))
}

// Sorted returns a sorted copy of xs
func Sorted[T any](xs []T, ds ...Descriptor[T]) []T {
	out := slices.Clone(xs)
	if out == nil {
		out = []T{}
	}
	Stable(out, ds...)
	return out
}

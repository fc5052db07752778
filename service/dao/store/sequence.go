// Package store provides insertion-ordered, single-owner storage structures
// used by task manager variants. Implementations are not safe for concurrent
// use; callers serialize access.
package store

// Sequence keeps values in insertion order.
type Sequence[T any] interface {
	// Len returns the number of stored values
	Len() int

	// Append adds v at the end; it returns false when v was not stored
	Append(v T) bool

	// Values returns a copy of the stored values, oldest first
	Values() []T

	// Each iterates values oldest first until fn returns false
	Each(fn func(v T) bool)

	// RemoveFirst removes the oldest value matching fn
	RemoveFirst(fn func(v T) bool) (T, bool)

	// RemoveAll removes every value matching fn, returning them oldest first
	RemoveAll(fn func(v T) bool) []T
}

// Any matches every value
func Any[T any](T) bool { return true }

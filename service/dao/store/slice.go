package store

// Slice is a slice backed Sequence.
type Slice[T any] struct {
	values []T
}

// NewSlice creates a slice sequence with the supplied initial capacity
func NewSlice[T any](capacity int) *Slice[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Slice[T]{values: make([]T, 0, capacity)}
}

func (s *Slice[T]) Len() int { return len(s.values) }

func (s *Slice[T]) Append(v T) bool {
	s.values = append(s.values, v)
	return true
}

func (s *Slice[T]) Values() []T {
	return append(make([]T, 0, len(s.values)), s.values...)
}

func (s *Slice[T]) Each(fn func(v T) bool) {
	for _, v := range s.values {
		if !fn(v) {
			return
		}
	}
}

func (s *Slice[T]) RemoveFirst(fn func(v T) bool) (T, bool) {
	for i, v := range s.values {
		if fn(v) {
			s.values = append(s.values[:i], s.values[i+1:]...)
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (s *Slice[T]) RemoveAll(fn func(v T) bool) []T {
	var removed []T
	kept := s.values[:0]
	for _, v := range s.values {
		if fn(v) {
			removed = append(removed, v)
			continue
		}
		kept = append(kept, v)
	}
	var zero T
	for i := len(kept); i < len(s.values); i++ {
		s.values[i] = zero
	}
	s.values = kept
	return removed
}

var _ Sequence[int] = (*Slice[int])(nil)

package store

import "container/list"

// OrderedSet is an insertion-ordered set: membership tests and removal by
// value are O(1), iteration follows insertion order. Re-adding a present
// value keeps its original position.
type OrderedSet[T comparable] struct {
	index map[T]*list.Element
	list  *list.List
}

// NewOrderedSet creates an empty ordered set
func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{index: make(map[T]*list.Element), list: list.New()}
}

func (s *OrderedSet[T]) Len() int { return s.list.Len() }

// Contains reports whether v is stored
func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *OrderedSet[T]) Append(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = s.list.PushBack(v)
	return true
}

// Remove deletes v, reporting whether it was present
func (s *OrderedSet[T]) Remove(v T) bool {
	e, ok := s.index[v]
	if !ok {
		return false
	}
	s.list.Remove(e)
	delete(s.index, v)
	return true
}

func (s *OrderedSet[T]) Values() []T {
	out := make([]T, 0, s.list.Len())
	for e := s.list.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(T))
	}
	return out
}

func (s *OrderedSet[T]) Each(fn func(v T) bool) {
	for e := s.list.Front(); e != nil; e = e.Next() {
		if !fn(e.Value.(T)) {
			return
		}
	}
}

func (s *OrderedSet[T]) RemoveFirst(fn func(v T) bool) (T, bool) {
	for e := s.list.Front(); e != nil; e = e.Next() {
		if v := e.Value.(T); fn(v) {
			s.list.Remove(e)
			delete(s.index, v)
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (s *OrderedSet[T]) RemoveAll(fn func(v T) bool) []T {
	var removed []T
	for e := s.list.Front(); e != nil; {
		next := e.Next()
		if v := e.Value.(T); fn(v) {
			s.list.Remove(e)
			delete(s.index, v)
			removed = append(removed, v)
		}
		e = next
	}
	return removed
}

var _ Sequence[int] = (*OrderedSet[int])(nil)

package store

import "container/list"

// Linked is a doubly linked list Sequence; removing the front value is O(1).
type Linked[T any] struct {
	list *list.List
}

// NewLinked creates an empty linked sequence
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{list: list.New()}
}

func (l *Linked[T]) Len() int { return l.list.Len() }

func (l *Linked[T]) Append(v T) bool {
	l.list.PushBack(v)
	return true
}

// Front returns the oldest value
func (l *Linked[T]) Front() (T, bool) {
	if e := l.list.Front(); e != nil {
		return e.Value.(T), true
	}
	var zero T
	return zero, false
}

// PopFront removes and returns the oldest value
func (l *Linked[T]) PopFront() (T, bool) {
	e := l.list.Front()
	if e == nil {
		var zero T
		return zero, false
	}
	return l.list.Remove(e).(T), true
}

func (l *Linked[T]) Values() []T {
	out := make([]T, 0, l.list.Len())
	for e := l.list.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(T))
	}
	return out
}

func (l *Linked[T]) Each(fn func(v T) bool) {
	for e := l.list.Front(); e != nil; e = e.Next() {
		if !fn(e.Value.(T)) {
			return
		}
	}
}

func (l *Linked[T]) RemoveFirst(fn func(v T) bool) (T, bool) {
	for e := l.list.Front(); e != nil; e = e.Next() {
		if v := e.Value.(T); fn(v) {
			l.list.Remove(e)
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (l *Linked[T]) RemoveAll(fn func(v T) bool) []T {
	var removed []T
	for e := l.list.Front(); e != nil; {
		next := e.Next()
		if v := e.Value.(T); fn(v) {
			l.list.Remove(e)
			removed = append(removed, v)
		}
		e = next
	}
	return removed
}

var _ Sequence[int] = (*Linked[int])(nil)

package model

import "fmt"

// OrderedList is a zero-based, densely numbered sequence. Every insertion or
// removal renumbers the elements that follow it.
type OrderedList[T any] struct {
	items  []T
	offset func(T) uint32
	place  func(*T, uint32)
}

// NewOrderedList builds a list that reads and writes element positions through the given accessors.
func NewOrderedList[T any](offset func(T) uint32, place func(*T, uint32)) OrderedList[T] {
	return OrderedList[T]{offset: offset, place: place}
}

// Len returns the number of elements.
func (l *OrderedList[T]) Len() int {
	return len(l.items)
}

// At returns the element at position i.
func (l *OrderedList[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, fmt.Errorf("%w: position %d out of range [0, %d)", ErrNotFound, i, len(l.items))
	}
	return l.items[i], nil
}

// All returns a copy of the elements in order.
func (l *OrderedList[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Append adds v at the end.
func (l *OrderedList[T]) Append(v T) {
	l.place(&v, uint32(len(l.items)))
	l.items = append(l.items, v)
}

// Insert places v at position i, shifting later elements.
func (l *OrderedList[T]) Insert(i int, v T) error {
	if i < 0 || i > len(l.items) {
		return fmt.Errorf("%w: insert position %d out of range [0, %d]", ErrValidation, i, len(l.items))
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v
	l.renumber(i)
	return nil
}

// Set replaces the element at position i.
func (l *OrderedList[T]) Set(i int, v T) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: position %d out of range [0, %d)", ErrNotFound, i, len(l.items))
	}
	l.place(&v, uint32(i))
	l.items[i] = v
	return nil
}

// Remove deletes and returns the element at position i.
func (l *OrderedList[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, fmt.Errorf("%w: position %d out of range [0, %d)", ErrNotFound, i, len(l.items))
	}
	v := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.renumber(i)
	return v, nil
}

// CheckContiguous reports a structural violation when positions are not 0..n-1.
func (l *OrderedList[T]) CheckContiguous() error {
	for i, v := range l.items {
		if got := l.offset(v); got != uint32(i) {
			return fmt.Errorf("%w: element at %d carries position %d", ErrStructuralInvariant, i, got)
		}
	}
	return nil
}

func (l *OrderedList[T]) renumber(from int) {
	for i := from; i < len(l.items); i++ {
		l.place(&l.items[i], uint32(i))
	}
}

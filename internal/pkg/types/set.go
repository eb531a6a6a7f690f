package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is a mutable hash set.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

func (s Set[T]) Contains(value T) bool {
	_, ok := s[value]
	return ok
}

// ToIter yields the elements in no particular order.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}

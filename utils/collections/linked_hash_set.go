package collections

import "github.com/emirpasic/gods/sets/linkedhashset"

type linkedHashSet[V comparable] struct {
	entries *linkedhashset.Set
}

// NewLinkedHashSet returns a set iterating in first-insertion order.
func NewLinkedHashSet[V comparable]() Set[V] {
	return &linkedHashSet[V]{
		entries: linkedhashset.New(),
	}
}

func (s *linkedHashSet[V]) Contains(v V) bool {
	if !hashable(v) {
		return false
	}
	return s.entries.Contains(v)
}

func (s *linkedHashSet[V]) Add(v V) error {
	if !hashable(v) {
		return ErrUnsupportedValue
	}
	if s.entries.Contains(v) {
		return ErrValueExisted
	}
	s.entries.Add(v)
	return nil
}

func (s *linkedHashSet[V]) Remove(v V) error {
	if !s.Contains(v) {
		return ErrValueNotExisted
	}
	s.entries.Remove(v)
	return nil
}

func (s *linkedHashSet[V]) Size() int {
	return s.entries.Size()
}

func (s *linkedHashSet[V]) Entries() []V {
	return typed[V](s.entries.Values())
}

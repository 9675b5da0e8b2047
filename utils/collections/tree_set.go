package collections

import (
	"github.com/emirpasic/gods/sets/treeset"
	"golang.org/x/exp/constraints"
)

type treeSet[V any] struct {
	entries *treeset.Set
}

func NewTreeSet[V constraints.Ordered]() Set[V] {
	return NewTreeSetWith(Compare[V])
}

// NewTreeSetWith returns a set iterating in ascending order of cmp. Nil values are
// rejected with ErrUnsupportedValue.
func NewTreeSetWith[V any](cmp func(a, b V) int) Set[V] {
	return &treeSet[V]{
		entries: treeset.NewWith(comparator(cmp)),
	}
}

func (s *treeSet[V]) Contains(v V) bool {
	if isNil(v) {
		return false
	}
	return s.entries.Contains(v)
}

func (s *treeSet[V]) Add(v V) error {
	if isNil(v) {
		return ErrUnsupportedValue
	}
	if s.entries.Contains(v) {
		return ErrValueExisted
	}
	s.entries.Add(v)
	return nil
}

func (s *treeSet[V]) Remove(v V) error {
	if !s.Contains(v) {
		return ErrValueNotExisted
	}
	s.entries.Remove(v)
	return nil
}

func (s *treeSet[V]) Size() int {
	return s.entries.Size()
}

func (s *treeSet[V]) Entries() []V {
	return typed[V](s.entries.Values())
}

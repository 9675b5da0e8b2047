package collections

import (
	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/exp/constraints"
)

type treeMap[K any, V any] struct {
	entries *treemap.Map
}

func NewTreeMap[K constraints.Ordered, V any]() Map[K, V] {
	return NewTreeMapWith[K, V](Compare[K])
}

// NewTreeMapWith returns a map iterating its keys in ascending order of cmp. Nil keys are
// rejected with ErrUnsupportedValue since cmp cannot order them.
func NewTreeMapWith[K any, V any](cmp func(a, b K) int) Map[K, V] {
	return &treeMap[K, V]{
		entries: treemap.NewWith(comparator(cmp)),
	}
}

func (m *treeMap[K, V]) Contains(k K) bool {
	if isNil(k) {
		return false
	}
	_, found := m.entries.Get(k)
	return found
}

func (m *treeMap[K, V]) Put(k K, v V, forced bool) error {
	if isNil(k) {
		return ErrUnsupportedValue
	}
	if !forced && m.Contains(k) {
		return ErrValueExisted
	}
	m.entries.Put(k, v)
	return nil
}

func (m *treeMap[K, V]) Get(k K) (v V, err error) {
	if isNil(k) {
		return v, ErrValueNotExisted
	}
	raw, found := m.entries.Get(k)
	if !found {
		return v, ErrValueNotExisted
	}
	return cast[V](raw), nil
}

func (m *treeMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	m.entries.Remove(k)
	return nil
}

func (m *treeMap[K, V]) Size() int {
	return m.entries.Size()
}

func (m *treeMap[K, V]) Keys() []K {
	return typed[K](m.entries.Keys())
}

func (m *treeMap[K, V]) Clear() {
	m.entries.Clear()
}

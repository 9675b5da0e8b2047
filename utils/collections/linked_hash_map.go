package collections

import "github.com/emirpasic/gods/maps/linkedhashmap"

type linkedHashMap[K comparable, V any] struct {
	entries *linkedhashmap.Map
}

// NewLinkedHashMap returns a map iterating its keys in first-insertion order. Overwriting
// an existing key keeps its position.
func NewLinkedHashMap[K comparable, V any]() Map[K, V] {
	return &linkedHashMap[K, V]{
		entries: linkedhashmap.New(),
	}
}

func (m *linkedHashMap[K, V]) Contains(k K) bool {
	if !hashable(k) {
		return false
	}
	_, found := m.entries.Get(k)
	return found
}

func (m *linkedHashMap[K, V]) Put(k K, v V, forced bool) error {
	if !hashable(k) {
		return ErrUnsupportedValue
	}
	if !forced && m.Contains(k) {
		return ErrValueExisted
	}
	m.entries.Put(k, v)
	return nil
}

func (m *linkedHashMap[K, V]) Get(k K) (v V, err error) {
	if !hashable(k) {
		return v, ErrValueNotExisted
	}
	raw, found := m.entries.Get(k)
	if !found {
		return v, ErrValueNotExisted
	}
	return cast[V](raw), nil
}

func (m *linkedHashMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	m.entries.Remove(k)
	return nil
}

func (m *linkedHashMap[K, V]) Size() int {
	return m.entries.Size()
}

func (m *linkedHashMap[K, V]) Keys() []K {
	return typed[K](m.entries.Keys())
}

func (m *linkedHashMap[K, V]) Clear() {
	m.entries.Clear()
}

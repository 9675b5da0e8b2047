package multimap

import (
	"github.com/tuannh982/setmultimap/utils/collections"
	"golang.org/x/exp/constraints"
)

// NewHashSetMultimap returns a multimap with unordered keys and unordered buckets. Keys
// and values must be hashable and equal to themselves: an incomparable dynamic type or a
// NaN is rejected by Put with collections.ErrUnsupportedValue.
func NewHashSetMultimap[K comparable, V comparable](opts ...Option) *SetMultimap[K, V] {
	return New[K, V](collections.NewHashMap[K, collections.Set[V]](), collections.NewComparableSet[V], opts...)
}

// NewLinkedHashSetMultimap returns a multimap iterating keys and values in insertion
// order. Unhashable keys and values are rejected as in NewHashSetMultimap.
func NewLinkedHashSetMultimap[K comparable, V comparable](opts ...Option) *SetMultimap[K, V] {
	return New[K, V](collections.NewLinkedHashMap[K, collections.Set[V]](), collections.NewLinkedHashSet[V], opts...)
}

// NewTreeSetMultimap returns a multimap iterating keys and values in ascending order.
// NaN has no place in the order and must not be stored.
func NewTreeSetMultimap[K constraints.Ordered, V constraints.Ordered](opts ...Option) *SetMultimap[K, V] {
	return New[K, V](collections.NewTreeMap[K, collections.Set[V]](), collections.NewTreeSet[V], opts...)
}

// NewKeyedSetMultimap returns a multimap with unordered keys whose buckets identify
// values by key, so V need not be comparable.
func NewKeyedSetMultimap[K comparable, V any, R comparable](key collections.KeyFunc[V, R], opts ...Option) *SetMultimap[K, V] {
	return New[K, V](collections.NewHashMap[K, collections.Set[V]](), func() collections.Set[V] {
		return collections.NewKeyedSet(key)
	}, opts...)
}

// CopyOf returns an insertion-ordered multimap holding every pair of src, in the
// iteration order of src.
func CopyOf[K comparable, V comparable](src ReadOnlySetMultimap[K, V], opts ...Option) (*SetMultimap[K, V], error) {
	m := NewLinkedHashSetMultimap[K, V](opts...)
	if _, err := m.PutAllFrom(src); err != nil {
		return nil, err
	}
	return m, nil
}

// FromEntries returns an insertion-ordered multimap holding the distinct pairs of
// entries.
func FromEntries[K comparable, V comparable](entries []Entry[K, V], opts ...Option) (*SetMultimap[K, V], error) {
	m := NewLinkedHashSetMultimap[K, V](opts...)
	if _, err := m.PutEntries(entries...); err != nil {
		return nil, err
	}
	return m, nil
}

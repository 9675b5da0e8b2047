package collections

import mapset "github.com/deckarep/golang-set/v2"

type comparableSet[V comparable] struct {
	entries mapset.Set[V]
}

// NewComparableSet returns an unordered set backed by a thread-unsafe mapset. Values
// whose dynamic type is not comparable, and values not equal to themselves such as NaN,
// are rejected with ErrUnsupportedValue.
func NewComparableSet[V comparable]() Set[V] {
	return &comparableSet[V]{
		entries: mapset.NewThreadUnsafeSet[V](),
	}
}

func (s *comparableSet[V]) Contains(v V) bool {
	if !hashable(v) {
		return false
	}
	return s.entries.Contains(v)
}

func (s *comparableSet[V]) Add(v V) error {
	if !hashable(v) {
		return ErrUnsupportedValue
	}
	if !s.entries.Add(v) {
		return ErrValueExisted
	}
	return nil
}

func (s *comparableSet[V]) Remove(v V) error {
	if !s.Contains(v) {
		return ErrValueNotExisted
	}
	s.entries.Remove(v)
	return nil
}

func (s *comparableSet[V]) Size() int {
	return s.entries.Cardinality()
}

func (s *comparableSet[V]) Entries() []V {
	return s.entries.ToSlice()
}

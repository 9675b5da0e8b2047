package multimap

import (
	"fmt"

	"github.com/tuannh982/setmultimap/utils/collections"
)

var _ collections.Set[int] = (*ValueSet[string, int])(nil)

// ValueSet is the live bucket of one key. It holds no elements itself: every call looks
// the bucket up again, so the view stays valid across removal and re-creation of the key.
type ValueSet[K any, V any] struct {
	owner *SetMultimap[K, V]
	key   K
}

func (s *ValueSet[K, V]) Key() K {
	return s.key
}

func (s *ValueSet[K, V]) Contains(v V) bool {
	return s.owner.ContainsEntry(s.key, v)
}

// Add stores v under the view's key, returning collections.ErrValueExisted if it was
// already there.
func (s *ValueSet[K, V]) Add(v V) error {
	added, err := s.owner.Put(s.key, v)
	if err != nil {
		return err
	}
	if !added {
		return collections.ErrValueExisted
	}
	return nil
}

func (s *ValueSet[K, V]) Remove(v V) error {
	if !s.owner.Remove(s.key, v) {
		return collections.ErrValueNotExisted
	}
	return nil
}

func (s *ValueSet[K, V]) Clear() {
	s.owner.RemoveAll(s.key)
}

func (s *ValueSet[K, V]) Size() int {
	if bucket, ok := s.owner.bucket(s.key); ok {
		return bucket.Size()
	}
	return 0
}

func (s *ValueSet[K, V]) IsEmpty() bool {
	return !s.owner.ContainsKey(s.key)
}

// Entries returns a copy of the values in bucket order.
func (s *ValueSet[K, V]) Entries() []V {
	if bucket, ok := s.owner.bucket(s.key); ok {
		return bucket.Entries()
	}
	return []V{}
}

func (s *ValueSet[K, V]) Iterator() Iterator[V] {
	return newSliceIterator(&s.owner.modCount, s.Entries(), func(v V) {
		s.owner.Remove(s.key, v)
	})
}

func (s *ValueSet[K, V]) Equal(other collections.Set[V]) bool {
	return collections.Equal[V](s, other)
}

func (s *ValueSet[K, V]) String() string {
	return fmt.Sprint(s.Entries())
}

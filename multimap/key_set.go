package multimap

// KeySet is the live set of distinct keys. Removing a key removes all of its values.
type KeySet[K any, V any] struct {
	owner *SetMultimap[K, V]
}

func (s *KeySet[K, V]) Size() int {
	return s.owner.backing.Size()
}

func (s *KeySet[K, V]) IsEmpty() bool {
	return s.owner.IsEmpty()
}

func (s *KeySet[K, V]) Contains(key K) bool {
	return s.owner.ContainsKey(key)
}

func (s *KeySet[K, V]) Remove(key K) bool {
	return s.owner.RemoveAll(key).Size() > 0
}

func (s *KeySet[K, V]) Clear() {
	s.owner.Clear()
}

func (s *KeySet[K, V]) Entries() []K {
	return s.owner.backing.Keys()
}

func (s *KeySet[K, V]) Iterator() Iterator[K] {
	return newSliceIterator(&s.owner.modCount, s.Entries(), func(key K) {
		s.owner.RemoveAll(key)
	})
}

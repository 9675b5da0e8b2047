package multimap

// KeyMultiset is the live multiset of keys, holding each key once per value stored
// under it.
type KeyMultiset[K any, V any] struct {
	owner *SetMultimap[K, V]
}

func (s *KeyMultiset[K, V]) Size() int {
	return s.owner.Size()
}

func (s *KeyMultiset[K, V]) Contains(key K) bool {
	return s.owner.ContainsKey(key)
}

func (s *KeyMultiset[K, V]) Count(key K) int {
	return s.owner.Get(key).Size()
}

// Remove deletes up to n values of key, in bucket order, and returns the count of key
// before the call.
func (s *KeyMultiset[K, V]) Remove(key K, n int) int {
	values := s.owner.Get(key).Entries()
	if n <= 0 {
		return len(values)
	}
	if n >= len(values) {
		s.owner.RemoveAll(key)
		return len(values)
	}
	for _, v := range values[:n] {
		s.owner.Remove(key, v)
	}
	return len(values)
}

func (s *KeyMultiset[K, V]) ElementSet() *KeySet[K, V] {
	return s.owner.KeySet()
}

// Iterator yields each key once per value; Remove deletes that one pair.
func (s *KeyMultiset[K, V]) Iterator() Iterator[K] {
	return &mappedIterator[Entry[K, V], K]{
		Iterator: newEntryIterator(s.owner),
		project: func(e Entry[K, V]) K {
			return e.Key
		},
	}
}

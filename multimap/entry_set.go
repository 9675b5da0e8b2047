package multimap

// EntrySet is the live set of all key-value pairs, ordered by key then by bucket.
type EntrySet[K any, V any] struct {
	owner *SetMultimap[K, V]
}

func (s *EntrySet[K, V]) Size() int {
	return s.owner.Size()
}

func (s *EntrySet[K, V]) IsEmpty() bool {
	return s.owner.IsEmpty()
}

func (s *EntrySet[K, V]) Contains(e Entry[K, V]) bool {
	return s.owner.ContainsEntry(e.Key, e.Value)
}

// Remove deletes the pair, dropping its key if it was the last value.
func (s *EntrySet[K, V]) Remove(e Entry[K, V]) bool {
	return s.owner.Remove(e.Key, e.Value)
}

func (s *EntrySet[K, V]) Clear() {
	s.owner.Clear()
}

func (s *EntrySet[K, V]) Entries() []Entry[K, V] {
	arr := make([]Entry[K, V], 0, s.owner.Size())
	_ = s.owner.ForEach(func(key K, value V) bool {
		arr = append(arr, Entry[K, V]{Key: key, Value: value})
		return true
	})
	return arr
}

func (s *EntrySet[K, V]) Iterator() Iterator[Entry[K, V]] {
	return newEntryIterator(s.owner)
}

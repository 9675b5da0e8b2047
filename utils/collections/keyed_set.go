package collections

// KeyFunc derives the identity of a value for a keyed set.
type KeyFunc[V any, R comparable] func(V) R

type keyedSet[V any, R comparable] struct {
	entries map[R]V
	key     KeyFunc[V, R]
}

// NewKeyedSet returns an unordered set in which two values are the same element when key
// maps them to equal identities. It holds value types that are not comparable, such as
// structs with slice fields. The first value stored for an identity is kept.
func NewKeyedSet[V any, R comparable](key KeyFunc[V, R]) Set[V] {
	return &keyedSet[V, R]{
		entries: make(map[R]V),
		key:     key,
	}
}

func (s *keyedSet[V, R]) identity(v V) (R, bool) {
	id := s.key(v)
	return id, hashable(id)
}

func (s *keyedSet[V, R]) Contains(v V) bool {
	id, ok := s.identity(v)
	if !ok {
		return false
	}
	_, found := s.entries[id]
	return found
}

func (s *keyedSet[V, R]) Add(v V) error {
	id, ok := s.identity(v)
	if !ok {
		return ErrUnsupportedValue
	}
	if _, found := s.entries[id]; found {
		return ErrValueExisted
	}
	s.entries[id] = v
	return nil
}

func (s *keyedSet[V, R]) Remove(v V) error {
	id, ok := s.identity(v)
	if !ok {
		return ErrValueNotExisted
	}
	if _, found := s.entries[id]; !found {
		return ErrValueNotExisted
	}
	delete(s.entries, id)
	return nil
}

func (s *keyedSet[V, R]) Size() int {
	return len(s.entries)
}

func (s *keyedSet[V, R]) Entries() []V {
	arr := make([]V, 0, len(s.entries))
	for _, v := range s.entries {
		arr = append(arr, v)
	}
	return arr
}

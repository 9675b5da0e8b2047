package collections

// emptySet is zero-sized, so every EmptySet value shares the runtime's zero-size
// allocation and nothing is allocated per call.
type emptySet[V any] struct{}

// EmptySet returns the immutable empty set. Add and Remove fail with
// ErrUnsupportedOperation.
func EmptySet[V any]() Set[V] {
	return emptySet[V]{}
}

func (emptySet[V]) Contains(V) bool {
	return false
}

func (emptySet[V]) Add(V) error {
	return ErrUnsupportedOperation
}

func (emptySet[V]) Remove(V) error {
	return ErrUnsupportedOperation
}

func (emptySet[V]) Size() int {
	return 0
}

func (emptySet[V]) Entries() []V {
	return []V{}
}

package collections

type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
}

// Equal reports whether a and b hold the same elements, ignoring iteration order.
func Equal[V any](a, b Set[V]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for _, v := range a.Entries() {
		if !b.Contains(v) {
			return false
		}
	}
	return true
}

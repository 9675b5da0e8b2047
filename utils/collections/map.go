package collections

// Map is a key-unique mapping. Keys returns the keys in the iteration order of the
// implementation: random for hash maps, insertion order for linked maps, ascending for
// tree maps.
type Map[K any, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Clear()
}

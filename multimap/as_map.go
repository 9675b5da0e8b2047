package multimap

import "github.com/tuannh982/setmultimap/utils/collections"

// MapEntry pairs a key with its live bucket view.
type MapEntry[K any, V any] struct {
	Key    K
	Values *ValueSet[K, V]
}

// MapView exposes the multimap as a map from key to bucket. Only keys with at least one
// value are present.
type MapView[K any, V any] struct {
	owner *SetMultimap[K, V]
}

func (v *MapView[K, V]) Get(key K) (*ValueSet[K, V], bool) {
	if !v.owner.ContainsKey(key) {
		return nil, false
	}
	return v.owner.Get(key), true
}

func (v *MapView[K, V]) ContainsKey(key K) bool {
	return v.owner.ContainsKey(key)
}

// Remove detaches the bucket of key, as RemoveAll does.
func (v *MapView[K, V]) Remove(key K) (collections.Set[V], bool) {
	if !v.owner.ContainsKey(key) {
		return nil, false
	}
	return v.owner.RemoveAll(key), true
}

func (v *MapView[K, V]) Size() int {
	return v.owner.backing.Size()
}

func (v *MapView[K, V]) IsEmpty() bool {
	return v.owner.IsEmpty()
}

func (v *MapView[K, V]) Clear() {
	v.owner.Clear()
}

func (v *MapView[K, V]) KeySet() *KeySet[K, V] {
	return v.owner.KeySet()
}

func (v *MapView[K, V]) Entries() []MapEntry[K, V] {
	keys := v.owner.backing.Keys()
	arr := make([]MapEntry[K, V], 0, len(keys))
	for _, key := range keys {
		arr = append(arr, MapEntry[K, V]{Key: key, Values: v.owner.Get(key)})
	}
	return arr
}

// Iterator yields one entry per key; Remove drops the whole bucket.
func (v *MapView[K, V]) Iterator() Iterator[MapEntry[K, V]] {
	return newSliceIterator(&v.owner.modCount, v.Entries(), func(e MapEntry[K, V]) {
		v.owner.RemoveAll(e.Key)
	})
}

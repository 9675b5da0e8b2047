package multimap

// ValueCollection is the live collection of every stored value, one element per pair.
type ValueCollection[K any, V any] struct {
	owner *SetMultimap[K, V]
}

func (c *ValueCollection[K, V]) Size() int {
	return c.owner.Size()
}

func (c *ValueCollection[K, V]) Contains(v V) bool {
	return c.owner.ContainsValue(v)
}

// Remove deletes the first pair holding v in iteration order.
func (c *ValueCollection[K, V]) Remove(v V) bool {
	for _, key := range c.owner.backing.Keys() {
		if c.owner.Remove(key, v) {
			return true
		}
	}
	return false
}

func (c *ValueCollection[K, V]) Clear() {
	c.owner.Clear()
}

func (c *ValueCollection[K, V]) Entries() []V {
	arr := make([]V, 0, c.owner.Size())
	_ = c.owner.ForEach(func(_ K, value V) bool {
		arr = append(arr, value)
		return true
	})
	return arr
}

func (c *ValueCollection[K, V]) Iterator() Iterator[V] {
	return &mappedIterator[Entry[K, V], V]{
		Iterator: newEntryIterator(c.owner),
		project: func(e Entry[K, V]) V {
			return e.Value
		},
	}
}

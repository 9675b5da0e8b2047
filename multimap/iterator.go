package multimap

// Iterator walks a view of a SetMultimap. Next and Remove return
// ErrConcurrentStructuralChange once the multimap has been changed by anything other
// than this iterator's Remove.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	// Remove deletes the element last returned by Next from the multimap.
	Remove() error
}

type modGuard struct {
	modCount *int
	expected int
}

func newModGuard(modCount *int) modGuard {
	return modGuard{modCount: modCount, expected: *modCount}
}

func (g *modGuard) check() error {
	if *g.modCount != g.expected {
		return ErrConcurrentStructuralChange
	}
	return nil
}

func (g *modGuard) sync() {
	g.expected = *g.modCount
}

// sliceIterator walks a snapshot taken when the iterator was created. The guard makes
// the snapshot indistinguishable from the live view.
type sliceIterator[T any] struct {
	modGuard
	items     []T
	pos       int
	removable bool
	remove    func(T)
}

func newSliceIterator[T any](modCount *int, items []T, remove func(T)) *sliceIterator[T] {
	return &sliceIterator[T]{
		modGuard: newModGuard(modCount),
		items:    items,
		remove:   remove,
	}
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.pos < len(it.items)
}

func (it *sliceIterator[T]) Next() (t T, err error) {
	if err = it.check(); err != nil {
		return t, err
	}
	if it.pos >= len(it.items) {
		return t, ErrNoSuchElement
	}
	t = it.items[it.pos]
	it.pos++
	it.removable = true
	return t, nil
}

func (it *sliceIterator[T]) Remove() error {
	if err := it.check(); err != nil {
		return err
	}
	if !it.removable {
		return ErrIllegalIteratorState
	}
	it.removable = false
	it.remove(it.items[it.pos-1])
	it.sync()
	return nil
}

// entryIterator flattens the buckets lazily: the key order is fixed at creation, each
// bucket is read when the iterator reaches its key.
type entryIterator[K any, V any] struct {
	modGuard
	owner     *SetMultimap[K, V]
	keys      []K
	keyPos    int
	key       K
	values    []V
	valuePos  int
	last      Entry[K, V]
	removable bool
}

func newEntryIterator[K any, V any](owner *SetMultimap[K, V]) *entryIterator[K, V] {
	return &entryIterator[K, V]{
		modGuard: newModGuard(&owner.modCount),
		owner:    owner,
		keys:     owner.backing.Keys(),
	}
}

func (it *entryIterator[K, V]) HasNext() bool {
	for it.valuePos >= len(it.values) {
		if it.keyPos >= len(it.keys) {
			return false
		}
		it.key = it.keys[it.keyPos]
		it.keyPos++
		it.values = nil
		it.valuePos = 0
		if bucket, ok := it.owner.bucket(it.key); ok {
			it.values = bucket.Entries()
		}
	}
	return true
}

func (it *entryIterator[K, V]) Next() (e Entry[K, V], err error) {
	if err = it.check(); err != nil {
		return e, err
	}
	if !it.HasNext() {
		return e, ErrNoSuchElement
	}
	e = Entry[K, V]{Key: it.key, Value: it.values[it.valuePos]}
	it.valuePos++
	it.last = e
	it.removable = true
	return e, nil
}

func (it *entryIterator[K, V]) Remove() error {
	if err := it.check(); err != nil {
		return err
	}
	if !it.removable {
		return ErrIllegalIteratorState
	}
	it.removable = false
	// HasNext may already have moved to the next bucket.
	it.owner.Remove(it.last.Key, it.last.Value)
	it.sync()
	return nil
}

// mappedIterator projects the elements of an underlying iterator, delegating Remove.
type mappedIterator[S any, T any] struct {
	Iterator[S]
	project func(S) T
}

func (it *mappedIterator[S, T]) Next() (t T, err error) {
	s, err := it.Iterator.Next()
	if err != nil {
		return t, err
	}
	return it.project(s), nil
}

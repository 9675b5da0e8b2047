package multimap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tuannh982/setmultimap/utils/collections"

	log "github.com/sirupsen/logrus"
)

// ReadOnlySetMultimap is the part of a set multimap needed to compare or copy it.
type ReadOnlySetMultimap[K any, V any] interface {
	// Size returns the number of distinct key-value pairs.
	Size() int

	// ContainsEntry returns true if value is stored under key.
	ContainsEntry(key K, value V) bool

	// ForEach calls fn for every pair until fn returns false.
	ForEach(fn func(key K, value V) bool) error
}

// ValueSetFactory creates the empty bucket for a key seen for the first time.
type ValueSetFactory[V any] func() collections.Set[V]

// Entry is a single key-value pair.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}

// SetMultimap maps each key to a set of values, stored as one bucket per key in a
// caller-supplied backing map. Buckets are created by the value set factory on first
// insertion and removed as soon as they become empty, so every key present maps to at
// least one value.
//
// All collections returned by Get, Entries, KeySet, Keys, Values and AsMap are live views:
// they read through to the backing map and mutate it. Iterators over them fail with
// ErrConcurrentStructuralChange once the multimap is changed by anything other than the
// iterator's own Remove.
//
// SetMultimap is not safe for concurrent use.
type SetMultimap[K any, V any] struct {
	backing   collections.Map[K, collections.Set[V]]
	newSet    ValueSetFactory[V]
	totalSize int
	modCount  int
	log       *log.Entry
}

// New creates a multimap adopting backing as its key to bucket storage. Any empty buckets
// already in backing are dropped.
func New[K any, V any](backing collections.Map[K, collections.Set[V]], newSet ValueSetFactory[V], opts ...Option) *SetMultimap[K, V] {
	o := newOptions(opts)
	m := &SetMultimap[K, V]{
		backing: backing,
		newSet:  newSet,
		log:     o.logger,
	}
	for _, key := range backing.Keys() {
		bucket, err := backing.Get(key)
		if err != nil {
			continue
		}
		if bucket == nil || bucket.Size() == 0 {
			_ = backing.Delete(key)
			m.log.Debug("dropped empty bucket on adoption", " key=", key)
			continue
		}
		m.totalSize += bucket.Size()
	}
	return m
}

func (m *SetMultimap[K, V]) bucket(key K) (collections.Set[V], bool) {
	bucket, err := m.backing.Get(key)
	if err != nil {
		return nil, false
	}
	if bucket.Size() == 0 {
		m.violation(key)
	}
	return bucket, true
}

func (m *SetMultimap[K, V]) violation(key K) {
	err := invariantViolation{key: key}
	m.log.Error(err.Error())
	panic(err)
}

func (m *SetMultimap[K, V]) prune(key K) {
	_ = m.backing.Delete(key)
	m.log.Debug("bucket pruned", " key=", key)
}

// Put stores value under key. It returns false without changing anything if the pair was
// already present.
func (m *SetMultimap[K, V]) Put(key K, value V) (bool, error) {
	bucket, ok := m.bucket(key)
	if !ok {
		bucket = m.newSet()
		if err := bucket.Add(value); err != nil {
			return false, fmt.Errorf("put value %v: %w", value, err)
		}
		if err := m.backing.Put(key, bucket, false); err != nil {
			return false, fmt.Errorf("put key %v: %w", key, err)
		}
		m.log.Debug("bucket materialized", " key=", key)
	} else if err := bucket.Add(value); err != nil {
		if errors.Is(err, collections.ErrValueExisted) {
			return false, nil
		}
		return false, fmt.Errorf("put value %v: %w", value, err)
	}
	m.totalSize++
	m.modCount++
	return true, nil
}

// PutAll stores every value under key and reports whether the multimap changed. It stops
// at the first rejected value; values added before it stay.
func (m *SetMultimap[K, V]) PutAll(key K, values ...V) (bool, error) {
	changed := false
	for _, v := range values {
		added, err := m.Put(key, v)
		if err != nil {
			return changed, err
		}
		changed = changed || added
	}
	return changed, nil
}

// PutEntries stores every pair and reports whether the multimap changed. It stops at the
// first rejected pair.
func (m *SetMultimap[K, V]) PutEntries(entries ...Entry[K, V]) (bool, error) {
	changed := false
	for _, e := range entries {
		added, err := m.Put(e.Key, e.Value)
		if err != nil {
			return changed, err
		}
		changed = changed || added
	}
	return changed, nil
}

// PutAllFrom copies every pair of src into m.
func (m *SetMultimap[K, V]) PutAllFrom(src ReadOnlySetMultimap[K, V]) (bool, error) {
	changed := false
	var putErr error
	err := src.ForEach(func(key K, value V) bool {
		added, err := m.Put(key, value)
		if err != nil {
			putErr = err
			return false
		}
		changed = changed || added
		return true
	})
	if putErr != nil {
		return changed, putErr
	}
	return changed, err
}

// Get returns the live set of values stored under key. The view exists even for an absent
// key; adding to it creates the bucket.
func (m *SetMultimap[K, V]) Get(key K) *ValueSet[K, V] {
	return &ValueSet[K, V]{owner: m, key: key}
}

// Remove deletes a single pair, dropping the key once its last value is gone.
func (m *SetMultimap[K, V]) Remove(key K, value V) bool {
	bucket, ok := m.bucket(key)
	if !ok {
		return false
	}
	if err := bucket.Remove(value); err != nil {
		return false
	}
	m.totalSize--
	m.modCount++
	if bucket.Size() == 0 {
		m.prune(key)
	}
	return true
}

// RemoveAll detaches the bucket of key and returns it. The returned set is owned by the
// caller and no longer connected to the multimap. An absent key yields the immutable empty
// set.
func (m *SetMultimap[K, V]) RemoveAll(key K) collections.Set[V] {
	bucket, ok := m.bucket(key)
	if !ok {
		return collections.EmptySet[V]()
	}
	m.prune(key)
	m.totalSize -= bucket.Size()
	m.modCount++
	return bucket
}

// ReplaceValues installs a fresh bucket holding the distinct elements of values and
// returns the previous bucket, detached. Replacing with no values removes the key. If the
// bucket rejects any value the multimap is left untouched.
func (m *SetMultimap[K, V]) ReplaceValues(key K, values []V) (collections.Set[V], error) {
	fresh := m.newSet()
	for _, v := range values {
		if err := fresh.Add(v); err != nil && !errors.Is(err, collections.ErrValueExisted) {
			return nil, fmt.Errorf("replace value %v: %w", v, err)
		}
	}
	if fresh.Size() == 0 {
		return m.RemoveAll(key), nil
	}
	old, existed := m.bucket(key)
	if err := m.backing.Put(key, fresh, true); err != nil {
		return nil, fmt.Errorf("replace key %v: %w", key, err)
	}
	m.totalSize += fresh.Size()
	m.modCount++
	if !existed {
		m.log.Debug("bucket materialized", " key=", key)
		return collections.EmptySet[V](), nil
	}
	m.totalSize -= old.Size()
	return old, nil
}

// Clear removes every pair.
func (m *SetMultimap[K, V]) Clear() {
	if m.totalSize == 0 {
		return
	}
	m.backing.Clear()
	m.totalSize = 0
	m.modCount++
}

func (m *SetMultimap[K, V]) Size() int {
	return m.totalSize
}

func (m *SetMultimap[K, V]) IsEmpty() bool {
	return m.totalSize == 0
}

func (m *SetMultimap[K, V]) ContainsKey(key K) bool {
	return m.backing.Contains(key)
}

func (m *SetMultimap[K, V]) ContainsEntry(key K, value V) bool {
	bucket, ok := m.bucket(key)
	return ok && bucket.Contains(value)
}

func (m *SetMultimap[K, V]) ContainsValue(value V) bool {
	for _, key := range m.backing.Keys() {
		if m.ContainsEntry(key, value) {
			return true
		}
	}
	return false
}

// ForEach calls fn for every pair in iteration order until fn returns false. Changing the
// multimap from fn makes ForEach stop with ErrConcurrentStructuralChange.
func (m *SetMultimap[K, V]) ForEach(fn func(key K, value V) bool) error {
	it := m.Entries().Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		if !fn(e.Key, e.Value) {
			return nil
		}
	}
	return nil
}

func (m *SetMultimap[K, V]) Entries() *EntrySet[K, V] {
	return &EntrySet[K, V]{owner: m}
}

func (m *SetMultimap[K, V]) KeySet() *KeySet[K, V] {
	return &KeySet[K, V]{owner: m}
}

func (m *SetMultimap[K, V]) Keys() *KeyMultiset[K, V] {
	return &KeyMultiset[K, V]{owner: m}
}

func (m *SetMultimap[K, V]) Values() *ValueCollection[K, V] {
	return &ValueCollection[K, V]{owner: m}
}

// AsMap returns a live map view from each key to its bucket view.
func (m *SetMultimap[K, V]) AsMap() *MapView[K, V] {
	return &MapView[K, V]{owner: m}
}

// Equal reports whether other holds exactly the same pairs. Neither key order nor value
// order matters.
func (m *SetMultimap[K, V]) Equal(other ReadOnlySetMultimap[K, V]) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*SetMultimap[K, V]); ok {
		if o == nil {
			return false
		}
		if o == m {
			return true
		}
	}
	if m.Size() != other.Size() {
		return false
	}
	equal := true
	if err := m.ForEach(func(key K, value V) bool {
		equal = other.ContainsEntry(key, value)
		return equal
	}); err != nil {
		return false
	}
	return equal
}

func (m *SetMultimap[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range m.backing.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&b, "%v=%v", key, m.Get(key))
	}
	b.WriteByte('}')
	return b.String()
}

// checkRep verifies that no key maps to an empty bucket and that the tracked size
// matches the buckets.
func (m *SetMultimap[K, V]) checkRep() error {
	total := 0
	for _, key := range m.backing.Keys() {
		bucket, err := m.backing.Get(key)
		if err != nil {
			return err
		}
		if bucket.Size() == 0 {
			return invariantViolation{key: key}
		}
		total += bucket.Size()
	}
	if total != m.totalSize {
		return fmt.Errorf("tracked size %d, buckets hold %d", m.totalSize, total)
	}
	return nil
}

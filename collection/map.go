// Package collection provides hash-addressed containers keyed by
// value.Value. A Value is deliberately not comparable with ==, so it cannot
// key a native Go map; Map and Set rebuild that capability on top of the
// Value hash and equality operations.
//
// Containers are owned by a single logical owner and are not synchronized.
package collection

import "martianoff/anyval/value"

type entry[V any] struct {
	key value.Value
	val V
}

// Map associates arbitrary values with Value keys. Keys hash with
// value.Value.Hash and collide into bucket chains resolved by value.Equal,
// so two keys are the same entry exactly when they are Equal, provided the
// payload type keeps Equal and Hash consistent: a payload implementing
// value.Equatable must hash equal payloads to the same digest (see the
// value.Equatable doc). Keys are copied on insert; later reassignment of
// the caller's binding never disturbs the map.
type Map[V any] struct {
	buckets map[uint64][]entry[V]
	size    int
}

// NewMap creates an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{buckets: make(map[uint64][]entry[V])}
}

// Put inserts or replaces the entry for key.
func (m *Map[V]) Put(key value.Value, val V) {
	h := key.Hash()
	bucket := m.buckets[h]
	for i := range bucket {
		if bucket[i].key.Equal(key) {
			bucket[i].val = val
			return
		}
	}
	m.buckets[h] = append(bucket, entry[V]{key: key.Copy(), val: val})
	m.size++
}

// Get returns the entry for key, if any.
func (m *Map[V]) Get(key value.Value) (V, bool) {
	for _, e := range m.buckets[key.Hash()] {
		if e.key.Equal(key) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes the entry for key and reports whether one existed.
func (m *Map[V]) Delete(key value.Value) bool {
	h := key.Hash()
	bucket := m.buckets[h]
	for i := range bucket {
		if bucket[i].key.Equal(key) {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			if len(bucket) == 0 {
				delete(m.buckets, h)
			} else {
				m.buckets[h] = bucket
			}
			m.size--
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.size
}

// Keys returns the keys in unspecified order.
func (m *Map[V]) Keys() []value.Value {
	keys := make([]value.Value, 0, m.size)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// ForEach visits every entry until f returns false. Visit order is
// unspecified; the map must not be modified during the walk.
func (m *Map[V]) ForEach(f func(key value.Value, val V) bool) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			if !f(e.key, e.val) {
				return
			}
		}
	}
}

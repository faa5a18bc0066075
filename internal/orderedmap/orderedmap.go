//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2026 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

// Package orderedmap is the ordered-map primitive shared by the bitset and
// sparsevector packages: a key-sorted map supporting floor/ceiling/lower/
// higher lookups in O(log n), backed by github.com/google/btree's generic
// BTreeG. Everything in this package is single-owner and not safe for
// concurrent mutation, matching the rest of Family A.
package orderedmap

import "github.com/google/btree"

// degree chosen to match google/btree's own examples; the map is always
// small enough (segment/entry counts, not raw domain size) that node fanout
// barely matters.
const degree = 32

type entry[K any, V any] struct {
	key K
	val V
}

// Map is an ordered map keyed by K, sorted by the Less function supplied to
// New.
type Map[K any, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
	less func(a, b K) bool
}

// New creates an empty Map ordered by less.
func New[K any, V any](less func(a, b K) bool) *Map[K, V] {
	return &Map[K, V]{
		tree: btree.NewG(degree, func(a, b entry[K, V]) bool {
			return less(a.key, b.key)
		}),
		less: less,
	}
}

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get returns the value stored at key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.tree.Get(entry[K, V]{key: key})
	return e.val, ok
}

// Put stores val at key, overwriting any previous value.
func (m *Map[K, V]) Put(key K, val V) {
	m.tree.ReplaceOrInsert(entry[K, V]{key: key, val: val})
}

// Delete removes the entry at key, returning its previous value if present.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	e, ok := m.tree.Delete(entry[K, V]{key: key})
	return e.val, ok
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.tree.Clear(false)
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (K, V, bool) {
	e, ok := m.tree.Min()
	return e.key, e.val, ok
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (K, V, bool) {
	e, ok := m.tree.Max()
	return e.key, e.val, ok
}

// Floor returns the entry with the largest key <= key.
func (m *Map[K, V]) Floor(key K) (K, V, bool) {
	var rk K
	var rv V
	found := false
	m.tree.DescendLessOrEqual(entry[K, V]{key: key}, func(e entry[K, V]) bool {
		rk, rv, found = e.key, e.val, true
		return false
	})
	return rk, rv, found
}

// Ceiling returns the entry with the smallest key >= key.
func (m *Map[K, V]) Ceiling(key K) (K, V, bool) {
	var rk K
	var rv V
	found := false
	m.tree.AscendGreaterOrEqual(entry[K, V]{key: key}, func(e entry[K, V]) bool {
		rk, rv, found = e.key, e.val, true
		return false
	})
	return rk, rv, found
}

// Lower returns the entry with the largest key strictly < key.
func (m *Map[K, V]) Lower(key K) (K, V, bool) {
	var rk K
	var rv V
	found := false
	m.tree.DescendLessOrEqual(entry[K, V]{key: key}, func(e entry[K, V]) bool {
		if m.less(e.key, key) {
			rk, rv, found = e.key, e.val, true
			return false
		}
		return true
	})
	return rk, rv, found
}

// Higher returns the entry with the smallest key strictly > key.
func (m *Map[K, V]) Higher(key K) (K, V, bool) {
	var rk K
	var rv V
	found := false
	m.tree.AscendGreaterOrEqual(entry[K, V]{key: key}, func(e entry[K, V]) bool {
		if m.less(key, e.key) {
			rk, rv, found = e.key, e.val, true
			return false
		}
		return true
	})
	return rk, rv, found
}

// Ascend visits every entry in ascending key order until fn returns false.
func (m *Map[K, V]) Ascend(fn func(key K, val V) bool) {
	m.tree.Ascend(func(e entry[K, V]) bool {
		return fn(e.key, e.val)
	})
}

// Descend visits every entry in descending key order until fn returns false.
func (m *Map[K, V]) Descend(fn func(key K, val V) bool) {
	m.tree.Descend(func(e entry[K, V]) bool {
		return fn(e.key, e.val)
	})
}

// AscendRange visits every entry with lo <= key <= hi, in ascending order,
// until fn returns false. Unlike btree's own AscendRange, hi is inclusive -
// the domains this map serves (segment bounds, vector indices) are
// naturally closed ranges and an exclusive upper bound would need a
// successor that may not exist at the type's maximum value.
func (m *Map[K, V]) AscendRange(lo, hi K, fn func(key K, val V) bool) {
	m.tree.AscendGreaterOrEqual(entry[K, V]{key: lo}, func(e entry[K, V]) bool {
		if m.less(hi, e.key) {
			return false
		}
		return fn(e.key, e.val)
	})
}

// DescendRange visits every entry with lo <= key <= hi, in descending order,
// until fn returns false.
func (m *Map[K, V]) DescendRange(lo, hi K, fn func(key K, val V) bool) {
	m.tree.DescendLessOrEqual(entry[K, V]{key: hi}, func(e entry[K, V]) bool {
		if m.less(e.key, lo) {
			return false
		}
		return fn(e.key, e.val)
	})
}

// Clone produces an independent deep copy; mutations to the clone are never
// observed by the original and vice versa. google/btree's own Clone is
// copy-on-write, so this is cheap until one of the two copies is mutated.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		tree: m.tree.Clone(),
		less: m.less,
	}
}

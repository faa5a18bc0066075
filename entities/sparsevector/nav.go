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

// Package sparsevector implements SparseVector and IntSparseVector: ordered
// mappings from a signed 32-bit index to a non-zero value, read the same
// way regardless of whether the value type is float64 or int32. Index
// navigation is identical for both, so it lives here once as functions
// generic over the value type; arithmetic (where zero-ness and rounding
// differ between float64 and int32) lives in the type-specific files.
package sparsevector

import (
	"math"

	"github.com/weaviate/weaviate-core/internal/orderedmap"
)

func newIndexMap[V any]() *orderedmap.Map[int32, V] {
	return orderedmap.New[int32, V](func(a, b int32) bool { return a < b })
}

func firstIndex[V any](m *orderedmap.Map[int32, V]) (int32, bool) {
	k, _, ok := m.Min()
	return k, ok
}

func lastIndex[V any](m *orderedmap.Map[int32, V]) (int32, bool) {
	k, _, ok := m.Max()
	return k, ok
}

func nextIndex[V any](m *orderedmap.Map[int32, V], from int32) (int32, bool) {
	k, _, ok := m.Ceiling(from)
	return k, ok
}

func previousIndex[V any](m *orderedmap.Map[int32, V], from int32) (int32, bool) {
	k, _, ok := m.Floor(from)
	return k, ok
}

// firstZeroIndex scans stored indices in ascending order from zero,
// returning the lowest non-negative index not present. It advances one
// index at a time, so the cost is proportional to the length of the
// contiguous run of stored indices starting at zero.
func firstZeroIndex[V any](m *orderedmap.Map[int32, V]) int32 {
	cursor := int32(0)
	for {
		k, _, ok := m.Ceiling(cursor)
		if !ok || k != cursor {
			return cursor
		}
		if k == math.MaxInt32 {
			return -1
		}
		cursor = k + 1
	}
}

// lastZeroIndex returns MaxInt32 unless it is stored, in which case it
// scans downward for the first gap; if none exists all the way to
// MinInt32, it returns -1.
func lastZeroIndex[V any](m *orderedmap.Map[int32, V]) int32 {
	if _, ok := m.Get(math.MaxInt32); !ok {
		return math.MaxInt32
	}
	cursor := int32(math.MaxInt32)
	for {
		if cursor == math.MinInt32 {
			return -1
		}
		cursor--
		if _, ok := m.Get(cursor); !ok {
			return cursor
		}
	}
}

func getAllIndices[V any](m *orderedmap.Map[int32, V], lo, hi int32, zero V, out []V) {
	if lo > hi {
		return
	}
	for i := lo; ; i++ {
		if v, ok := m.Get(i); ok {
			out[i-lo] = v
		} else {
			out[i-lo] = zero
		}
		if i == hi {
			break
		}
	}
}

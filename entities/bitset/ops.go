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

package bitset

import (
	"math"
	"math/bits"

	"github.com/weaviate/weaviate-core/internal/orderedmap"
)

type segmentMap = orderedmap.Map[int64, int64]

func newSegmentMap() *segmentMap {
	return orderedmap.New[int64, int64](func(a, b int64) bool { return a < b })
}

func contains(m *segmentMap, n int64) bool {
	_, v, ok := m.Floor(n)
	return ok && n <= v
}

func containsAll(m *segmentMap, lo, hi int64) bool {
	if lo > hi {
		return true
	}
	_, v, ok := m.Floor(lo)
	return ok && v >= hi
}

func containsAny(m *segmentMap, lo, hi int64) bool {
	if lo > hi {
		return false
	}
	if _, v, ok := m.Floor(lo); ok && v >= lo {
		return true
	}
	if k, _, ok := m.Ceiling(lo); ok && k <= hi {
		return true
	}
	return false
}

// presentRangeAt returns the segment [start,end] covering p, if any.
func presentRangeAt(m *segmentMap, p int64) (start, end int64, ok bool) {
	if k, v, ok := m.Floor(p); ok && v >= p {
		return k, v, true
	}
	return 0, 0, false
}

func addAll(m *segmentMap, lo, hi int64) {
	if lo > hi {
		return
	}
	newLo, newHi := lo, hi

	probe := lo
	if lo != math.MinInt64 {
		probe = lo - 1
	}
	if k, v, ok := m.Floor(probe); ok && v >= probe {
		if k < newLo {
			newLo = k
		}
		if v > newHi {
			newHi = v
		}
		m.Delete(k)
	}

	for {
		k, v, ok := m.Ceiling(newLo)
		if !ok {
			break
		}
		if hi != math.MaxInt64 && k > hi+1 {
			break
		}
		if v > newHi {
			newHi = v
		}
		m.Delete(k)
	}

	m.Put(newLo, newHi)
}

func removeAll(m *segmentMap, lo, hi int64) {
	if lo > hi {
		return
	}

	if k, v, ok := m.Floor(lo); ok && v >= lo {
		m.Delete(k)
		if k < lo {
			m.Put(k, lo-1)
		}
		if v > hi {
			m.Put(hi+1, v)
		}
	}

	for {
		k, v, ok := m.Ceiling(lo)
		if !ok || k > hi {
			break
		}
		m.Delete(k)
		if v > hi {
			m.Put(hi+1, v)
		}
	}
}

func flipAll(m *segmentMap, lo, hi int64) {
	if lo > hi {
		return
	}

	var gapStarts, gapEnds []int64
	cursor := lo
	for {
		if _, v, ok := presentRangeAt(m, cursor); ok {
			if v >= hi {
				break
			}
			cursor = v + 1
			continue
		}
		k, _, ok := m.Ceiling(cursor)
		var gapEnd int64
		if !ok || k > hi {
			gapEnd = hi
		} else {
			gapEnd = k - 1
		}
		gapStarts = append(gapStarts, cursor)
		gapEnds = append(gapEnds, gapEnd)
		if gapEnd == hi {
			break
		}
		cursor = gapEnd + 1
	}

	removeAll(m, lo, hi)
	for i := range gapStarts {
		addAll(m, gapStarts[i], gapEnds[i])
	}
}

func first(m *segmentMap) (int64, bool) {
	k, _, ok := m.Min()
	return k, ok
}

func last(m *segmentMap) (int64, bool) {
	_, v, ok := m.Max()
	return v, ok
}

func next(m *segmentMap, from int64) (int64, bool) {
	if _, v, ok := m.Floor(from); ok && v >= from {
		return from, true
	}
	if k, _, ok := m.Ceiling(from); ok {
		return k, true
	}
	return 0, false
}

func previous(m *segmentMap, from int64) (int64, bool) {
	if _, v, ok := m.Floor(from); ok {
		if v < from {
			return v, true
		}
		return from, true
	}
	return 0, false
}

func nextAbsent(m *segmentMap, from int64) (int64, bool) {
	if _, v, ok := m.Floor(from); ok && v >= from {
		if v == math.MaxInt64 {
			return 0, false
		}
		return v + 1, true
	}
	return from, true
}

func previousAbsent(m *segmentMap, from int64) (int64, bool) {
	if k, v, ok := m.Floor(from); ok && v >= from {
		if k == math.MinInt64 {
			return 0, false
		}
		return k - 1, true
	}
	return from, true
}

func forEachRange(m *segmentMap, action func(start, end int64) bool) {
	m.Ascend(func(k, v int64) bool {
		return action(k, v)
	})
}

func forEachAbsentRange(m *segmentMap, lo, hi int64, action func(start, end int64) bool) {
	if lo > hi {
		return
	}
	cursor := lo
	for {
		if _, v, ok := presentRangeAt(m, cursor); ok {
			if v >= hi {
				return
			}
			cursor = v + 1
			continue
		}
		k, _, ok := m.Ceiling(cursor)
		var gapEnd int64
		if !ok || k > hi {
			gapEnd = hi
		} else {
			gapEnd = k - 1
		}
		if !action(cursor, gapEnd) {
			return
		}
		if gapEnd == hi {
			return
		}
		cursor = gapEnd + 1
	}
}

// size computes the total cardinality of the stored segments. ok is false
// when the running total overflows signed 64-bit addition - see
// DESIGN.md's resolution of the §9 open question on Size() overflow.
func size(m *segmentMap) (total int64, ok bool) {
	var sum uint64
	overflow := false
	m.Ascend(func(k, v int64) bool {
		// count of the segment [k,v] is (v-k+1); v-k is exact in unsigned
		// arithmetic since v >= k, and bits.Add64 reports the carry when the
		// count or the running total no longer fits in 64 bits. A total above
		// math.MaxInt64 is an overflow of the signed result; the returned
		// total is then the sum wrapped modulo 2^64.
		count, c1 := bits.Add64(uint64(v)-uint64(k), 1, 0)
		next, c2 := bits.Add64(sum, count, 0)
		if c1 != 0 || c2 != 0 || next > math.MaxInt64 {
			overflow = true
		}
		sum = next
		return true
	})
	return int64(sum), !overflow
}

func cloneMap(m *segmentMap) *segmentMap {
	return m.Clone()
}

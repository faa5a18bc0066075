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

package sparsevector

import (
	"fmt"
	"math"
	"strings"

	"github.com/weaviate/weaviate-core/internal/orderedmap"
)

type intMap = orderedmap.Map[int32, int32]

func isNonZeroInt(v int32) bool { return v != 0 }

func newIntMap() *intMap {
	return newIndexMap[int32]()
}

func getInt(m *intMap, i int32) int32 {
	v, _ := m.Get(i)
	return v
}

func setInt(m *intMap, i int32, v int32) {
	if isNonZeroInt(v) {
		m.Put(i, v)
	} else {
		m.Delete(i)
	}
}

func plusInt(a, b *intMap) *intMap {
	out := a.Clone()
	b.Ascend(func(i int32, v int32) bool {
		setInt(out, i, getInt(out, i)+v)
		return true
	})
	return out
}

func minusInt(a, b *intMap) *intMap {
	out := a.Clone()
	b.Ascend(func(i int32, v int32) bool {
		setInt(out, i, getInt(out, i)-v)
		return true
	})
	return out
}

func dotInt(a, b *intMap) int64 {
	small, large := a, b
	if large.Len() < small.Len() {
		small, large = large, small
	}
	var sum int64
	small.Ascend(func(i int32, v int32) bool {
		if ov, ok := large.Get(i); ok {
			sum += int64(v) * int64(ov)
		}
		return true
	})
	return sum
}

func crossInt(a, b *intMap) *intMap {
	a0, a1, a2 := getInt(a, 0), getInt(a, 1), getInt(a, 2)
	b0, b1, b2 := getInt(b, 0), getInt(b, 1), getInt(b, 2)

	out := newIntMap()
	setInt(out, 0, a1*b2-a2*b1)
	setInt(out, 1, a2*b0-a0*b2)
	setInt(out, 2, a0*b1-a1*b0)
	return out
}

func multipliedInt(m *intMap, scalar int32) *intMap {
	out := newIntMap()
	if scalar == 0 {
		return out
	}
	m.Ascend(func(i int32, v int32) bool {
		setInt(out, i, v*scalar)
		return true
	})
	return out
}

// dividedInt truncates toward zero per Go integer division, dropping any
// entry whose quotient is zero - this is the "rounds to zero" drop rule
// from §4.2, not the half-to-even rounding reserved for norm/distance.
func dividedInt(m *intMap, scalar int32) *intMap {
	out := newIntMap()
	m.Ascend(func(i int32, v int32) bool {
		setInt(out, i, v/scalar)
		return true
	})
	return out
}

// roundHalfToEven rounds a float64 to the nearest int32, breaking ties
// toward the nearest even integer, per §3.3's norm/distance contract.
func roundHalfToEven(f float64) int32 {
	floor := math.Floor(f)
	diff := f - floor
	var r float64
	switch {
	case diff < 0.5:
		r = floor
	case diff > 0.5:
		r = floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			r = floor
		} else {
			r = floor + 1
		}
	}
	return int32(r)
}

func normInt(m *intMap) int32 {
	var sumSq float64
	m.Ascend(func(_ int32, v int32) bool {
		fv := float64(v)
		sumSq += fv * fv
		return true
	})
	return roundHalfToEven(math.Sqrt(sumSq))
}

func absInt(m *intMap) *intMap {
	out := newIntMap()
	m.Ascend(func(i int32, v int32) bool {
		setInt(out, i, int32(math.Abs(float64(v))))
		return true
	})
	return out
}

func sumInt(m *intMap) int64 {
	var total int64
	m.Ascend(func(_ int32, v int32) bool {
		total += int64(v)
		return true
	})
	return total
}

func renderInt(m *intMap) string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	m.Ascend(func(i int32, v int32) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%d:%d", i, v)
		return true
	})
	b.WriteString("}")
	return b.String()
}

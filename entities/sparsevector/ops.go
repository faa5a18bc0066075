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

type floatMap = orderedmap.Map[int32, float64]

// isNonZeroFloat is the canonicalization predicate from §3.2: both +0.0 and
// -0.0 compare equal to 0.0 under arithmetic comparison and are treated as
// absent, but NaN is a legitimate stored value (NaN != 0.0 is true).
func isNonZeroFloat(v float64) bool {
	return v != 0.0
}

func newFloatMap() *floatMap {
	return newIndexMap[float64]()
}

func getFloat(m *floatMap, i int32) float64 {
	v, _ := m.Get(i)
	return v
}

func setFloat(m *floatMap, i int32, v float64) {
	if isNonZeroFloat(v) {
		m.Put(i, v)
	} else {
		m.Delete(i)
	}
}

func plusFloat(a, b *floatMap) *floatMap {
	out := a.Clone()
	b.Ascend(func(i int32, v float64) bool {
		setFloat(out, i, getFloat(out, i)+v)
		return true
	})
	return out
}

func minusFloat(a, b *floatMap) *floatMap {
	out := a.Clone()
	b.Ascend(func(i int32, v float64) bool {
		setFloat(out, i, getFloat(out, i)-v)
		return true
	})
	return out
}

// dotFloat iterates the smaller map, matching the source's cost model.
func dotFloat(a, b *floatMap) float64 {
	small, large := a, b
	if large.Len() < small.Len() {
		small, large = large, small
	}
	var sum float64
	small.Ascend(func(i int32, v float64) bool {
		if ov, ok := large.Get(i); ok {
			sum += v * ov
		}
		return true
	})
	return sum
}

// crossFloat implements the standard 3-D cross product over indices
// {0,1,2}; any other stored indices are ignored.
func crossFloat(a, b *floatMap) *floatMap {
	a0, a1, a2 := getFloat(a, 0), getFloat(a, 1), getFloat(a, 2)
	b0, b1, b2 := getFloat(b, 0), getFloat(b, 1), getFloat(b, 2)

	out := newFloatMap()
	setFloat(out, 0, a1*b2-a2*b1)
	setFloat(out, 1, a2*b0-a0*b2)
	setFloat(out, 2, a0*b1-a1*b0)
	return out
}

func multipliedFloat(m *floatMap, scalar float64) *floatMap {
	out := newFloatMap()
	if scalar == 0.0 {
		return out
	}
	m.Ascend(func(i int32, v float64) bool {
		setFloat(out, i, v*scalar)
		return true
	})
	return out
}

func dividedFloat(m *floatMap, scalar float64) *floatMap {
	out := newFloatMap()
	m.Ascend(func(i int32, v float64) bool {
		setFloat(out, i, v/scalar)
		return true
	})
	return out
}

func normFloat(m *floatMap) float64 {
	var sumSq float64
	m.Ascend(func(_ int32, v float64) bool {
		sumSq += v * v
		return true
	})
	return math.Sqrt(sumSq)
}

func absFloat(m *floatMap) *floatMap {
	out := newFloatMap()
	m.Ascend(func(i int32, v float64) bool {
		setFloat(out, i, math.Abs(v))
		return true
	})
	return out
}

func sumFloat(m *floatMap) float64 {
	var total float64
	m.Ascend(func(_ int32, v float64) bool {
		total += v
		return true
	})
	return total
}

func renderFloat(m *floatMap) string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	m.Ascend(func(i int32, v float64) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%d:%v", i, v)
		return true
	})
	b.WriteString("}")
	return b.String()
}

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

// Package bitset implements SegmentedBitSet, a coalesced, range-based
// representation of a set of signed 64-bit integers: consecutive members
// are stored as a single [start,end] segment rather than one bit per
// member, so large clustered sets occupy space proportional to the number
// of runs, not the number of members.
package bitset

import (
	"fmt"
	"math"
	"strings"

	"github.com/weaviate/weaviate-core/entities/coreerrors"
)

// Segment is a single closed, inclusive range [Start, End].
type Segment struct {
	Start int64
	End   int64
}

// SegmentedBitSet is the read-only view over a set of int64. It never
// mutates its backing storage; ImmutableView shares storage with its
// origin (later mutations through the origin are visible), ImmutableCopy
// and Copy take an independent snapshot.
type SegmentedBitSet interface {
	Contains(n int64) bool
	ContainsAll(lo, hi int64) bool
	ContainsAny(lo, hi int64) bool
	IsEmpty() bool
	SegmentCount() int
	// Size returns the total count of members. ok is false if the count
	// overflows signed 64-bit addition.
	Size() (count int64, ok bool)

	First() (int64, error)
	FirstOk() (int64, bool)
	Last() (int64, error)
	LastOk() (int64, bool)
	Next(from int64) (int64, error)
	NextOk(from int64) (int64, bool)
	Previous(from int64) (int64, error)
	PreviousOk(from int64) (int64, bool)
	NextAbsent(from int64) (int64, error)
	NextAbsentOk(from int64) (int64, bool)
	PreviousAbsent(from int64) (int64, error)
	PreviousAbsentOk(from int64) (int64, bool)
	HasNext(from int64) bool
	HasPrevious(from int64) bool

	ForEachRange(action func(start, end int64) bool)
	ForEachAbsentRange(lo, hi int64, action func(start, end int64) bool)

	Union(other SegmentedBitSet) *MutableSegmentedBitSet
	Intersect(other SegmentedBitSet) *MutableSegmentedBitSet
	Xor(other SegmentedBitSet) *MutableSegmentedBitSet
	And(other SegmentedBitSet) *MutableSegmentedBitSet
	Or(other SegmentedBitSet) *MutableSegmentedBitSet
	Subset(lo, hi int64) *MutableSegmentedBitSet
	RightShifted(k int64) *MutableSegmentedBitSet
	LeftShifted(k int64) *MutableSegmentedBitSet
	// Flipped always fails with ErrUnsupported: the domain is unbounded,
	// so a complement has no finite representation. Use
	// Subset(lo,hi).FlipAll(lo,hi) instead.
	Flipped() (*MutableSegmentedBitSet, error)

	ImmutableCopy() SegmentedBitSet
	Copy() *MutableSegmentedBitSet
	Serialize() []byte
	String() string
}

// segmentsProvider is satisfied by every SegmentedBitSet this package
// produces, giving combinators direct access to the backing ordered map
// instead of paying for a ForEachRange materialization on both operands.
type segmentsProvider interface {
	segmentsMap() *segmentMap
}

func segmentsOf(s SegmentedBitSet) *segmentMap {
	if p, ok := s.(segmentsProvider); ok {
		return p.segmentsMap()
	}
	m := newSegmentMap()
	s.ForEachRange(func(start, end int64) bool {
		m.Put(start, end)
		return true
	})
	return m
}

func countOf(s SegmentedBitSet) int {
	if p, ok := s.(segmentsProvider); ok {
		return p.segmentsMap().Len()
	}
	n := 0
	s.ForEachRange(func(start, end int64) bool {
		n++
		return true
	})
	return n
}

func notFound(format string, a ...any) error {
	return coreerrors.NewErrNotFound(fmt.Errorf(format, a...))
}

func unsupported(format string, a ...any) error {
	return coreerrors.NewErrUnsupported(fmt.Errorf(format, a...))
}

// union iterates the smaller of the two backing maps, applying addAll to a
// clone of the larger one - this matches the source's "iterate the
// smaller set" cost model exactly.
func union(a, b SegmentedBitSet) *MutableSegmentedBitSet {
	am, bm := segmentsOf(a), segmentsOf(b)
	small, large := am, bm
	if large.Len() < small.Len() {
		small, large = large, small
	}
	out := large.Clone()
	small.Ascend(func(start, end int64) bool {
		addAll(out, start, end)
		return true
	})
	return &MutableSegmentedBitSet{segs: out}
}

func intersect(a, b SegmentedBitSet) *MutableSegmentedBitSet {
	am, bm := segmentsOf(a), segmentsOf(b)
	out := newSegmentMap()
	am.Ascend(func(start, end int64) bool {
		cur := start
		for cur <= end {
			k, v, ok := bm.Floor(cur)
			if !(ok && v >= cur) {
				k, v, ok = bm.Ceiling(cur)
				if !ok || k > end {
					break
				}
			}
			lo := k
			if cur > lo {
				lo = cur
			}
			hi := v
			if end < hi {
				hi = end
			}
			out.Put(lo, hi)
			if v == math.MaxInt64 {
				break
			}
			cur = v + 1
		}
		return true
	})
	return &MutableSegmentedBitSet{segs: out}
}

func xorSets(a, b SegmentedBitSet) *MutableSegmentedBitSet {
	u := union(a, b)
	i := intersect(a, b)
	i.segs.Ascend(func(start, end int64) bool {
		removeAll(u.segs, start, end)
		return true
	})
	return u
}

func subset(s SegmentedBitSet, lo, hi int64) *MutableSegmentedBitSet {
	out := newSegmentMap()
	if lo > hi {
		return &MutableSegmentedBitSet{segs: out}
	}
	sm := segmentsOf(s)
	sm.AscendRange(lo, hi, func(start, end int64) bool {
		cs, ce := start, end
		if cs < lo {
			cs = lo
		}
		if ce > hi {
			ce = hi
		}
		out.Put(cs, ce)
		return true
	})
	// AscendRange as defined visits segments whose *start* falls in
	// [lo,hi]; a segment starting before lo but overlapping it is missed,
	// so check the floor segment explicitly.
	if k, v, ok := sm.Floor(lo); ok && v >= lo && k < lo {
		ce := v
		if ce > hi {
			ce = hi
		}
		out.Put(lo, ce)
	}
	return &MutableSegmentedBitSet{segs: out}
}

func shifted(s SegmentedBitSet, k int64) *MutableSegmentedBitSet {
	out := newSegmentMap()
	sm := segmentsOf(s)
	sm.Ascend(func(start, end int64) bool {
		out.Put(start+k, end+k)
		return true
	})
	return &MutableSegmentedBitSet{segs: out}
}

func renderSegments(m *segmentMap) string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	m.Ascend(func(start, end int64) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		if start == end {
			fmt.Fprintf(&b, "%d", start)
		} else {
			fmt.Fprintf(&b, "%d..%d", start, end)
		}
		return true
	})
	b.WriteString("}")
	return b.String()
}

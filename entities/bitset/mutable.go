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
	"fmt"

	"github.com/weaviate/weaviate-core/entities/errorcompounder"
)

// MutableSegmentedBitSet is the mutable variant of SegmentedBitSet. It is
// not safe for concurrent mutation; share it across goroutines only via
// ImmutableCopy.
type MutableSegmentedBitSet struct {
	segs *segmentMap
}

// NewMutableSegmentedBitSet returns an empty set.
func NewMutableSegmentedBitSet() *MutableSegmentedBitSet {
	return &MutableSegmentedBitSet{segs: newSegmentMap()}
}

// NewMutableSegmentedBitSetFromSegments builds a set from an already
// canonical segment list (sorted by Start, disjoint, non-adjacent). Use
// AddAll repeatedly, or Deserialize, to build from a non-canonical list.
func NewMutableSegmentedBitSetFromSegments(segments []Segment) (*MutableSegmentedBitSet, error) {
	m := newSegmentMap()
	var prevEnd int64
	havePrev := false
	for _, seg := range segments {
		if seg.Start > seg.End {
			return nil, fmt.Errorf("segment [%d,%d]: start > end", seg.Start, seg.End)
		}
		if havePrev {
			if seg.Start <= prevEnd {
				return nil, fmt.Errorf("segment [%d,%d] overlaps preceding segment ending at %d", seg.Start, seg.End, prevEnd)
			}
			if prevEnd != maxInt64 && seg.Start == prevEnd+1 {
				return nil, fmt.Errorf("segment [%d,%d] is adjacent to preceding segment ending at %d", seg.Start, seg.End, prevEnd)
			}
		}
		m.Put(seg.Start, seg.End)
		prevEnd = seg.End
		havePrev = true
	}
	return &MutableSegmentedBitSet{segs: m}, nil
}

func (s *MutableSegmentedBitSet) segmentsMap() *segmentMap { return s.segs }

// AddAll inserts the inclusive range [lo,hi], coalescing with any touching
// or overlapping segments. An empty range (lo > hi) is a no-op.
func (s *MutableSegmentedBitSet) AddAll(lo, hi int64) {
	addAll(s.segs, lo, hi)
}

// RemoveAll deletes the inclusive range [lo,hi], splitting any segment that
// straddles lo or hi.
func (s *MutableSegmentedBitSet) RemoveAll(lo, hi int64) {
	removeAll(s.segs, lo, hi)
}

// FlipAll toggles membership of every integer in [lo,hi].
func (s *MutableSegmentedBitSet) FlipAll(lo, hi int64) {
	flipAll(s.segs, lo, hi)
}

// ImmutableView returns a read-only façade sharing this set's storage:
// subsequent mutations through s remain visible via the returned view.
func (s *MutableSegmentedBitSet) ImmutableView() SegmentedBitSet {
	return &immutableView{segs: s.segs}
}

// Validate checks the canonicalization invariants from §3.1. It exists for
// tests and for callers embedding this package in their own test suites; it
// is never called by the mutators themselves, which maintain the invariant
// by construction. Every violation found is reported, not just the first,
// using the same compounding approach entities/errorcompounder applies to
// batch validation elsewhere in this module.
func (s *MutableSegmentedBitSet) Validate() error {
	ec := errorcompounder.New()
	var prevEnd int64
	havePrev := false

	s.segs.Ascend(func(start, end int64) bool {
		if start > end {
			ec.Addf("segment [%d,%d]: start > end", start, end)
			return true
		}
		if havePrev {
			if start <= prevEnd {
				ec.Addf("segment starting at %d overlaps preceding segment ending at %d", start, prevEnd)
			} else if prevEnd != maxInt64 && start == prevEnd+1 {
				ec.Addf("segment starting at %d is adjacent to preceding segment ending at %d", start, prevEnd)
			}
		}
		prevEnd = end
		havePrev = true
		return true
	})

	return ec.ToError()
}

// --- read-only SegmentedBitSet methods, delegating to the shared ops ---

func (s *MutableSegmentedBitSet) Contains(n int64) bool            { return contains(s.segs, n) }
func (s *MutableSegmentedBitSet) ContainsAll(lo, hi int64) bool     { return containsAll(s.segs, lo, hi) }
func (s *MutableSegmentedBitSet) ContainsAny(lo, hi int64) bool     { return containsAny(s.segs, lo, hi) }
func (s *MutableSegmentedBitSet) IsEmpty() bool                    { return s.segs.Len() == 0 }
func (s *MutableSegmentedBitSet) SegmentCount() int                { return s.segs.Len() }
func (s *MutableSegmentedBitSet) Size() (int64, bool)              { return size(s.segs) }

func (s *MutableSegmentedBitSet) First() (int64, error) {
	v, ok := first(s.segs)
	if !ok {
		return 0, notFound("bit set is empty")
	}
	return v, nil
}

func (s *MutableSegmentedBitSet) FirstOk() (int64, bool) { return first(s.segs) }

func (s *MutableSegmentedBitSet) Last() (int64, error) {
	v, ok := last(s.segs)
	if !ok {
		return 0, notFound("bit set is empty")
	}
	return v, nil
}

func (s *MutableSegmentedBitSet) LastOk() (int64, bool) { return last(s.segs) }

func (s *MutableSegmentedBitSet) Next(from int64) (int64, error) {
	v, ok := next(s.segs, from)
	if !ok {
		return 0, notFound("no member >= %d", from)
	}
	return v, nil
}

func (s *MutableSegmentedBitSet) NextOk(from int64) (int64, bool) { return next(s.segs, from) }

func (s *MutableSegmentedBitSet) Previous(from int64) (int64, error) {
	v, ok := previous(s.segs, from)
	if !ok {
		return 0, notFound("no member <= %d", from)
	}
	return v, nil
}

func (s *MutableSegmentedBitSet) PreviousOk(from int64) (int64, bool) { return previous(s.segs, from) }

func (s *MutableSegmentedBitSet) NextAbsent(from int64) (int64, error) {
	v, ok := nextAbsent(s.segs, from)
	if !ok {
		return 0, notFound("no absent value >= %d", from)
	}
	return v, nil
}

func (s *MutableSegmentedBitSet) NextAbsentOk(from int64) (int64, bool) {
	return nextAbsent(s.segs, from)
}

func (s *MutableSegmentedBitSet) PreviousAbsent(from int64) (int64, error) {
	v, ok := previousAbsent(s.segs, from)
	if !ok {
		return 0, notFound("no absent value <= %d", from)
	}
	return v, nil
}

func (s *MutableSegmentedBitSet) PreviousAbsentOk(from int64) (int64, bool) {
	return previousAbsent(s.segs, from)
}

func (s *MutableSegmentedBitSet) HasNext(from int64) bool {
	_, ok := next(s.segs, from)
	return ok
}

func (s *MutableSegmentedBitSet) HasPrevious(from int64) bool {
	_, ok := previous(s.segs, from)
	return ok
}

func (s *MutableSegmentedBitSet) ForEachRange(action func(start, end int64) bool) {
	forEachRange(s.segs, action)
}

func (s *MutableSegmentedBitSet) ForEachAbsentRange(lo, hi int64, action func(start, end int64) bool) {
	forEachAbsentRange(s.segs, lo, hi, action)
}

func (s *MutableSegmentedBitSet) Union(other SegmentedBitSet) *MutableSegmentedBitSet {
	return union(s, other)
}

func (s *MutableSegmentedBitSet) Intersect(other SegmentedBitSet) *MutableSegmentedBitSet {
	return intersect(s, other)
}

func (s *MutableSegmentedBitSet) Xor(other SegmentedBitSet) *MutableSegmentedBitSet {
	return xorSets(s, other)
}

func (s *MutableSegmentedBitSet) And(other SegmentedBitSet) *MutableSegmentedBitSet {
	return intersect(s, other)
}

func (s *MutableSegmentedBitSet) Or(other SegmentedBitSet) *MutableSegmentedBitSet {
	return union(s, other)
}

func (s *MutableSegmentedBitSet) Subset(lo, hi int64) *MutableSegmentedBitSet {
	return subset(s, lo, hi)
}

// RightShifted shifts every member up by k (down, if k is negative - "a
// negative shift delegates to the opposite direction" per spec).
func (s *MutableSegmentedBitSet) RightShifted(k int64) *MutableSegmentedBitSet {
	return shifted(s, k)
}

func (s *MutableSegmentedBitSet) LeftShifted(k int64) *MutableSegmentedBitSet {
	return shifted(s, -k)
}

func (s *MutableSegmentedBitSet) Flipped() (*MutableSegmentedBitSet, error) {
	return nil, unsupported("flipped() is unsupported over the unbounded domain; use Subset(lo,hi).FlipAll(lo,hi)")
}

func (s *MutableSegmentedBitSet) ImmutableCopy() SegmentedBitSet {
	return &immutableView{segs: cloneMap(s.segs)}
}

func (s *MutableSegmentedBitSet) Copy() *MutableSegmentedBitSet {
	return &MutableSegmentedBitSet{segs: cloneMap(s.segs)}
}

func (s *MutableSegmentedBitSet) Serialize() []byte {
	return encodeSegments(s.segs)
}

func (s *MutableSegmentedBitSet) String() string {
	return renderSegments(s.segs)
}

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

// immutableView is the read-only façade produced by
// MutableSegmentedBitSet.ImmutableView and ImmutableCopy. It exposes no
// mutators; whether its storage is shared with an origin mutable set or an
// independent clone is determined entirely by which constructor built it.
type immutableView struct {
	segs *segmentMap
}

func (v *immutableView) segmentsMap() *segmentMap { return v.segs }

func (v *immutableView) Contains(n int64) bool        { return contains(v.segs, n) }
func (v *immutableView) ContainsAll(lo, hi int64) bool { return containsAll(v.segs, lo, hi) }
func (v *immutableView) ContainsAny(lo, hi int64) bool { return containsAny(v.segs, lo, hi) }
func (v *immutableView) IsEmpty() bool                 { return v.segs.Len() == 0 }
func (v *immutableView) SegmentCount() int             { return v.segs.Len() }
func (v *immutableView) Size() (int64, bool)           { return size(v.segs) }

func (v *immutableView) First() (int64, error) {
	val, ok := first(v.segs)
	if !ok {
		return 0, notFound("bit set is empty")
	}
	return val, nil
}

func (v *immutableView) FirstOk() (int64, bool) { return first(v.segs) }

func (v *immutableView) Last() (int64, error) {
	val, ok := last(v.segs)
	if !ok {
		return 0, notFound("bit set is empty")
	}
	return val, nil
}

func (v *immutableView) LastOk() (int64, bool) { return last(v.segs) }

func (v *immutableView) Next(from int64) (int64, error) {
	val, ok := next(v.segs, from)
	if !ok {
		return 0, notFound("no member >= %d", from)
	}
	return val, nil
}

func (v *immutableView) NextOk(from int64) (int64, bool) { return next(v.segs, from) }

func (v *immutableView) Previous(from int64) (int64, error) {
	val, ok := previous(v.segs, from)
	if !ok {
		return 0, notFound("no member <= %d", from)
	}
	return val, nil
}

func (v *immutableView) PreviousOk(from int64) (int64, bool) { return previous(v.segs, from) }

func (v *immutableView) NextAbsent(from int64) (int64, error) {
	val, ok := nextAbsent(v.segs, from)
	if !ok {
		return 0, notFound("no absent value >= %d", from)
	}
	return val, nil
}

func (v *immutableView) NextAbsentOk(from int64) (int64, bool) { return nextAbsent(v.segs, from) }

func (v *immutableView) PreviousAbsent(from int64) (int64, error) {
	val, ok := previousAbsent(v.segs, from)
	if !ok {
		return 0, notFound("no absent value <= %d", from)
	}
	return val, nil
}

func (v *immutableView) PreviousAbsentOk(from int64) (int64, bool) {
	return previousAbsent(v.segs, from)
}

func (v *immutableView) HasNext(from int64) bool {
	_, ok := next(v.segs, from)
	return ok
}

func (v *immutableView) HasPrevious(from int64) bool {
	_, ok := previous(v.segs, from)
	return ok
}

func (v *immutableView) ForEachRange(action func(start, end int64) bool) {
	forEachRange(v.segs, action)
}

func (v *immutableView) ForEachAbsentRange(lo, hi int64, action func(start, end int64) bool) {
	forEachAbsentRange(v.segs, lo, hi, action)
}

func (v *immutableView) Union(other SegmentedBitSet) *MutableSegmentedBitSet {
	return union(v, other)
}

func (v *immutableView) Intersect(other SegmentedBitSet) *MutableSegmentedBitSet {
	return intersect(v, other)
}

func (v *immutableView) Xor(other SegmentedBitSet) *MutableSegmentedBitSet {
	return xorSets(v, other)
}

func (v *immutableView) And(other SegmentedBitSet) *MutableSegmentedBitSet {
	return intersect(v, other)
}

func (v *immutableView) Or(other SegmentedBitSet) *MutableSegmentedBitSet {
	return union(v, other)
}

func (v *immutableView) Subset(lo, hi int64) *MutableSegmentedBitSet {
	return subset(v, lo, hi)
}

func (v *immutableView) RightShifted(k int64) *MutableSegmentedBitSet {
	return shifted(v, k)
}

func (v *immutableView) LeftShifted(k int64) *MutableSegmentedBitSet {
	return shifted(v, -k)
}

func (v *immutableView) Flipped() (*MutableSegmentedBitSet, error) {
	return nil, unsupported("flipped() is unsupported over the unbounded domain; use Subset(lo,hi).FlipAll(lo,hi)")
}

func (v *immutableView) ImmutableCopy() SegmentedBitSet {
	return &immutableView{segs: cloneMap(v.segs)}
}

func (v *immutableView) Copy() *MutableSegmentedBitSet {
	return &MutableSegmentedBitSet{segs: cloneMap(v.segs)}
}

func (v *immutableView) Serialize() []byte {
	return encodeSegments(v.segs)
}

func (v *immutableView) String() string {
	return renderSegments(v.segs)
}

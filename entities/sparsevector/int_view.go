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

// intImmutableView is the read-only façade produced by
// MutableIntSparseVector.ImmutableView and ImmutableCopy.
type intImmutableView struct {
	entries *intMap
}

func (v *intImmutableView) entriesMap() *intMap { return v.entries }

func (v *intImmutableView) Get(i int32) int32 { return getInt(v.entries, i) }

func (v *intImmutableView) GetAll(lo, hi int32) []int32 {
	if lo > hi {
		return nil
	}
	out := make([]int32, int64(hi)-int64(lo)+1)
	getAllIndices(v.entries, lo, hi, int32(0), out)
	return out
}

func (v *intImmutableView) NonZeroCount() int { return v.entries.Len() }

func (v *intImmutableView) FirstNonZeroIndex() int32 {
	i, ok := firstIndex(v.entries)
	if !ok {
		return -1
	}
	return i
}

func (v *intImmutableView) FirstNonZeroIndexOk() (int32, bool) { return firstIndex(v.entries) }

func (v *intImmutableView) LastNonZeroIndex() int32 {
	i, ok := lastIndex(v.entries)
	if !ok {
		return -1
	}
	return i
}

func (v *intImmutableView) LastNonZeroIndexOk() (int32, bool) { return lastIndex(v.entries) }

func (v *intImmutableView) NextNonZeroIndex(from int32) int32 {
	i, ok := nextIndex(v.entries, from)
	if !ok {
		return -1
	}
	return i
}

func (v *intImmutableView) NextNonZeroIndexOk(from int32) (int32, bool) {
	return nextIndex(v.entries, from)
}

func (v *intImmutableView) PreviousNonZeroIndex(from int32) int32 {
	i, ok := previousIndex(v.entries, from)
	if !ok {
		return -1
	}
	return i
}

func (v *intImmutableView) PreviousNonZeroIndexOk(from int32) (int32, bool) {
	return previousIndex(v.entries, from)
}

func (v *intImmutableView) FirstZeroIndex() int32 { return firstZeroIndex(v.entries) }
func (v *intImmutableView) LastZeroIndex() int32  { return lastZeroIndex(v.entries) }

func (v *intImmutableView) Plus(other IntSparseVector) *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: plusInt(v.entries, intEntriesOf(other))}
}

func (v *intImmutableView) Minus(other IntSparseVector) *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: minusInt(v.entries, intEntriesOf(other))}
}

func (v *intImmutableView) Dot(other IntSparseVector) int64 {
	return dotInt(v.entries, intEntriesOf(other))
}

func (v *intImmutableView) Cross(other IntSparseVector) *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: crossInt(v.entries, intEntriesOf(other))}
}

func (v *intImmutableView) Multiplied(scalar int32) *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: multipliedInt(v.entries, scalar)}
}

func (v *intImmutableView) Divided(scalar int32) (*MutableIntSparseVector, error) {
	if scalar == 0 {
		return nil, invalidArgument("int sparse vector: division by zero")
	}
	return &MutableIntSparseVector{entries: dividedInt(v.entries, scalar)}, nil
}

func (v *intImmutableView) Norm() int32 { return normInt(v.entries) }

func (v *intImmutableView) Distance(other IntSparseVector) int32 {
	return normInt(minusInt(v.entries, intEntriesOf(other)))
}

func (v *intImmutableView) Normalized() (*MutableIntSparseVector, error) {
	entries, err := normalizedInt(v.entries)
	if err != nil {
		return nil, err
	}
	return &MutableIntSparseVector{entries: entries}, nil
}

func (v *intImmutableView) Abs() *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: absInt(v.entries)}
}

func (v *intImmutableView) Sum() int64 { return sumInt(v.entries) }

func (v *intImmutableView) ForEachNonZero(action func(index int32, value int32) bool) {
	v.entries.Ascend(action)
}

func (v *intImmutableView) ForEach(lo, hi int32, action func(index int32, value int32) bool) {
	if lo > hi {
		return
	}
	for i := lo; ; i++ {
		if !action(i, getInt(v.entries, i)) {
			return
		}
		if i == hi {
			return
		}
	}
}

func (v *intImmutableView) ImmutableCopy() IntSparseVector {
	return &intImmutableView{entries: v.entries.Clone()}
}

func (v *intImmutableView) Copy() *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: v.entries.Clone()}
}

func (v *intImmutableView) Serialize() []byte { return encodeIntEntries(v.entries) }
func (v *intImmutableView) String() string    { return renderInt(v.entries) }

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

// immutableView is the read-only façade produced by
// MutableSparseVector.ImmutableView and ImmutableCopy.
type immutableView struct {
	entries *floatMap
}

func (v *immutableView) entriesMap() *floatMap { return v.entries }

func (v *immutableView) Get(i int32) float64 { return getFloat(v.entries, i) }

func (v *immutableView) GetAll(lo, hi int32) []float64 {
	if lo > hi {
		return nil
	}
	out := make([]float64, int64(hi)-int64(lo)+1)
	getAllIndices(v.entries, lo, hi, 0.0, out)
	return out
}

func (v *immutableView) NonZeroCount() int { return v.entries.Len() }

func (v *immutableView) FirstNonZeroIndex() int32 {
	i, ok := firstIndex(v.entries)
	if !ok {
		return -1
	}
	return i
}

func (v *immutableView) FirstNonZeroIndexOk() (int32, bool) { return firstIndex(v.entries) }

func (v *immutableView) LastNonZeroIndex() int32 {
	i, ok := lastIndex(v.entries)
	if !ok {
		return -1
	}
	return i
}

func (v *immutableView) LastNonZeroIndexOk() (int32, bool) { return lastIndex(v.entries) }

func (v *immutableView) NextNonZeroIndex(from int32) int32 {
	i, ok := nextIndex(v.entries, from)
	if !ok {
		return -1
	}
	return i
}

func (v *immutableView) NextNonZeroIndexOk(from int32) (int32, bool) {
	return nextIndex(v.entries, from)
}

func (v *immutableView) PreviousNonZeroIndex(from int32) int32 {
	i, ok := previousIndex(v.entries, from)
	if !ok {
		return -1
	}
	return i
}

func (v *immutableView) PreviousNonZeroIndexOk(from int32) (int32, bool) {
	return previousIndex(v.entries, from)
}

func (v *immutableView) FirstZeroIndex() int32 { return firstZeroIndex(v.entries) }
func (v *immutableView) LastZeroIndex() int32  { return lastZeroIndex(v.entries) }

func (v *immutableView) Plus(other SparseVector) *MutableSparseVector {
	return &MutableSparseVector{entries: plusFloat(v.entries, entriesOf(other))}
}

func (v *immutableView) Minus(other SparseVector) *MutableSparseVector {
	return &MutableSparseVector{entries: minusFloat(v.entries, entriesOf(other))}
}

func (v *immutableView) Dot(other SparseVector) float64 {
	return dotFloat(v.entries, entriesOf(other))
}

func (v *immutableView) Cross(other SparseVector) *MutableSparseVector {
	return &MutableSparseVector{entries: crossFloat(v.entries, entriesOf(other))}
}

func (v *immutableView) Multiplied(scalar float64) *MutableSparseVector {
	return &MutableSparseVector{entries: multipliedFloat(v.entries, scalar)}
}

func (v *immutableView) Divided(scalar float64) (*MutableSparseVector, error) {
	if scalar == 0.0 {
		return nil, invalidArgument("sparse vector: division by zero")
	}
	return &MutableSparseVector{entries: dividedFloat(v.entries, scalar)}, nil
}

func (v *immutableView) Norm() float64 { return normFloat(v.entries) }

func (v *immutableView) Distance(other SparseVector) float64 {
	return normFloat(minusFloat(v.entries, entriesOf(other)))
}

func (v *immutableView) Normalized() (*MutableSparseVector, error) {
	n := v.Norm()
	if n == 0.0 {
		return nil, invalidState("sparse vector: cannot normalize the zero vector")
	}
	return &MutableSparseVector{entries: dividedFloat(v.entries, n)}, nil
}

func (v *immutableView) Abs() *MutableSparseVector {
	return &MutableSparseVector{entries: absFloat(v.entries)}
}

func (v *immutableView) Sum() float64 { return sumFloat(v.entries) }

func (v *immutableView) ForEachNonZero(action func(index int32, value float64) bool) {
	v.entries.Ascend(action)
}

func (v *immutableView) ForEach(lo, hi int32, action func(index int32, value float64) bool) {
	if lo > hi {
		return
	}
	for i := lo; ; i++ {
		if !action(i, getFloat(v.entries, i)) {
			return
		}
		if i == hi {
			return
		}
	}
}

func (v *immutableView) ImmutableCopy() SparseVector {
	return &immutableView{entries: v.entries.Clone()}
}

func (v *immutableView) Copy() *MutableSparseVector {
	return &MutableSparseVector{entries: v.entries.Clone()}
}

func (v *immutableView) Serialize() []byte { return encodeFloatEntries(v.entries) }
func (v *immutableView) String() string    { return renderFloat(v.entries) }

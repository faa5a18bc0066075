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

import "github.com/weaviate/weaviate-core/entities/errorcompounder"

// MutableIntSparseVector is the mutable variant of IntSparseVector. It is
// not safe for concurrent mutation; share it across goroutines only via
// ImmutableCopy.
type MutableIntSparseVector struct {
	entries *intMap
}

// NewMutableIntSparseVector returns the zero vector.
func NewMutableIntSparseVector() *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: newIntMap()}
}

// NewMutableIntSparseVectorFromMap builds a vector from index->value
// pairs, silently dropping any zero-valued entry.
func NewMutableIntSparseVectorFromMap(values map[int32]int32) *MutableIntSparseVector {
	m := newIntMap()
	for i, v := range values {
		setInt(m, i, v)
	}
	return &MutableIntSparseVector{entries: m}
}

func (v *MutableIntSparseVector) entriesMap() *intMap { return v.entries }

func (v *MutableIntSparseVector) Set(i int32, value int32) {
	setInt(v.entries, i, value)
}

func (v *MutableIntSparseVector) Add(i int32, value int32) {
	setInt(v.entries, i, getInt(v.entries, i)+value)
}

func (v *MutableIntSparseVector) Sub(i int32, value int32) {
	setInt(v.entries, i, getInt(v.entries, i)-value)
}

func (v *MutableIntSparseVector) AddVector(other IntSparseVector) {
	intEntriesOf(other).Ascend(func(i int32, val int32) bool {
		v.Add(i, val)
		return true
	})
}

func (v *MutableIntSparseVector) SubVector(other IntSparseVector) {
	intEntriesOf(other).Ascend(func(i int32, val int32) bool {
		v.Sub(i, val)
		return true
	})
}

func (v *MutableIntSparseVector) Multiply(scalar int32) {
	v.entries = multipliedInt(v.entries, scalar)
}

func (v *MutableIntSparseVector) Divide(scalar int32) error {
	if scalar == 0 {
		return invalidArgument("int sparse vector: division by zero")
	}
	v.entries = dividedInt(v.entries, scalar)
	return nil
}

func (v *MutableIntSparseVector) TransformNonZero(f func(index int32, value int32) int32) {
	next := newIntMap()
	v.entries.Ascend(func(i int32, val int32) bool {
		setInt(next, i, f(i, val))
		return true
	})
	v.entries = next
}

func (v *MutableIntSparseVector) Transform(lo, hi int32, f func(index int32, value int32) int32) {
	if lo > hi {
		return
	}
	for i := lo; ; i++ {
		v.Set(i, f(i, v.Get(i)))
		if i == hi {
			break
		}
	}
}

// --- read-only IntSparseVector methods ---

func (v *MutableIntSparseVector) Get(i int32) int32 { return getInt(v.entries, i) }

func (v *MutableIntSparseVector) GetAll(lo, hi int32) []int32 {
	if lo > hi {
		return nil
	}
	out := make([]int32, int64(hi)-int64(lo)+1)
	getAllIndices(v.entries, lo, hi, int32(0), out)
	return out
}

func (v *MutableIntSparseVector) NonZeroCount() int { return v.entries.Len() }

func (v *MutableIntSparseVector) FirstNonZeroIndex() int32 {
	i, ok := firstIndex(v.entries)
	if !ok {
		return -1
	}
	return i
}

func (v *MutableIntSparseVector) FirstNonZeroIndexOk() (int32, bool) { return firstIndex(v.entries) }

func (v *MutableIntSparseVector) LastNonZeroIndex() int32 {
	i, ok := lastIndex(v.entries)
	if !ok {
		return -1
	}
	return i
}

func (v *MutableIntSparseVector) LastNonZeroIndexOk() (int32, bool) { return lastIndex(v.entries) }

func (v *MutableIntSparseVector) NextNonZeroIndex(from int32) int32 {
	i, ok := nextIndex(v.entries, from)
	if !ok {
		return -1
	}
	return i
}

func (v *MutableIntSparseVector) NextNonZeroIndexOk(from int32) (int32, bool) {
	return nextIndex(v.entries, from)
}

func (v *MutableIntSparseVector) PreviousNonZeroIndex(from int32) int32 {
	i, ok := previousIndex(v.entries, from)
	if !ok {
		return -1
	}
	return i
}

func (v *MutableIntSparseVector) PreviousNonZeroIndexOk(from int32) (int32, bool) {
	return previousIndex(v.entries, from)
}

func (v *MutableIntSparseVector) FirstZeroIndex() int32 { return firstZeroIndex(v.entries) }
func (v *MutableIntSparseVector) LastZeroIndex() int32  { return lastZeroIndex(v.entries) }

func (v *MutableIntSparseVector) Plus(other IntSparseVector) *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: plusInt(v.entries, intEntriesOf(other))}
}

func (v *MutableIntSparseVector) Minus(other IntSparseVector) *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: minusInt(v.entries, intEntriesOf(other))}
}

func (v *MutableIntSparseVector) Dot(other IntSparseVector) int64 {
	return dotInt(v.entries, intEntriesOf(other))
}

func (v *MutableIntSparseVector) Cross(other IntSparseVector) *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: crossInt(v.entries, intEntriesOf(other))}
}

func (v *MutableIntSparseVector) Multiplied(scalar int32) *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: multipliedInt(v.entries, scalar)}
}

func (v *MutableIntSparseVector) Divided(scalar int32) (*MutableIntSparseVector, error) {
	if scalar == 0 {
		return nil, invalidArgument("int sparse vector: division by zero")
	}
	return &MutableIntSparseVector{entries: dividedInt(v.entries, scalar)}, nil
}

func (v *MutableIntSparseVector) Norm() int32 { return normInt(v.entries) }

func (v *MutableIntSparseVector) Distance(other IntSparseVector) int32 {
	return normInt(minusInt(v.entries, intEntriesOf(other)))
}

func (v *MutableIntSparseVector) Normalized() (*MutableIntSparseVector, error) {
	entries, err := normalizedInt(v.entries)
	if err != nil {
		return nil, err
	}
	return &MutableIntSparseVector{entries: entries}, nil
}

func (v *MutableIntSparseVector) Abs() *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: absInt(v.entries)}
}

func (v *MutableIntSparseVector) Sum() int64 { return sumInt(v.entries) }

func (v *MutableIntSparseVector) ForEachNonZero(action func(index int32, value int32) bool) {
	v.entries.Ascend(action)
}

func (v *MutableIntSparseVector) ForEach(lo, hi int32, action func(index int32, value int32) bool) {
	if lo > hi {
		return
	}
	for i := lo; ; i++ {
		if !action(i, v.Get(i)) {
			return
		}
		if i == hi {
			return
		}
	}
}

func (v *MutableIntSparseVector) ImmutableCopy() IntSparseVector {
	return &intImmutableView{entries: v.entries.Clone()}
}

func (v *MutableIntSparseVector) Copy() *MutableIntSparseVector {
	return &MutableIntSparseVector{entries: v.entries.Clone()}
}

// ImmutableView returns a read-only façade sharing this vector's storage.
func (v *MutableIntSparseVector) ImmutableView() IntSparseVector {
	return &intImmutableView{entries: v.entries}
}

func (v *MutableIntSparseVector) Serialize() []byte { return encodeIntEntries(v.entries) }
func (v *MutableIntSparseVector) String() string    { return renderInt(v.entries) }

// Validate checks the canonicalization invariant: no stored entry is zero,
// and indices are strictly increasing. Every violation found is reported,
// compounded via entities/errorcompounder rather than stopping at the
// first.
func (v *MutableIntSparseVector) Validate() error {
	ec := errorcompounder.New()
	var prevIndex int32
	havePrev := false

	v.entries.Ascend(func(i int32, val int32) bool {
		if val == 0 {
			ec.Addf("index %d: stored entry is zero", i)
		}
		if havePrev && i <= prevIndex {
			ec.Addf("index %d: out of order after %d", i, prevIndex)
		}
		prevIndex = i
		havePrev = true
		return true
	})

	return ec.ToError()
}

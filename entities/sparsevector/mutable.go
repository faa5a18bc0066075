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

// MutableSparseVector is the mutable variant of SparseVector. It is not
// safe for concurrent mutation; share it across goroutines only via
// ImmutableCopy.
type MutableSparseVector struct {
	entries *floatMap
}

// NewMutableSparseVector returns the zero vector.
func NewMutableSparseVector() *MutableSparseVector {
	return &MutableSparseVector{entries: newFloatMap()}
}

// NewMutableSparseVectorFromMap builds a vector from index->value pairs,
// silently dropping any zero-valued entry to maintain canonicalization.
func NewMutableSparseVectorFromMap(values map[int32]float64) *MutableSparseVector {
	m := newFloatMap()
	for i, v := range values {
		setFloat(m, i, v)
	}
	return &MutableSparseVector{entries: m}
}

func (v *MutableSparseVector) entriesMap() *floatMap { return v.entries }

// Set stores value at i, or removes the entry if value == 0.0.
func (v *MutableSparseVector) Set(i int32, value float64) {
	setFloat(v.entries, i, value)
}

// Add is the in-place, index-at-a-time counterpart of Plus.
func (v *MutableSparseVector) Add(i int32, value float64) {
	setFloat(v.entries, i, getFloat(v.entries, i)+value)
}

// Sub is the in-place, index-at-a-time counterpart of Minus.
func (v *MutableSparseVector) Sub(i int32, value float64) {
	setFloat(v.entries, i, getFloat(v.entries, i)-value)
}

// AddVector adds other in place, iterating only its non-zero entries.
func (v *MutableSparseVector) AddVector(other SparseVector) {
	entriesOf(other).Ascend(func(i int32, val float64) bool {
		v.Add(i, val)
		return true
	})
}

// SubVector subtracts other in place, iterating only its non-zero entries.
func (v *MutableSparseVector) SubVector(other SparseVector) {
	entriesOf(other).Ascend(func(i int32, val float64) bool {
		v.Sub(i, val)
		return true
	})
}

// Multiply scales every stored entry by scalar in place; scalar == 0
// clears the vector.
func (v *MutableSparseVector) Multiply(scalar float64) {
	v.entries = multipliedFloat(v.entries, scalar)
}

// Divide divides every stored entry by scalar in place.
func (v *MutableSparseVector) Divide(scalar float64) error {
	if scalar == 0.0 {
		return invalidArgument("sparse vector: division by zero")
	}
	v.entries = dividedFloat(v.entries, scalar)
	return nil
}

// TransformNonZero maps every currently-stored entry through f, dropping
// any result that equals zero.
func (v *MutableSparseVector) TransformNonZero(f func(index int32, value float64) float64) {
	next := newFloatMap()
	v.entries.Ascend(func(i int32, val float64) bool {
		setFloat(next, i, f(i, val))
		return true
	})
	v.entries = next
}

// Transform visits every index in [lo,hi], present or not, setting it to
// f(i, get(i)).
func (v *MutableSparseVector) Transform(lo, hi int32, f func(index int32, value float64) float64) {
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

// --- read-only SparseVector methods ---

func (v *MutableSparseVector) Get(i int32) float64 { return getFloat(v.entries, i) }

func (v *MutableSparseVector) GetAll(lo, hi int32) []float64 {
	if lo > hi {
		return nil
	}
	out := make([]float64, int64(hi)-int64(lo)+1)
	getAllIndices(v.entries, lo, hi, 0.0, out)
	return out
}

func (v *MutableSparseVector) NonZeroCount() int { return v.entries.Len() }

func (v *MutableSparseVector) FirstNonZeroIndex() int32 {
	i, ok := firstIndex(v.entries)
	if !ok {
		return -1
	}
	return i
}

func (v *MutableSparseVector) FirstNonZeroIndexOk() (int32, bool) { return firstIndex(v.entries) }

func (v *MutableSparseVector) LastNonZeroIndex() int32 {
	i, ok := lastIndex(v.entries)
	if !ok {
		return -1
	}
	return i
}

func (v *MutableSparseVector) LastNonZeroIndexOk() (int32, bool) { return lastIndex(v.entries) }

func (v *MutableSparseVector) NextNonZeroIndex(from int32) int32 {
	i, ok := nextIndex(v.entries, from)
	if !ok {
		return -1
	}
	return i
}

func (v *MutableSparseVector) NextNonZeroIndexOk(from int32) (int32, bool) {
	return nextIndex(v.entries, from)
}

func (v *MutableSparseVector) PreviousNonZeroIndex(from int32) int32 {
	i, ok := previousIndex(v.entries, from)
	if !ok {
		return -1
	}
	return i
}

func (v *MutableSparseVector) PreviousNonZeroIndexOk(from int32) (int32, bool) {
	return previousIndex(v.entries, from)
}

func (v *MutableSparseVector) FirstZeroIndex() int32 { return firstZeroIndex(v.entries) }
func (v *MutableSparseVector) LastZeroIndex() int32  { return lastZeroIndex(v.entries) }

func (v *MutableSparseVector) Plus(other SparseVector) *MutableSparseVector {
	return &MutableSparseVector{entries: plusFloat(v.entries, entriesOf(other))}
}

func (v *MutableSparseVector) Minus(other SparseVector) *MutableSparseVector {
	return &MutableSparseVector{entries: minusFloat(v.entries, entriesOf(other))}
}

func (v *MutableSparseVector) Dot(other SparseVector) float64 {
	return dotFloat(v.entries, entriesOf(other))
}

func (v *MutableSparseVector) Cross(other SparseVector) *MutableSparseVector {
	return &MutableSparseVector{entries: crossFloat(v.entries, entriesOf(other))}
}

func (v *MutableSparseVector) Multiplied(scalar float64) *MutableSparseVector {
	return &MutableSparseVector{entries: multipliedFloat(v.entries, scalar)}
}

func (v *MutableSparseVector) Divided(scalar float64) (*MutableSparseVector, error) {
	if scalar == 0.0 {
		return nil, invalidArgument("sparse vector: division by zero")
	}
	return &MutableSparseVector{entries: dividedFloat(v.entries, scalar)}, nil
}

func (v *MutableSparseVector) Norm() float64 { return normFloat(v.entries) }

func (v *MutableSparseVector) Distance(other SparseVector) float64 {
	return normFloat(minusFloat(v.entries, entriesOf(other)))
}

func (v *MutableSparseVector) Normalized() (*MutableSparseVector, error) {
	n := v.Norm()
	if n == 0.0 {
		return nil, invalidState("sparse vector: cannot normalize the zero vector")
	}
	return &MutableSparseVector{entries: dividedFloat(v.entries, n)}, nil
}

func (v *MutableSparseVector) Abs() *MutableSparseVector {
	return &MutableSparseVector{entries: absFloat(v.entries)}
}

func (v *MutableSparseVector) Sum() float64 { return sumFloat(v.entries) }

func (v *MutableSparseVector) ForEachNonZero(action func(index int32, value float64) bool) {
	v.entries.Ascend(action)
}

func (v *MutableSparseVector) ForEach(lo, hi int32, action func(index int32, value float64) bool) {
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

func (v *MutableSparseVector) ImmutableCopy() SparseVector {
	return &immutableView{entries: v.entries.Clone()}
}

func (v *MutableSparseVector) Copy() *MutableSparseVector {
	return &MutableSparseVector{entries: v.entries.Clone()}
}

// ImmutableView returns a read-only façade sharing this vector's storage:
// subsequent mutations through v remain visible via the returned view.
func (v *MutableSparseVector) ImmutableView() SparseVector {
	return &immutableView{entries: v.entries}
}

func (v *MutableSparseVector) Serialize() []byte { return encodeFloatEntries(v.entries) }
func (v *MutableSparseVector) String() string    { return renderFloat(v.entries) }

// Validate checks the canonicalization invariant: no stored entry is zero,
// and indices are strictly increasing. It exists for tests and for callers
// embedding this package in their own test suites; it is never called by
// the mutators themselves, which maintain the invariant by construction.
// Every violation found is reported, compounded via entities/errorcompounder
// rather than stopping at the first.
func (v *MutableSparseVector) Validate() error {
	ec := errorcompounder.New()
	var prevIndex int32
	havePrev := false

	v.entries.Ascend(func(i int32, val float64) bool {
		if val == 0.0 {
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

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

// IntSparseVector is the integer-valued counterpart of SparseVector: an
// index -> int32 mapping, "absent" meaning a stored or implicit value of
// exactly zero.
type IntSparseVector interface {
	Get(i int32) int32
	GetAll(lo, hi int32) []int32
	NonZeroCount() int

	FirstNonZeroIndex() int32
	FirstNonZeroIndexOk() (int32, bool)
	LastNonZeroIndex() int32
	LastNonZeroIndexOk() (int32, bool)
	NextNonZeroIndex(from int32) int32
	NextNonZeroIndexOk(from int32) (int32, bool)
	PreviousNonZeroIndex(from int32) int32
	PreviousNonZeroIndexOk(from int32) (int32, bool)
	FirstZeroIndex() int32
	LastZeroIndex() int32

	Plus(other IntSparseVector) *MutableIntSparseVector
	Minus(other IntSparseVector) *MutableIntSparseVector
	Dot(other IntSparseVector) int64
	Cross(other IntSparseVector) *MutableIntSparseVector
	Multiplied(scalar int32) *MutableIntSparseVector
	Divided(scalar int32) (*MutableIntSparseVector, error)
	Norm() int32
	Distance(other IntSparseVector) int32
	Normalized() (*MutableIntSparseVector, error)
	Abs() *MutableIntSparseVector
	Sum() int64

	ForEachNonZero(action func(index int32, value int32) bool)
	ForEach(lo, hi int32, action func(index int32, value int32) bool)

	ImmutableCopy() IntSparseVector
	Copy() *MutableIntSparseVector
	Serialize() []byte
	String() string
}

type intEntriesProvider interface {
	entriesMap() *intMap
}

func intEntriesOf(v IntSparseVector) *intMap {
	if p, ok := v.(intEntriesProvider); ok {
		return p.entriesMap()
	}
	m := newIntMap()
	v.ForEachNonZero(func(i int32, val int32) bool {
		m.Put(i, val)
		return true
	})
	return m
}

func normalizedInt(m *intMap) (*intMap, error) {
	norm := normInt(m)
	if norm == 0 {
		return nil, invalidState("int sparse vector: cannot normalize the zero vector")
	}
	out := newIntMap()
	normF := float64(norm)
	m.Ascend(func(i int32, v int32) bool {
		setInt(out, i, roundHalfToEven(float64(v)/normF))
		return true
	})
	return out, nil
}

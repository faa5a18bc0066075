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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestS5Normalize is scenario S5 from the spec: norm=10,
// normalized() == {0:1} with no entry at index 1.
func TestS5Normalize(t *testing.T) {
	v := NewMutableIntSparseVectorFromMap(map[int32]int32{0: 10, 1: 0})
	assert.Equal(t, 1, v.NonZeroCount())
	assert.Equal(t, int32(10), v.Norm())

	n, err := v.Normalized()
	require.NoError(t, err)
	assert.Equal(t, 1, n.NonZeroCount())
	assert.Equal(t, int32(1), n.Get(0))
	assert.Equal(t, int32(0), n.Get(1))
}

func TestIntSetDropsZero(t *testing.T) {
	v := NewMutableIntSparseVector()
	v.Set(1, 5)
	v.Set(1, 0)
	assert.Equal(t, 0, v.NonZeroCount())
}

func TestIntDividedByZeroIsError(t *testing.T) {
	v := NewMutableIntSparseVectorFromMap(map[int32]int32{0: 5})
	_, err := v.Divided(0)
	assert.Error(t, err)
}

func TestIntDividedDropsResultsRoundingToZero(t *testing.T) {
	v := NewMutableIntSparseVectorFromMap(map[int32]int32{0: 1})
	d, err := v.Divided(10)
	require.NoError(t, err)
	assert.Equal(t, 0, d.NonZeroCount())
}

func TestIntNormalizeZeroVectorFails(t *testing.T) {
	v := NewMutableIntSparseVector()
	_, err := v.Normalized()
	assert.Error(t, err)
}

func TestIntDotAndCross(t *testing.T) {
	a := NewMutableIntSparseVectorFromMap(map[int32]int32{0: 1, 1: 2})
	b := NewMutableIntSparseVectorFromMap(map[int32]int32{0: 3, 1: -1})

	assert.Equal(t, int64(1), a.Dot(b))

	x := NewMutableIntSparseVectorFromMap(map[int32]int32{0: 1})
	y := NewMutableIntSparseVectorFromMap(map[int32]int32{1: 1})
	c := x.Cross(y)
	assert.Equal(t, int32(1), c.Get(2))
}

func TestIntSerializeRoundTrip(t *testing.T) {
	v := NewMutableIntSparseVectorFromMap(map[int32]int32{0: -5, 100: 42})
	data := v.Serialize()
	got, err := DeserializeIntVector(data)
	require.NoError(t, err)
	assert.Equal(t, v.String(), got.String())
}

func TestIntImmutableViewSharesStorage(t *testing.T) {
	v := NewMutableIntSparseVector()
	v.Set(1, 5)
	view := v.ImmutableView()

	assert.Equal(t, int32(5), view.Get(1))
	v.Set(2, 9)
	assert.Equal(t, int32(9), view.Get(2))
}

func TestRoundHalfToEven(t *testing.T) {
	assert.Equal(t, int32(2), roundHalfToEven(2.5))
	assert.Equal(t, int32(4), roundHalfToEven(3.5))
	assert.Equal(t, int32(-2), roundHalfToEven(-2.5))
}

func TestIntValidatePasses(t *testing.T) {
	v := NewMutableIntSparseVectorFromMap(map[int32]int32{1: 5, 3: 9})
	assert.NoError(t, v.Validate())
}

func TestIntValidateCatchesStoredZero(t *testing.T) {
	v := NewMutableIntSparseVector()
	v.Set(1, 5)
	v.entriesMap().Put(2, 0)

	err := v.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stored entry is zero")
}

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
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDropsZero(t *testing.T) {
	v := NewMutableSparseVector()
	v.Set(1, 5.0)
	v.Set(1, 0.0)
	assert.Equal(t, 0, v.NonZeroCount())
	assert.Equal(t, 0.0, v.Get(1))
}

func TestSetStoresNegativeZeroAsAbsent(t *testing.T) {
	v := NewMutableSparseVector()
	v.Set(1, math.Copysign(0, -1))
	assert.Equal(t, 0, v.NonZeroCount())
}

func TestSetStoresNaN(t *testing.T) {
	v := NewMutableSparseVector()
	v.Set(1, math.NaN())
	assert.Equal(t, 1, v.NonZeroCount())
	assert.True(t, math.IsNaN(v.Get(1)))
}

func TestSerializeRoundTripsNaN(t *testing.T) {
	v := NewMutableSparseVector()
	v.Set(1, math.NaN())
	v.Set(2, math.Inf(1))

	data := v.Serialize()
	got, err := DeserializeVector(data)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.Get(1)))
	assert.True(t, math.IsInf(got.Get(2), 1))
}

// TestS4DotPlus is scenario S4 from the spec: v+w and v.w for two
// 2-entry sparse vectors.
func TestS4DotPlus(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{0: 2.0, 1: 4.0})
	w := NewMutableSparseVectorFromMap(map[int32]float64{1: -4.0, 2: 5.0})

	sum := v.Plus(w)
	assert.Equal(t, 2, sum.NonZeroCount())
	assert.Equal(t, 2.0, sum.Get(0))
	assert.Equal(t, 5.0, sum.Get(2))
	assert.Equal(t, 0.0, sum.Get(1))

	dot := v.Dot(w)
	assert.Equal(t, -16.0, dot)
}

func TestCrossIgnoresOtherIndices(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{0: 1, 1: 0, 2: 0, 5: 99})
	w := NewMutableSparseVectorFromMap(map[int32]float64{0: 0, 1: 1, 2: 0})

	c := v.Cross(w)
	assert.Equal(t, 1.0, c.Get(2))
	assert.Equal(t, 0.0, c.Get(0))
	assert.Equal(t, 0.0, c.Get(1))
}

func TestDividedByZeroIsError(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{0: 1})
	_, err := v.Divided(0)
	assert.Error(t, err)
}

func TestNormAndNormalizeZeroVector(t *testing.T) {
	v := NewMutableSparseVector()
	assert.Equal(t, 0.0, v.Norm())

	_, err := v.Normalized()
	assert.Error(t, err)
}

func TestNormalizeIdentity(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{0: 3, 1: 4})
	n, err := v.Normalized()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, n.Norm(), 1e-9)
}

func TestArithmeticIdentities(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{0: 1.5, 3: -2.5})
	zero := NewMutableSparseVector()

	assert.Equal(t, v.String(), v.Plus(zero).String())

	self := v.Minus(v)
	assert.Equal(t, 0, self.NonZeroCount())

	nsq := v.Norm() * v.Norm()
	assert.InDelta(t, nsq, v.Dot(v), 1e-9)
}

const arithmeticIdentityDomain = int32(40)

// randomSparseVector builds a MutableSparseVector with random nonzero
// entries over [0,arithmeticIdentityDomain).
func randomSparseVector(rng *rand.Rand, entries int) *MutableSparseVector {
	values := make(map[int32]float64, entries)
	for i := 0; i < entries; i++ {
		idx := int32(rng.Intn(int(arithmeticIdentityDomain)))
		values[idx] = rng.Float64()*20 - 10 // avoid zero by construction below
		if values[idx] == 0 {
			values[idx] = 1
		}
	}
	return NewMutableSparseVectorFromMap(values)
}

func assertVectorsEqual(t *testing.T, a, b *MutableSparseVector, msg string) {
	t.Helper()
	for i := int32(0); i < arithmeticIdentityDomain; i++ {
		assert.InDelta(t, a.Get(i), b.Get(i), 1e-9, "%s: index %d", msg, i)
	}
}

// TestArithmeticIdentitiesRandomized checks commutativity, associativity,
// distributivity of Dot over Plus, and the norm/dot identity over many
// randomly generated vector triples, rather than the single fixed-value
// case TestArithmeticIdentities covers.
func TestArithmeticIdentitiesRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for trial := 0; trial < 100; trial++ {
		a := randomSparseVector(rng, 8)
		b := randomSparseVector(rng, 8)
		c := randomSparseVector(rng, 8)

		// commutativity
		assertVectorsEqual(t, a.Plus(b), b.Plus(a), "plus commutativity")
		assert.InDelta(t, a.Dot(b), b.Dot(a), 1e-9, "dot commutativity")

		// associativity
		assertVectorsEqual(t, a.Plus(b).Plus(c), a.Plus(b.Plus(c)), "plus associativity")

		// distributivity of Dot over Plus
		lhs := a.Dot(b.Plus(c))
		rhs := a.Dot(b) + a.Dot(c)
		assert.InDelta(t, rhs, lhs, 1e-6, "dot distributivity over plus")

		// norm/dot identity
		assert.InDelta(t, a.Norm()*a.Norm(), a.Dot(a), 1e-6, "norm squared equals self dot")

		// a minus a is always the zero vector
		self := a.Minus(a)
		assert.Equal(t, 0, self.NonZeroCount())
	}
}

func TestNavigationSentinelsAndOptionalForms(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{5: 1, 10: 2})

	assert.Equal(t, int32(-1), NewMutableSparseVector().FirstNonZeroIndex())
	_, ok := NewMutableSparseVector().FirstNonZeroIndexOk()
	assert.False(t, ok)

	assert.Equal(t, int32(5), v.FirstNonZeroIndex())
	assert.Equal(t, int32(10), v.LastNonZeroIndex())
	assert.Equal(t, int32(10), v.NextNonZeroIndex(6))
	assert.Equal(t, int32(5), v.PreviousNonZeroIndex(9))
}

func TestFirstZeroIndex(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{0: 1, 1: 1, 3: 1})
	assert.Equal(t, int32(2), v.FirstZeroIndex())

	empty := NewMutableSparseVector()
	assert.Equal(t, int32(0), empty.FirstZeroIndex())
}

func TestLastZeroIndex(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{0: 1})
	assert.Equal(t, int32(math.MaxInt32), v.LastZeroIndex())

	v.Set(math.MaxInt32, 1)
	assert.Equal(t, int32(math.MaxInt32-1), v.LastZeroIndex())
}

func TestTransformNonZeroDropsZeroResults(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{0: 1, 1: -1})
	v.TransformNonZero(func(_ int32, val float64) float64 { return val + 1 })
	assert.Equal(t, 1, v.NonZeroCount())
	assert.Equal(t, 2.0, v.Get(0))
	assert.Equal(t, 0.0, v.Get(1))
}

func TestTransformVisitsEveryIndexInRange(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{2: 5})
	var visited []int32
	v.Transform(0, 3, func(i int32, val float64) float64 {
		visited = append(visited, i)
		return val
	})
	assert.Equal(t, []int32{0, 1, 2, 3}, visited)
}

func TestGetAll(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{1: 10})
	all := v.GetAll(0, 3)
	assert.Equal(t, []float64{0, 10, 0, 0}, all)
}

func TestImmutableViewSharesStorage(t *testing.T) {
	v := NewMutableSparseVector()
	v.Set(1, 5)
	view := v.ImmutableView()

	assert.Equal(t, 5.0, view.Get(1))
	v.Set(2, 9)
	assert.Equal(t, 9.0, view.Get(2))
}

func TestImmutableCopyIsIndependent(t *testing.T) {
	v := NewMutableSparseVector()
	v.Set(1, 5)
	snap := v.ImmutableCopy()

	v.Set(2, 9)
	assert.Equal(t, 0.0, snap.Get(2))
}

func TestValidatePasses(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{1: 5, 3: 9})
	assert.NoError(t, v.Validate())
}

func TestValidateCatchesStoredZero(t *testing.T) {
	v := NewMutableSparseVectorFromMap(map[int32]float64{1: 5})
	v.entriesMap().Put(2, 0.0)

	err := v.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stored entry is zero")
}

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

package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

func newIntMap() *Map[int, string] {
	return New[int, string](intLess)
}

func TestGetPutRoundTrip(t *testing.T) {
	m := newIntMap()
	m.Put(3, "three")
	m.Put(1, "one")
	m.Put(2, "two")

	assert.Equal(t, 3, m.Len())

	v, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, "two", v)

	_, ok = m.Get(99)
	assert.False(t, ok)
}

func TestPutOverwritesExistingKey(t *testing.T) {
	m := newIntMap()
	m.Put(1, "first")
	m.Put(1, "second")

	assert.Equal(t, 1, m.Len())
	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestDeleteRemovesEntryAndReturnsPriorValue(t *testing.T) {
	m := newIntMap()
	m.Put(5, "five")

	v, ok := m.Delete(5)
	require.True(t, ok)
	assert.Equal(t, "five", v)
	assert.Zero(t, m.Len())

	_, ok = m.Delete(5)
	assert.False(t, ok)
}

func TestClearEmptiesTheMap(t *testing.T) {
	m := newIntMap()
	m.Put(1, "a")
	m.Put(2, "b")

	m.Clear()
	assert.Zero(t, m.Len())
	_, ok := m.Get(1)
	assert.False(t, ok)
}

func TestMinMaxOnEmptyMap(t *testing.T) {
	m := newIntMap()

	_, _, ok := m.Min()
	assert.False(t, ok)

	_, _, ok = m.Max()
	assert.False(t, ok)
}

func TestMinMax(t *testing.T) {
	m := newIntMap()
	m.Put(10, "ten")
	m.Put(-5, "minus five")
	m.Put(20, "twenty")

	k, v, ok := m.Min()
	require.True(t, ok)
	assert.Equal(t, -5, k)
	assert.Equal(t, "minus five", v)

	k, v, ok = m.Max()
	require.True(t, ok)
	assert.Equal(t, 20, k)
	assert.Equal(t, "twenty", v)
}

func TestFloorAndCeiling(t *testing.T) {
	m := newIntMap()
	for _, k := range []int{10, 20, 30} {
		m.Put(k, "")
	}

	k, _, ok := m.Floor(25)
	require.True(t, ok)
	assert.Equal(t, 20, k)

	k, _, ok = m.Floor(20)
	require.True(t, ok)
	assert.Equal(t, 20, k, "Floor is inclusive of an exact match")

	_, _, ok = m.Floor(5)
	assert.False(t, ok, "no key <= 5")

	k, _, ok = m.Ceiling(25)
	require.True(t, ok)
	assert.Equal(t, 30, k)

	k, _, ok = m.Ceiling(20)
	require.True(t, ok)
	assert.Equal(t, 20, k, "Ceiling is inclusive of an exact match")

	_, _, ok = m.Ceiling(35)
	assert.False(t, ok, "no key >= 35")
}

func TestLowerAndHigher(t *testing.T) {
	m := newIntMap()
	for _, k := range []int{10, 20, 30} {
		m.Put(k, "")
	}

	k, _, ok := m.Lower(20)
	require.True(t, ok)
	assert.Equal(t, 10, k, "Lower excludes an exact match")

	_, _, ok = m.Lower(10)
	assert.False(t, ok, "no key strictly < 10")

	k, _, ok = m.Higher(20)
	require.True(t, ok)
	assert.Equal(t, 30, k, "Higher excludes an exact match")

	_, _, ok = m.Higher(30)
	assert.False(t, ok, "no key strictly > 30")
}

func TestAscendVisitsInOrderAndRespectsEarlyStop(t *testing.T) {
	m := newIntMap()
	for _, k := range []int{5, 1, 3, 4, 2} {
		m.Put(k, "")
	}

	var visited []int
	m.Ascend(func(key int, _ string) bool {
		visited = append(visited, key)
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, visited)

	visited = nil
	m.Ascend(func(key int, _ string) bool {
		visited = append(visited, key)
		return key < 3
	})
	assert.Equal(t, []int{1, 2, 3}, visited)
}

func TestDescendVisitsInOrderAndRespectsEarlyStop(t *testing.T) {
	m := newIntMap()
	for _, k := range []int{5, 1, 3, 4, 2} {
		m.Put(k, "")
	}

	var visited []int
	m.Descend(func(key int, _ string) bool {
		visited = append(visited, key)
		return true
	})
	assert.Equal(t, []int{5, 4, 3, 2, 1}, visited)

	visited = nil
	m.Descend(func(key int, _ string) bool {
		visited = append(visited, key)
		return key > 3
	})
	assert.Equal(t, []int{5, 4, 3}, visited)
}

func TestAscendRangeIsInclusiveOfBothBounds(t *testing.T) {
	m := newIntMap()
	for _, k := range []int{1, 2, 3, 4, 5, 6} {
		m.Put(k, "")
	}

	var visited []int
	m.AscendRange(2, 5, func(key int, _ string) bool {
		visited = append(visited, key)
		return true
	})
	assert.Equal(t, []int{2, 3, 4, 5}, visited)
}

func TestDescendRangeIsInclusiveOfBothBounds(t *testing.T) {
	m := newIntMap()
	for _, k := range []int{1, 2, 3, 4, 5, 6} {
		m.Put(k, "")
	}

	var visited []int
	m.DescendRange(2, 5, func(key int, _ string) bool {
		visited = append(visited, key)
		return true
	})
	assert.Equal(t, []int{5, 4, 3, 2}, visited)
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	m := newIntMap()
	m.Put(1, "one")
	m.Put(2, "two")

	clone := m.Clone()
	clone.Put(3, "three")
	clone.Delete(1)

	assert.Equal(t, 3, clone.Len())
	assert.Equal(t, 2, m.Len(), "mutating the clone must not affect the original")

	_, ok := m.Get(1)
	assert.True(t, ok, "original retains the key the clone deleted")

	_, ok = m.Get(3)
	assert.False(t, ok, "original does not see the key only added to the clone")
}

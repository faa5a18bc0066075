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
	"fmt"

	"github.com/weaviate/weaviate-core/entities/coreerrors"
)

// SparseVector is the read-only view over an index -> float64 mapping
// whose support is finite: v: Z -> R with v(i) == 0.0 for all but finitely
// many i. ImmutableView shares storage with its origin; ImmutableCopy and
// Copy take an independent snapshot.
type SparseVector interface {
	Get(i int32) float64
	GetAll(lo, hi int32) []float64
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

	Plus(other SparseVector) *MutableSparseVector
	Minus(other SparseVector) *MutableSparseVector
	Dot(other SparseVector) float64
	Cross(other SparseVector) *MutableSparseVector
	Multiplied(scalar float64) *MutableSparseVector
	Divided(scalar float64) (*MutableSparseVector, error)
	Norm() float64
	Distance(other SparseVector) float64
	Normalized() (*MutableSparseVector, error)
	Abs() *MutableSparseVector
	Sum() float64

	ForEachNonZero(action func(index int32, value float64) bool)
	ForEach(lo, hi int32, action func(index int32, value float64) bool)

	ImmutableCopy() SparseVector
	Copy() *MutableSparseVector
	Serialize() []byte
	String() string
}

// entriesProvider is satisfied by every SparseVector this package produces,
// giving combinators direct access to the backing ordered map instead of
// materializing via ForEachNonZero on both operands.
type entriesProvider interface {
	entriesMap() *floatMap
}

func entriesOf(v SparseVector) *floatMap {
	if p, ok := v.(entriesProvider); ok {
		return p.entriesMap()
	}
	m := newFloatMap()
	v.ForEachNonZero(func(i int32, val float64) bool {
		m.Put(i, val)
		return true
	})
	return m
}

func invalidArgument(format string, a ...any) error {
	return coreerrors.NewErrInvalidArgument(fmt.Errorf(format, a...))
}

func invalidState(format string, a ...any) error {
	return coreerrors.NewErrInvalidState(fmt.Errorf(format, a...))
}

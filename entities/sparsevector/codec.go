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
	"encoding/binary"
	"math"

	"github.com/weaviate/weaviate-core/entities/coreerrors"
)

// Wire layout (big-endian, matching entities/bitset's codec):
//
//	SparseVector:    int32 count, then [count] x (int32 index, float64 value)
//	IntSparseVector: int32 count, then [count] x (int32 index, int32 value)
//
// NaN and infinities round-trip bit-for-bit since the float64 payload is
// the IEEE-754 bit pattern, not a decimal rendering.
const floatRecordSize = 4 + 8
const intRecordSize = 4 + 4

func encodeFloatEntries(m *floatMap) []byte {
	n := m.Len()
	buf := make([]byte, 4+n*floatRecordSize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(n))
	off := 4
	m.Ascend(func(i int32, v float64) bool {
		binary.BigEndian.PutUint32(buf[off:off+4], uint32(i))
		binary.BigEndian.PutUint64(buf[off+4:off+12], math.Float64bits(v))
		off += floatRecordSize
		return true
	})
	return buf
}

func decodeFloatEntries(data []byte) (*floatMap, error) {
	if len(data) < 4 {
		return nil, coreerrors.NewErrCorrupt(errShortHeader)
	}
	count := binary.BigEndian.Uint32(data[0:4])
	want := 4 + int64(count)*floatRecordSize
	if want < 0 || int64(len(data)) != want {
		return nil, coreerrors.NewErrCorrupt(errLengthMismatch)
	}
	m := newFloatMap()
	off := 4
	for i := uint32(0); i < count; i++ {
		idx := int32(binary.BigEndian.Uint32(data[off : off+4]))
		val := math.Float64frombits(binary.BigEndian.Uint64(data[off+4 : off+12]))
		m.Put(idx, val)
		off += floatRecordSize
	}
	return m, nil
}

// SerializeVector encodes v in the wire format described above.
func SerializeVector(v SparseVector) []byte {
	return v.Serialize()
}

// DeserializeVector decodes the wire format produced by Serialize back
// into a mutable vector. A nil or empty input decodes to the zero vector.
func DeserializeVector(data []byte) (*MutableSparseVector, error) {
	if len(data) == 0 {
		return NewMutableSparseVector(), nil
	}
	m, err := decodeFloatEntries(data)
	if err != nil {
		return nil, err
	}
	return &MutableSparseVector{entries: m}, nil
}

func encodeIntEntries(m *intMap) []byte {
	n := m.Len()
	buf := make([]byte, 4+n*intRecordSize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(n))
	off := 4
	m.Ascend(func(i int32, v int32) bool {
		binary.BigEndian.PutUint32(buf[off:off+4], uint32(i))
		binary.BigEndian.PutUint32(buf[off+4:off+8], uint32(v))
		off += intRecordSize
		return true
	})
	return buf
}

func decodeIntEntries(data []byte) (*intMap, error) {
	if len(data) < 4 {
		return nil, coreerrors.NewErrCorrupt(errShortHeader)
	}
	count := binary.BigEndian.Uint32(data[0:4])
	want := 4 + int64(count)*intRecordSize
	if want < 0 || int64(len(data)) != want {
		return nil, coreerrors.NewErrCorrupt(errLengthMismatch)
	}
	m := newIntMap()
	off := 4
	for i := uint32(0); i < count; i++ {
		idx := int32(binary.BigEndian.Uint32(data[off : off+4]))
		val := int32(binary.BigEndian.Uint32(data[off+4 : off+8]))
		m.Put(idx, val)
		off += intRecordSize
	}
	return m, nil
}

// SerializeIntVector encodes v in the wire format described above.
func SerializeIntVector(v IntSparseVector) []byte {
	return v.Serialize()
}

// DeserializeIntVector decodes the wire format produced by Serialize back
// into a mutable vector. A nil or empty input decodes to the zero vector.
func DeserializeIntVector(data []byte) (*MutableIntSparseVector, error) {
	if len(data) == 0 {
		return NewMutableIntSparseVector(), nil
	}
	m, err := decodeIntEntries(data)
	if err != nil {
		return nil, err
	}
	return &MutableIntSparseVector{entries: m}, nil
}

type simpleErr string

func (e simpleErr) Error() string { return string(e) }

const (
	errShortHeader    simpleErr = "sparse vector: truncated header"
	errLengthMismatch simpleErr = "sparse vector: payload length does not match declared entry count"
)

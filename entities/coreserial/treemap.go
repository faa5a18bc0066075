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

// Package coreserial holds wire codecs shared by Family A structures that
// don't warrant their own package: today, the TreeMap<Long,Long> layout
// from §4.3, used to persist auxiliary int64->int64 side tables (segment
// generation counters, index checkpoints) alongside a SegmentedBitSet or
// SparseVector.
package coreserial

import (
	"encoding/binary"
	"sort"

	"github.com/weaviate/weaviate-core/entities/coreerrors"
)

const int64MapRecordSize = 8 + 8

// EncodeInt64Map serializes m in ascending key order: int32 count, then
// (int64 key, int64 value) per entry, big-endian - matching
// entities/bitset and entities/sparsevector's codecs.
func EncodeInt64Map(m map[int64]int64) []byte {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	buf := make([]byte, 4+len(keys)*int64MapRecordSize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(keys)))
	off := 4
	for _, k := range keys {
		binary.BigEndian.PutUint64(buf[off:off+8], uint64(k))
		binary.BigEndian.PutUint64(buf[off+8:off+16], uint64(m[k]))
		off += int64MapRecordSize
	}
	return buf
}

// DecodeInt64Map parses the layout produced by EncodeInt64Map. A nil or
// empty input decodes to an empty, non-nil map.
func DecodeInt64Map(data []byte) (map[int64]int64, error) {
	if len(data) == 0 {
		return map[int64]int64{}, nil
	}
	if len(data) < 4 {
		return nil, coreerrors.NewErrCorrupt(errShortHeader)
	}
	count := binary.BigEndian.Uint32(data[0:4])
	want := 4 + int64(count)*int64MapRecordSize
	if want < 0 || int64(len(data)) != want {
		return nil, coreerrors.NewErrCorrupt(errLengthMismatch)
	}

	out := make(map[int64]int64, count)
	off := 4
	for i := uint32(0); i < count; i++ {
		key := int64(binary.BigEndian.Uint64(data[off : off+8]))
		val := int64(binary.BigEndian.Uint64(data[off+8 : off+16]))
		out[key] = val
		off += int64MapRecordSize
	}
	return out, nil
}

type simpleErr string

func (e simpleErr) Error() string { return string(e) }

const (
	errShortHeader    simpleErr = "treemap: truncated header"
	errLengthMismatch simpleErr = "treemap: payload length does not match declared entry count"
)

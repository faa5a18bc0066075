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

package bitset

import (
	"encoding/binary"

	"github.com/weaviate/weaviate-core/entities/coreerrors"
)

// On-disk layout (big-endian, network byte order):
//
//	int32  segment count
//	[count] x (int64 start, int64 end)
//
// The format carries no version byte: it is a fixed, self-describing
// layout and is expected to evolve by wrapping, not by extension.
const segmentRecordSize = 8 + 8

func encodeSegments(m *segmentMap) []byte {
	n := m.Len()
	buf := make([]byte, 4+n*segmentRecordSize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(n))
	off := 4
	m.Ascend(func(start, end int64) bool {
		binary.BigEndian.PutUint64(buf[off:off+8], uint64(start))
		binary.BigEndian.PutUint64(buf[off+8:off+16], uint64(end))
		off += segmentRecordSize
		return true
	})
	return buf
}

// decodeSegments parses the wire format into a fresh segmentMap. Input does
// not need to be canonical: overlapping or adjacent records are merged via
// addAll, matching Deserialize's documented tolerance of non-canonical
// producers.
func decodeSegments(data []byte) (*segmentMap, error) {
	if len(data) < 4 {
		return nil, coreerrors.NewErrCorrupt(errShortHeader)
	}
	count := binary.BigEndian.Uint32(data[0:4])
	want := 4 + int64(count)*segmentRecordSize
	if want < 0 || int64(len(data)) != want {
		return nil, coreerrors.NewErrCorrupt(errLengthMismatch)
	}

	m := newSegmentMap()
	off := 4
	for i := uint32(0); i < count; i++ {
		start := int64(binary.BigEndian.Uint64(data[off : off+8]))
		end := int64(binary.BigEndian.Uint64(data[off+8 : off+16]))
		if start > end {
			return nil, coreerrors.NewErrCorrupt(errInvertedSegment)
		}
		addAll(m, start, end)
		off += segmentRecordSize
	}
	return m, nil
}

// Serialize encodes s in the wire format described above.
func Serialize(s SegmentedBitSet) []byte {
	return s.Serialize()
}

// Deserialize decodes the wire format produced by Serialize/Serialize()
// back into a mutable set. A nil or empty input decodes to an empty set.
func Deserialize(data []byte) (*MutableSegmentedBitSet, error) {
	if len(data) == 0 {
		return NewMutableSegmentedBitSet(), nil
	}
	m, err := decodeSegments(data)
	if err != nil {
		return nil, err
	}
	return &MutableSegmentedBitSet{segs: m}, nil
}

type simpleErr string

func (e simpleErr) Error() string { return string(e) }

const (
	errShortHeader     simpleErr = "segmented bit set: truncated header"
	errLengthMismatch  simpleErr = "segmented bit set: payload length does not match declared segment count"
	errInvertedSegment simpleErr = "segmented bit set: encoded segment has start > end"
)

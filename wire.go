// Package scalgoproto implements a zero-copy binary message format: a
// Writer that constructs structured messages directly in an output
// buffer, and a Reader that validates and hands out bounds-checked
// views over an externally supplied byte slice, with no decoding step.
//
// The wire format is little-endian. Every standard object (table,
// list, text, bytes) starts with a 10-byte header: a 4-byte magic
// followed by a 6-byte (48-bit) size field. A message begins with a
// 10-byte root header: the root magic followed by the 48-bit offset of
// the root table's header (its body starts 10 bytes later).
package scalgoproto

import (
	"encoding/binary"
	"math"

	"github.com/scalgo/scalgoproto/internal/utils"
)

// Wire magics, 4-byte little-endian fingerprints identifying an
// object kind on the wire.
const (
	rootMagic       uint32 = 0xB5C0C4B3
	listMagic       uint32 = 0x3400BB46
	textMagic       uint32 = 0xD812C8F5
	bytesMagic      uint32 = 0xDCDBBE10
	directListMagic uint32 = 0xE2C6CC05

	// tableMagic is rootMagic reused: a table header is byte-identical
	// to the root header's magic, since the root is itself just a
	// pointer to "the" table. There is no distinct TABLE wire constant.
	tableMagic = rootMagic
)

const (
	// headerSize is the standard object header: 4-byte magic + 6-byte size.
	headerSize = 10

	// directListSubHeaderSize is the {elemMagic, elemSize} pair that
	// immediately follows a direct list's standard header.
	directListSubHeaderSize = 8

	// maxSize48 is the largest value a 48-bit size field can hold.
	maxSize48 = 1<<48 - 1

	// maxDirectListItemSize is the largest per-element byte width a
	// direct list's sub-header may declare.
	maxDirectListItemSize = 65534

	// enumUnsetByte is the sentinel byte written into freshly
	// allocated enum list slots to mean "unset", and the value GetEnum
	// returns for a field past the end of a short table body.
	enumUnsetByte = 0xFF
)

// Strides, in bytes, of a single element/field slot for each kind
// (see spec §3's list-stride table and §4.4's dispatch table). Bool
// has no fixed byte stride; it is packed at 1 bit per element and
// handled separately.
const (
	strideEnum  = 1
	strideText  = 6
	strideBytes = 6
	strideTable = 6
	strideUnion = 8
)

func readUint48(b []byte) uint64 {
	_ = b[5]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 |
		uint64(b[3])<<24 | uint64(b[4])<<32 | uint64(b[5])<<40
}

func putUint48(b []byte, v uint64) {
	_ = b[5]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
}

func readMagic(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func putMagic(b []byte, m uint32) {
	binary.LittleEndian.PutUint32(b, m)
}

func readUint16(b []byte) uint16  { return binary.LittleEndian.Uint16(b) }
func writeUint16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func readUint32(b []byte) uint32  { return binary.LittleEndian.Uint32(b) }
func writeUint32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func readUint64(b []byte) uint64  { return binary.LittleEndian.Uint64(b) }
func writeUint64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
func readFloat32(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) }
func writeFloat32(b []byte, v float32) { binary.LittleEndian.PutUint32(b, math.Float32bits(v)) }
func readFloat64(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) }
func writeFloat64(b []byte, v float64) { binary.LittleEndian.PutUint64(b, math.Float64bits(v)) }

// endOffset computes start + count*stride + extra, rejecting overflow
// and any value over the 48-bit size limit or the given buffer size.
// It is the Go rendering of spec §4.2's bound check
// "offset + 10 + size*STRIDE + EXTRA <= buffer_size", generalized so
// callers pass whichever "start" they already validated.
func endOffset(start, count, stride, extra, bufSize int) (int, bool) {
	if start < 0 || count < 0 || stride < 0 || extra < 0 {
		return 0, false
	}
	if uint64(count) > maxSize48 {
		return 0, false
	}
	payload, err := utils.SafeMultiply(uint64(count), uint64(stride))
	if err != nil {
		return 0, false
	}
	total := uint64(start) + payload + uint64(extra)
	if total > uint64(bufSize) {
		return 0, false
	}
	return int(total), true
}

// endOffsetBits is endOffset's counterpart for bit-packed bool lists,
// whose size field counts bits rather than bytes (spec §3: "ceil(size/8)
// bytes").
func endOffsetBits(start, bitCount, extra, bufSize int) (int, bool) {
	if bitCount < 0 || uint64(bitCount) > maxSize48 {
		return 0, false
	}
	byteLen := (bitCount + 7) / 8
	return endOffset(start, 1, byteLen, extra, bufSize)
}

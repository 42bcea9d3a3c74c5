package format

import "encoding/binary"

// Binary encoding utilities for little-endian words.
//
// All region metadata (headers, footers, links) is read and written through
// these helpers, never through typed views of the buffer. That keeps the
// engine free of aliasing assumptions: the same bytes are handed out as
// untyped payload once a chunk is taken.
//
// Implementation: Uses encoding/binary.LittleEndian. The compiler inlines and
// optimizes these calls well; unsafe variants buy nothing measurable.

// ReadWord reads the signed 32-bit word at word offset off.
func ReadWord(b []byte, off uint32) int32 {
	i := int(off) << WordShift
	return int32(binary.LittleEndian.Uint32(b[i : i+WordSize]))
}

// PutWord writes the signed 32-bit word v at word offset off.
func PutWord(b []byte, off uint32, v int32) {
	i := int(off) << WordShift
	binary.LittleEndian.PutUint32(b[i:i+WordSize], uint32(v))
}

// ReadLink reads the unsigned link word at word offset off.
func ReadLink(b []byte, off uint32) uint32 {
	i := int(off) << WordShift
	return binary.LittleEndian.Uint32(b[i : i+WordSize])
}

// PutLink writes the unsigned link word v at word offset off.
func PutLink(b []byte, off uint32, v uint32) {
	i := int(off) << WordShift
	binary.LittleEndian.PutUint32(b[i:i+WordSize], v)
}

package arena

import (
	"github.com/arenakit/arenakit/internal/format"
)

// Region is a word-addressed view over a caller-supplied byte buffer.
//
// The zero value is not usable; construct with NewRegion. A Region holds no
// resources of its own and needs no teardown: releasing the underlying buffer
// (if it needs releasing at all) is the caller's business, after the Region
// and anything built on it are no longer used.
type Region struct {
	data []byte
}

// NewRegion wraps buf. The buffer must be at least 16 bytes long and a
// multiple of 4 bytes.
func NewRegion(buf []byte) (*Region, error) {
	if len(buf) < format.MinRegionBytes {
		return nil, ErrRegionSmall
	}
	if len(buf)%format.WordSize != 0 {
		return nil, ErrRegionAlign
	}
	return &Region{data: buf}, nil
}

// Bytes returns the underlying buffer.
func (r *Region) Bytes() []byte {
	return r.data
}

// Len returns the buffer length in bytes.
func (r *Region) Len() int {
	return len(r.data)
}

// Words returns the buffer length in 32-bit words.
func (r *Region) Words() uint32 {
	return uint32(len(r.data) >> format.WordShift)
}

// Word reads the signed word at word offset off.
func (r *Region) Word(off uint32) int32 {
	return format.ReadWord(r.data, off)
}

// SetWord writes the signed word v at word offset off.
func (r *Region) SetWord(off uint32, v int32) {
	format.PutWord(r.data, off, v)
}

// Link reads the unsigned link word at word offset off.
func (r *Region) Link(off uint32) uint32 {
	return format.ReadLink(r.data, off)
}

// SetLink writes the unsigned link word v at word offset off.
func (r *Region) SetLink(off uint32, v uint32) {
	format.PutLink(r.data, off, v)
}

package arena

import (
	"github.com/arenakit/arenakit/internal/format"
)

// Chunk primitives. A chunk is identified by the word offset of its header;
// format.NilOffset means "no chunk". Callers are expected to pass offsets that
// lie inside the region; only the adjacency walks, which can step outside it,
// and MetaOK, which validates untrusted offsets, perform boundary checks.

// Header returns the raw signed header word of the chunk at off. Negative
// means taken, positive means free. A zero header is never valid.
func (r *Region) Header(off uint32) int32 {
	return r.Word(off)
}

// ChunkWords returns the payload size of the chunk at off, in words,
// regardless of status.
func (r *Region) ChunkWords(off uint32) int32 {
	return abs32(r.Word(off))
}

// SpanWords returns the total span of the chunk at off including both tags.
func (r *Region) SpanWords(off uint32) uint32 {
	return uint32(r.ChunkWords(off)) + format.ChunkOverheadWords
}

// FooterOff returns the word offset of the chunk's footer.
func (r *Region) FooterOff(off uint32) uint32 {
	return off + 1 + uint32(r.ChunkWords(off))
}

// SetChunkSize writes size into both the header and the footer of the chunk
// at off. The sign of size carries the taken/free status; its absolute value
// must already be a valid payload size for the chunk's position.
func (r *Region) SetChunkSize(off uint32, size int32) {
	r.SetWord(off, size)
	r.SetWord(off+1+uint32(abs32(size)), size)
}

// MetaOK reports whether the chunk at off has a matching header and footer.
// Out-of-range offsets and footers are reported as corrupt rather than read.
func (r *Region) MetaOK(off uint32) bool {
	words := r.Words()
	if off >= words {
		return false
	}
	h := r.Word(off)
	if h == 0 {
		return false
	}
	foot := off + 1 + uint32(abs32(h))
	if foot >= words {
		return false
	}
	return h == r.Word(foot)
}

// AdjNext returns the chunk starting immediately after the footer of the
// chunk at off, or ok=false when that position is at or beyond the region end.
func (r *Region) AdjNext(off uint32) (uint32, bool) {
	next := off + r.SpanWords(off)
	if next >= r.Words() {
		return format.NilOffset, false
	}
	return next, true
}

// AdjPrev returns the chunk ending immediately before the chunk at off, found
// by reading the word preceding off as the neighbor's footer. ok=false when
// off is at the region base or the footer does not describe a chunk that fits
// before off.
func (r *Region) AdjPrev(off uint32) (uint32, bool) {
	if off == 0 {
		return format.NilOffset, false
	}
	size := abs32(r.Word(off - 1))
	span := uint32(size) + format.ChunkOverheadWords
	if span > off {
		return format.NilOffset, false
	}
	return off - span, true
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

package alloc

import (
	"github.com/arenakit/arenakit/internal/format"
)

// coalesce merges the free chunk at off with every adjacent free neighbor in
// the given directions and returns the surviving chunk. The chunk must be
// free (positive header) and out of the free lists; neighbors are unlinked as
// they are absorbed. On return the chunk is still out of the lists and none
// of its neighbors is free.
func (h *Heap) coalesce(off uint32, dir direction) uint32 {
	if dir&coalesceRight != 0 {
		for {
			next, ok := h.r.AdjNext(off)
			if !ok || h.r.Header(next) <= 0 {
				break
			}
			h.removeFree(next)
			off = h.join(off, next)
			h.stats.CoalesceRight++
		}
	}

	if dir&coalesceLeft != 0 {
		for {
			prev, ok := h.r.AdjPrev(off)
			if !ok || h.r.Header(prev) <= 0 {
				break
			}
			h.removeFree(prev)
			off = h.join(prev, off)
			h.stats.CoalesceLeft++
		}
	}

	return off
}

// join merges two adjacent free chunks into one at the left position. The +2
// reclaims the interior footer/header pair as payload.
func (h *Heap) join(left, right uint32) uint32 {
	size := h.r.Header(left) + h.r.Header(right) + format.ChunkOverheadWords
	h.r.SetChunkSize(left, size)
	return left
}

// probe measures the span a coalesce in the given directions would produce,
// in words including tags, without modifying anything. It visits exactly the
// neighbors coalesce would absorb.
func (h *Heap) probe(off uint32, dir direction) uint32 {
	space := h.r.SpanWords(off)

	if dir&coalesceRight != 0 {
		for next, ok := h.r.AdjNext(off); ok && h.r.Header(next) > 0; next, ok = h.r.AdjNext(next) {
			space += h.r.SpanWords(next)
		}
	}

	if dir&coalesceLeft != 0 {
		for prev, ok := h.r.AdjPrev(off); ok && h.r.Header(prev) > 0; prev, ok = h.r.AdjPrev(prev) {
			space += h.r.SpanWords(prev)
		}
	}

	return space
}

// transfer copies n payload words from srcOff to dstOff. The ranges may
// overlap; copy carries memmove semantics either direction.
func (h *Heap) transfer(dstOff, srcOff uint32, n int32) {
	if dstOff == srcOff || n <= 0 {
		return
	}
	b := h.r.Bytes()
	d := int(dstOff) << format.WordShift
	s := int(srcOff) << format.WordShift
	size := int(n) << format.WordShift
	copy(b[d:d+size], b[s:s+size])
}

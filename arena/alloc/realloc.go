package alloc

import (
	"github.com/arenakit/arenakit/internal/format"
)

// Realloc resizes the allocation behind ref to n bytes, preserving the
// payload prefix. Realloc(NilRef, n) is Alloc(n); Realloc(ref, 0) is
// Free(ref) and returns NilRef. A ref that fails the metadata check or whose
// chunk is free yields an error and no state change, and a relocation whose
// fresh allocation fails leaves the old chunk untouched.
//
// Four cases, tried in order:
//
//  1. The chunk already holds n bytes: same ref. The unused tail is not
//     split off, even when it could be.
//  2. Absorbing free chunks to the right satisfies n: coalesce right and
//     re-carve in place. The payload address does not move, so nothing is
//     copied.
//  3. Absorbing both directions satisfies n: coalesce around, re-carve, and
//     move the payload words to their new position.
//  4. Otherwise: allocate a fresh chunk, copy the payload, release the old.
func (h *Heap) Realloc(ref Ref, n int) (Ref, []byte, error) {
	h.stats.ReallocCalls++

	if ref == NilRef {
		off, err := h.allocate(n, false)
		if err != nil {
			return NilRef, nil, err
		}
		h.stats.WordsAllocated += int64(h.r.ChunkWords(off))
		return refFor(off), h.payload(off), nil
	}

	if n <= 0 {
		off, err := h.chunkAt(ref)
		if err != nil {
			return NilRef, nil, err
		}
		if h.r.Header(off) >= 0 {
			return NilRef, nil, ErrNotTaken
		}
		h.stats.WordsFreed += int64(h.r.ChunkWords(off))
		h.deallocate(off)
		return NilRef, nil, nil
	}

	off, err := h.chunkAt(ref)
	if err != nil {
		return NilRef, nil, err
	}
	if h.r.Header(off) >= 0 {
		return NilRef, nil, ErrNotTaken
	}

	off, err = h.reallocate(off, n)
	if err != nil {
		return NilRef, nil, err
	}
	return refFor(off), h.payload(off), nil
}

func (h *Heap) reallocate(off uint32, n int) (uint32, error) {
	words := format.WordsFor(n)
	if words > format.MaxChunkWords {
		return 0, ErrTooLarge
	}
	size := int32(words)
	cur := h.r.ChunkWords(off)

	// Case 1: already big enough. The tail stays with the chunk.
	if cur >= size {
		h.stats.ResizeInPlace++
		return off, nil
	}

	// Payload source, saved before any tags move.
	srcOff := off + 1
	numWords := cur

	// Case 2: growing into free chunks on the right keeps the payload where
	// it is. The -2 converts the probed span into a payload size.
	grown := h.probe(off, coalesceRight) - format.ChunkOverheadWords
	if grown >= uint32(size) {
		h.stats.ResizeRight++
		h.r.SetChunkSize(off, cur)
		off = h.coalesce(off, coalesceRight)
		h.allocateChunk(off, n, false)
		return off, nil
	}

	// Case 3: count the left side too, minus this chunk's span which both
	// probes included.
	grown += h.probe(off, coalesceLeft) - h.r.SpanWords(off)
	if grown >= uint32(size) {
		h.stats.ResizeAround++
		h.r.SetChunkSize(off, cur)
		off = h.coalesce(off, coalesceBoth)
		// coalesce only touches tags, so the source words are intact. The
		// move happens before the carve: a split would plant the remainder's
		// tags and links inside payload that has not been copied out yet.
		h.transfer(off+1, srcOff, numWords)
		h.allocateChunk(off, n, false)
		return off, nil
	}

	// Case 4: relocate. A failed allocation leaves the old chunk untouched.
	newOff, err := h.allocate(n, false)
	if err != nil {
		return 0, err
	}
	h.stats.ResizeMove++
	h.stats.WordsAllocated += int64(h.r.ChunkWords(newOff))
	h.transfer(newOff+1, srcOff, numWords)
	h.stats.WordsFreed += int64(numWords)
	h.deallocate(off)
	return newOff, nil
}

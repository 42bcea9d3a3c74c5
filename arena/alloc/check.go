package alloc

import (
	"fmt"

	"github.com/arenakit/arenakit/internal/format"
)

// CheckIntegrity walks the whole region and the free-list set and verifies
// every structural invariant:
//
//   - chunks tile the region exactly
//   - every header equals its footer, and no size is below the minimum
//   - no two adjacent chunks are both free
//   - every free chunk appears in exactly one list, in the class the
//     size-class function assigns it
//   - list links are mutually consistent and each list is ordered by
//     non-decreasing size
//
// It returns nil when the heap is sound, or an error naming the first
// violation found. The walk is linear in the number of chunks; it is meant
// for tests and offline inspection, not hot paths.
func (h *Heap) CheckIntegrity() error {
	r := h.r
	words := r.Words()

	free := make(map[uint32]int32)
	var span uint32
	prevFree := false

	for off := uint32(0); off < words; {
		if !r.MetaOK(off) {
			return fmt.Errorf("alloc: chunk at word %d: header/footer mismatch", off)
		}
		size := r.ChunkWords(off)
		if size < format.MinChunkWords {
			return fmt.Errorf("alloc: chunk at word %d: size %d below minimum", off, size)
		}
		isFree := r.Header(off) > 0
		if isFree && prevFree {
			return fmt.Errorf("alloc: adjacent free chunks at word %d", off)
		}
		if isFree {
			free[off] = size
		}
		prevFree = isFree
		span += r.SpanWords(off)
		off += r.SpanWords(off)
	}
	if span != words {
		return fmt.Errorf("alloc: chunks span %d words, region has %d", span, words)
	}

	seen := make(map[uint32]bool)
	for class := 0; class < format.NumClasses; class++ {
		prev := format.NilOffset
		last := int32(0)
		for off := h.lists[class]; off != format.NilOffset; off = h.fwd(off) {
			size, ok := free[off]
			if !ok {
				return fmt.Errorf("alloc: class %d links to non-free chunk at word %d", class, off)
			}
			if seen[off] {
				return fmt.Errorf("alloc: chunk at word %d linked more than once", off)
			}
			seen[off] = true
			if got := h.classFor(size); got != class {
				return fmt.Errorf("alloc: chunk at word %d (size %d) filed in class %d, want %d",
					off, size, class, got)
			}
			if h.bck(off) != prev {
				return fmt.Errorf("alloc: chunk at word %d: broken backward link", off)
			}
			if size < last {
				return fmt.Errorf("alloc: class %d not ordered by size at word %d", class, off)
			}
			last = size
			prev = off
		}
	}
	if len(seen) != len(free) {
		return fmt.Errorf("alloc: %d free chunks in region, %d threaded into lists",
			len(free), len(seen))
	}

	return nil
}

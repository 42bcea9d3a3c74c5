package alloc

import (
	"github.com/arenakit/arenakit/internal/format"
)

// Free-list set: eight doubly linked lists of free chunks, segregated by size
// class. The links live in the first two payload words of each free chunk and
// are word offsets into the region, NilOffset-terminated.

// fwd and bck follow a free chunk's links.
func (h *Heap) fwd(off uint32) uint32 { return h.r.Link(off + 1) }
func (h *Heap) bck(off uint32) uint32 { return h.r.Link(off + 2) }

func (h *Heap) setFwd(off, v uint32) { h.r.SetLink(off+1, v) }
func (h *Heap) setBck(off, v uint32) { h.r.SetLink(off+2, v) }

// classFor returns the size class for a chunk of the given payload size: the
// smallest i with |size| < 2^((i+1)·power), or the last class when none
// matches.
func (h *Heap) classFor(size int32) int {
	a := int64(size)
	if a < 0 {
		a = -a
	}
	bound := int64(1) << h.power
	for i := 0; i < format.NumClasses; i++ {
		if a < bound {
			return i
		}
		bound <<= h.power
	}
	return format.NumClasses - 1
}

// addFree files a free chunk into its class list, keeping the list ordered by
// non-decreasing size. Equal-sized chunks land behind their equals.
func (h *Heap) addFree(off uint32) {
	class := h.classFor(h.r.Header(off))

	if h.lists[class] == format.NilOffset {
		h.lists[class] = off
		h.setFwd(off, format.NilOffset)
		h.setBck(off, format.NilOffset)
		return
	}

	size := h.r.Header(off)
	prev := format.NilOffset
	for curr := h.lists[class]; curr != format.NilOffset; curr = h.fwd(curr) {
		if size < h.r.Header(curr) {
			if prev == format.NilOffset {
				// New head
				h.lists[class] = off
				h.setBck(curr, off)
				h.setFwd(off, curr)
				h.setBck(off, format.NilOffset)
			} else {
				// Insert between prev and curr
				h.setFwd(prev, off)
				h.setBck(curr, off)
				h.setFwd(off, curr)
				h.setBck(off, prev)
			}
			return
		}
		prev = curr
	}

	// Largest in its class: append at the tail.
	h.setFwd(prev, off)
	h.setBck(off, prev)
	h.setFwd(off, format.NilOffset)
}

// removeFree unlinks a free chunk from its class list. The four cases
// (alone, head, tail, middle) are distinct.
func (h *Heap) removeFree(off uint32) {
	class := h.classFor(h.r.Header(off))
	prev := h.bck(off)
	next := h.fwd(off)

	switch {
	case prev == format.NilOffset && next == format.NilOffset:
		h.lists[class] = format.NilOffset
	case prev == format.NilOffset:
		h.lists[class] = next
		h.setBck(next, format.NilOffset)
	case next == format.NilOffset:
		h.setFwd(prev, format.NilOffset)
	default:
		h.setFwd(prev, next)
		h.setBck(next, prev)
	}
}

// findBest returns the smallest-fitting free chunk for a request of size
// words. The walk starts at the request's own class and moves up; within a
// class the ordered insertion makes the first fit the best fit.
func (h *Heap) findBest(size int32) (uint32, bool) {
	for class := h.classFor(size); class < format.NumClasses; class++ {
		for off := h.lists[class]; off != format.NilOffset; off = h.fwd(off) {
			if h.r.Header(off) >= size {
				return off, true
			}
		}
	}
	return 0, false
}

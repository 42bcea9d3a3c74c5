package alloc

import (
	"fmt"
	"io"

	"github.com/arenakit/arenakit/internal/format"
)

// Dump writes a human-readable chunk map of the region to w: one line per
// chunk with its word offset, span, payload size, status, and (for free
// chunks) size class, followed by the taken/free chunk counts and the full
// contents of every non-empty free list.
func (h *Heap) Dump(w io.Writer) {
	r := h.r
	words := r.Words()
	fmt.Fprintf(w, "region: %d words (%d bytes), power=%d\n", words, r.Len(), h.power)

	var taken, freeChunks int
	for off := uint32(0); off < words; {
		if !r.MetaOK(off) {
			fmt.Fprintf(w, "  %8d  CORRUPT header=%d\n", off, r.Header(off))
			return
		}
		size := r.ChunkWords(off)
		if r.Header(off) < 0 {
			taken++
			fmt.Fprintf(w, "  %8d  taken size=%-8d span=%d\n", off, size, r.SpanWords(off))
		} else {
			freeChunks++
			fmt.Fprintf(w, "  %8d  free  size=%-8d span=%d class=%d\n",
				off, size, r.SpanWords(off), h.classFor(size))
		}
		off += r.SpanWords(off)
	}

	fmt.Fprintf(w, "chunks: %d taken, %d free\n", taken, freeChunks)
	for class, head := range h.lists {
		if head == format.NilOffset {
			continue
		}
		fmt.Fprintf(w, "class %d:", class)
		for off := head; off != format.NilOffset; off = h.fwd(off) {
			fmt.Fprintf(w, " %d(%d)", off, r.ChunkWords(off))
		}
		fmt.Fprintln(w)
	}
}

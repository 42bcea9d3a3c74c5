package alloc

import (
	"fmt"
	"os"

	"github.com/arenakit/arenakit/arena"
	"github.com/arenakit/arenakit/internal/format"
)

// Debug flag - set to true to enable verbose logging (compile-time toggle).
const debugAlloc = false

// Runtime debug flag for allocation logging - controlled by ARENAKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("ARENAKIT_LOG_ALLOC") != ""

// Heap is the allocator state over one region: the size-class exponent and
// the eight free-list head offsets. Everything else lives in-band in the
// region itself.
type Heap struct {
	r     *arena.Region
	power uint32
	lists [format.NumClasses]uint32

	// Statistics for testing and instrumentation
	stats Stats
}

// New initializes a Heap over r: the whole region becomes a single free
// chunk and is filed into its size class. Any previous contents of the
// buffer are clobbered. power is the size-class base exponent, 1 to 8.
func New(r *arena.Region, power uint32) (*Heap, error) {
	h, err := newHeap(r, power)
	if err != nil {
		return nil, err
	}

	// One chunk spanning the arena: buf[0] and buf[words-1] both carry
	// words-2, positive.
	r.SetChunkSize(0, int32(int64(r.Words())-format.ChunkOverheadWords))
	h.addFree(0)
	return h, nil
}

// Attach builds a Heap over a region previously laid out by New, without
// disturbing its contents. The chunk tiling is walked end to end and every
// free chunk is filed back into its class list. Returns ErrBadMeta when the
// tiling does not parse.
func Attach(r *arena.Region, power uint32) (*Heap, error) {
	h, err := newHeap(r, power)
	if err != nil {
		return nil, err
	}

	words := r.Words()
	for off := uint32(0); off < words; {
		if !r.MetaOK(off) {
			return nil, fmt.Errorf("chunk at word %d: %w", off, ErrBadMeta)
		}
		if r.ChunkWords(off) < format.MinChunkWords {
			return nil, fmt.Errorf("chunk at word %d: size below minimum: %w", off, ErrBadMeta)
		}
		if r.Header(off) > 0 {
			h.addFree(off)
		}
		next := off + r.SpanWords(off)
		if next > words {
			return nil, fmt.Errorf("chunk at word %d: runs past region end: %w", off, ErrBadMeta)
		}
		off = next
	}
	return h, nil
}

func newHeap(r *arena.Region, power uint32) (*Heap, error) {
	if power < format.MinPower || power > format.MaxPower {
		return nil, ErrBadPower
	}
	if int64(r.Words())-format.ChunkOverheadWords > format.MaxChunkWords {
		return nil, ErrRegionLarge
	}

	h := &Heap{r: r, power: power}
	for i := range h.lists {
		h.lists[i] = format.NilOffset
	}
	return h, nil
}

// Region returns the region this heap allocates from.
func (h *Heap) Region() *arena.Region {
	return h.r
}

// Alloc allocates n bytes and returns the ref plus the chunk's payload bytes.
// The payload may be longer than n: it always covers the chunk's full word
// count. Fails with ErrNeedSmall, ErrTooLarge, or ErrNoSpace; a failed call
// leaves the region untouched.
func (h *Heap) Alloc(n int) (Ref, []byte, error) {
	h.stats.AllocCalls++
	off, err := h.allocate(n, false)
	if err != nil {
		return NilRef, nil, err
	}
	h.stats.WordsAllocated += int64(h.r.ChunkWords(off))
	return refFor(off), h.payload(off), nil
}

// AllocZeroed allocates nmemb elements of size bytes each and clears exactly
// the requested payload words.
func (h *Heap) AllocZeroed(nmemb, size int) (Ref, []byte, error) {
	h.stats.AllocCalls++
	if nmemb < 0 || size < 0 {
		return NilRef, nil, ErrNeedSmall
	}
	if size > 0 && nmemb > int(^uint(0)>>1)/size {
		return NilRef, nil, ErrTooLarge
	}
	off, err := h.allocate(nmemb*size, true)
	if err != nil {
		return NilRef, nil, err
	}
	h.stats.WordsAllocated += int64(h.r.ChunkWords(off))
	return refFor(off), h.payload(off), nil
}

// Free releases the chunk behind ref, coalescing it with any free neighbors.
// A NilRef is a no-op. A ref whose chunk fails the header/footer check, or
// whose chunk is already free, leaves the region untouched and reports
// ErrBadMeta or ErrNotTaken.
func (h *Heap) Free(ref Ref) error {
	h.stats.FreeCalls++
	if ref == NilRef {
		return nil
	}
	off, err := h.chunkAt(ref)
	if err != nil {
		return err
	}
	if h.r.Header(off) >= 0 {
		return ErrNotTaken
	}
	h.stats.WordsFreed += int64(h.r.ChunkWords(off))
	h.deallocate(off)
	return nil
}

// allocate finds, unlinks, and carves a chunk for an n-byte request.
func (h *Heap) allocate(n int, clear bool) (uint32, error) {
	if n <= 0 {
		return 0, ErrNeedSmall
	}
	words := format.WordsFor(n)
	if words > format.MaxChunkWords {
		return 0, ErrTooLarge
	}

	off, ok := h.findBest(int32(words))
	if !ok {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ALLOC] no fit: need=%d words\n", words)
		}
		debugLogf("allocate(%d): no chunk in classes %d..%d",
			n, h.classFor(int32(words)), format.NumClasses-1)
		return 0, ErrNoSpace
	}
	h.removeFree(off)
	h.allocateChunk(off, n, clear)
	return off, nil
}

// allocateChunk applies an n-byte request to a chunk that is already out of
// the free lists: split when the remainder can stand alone, clear on request,
// then flip the tags negative.
func (h *Heap) allocateChunk(off uint32, n int, clear bool) {
	size := int32(format.WordsFor(n))
	if size < format.MinChunkWords {
		size = format.MinChunkWords
	}

	// Split when carving out size plus a fresh tag pair still leaves room for
	// a minimum free chunk.
	span := h.r.SpanWords(off)
	if span >= uint32(size)+2*format.ChunkOverheadWords+format.MinChunkWords {
		h.stats.Splits++

		avail := int32(span) - 2*format.ChunkOverheadWords
		h.r.SetChunkSize(off, size)

		rem := off + uint32(size) + format.ChunkOverheadWords
		h.r.SetChunkSize(rem, avail-size)
		h.addFree(rem)
	}
	// When not splitting, the whole chunk is consumed and its stale link
	// words are dead payload. They are deliberately not cleared: on the
	// resize-in-place paths those words hold live caller data.

	if clear {
		for i := uint32(0); i < uint32(format.WordsFor(n)); i++ {
			h.r.SetWord(off+1+i, 0)
		}
	}

	h.r.SetChunkSize(off, -h.r.ChunkWords(off))
}

// deallocate marks a taken chunk free, merges it maximally with its
// neighbors, and files the result.
func (h *Heap) deallocate(off uint32) {
	h.r.SetChunkSize(off, h.r.ChunkWords(off))
	off = h.coalesce(off, coalesceBoth)
	h.addFree(off)
}

// chunkAt validates ref and returns the chunk offset behind it.
func (h *Heap) chunkAt(ref Ref) (uint32, error) {
	if ref == 0 || ref >= h.r.Words() {
		return 0, ErrBadRef
	}
	off := ref - 1
	if !h.r.MetaOK(off) {
		return 0, ErrBadMeta
	}
	return off, nil
}

// refFor converts a chunk offset to the ref handed to callers: one word past
// the header.
func refFor(off uint32) Ref {
	return off + 1
}

// payload returns the chunk's payload bytes, capacity-clamped.
func (h *Heap) payload(off uint32) []byte {
	start := (int(off) + 1) << format.WordShift
	end := start + int(h.r.ChunkWords(off))<<format.WordShift
	return h.r.Bytes()[start:end:end]
}

// debugLogf prints debug messages if debugAlloc is enabled.
func debugLogf(msg string, args ...any) {
	if debugAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] "+msg+"\n", args...)
	}
}

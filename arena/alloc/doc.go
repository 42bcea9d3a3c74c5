// Package alloc implements a region-based heap allocator over an arena.Region.
//
// # Overview
//
// The allocator manages one caller-supplied buffer with in-band boundary
// tags: every chunk carries a signed 32-bit size word at its start and an
// identical footer word at its end. A negative header means the chunk is
// taken; a positive header means it is free. Free chunks thread themselves
// into segregated free lists using their first two payload words as forward
// and backward links, so the allocator needs no memory of its own beyond the
// Heap state.
//
// # Operations
//
//   - Alloc(n): best-fit allocation of n bytes, splitting the chosen chunk
//     when the remainder can stand alone as a free chunk
//   - AllocZeroed(nmemb, size): Alloc with the payload words cleared
//   - Realloc(ref, n): four-case resize — in place, coalesce-right in place,
//     coalesce-around with copy, or relocate
//   - Free(ref): release with maximal coalescing into both neighbors
//
// # Size classes
//
// Eight free lists partition free chunks by payload word count. With the
// class exponent power = p, class i holds chunks of size S where
// S < 2^((i+1)·p) and no smaller class matches; everything past the last
// boundary lands in class 7. With p=2 the class upper bounds are
//
//	Class 0:     < 4 words
//	Class 1:     < 16 words
//	Class 2:     < 64 words
//	Class 3:     < 256 words
//	Class 4:     < 1024 words
//	Class 5:     < 4096 words
//	Class 6:     < 16384 words
//	Class 7:     everything larger
//
// Each list is kept ordered by non-decreasing size, so the first fitting
// chunk found in a class is the smallest fitting chunk in that class.
//
// # Usage
//
//	r, err := arena.NewRegion(buf)
//	if err != nil {
//	    return err
//	}
//	h, err := alloc.New(r, 2)
//	if err != nil {
//	    return err
//	}
//
//	ref, payload, err := h.Alloc(256)
//	if err != nil {
//	    return err
//	}
//	copy(payload, record)
//
//	// Later, release the chunk
//	err = h.Free(ref)
//
// # Limits
//
// The taken/free status lives in the sign bit of the size word, which caps a
// single chunk at 2^31-1 words (8 GiB of payload) and bounds the region the
// same way.
//
// # Thread safety
//
// Heap instances are not thread-safe. Callers sharing a region across
// goroutines must serialize every call externally; independent Heaps over
// disjoint regions need no coordination.
package alloc

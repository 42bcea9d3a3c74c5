package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ReallocShrinkKeepsChunk(t *testing.T) {
	// Shrinking (or asking for what is already there) returns the same ref
	// and does not split off the tail.
	h, r := newTestHeap(t, 32, 2)

	ref, payload, err := h.Alloc(40) // 10 words
	require.NoError(t, err)
	for i := range payload {
		payload[i] = byte(i)
	}

	ref2, payload2, err := h.Realloc(ref, 8)
	require.NoError(t, err)
	require.Equal(t, ref, ref2)
	require.Len(t, payload2, 40, "tail is not reclaimed on shrink")
	require.Equal(t, payload[:8], payload2[:8])
	require.Equal(t, int32(-10), r.Word(0))
	require.Equal(t, 1, h.Stats().ResizeInPlace)
	require.NoError(t, h.CheckIntegrity())
}

func Test_ReallocCoalesceRightInPlace(t *testing.T) {
	// Five 2-word chunks in a 20-word region; release {0,4,1,3} and grow
	// the surviving middle chunk to 12 bytes. It absorbs its right free run
	// and stays at the same address.
	h, refs := fiveChunks(t)
	r := h.Region()

	for _, i := range []int{0, 4, 1, 3} {
		require.NoError(t, h.Free(refs[i]))
	}

	before := append([]byte(nil), r.Bytes()[36:44]...) // live payload words
	ref2, payload2, err := h.Realloc(refs[2], 12)
	require.NoError(t, err)
	require.Equal(t, refs[2], ref2, "payload address unchanged")
	require.Equal(t, int32(-3), r.Word(8))
	require.Equal(t, int32(-3), r.Word(12))
	require.Equal(t, before, payload2[:8], "live words preserved without a copy")
	require.Equal(t, 1, h.Stats().ResizeRight)
	require.NoError(t, h.CheckIntegrity())
}

func Test_ReallocRelocate(t *testing.T) {
	// Same five chunks, but the free space sits left of the live chunk with
	// a taken chunk in between: the resize must relocate into the free run
	// at the region base.
	h, refs := fiveChunks(t)
	r := h.Region()

	for _, i := range []int{0, 1, 2} {
		require.NoError(t, h.Free(refs[i]))
	}

	copy(r.Bytes()[68:76], []byte{1, 2, 3, 4, 5, 6, 7, 8}) // chunk 4 payload words

	ref2, payload2, err := h.Realloc(refs[4], 12)
	require.NoError(t, err)
	require.Equal(t, refs[0], ref2, "relocated into the free run at the base")
	require.Equal(t, int32(-3), r.Word(0))
	require.Equal(t, int32(-3), r.Word(4))
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, payload2[:8])
	require.Equal(t, 1, h.Stats().ResizeMove)
	require.NoError(t, h.CheckIntegrity())

	// The old chunk was released; its left neighbor is taken, so it stays a
	// lone 2-word free chunk.
	require.Equal(t, int32(2), r.Word(16))
}

func Test_ReallocCoalesceAroundPreservesPayload(t *testing.T) {
	// Growing into free space on the left moves the payload. This layout
	// forces the merged chunk to split, planting the remainder's tags where
	// the old payload used to live — the copy must happen first.
	h, r := newTestHeap(t, 24, 2)

	a, _, err := h.Alloc(16) // 4 words at 0
	require.NoError(t, err)
	b, bp, err := h.Alloc(16) // 4 words at 6
	require.NoError(t, err)
	_, _, err = h.Alloc(40) // tail guard, 10 words at 12
	require.NoError(t, err)
	require.NoError(t, h.Free(a))

	pattern := []byte{0xA, 0xB, 0xC, 0xD, 0xE, 0xF, 0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x8, 0x9, 0x0}
	copy(bp, pattern)

	ref2, payload2, err := h.Realloc(b, 20)
	require.NoError(t, err)
	require.Equal(t, Ref(1), ref2, "merged chunk starts at the region base")
	require.Equal(t, int32(-5), r.Word(0))
	require.Equal(t, pattern, payload2[:16])
	require.Equal(t, 1, h.Stats().ResizeAround)
	require.NoError(t, h.CheckIntegrity())
}

func Test_ReallocInPlaceKeepsLinkWords(t *testing.T) {
	// A coalesce-right grow that does not split re-tags the chunk in place.
	// The first two payload words (the link slots of a free chunk) hold
	// live data here and must survive.
	h, r := newTestHeap(t, 16, 2)

	_, _, err := h.Alloc(8)
	require.NoError(t, err)
	_, _, err = h.Alloc(8)
	require.NoError(t, err)
	c, cp, err := h.Alloc(8) // 2 words at 8, free 2-word tail behind it
	require.NoError(t, err)

	copy(cp, []byte{9, 8, 7, 6, 5, 4, 3, 2})

	ref2, payload2, err := h.Realloc(c, 12)
	require.NoError(t, err)
	require.Equal(t, c, ref2)
	require.Equal(t, []byte{9, 8, 7, 6, 5, 4, 3, 2}, payload2[:8], "payload words 0-1 preserved")
	require.NoError(t, h.CheckIntegrity())
	require.Equal(t, int32(-6), r.Word(8), "merged without splitting")
	require.Equal(t, 1, h.Stats().ResizeRight)
}

func Test_ReallocNilIsAlloc(t *testing.T) {
	h, r := newTestHeap(t, 32, 2)

	ref, payload, err := h.Realloc(NilRef, 10)
	require.NoError(t, err)
	require.Equal(t, Ref(1), ref)
	require.Len(t, payload, 12)
	require.Equal(t, int32(-3), r.Word(0))
}

func Test_ReallocZeroIsFree(t *testing.T) {
	h, r := newTestHeap(t, 32, 2)

	ref, _, err := h.Alloc(10)
	require.NoError(t, err)

	ref2, payload, err := h.Realloc(ref, 0)
	require.NoError(t, err)
	require.Equal(t, NilRef, ref2)
	require.Nil(t, payload)
	require.Equal(t, int32(30), r.Word(0), "chunk released and coalesced")

	// The ref is dead now; a second zero-size resize is a double free.
	_, _, err = h.Realloc(ref, 0)
	require.ErrorIs(t, err, ErrNotTaken)
}

func Test_ReallocInvalidRef(t *testing.T) {
	h, r := newTestHeap(t, 32, 2)

	ref, _, err := h.Alloc(10)
	require.NoError(t, err)
	require.NoError(t, h.Free(ref))

	before := append([]byte(nil), r.Bytes()...)

	// Free chunk behind the ref: rejected, untouched.
	_, _, err = h.Realloc(ref, 20)
	require.ErrorIs(t, err, ErrNotTaken)
	require.Equal(t, before, r.Bytes())

	// Out-of-region refs.
	_, _, err = h.Realloc(0, 20)
	require.ErrorIs(t, err, ErrBadRef)
	_, _, err = h.Realloc(9999, 20)
	require.ErrorIs(t, err, ErrBadRef)

	// Torn tags behind a live ref.
	ref, _, err = h.Alloc(10)
	require.NoError(t, err)
	r.SetWord(4, 17)
	before = append([]byte(nil), r.Bytes()...)
	_, _, err = h.Realloc(ref, 20)
	require.ErrorIs(t, err, ErrBadMeta)
	require.Equal(t, before, r.Bytes())
}

func Test_ReallocFailedRelocateLeavesOldChunk(t *testing.T) {
	h, r := newTestHeap(t, 16, 2)

	ref, payload, err := h.Alloc(8)
	require.NoError(t, err)
	copy(payload, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	before := append([]byte(nil), r.Bytes()...)
	ref2, _, err := h.Realloc(ref, 4096)
	require.ErrorIs(t, err, ErrNoSpace)
	require.Equal(t, NilRef, ref2)
	require.Equal(t, before, r.Bytes(), "failed resize must not release the original")

	// The original allocation is still live and intact.
	require.NoError(t, h.Free(ref))
	require.Equal(t, int32(14), r.Word(0))
}

func Test_ReallocGrowPreservesPrefixAcrossCases(t *testing.T) {
	// Resize preservation law: grow a chunk repeatedly through whatever
	// case applies and verify the prefix survives every step.
	h, _ := newTestHeap(t, 256, 2)

	ref, payload, err := h.Alloc(16)
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		payload[i] = byte(0x40 + i)
	}

	want := append([]byte(nil), payload[:16]...)
	for _, n := range []int{24, 60, 61, 128, 400} {
		ref, payload, err = h.Realloc(ref, n)
		require.NoError(t, err)
		require.Equal(t, want, payload[:16], "grow to %d", n)
		require.NoError(t, h.CheckIntegrity())
	}
}

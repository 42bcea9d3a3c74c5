// Package arena provides word-addressed access to a caller-supplied byte
// buffer, plus the chunk primitives the allocator engine is built on.
//
// # Region
//
// A Region wraps one contiguous byte buffer and addresses it as an array of
// little-endian 32-bit words. The buffer's length must be a multiple of 4 and
// at least 16 bytes (room for a single minimum chunk). The Region never
// resizes or reallocates the buffer; its lifetime is bounded by the buffer's.
//
// # Chunks
//
// A chunk is a contiguous run of words carrying a signed header word at its
// start and an identical footer word at its end:
//
//	word [h]          header : signed size, negative when taken
//	word [h+1]        payload word 0   (forward link when free)
//	word [h+2]        payload word 1   (backward link when free)
//	word [h+3..]      payload words 2 .. size-1
//	word [h+1+size]   footer : must equal header
//
// The absolute value of the header is the payload size in words; the total
// span is size+2. Header and footer are always written together through
// SetChunkSize. Chunks are identified by the word offset of their header;
// format.NilOffset means "no chunk".
//
// All metadata reads and writes go through byte-level accessors
// (encoding/binary little-endian), so the same memory can later be handed out
// as untyped payload without aliasing hazards.
package arena

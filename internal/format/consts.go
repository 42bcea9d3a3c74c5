// Package format houses the binary layout constants and low-level word
// accessors for arenakit regions. The goal is to keep the raw buffer
// arithmetic focused, allocation-free, and independent from the public API so
// higher-level packages can orchestrate the data in a more ergonomic form.
package format

const (
	// WordSize is the accounting unit of a region in bytes. All chunk sizes,
	// offsets, and links are expressed in 32-bit words.
	WordSize = 4

	// WordShift converts between byte counts and word counts.
	WordShift = 2

	// ChunkOverheadWords is the number of metadata words carried by every
	// chunk: one header and one footer.
	ChunkOverheadWords = 2

	// MinChunkWords is the smallest encodable chunk payload, in words. A free
	// chunk stores its forward and backward links in the first two payload
	// words, so no chunk may be smaller than that.
	MinChunkWords = 2

	// MinRegionBytes is the smallest buffer that can hold one chunk:
	// header + two link words + footer.
	MinRegionBytes = 16

	// NumClasses is the number of segregated free lists.
	NumClasses = 8

	// MinPower and MaxPower bound the size-class base exponent.
	MinPower = 1
	MaxPower = 8

	// MaxChunkWords is the largest encodable chunk payload. The taken/free
	// status lives in the sign bit of the header, which caps chunk sizes at
	// 2^31-1 words (8 GiB of payload).
	MaxChunkWords = 1<<31 - 1
)

// NilOffset is the sentinel word offset meaning "no chunk". It doubles as the
// nil value for free-list links stored inside chunk payloads.
const NilOffset uint32 = 0xFFFFFFFF

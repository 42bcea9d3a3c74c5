package alloc

import "github.com/arenakit/arenakit/internal/format"

// Ref is a live allocation handle: the word offset of the chunk's first
// payload word within the region. The chunk header sits one word below it.
type Ref = uint32

// NilRef is the "no pointer" sentinel.
const NilRef Ref = format.NilOffset

// direction selects which neighbors a coalesce or probe may consume.
type direction uint8

const (
	coalesceLeft direction = 1 << iota
	coalesceRight

	coalesceBoth = coalesceLeft | coalesceRight
)

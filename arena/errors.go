package arena

import "errors"

var (
	// ErrRegionSmall indicates the buffer cannot hold even one minimum chunk.
	ErrRegionSmall = errors.New("arena: buffer smaller than 16 bytes")

	// ErrRegionAlign indicates the buffer length is not a multiple of the word size.
	ErrRegionAlign = errors.New("arena: buffer length not a multiple of 4")
)

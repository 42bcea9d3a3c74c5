package alloc

import "errors"

var (
	// ErrNoSpace indicates that no free chunk satisfies the request.
	ErrNoSpace = errors.New("alloc: no free chunk large enough")

	// ErrBadRef indicates a ref that does not point into the region.
	ErrBadRef = errors.New("alloc: bad chunk reference")

	// ErrBadMeta indicates a chunk whose header and footer disagree.
	ErrBadMeta = errors.New("alloc: header/footer mismatch")

	// ErrNotTaken indicates a free or release of a chunk that is not taken
	// (a double free, or a ref into the middle of something).
	ErrNotTaken = errors.New("alloc: chunk is not taken")

	// ErrNeedSmall indicates a zero or negative byte request.
	ErrNeedSmall = errors.New("alloc: request must be at least 1 byte")

	// ErrTooLarge indicates a request whose word count cannot be encoded in a
	// signed 32-bit size word.
	ErrTooLarge = errors.New("alloc: request exceeds encodable chunk size")

	// ErrBadPower indicates a size-class exponent outside [1, 8].
	ErrBadPower = errors.New("alloc: power must be between 1 and 8")

	// ErrRegionLarge indicates a region too large for sign-encoded sizes: its
	// single initial chunk would carry more than 2^31-1 payload words.
	ErrRegionLarge = errors.New("alloc: region payload exceeds 2^31-1 words")
)

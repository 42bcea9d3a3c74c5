package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_WordRoundTrip(t *testing.T) {
	b := make([]byte, 32)

	PutWord(b, 0, -7)
	PutWord(b, 7, 1<<30)
	require.Equal(t, int32(-7), ReadWord(b, 0))
	require.Equal(t, int32(1<<30), ReadWord(b, 7))

	PutLink(b, 3, NilOffset)
	require.Equal(t, NilOffset, ReadLink(b, 3))

	// Links and words share storage; the bit pattern is what matters.
	PutLink(b, 1, 0xFFFFFFFE)
	require.Equal(t, int32(-2), ReadWord(b, 1))
}

func Test_WordsFor(t *testing.T) {
	cases := []struct {
		bytes int
		words int64
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{10, 3},
		{12, 3},
	}
	for _, c := range cases {
		require.Equal(t, c.words, WordsFor(c.bytes), "WordsFor(%d)", c.bytes)
	}
}

func Test_WordsForLargeRequest(t *testing.T) {
	// A request near the int range must not wrap negative.
	huge := int(^uint(0) >> 2)
	require.Positive(t, WordsFor(huge))
	require.Greater(t, WordsFor(huge), int64(MaxChunkWords))
}

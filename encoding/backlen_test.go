package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/listpack/errs"
)

func TestBacklenSize_Boundaries(t *testing.T) {
	tests := []struct {
		l    uint64
		size int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{2097151, 3},
		{2097152, 4},
		{268435455, 4},
		{268435456, 5},
		{1<<32 - 1, 5},
	}

	for _, tt := range tests {
		require.Equal(t, tt.size, BacklenSize(tt.l), "length %d", tt.l)
	}
}

func TestPutBacklen_Bytes(t *testing.T) {
	require.Equal(t, []byte{0x06}, AppendBacklen(nil, 6))
	require.Equal(t, []byte{0x01, 0x80}, AppendBacklen(nil, 128))
	require.Equal(t, []byte{0x02, 0x80 | 0x2E}, AppendBacklen(nil, 302))
	require.Equal(t, []byte{0x01, 0x80, 0x80}, AppendBacklen(nil, 16384))
}

func TestBacklen_RoundTrip(t *testing.T) {
	for _, l := range []uint64{0, 1, 127, 128, 16383, 16384, 2097151, 2097152, 268435455, 268435456, 1<<32 - 1} {
		// Leading garbage must not be consumed by the backward scan.
		buf := AppendBacklen([]byte{0x7F}, l)

		got, n, err := DecodeBacklen(buf, len(buf)-1)
		require.NoError(t, err)
		require.Equal(t, l, got)
		require.Equal(t, BacklenSize(l), n)
	}
}

func TestDecodeBacklen_Corrupt(t *testing.T) {
	buf := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80}
	_, _, err := DecodeBacklen(buf, len(buf)-1)
	require.ErrorIs(t, err, errs.ErrCorruptBacklen)
}

func TestDecodeBacklen_Truncated(t *testing.T) {
	_, _, err := DecodeBacklen([]byte{0x81, 0x82}, 1)
	require.ErrorIs(t, err, errs.ErrTruncated)

	_, _, err = DecodeBacklen([]byte{0x01}, 1)
	require.ErrorIs(t, err, errs.ErrTruncated)

	_, _, err = DecodeBacklen(nil, 0)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

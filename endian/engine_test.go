package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	buf := engine.AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
}

func TestUint_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		width int
		value uint64
	}{
		{"one byte", 1, 0xAB},
		{"two bytes", 2, 0xBEEF},
		{"three bytes", 3, 0xABCDEF},
		{"four bytes", 4, 0xDEADBEEF},
		{"five bytes", 5, 0x01_0203_0405},
		{"eight bytes", 8, 0x0102_0304_0506_0708},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.width)
			require.True(t, PutUint(buf, tt.value, tt.width))

			got, ok := Uint(buf, tt.width)
			require.True(t, ok)
			require.Equal(t, tt.value, got)
			require.Equal(t, byte(tt.value), buf[0], "least significant byte first")
		})
	}
}

func TestUint_BoundsChecked(t *testing.T) {
	_, ok := Uint([]byte{1, 2}, 3)
	require.False(t, ok)

	_, ok = Uint([]byte{1}, 0)
	require.False(t, ok)

	_, ok = Uint(make([]byte, 16), 9)
	require.False(t, ok)

	require.False(t, PutUint([]byte{0}, 0xFFFF, 2))
	require.False(t, PutUint(make([]byte, 16), 1, 9))
}

func TestPutUint_Truncates(t *testing.T) {
	buf := make([]byte, 2)
	require.True(t, PutUint(buf, 0x123456, 2))
	require.Equal(t, []byte{0x56, 0x34}, buf)
}

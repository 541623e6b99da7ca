// Package endian provides the byte order helpers used by the listpack layout.
//
// Every multi-byte field of a listpack is little-endian: the header's
// total_bytes and num_elements fields, the payload of the fixed-width integer
// classes and the 32-bit string length prefix. The helpers in this package
// are bounds-checked so that decoding a truncated buffer reports failure
// instead of panicking.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	total := engine.Uint32(data[0:4])
//
//	v, ok := endian.Uint(data[1:], 3) // 24-bit payload
//
// # Thread Safety
//
// All functions in this package are stateless and safe for concurrent use.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// MaxWidth is the widest integer, in bytes, handled by Uint and PutUint.
const MaxWidth = 8

// GetLittleEndianEngine returns the little-endian engine used by the listpack layout.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// Uint reads an n-byte little-endian unsigned integer from the start of b.
//
// Parameters:
//   - b: Source bytes
//   - n: Width in bytes, 1..8
//
// Returns:
//   - uint64: Decoded value
//   - bool: false if n is out of range or b holds fewer than n bytes
func Uint(b []byte, n int) (uint64, bool) {
	if n < 1 || n > MaxWidth || len(b) < n {
		return 0, false
	}

	switch n {
	case 2:
		return uint64(binary.LittleEndian.Uint16(b)), true
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), true
	case 8:
		return binary.LittleEndian.Uint64(b), true
	}

	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}

	return v, true
}

// PutUint writes the low n bytes of v into b in little-endian order.
//
// Parameters:
//   - b: Destination bytes
//   - v: Value to write; bits above n*8 are discarded
//   - n: Width in bytes, 1..8
//
// Returns:
//   - bool: false if n is out of range or b holds fewer than n bytes
func PutUint(b []byte, v uint64, n int) bool {
	if n < 1 || n > MaxWidth || len(b) < n {
		return false
	}

	for i := range n {
		b[i] = byte(v >> (8 * i))
	}

	return true
}

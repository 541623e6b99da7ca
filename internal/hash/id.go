package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Kind prefixes keep an integer from colliding with the string holding its
// little-endian bytes.
const (
	kindInt    byte = 'i'
	kindString byte = 's'
)

// Sum computes the xxHash64 of raw bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Int computes the xxHash64 identity of an integer element value.
func Int(v int64) uint64 {
	var buf [9]byte
	buf[0] = kindInt
	binary.LittleEndian.PutUint64(buf[1:], uint64(v))

	return xxhash.Sum64(buf[:])
}

// Bytes computes the xxHash64 identity of a string element value.
func Bytes(b []byte) uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{kindString})
	_, _ = d.Write(b)

	return d.Sum64()
}

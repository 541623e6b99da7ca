package encoding

import (
	"fmt"

	"github.com/arloliu/listpack/errs"
)

const (
	// MaxBacklenSize is the largest reverse-length field in bytes.
	MaxBacklenSize = 5

	// maxBacklenShift bounds the backward scan to five 7-bit chunks.
	maxBacklenShift = 28

	backlenContinue byte = 0x80
	backlenMask     byte = 0x7F
)

// BacklenSize returns the number of bytes needed to store l as a backlen.
func BacklenSize(l uint64) int {
	switch {
	case l <= 127:
		return 1
	case l <= 16383:
		return 2
	case l <= 2097151:
		return 3
	case l <= 268435455:
		return 4
	default:
		return MaxBacklenSize
	}
}

// PutBacklen writes l as a backlen into dst and returns the bytes written.
//
// The most significant 7-bit chunk comes first without a continuation bit;
// every following chunk has its high bit set, so a reader positioned on the
// last byte can decode it scanning backward. Lengths must fit in 35 bits.
// It panics if dst is shorter than BacklenSize(l).
func PutBacklen(dst []byte, l uint64) int {
	n := BacklenSize(l)
	_ = dst[n-1]

	dst[0] = byte(l>>(7*(n-1))) & backlenMask
	for i := 1; i < n; i++ {
		dst[i] = byte(l>>(7*(n-1-i)))&backlenMask | backlenContinue
	}

	return n
}

// AppendBacklen appends l as a backlen to dst.
func AppendBacklen(dst []byte, l uint64) []byte {
	var buf [MaxBacklenSize]byte
	n := PutBacklen(buf[:], l)

	return append(dst, buf[:n]...)
}

// DecodeBacklen decodes the backlen whose last byte is src[end], scanning
// backward.
//
// Parameters:
//   - src: Buffer holding the field
//   - end: Index of the last byte of the field (the byte just before the next entry)
//
// Returns:
//   - uint64: Decoded length
//   - int: Size of the field in bytes
//   - error: ErrCorruptBacklen if the field runs longer than five bytes,
//     ErrTruncated if the scan runs off the start of src
func DecodeBacklen(src []byte, end int) (uint64, int, error) {
	if end < 0 || end >= len(src) {
		return 0, 0, fmt.Errorf("%w: backlen end %d outside buffer of %d bytes", errs.ErrTruncated, end, len(src))
	}

	var val uint64
	var shift uint
	for i := end; ; i-- {
		if i < 0 {
			return 0, 0, fmt.Errorf("%w: backlen at %d runs past buffer start", errs.ErrTruncated, end)
		}

		b := src[i]
		val |= uint64(b&backlenMask) << shift
		if b&backlenContinue == 0 {
			return val, end - i + 1, nil
		}

		shift += 7
		if shift > maxBacklenShift {
			return 0, 0, fmt.Errorf("%w: more than %d bytes at %d", errs.ErrCorruptBacklen, MaxBacklenSize, end)
		}
	}
}

package encoding

import (
	"fmt"

	"github.com/arloliu/listpack/endian"
	"github.com/arloliu/listpack/errs"
	"github.com/arloliu/listpack/format"
)

// Tag bytes and masks of the encoding classes.
const (
	tag7BitUint     byte = 0x00
	tag7BitUintMask byte = 0x80
	tag6BitStr      byte = 0x80
	tag6BitStrMask  byte = 0xC0
	tag13BitInt     byte = 0xC0
	tag13BitIntMask byte = 0xE0
	tag12BitStr     byte = 0xE0
	tag12BitStrMask byte = 0xF0
	tag32BitStr     byte = 0xF0
	tag16BitInt     byte = 0xF1
	tag24BitInt     byte = 0xF2
	tag32BitInt     byte = 0xF3
	tag64BitInt     byte = 0xF4
	tagEOF          byte = 0xFF
)

const (
	// MaxIntEncodedSize is the largest tag+payload size of an integer.
	MaxIntEncodedSize = 9

	// UnknownEncodingBase is added to an unrecognized tag byte to build the
	// integer returned by Decode, so corruption is visible on inspection.
	UnknownEncodingBase int64 = 12345678900000000

	max6BitStrLen  = 63
	max12BitStrLen = 4095
)

// Classify returns the encoding class selected by a tag byte.
func Classify(tag byte) format.EntryType {
	switch {
	case tag&tag7BitUintMask == tag7BitUint:
		return format.TypeUint7
	case tag&tag6BitStrMask == tag6BitStr:
		return format.TypeStr6
	case tag&tag13BitIntMask == tag13BitInt:
		return format.TypeInt13
	case tag&tag12BitStrMask == tag12BitStr:
		return format.TypeStr12
	}

	switch tag {
	case tag32BitStr:
		return format.TypeStr32
	case tag16BitInt:
		return format.TypeInt16
	case tag24BitInt:
		return format.TypeInt24
	case tag32BitInt:
		return format.TypeInt32
	case tag64BitInt:
		return format.TypeInt64
	case tagEOF:
		return format.TypeEOF
	default:
		return format.TypeUnknown
	}
}

// IntType returns the smallest integer class that represents v exactly.
func IntType(v int64) format.EntryType {
	switch {
	case v >= 0 && v <= 127:
		return format.TypeUint7
	case v >= -4096 && v <= 4095:
		return format.TypeInt13
	case v >= -32768 && v <= 32767:
		return format.TypeInt16
	case v >= -8388608 && v <= 8388607:
		return format.TypeInt24
	case v >= -2147483648 && v <= 2147483647:
		return format.TypeInt32
	default:
		return format.TypeInt64
	}
}

// StringType returns the smallest string class for a payload of n bytes.
func StringType(n int) format.EntryType {
	switch {
	case n <= max6BitStrLen:
		return format.TypeStr6
	case n <= max12BitStrLen:
		return format.TypeStr12
	default:
		return format.TypeStr32
	}
}

// IntEncodedSize returns the tag+payload size of integer v.
func IntEncodedSize(v int64) int {
	switch IntType(v) {
	case format.TypeUint7:
		return 1
	case format.TypeInt13:
		return 2
	case format.TypeInt16:
		return 3
	case format.TypeInt24:
		return 4
	case format.TypeInt32:
		return 5
	default:
		return MaxIntEncodedSize
	}
}

// StringEncodedSize returns the tag+payload size of an n-byte string.
func StringEncodedSize(n int) int {
	switch StringType(n) {
	case format.TypeStr6:
		return 1 + n
	case format.TypeStr12:
		return 2 + n
	default:
		return 5 + n
	}
}

// intWidth returns the payload width and sign bit position of the
// fixed-width integer classes.
func intWidth(typ format.EntryType) (width int, bits uint) {
	switch typ {
	case format.TypeInt16:
		return 2, 16
	case format.TypeInt24:
		return 3, 24
	case format.TypeInt32:
		return 4, 32
	default:
		return 8, 64
	}
}

// PutInt writes the tag and payload of v into dst and returns the bytes written.
// It panics if dst is shorter than IntEncodedSize(v).
func PutInt(dst []byte, v int64) int {
	typ := IntType(v)
	switch typ {
	case format.TypeUint7:
		dst[0] = byte(v)
		return 1
	case format.TypeInt13:
		if v < 0 {
			v += 1 << 13
		}
		_ = dst[1]
		dst[0] = byte(v>>8) | tag13BitInt
		dst[1] = byte(v)

		return 2
	}

	width, bits := intWidth(typ)
	uv := uint64(v)
	if v < 0 && bits < 64 {
		uv = uint64((int64(1) << bits) + v)
	}

	_ = dst[width]
	switch typ {
	case format.TypeInt16:
		dst[0] = tag16BitInt
	case format.TypeInt24:
		dst[0] = tag24BitInt
	case format.TypeInt32:
		dst[0] = tag32BitInt
	default:
		dst[0] = tag64BitInt
	}
	endian.PutUint(dst[1:], uv, width)

	return 1 + width
}

// PutString writes the length prefix and bytes of s into dst and returns the
// bytes written. It panics if dst is shorter than StringEncodedSize(len(s)).
func PutString(dst []byte, s []byte) int {
	n := len(s)
	switch StringType(n) {
	case format.TypeStr6:
		_ = dst[n]
		dst[0] = byte(n) | tag6BitStr

		return 1 + copy(dst[1:], s)
	case format.TypeStr12:
		_ = dst[1+n]
		dst[0] = byte(n>>8) | tag12BitStr
		dst[1] = byte(n)

		return 2 + copy(dst[2:], s)
	default:
		_ = dst[4+n]
		dst[0] = tag32BitStr
		endian.GetLittleEndianEngine().PutUint32(dst[1:], uint32(n))

		return 5 + copy(dst[5:], s)
	}
}

// PutEntry writes the full entry of v (tag, payload and backlen) into dst and
// returns the bytes written. It panics if dst is shorter than v.EntrySize().
func PutEntry(dst []byte, v Value) int {
	var n int
	if v.kind == KindInt {
		n = PutInt(dst, v.num)
	} else {
		n = PutString(dst, v.str)
	}

	return n + PutBacklen(dst[n:], uint64(n))
}

// AppendEntry appends the full entry of v to dst.
func AppendEntry(dst []byte, v Value) []byte {
	size := v.EntrySize()
	start := len(dst)
	if cap(dst)-start < size {
		grown := make([]byte, start, start+size)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:start+size]
	PutEntry(dst[start:], v)

	return dst
}

// EncodedSize returns the tag+payload size of the entry starting at src[0].
// The EOF byte reports a size of 1.
//
// Returns:
//   - int: Size of tag and payload in bytes
//   - error: ErrTruncated if src is empty or too short for a length prefix,
//     ErrUnknownEncoding for an unrecognized tag
func EncodedSize(src []byte) (int, error) {
	if len(src) == 0 {
		return 0, errs.ErrTruncated
	}

	tag := src[0]
	switch Classify(tag) {
	case format.TypeUint7, format.TypeEOF:
		return 1, nil
	case format.TypeStr6:
		return 1 + int(tag&0x3F), nil
	case format.TypeInt13:
		return 2, nil
	case format.TypeInt16:
		return 3, nil
	case format.TypeInt24:
		return 4, nil
	case format.TypeInt32:
		return 5, nil
	case format.TypeInt64:
		return MaxIntEncodedSize, nil
	case format.TypeStr12:
		if len(src) < 2 {
			return 0, errs.ErrTruncated
		}

		return 2 + (int(tag&0x0F)<<8 | int(src[1])), nil
	case format.TypeStr32:
		n, ok := endian.Uint(src[1:], 4)
		if !ok {
			return 0, errs.ErrTruncated
		}

		return 5 + int(n), nil
	default:
		return 0, fmt.Errorf("%w: tag 0x%02x", errs.ErrUnknownEncoding, tag)
	}
}

// EntrySize returns the full size (tag, payload and backlen) of the entry
// starting at src[0].
func EntrySize(src []byte) (int, error) {
	n, err := EncodedSize(src)
	if err != nil {
		return 0, err
	}

	return n + BacklenSize(uint64(n)), nil
}

// Decode decodes the value of the entry starting at src[0].
//
// String values reference src directly and are marked borrowed.
// An unrecognized tag byte is not an error: it decodes to
// Int(UnknownEncodingBase + tag).
//
// Returns:
//   - Value: Decoded value
//   - error: ErrTruncated if the entry extends past the end of src
func Decode(src []byte) (Value, error) {
	if len(src) == 0 {
		return Value{}, errs.ErrTruncated
	}

	tag := src[0]
	typ := Classify(tag)

	if typ.IsString() {
		n, err := EncodedSize(src)
		if err != nil {
			return Value{}, err
		}
		if n > len(src) {
			return Value{}, fmt.Errorf("%w: %s entry needs %d bytes, have %d", errs.ErrTruncated, typ, n, len(src))
		}
		prefix := 1
		switch typ {
		case format.TypeStr12:
			prefix = 2
		case format.TypeStr32:
			prefix = 5
		}

		return borrowedBytes(src[prefix:n:n]), nil
	}

	var uval, negstart, negmax uint64
	switch typ {
	case format.TypeUint7:
		return Int(int64(tag & 0x7F)), nil
	case format.TypeInt13:
		if len(src) < 2 {
			return Value{}, errs.ErrTruncated
		}
		uval = uint64(tag&0x1F)<<8 | uint64(src[1])
		negstart = 1 << 12
		negmax = 8191
	case format.TypeInt16, format.TypeInt24, format.TypeInt32, format.TypeInt64:
		width, bits := intWidth(typ)
		v, ok := endian.Uint(src[1:], width)
		if !ok {
			return Value{}, fmt.Errorf("%w: %s entry needs %d bytes, have %d", errs.ErrTruncated, typ, 1+width, len(src))
		}
		uval = v
		negstart = 1 << (bits - 1)
		negmax = ^uint64(0) >> (64 - bits)
	default:
		return Int(UnknownEncodingBase + int64(tag)), nil
	}

	return Int(signed(uval, negstart, negmax)), nil
}

// signed recovers a two's complement value from its biased magnitude.
func signed(uval, negstart, negmax uint64) int64 {
	if uval >= negstart {
		return -int64(negmax-uval) - 1
	}

	return int64(uval)
}

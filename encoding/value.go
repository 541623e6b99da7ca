package encoding

import (
	"bytes"
	"cmp"
	"strconv"

	"github.com/arloliu/listpack/format"
	"github.com/arloliu/listpack/internal/hash"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindInt    Kind = iota // KindInt is a signed 64-bit integer.
	KindString             // KindString is an opaque byte string.
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindString:
		return "String"
	default:
		return "Unknown"
	}
}

// Value is a listpack element: either a signed 64-bit integer or a byte string.
//
// The zero Value is Int(0).
//
// A string Value decoded from a buffer references the buffer memory directly.
// Such a value is marked borrowed and is only valid until the next mutation of
// that buffer; call Clone to keep it longer.
type Value struct {
	str      []byte
	num      int64
	kind     Kind
	borrowed bool
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{kind: KindInt, num: v}
}

// Bytes returns a string Value referencing b without copying it.
func Bytes(b []byte) Value {
	if b == nil {
		b = []byte{}
	}

	return Value{kind: KindString, str: b}
}

// String returns a string Value holding a copy of s.
func String(s string) Value {
	return Value{kind: KindString, str: []byte(s)}
}

// borrowedBytes returns a string Value that aliases buffer memory.
func borrowedBytes(b []byte) Value {
	return Value{kind: KindString, str: b, borrowed: true}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool {
	return v.kind == KindInt
}

// IsString reports whether v holds a byte string.
func (v Value) IsString() bool {
	return v.kind == KindString
}

// Int returns the integer held by v, or 0 for string values.
func (v Value) Int() int64 {
	if v.kind != KindInt {
		return 0
	}

	return v.num
}

// Bytes returns the byte string held by v, or nil for integer values.
// For borrowed values the slice aliases buffer memory.
func (v Value) Bytes() []byte {
	if v.kind != KindString {
		return nil
	}

	return v.str
}

// Text returns the byte string held by v as a Go string, or "" for integers.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}

	return string(v.str)
}

// Borrowed reports whether v references buffer memory.
func (v Value) Borrowed() bool {
	return v.borrowed
}

// Clone returns a Value that owns its bytes.
func (v Value) Clone() Value {
	if v.kind != KindString {
		return v
	}

	return Value{kind: KindString, str: bytes.Clone(v.str)}
}

// Equal reports whether v and other hold the same variant and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindInt {
		return v.num == other.num
	}

	return bytes.Equal(v.str, other.str)
}

// Compare orders values: integers before strings, integers numerically and
// strings bytewise.
//
// Returns:
//   - int: -1, 0 or +1
func (v Value) Compare(other Value) int {
	if v.kind != other.kind {
		return cmp.Compare(v.kind, other.kind)
	}
	if v.kind == KindInt {
		return cmp.Compare(v.num, other.num)
	}

	return bytes.Compare(v.str, other.str)
}

// Hash returns the xxHash64 identity of v. Equal values hash equally.
func (v Value) Hash() uint64 {
	if v.kind == KindInt {
		return hash.Int(v.num)
	}

	return hash.Bytes(v.str)
}

// Type returns the encoding class v is stored with.
func (v Value) Type() format.EntryType {
	if v.kind == KindInt {
		return IntType(v.num)
	}

	return StringType(len(v.str))
}

// EncodedSize returns the size of the tag and payload of v.
func (v Value) EncodedSize() int {
	if v.kind == KindInt {
		return IntEncodedSize(v.num)
	}

	return StringEncodedSize(len(v.str))
}

// EntrySize returns the full entry size of v: tag, payload and backlen.
func (v Value) EntrySize() int {
	n := v.EncodedSize()
	return n + BacklenSize(uint64(n))
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == KindInt {
		return "Int(" + strconv.FormatInt(v.num, 10) + ")"
	}

	return "String(" + strconv.Quote(string(v.str)) + ")"
}

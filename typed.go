package listpack

import (
	"math"
	"unsafe"

	"github.com/arloliu/listpack/encoding"
	"github.com/arloliu/listpack/endian"
)

// Integer is the set of integer types the generic helpers convert.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// As converts v to T.
//
// Integers are converted with Go conversion rules, so out-of-range values
// wrap. A string whose length equals the size of T is read as a
// little-endian fixed-width integer, the layout AppendFixed writes. Any
// other string yields 0.
func As[T Integer](v Value) T {
	if v.IsInt() {
		return T(v.Int())
	}

	b := v.Bytes()
	if len(b) != int(unsafe.Sizeof(T(0))) {
		return 0
	}
	u, _ := endian.Uint(b, len(b))

	return T(u)
}

// GetAs returns the element at converted to T, or 0 if at is not valid.
func GetAs[T Integer](l *Listpack, at Element) T {
	v, err := l.buf.Get(at)
	if err != nil {
		return 0
	}

	return As[T](v)
}

// AppendFixed appends v as a little-endian string of exactly the size of T.
// Unlike AppendInt the width is preserved regardless of magnitude.
func AppendFixed[T Integer](l *Listpack, v T) (Element, error) {
	var scratch [endian.MaxWidth]byte
	n := int(unsafe.Sizeof(v))
	endian.PutUint(scratch[:], uint64(v), n) //nolint:gosec // bit pattern is intended

	return l.buf.Append(encoding.Bytes(scratch[:n]))
}

// AppendInt appends an integer.
func (l *Listpack) AppendInt(v int64) (Element, error) {
	return l.buf.Append(encoding.Int(v))
}

// AppendUint appends an unsigned integer. Values above math.MaxInt64 are
// stored by bit pattern and read back intact by GetUint.
func (l *Listpack) AppendUint(v uint64) (Element, error) {
	return l.buf.Append(encoding.Int(int64(v))) //nolint:gosec // bit pattern is intended
}

// AppendSignedInt appends v zigzag-encoded so small negative values take a
// single byte. Read it back with GetSignedInt.
func (l *Listpack) AppendSignedInt(v int64) (Element, error) {
	return l.buf.Append(encoding.Int(encoding.ZigzagEncode(v)))
}

// AppendFloat32 appends the IEEE 754 bits of v as an integer.
func (l *Listpack) AppendFloat32(v float32) (Element, error) {
	return l.buf.Append(encoding.Int(int64(math.Float32bits(v))))
}

// AppendFloat64 appends the IEEE 754 bits of v as an integer.
func (l *Listpack) AppendFloat64(v float64) (Element, error) {
	return l.buf.Append(encoding.Int(int64(math.Float64bits(v)))) //nolint:gosec // bit pattern is intended
}

// AppendFixedFloat32 appends v as a 4-byte little-endian string.
func (l *Listpack) AppendFixedFloat32(v float32) (Element, error) {
	return AppendFixed(l, math.Float32bits(v))
}

// AppendFixedFloat64 appends v as an 8-byte little-endian string.
func (l *Listpack) AppendFixedFloat64(v float64) (Element, error) {
	return AppendFixed(l, math.Float64bits(v))
}

// AppendBool appends 1 for true and 0 for false.
func (l *Listpack) AppendBool(v bool) (Element, error) {
	var n int64
	if v {
		n = 1
	}

	return l.buf.Append(encoding.Int(n))
}

// AppendString appends a string.
func (l *Listpack) AppendString(s string) (Element, error) {
	return l.buf.Append(encoding.String(s))
}

// AppendBytes appends a byte string.
func (l *Listpack) AppendBytes(b []byte) (Element, error) {
	return l.buf.Append(encoding.Bytes(b))
}

// InsertInt inserts an integer before or after at.
func (l *Listpack) InsertInt(v int64, where Placement, at Element) (Element, error) {
	return l.buf.Insert(encoding.Int(v), where, at)
}

// InsertString inserts a string before or after at.
func (l *Listpack) InsertString(s string, where Placement, at Element) (Element, error) {
	return l.buf.Insert(encoding.String(s), where, at)
}

// ReplaceInt overwrites the element at with an integer.
func (l *Listpack) ReplaceInt(at Element, v int64) (Element, error) {
	return l.buf.Replace(at, encoding.Int(v))
}

// ReplaceString overwrites the element at with a string.
func (l *Listpack) ReplaceString(at Element, s string) (Element, error) {
	return l.buf.Replace(at, encoding.String(s))
}

// GetInt returns the integer at, or 0.
func (l *Listpack) GetInt(at Element) int64 {
	return l.GetIntOr(at, 0)
}

// GetIntOr returns the integer at, or def if at is invalid or holds a string.
func (l *Listpack) GetIntOr(at Element, def int64) int64 {
	v, err := l.buf.Get(at)
	if err != nil || !v.IsInt() {
		return def
	}

	return v.Int()
}

// GetUint returns the element at as an unsigned integer.
func (l *Listpack) GetUint(at Element) uint64 {
	return GetAs[uint64](l, at)
}

// GetSignedInt returns an integer written by AppendSignedInt.
func (l *Listpack) GetSignedInt(at Element) int64 {
	return encoding.ZigzagDecode(l.GetInt(at))
}

// GetFloat32 returns a float32 written by AppendFloat32 or AppendFixedFloat32.
func (l *Listpack) GetFloat32(at Element) float32 {
	v, err := l.buf.Get(at)
	if err != nil {
		return 0
	}
	if v.IsInt() {
		return math.Float32frombits(uint32(v.Int())) //nolint:gosec // bit pattern is intended
	}

	return math.Float32frombits(As[uint32](v))
}

// GetFloat64 returns a float64 written by AppendFloat64 or
// AppendFixedFloat64. A 4-byte string is widened from float32.
func (l *Listpack) GetFloat64(at Element) float64 {
	v, err := l.buf.Get(at)
	if err != nil {
		return 0
	}
	if v.IsInt() {
		return math.Float64frombits(uint64(v.Int())) //nolint:gosec // bit pattern is intended
	}
	if len(v.Bytes()) == 4 {
		return float64(math.Float32frombits(As[uint32](v)))
	}

	return math.Float64frombits(As[uint64](v))
}

// GetBool reports whether the element at is a non-zero integer.
func (l *Listpack) GetBool(at Element) bool {
	return l.GetInt(at) != 0
}

// GetString returns the string at, or "".
func (l *Listpack) GetString(at Element) string {
	return l.GetStringOr(at, "")
}

// GetStringOr returns the string at, or def if at is invalid or holds an integer.
func (l *Listpack) GetStringOr(at Element, def string) string {
	v, err := l.buf.Get(at)
	if err != nil || !v.IsString() {
		return def
	}

	return v.Text()
}

// GetBytes returns a copy of the byte string at, or nil.
func (l *Listpack) GetBytes(at Element) []byte {
	v, err := l.buf.Get(at)
	if err != nil || !v.IsString() {
		return nil
	}

	return v.Clone().Bytes()
}

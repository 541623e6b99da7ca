package listpack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	require.Equal(t, int8(-1), As[int8](Int(255)))
	require.Equal(t, uint16(0xFFFF), As[uint16](Int(-1)))
	require.Equal(t, int64(42), As[int64](Int(42)))

	require.Equal(t, uint16(0x0201), As[uint16](Bytes([]byte{0x01, 0x02})))
	require.Equal(t, int32(-2), As[int32](Bytes([]byte{0xFE, 0xFF, 0xFF, 0xFF})))
	require.Equal(t, uint32(0), As[uint32](Bytes([]byte{0x01, 0x02})), "width mismatch")
	require.Equal(t, 0, As[int](String("not a number")))
}

func TestAppendFixed(t *testing.T) {
	lp := newListpack(t)

	r8, err := AppendFixed(lp, int8(-3))
	require.NoError(t, err)
	require.Equal(t, []byte{0xFD}, lp.GetBytes(r8))

	_, err = AppendFixed(lp, uint16(7))
	require.NoError(t, err)
	_, err = AppendFixed(lp, int64(math.MinInt64))
	require.NoError(t, err)
	require.Nil(t, lp.GetBytes(r8), "appends invalidate earlier elements")

	r8, _ = lp.Seek(0)
	r16, _ := lp.Seek(1)
	r64, _ := lp.Seek(2)
	require.Equal(t, []byte{0x07, 0x00}, lp.GetBytes(r16))
	require.Equal(t, int8(-3), GetAs[int8](lp, r8))
	require.Equal(t, uint16(7), GetAs[uint16](lp, r16))
	require.Equal(t, int64(math.MinInt64), GetAs[int64](lp, r64))
	require.Equal(t, uint16(0), GetAs[uint16](lp, r8), "width mismatch")
	require.Equal(t, int64(0), GetAs[int64](lp, Element{}))
}

func TestListpack_AppendUint(t *testing.T) {
	lp := newListpack(t)

	_, err := lp.AppendUint(math.MaxUint64)
	require.NoError(t, err)
	_, err = lp.AppendUint(7)
	require.NoError(t, err)

	first, _ := lp.First()
	last, _ := lp.Last()
	require.Equal(t, uint64(math.MaxUint64), lp.GetUint(first))
	require.Equal(t, uint64(7), lp.GetUint(last))
}

func TestListpack_AppendSignedInt(t *testing.T) {
	lp := newListpack(t)

	_, err := lp.AppendSignedInt(-1)
	require.NoError(t, err)
	require.Equal(t, 7+2, lp.Size(), "-1 zigzags to 1 and fits one byte")

	for _, v := range []int64{-64, 63, math.MinInt64, math.MaxInt64} {
		r, err := lp.AppendSignedInt(v)
		require.NoError(t, err)
		require.Equal(t, v, lp.GetSignedInt(r))
	}
}

func TestListpack_Floats(t *testing.T) {
	lp := newListpack(t)

	r, err := lp.AppendFloat64(math.Pi)
	require.NoError(t, err)
	require.Equal(t, math.Pi, lp.GetFloat64(r))

	r, err = lp.AppendFloat32(1.5)
	require.NoError(t, err)
	require.Equal(t, float32(1.5), lp.GetFloat32(r))

	r, err = lp.AppendFixedFloat64(-2.25)
	require.NoError(t, err)
	require.Equal(t, -2.25, lp.GetFloat64(r))
	require.Len(t, lp.GetBytes(r), 8)

	r, err = lp.AppendFixedFloat32(0.5)
	require.NoError(t, err)
	require.Equal(t, float32(0.5), lp.GetFloat32(r))
	require.Equal(t, 0.5, lp.GetFloat64(r), "4-byte strings widen from float32")

	r, err = lp.AppendString("nan?")
	require.NoError(t, err)
	require.Zero(t, lp.GetFloat64(Element{}))
	require.NotZero(t, lp.GetFloat32(r), "4-byte strings are read as float32 bits")
}

func TestListpack_Bool(t *testing.T) {
	lp := newListpack(t)

	r, err := lp.AppendBool(true)
	require.NoError(t, err)
	require.True(t, lp.GetBool(r))

	r, err = lp.AppendBool(false)
	require.NoError(t, err)
	require.False(t, lp.GetBool(r))
}

func TestListpack_GetDefaults(t *testing.T) {
	lp := newListpack(t)

	ri, err := lp.AppendInt(9)
	require.NoError(t, err)
	require.Equal(t, "fallback", lp.GetStringOr(ri, "fallback"))
	require.Empty(t, lp.GetString(ri))
	require.Nil(t, lp.GetBytes(ri))

	rs, err := lp.AppendBytes([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, int64(-1), lp.GetIntOr(rs, -1))
	require.Zero(t, lp.GetInt(rs))

	got := lp.GetBytes(rs)
	got[0] = 'z'
	require.Equal(t, "abc", lp.GetString(rs), "GetBytes returns a copy")

	require.Equal(t, int64(5), lp.GetIntOr(Element{}, 5))
}

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlusNumericWidening(t *testing.T) {
	v, err := Plus(Int32(1), Int64(2), "s", 0)
	require.NoError(t, err)
	assert.Equal(t, KindInt64, v.Kind())
	assert.Equal(t, int64(3), v.AsInt64())

	v, err = Plus(Int32(1), Float64(2.5), "s", 0)
	require.NoError(t, err)
	assert.Equal(t, KindFloat64, v.Kind())
	assert.Equal(t, 3.5, v.AsFloat64())

	dec, _ := NewDecimalFromString("1.5")
	v, err = Plus(FromDecimal(dec), Float64(2), "s", 0)
	require.NoError(t, err)
	assert.Equal(t, KindDecimal, v.Kind())
}

func TestPlusStringConcat(t *testing.T) {
	v, err := Plus(Str("x="), Int32(5), "s", 0)
	require.NoError(t, err)
	assert.Equal(t, "x=5", v.AsString())
}

func TestPlusListConcatAndAppend(t *testing.T) {
	v, err := Plus(FromList(NewList(Int32(1))), FromList(NewList(Int32(2))), "s", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, v.AsList().Len())

	v, err = Plus(FromList(NewList(Int32(1))), Int32(2), "s", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, v.AsList().Len())
	second, _ := v.AsList().Get(1)
	assert.Equal(t, int32(2), second.AsInt32())
}

func TestPlusMapMerge(t *testing.T) {
	a := NewMap()
	a.Set("k", Int32(1))
	b := NewMap()
	b.Set("k", Int32(2))
	v, err := Plus(FromMap(a), FromMap(b), "s", 0)
	require.NoError(t, err)
	got, _ := v.AsMap().Get("k")
	assert.Equal(t, int32(2), got.AsInt32())
}

func TestPlusIncompatibleTypesError(t *testing.T) {
	_, err := Plus(Bool(true), Int32(1), "s", 0)
	assert.Error(t, err)
}

func TestTimesStringRepeat(t *testing.T) {
	v, err := Times(Str("ab"), Int32(3), "s", 0)
	require.NoError(t, err)
	assert.Equal(t, "ababab", v.AsString())

	_, err = Times(Str("ab"), Int32(-1), "s", 0)
	assert.Error(t, err)
}

func TestDivValuesByZero(t *testing.T) {
	_, err := DivValues(Int32(1), Int32(0), MinScale, "s", 0)
	assert.Error(t, err)

	dec, _ := NewDecimalFromString("0")
	_, err = DivValues(Int32(1), FromDecimal(dec), MinScale, "s", 0)
	assert.Error(t, err)
}

func TestDivValuesInt(t *testing.T) {
	v, err := DivValues(Int32(7), Int32(2), MinScale, "s", 0)
	require.NoError(t, err)
	assert.Equal(t, int32(3), v.AsInt32())
}

func TestCompareNullOrdersFirst(t *testing.T) {
	c, err := Compare(Null, Int32(1), "s", 0)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare(Int32(1), Null, "s", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = Compare(Null, Null, "s", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestCompareNumericWidening(t *testing.T) {
	c, err := Compare(Int32(1), Float64(1.5), "s", 0)
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestCompareIncomparableError(t *testing.T) {
	_, err := Compare(Str("x"), Int32(1), "s", 0)
	assert.Error(t, err)
}

func TestEqualStructuralList(t *testing.T) {
	a := FromList(NewList(Int32(1), Str("x")))
	b := FromList(NewList(Int32(1), Str("x")))
	assert.True(t, Equal(a, b))

	c := FromList(NewList(Int32(1), Str("y")))
	assert.False(t, Equal(a, c))
}

func TestEqualStructuralMap(t *testing.T) {
	a := NewMap()
	a.Set("k", Int32(1))
	b := NewMap()
	b.Set("k", Int32(1))
	assert.True(t, Equal(FromMap(a), FromMap(b)))

	b.Set("k2", Int32(2))
	assert.False(t, Equal(FromMap(a), FromMap(b)))
}

func TestEqualCrossKindNumeric(t *testing.T) {
	assert.True(t, Equal(Int32(1), Int64(1)))
	assert.True(t, Equal(Int32(1), Float64(1.0)))
}

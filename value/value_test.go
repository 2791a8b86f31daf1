package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Null.Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.True(t, Bool(true).Truthy())
	assert.False(t, Int32(0).Truthy())
	assert.True(t, Int32(1).Truthy())
	assert.False(t, Float64(0).Truthy())
	assert.False(t, Str("").Truthy())
	assert.True(t, Str("x").Truthy())
	assert.False(t, FromList(NewList()).Truthy())
	assert.True(t, FromList(NewList(Int32(1))).Truthy())
	assert.False(t, FromMap(NewMap()).Truthy())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", KindInt32.String())
	assert.Equal(t, "long", KindInt64.String())
	assert.Equal(t, "double", KindFloat64.String())
	assert.Equal(t, "decimal", KindDecimal.String())
	assert.Equal(t, "null", KindNull.String())
}

func TestListGetSetGrows(t *testing.T) {
	l := NewList(Int32(1), Int32(2))
	l.Set(4, Str("x"))
	require.Equal(t, 5, l.Len())
	v, ok := l.Get(2)
	require.True(t, ok)
	assert.True(t, v.IsNull())
	v, ok = l.Get(4)
	require.True(t, ok)
	assert.Equal(t, "x", v.AsString())
}

func TestListNegativeGetOutOfRange(t *testing.T) {
	l := NewList(Int32(1))
	_, ok := l.Get(-1)
	assert.False(t, ok)
}

func TestMapOrderedInsertion(t *testing.T) {
	m := NewMap()
	m.Set("b", Int32(2))
	m.Set("a", Int32(1))
	m.Set("b", Int32(20))
	assert.Equal(t, []string{"b", "a"}, m.Keys())
	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, int32(20), v.AsInt32())
}

func TestMapMergeCopyOtherWins(t *testing.T) {
	a := NewMap()
	a.Set("x", Int32(1))
	b := NewMap()
	b.Set("x", Int32(2))
	b.Set("y", Int32(3))
	merged := a.MergeCopy(b)
	v, _ := merged.Get("x")
	assert.Equal(t, int32(2), v.AsInt32())
	assert.Equal(t, []string{"x", "y"}, merged.Keys())
	// a itself is untouched
	v, _ = a.Get("x")
	assert.Equal(t, int32(1), v.AsInt32())
}

func TestPrintCyclicList(t *testing.T) {
	l := NewList(Int32(1))
	l.Append(Null)
	l.Set(1, FromList(l))
	s := FromList(l).String()
	assert.Contains(t, s, "<circular>")
}

func TestPrintMapOrder(t *testing.T) {
	m := NewMap()
	m.Set("b", Int32(2))
	m.Set("a", Int32(1))
	assert.Equal(t, "{b: 2, a: 1}", FromMap(m).String())
}

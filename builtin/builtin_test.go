package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genzlang/genz/builtin"
	"github.com/genzlang/genz/value"
)

func call(t *testing.T, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	fn, arity, ok := builtin.Lookup(name)
	require.True(t, ok, "%s should be a builtin", name)
	require.Equal(t, arity, len(args), "wrong arity passed by test")
	return fn(args)
}

func TestLookup_UnknownNameIsNotFound(t *testing.T) {
	_, _, ok := builtin.Lookup("nope")
	assert.False(t, ok)
}

func TestSqrt(t *testing.T) {
	v, err := call(t, "sqrt", value.Number{Value: 16})
	require.NoError(t, err)
	assert.Equal(t, value.Number{Value: 4}, v)

	_, err = call(t, "sqrt", value.Number{Value: -1})
	assert.Error(t, err)
}

func TestAbs(t *testing.T) {
	v, err := call(t, "abs", value.Number{Value: -3})
	require.NoError(t, err)
	assert.Equal(t, value.Number{Value: 3}, v)
}

func TestRandom_WithinUnitInterval(t *testing.T) {
	v, err := call(t, "random")
	require.NoError(t, err)
	n := v.(value.Number).Value
	assert.GreaterOrEqual(t, n, 0.0)
	assert.Less(t, n, 1.0)
}

func TestLength_CountsRunesNotBytes(t *testing.T) {
	v, err := call(t, "length", value.String{Value: "héllo"})
	require.NoError(t, err)
	assert.Equal(t, value.Number{Value: 5}, v)
}

func TestLength_Array(t *testing.T) {
	v, err := call(t, "length", &value.Array{Elements: []value.Value{value.Number{Value: 1}, value.Number{Value: 2}}})
	require.NoError(t, err)
	assert.Equal(t, value.Number{Value: 2}, v)
}

func TestLength_WrongTypeIsError(t *testing.T) {
	_, err := call(t, "length", value.Boolean{Value: true})
	assert.Error(t, err)
}

func TestUppercase(t *testing.T) {
	v, err := call(t, "uppercase", value.String{Value: "hi"})
	require.NoError(t, err)
	assert.Equal(t, value.String{Value: "HI"}, v)
}

func TestSplit_LengthMatchesOccurrencePlusOne(t *testing.T) {
	v, err := call(t, "split", value.String{Value: "a,b,c"}, value.String{Value: ","})
	require.NoError(t, err)
	arr := v.(*value.Array)
	assert.Len(t, arr.Elements, 3)
	assert.Equal(t, value.String{Value: "a"}, arr.Elements[0])
	assert.Equal(t, value.String{Value: "b"}, arr.Elements[1])
	assert.Equal(t, value.String{Value: "c"}, arr.Elements[2])
}

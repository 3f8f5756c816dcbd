package value

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWrapArray_RoundTripsElems verifies Elems returns the wrapped
// sequence unchanged.
func TestWrapArray_RoundTripsElems(t *testing.T) {
	a := WrapArray([]int32{1, 2, 3})

	got, ok := a.Elems().Interface().([]int32)
	require.True(t, ok)
	require.Equal(t, []int32{1, 2, 3}, got)
}

// TestArray_TypeDistinctFromWrappedSlice verifies Array's own reflect.Type
// differs from the plain slice type it wraps, since codec.classify
// dispatches on Array's type identity rather than on the wrapped
// sequence's element kind.
func TestArray_TypeDistinctFromWrappedSlice(t *testing.T) {
	a := WrapArray([]int8{1, 2, 3})

	require.NotEqual(t, reflect.TypeOf(a), a.Elems().Type())
}

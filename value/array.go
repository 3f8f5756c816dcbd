package value

import "reflect"

// Array wraps a sequence to opt it into array encoding (ByteArray/
// IntArray/LongArray) instead of the default List encoding. It is
// matched by reflect.Type identity in the codec package — the Go
// translation of the reserved-name newtype marker the format this
// module implements originally used, safer than a string comparison.
//
// Construct one with WrapArray or, more conveniently, nbt.AsArray.
type Array struct {
	elems reflect.Value
}

// WrapArray wraps x, which must be a slice or array of int8, int32 or
// int64, as an Array. A non-sequence fails at encode time with
// errs.ErrUnsupportedArrayType; a sequence of another element kind fails
// with errs.ErrUnsupportedArrayInnerType, or errs.ErrUnsupportedType for
// a kind NBT cannot represent at all.
func WrapArray(x any) Array {
	return Array{elems: reflect.ValueOf(x)}
}

// Elems returns the wrapped sequence as a reflect.Value.
func (a Array) Elems() reflect.Value {
	return a.elems
}

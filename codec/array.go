package codec

import (
	"fmt"
	"reflect"

	"github.com/luojia65/coruscant/errs"
	"github.com/luojia65/coruscant/format"
	"github.com/luojia65/coruscant/value"
)

var arrayType = reflect.TypeOf(value.Array{})
var valueType = reflect.TypeOf(value.Value{})

// deref follows pointer and interface indirection down to the first
// concrete value, returning the zero Value if it bottoms out on a nil.
func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}

		v = v.Elem()
	}

	return v
}

// classify determines the NBT kind a Go value would encode as, without
// writing anything. For a value.Array it resolves the array variant
// from the wrapped sequence's first element and returns that sequence
// (not the wrapper) as the concrete value; for everything else it
// returns v after pointer/interface indirection.
func classify(v reflect.Value) (format.TypeID, reflect.Value, error) {
	v = deref(v)
	if !v.IsValid() {
		return 0, v, errs.ErrUnsupportedType
	}

	if v.Type() == arrayType {
		return classifyArray(v.Interface().(value.Array))
	}

	switch v.Kind() {
	case reflect.Bool:
		return format.Byte, v, nil
	case reflect.Int8:
		return format.Byte, v, nil
	case reflect.Int16:
		return format.Short, v, nil
	case reflect.Int32:
		return format.Int, v, nil
	case reflect.Int, reflect.Int64:
		return format.Long, v, nil
	case reflect.Float32:
		return format.Float, v, nil
	case reflect.Float64:
		return format.Double, v, nil
	case reflect.String:
		return format.String, v, nil
	case reflect.Struct, reflect.Map:
		return format.Compound, v, nil
	case reflect.Slice, reflect.Array:
		return format.List, v, nil
	default:
		return 0, v, fmt.Errorf("%w: %s", errs.ErrUnsupportedType, v.Kind())
	}
}

func classifyArray(a value.Array) (format.TypeID, reflect.Value, error) {
	seq := deref(a.Elems())
	if !seq.IsValid() || (seq.Kind() != reflect.Slice && seq.Kind() != reflect.Array) {
		return 0, seq, errs.ErrUnsupportedArrayType
	}

	if seq.Len() == 0 {
		switch seq.Type().Elem().Kind() {
		case reflect.Int8:
			return format.ByteArray, seq, nil
		case reflect.Int32:
			return format.IntArray, seq, nil
		case reflect.Int64:
			return format.LongArray, seq, nil
		default:
			return 0, seq, errs.ErrUnsupportedArrayInnerType
		}
	}

	elemID, _, err := classify(seq.Index(0))
	if err != nil {
		return 0, seq, err
	}

	switch elemID {
	case format.Byte:
		return format.ByteArray, seq, nil
	case format.Int:
		return format.IntArray, seq, nil
	case format.Long:
		return format.LongArray, seq, nil
	default:
		return 0, seq, errs.ErrUnsupportedArrayInnerType
	}
}

// arrayElemKind returns the scalar kind every element of an array with
// header id arrID must have.
func arrayElemKind(arrID format.TypeID) format.TypeID {
	switch arrID {
	case format.ByteArray:
		return format.Byte
	case format.IntArray:
		return format.Int
	case format.LongArray:
		return format.Long
	default:
		return 0
	}
}

// toInt8 converts a classified-as-Byte value (bool or int8) to its wire
// representation.
func toInt8(v reflect.Value) int8 {
	if v.Kind() == reflect.Bool {
		if v.Bool() {
			return 1
		}

		return 0
	}

	return int8(v.Int())
}

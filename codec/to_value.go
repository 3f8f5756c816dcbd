package codec

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/luojia65/coruscant/errs"
	"github.com/luojia65/coruscant/format"
	"github.com/luojia65/coruscant/value"
)

// ToValue converts x into a value.Value tree using the same
// classification rules Encoder uses to pick a wire tag, without
// producing any bytes.
func ToValue(x any) (value.Value, error) {
	return toValue(reflect.ValueOf(x))
}

func toValue(v reflect.Value) (value.Value, error) {
	if cv := deref(v); cv.IsValid() && cv.Type() == valueType {
		return cv.Interface().(value.Value), nil
	}

	id, cv, err := classify(v)
	if err != nil {
		return value.Value{}, err
	}

	switch id {
	case format.Byte:
		return value.Byte(toInt8(cv)), nil
	case format.Short:
		return value.Short(int16(cv.Int())), nil
	case format.Int:
		return value.Int(int32(cv.Int())), nil
	case format.Long:
		return value.Long(cv.Int()), nil
	case format.Float:
		return value.Float(float32(cv.Float())), nil
	case format.Double:
		return value.Double(cv.Float()), nil
	case format.String:
		return value.String(cv.String()), nil
	case format.ByteArray, format.IntArray, format.LongArray:
		return toValueArray(id, cv)
	case format.List:
		return toValueList(cv)
	case format.Compound:
		return toValueCompound(cv)
	default:
		return value.Value{}, fmt.Errorf("%w: %s", errs.ErrUnsupportedType, id)
	}
}

func toValueArray(arrID format.TypeID, seq reflect.Value) (value.Value, error) {
	n := seq.Len()
	wantKind := arrayElemKind(arrID)

	switch arrID {
	case format.ByteArray:
		out := make([]int8, n)

		for i := range n {
			id, cv, err := classify(seq.Index(i))
			if err != nil {
				return value.Value{}, err
			}

			if id != wantKind {
				return value.Value{}, fmt.Errorf("%w: element %d", errs.ErrArrayDifferentType, i)
			}

			out[i] = toInt8(cv)
		}

		return value.ByteArray(out), nil
	case format.IntArray:
		out := make([]int32, n)

		for i := range n {
			id, cv, err := classify(seq.Index(i))
			if err != nil {
				return value.Value{}, err
			}

			if id != wantKind {
				return value.Value{}, fmt.Errorf("%w: element %d", errs.ErrArrayDifferentType, i)
			}

			out[i] = int32(cv.Int())
		}

		return value.IntArray(out), nil
	default: // format.LongArray
		out := make([]int64, n)

		for i := range n {
			id, cv, err := classify(seq.Index(i))
			if err != nil {
				return value.Value{}, err
			}

			if id != wantKind {
				return value.Value{}, fmt.Errorf("%w: element %d", errs.ErrArrayDifferentType, i)
			}

			out[i] = cv.Int()
		}

		return value.LongArray(out), nil
	}
}

func toValueList(v reflect.Value) (value.Value, error) {
	n := v.Len()
	if n == 0 {
		return value.List(nil), nil
	}

	elemID, _, err := classify(v.Index(0))
	if err != nil {
		return value.Value{}, err
	}

	elems := make([]value.Value, n)

	for i := range n {
		id, _, err := classify(v.Index(i))
		if err != nil {
			return value.Value{}, err
		}

		if id != elemID {
			return value.Value{}, fmt.Errorf("%w: element %d", errs.ErrListDifferentType, i)
		}

		ev, err := toValue(v.Index(i))
		if err != nil {
			return value.Value{}, err
		}

		elems[i] = ev
	}

	return value.List(elems), nil
}

func toValueCompound(v reflect.Value) (value.Value, error) {
	m := value.NewMap()

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()

		for i := range t.NumField() {
			sf := t.Field(i)

			name, skip := fieldName(sf)
			if skip {
				continue
			}

			fv := v.Field(i)
			if isNone(fv) {
				continue
			}

			cv, err := toValue(fv)
			if err != nil {
				return value.Value{}, fmt.Errorf("field %q: %w", sf.Name, err)
			}

			m.Set(name, cv)
		}
	case reflect.Map:
		keys := v.MapKeys()
		names := make([]string, 0, len(keys))
		byName := make(map[string]reflect.Value, len(keys))

		for _, k := range keys {
			dk := deref(k)
			if !dk.IsValid() || dk.Kind() != reflect.String {
				return value.Value{}, errs.ErrKeyMustBeAString
			}

			names = append(names, dk.String())
			byName[dk.String()] = v.MapIndex(k)
		}

		sort.Strings(names)

		for _, name := range names {
			mv := byName[name]
			if isNone(mv) {
				continue
			}

			cv, err := toValue(mv)
			if err != nil {
				return value.Value{}, fmt.Errorf("key %q: %w", name, err)
			}

			m.Set(name, cv)
		}
	}

	return value.Compound(m), nil
}

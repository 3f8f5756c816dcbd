package codec

import (
	"fmt"
	"reflect"

	"github.com/luojia65/coruscant/errs"
	"github.com/luojia65/coruscant/format"
	"github.com/luojia65/coruscant/value"
	"github.com/luojia65/coruscant/wire"
)

// Decoder translates a tag stream into a Go value via reflection — the
// inverse of Encoder. Compound traversal asks the reader for the next
// (type-id, name) pair itself; there is no separate map-key
// deserializer type since Go doesn't need one to stay type-safe here.
type Decoder struct {
	r         wire.Reader
	fastArray bool
}

// NewDecoder creates a Decoder reading from r, with the IntArray/LongArray
// host-endianness fast path enabled.
func NewDecoder(r wire.Reader) *Decoder {
	return &Decoder{r: r, fastArray: true}
}

// SetFastArrayPath toggles the host-endianness bulk read path
// decodeIntArray/decodeLongArray use. Disabled, they always take the
// portable byte-swap path regardless of host endianness.
func (d *Decoder) SetFastArrayPath(enabled bool) {
	d.fastArray = enabled
}

// Decode reads one root tag — (type-id, root-name, payload) — into v,
// which must be a non-nil pointer, and returns the root name.
func (d *Decoder) Decode(v any) (string, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return "", fmt.Errorf("%w: decode destination must be a non-nil pointer", errs.ErrUnsupportedType)
	}

	id, err := d.r.ReadTypeID()
	if err != nil {
		return "", err
	}

	if !id.IsValid() {
		return "", errs.WithOffset(errs.ErrTypeIDInvalid, d.r.Index())
	}

	name, err := d.r.ReadName()
	if err != nil {
		return "", err
	}

	if err := d.decodeValue(id, rv.Elem()); err != nil {
		return "", err
	}

	return name, nil
}

func (d *Decoder) decodeValue(id format.TypeID, dst reflect.Value) error {
	dst = allocPtr(dst)

	// A value.Array destination takes the array's plain slice, wrapped.
	if dst.Type() == arrayType {
		st := map[format.TypeID]reflect.Type{format.ByteArray: reflect.TypeOf([]int8(nil)),
			format.IntArray: reflect.TypeOf([]int32(nil)), format.LongArray: reflect.TypeOf([]int64(nil))}[id]
		if st == nil {
			return errs.ErrTypeIDMismatch
		}

		slice := reflect.New(st).Elem()
		if err := d.decodeValue(id, slice); err != nil {
			return err
		}

		dst.Set(reflect.ValueOf(value.WrapArray(slice.Interface())))

		return nil
	}

	switch id {
	case format.Byte:
		v, err := d.r.ReadByteInner()
		if err != nil {
			return err
		}

		return assignByte(dst, v)
	case format.Short:
		v, err := d.r.ReadShortInner()
		if err != nil {
			return err
		}

		return assignShort(dst, v)
	case format.Int:
		v, err := d.r.ReadIntInner()
		if err != nil {
			return err
		}

		return assignInt(dst, v)
	case format.Long:
		v, err := d.r.ReadLongInner()
		if err != nil {
			return err
		}

		return assignLong(dst, v)
	case format.Float:
		v, err := d.r.ReadFloatInner()
		if err != nil {
			return err
		}

		return assignFloat(dst, v)
	case format.Double:
		v, err := d.r.ReadDoubleInner()
		if err != nil {
			return err
		}

		return assignDouble(dst, v)
	case format.String:
		v, err := d.r.ReadStringInner()
		if err != nil {
			return err
		}

		return assignString(dst, v)
	case format.ByteArray:
		return d.decodeByteArray(dst)
	case format.IntArray:
		return d.decodeIntArray(dst)
	case format.LongArray:
		return d.decodeLongArray(dst)
	case format.List:
		return d.decodeList(dst)
	case format.Compound:
		return d.decodeCompound(dst)
	default:
		return errs.WithOffset(errs.ErrTypeIDInvalid, d.r.Index())
	}
}

func allocPtr(dst reflect.Value) reflect.Value {
	for dst.Kind() == reflect.Ptr {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}

		dst = dst.Elem()
	}

	return dst
}

func assignByte(dst reflect.Value, b int8) error {
	switch dst.Kind() {
	case reflect.Bool:
		if b != 0 && b != 1 {
			return errs.ErrInvalidBoolByte
		}

		dst.SetBool(b == 1)

		return nil
	case reflect.Int8:
		dst.SetInt(int64(b))
		return nil
	default:
		return errs.ErrTypeIDMismatch
	}
}

func assignShort(dst reflect.Value, v int16) error {
	if dst.Kind() != reflect.Int16 {
		return errs.ErrTypeIDMismatch
	}

	dst.SetInt(int64(v))

	return nil
}

func assignInt(dst reflect.Value, v int32) error {
	if dst.Kind() != reflect.Int32 {
		return errs.ErrTypeIDMismatch
	}

	dst.SetInt(int64(v))

	return nil
}

func assignLong(dst reflect.Value, v int64) error {
	switch dst.Kind() {
	case reflect.Int64, reflect.Int:
		dst.SetInt(v)
		return nil
	default:
		return errs.ErrTypeIDMismatch
	}
}

func assignFloat(dst reflect.Value, v float32) error {
	if dst.Kind() != reflect.Float32 {
		return errs.ErrTypeIDMismatch
	}

	dst.SetFloat(float64(v))

	return nil
}

func assignDouble(dst reflect.Value, v float64) error {
	if dst.Kind() != reflect.Float64 {
		return errs.ErrTypeIDMismatch
	}

	dst.SetFloat(v)

	return nil
}

func assignString(dst reflect.Value, v string) error {
	if dst.Kind() != reflect.String {
		return errs.ErrTypeIDMismatch
	}

	dst.SetString(v)

	return nil
}

func (d *Decoder) decodeByteArray(dst reflect.Value) error {
	if dst.Type() != reflect.TypeOf([]int8(nil)) {
		return errs.ErrTypeIDMismatch
	}

	n, err := d.r.ReadSeqLength()
	if err != nil {
		return err
	}

	out, err := readInt8Array(d.r, n)
	if err != nil {
		return err
	}

	dst.Set(reflect.ValueOf(out))

	return nil
}

func (d *Decoder) decodeIntArray(dst reflect.Value) error {
	if dst.Type() != reflect.TypeOf([]int32(nil)) {
		return errs.ErrTypeIDMismatch
	}

	n, err := d.r.ReadSeqLength()
	if err != nil {
		return err
	}

	out, err := readInt32Array(d.r, n, d.fastArray)
	if err != nil {
		return err
	}

	dst.Set(reflect.ValueOf(out))

	return nil
}

func (d *Decoder) decodeLongArray(dst reflect.Value) error {
	if dst.Type() != reflect.TypeOf([]int64(nil)) {
		return errs.ErrTypeIDMismatch
	}

	n, err := d.r.ReadSeqLength()
	if err != nil {
		return err
	}

	out, err := readInt64Array(d.r, n, d.fastArray)
	if err != nil {
		return err
	}

	dst.Set(reflect.ValueOf(out))

	return nil
}

func (d *Decoder) decodeList(dst reflect.Value) error {
	if dst.Kind() != reflect.Slice {
		return errs.ErrTypeIDMismatch
	}

	elemID, err := d.r.ReadTypeID()
	if err != nil {
		return err
	}

	n, err := d.r.ReadSeqLength()
	if err != nil {
		return err
	}

	if elemID == format.End || n == 0 {
		dst.Set(reflect.MakeSlice(dst.Type(), 0, 0))
		return nil
	}

	if !elemID.IsValid() {
		return errs.WithOffset(errs.ErrTypeIDInvalid, d.r.Index())
	}

	out := reflect.MakeSlice(dst.Type(), int(n), int(n))

	for i := range int(n) {
		if err := d.decodeInner(elemID, out.Index(i)); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	dst.Set(out)

	return nil
}

func (d *Decoder) decodeInner(id format.TypeID, dst reflect.Value) error {
	dst = allocPtr(dst)

	switch id {
	case format.Compound:
		if dst.Kind() != reflect.Struct && dst.Kind() != reflect.Map {
			return errs.ErrTypeIDMismatch
		}

		return d.decodeCompound(dst)
	case format.List, format.ByteArray, format.IntArray, format.LongArray:
		return errs.ErrUnsupportedListInnerType
	default:
		return d.decodeValue(id, dst)
	}
}

func (d *Decoder) decodeCompound(dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Struct:
		return d.decodeCompoundIntoStruct(dst)
	case reflect.Map:
		return d.decodeCompoundIntoMap(dst)
	default:
		return errs.ErrTypeIDMismatch
	}
}

func (d *Decoder) decodeCompoundIntoStruct(dst reflect.Value) error {
	fields := structFieldsByName(dst.Type())

	for {
		id, err := d.r.ReadTypeID()
		if err != nil {
			return err
		}

		if id == format.End {
			return nil
		}

		if !id.IsValid() {
			return errs.WithOffset(errs.ErrTypeIDInvalid, d.r.Index())
		}

		name, err := d.r.ReadName()
		if err != nil {
			return err
		}

		idx, ok := fields[name]
		if !ok {
			if err := d.skipValue(id); err != nil {
				return err
			}

			continue
		}

		if err := d.decodeValue(id, dst.Field(idx)); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
}

func (d *Decoder) decodeCompoundIntoMap(dst reflect.Value) error {
	t := dst.Type()
	if t.Key().Kind() != reflect.String {
		return errs.ErrKeyMustBeAString
	}

	if dst.IsNil() {
		dst.Set(reflect.MakeMap(t))
	}

	elemType := t.Elem()

	for {
		id, err := d.r.ReadTypeID()
		if err != nil {
			return err
		}

		if id == format.End {
			return nil
		}

		if !id.IsValid() {
			return errs.WithOffset(errs.ErrTypeIDInvalid, d.r.Index())
		}

		name, err := d.r.ReadName()
		if err != nil {
			return err
		}

		ev := reflect.New(elemType).Elem()
		if err := d.decodeValue(id, ev); err != nil {
			return fmt.Errorf("key %q: %w", name, err)
		}

		dst.SetMapIndex(reflect.ValueOf(name).Convert(t.Key()), ev)
	}
}

// skipValue consumes the payload of id without storing it, used for
// struct fields present in the stream but absent from the destination
// type.
func (d *Decoder) skipValue(id format.TypeID) error {
	switch id {
	case format.Byte:
		_, err := d.r.ReadByteInner()
		return err
	case format.Short:
		_, err := d.r.ReadShortInner()
		return err
	case format.Int:
		_, err := d.r.ReadIntInner()
		return err
	case format.Long:
		_, err := d.r.ReadLongInner()
		return err
	case format.Float:
		_, err := d.r.ReadFloatInner()
		return err
	case format.Double:
		_, err := d.r.ReadDoubleInner()
		return err
	case format.String:
		_, err := d.r.ReadStringInner()
		return err
	case format.ByteArray:
		n, err := d.r.ReadSeqLength()
		if err != nil {
			return err
		}

		_, err = d.r.ReadRawBytes(int(n))

		return err
	case format.IntArray:
		n, err := d.r.ReadSeqLength()
		if err != nil {
			return err
		}

		_, err = d.r.ReadRawBytes(int(n) * 4)

		return err
	case format.LongArray:
		n, err := d.r.ReadSeqLength()
		if err != nil {
			return err
		}

		_, err = d.r.ReadRawBytes(int(n) * 8)

		return err
	case format.List:
		elemID, err := d.r.ReadTypeID()
		if err != nil {
			return err
		}

		n, err := d.r.ReadSeqLength()
		if err != nil {
			return err
		}

		for range int(n) {
			if err := d.skipValue(elemID); err != nil {
				return err
			}
		}

		return nil
	case format.Compound:
		for {
			cid, err := d.r.ReadTypeID()
			if err != nil {
				return err
			}

			if cid == format.End {
				return nil
			}

			if !cid.IsValid() {
				return errs.WithOffset(errs.ErrTypeIDInvalid, d.r.Index())
			}

			if _, err := d.r.ReadName(); err != nil {
				return err
			}

			if err := d.skipValue(cid); err != nil {
				return err
			}
		}
	default:
		return errs.WithOffset(errs.ErrTypeIDInvalid, d.r.Index())
	}
}

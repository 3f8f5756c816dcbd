package codec

import (
	"fmt"

	"github.com/luojia65/coruscant/errs"
	"github.com/luojia65/coruscant/format"
	"github.com/luojia65/coruscant/value"
	"github.com/luojia65/coruscant/wire"
)

// DecodeValue reads one root tag from r into a dynamic value.Value tree,
// the way Decode reads one into a static Go type. It returns the root
// name alongside the value. The IntArray/LongArray host-endianness fast
// path is enabled; use DecodeValueFast to control it explicitly.
func DecodeValue(r wire.Reader) (string, value.Value, error) {
	return DecodeValueFast(r, true)
}

// DecodeValueFast is DecodeValue with explicit control over the
// IntArray/LongArray bulk-read fast path, mirroring Decoder.SetFastArrayPath.
func DecodeValueFast(r wire.Reader, fastArray bool) (string, value.Value, error) {
	id, err := r.ReadTypeID()
	if err != nil {
		return "", value.Value{}, err
	}

	if !id.IsValid() {
		return "", value.Value{}, errs.WithOffset(errs.ErrTypeIDInvalid, r.Index())
	}

	name, err := r.ReadName()
	if err != nil {
		return "", value.Value{}, err
	}

	v, err := decodeValueBody(r, id, fastArray)

	return name, v, err
}

func decodeValueBody(r wire.Reader, id format.TypeID, fastArray bool) (value.Value, error) {
	switch id {
	case format.Byte:
		v, err := r.ReadByteInner()
		if err != nil {
			return value.Value{}, err
		}

		return value.Byte(v), nil
	case format.Short:
		v, err := r.ReadShortInner()
		if err != nil {
			return value.Value{}, err
		}

		return value.Short(v), nil
	case format.Int:
		v, err := r.ReadIntInner()
		if err != nil {
			return value.Value{}, err
		}

		return value.Int(v), nil
	case format.Long:
		v, err := r.ReadLongInner()
		if err != nil {
			return value.Value{}, err
		}

		return value.Long(v), nil
	case format.Float:
		v, err := r.ReadFloatInner()
		if err != nil {
			return value.Value{}, err
		}

		return value.Float(v), nil
	case format.Double:
		v, err := r.ReadDoubleInner()
		if err != nil {
			return value.Value{}, err
		}

		return value.Double(v), nil
	case format.String:
		v, err := r.ReadStringInner()
		if err != nil {
			return value.Value{}, err
		}

		return value.String(v), nil
	case format.ByteArray:
		n, err := r.ReadSeqLength()
		if err != nil {
			return value.Value{}, err
		}

		xs, err := readInt8Array(r, n)
		if err != nil {
			return value.Value{}, err
		}

		return value.ByteArray(xs), nil
	case format.IntArray:
		n, err := r.ReadSeqLength()
		if err != nil {
			return value.Value{}, err
		}

		xs, err := readInt32Array(r, n, fastArray)
		if err != nil {
			return value.Value{}, err
		}

		return value.IntArray(xs), nil
	case format.LongArray:
		n, err := r.ReadSeqLength()
		if err != nil {
			return value.Value{}, err
		}

		xs, err := readInt64Array(r, n, fastArray)
		if err != nil {
			return value.Value{}, err
		}

		return value.LongArray(xs), nil
	case format.List:
		elemID, err := r.ReadTypeID()
		if err != nil {
			return value.Value{}, err
		}

		n, err := r.ReadSeqLength()
		if err != nil {
			return value.Value{}, err
		}

		if elemID != format.End && !elemID.IsValid() {
			return value.Value{}, errs.WithOffset(errs.ErrTypeIDInvalid, r.Index())
		}

		elems := make([]value.Value, n)
		for i := range elems {
			ev, err := decodeValueBody(r, elemID, fastArray)
			if err != nil {
				return value.Value{}, fmt.Errorf("element %d: %w", i, err)
			}

			elems[i] = ev
		}

		return value.List(elems), nil
	case format.Compound:
		m := value.NewMap()

		for {
			cid, err := r.ReadTypeID()
			if err != nil {
				return value.Value{}, err
			}

			if cid == format.End {
				break
			}

			if !cid.IsValid() {
				return value.Value{}, errs.WithOffset(errs.ErrTypeIDInvalid, r.Index())
			}

			cname, err := r.ReadName()
			if err != nil {
				return value.Value{}, err
			}

			cv, err := decodeValueBody(r, cid, fastArray)
			if err != nil {
				return value.Value{}, fmt.Errorf("key %q: %w", cname, err)
			}

			m.Set(cname, cv)
		}

		return value.Compound(m), nil
	default:
		return value.Value{}, errs.WithOffset(errs.ErrTypeIDInvalid, r.Index())
	}
}

// EncodeValue writes v as a named tag through f, the value-tree
// counterpart to Encoder.Encode: re-dispatching to the same scalar and
// compound wire paths instead of going through reflection.
func EncodeValue(f wire.Formatter, name string, v value.Value) error {
	switch v.Kind() {
	case format.Byte:
		b, _ := v.AsByte()
		f.WriteByteTag(name, b)
	case format.Short:
		s, _ := v.AsShort()
		f.WriteShortTag(name, s)
	case format.Int:
		i, _ := v.AsInt()
		f.WriteIntTag(name, i)
	case format.Long:
		l, _ := v.AsLong()
		f.WriteLongTag(name, l)
	case format.Float:
		fv, _ := v.AsFloat()
		f.WriteFloatTag(name, fv)
	case format.Double:
		d, _ := v.AsDouble()
		f.WriteDoubleTag(name, d)
	case format.String:
		s, _ := v.AsString()
		if err := checkStringLength(s); err != nil {
			return err
		}

		f.WriteStringTag(name, s)
	case format.ByteArray:
		xs, _ := v.AsByteArray()
		writeByteArrayTag(f, name, xs)
	case format.IntArray:
		xs, _ := v.AsIntArray()
		writeIntArrayTag(f, name, xs)
	case format.LongArray:
		xs, _ := v.AsLongArray()
		writeLongArrayTag(f, name, xs)
	case format.List:
		return encodeValueList(f, name, v)
	case format.Compound:
		return encodeValueCompound(f, name, v)
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedType, v.Kind())
	}

	return nil
}

func writeByteArrayTag(f wire.Formatter, name string, xs []int8) {
	f.WriteArrayHead(format.ByteArray, int32(len(xs)), name)

	if bw, ok := f.(wire.BulkArrayWriter); ok {
		bw.WriteByteArrayInner(xs)
	} else {
		for _, x := range xs {
			f.WriteByteInner(x)
		}
	}

	f.CloseArray()
}

func writeIntArrayTag(f wire.Formatter, name string, xs []int32) {
	f.WriteArrayHead(format.IntArray, int32(len(xs)), name)

	if bw, ok := f.(wire.BulkArrayWriter); ok {
		bw.WriteIntArrayInner(xs)
	} else {
		for _, x := range xs {
			f.WriteIntInner(x)
		}
	}

	f.CloseArray()
}

func writeLongArrayTag(f wire.Formatter, name string, xs []int64) {
	f.WriteArrayHead(format.LongArray, int32(len(xs)), name)

	if bw, ok := f.(wire.BulkArrayWriter); ok {
		bw.WriteLongArrayInner(xs)
	} else {
		for _, x := range xs {
			f.WriteLongInner(x)
		}
	}

	f.CloseArray()
}

func encodeValueList(f wire.Formatter, name string, v value.Value) error {
	elems, _ := v.AsList()
	if len(elems) == 0 {
		f.WriteListTag(format.End, 0, name)
		f.CloseList()

		return nil
	}

	elemID := elems[0].Kind()
	f.WriteListTag(elemID, int32(len(elems)), name)

	for i, elem := range elems {
		if elem.Kind() != elemID {
			return fmt.Errorf("%w: element %d", errs.ErrListDifferentType, i)
		}

		if elemID == format.Compound {
			f.WriteCompoundInner()
		}

		if err := writeValueInner(f, elem); err != nil {
			return err
		}
	}

	f.CloseList()

	return nil
}

func encodeValueCompound(f wire.Formatter, name string, v value.Value) error {
	f.WriteCompoundTag(name)

	m, _ := v.AsCompound()
	for _, k := range m.Keys() {
		cv, _ := m.Get(k)
		if err := EncodeValue(f, k, cv); err != nil {
			return err
		}
	}

	f.WriteEndTag()

	return nil
}

// writeValueInner writes an untagged List element. As with the reflect
// encoder, nested List/Array elements are unsupported.
func writeValueInner(f wire.Formatter, v value.Value) error {
	switch v.Kind() {
	case format.Byte:
		b, _ := v.AsByte()
		f.WriteByteInner(b)
	case format.Short:
		s, _ := v.AsShort()
		f.WriteShortInner(s)
	case format.Int:
		i, _ := v.AsInt()
		f.WriteIntInner(i)
	case format.Long:
		l, _ := v.AsLong()
		f.WriteLongInner(l)
	case format.Float:
		fv, _ := v.AsFloat()
		f.WriteFloatInner(fv)
	case format.Double:
		d, _ := v.AsDouble()
		f.WriteDoubleInner(d)
	case format.String:
		s, _ := v.AsString()
		if err := checkStringLength(s); err != nil {
			return err
		}

		f.WriteStringInner(s)
	case format.Compound:
		m, _ := v.AsCompound()
		for _, k := range m.Keys() {
			cv, _ := m.Get(k)
			if err := EncodeValue(f, k, cv); err != nil {
				return err
			}
		}

		f.WriteEndTag()
	case format.List, format.ByteArray, format.IntArray, format.LongArray:
		return errs.ErrUnsupportedListInnerType
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedType, v.Kind())
	}

	return nil
}

package codec

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/luojia65/coruscant/errs"
	"github.com/luojia65/coruscant/format"
	"github.com/luojia65/coruscant/value"
	"github.com/luojia65/coruscant/wire"
)

// checkStringLength rejects a string whose byte length would overflow
// the wire format's 2-byte length prefix instead of silently truncating
// it into a corrupt stream.
func checkStringLength(s string) error {
	if len(s) > math.MaxUint16 {
		return errs.ErrInvalidStringLength
	}

	return nil
}

type rootState int

const (
	stateRoot rootState = iota
	stateInner
)

// Encoder translates a Go value into formatter calls, keeping the
// pending-name discipline a NBT's name-hoisting requires: the name that
// belongs in the next tag header is always known one step before the
// value that fills it.
type Encoder struct {
	f             wire.Formatter
	pendingName   string
	rootNameGiven bool
	state         rootState
}

// NewEncoder creates an Encoder that writes through f with no caller-given
// root name: if the root value turns out to be a named struct, its type
// name is substituted as the root name (spec.md's bare-value form).
func NewEncoder(f wire.Formatter) *Encoder {
	return &Encoder{f: f, state: stateRoot}
}

// NewNamedEncoder creates an Encoder whose root name is fixed to rootName
// exactly, including the empty string — no struct-name substitution
// happens, since the caller already made a choice.
func NewNamedEncoder(f wire.Formatter, rootName string) *Encoder {
	return &Encoder{f: f, pendingName: rootName, rootNameGiven: true, state: stateRoot}
}

// Encode writes v as the encoder's single top-level tag.
func (e *Encoder) Encode(v any) error {
	rv := reflect.ValueOf(v)

	if e.state == stateRoot {
		if !e.rootNameGiven {
			if cv := deref(rv); cv.IsValid() &&
				cv.Kind() == reflect.Struct && cv.Type() != arrayType && cv.Type() != valueType {
				e.pendingName = cv.Type().Name()
			}
		}

		e.state = stateInner
	}

	return e.encodeValue(rv)
}

func (e *Encoder) encodeValue(v reflect.Value) error {
	name := e.pendingName

	if cv := deref(v); cv.IsValid() && cv.Type() == valueType {
		return EncodeValue(e.f, name, cv.Interface().(value.Value))
	}

	id, cv, err := classify(v)
	if err != nil {
		return err
	}

	switch id {
	case format.Byte:
		e.f.WriteByteTag(name, toInt8(cv))
	case format.Short:
		e.f.WriteShortTag(name, int16(cv.Int()))
	case format.Int:
		e.f.WriteIntTag(name, int32(cv.Int()))
	case format.Long:
		e.f.WriteLongTag(name, cv.Int())
	case format.Float:
		e.f.WriteFloatTag(name, float32(cv.Float()))
	case format.Double:
		e.f.WriteDoubleTag(name, cv.Float())
	case format.String:
		s := cv.String()
		if err := checkStringLength(s); err != nil {
			return err
		}

		e.f.WriteStringTag(name, s)
	case format.Compound:
		return e.encodeCompound(name, cv)
	case format.List:
		return e.encodeListTagged(name, cv)
	case format.ByteArray, format.IntArray, format.LongArray:
		return e.encodeArrayTagged(name, id, cv)
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedType, id)
	}

	return nil
}

func (e *Encoder) encodeCompound(name string, v reflect.Value) error {
	e.f.WriteCompoundTag(name)

	if err := e.writeCompoundBody(v); err != nil {
		return err
	}

	e.f.WriteEndTag()

	return nil
}

func (e *Encoder) writeCompoundBody(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		return e.encodeStructFields(v)
	case reflect.Map:
		return e.encodeMapEntries(v)
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedType, v.Kind())
	}
}

func (e *Encoder) encodeStructFields(v reflect.Value) error {
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

		e.pendingName = name
		if err := e.encodeValue(fv); err != nil {
			return fmt.Errorf("field %q: %w", sf.Name, err)
		}
	}

	return nil
}

func (e *Encoder) encodeMapEntries(v reflect.Value) error {
	type entry struct {
		key string
		val reflect.Value
	}

	keys := v.MapKeys()
	entries := make([]entry, 0, len(keys))

	for _, k := range keys {
		dk := deref(k)
		if !dk.IsValid() || dk.Kind() != reflect.String {
			return errs.ErrKeyMustBeAString
		}

		entries = append(entries, entry{key: dk.String(), val: v.MapIndex(k)})
	}

	// Map key order is unspecified by the format; sorting keeps encode
	// output deterministic for tests and diffs.
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	for _, en := range entries {
		if isNone(en.val) {
			continue
		}

		e.pendingName = en.key
		if err := e.encodeValue(en.val); err != nil {
			return fmt.Errorf("key %q: %w", en.key, err)
		}
	}

	return nil
}

// isNone reports whether v is the Go analogue of serde's None: a nil
// pointer or a nil interface. Such fields/entries are omitted entirely
// rather than encoded as some sentinel tag.
func isNone(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func (e *Encoder) encodeListTagged(name string, v reflect.Value) error {
	n := v.Len()
	if n == 0 {
		e.f.WriteListTag(format.End, 0, name)
		e.f.CloseList()

		return nil
	}

	elemID, _, err := classify(v.Index(0))
	if err != nil {
		return err
	}

	e.f.WriteListTag(elemID, int32(n), name)

	for i := range n {
		id, cv, err := classify(v.Index(i))
		if err != nil {
			return err
		}

		if id != elemID {
			return fmt.Errorf("%w: element %d", errs.ErrListDifferentType, i)
		}

		if id == format.Compound {
			e.f.WriteCompoundInner()
		}

		if err := e.writeInner(id, cv); err != nil {
			return err
		}
	}

	e.f.CloseList()

	return nil
}

func (e *Encoder) encodeArrayTagged(name string, arrID format.TypeID, seq reflect.Value) error {
	n := seq.Len()
	e.f.WriteArrayHead(arrID, int32(n), name)

	if !e.writeArrayBulk(arrID, seq) {
		wantKind := arrayElemKind(arrID)

		for i := range n {
			id, cv, err := classify(seq.Index(i))
			if err != nil {
				return err
			}

			if id != wantKind {
				return fmt.Errorf("%w: element %d", errs.ErrArrayDifferentType, i)
			}

			if err := e.writeInner(id, cv); err != nil {
				return err
			}
		}
	}

	e.f.CloseArray()

	return nil
}

// writeArrayBulk writes seq's elements in one formatter call when seq is
// exactly []int8/[]int32/[]int64 and the formatter supports
// wire.BulkArrayWriter, skipping the per-element reflect loop (and its
// homogeneity check, which the slice's static element type already
// guarantees). Reports whether it handled the write.
func (e *Encoder) writeArrayBulk(arrID format.TypeID, seq reflect.Value) bool {
	bw, ok := e.f.(wire.BulkArrayWriter)
	if !ok {
		return false
	}

	switch arrID {
	case format.ByteArray:
		if seq.Type() == reflect.TypeOf([]int8(nil)) {
			bw.WriteByteArrayInner(seq.Interface().([]int8))
			return true
		}
	case format.IntArray:
		if seq.Type() == reflect.TypeOf([]int32(nil)) {
			bw.WriteIntArrayInner(seq.Interface().([]int32))
			return true
		}
	case format.LongArray:
		if seq.Type() == reflect.TypeOf([]int64(nil)) {
			bw.WriteLongArrayInner(seq.Interface().([]int64))
			return true
		}
	}

	return false
}

// writeInner writes an untagged List/Array element payload. Nested
// List/Array elements (a List of Lists, a List of Arrays) are rejected:
// the formatter's header writers always bundle a tag id or array id,
// which an untagged inner element has no room for, and none of this
// format's testable scenarios exercise the nesting.
func (e *Encoder) writeInner(id format.TypeID, v reflect.Value) error {
	switch id {
	case format.Byte:
		e.f.WriteByteInner(toInt8(v))
	case format.Short:
		e.f.WriteShortInner(int16(v.Int()))
	case format.Int:
		e.f.WriteIntInner(int32(v.Int()))
	case format.Long:
		e.f.WriteLongInner(v.Int())
	case format.Float:
		e.f.WriteFloatInner(float32(v.Float()))
	case format.Double:
		e.f.WriteDoubleInner(v.Float())
	case format.String:
		s := v.String()
		if err := checkStringLength(s); err != nil {
			return err
		}

		e.f.WriteStringInner(s)
	case format.Compound:
		if err := e.writeCompoundBody(v); err != nil {
			return err
		}

		e.f.WriteEndTag()
	case format.List, format.ByteArray, format.IntArray, format.LongArray:
		return errs.ErrUnsupportedListInnerType
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedType, id)
	}

	return nil
}

// Package value implements the in-memory NBT value tree: a sum type with
// one variant per tag kind (excluding End), and an ordered string-keyed
// map for the Compound variant.
package value

import (
	"math"

	"github.com/luojia65/coruscant/format"
	"github.com/luojia65/coruscant/internal/hash"
)

// Kind identifies which variant a Value holds. It mirrors format.TypeID
// but excludes End, which has no value-tree representation.
type Kind = format.TypeID

// Value is a decoded NBT value. Exactly one of its fields is meaningful,
// selected by Kind.
type Value struct {
	kind Kind

	i8  int8
	i16 int16
	i32 int32
	i64 int64
	f32 float32
	f64 float64
	str string

	byteArray []int8
	intArray  []int32
	longArray []int64
	list      []Value
	compound  *Map
}

func (v Value) Kind() Kind { return v.kind }

func Byte(x int8) Value      { return Value{kind: format.Byte, i8: x} }
func Short(x int16) Value    { return Value{kind: format.Short, i16: x} }
func Int(x int32) Value      { return Value{kind: format.Int, i32: x} }
func Long(x int64) Value     { return Value{kind: format.Long, i64: x} }
func Float(x float32) Value  { return Value{kind: format.Float, f32: x} }
func Double(x float64) Value { return Value{kind: format.Double, f64: x} }
func String(x string) Value  { return Value{kind: format.String, str: x} }

func ByteArray(x []int8) Value  { return Value{kind: format.ByteArray, byteArray: x} }
func IntArray(x []int32) Value  { return Value{kind: format.IntArray, intArray: x} }
func LongArray(x []int64) Value { return Value{kind: format.LongArray, longArray: x} }

// List wraps elems as a List value. Elements should share one Kind, but
// Value itself does not enforce it — homogeneity is the encode driver's
// concern when a List value is re-encoded.
func List(elems []Value) Value { return Value{kind: format.List, list: elems} }

// Compound wraps m as a Compound value.
func Compound(m *Map) Value { return Value{kind: format.Compound, compound: m} }

func (v Value) AsByte() (int8, bool)         { return v.i8, v.kind == format.Byte }
func (v Value) AsShort() (int16, bool)       { return v.i16, v.kind == format.Short }
func (v Value) AsInt() (int32, bool)         { return v.i32, v.kind == format.Int }
func (v Value) AsLong() (int64, bool)        { return v.i64, v.kind == format.Long }
func (v Value) AsFloat() (float32, bool)     { return v.f32, v.kind == format.Float }
func (v Value) AsDouble() (float64, bool)    { return v.f64, v.kind == format.Double }
func (v Value) AsString() (string, bool)     { return v.str, v.kind == format.String }
func (v Value) AsByteArray() ([]int8, bool)  { return v.byteArray, v.kind == format.ByteArray }
func (v Value) AsIntArray() ([]int32, bool)  { return v.intArray, v.kind == format.IntArray }
func (v Value) AsLongArray() ([]int64, bool) { return v.longArray, v.kind == format.LongArray }
func (v Value) AsList() ([]Value, bool)      { return v.list, v.kind == format.List }
func (v Value) AsCompound() (*Map, bool)     { return v.compound, v.kind == format.Compound }

// Hash returns a content hash over the value tree: equal trees hash
// identically regardless of Compound key order, since hashing recurses
// through Map.Keys() in sorted order. Kind is mixed into every node so,
// e.g., Short(5) and Int(5) hash differently.
func (v Value) Hash() uint64 {
	const kindSeed = 14695981039346656037 // FNV offset basis, reused as a cheap kind-mixing constant.
	h := kindSeed ^ uint64(v.kind)*1099511628211

	switch v.kind {
	case format.Byte:
		return h ^ hash.ID(string([]byte{byte(v.i8)}))
	case format.Short:
		return h ^ hashInt64s([]int64{int64(v.i16)})
	case format.Int:
		return h ^ hashInt64s([]int64{int64(v.i32)})
	case format.Long:
		return h ^ hashInt64s([]int64{v.i64})
	case format.Float:
		return h ^ hashInt64s([]int64{int64(math.Float32bits(v.f32))})
	case format.Double:
		return h ^ hashInt64s([]int64{int64(math.Float64bits(v.f64))})
	case format.String:
		return h ^ hash.ID(v.str)
	case format.ByteArray:
		return h ^ hashInt8s(v.byteArray)
	case format.IntArray:
		return h ^ hashInt32s(v.intArray)
	case format.LongArray:
		return h ^ hashInt64s(v.longArray)
	case format.List:
		acc := h
		for _, elem := range v.list {
			acc = acc*1099511628211 ^ elem.Hash()
		}

		return acc
	case format.Compound:
		if v.compound == nil {
			return h
		}

		acc := h
		for _, k := range v.compound.Keys() {
			entry, _ := v.compound.Get(k)
			acc = acc*1099511628211 ^ hash.ID(k) ^ entry.Hash()
		}

		return acc
	default:
		return h
	}
}

func hashInt8s(xs []int8) uint64 {
	b := make([]byte, len(xs))
	for i, x := range xs {
		b[i] = byte(x)
	}

	return hash.ID(string(b))
}

func hashInt32s(xs []int32) uint64 {
	b := make([]byte, len(xs)*4)
	for i, x := range xs {
		b[i*4] = byte(x >> 24)
		b[i*4+1] = byte(x >> 16)
		b[i*4+2] = byte(x >> 8)
		b[i*4+3] = byte(x)
	}

	return hash.ID(string(b))
}

func hashInt64s(xs []int64) uint64 {
	b := make([]byte, len(xs)*8)
	for i, x := range xs {
		for j := range 8 {
			b[i*8+j] = byte(x >> (56 - 8*j))
		}
	}

	return hash.ID(string(b))
}

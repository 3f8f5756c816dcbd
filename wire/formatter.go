package wire

import "github.com/luojia65/coruscant/format"

// Formatter is the capability the encode driver uses to render tags. It
// has binary and transcript variants: the encode driver is unaware which
// one it's talking to.
//
// Every tag writer takes the name as part of the call, since NBT embeds a
// field's name inside its own tag header — the encode driver never writes
// a name on its own (name-hoisting).
type Formatter interface {
	WriteByteTag(name string, v int8)
	WriteShortTag(name string, v int16)
	WriteIntTag(name string, v int32)
	WriteLongTag(name string, v int64)
	WriteFloatTag(name string, v float32)
	WriteDoubleTag(name string, v float64)
	WriteStringTag(name string, v string)

	// WriteCompoundTag writes the opening header of a Compound.
	WriteCompoundTag(name string)
	// WriteEndTag writes the id-0 terminator of the innermost open
	// Compound.
	WriteEndTag()

	// WriteListTag writes a List header: (id=9, name, elementID, len).
	WriteListTag(elementID format.TypeID, length int32, name string)
	// WriteArrayHead writes an Array header: (arrayID, name, len).
	// arrayID is one of ByteArray, IntArray, LongArray.
	WriteArrayHead(arrayID format.TypeID, length int32, name string)

	// Inner writers emit the untagged payload of a List/Array element.
	WriteByteInner(v int8)
	WriteShortInner(v int16)
	WriteIntInner(v int32)
	WriteLongInner(v int64)
	WriteFloatInner(v float32)
	WriteDoubleInner(v float64)
	WriteStringInner(v string)
	// WriteCompoundInner opens an unnamed Compound element inside a
	// List. A no-op for binary; indents and labels for transcript.
	WriteCompoundInner()

	// CloseList/CloseArray terminate a List/Array begun by
	// WriteListTag/WriteArrayHead. No-ops for binary (the header's
	// declared length is the only terminator); transcript writes
	// EndList/EndArray.
	CloseList()
	CloseArray()

	// Bytes returns the accumulated output. For BinaryFormatter this is
	// the raw NBT byte stream; for TranscriptFormatter it is the UTF-8
	// text, as a []byte.
	Bytes() []byte
}

// BulkArrayWriter is an optional capability a Formatter may implement to
// write a whole ByteArray/IntArray/LongArray payload in one call instead
// of one Inner call per element. The codec package type-asserts for it
// and falls back to the per-element Inner writers when absent.
// BinaryFormatter implements it with a host-endianness fast path;
// TranscriptFormatter does not, since every element needs its own line.
type BulkArrayWriter interface {
	WriteByteArrayInner(v []int8)
	WriteIntArrayInner(v []int32)
	WriteLongArrayInner(v []int64)
}

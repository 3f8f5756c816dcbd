package wire

import (
	"math"
	"unsafe"

	"github.com/luojia65/coruscant/endian"
	"github.com/luojia65/coruscant/format"
	"github.com/luojia65/coruscant/internal/pool"
)

// BinaryFormatter renders tags as the raw big-endian NBT byte stream
// described in the format's data model. It owns a pooled buffer;
// callers must call Release after copying out Bytes().
type BinaryFormatter struct {
	buf *pool.ByteBuffer
}

var _ Formatter = (*BinaryFormatter)(nil)

// NewBinaryFormatter creates a formatter backed by a pooled buffer.
func NewBinaryFormatter() *BinaryFormatter {
	return &BinaryFormatter{buf: pool.Get()}
}

// Release returns the formatter's buffer to the pool. Callers must copy
// Bytes() before calling Release, since the pool may reuse the backing
// array.
func (f *BinaryFormatter) Release() {
	pool.Put(f.buf)
	f.buf = nil
}

func (f *BinaryFormatter) writeName(name string) {
	n := len(name)
	start := f.buf.ExtendOrGrow(2 + n)
	f.buf.B[start] = byte(n >> 8)
	f.buf.B[start+1] = byte(n)
	copy(f.buf.B[start+2:], name)
}

func (f *BinaryFormatter) writeHeader(id format.TypeID, name string) {
	f.buf.MustWriteByte(byte(id))
	f.writeName(name)
}

func (f *BinaryFormatter) writeUint32(v uint32) {
	start := f.buf.ExtendOrGrow(4)
	f.buf.B[start] = byte(v >> 24)
	f.buf.B[start+1] = byte(v >> 16)
	f.buf.B[start+2] = byte(v >> 8)
	f.buf.B[start+3] = byte(v)
}

func (f *BinaryFormatter) writeUint64(v uint64) {
	start := f.buf.ExtendOrGrow(8)
	f.buf.B[start] = byte(v >> 56)
	f.buf.B[start+1] = byte(v >> 48)
	f.buf.B[start+2] = byte(v >> 40)
	f.buf.B[start+3] = byte(v >> 32)
	f.buf.B[start+4] = byte(v >> 24)
	f.buf.B[start+5] = byte(v >> 16)
	f.buf.B[start+6] = byte(v >> 8)
	f.buf.B[start+7] = byte(v)
}

func (f *BinaryFormatter) WriteByteTag(name string, v int8) {
	f.writeHeader(format.Byte, name)
	f.WriteByteInner(v)
}

func (f *BinaryFormatter) WriteShortTag(name string, v int16) {
	f.writeHeader(format.Short, name)
	f.WriteShortInner(v)
}

func (f *BinaryFormatter) WriteIntTag(name string, v int32) {
	f.writeHeader(format.Int, name)
	f.WriteIntInner(v)
}

func (f *BinaryFormatter) WriteLongTag(name string, v int64) {
	f.writeHeader(format.Long, name)
	f.WriteLongInner(v)
}

func (f *BinaryFormatter) WriteFloatTag(name string, v float32) {
	f.writeHeader(format.Float, name)
	f.WriteFloatInner(v)
}

func (f *BinaryFormatter) WriteDoubleTag(name string, v float64) {
	f.writeHeader(format.Double, name)
	f.WriteDoubleInner(v)
}

func (f *BinaryFormatter) WriteStringTag(name string, v string) {
	f.writeHeader(format.String, name)
	f.WriteStringInner(v)
}

func (f *BinaryFormatter) WriteCompoundTag(name string) {
	f.writeHeader(format.Compound, name)
}

func (f *BinaryFormatter) WriteEndTag() {
	f.buf.MustWriteByte(byte(format.End))
}

func (f *BinaryFormatter) WriteListTag(elementID format.TypeID, length int32, name string) {
	f.writeHeader(format.List, name)
	f.buf.MustWriteByte(byte(elementID))
	f.writeUint32(uint32(length))
}

func (f *BinaryFormatter) WriteArrayHead(arrayID format.TypeID, length int32, name string) {
	f.writeHeader(arrayID, name)
	f.writeUint32(uint32(length))
}

func (f *BinaryFormatter) WriteByteInner(v int8) {
	f.buf.MustWriteByte(byte(v))
}

func (f *BinaryFormatter) WriteShortInner(v int16) {
	start := f.buf.ExtendOrGrow(2)
	f.buf.B[start] = byte(v >> 8)
	f.buf.B[start+1] = byte(v)
}

func (f *BinaryFormatter) WriteIntInner(v int32) {
	f.writeUint32(uint32(v))
}

func (f *BinaryFormatter) WriteLongInner(v int64) {
	f.writeUint64(uint64(v))
}

func (f *BinaryFormatter) WriteFloatInner(v float32) {
	f.writeUint32(math.Float32bits(v))
}

func (f *BinaryFormatter) WriteDoubleInner(v float64) {
	f.writeUint64(math.Float64bits(v))
}

func (f *BinaryFormatter) WriteStringInner(v string) {
	f.writeName(v)
}

func (f *BinaryFormatter) WriteCompoundInner() {
	// No-op: a Compound nested in a List carries no name of its own.
}

func (f *BinaryFormatter) CloseList() {
	// No-op: the List header's declared length is the only terminator.
}

func (f *BinaryFormatter) CloseArray() {
	// No-op: the Array header's declared length is the only terminator.
}

func (f *BinaryFormatter) Bytes() []byte {
	return f.buf.Bytes()
}

// WriteByteArrayInner writes v as a ByteArray/Array payload in one pass.
// Part of the optional BulkArrayWriter capability the codec package looks
// for before falling back to one WriteByteInner call per element.
func (f *BinaryFormatter) WriteByteArrayInner(v []int8) {
	n := len(v)
	if n == 0 {
		return
	}

	start := f.buf.ExtendOrGrow(n)
	for i, x := range v {
		f.buf.B[start+i] = byte(x)
	}
}

// WriteIntArrayInner writes v as an IntArray payload in one pass. On a
// big-endian host the wire order already matches memory order, so the
// whole slice is memcpy'd; otherwise each element is byte-swapped.
func (f *BinaryFormatter) WriteIntArrayInner(v []int32) {
	n := len(v)
	if n == 0 {
		return
	}

	start := f.buf.ExtendOrGrow(n * 4)

	if endian.IsNativeBigEndian() {
		src := unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), n*4)
		copy(f.buf.B[start:], src)

		return
	}

	for i, x := range v {
		o := start + i*4
		f.buf.B[o] = byte(x >> 24)
		f.buf.B[o+1] = byte(x >> 16)
		f.buf.B[o+2] = byte(x >> 8)
		f.buf.B[o+3] = byte(x)
	}
}

// WriteLongArrayInner is WriteIntArrayInner's 8-byte-element counterpart.
func (f *BinaryFormatter) WriteLongArrayInner(v []int64) {
	n := len(v)
	if n == 0 {
		return
	}

	start := f.buf.ExtendOrGrow(n * 8)

	if endian.IsNativeBigEndian() {
		src := unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), n*8)
		copy(f.buf.B[start:], src)

		return
	}

	for i, x := range v {
		o := start + i*8
		for j := range 8 {
			f.buf.B[o+j] = byte(x >> (56 - 8*j))
		}
	}
}

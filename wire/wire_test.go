package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luojia65/coruscant/errs"
	"github.com/luojia65/coruscant/format"
)

// TestBinaryFormatter_ByteField verifies the Compound ""/Byte "a" -15
// concrete scenario byte-for-byte.
func TestBinaryFormatter_ByteField(t *testing.T) {
	f := NewBinaryFormatter()
	defer f.Release()

	f.WriteCompoundTag("")
	f.WriteByteTag("a", -15)
	f.WriteEndTag()

	require.Equal(t, []byte{
		0x0A, 0x00, 0x00,
		0x01, 0x00, 0x01, 'a', 0xF1,
		0x00,
	}, f.Bytes())
}

// TestBinaryFormatter_IntList verifies the List-of-Int concrete scenario
// byte-for-byte.
func TestBinaryFormatter_IntList(t *testing.T) {
	f := NewBinaryFormatter()
	defer f.Release()

	f.WriteCompoundTag("r")
	f.WriteListTag(format.Int, 3, "xs")
	f.WriteIntInner(1)
	f.WriteIntInner(2)
	f.WriteIntInner(3)
	f.CloseList()
	f.WriteEndTag()

	require.Equal(t, []byte{
		0x0A, 0x00, 0x01, 'r',
		0x09, 0x00, 0x02, 'x', 's',
		0x03, 0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x03,
		0x00,
	}, f.Bytes())
}

// TestBinaryFormatter_ByteArray verifies the ByteArray concrete scenario
// byte-for-byte, using the bulk WriteByteArrayInner path.
func TestBinaryFormatter_ByteArray(t *testing.T) {
	f := NewBinaryFormatter()
	defer f.Release()

	f.WriteCompoundTag("r")
	f.WriteArrayHead(format.ByteArray, 3, "ba")
	f.WriteByteArrayInner([]int8{1, 2, 3})
	f.CloseArray()
	f.WriteEndTag()

	require.Equal(t, []byte{
		0x0A, 0x00, 0x01, 'r',
		0x07, 0x00, 0x02, 'b', 'a',
		0x00, 0x00, 0x00, 0x03,
		0x01, 0x02, 0x03,
		0x00,
	}, f.Bytes())
}

// TestBinaryFormatter_BulkArraysMatchPerElement verifies the bulk
// IntArray/LongArray writers produce identical bytes to the per-element
// writers, across both positive and negative values (exercising the
// byte-swap path symmetrically on whichever host endianness runs this
// test).
func TestBinaryFormatter_BulkArraysMatchPerElement(t *testing.T) {
	ints := []int32{1, -1, 1 << 20, -(1 << 20), 0}
	longs := []int64{1, -1, 1 << 40, -(1 << 40), 0}

	bulkInt := NewBinaryFormatter()
	defer bulkInt.Release()
	bulkInt.WriteIntArrayInner(ints)

	perInt := NewBinaryFormatter()
	defer perInt.Release()
	for _, x := range ints {
		perInt.WriteIntInner(x)
	}

	require.Equal(t, perInt.Bytes(), bulkInt.Bytes())

	bulkLong := NewBinaryFormatter()
	defer bulkLong.Release()
	bulkLong.WriteLongArrayInner(longs)

	perLong := NewBinaryFormatter()
	defer perLong.Release()
	for _, x := range longs {
		perLong.WriteLongInner(x)
	}

	require.Equal(t, perLong.Bytes(), bulkLong.Bytes())
}

// TestBinaryFormatter_EmptyArraysAreNoOps verifies the bulk writers handle
// a zero-length slice without writing anything.
func TestBinaryFormatter_EmptyArraysAreNoOps(t *testing.T) {
	f := NewBinaryFormatter()
	defer f.Release()

	f.WriteByteArrayInner(nil)
	f.WriteIntArrayInner(nil)
	f.WriteLongArrayInner(nil)

	require.Empty(t, f.Bytes())
}

// TestTranscriptFormatter_NestedCompound verifies the exact transcript
// scenario, including the no-trailing-newline rule.
func TestTranscriptFormatter_NestedCompound(t *testing.T) {
	f := NewTranscriptFormatter()

	f.WriteCompoundTag("Outer")
	f.WriteCompoundTag("inner")
	f.WriteByteTag("a", -15)
	f.WriteEndTag()
	f.WriteEndTag()

	want := "Compound 'Outer'\n  Compound 'inner'\n    Byte 'a' -15\n  EndCompound\nEndCompound"
	require.Equal(t, want, string(f.Bytes()))
}

// TestTranscriptFormatter_DoesNotImplementBulkArrayWriter verifies the
// transcript formatter falls back to per-element writes, since every
// element needs its own line.
func TestTranscriptFormatter_DoesNotImplementBulkArrayWriter(t *testing.T) {
	f := NewTranscriptFormatter()
	_, ok := any(f).(BulkArrayWriter)
	require.False(t, ok)
}

// TestBinaryFormatter_ImplementsBulkArrayWriter verifies the binary
// formatter does implement the optional fast-path interface.
func TestBinaryFormatter_ImplementsBulkArrayWriter(t *testing.T) {
	f := NewBinaryFormatter()
	defer f.Release()

	_, ok := any(f).(BulkArrayWriter)
	require.True(t, ok)
}

// TestSliceReader_RoundTripsBinaryFormatterOutput verifies SliceReader can
// read back everything BinaryFormatter writes for a representative mix of
// tag kinds.
func TestSliceReader_RoundTripsBinaryFormatterOutput(t *testing.T) {
	f := NewBinaryFormatter()
	defer f.Release()

	f.WriteCompoundTag("r")
	f.WriteByteTag("b", -1)
	f.WriteShortTag("s", 1000)
	f.WriteIntTag("i", -70000)
	f.WriteLongTag("l", 1<<40)
	f.WriteFloatTag("f", 1.5)
	f.WriteDoubleTag("d", 2.25)
	f.WriteStringTag("st", "hello")
	f.WriteEndTag()

	data := make([]byte, len(f.Bytes()))
	copy(data, f.Bytes())

	r := NewSliceReader(data)

	id, err := r.ReadTypeID()
	require.NoError(t, err)
	require.Equal(t, format.Compound, id)

	name, err := r.ReadName()
	require.NoError(t, err)
	require.Equal(t, "r", name)

	wantFields := []struct {
		name string
		id   format.TypeID
	}{
		{"b", format.Byte}, {"s", format.Short}, {"i", format.Int},
		{"l", format.Long}, {"f", format.Float}, {"d", format.Double},
		{"st", format.String},
	}

	for _, wf := range wantFields {
		fid, err := r.ReadTypeID()
		require.NoError(t, err)
		require.Equal(t, wf.id, fid)

		fname, err := r.ReadName()
		require.NoError(t, err)
		require.Equal(t, wf.name, fname)

		switch fid {
		case format.Byte:
			v, err := r.ReadByteInner()
			require.NoError(t, err)
			require.Equal(t, int8(-1), v)
		case format.Short:
			v, err := r.ReadShortInner()
			require.NoError(t, err)
			require.Equal(t, int16(1000), v)
		case format.Int:
			v, err := r.ReadIntInner()
			require.NoError(t, err)
			require.Equal(t, int32(-70000), v)
		case format.Long:
			v, err := r.ReadLongInner()
			require.NoError(t, err)
			require.Equal(t, int64(1<<40), v)
		case format.Float:
			v, err := r.ReadFloatInner()
			require.NoError(t, err)
			require.Equal(t, float32(1.5), v)
		case format.Double:
			v, err := r.ReadDoubleInner()
			require.NoError(t, err)
			require.Equal(t, 2.25, v)
		case format.String:
			v, err := r.ReadStringInner()
			require.NoError(t, err)
			require.Equal(t, "hello", v)
		}
	}

	endID, err := r.ReadTypeID()
	require.NoError(t, err)
	require.Equal(t, format.End, endID)
}

// TestStreamReader_RoundTripsBinaryFormatterOutput mirrors the slice
// reader test using an io.Reader source.
func TestStreamReader_RoundTripsBinaryFormatterOutput(t *testing.T) {
	f := NewBinaryFormatter()
	defer f.Release()

	f.WriteCompoundTag("r")
	f.WriteIntTag("i", 42)
	f.WriteEndTag()

	data := make([]byte, len(f.Bytes()))
	copy(data, f.Bytes())

	r := NewStreamReader(bytes.NewReader(data))

	id, err := r.ReadTypeID()
	require.NoError(t, err)
	require.Equal(t, format.Compound, id)

	_, err = r.ReadName()
	require.NoError(t, err)

	fid, err := r.ReadTypeID()
	require.NoError(t, err)
	require.Equal(t, format.Int, fid)

	_, err = r.ReadName()
	require.NoError(t, err)

	v, err := r.ReadIntInner()
	require.NoError(t, err)
	require.Equal(t, int32(42), v)
}

// TestSliceReader_UnexpectedEOF verifies reading past the end of a short
// buffer fails with ErrSliceUnexpectedEOF instead of panicking.
func TestSliceReader_UnexpectedEOF(t *testing.T) {
	r := NewSliceReader([]byte{0x01})

	_, err := r.ReadTypeID()
	require.NoError(t, err)

	_, err = r.ReadName()
	require.ErrorIs(t, err, errs.ErrSliceUnexpectedEOF)
}

// TestSliceReader_NegativeSeqLengthRejected verifies a length prefix with
// the sign bit set fails with ErrInvalidLength.
func TestSliceReader_NegativeSeqLengthRejected(t *testing.T) {
	r := NewSliceReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})

	_, err := r.ReadSeqLength()
	require.ErrorIs(t, err, errs.ErrInvalidLength)
}

// TestSliceReader_InvalidUTF8NameRejected verifies a name containing
// invalid UTF-8 bytes fails with ErrInvalidUTF8String.
func TestSliceReader_InvalidUTF8NameRejected(t *testing.T) {
	r := NewSliceReader([]byte{0x00, 0x01, 0xFF})

	_, err := r.ReadName()
	require.ErrorIs(t, err, errs.ErrInvalidUTF8String)
}

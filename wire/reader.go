// Package wire implements the byte-exact reader and writer for the NBT
// tag stream: big-endian primitives, length-prefixed names and strings,
// and the list/array header machinery. Two Reader implementations back
// one capability set (streaming and slice), and two Formatter
// implementations drive the same encode path (binary and transcript).
package wire

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/luojia65/coruscant/errs"
	"github.com/luojia65/coruscant/format"
)

// Reader is the capability set both backing implementations expose. All
// numeric reads are big-endian. Every error is annotated with the byte
// offset at which the read was attempted via errs.WithOffset.
type Reader interface {
	// Index returns the byte offset of the next unread byte.
	Index() int

	ReadTypeID() (format.TypeID, error)
	// ReadName reads a tag header's name: a uint16 byte-length prefix
	// followed by that many UTF-8 bytes.
	ReadName() (string, error)
	// ReadSeqLength reads a List/Array header's element count.
	ReadSeqLength() (int32, error)

	ReadByteInner() (int8, error)
	ReadShortInner() (int16, error)
	ReadIntInner() (int32, error)
	ReadLongInner() (int64, error)
	ReadFloatInner() (float32, error)
	ReadDoubleInner() (float64, error)
	// ReadStringInner reads a String tag's payload: same length-prefix
	// convention as ReadName.
	ReadStringInner() (string, error)

	// ReadRawBytes reads n raw bytes, e.g. for a ByteArray payload. The
	// slice reader may return a view into its backing slice; the stream
	// reader always returns a freshly allocated copy.
	ReadRawBytes(n int) ([]byte, error)
}

func validateLength(n int32, offset int) error {
	if n < 0 {
		return errs.WithOffset(errs.ErrInvalidLength, offset)
	}

	return nil
}

func validateUTF8(s string, offset int) error {
	if !utf8.ValidString(s) {
		return errs.WithOffset(errs.ErrInvalidUTF8String, offset)
	}

	return nil
}

// bytesToString converts b to a string without copying. Its only caller
// is the slice reader, which documents that the returned string borrows
// the input slice's lifetime; the stream reader copies with string(b).
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StreamReader reads from an io.Reader, allocating on every string read.
type StreamReader struct {
	r      io.Reader
	offset int
}

var _ Reader = (*StreamReader)(nil)

// NewStreamReader creates a Reader backed by r.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r}
}

func (s *StreamReader) Index() int { return s.offset }

func (s *StreamReader) readN(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, errs.WithOffset(err, s.offset)
	}
	s.offset += n

	return buf, nil
}

func (s *StreamReader) ReadTypeID() (format.TypeID, error) {
	b, err := s.readN(1)
	if err != nil {
		return 0, err
	}

	return format.TypeID(b[0]), nil
}

func (s *StreamReader) readUint16Prefixed() (string, error) {
	startOffset := s.offset

	lb, err := s.readN(2)
	if err != nil {
		return "", err
	}

	n := int(binary.BigEndian.Uint16(lb))

	b, err := s.readN(n)
	if err != nil {
		return "", err
	}

	str := string(b)
	if err := validateUTF8(str, startOffset); err != nil {
		return "", err
	}

	return str, nil
}

func (s *StreamReader) ReadName() (string, error) {
	return s.readUint16Prefixed()
}

func (s *StreamReader) ReadStringInner() (string, error) {
	return s.readUint16Prefixed()
}

func (s *StreamReader) ReadSeqLength() (int32, error) {
	startOffset := s.offset

	b, err := s.readN(4)
	if err != nil {
		return 0, err
	}

	n := int32(binary.BigEndian.Uint32(b))
	if err := validateLength(n, startOffset); err != nil {
		return 0, err
	}

	return n, nil
}

func (s *StreamReader) ReadByteInner() (int8, error) {
	b, err := s.readN(1)
	if err != nil {
		return 0, err
	}

	return int8(b[0]), nil
}

func (s *StreamReader) ReadShortInner() (int16, error) {
	b, err := s.readN(2)
	if err != nil {
		return 0, err
	}

	return int16(binary.BigEndian.Uint16(b)), nil
}

func (s *StreamReader) ReadIntInner() (int32, error) {
	b, err := s.readN(4)
	if err != nil {
		return 0, err
	}

	return int32(binary.BigEndian.Uint32(b)), nil
}

func (s *StreamReader) ReadLongInner() (int64, error) {
	b, err := s.readN(8)
	if err != nil {
		return 0, err
	}

	return int64(binary.BigEndian.Uint64(b)), nil
}

func (s *StreamReader) ReadFloatInner() (float32, error) {
	v, err := s.ReadIntInner()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(v)), nil
}

func (s *StreamReader) ReadDoubleInner() (float64, error) {
	v, err := s.ReadLongInner()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(uint64(v)), nil
}

func (s *StreamReader) ReadRawBytes(n int) ([]byte, error) {
	return s.readN(n)
}

// SliceReader reads from a borrowed byte slice. String reads return
// substrings of the original slice without copying.
type SliceReader struct {
	buf    []byte
	offset int
}

var _ Reader = (*SliceReader)(nil)

// NewSliceReader creates a Reader over buf. buf must outlive the decode
// call; the reader never retains references to it beyond the call.
func NewSliceReader(buf []byte) *SliceReader {
	return &SliceReader{buf: buf}
}

func (s *SliceReader) Index() int { return s.offset }

func (s *SliceReader) take(n int) ([]byte, error) {
	if n < 0 || s.offset+n > len(s.buf) {
		return nil, errs.WithOffset(errs.ErrSliceUnexpectedEOF, s.offset)
	}

	b := s.buf[s.offset : s.offset+n]
	s.offset += n

	return b, nil
}

func (s *SliceReader) ReadTypeID() (format.TypeID, error) {
	b, err := s.take(1)
	if err != nil {
		return 0, err
	}

	return format.TypeID(b[0]), nil
}

func (s *SliceReader) readUint16Prefixed() (string, error) {
	startOffset := s.offset

	lb, err := s.take(2)
	if err != nil {
		return "", err
	}

	n := int(binary.BigEndian.Uint16(lb))

	b, err := s.take(n)
	if err != nil {
		return "", err
	}

	str := bytesToString(b)
	if err := validateUTF8(str, startOffset); err != nil {
		return "", err
	}

	return str, nil
}

func (s *SliceReader) ReadName() (string, error) {
	return s.readUint16Prefixed()
}

func (s *SliceReader) ReadStringInner() (string, error) {
	return s.readUint16Prefixed()
}

func (s *SliceReader) ReadSeqLength() (int32, error) {
	startOffset := s.offset

	b, err := s.take(4)
	if err != nil {
		return 0, err
	}

	n := int32(binary.BigEndian.Uint32(b))
	if err := validateLength(n, startOffset); err != nil {
		return 0, err
	}

	return n, nil
}

func (s *SliceReader) ReadByteInner() (int8, error) {
	b, err := s.take(1)
	if err != nil {
		return 0, err
	}

	return int8(b[0]), nil
}

func (s *SliceReader) ReadShortInner() (int16, error) {
	b, err := s.take(2)
	if err != nil {
		return 0, err
	}

	return int16(binary.BigEndian.Uint16(b)), nil
}

func (s *SliceReader) ReadIntInner() (int32, error) {
	b, err := s.take(4)
	if err != nil {
		return 0, err
	}

	return int32(binary.BigEndian.Uint32(b)), nil
}

func (s *SliceReader) ReadLongInner() (int64, error) {
	b, err := s.take(8)
	if err != nil {
		return 0, err
	}

	return int64(binary.BigEndian.Uint64(b)), nil
}

func (s *SliceReader) ReadFloatInner() (float32, error) {
	v, err := s.ReadIntInner()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(v)), nil
}

func (s *SliceReader) ReadDoubleInner() (float64, error) {
	v, err := s.ReadLongInner()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(uint64(v)), nil
}

func (s *SliceReader) ReadRawBytes(n int) ([]byte, error) {
	return s.take(n)
}

package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/luojia65/coruscant/format"
)

// ZlibCodec wraps a document in a zlib container using
// klauspost/compress's drop-in zlib implementation. It backs
// format.CompressionZlib.
type ZlibCodec struct {
	level int
}

var _ Codec = ZlibCodec{}

// NewZlibCodec creates a zlib codec at the given effort preset.
func NewZlibCodec(level format.CompressionLevel) ZlibCodec {
	return ZlibCodec{level: gzipLevel(level)} // zlib shares gzip's -1..9 scale.
}

func (c ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (c ZlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

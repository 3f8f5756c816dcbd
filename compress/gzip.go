package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/luojia65/coruscant/format"
)

// GzipCodec wraps a document in a gzip container, using klauspost/compress's
// drop-in gzip implementation instead of the standard library's (same wire
// format, faster encoder). It backs format.CompressionGzip.
type GzipCodec struct {
	level int
}

var _ Codec = GzipCodec{}

// NewGzipCodec creates a gzip codec. level maps the coarse
// format.CompressionLevel preset onto gzip's native 1-9 level scale.
func NewGzipCodec(level format.CompressionLevel) GzipCodec {
	return GzipCodec{level: gzipLevel(level)}
}

func gzipLevel(level format.CompressionLevel) int {
	switch level {
	case format.LevelFast:
		return gzip.BestSpeed
	case format.LevelBest:
		return gzip.BestCompression
	default:
		return gzip.DefaultCompression
	}
}

func (c GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := gzip.NewWriterLevel(&buf, c.level)
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

func (c GzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

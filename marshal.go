package nbt

import (
	"compress/zlib"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/luojia65/coruscant/codec"
	"github.com/luojia65/coruscant/compress"
	"github.com/luojia65/coruscant/format"
	"github.com/luojia65/coruscant/internal/options"
	"github.com/luojia65/coruscant/wire"
)

// Marshal encodes root into an in-memory byte buffer, optionally
// compressed via WithCompression.
func Marshal(root Root, opts ...MarshalOption) ([]byte, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	raw, err := encodeBinary(root, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.algorithm == format.CompressionNone {
		return raw, nil
	}

	comp, err := compress.CreateCodec(cfg.algorithm, cfg.level, "Marshal")
	if err != nil {
		return nil, err
	}

	return comp.Compress(raw)
}

// MarshalTo encodes root and writes it to w, optionally compressed via
// WithCompression.
func MarshalTo(w io.Writer, root Root, opts ...MarshalOption) error {
	data, err := Marshal(root, opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// MarshalGzip encodes root and writes it to w wrapped in a gzip stream at
// level. The writer is always closed before returning, flushing any
// buffered gzip output — the core encode path never assumes a finalizer
// runs on the caller's behalf.
func MarshalGzip(w io.Writer, root Root, level format.CompressionLevel, opts ...MarshalOption) error {
	raw, err := marshalUncompressed(root, opts...)
	if err != nil {
		return err
	}

	gw, err := gzip.NewWriterLevel(w, gzipWriterLevel(level))
	if err != nil {
		return err
	}

	if _, err := gw.Write(raw); err != nil {
		gw.Close()
		return err
	}

	return gw.Close()
}

// MarshalZlib is MarshalGzip's zlib counterpart.
func MarshalZlib(w io.Writer, root Root, level format.CompressionLevel, opts ...MarshalOption) error {
	raw, err := marshalUncompressed(root, opts...)
	if err != nil {
		return err
	}

	zw, err := zlib.NewWriterLevel(w, zlibWriterLevel(level))
	if err != nil {
		return err
	}

	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}

// MarshalTranscript encodes root through the human-readable transcript
// formatter instead of the binary one. The result is always valid UTF-8
// and never ends in a trailing newline.
func MarshalTranscript(root Root) (string, error) {
	f := wire.NewTranscriptFormatter()

	enc := newRootEncoder(f, root, newConfig())
	if err := enc.Encode(root.Value); err != nil {
		return "", err
	}

	return string(f.Bytes()), nil
}

func marshalUncompressed(root Root, opts ...MarshalOption) ([]byte, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return encodeBinary(root, cfg)
}

func encodeBinary(root Root, cfg *config) ([]byte, error) {
	f := wire.NewBinaryFormatter()
	defer f.Release()

	enc := newRootEncoder(f, root, cfg)
	if err := enc.Encode(root.Value); err != nil {
		return nil, err
	}

	out := make([]byte, len(f.Bytes()))
	copy(out, f.Bytes())

	return out, nil
}

func newRootEncoder(f wire.Formatter, root Root, cfg *config) *codec.Encoder {
	if name, given := resolveRootName(root, cfg); given {
		return codec.NewNamedEncoder(f, name)
	}

	return codec.NewEncoder(f)
}

func gzipWriterLevel(level format.CompressionLevel) int {
	switch level {
	case format.LevelFast:
		return gzip.BestSpeed
	case format.LevelBest:
		return gzip.BestCompression
	default:
		return gzip.DefaultCompression
	}
}

func zlibWriterLevel(level format.CompressionLevel) int {
	switch level {
	case format.LevelFast:
		return zlib.BestSpeed
	case format.LevelBest:
		return zlib.BestCompression
	default:
		return zlib.DefaultCompression
	}
}

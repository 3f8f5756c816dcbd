package nbt

import (
	"compress/zlib"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/luojia65/coruscant/codec"
	"github.com/luojia65/coruscant/internal/options"
	"github.com/luojia65/coruscant/value"
	"github.com/luojia65/coruscant/wire"
)

// Unmarshal decodes data into v, which must be a non-nil pointer, and
// returns the root tag's name.
func Unmarshal(data []byte, v any, opts ...UnmarshalOption) (string, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return "", err
	}

	r := wire.NewSliceReader(data)
	dec := codec.NewDecoder(r)
	dec.SetFastArrayPath(cfg.fastArrayIO)

	return dec.Decode(v)
}

// UnmarshalReader decodes from r, which is fully consumed.
func UnmarshalReader(r io.Reader, v any, opts ...UnmarshalOption) (string, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return "", err
	}

	sr := wire.NewStreamReader(r)
	dec := codec.NewDecoder(sr)
	dec.SetFastArrayPath(cfg.fastArrayIO)

	return dec.Decode(v)
}

// UnmarshalGzip decodes a gzip-compressed document from r.
func UnmarshalGzip(r io.Reader, v any, opts ...UnmarshalOption) (string, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return "", err
	}
	defer gr.Close()

	return UnmarshalReader(gr, v, opts...)
}

// UnmarshalZlib decodes a zlib-compressed document from r.
func UnmarshalZlib(r io.Reader, v any, opts ...UnmarshalOption) (string, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	return UnmarshalReader(zr, v, opts...)
}

// UnmarshalValue decodes data into a dynamic value.Value tree instead of a
// static Go type, returning the root tag's name alongside the value.
func UnmarshalValue(data []byte, opts ...UnmarshalOption) (string, value.Value, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return "", value.Value{}, err
	}

	r := wire.NewSliceReader(data)

	return codec.DecodeValueFast(r, cfg.fastArrayIO)
}

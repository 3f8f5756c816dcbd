// Package compress wraps an encoded NBT document in an optional stream
// codec. The format itself carries no compression framing: gzip/zlib are
// the two entry points the writer API exposes directly (mirroring
// to_gzip_writer/to_zlib_writer in the format this module is ported from);
// s2, lz4 and zstd are additive presets reachable through the same Codec
// interface for callers who don't need gzip/zlib container compatibility.
package compress

import (
	"fmt"

	"github.com/luojia65/coruscant/format"
)

// Compressor compresses a complete encoded document.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// data is not modified. NoOpCodec returns data itself; the other
	// codecs return a newly allocated slice.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete encoded document.
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes.
	//
	// data is not modified. NoOpCodec returns data itself; the other
	// codecs return a newly allocated slice.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a single compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec builds a Codec for the given algorithm, using level as an
// effort hint where the underlying library exposes one. target names the
// caller's usage in error messages.
func CreateCodec(algorithm format.CompressionAlgorithm, level format.CompressionLevel, target string) (Codec, error) {
	switch algorithm {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionGzip:
		return NewGzipCodec(level), nil
	case format.CompressionZlib:
		return NewZlibCodec(level), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(level), nil
	default:
		return nil, fmt.Errorf("compress: invalid %s compression algorithm: %s", target, algorithm)
	}
}

// GetCodec retrieves a built-in Codec for algorithm at the default level.
func GetCodec(algorithm format.CompressionAlgorithm) (Codec, error) {
	return CreateCodec(algorithm, format.LevelNone, "codec")
}

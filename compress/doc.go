// Package compress implements the optional stream wrapper around an
// encoded NBT document.
//
// # Algorithms
//
//   - None: no wrapper, the raw big-endian byte stream.
//   - Gzip, Zlib: the two container formats the root package's writer API
//     names directly (the gzip/zlib entry points). Backed by
//     klauspost/compress, a drop-in replacement for the standard library's
//     gzip/zlib with a faster encoder and identical wire format.
//   - S2, LZ4, Zstd: additive presets reachable through nbt.WithCompression
//     for callers who don't need gzip/zlib container compatibility. S2 and
//     LZ4 favor speed; Zstd favors ratio and suits archival storage.
//
// All five non-None codecs implement the same Codec interface, so callers
// pick an algorithm via format.CompressionAlgorithm without needing to know
// each library's native API.
package compress

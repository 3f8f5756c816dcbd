package codec

import (
	"encoding/binary"
	"unsafe"

	"github.com/luojia65/coruscant/endian"
	"github.com/luojia65/coruscant/wire"
)

// readInt8Array, readInt32Array and readInt64Array read a ByteArray/
// IntArray/LongArray payload's n elements, given a length already
// validated by wire.Reader.ReadSeqLength. The 32- and 64-bit variants
// take a host-endianness fast path: on a big-endian host the wire bytes
// already match memory layout, so the raw read is reinterpreted in
// place instead of decoded element by element.
func readInt8Array(r wire.Reader, n int32) ([]int8, error) {
	raw, err := r.ReadRawBytes(int(n))
	if err != nil {
		return nil, err
	}

	out := make([]int8, n)
	for i, b := range raw {
		out[i] = int8(b)
	}

	return out, nil
}

// fast gates the unsafe-reinterpret path on top of native endianness: a
// caller can force the portable byte-swap path even on a big-endian host,
// which UnmarshalOption's array fast-path toggle uses for cross-platform
// testing.
func readInt32Array(r wire.Reader, n int32, fast bool) ([]int32, error) {
	raw, err := r.ReadRawBytes(int(n) * 4)
	if err != nil {
		return nil, err
	}

	out := make([]int32, n)
	if n == 0 {
		return out, nil
	}

	if fast && endian.IsNativeBigEndian() {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(raw)), raw)
		return out, nil
	}

	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(raw[i*4:]))
	}

	return out, nil
}

func readInt64Array(r wire.Reader, n int32, fast bool) ([]int64, error) {
	raw, err := r.ReadRawBytes(int(n) * 8)
	if err != nil {
		return nil, err
	}

	out := make([]int64, n)
	if n == 0 {
		return out, nil
	}

	if fast && endian.IsNativeBigEndian() {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(raw)), raw)
		return out, nil
	}

	for i := range out {
		out[i] = int64(binary.BigEndian.Uint64(raw[i*8:]))
	}

	return out, nil
}

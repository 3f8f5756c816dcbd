// Package endian provides native byte-order detection.
//
// NBT itself is always big-endian on the wire (§3 of the format spec);
// there is no user-selectable byte order here, unlike the generic
// ByteOrder abstraction this package is adapted from. What survives is the
// host-endianness probe: the wire package uses it to choose between a
// bulk memcpy fast path (host is big-endian, so IntArray/LongArray
// payloads already match wire order) and a per-element byte-swap loop
// (host is little-endian).
package endian

import (
	"encoding/binary"
	"unsafe"
)

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[2]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address.
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeBigEndian reports whether the host's native byte order matches
// NBT's wire order, enabling a memcpy fast path for IntArray/LongArray.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// Package hash provides the content hash used by value.Value.Hash(), so
// equal NBT documents hash identically regardless of Compound key order.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of data.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

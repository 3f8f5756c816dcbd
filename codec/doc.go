// Package codec is the format-driven adaptation layer: it maps Go's own
// type system onto the NBT type lattice, the way encoding/json maps Go
// values onto the JSON data model, instead of relying on a derive macro
// or a visitor trait most other languages reach for.
//
// A Go struct is a Compound; a slice is a List unless wrapped in
// value.Array, in which case it becomes a ByteArray/IntArray/LongArray
// depending on its first element's kind; a nil pointer field is simply
// omitted. Encoder and ToValue share the classification helpers in
// array.go; Decoder, DecodeValue and EncodeValue dispatch on the wire
// type id or the value's own Kind instead.
package codec

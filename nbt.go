// Package nbt implements a named binary tag codec: a big-endian,
// length-prefixed, self-describing tree format. It exposes a reflect-based
// Marshal/Unmarshal pair in the style of encoding/json, plus a value tree
// (value.Value) for callers that want to inspect or build a document
// without a matching Go type.
package nbt

import (
	"github.com/luojia65/coruscant/codec"
	"github.com/luojia65/coruscant/value"
)

// Root pairs a value with the name its top-level tag carries.
//
// NewRoot(v) leaves the root name unresolved: if v is a named struct,
// Marshal substitutes its type name as the root name, matching Encoder's
// bare-value rule. NewNamedRoot(name, v) fixes the root name exactly,
// including "" — no substitution happens, since the caller already made
// a choice. Root.Name alone cannot distinguish these two cases (both
// leave it ""), which is why nameGiven is tracked separately.
type Root struct {
	Name      string
	Value     any
	nameGiven bool
}

// NewRoot wraps v with the root name left for Marshal to resolve.
func NewRoot(v any) Root {
	return Root{Value: v}
}

// NewNamedRoot wraps v with an explicit root name, including "".
func NewNamedRoot(name string, v any) Root {
	return Root{Name: name, Value: v, nameGiven: true}
}

// Array wraps a []int8/[]int32/[]int64 to opt it into ByteArray/IntArray/
// LongArray encoding instead of the default List encoding.
type Array = value.Array

// AsArray marks xs for array encoding. Use it at the call site for a
// top-level value, or store the result directly in a struct field typed
// as nbt.Array.
func AsArray[T int8 | int32 | int64](xs []T) Array {
	return value.WrapArray(xs)
}

// ToValue converts x into a value.Value tree using the same
// classification rules Marshal uses to pick a wire tag, without producing
// any bytes.
func ToValue(x any) (value.Value, error) {
	return codec.ToValue(x)
}

// resolveRootName decides which Encoder constructor Marshal should use
// and with what name, honoring WithRootName's override ahead of the
// Root's own name-given state.
func resolveRootName(root Root, cfg *config) (name string, given bool) {
	if cfg.rootNameGiven {
		return cfg.rootName, true
	}

	return root.Name, root.nameGiven
}

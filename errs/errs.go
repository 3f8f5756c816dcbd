// Package errs defines the sentinel error taxonomy shared by the wire,
// codec and value packages.
//
// Codec failures return one of these sentinels, usually wrapped with extra
// detail via fmt.Errorf("%w: ...", errs.ErrFoo, ...). Failures of the
// underlying reader or compression library are returned as that library's
// own error. Callers can match on the underlying cause with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

// Encode-side errors.
var (
	// ErrUnsupportedType is returned when the encode driver is given a Go
	// value whose kind the NBT type lattice cannot represent (e.g. a channel,
	// a function, any unsigned integer).
	ErrUnsupportedType = errors.New("nbt: unsupported type")

	// ErrUnsupportedListInnerType is returned when a list's element kind
	// cannot be written as an NBT payload.
	ErrUnsupportedListInnerType = errors.New("nbt: unsupported list element type")

	// ErrUnsupportedArrayType is returned when nbt.Array wraps something
	// that isn't a sequence.
	ErrUnsupportedArrayType = errors.New("nbt: array marker applied to a non-sequence")

	// ErrUnsupportedArrayInnerType is returned when an array's first element
	// isn't Byte, Int or Long.
	ErrUnsupportedArrayInnerType = errors.New("nbt: array element type must be byte, int32 or int64")

	// ErrInvalidStringLength is returned when a string's encoded byte length
	// would overflow the wire length prefix.
	ErrInvalidStringLength = errors.New("nbt: string length exceeds the wire length prefix")

	// ErrKeyMustBeAString is returned when a map key is not string-shaped.
	ErrKeyMustBeAString = errors.New("nbt: map key must be a string")

	// ErrSequenceSizeUnknown reports a sequence serialized without a known
	// length. The reflect-based encoder never returns it: every Go slice
	// and array has a known length, and a channel fails with
	// ErrUnsupportedType.
	ErrSequenceSizeUnknown = errors.New("nbt: sequence length is unknown")

	// ErrListDifferentType is returned when a list element's kind disagrees
	// with the kind declared by the list header.
	ErrListDifferentType = errors.New("nbt: list elements do not share one type")

	// ErrArrayDifferentType is returned when an array element's kind
	// disagrees with the kind of the array's first element.
	ErrArrayDifferentType = errors.New("nbt: array elements do not share one type")
)

// Decode-side errors.
var (
	// ErrInvalidBoolByte is returned when a decoded Byte payload requested as
	// a bool is neither 0 nor 1.
	ErrInvalidBoolByte = errors.New("nbt: byte tag is not a valid bool (0 or 1)")

	// ErrInvalidUTF8String is returned when a String tag's payload is not
	// valid UTF-8.
	ErrInvalidUTF8String = errors.New("nbt: string tag payload is not valid UTF-8")

	// ErrTypeIDMismatch is returned when the caller requests a specific
	// scalar kind and the stream holds a different type id.
	ErrTypeIDMismatch = errors.New("nbt: type id does not match requested kind")

	// ErrTypeIDInvalid is returned when a type id outside 0..=12 appears on
	// the wire.
	ErrTypeIDInvalid = errors.New("nbt: invalid type id")

	// ErrInvalidLength is returned when a negative length appears in a
	// length prefix.
	ErrInvalidLength = errors.New("nbt: negative length prefix")

	// ErrSliceUnexpectedEOF is returned when the slice reader runs past the
	// end of its backing slice.
	ErrSliceUnexpectedEOF = errors.New("nbt: unexpected end of slice")
)

// OffsetError annotates an error with the byte offset at which it arose.
// An offset of 0 means "not applicable" per spec.
type OffsetError struct {
	Offset int
	Err    error
}

func (e *OffsetError) Error() string {
	if e.Offset == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: at offset %d", e.Err.Error(), e.Offset)
}

func (e *OffsetError) Unwrap() error { return e.Err }

// WithOffset wraps err with the byte offset at which it occurred. It returns
// nil if err is nil, and avoids double-wrapping an existing *OffsetError.
func WithOffset(err error, offset int) error {
	if err == nil {
		return nil
	}

	var oe *OffsetError
	if errors.As(err, &oe) {
		return err
	}

	return &OffsetError{Offset: offset, Err: err}
}

package protocol

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the codec. Every error returned from a decode
// or encode call wraps exactly one of these, so callers can classify
// failures with errors.Is without parsing messages.
var (
	// ErrTooShort indicates a buffer smaller than the minimum frame envelope.
	ErrTooShort = errors.New("frame too short")

	// ErrUnknownFrameType indicates a frame-kind discriminator that matches
	// no known (readable) frame kind.
	ErrUnknownFrameType = errors.New("unknown frame type")

	// ErrLengthMismatch indicates a buffer whose length is inconsistent with
	// the declared size of its frame kind.
	ErrLengthMismatch = errors.New("frame length mismatch")

	// ErrChecksumMismatch indicates a failed integrity check. The buffer is
	// untrusted and is not interpreted any further.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrFieldOutOfRange indicates a decoded, or to-be-encoded, value outside
	// the valid domain of its field.
	ErrFieldOutOfRange = errors.New("field value out of range")
)

// rangeError reports a value outside the inclusive [lo, hi] domain of the
// named field.
func rangeError(name string, val, lo, hi int64) error {
	return fmt.Errorf("%s: value %d not in [%d, %d]: %w", name, val, lo, hi, ErrFieldOutOfRange)
}

// invalidValueError reports a raw value that maps to no variant of the named
// field (enumerations, selector bytes).
func invalidValueError(name string, val int64) error {
	return fmt.Errorf("%s: invalid value %#x: %w", name, val, ErrFieldOutOfRange)
}

// integer covers the raw integer types carried by protocol fields.
type integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// checkRange validates val against the inclusive [lo, hi] domain.
func checkRange[T integer](name string, val, lo, hi T) error {
	if val < lo || val > hi {
		return rangeError(name, int64(val), int64(lo), int64(hi))
	}
	return nil
}

package protocol

import "fmt"

// The strings frame carries the user-assigned names as length-prefixed
// entries: a one byte entry count, then per entry a one byte string id, a
// one byte length and the name bytes. Id 0x00 is the device name, ids 0x01
// through 0x08 are the software sensor names.

const (
	stringIDDeviceName = 0x00

	// softwareSensorCount is the number of software sensor channels.
	softwareSensorCount = 8

	// maxStringLen is the longest name the device stores.
	maxStringLen = 63
)

// StringsSnapshot is one decoded strings frame.
type StringsSnapshot struct {
	// DeviceName is the user-assigned device name.
	DeviceName string

	// SensorNames are the names of the eight software sensor channels.
	SensorNames [softwareSensorCount]string
}

// Kind implements Frame.
func (s *StringsSnapshot) Kind() FrameKind {
	return KindStrings
}

// DecodeStrings decodes a strings frame (kind 0x0C). The payload length is
// variable, so the structural walk happens after the checksum check; any
// entry running past the payload, and any unconsumed trailing byte, reports
// ErrLengthMismatch.
func DecodeStrings(raw []byte) (*StringsSnapshot, error) {
	if len(raw) < minFrameLen {
		return nil, fmt.Errorf("frame of %d bytes, need at least %d: %w",
			len(raw), minFrameLen, ErrTooShort)
	}
	if got := FrameKind(raw[0]); got != KindStrings {
		return nil, fmt.Errorf("frame kind %#02x, want %#02x: %w",
			byte(got), byte(KindStrings), ErrUnknownFrameType)
	}
	payload, err := verifiedPayload(raw)
	if err != nil {
		return nil, err
	}
	if len(payload) < 1 {
		return nil, fmt.Errorf("strings frame without entry count: %w", ErrLengthMismatch)
	}

	snap := &StringsSnapshot{}
	count := int(payload[0])
	off := 1
	for i := 0; i < count; i++ {
		if off+2 > len(payload) {
			return nil, fmt.Errorf("strings entry %d: truncated header: %w", i, ErrLengthMismatch)
		}
		id := payload[off]
		n := int(payload[off+1])
		off += 2
		if n > maxStringLen {
			return nil, rangeError("string_length", int64(n), 0, maxStringLen)
		}
		if off+n > len(payload) {
			return nil, fmt.Errorf("strings entry %d: %d bytes past payload end: %w",
				i, off+n-len(payload), ErrLengthMismatch)
		}
		val := string(payload[off : off+n])
		off += n

		switch {
		case id == stringIDDeviceName:
			snap.DeviceName = val
		case id >= 1 && id <= softwareSensorCount:
			snap.SensorNames[id-1] = val
		default:
			return nil, invalidValueError("string_id", int64(id))
		}
	}
	if off != len(payload) {
		return nil, fmt.Errorf("strings frame with %d trailing bytes: %w",
			len(payload)-off, ErrLengthMismatch)
	}
	return snap, nil
}

// EncodeStrings builds a strings frame from a snapshot. All nine entries
// are written, empty names included, so decoding the frame reproduces the
// snapshot exactly.
func EncodeStrings(s *StringsSnapshot) ([]byte, error) {
	names := append([]string{s.DeviceName}, s.SensorNames[:]...)

	size := 1
	for _, name := range names {
		if len(name) > maxStringLen {
			return nil, rangeError("string_length", int64(len(name)), 0, maxStringLen)
		}
		size += 2 + len(name)
	}

	w := newWriter(size)
	w.u8(uint8(len(names)))
	for id, name := range names {
		w.u8(uint8(id))
		w.u8(uint8(len(name)))
		w.write([]byte(name))
	}
	return buildFrame(KindStrings, w.bytes()), nil
}

package protocol

import (
	"encoding/binary"
	"fmt"
)

// FrameKind is the one-byte discriminator at the start of every frame.
type FrameKind byte

const (
	// KindSensorValues carries live telemetry, device to host.
	KindSensorValues FrameKind = 0x01
	// KindSettings carries the full device configuration, both directions.
	KindSettings FrameKind = 0x03
	// KindAmbientColor carries ambient lighting colors, host to device.
	KindAmbientColor FrameKind = 0x07
	// KindSoundData carries sound levels, host to device.
	KindSoundData FrameKind = 0x08
	// KindStrings carries user-assigned names, device to host.
	KindStrings FrameKind = 0x0C
)

func (k FrameKind) String() string {
	switch k {
	case KindSensorValues:
		return "sensor values"
	case KindSettings:
		return "settings"
	case KindAmbientColor:
		return "ambient color"
	case KindSoundData:
		return "sound data"
	case KindStrings:
		return "strings"
	}
	return fmt.Sprintf("unknown (%#02x)", byte(k))
}

const (
	headerLen   = 1
	checksumLen = 2
	// minFrameLen is the smallest buffer that can hold the envelope.
	minFrameLen = headerLen + checksumLen
)

// Frame is a decoded snapshot of any readable frame kind.
type Frame interface {
	// Kind returns the frame-kind discriminator the snapshot was decoded
	// from.
	Kind() FrameKind
}

// DecodeFrame inspects the discriminator byte and decodes the buffer as the
// matching frame kind. Host-to-device kinds (ambient color, sound data) are
// never received and report ErrUnknownFrameType like any unassigned
// discriminator.
func DecodeFrame(raw []byte) (Frame, error) {
	if len(raw) < minFrameLen {
		return nil, fmt.Errorf("frame of %d bytes, need at least %d: %w",
			len(raw), minFrameLen, ErrTooShort)
	}
	switch kind := FrameKind(raw[0]); kind {
	case KindSensorValues:
		return DecodeSensorValues(raw)
	case KindSettings:
		return DecodeSettings(raw)
	case KindStrings:
		return DecodeStrings(raw)
	default:
		return nil, fmt.Errorf("frame kind %#02x: %w", byte(kind), ErrUnknownFrameType)
	}
}

// framePayload validates the envelope of a fixed-length frame and returns
// its payload: minimum length, expected discriminator, exact total length,
// and checksum, in that order.
func framePayload(raw []byte, kind FrameKind, payloadLen int) ([]byte, error) {
	if len(raw) < minFrameLen {
		return nil, fmt.Errorf("frame of %d bytes, need at least %d: %w",
			len(raw), minFrameLen, ErrTooShort)
	}
	if got := FrameKind(raw[0]); got != kind {
		return nil, fmt.Errorf("frame kind %#02x, want %#02x: %w",
			byte(got), byte(kind), ErrUnknownFrameType)
	}
	want := headerLen + payloadLen + checksumLen
	if len(raw) != want {
		return nil, fmt.Errorf("%s frame of %d bytes, want %d: %w",
			kind, len(raw), want, ErrLengthMismatch)
	}
	return verifiedPayload(raw)
}

// verifiedPayload checks the checksum trailer and returns the payload.
func verifiedPayload(raw []byte) ([]byte, error) {
	payload := raw[headerLen : len(raw)-checksumLen]
	expected := binary.BigEndian.Uint16(raw[len(raw)-checksumLen:])
	if actual := Checksum(payload); actual != expected {
		return nil, fmt.Errorf("frame checksum %#04x, computed %#04x: %w",
			expected, actual, ErrChecksumMismatch)
	}
	return payload, nil
}

// buildFrame wraps a payload in the frame envelope: discriminator in front,
// CRC-16/USB over the payload behind.
func buildFrame(kind FrameKind, payload []byte) []byte {
	frame := make([]byte, 0, headerLen+len(payload)+checksumLen)
	frame = append(frame, byte(kind))
	frame = append(frame, payload...)
	var crc [checksumLen]byte
	binary.BigEndian.PutUint16(crc[:], Checksum(payload))
	return append(frame, crc[:]...)
}

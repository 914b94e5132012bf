package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrameDispatch(t *testing.T) {
	frame := buildSensorFrame(t, nil)

	decoded, err := DecodeFrame(frame)
	require.NoError(t, err)
	assert.Equal(t, KindSensorValues, decoded.Kind())
	assert.IsType(t, &SensorSnapshot{}, decoded)
}

func TestDecodeFrameTooShort(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, {0x01}, {0x01, 0x00}} {
		_, err := DecodeFrame(raw)
		assert.ErrorIs(t, err, ErrTooShort, "len %d", len(raw))
	}
}

func TestDecodeFrameUnknownKind(t *testing.T) {
	_, err := DecodeFrame([]byte{0xAA, 0x00, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrUnknownFrameType)

	// Host-to-device kinds are never received.
	_, err = DecodeFrame([]byte{byte(KindAmbientColor), 0x00, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrUnknownFrameType)
	_, err = DecodeFrame([]byte{byte(KindSoundData), 0x00, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrUnknownFrameType)
}

func TestDecodeFrameLengthMismatch(t *testing.T) {
	frame := buildSensorFrame(t, nil)

	_, err := DecodeFrame(frame[:len(frame)-1])
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = DecodeFrame(append(frame, 0x00))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestDecodeFrameChecksumMismatch(t *testing.T) {
	frame := buildSensorFrame(t, nil)

	// Flip one payload bit without touching the checksum trailer.
	frame[5] ^= 0x01
	_, err := DecodeFrame(frame)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestDecodeWrongKindForDecoder(t *testing.T) {
	frame := buildSensorFrame(t, nil)

	_, err := DecodeSettings(frame)
	assert.ErrorIs(t, err, ErrUnknownFrameType)
	_, err = DecodeStrings(frame)
	assert.ErrorIs(t, err, ErrUnknownFrameType)
}

func TestFrameKindString(t *testing.T) {
	assert.Equal(t, "sensor values", KindSensorValues.String())
	assert.Equal(t, "settings", KindSettings.String())
	assert.Contains(t, FrameKind(0xAA).String(), "unknown")
}

func TestBuildFrameEnvelope(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	frame := buildFrame(KindSoundData, payload)

	require.Len(t, frame, headerLen+len(payload)+checksumLen)
	assert.Equal(t, byte(KindSoundData), frame[0])
	assert.Equal(t, payload, frame[1:len(frame)-2])
	crc := uint16(frame[len(frame)-2])<<8 | uint16(frame[len(frame)-1])
	assert.True(t, VerifyChecksum(payload, crc))
}

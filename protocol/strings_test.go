package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringsRoundTrip(t *testing.T) {
	want := &StringsSnapshot{
		DeviceName: "loop alpha",
		SensorNames: [softwareSensorCount]string{
			"cpu in", "cpu out", "gpu in", "gpu out",
		},
	}

	frame, err := EncodeStrings(want)
	require.NoError(t, err)
	assert.Equal(t, byte(KindStrings), frame[0])

	got, err := DecodeStrings(frame)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStringsRoundTripEmpty(t *testing.T) {
	want := &StringsSnapshot{}

	frame, err := EncodeStrings(want)
	require.NoError(t, err)

	got, err := DecodeStrings(frame)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// buildStringsFrame assembles a strings payload from raw entries.
func buildStringsFrame(count byte, entries ...[]byte) []byte {
	payload := []byte{count}
	for _, e := range entries {
		payload = append(payload, e...)
	}
	return buildFrame(KindStrings, payload)
}

func TestDecodeStringsPartialEntries(t *testing.T) {
	// A frame carrying only the device name is valid.
	frame := buildStringsFrame(1, []byte{0x00, 0x04, 'p', 'u', 'm', 'p'})

	got, err := DecodeStrings(frame)
	require.NoError(t, err)
	assert.Equal(t, "pump", got.DeviceName)
	for _, name := range got.SensorNames {
		assert.Empty(t, name)
	}
}

func TestDecodeStringsStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		want  error
	}{
		{
			name:  "empty payload",
			frame: buildFrame(KindStrings, nil),
			want:  ErrLengthMismatch,
		},
		{
			name:  "truncated entry header",
			frame: buildStringsFrame(1, []byte{0x00}),
			want:  ErrLengthMismatch,
		},
		{
			name:  "entry past payload end",
			frame: buildStringsFrame(1, []byte{0x00, 0x05, 'a', 'b'}),
			want:  ErrLengthMismatch,
		},
		{
			name:  "trailing bytes",
			frame: buildStringsFrame(1, []byte{0x00, 0x01, 'a', 'x', 'y'}),
			want:  ErrLengthMismatch,
		},
		{
			name:  "unassigned string id",
			frame: buildStringsFrame(1, []byte{0x09, 0x01, 'a'}),
			want:  ErrFieldOutOfRange,
		},
		{
			name:  "oversized length",
			frame: buildStringsFrame(1, append([]byte{0x00, 0x40}, make([]byte, 0x40)...)),
			want:  ErrFieldOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeStrings(tt.frame)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncodeStringsOversizedName(t *testing.T) {
	s := &StringsSnapshot{DeviceName: string(make([]byte, maxStringLen+1))}

	_, err := EncodeStrings(s)
	assert.ErrorIs(t, err, ErrFieldOutOfRange)
}

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchemaValidation(t *testing.T) {
	tests := []struct {
		name       string
		payloadLen int
		fields     []Field
		wantErr    bool
	}{
		{
			name:       "valid with gap",
			payloadLen: 8,
			fields: []Field{
				{Name: "a", Offset: 0, Width: 2, Max: 100},
				{Name: "b", Offset: 4, Width: 4, Max: 100},
			},
		},
		{
			name:       "adjacent fields",
			payloadLen: 3,
			fields: []Field{
				{Name: "a", Offset: 0, Width: 1, Max: 100},
				{Name: "b", Offset: 1, Width: 2, Max: 100},
			},
		},
		{
			name:       "overlap",
			payloadLen: 4,
			fields: []Field{
				{Name: "a", Offset: 0, Width: 2, Max: 100},
				{Name: "b", Offset: 1, Width: 2, Max: 100},
			},
			wantErr: true,
		},
		{
			name:       "out of bounds",
			payloadLen: 4,
			fields: []Field{
				{Name: "a", Offset: 2, Width: 4, Max: 100},
			},
			wantErr: true,
		},
		{
			name:       "invalid width",
			payloadLen: 8,
			fields: []Field{
				{Name: "a", Offset: 0, Width: 3, Max: 100},
			},
			wantErr: true,
		},
		{
			name:       "duplicate name",
			payloadLen: 8,
			fields: []Field{
				{Name: "a", Offset: 0, Width: 2, Max: 100},
				{Name: "a", Offset: 4, Width: 2, Max: 100},
			},
			wantErr: true,
		},
		{
			name:       "empty range",
			payloadLen: 4,
			fields: []Field{
				{Name: "a", Offset: 0, Width: 2, Min: 10, Max: 5},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchema(tt.payloadLen, tt.fields...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchemaExtend(t *testing.T) {
	base, err := NewSchema(4,
		Field{Name: "a", Offset: 0, Width: 2, Max: 100},
	)
	require.NoError(t, err)

	ext, err := base.Extend(8,
		Field{Name: "b", Offset: 4, Width: 2, Max: 100},
	)
	require.NoError(t, err)
	assert.Equal(t, 8, ext.PayloadLen())

	// Existing fields keep their offsets.
	a, ok := ext.Field("a")
	require.True(t, ok)
	assert.Equal(t, 0, a.Offset)

	// Shrinking or overlapping the existing layout is rejected.
	_, err = base.Extend(2)
	assert.Error(t, err)
	_, err = base.Extend(8, Field{Name: "c", Offset: 2, Width: 2, Max: 100})
	assert.Error(t, err)
}

func TestFieldRawSigned(t *testing.T) {
	payload := []byte{0xFF, 0x38} // -200 as i16 big-endian

	signed := Field{Name: "t", Offset: 0, Width: 2, Signed: true, Min: -1500, Max: 10000}
	assert.Equal(t, int64(-200), signed.Raw(payload))

	unsigned := Field{Name: "u", Offset: 0, Width: 2, Max: 0xFFFF}
	assert.Equal(t, int64(0xFF38), unsigned.Raw(payload))
}

func TestFieldValueRange(t *testing.T) {
	f := Field{Name: "flow", Offset: 0, Width: 2, Max: 3000}

	payload := []byte{0x0B, 0xB8} // 3000
	v, err := f.Value(payload)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), v)

	payload = []byte{0x0B, 0xB9} // 3001
	_, err = f.Value(payload)
	assert.ErrorIs(t, err, ErrFieldOutOfRange)
}

func TestFieldPut(t *testing.T) {
	f := Field{Name: "flow", Offset: 1, Width: 2, Max: 3000}
	payload := make([]byte, 4)

	require.NoError(t, f.Put(payload, 2350))
	assert.Equal(t, []byte{0x00, 0x09, 0x2E, 0x00}, payload)
	assert.Equal(t, int64(2350), f.Raw(payload))

	assert.ErrorIs(t, f.Put(payload, 3001), ErrFieldOutOfRange)
	assert.ErrorIs(t, f.Put(payload, -1), ErrFieldOutOfRange)
}

func TestScaleConversion(t *testing.T) {
	centi := Scale{1, 100}

	// 2350 raw at 1/100 is 23.50.
	assert.InDelta(t, 23.50, centi.Float(2350), 1e-9)

	// Round to nearest, ties away from zero.
	assert.Equal(t, int64(2350), centi.Raw(23.50))
	assert.Equal(t, int64(1), centi.Raw(0.005))
	assert.Equal(t, int64(-1), centi.Raw(-0.005))
	assert.Equal(t, int64(0), centi.Raw(0.004))
	assert.Equal(t, int64(0), centi.Raw(-0.004))
}

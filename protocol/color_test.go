package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorHSVRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
	}{
		{"red", 0, 1, 1},
		{"green", 120, 1, 1},
		{"blue", 240, 1, 1},
		{"pale orange", 30, 0.5, 0.8},
		{"black", 0, 0, 0},
		{"white", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ColorFromHSV(tt.h, tt.s, tt.v)
			h, s, v := c.HSV()

			// One wire step is 60/255 degrees of hue and 1/255 of
			// saturation and value.
			assert.InDelta(t, tt.h, h, 60.0/255)
			assert.InDelta(t, tt.s, s, 1.0/255)
			assert.InDelta(t, tt.v, v, 1.0/255)
		})
	}
}

func TestColorHueWrap(t *testing.T) {
	a := ColorFromHSV(370, 1, 1)
	b := ColorFromHSV(10, 1, 1)
	assert.Equal(t, b, a)

	c := ColorFromHSV(-30, 1, 1)
	d := ColorFromHSV(330, 1, 1)
	assert.Equal(t, d, c)
}

func TestColorRGB(t *testing.T) {
	c := ColorFromRGB(255, 0, 0)
	r, g, b := c.RGB()
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(0), b)
	assert.Equal(t, "#ff0000", c.Hex())
}

func TestColorWireRoundTrip(t *testing.T) {
	c := ColorFromHSV(197, 0.42, 0.87)

	w := newWriter(colorLen)
	encodeColor(w, c)
	got := decodeColor(newReader(w.bytes()))

	assert.Equal(t, c, got)
}

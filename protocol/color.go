package protocol

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a lighting color in the device's native HSV encoding: four bytes
// holding the hue section (hue / 60°), the hue offset within the section
// (scaled to 0..255), saturation and value. Color stores the wire bytes
// directly, so decoding and re-encoding a frame never drifts the color.
type Color struct {
	hueSection uint8
	hueOffset  uint8
	saturation uint8
	value      uint8
}

// ColorFromHSV builds a Color from hue in degrees (wrapped into [0, 360)),
// saturation and value in [0, 1].
func ColorFromHSV(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	section := math.Floor(h / 60)
	if section > 5 {
		section = 5
	}
	return Color{
		hueSection: uint8(section),
		hueOffset:  scaleByte((h - section*60) / 60),
		saturation: scaleByte(s),
		value:      scaleByte(v),
	}
}

// ColorFromRGB builds a Color from 8-bit RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	h, s, v := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hsv()
	return ColorFromHSV(h, s, v)
}

// HSV returns the hue in degrees and saturation and value in [0, 1].
func (c Color) HSV() (h, s, v float64) {
	h = float64(c.hueSection)*60 + float64(c.hueOffset)*60/255
	return h, float64(c.saturation) / 255, float64(c.value) / 255
}

// RGB returns the 8-bit RGB components of the color.
func (c Color) RGB() (r, g, b uint8) {
	h, s, v := c.HSV()
	return colorful.Hsv(h, s, v).RGB255()
}

// Hex returns the color as an "#rrggbb" string.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// scaleByte maps [0, 1] to 0..255, clamping and rounding to nearest.
func scaleByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Floor(v*255 + 0.5))
}

// colorLen is the wire size of a color.
const colorLen = 4

// decodeColor reads a color at the cursor.
func decodeColor(r *reader) Color {
	return Color{
		hueSection: r.u8(),
		hueOffset:  r.u8(),
		saturation: r.u8(),
		value:      r.u8(),
	}
}

// encodeColor writes a color at the cursor.
func encodeColor(w *writer, c Color) {
	w.u8(c.hueSection)
	w.u8(c.hueOffset)
	w.u8(c.saturation)
	w.u8(c.value)
}

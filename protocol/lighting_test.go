package protocol

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripEffect encodes an effect body and decodes it again.
func roundTripEffect(t *testing.T, e Effect) Effect {
	t.Helper()

	flags, body, err := encodeEffect(e)
	require.NoError(t, err)
	require.Len(t, body, controllerBodyLen-1)

	got, err := decodeEffect(newReader(body), e.Code(), flags)
	require.NoError(t, err)
	return got
}

func TestEffectRoundTrip(t *testing.T) {
	sc := &SourceControl{InputMin: 100, InputMax: 2000, OutputMin: 20, OutputMax: 200}
	red := ColorFromHSV(0, 1, 1)
	green := ColorFromHSV(120, 1, 1)
	blue := ColorFromHSV(240, 1, 1)
	dim := ColorFromHSV(30, 0.2, 0.1)

	effects := []Effect{
		&StaticEffect{Color: red, SourceControlBrightness: sc},
		&StaticEffect{Color: red, SourceControlSaturation: sc},
		&BreathingEffect{
			Color: green, Speed: 10, Intensity: 90,
			DelayMaxBrightness: 5, DelayMinBrightness: 15,
			SourceControlSpeed: sc, SourceControlIntensity: sc,
		},
		&RainbowEffect{Color: red, Speed: 50, ColorRange: 100, ReverseDirection: true},
		&BlinkEffect{
			Background: dim, Colors: []Color{red, green, blue},
			Speed: 33, FadeIn: true, SlideColors: true,
		},
		&ColorChangeEffect{Colors: []Color{red, green}, Speed: 66, Fade: true},
		&SequenceEffect{
			Background: dim, Colors: []Color{red, green, blue},
			Speed: 20, Smoothness: 80,
			DelayAfterSequence: 10, DelayBeforeSequence: 20,
			ReverseDirection: true, RandomColor: true,
		},
		&ScannerEffect{
			Background: dim, OuterColor: red, InnerColor: blue,
			Speed: 40, Smoothness: 60, Width: 12,
			SecondColorMode: true, Circular: true,
		},
		&ScannerEffect{
			Background: dim, OuterColor: red, InnerColor: blue,
			Speed: 40, Smoothness: 60, Width: 12,
			Laser: true, Fade: true,
		},
		&WaveEffect{
			Background: dim, Colors: []Color{red, blue},
			Speed: 30, Smoothness: 70, Width: 25,
			RandomColor: true, Circular: true,
		},
		&ColorSequenceEffect{
			Colors: []Color{red, green, blue, dim},
			Speed:  15, Smoothness: 85, ColorChangeSpeed: 50,
			ReverseDirection: true,
		},
		&ColorShiftEffect{
			Color: green, Speed: 45, ColorRange: 55, TotalArea: 100,
			ReverseDirection: true, SourceControlSpeed: sc,
		},
		&BarGraphEffect{
			Background: dim, PeakColor: red,
			Ranges: []ColorRange{
				{Color: green, Value: 100},
				{Color: red, Value: 200, Blink: true},
			},
			EndValue: 300, Rotation: 10, PeakHoldTime: 20,
			ShowBar: true, ShowRanges: true, FadeRanges: true,
			SourceControlRotation: sc,
		},
		&BarGraphEffect{
			Background: dim, PeakColor: red,
			Ranges:   []ColorRange{{Color: green, Value: 500}},
			EndValue: 1000, Rotation: 0, PeakHoldTime: 100,
			Sound: true, ShowPeak: true, ReverseDirection: true,
		},
		&FlameEffect{
			Background: dim, ColorPrimary: red, ColorSecondary: green,
			Intensity: 77, SourceControlIntensity: sc,
		},
		&RainEffect{
			Background: dim, Color: blue,
			Speed: 11, Items: 3, Size: 22, Smoothness: 33,
			Variant: RainVariantRain, RandomColor: true,
		},
		&RainEffect{
			Background: dim, Color: blue,
			Speed: 11, Items: 1, Size: 22, Smoothness: 33,
			Variant: RainVariantSnow, ReverseDirection: true,
		},
		&RainEffect{
			Background: dim, Color: blue,
			Speed: 11, Items: 4, Size: 22, Smoothness: 33,
			Variant: RainVariantStardust,
		},
		&ColorSwitchEffect{
			Ranges: []ColorRange{
				{Color: green, Value: 10},
				{Color: red, Value: 20, Blink: true},
				{Color: blue, Value: 30},
			},
			EndValue: 40, FadeRanges: true,
			SourceControlBrightness: sc,
		},
		&SwipingRainbowEffect{
			PointColor: red, StripColor: dim,
			PointSpeed: 10, PointSmoothness: 20, PointSize: 30,
			ColorChangeSpeed: 40, ColorRange: 50,
			ReverseDirection: true,
		},
		&SoundFlashEffect{Background: dim, Colors: [4]Color{red, green, blue, dim}},
		&SoundSliderEffect{
			Background: dim,
			Sliders: [4]SoundSlider{
				{Color: red, Effect: SoundEffectOutwardsFromCenter, Speed: 1},
				{Color: green, Effect: SoundEffectFromLeft, Speed: 5},
				{Color: blue, Effect: SoundEffectFromRight, Speed: 10},
				{Color: dim, Effect: SoundEffectAllLEDs, Speed: 3},
			},
			RotateColor: 50,
		},
		&SoundShiftEffect{
			Background: dim,
			Channels: [2]SoundShiftChannel{
				{Color: red, Speed: 2, RandomColor: true},
				{Color: blue, Speed: 8},
			},
			RotateColor: 10, IdleSpeed: 20, ActivitySpeed: 90,
			ReverseDirection: true,
		},
		&AmbientEffect{Background: dim},
		&ColorGradientEffect{
			StartColor: red,
			Stops: []GradientStop{
				{Color: green, Value: 100},
				{Color: blue, Value: 200},
			},
			Rotation: 30, ReverseDirection: true, ReverseRotation: true,
			SourceControlRotation: sc,
		},
		&ColorGradientEffect{StartColor: red, Rotation: 0},
	}

	for i, e := range effects {
		t.Run(fmt.Sprintf("%02d_%T_code_%#02x", i, e, e.Code()), func(t *testing.T) {
			assert.Equal(t, e, roundTripEffect(t, e))
		})
	}
}

func TestControllerRoundTrip(t *testing.T) {
	want := &Controller{
		Offset:             10,
		Length:             20,
		DataSource:         ptr(DataSourceWaterTemperature),
		AttenuationRising:  3,
		AttenuationFalling: 7,
		Effect:             &StaticEffect{Color: ColorFromHSV(180, 1, 1)},
	}

	w := newWriter(controllerLen)
	require.NoError(t, encodeController(w, want))

	got, err := decodeController(newReader(w.bytes()))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeControllerDisabledSlot(t *testing.T) {
	got, err := decodeController(newReader(make([]byte, controllerLen)))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDecodeControllerUnknownEffect(t *testing.T) {
	slot := make([]byte, controllerLen)
	slot[2] = 0x42 // unassigned effect code
	slot[5] = 0xFF // data source: none
	slot[6] = 0xFF

	_, err := decodeController(newReader(slot))
	assert.ErrorIs(t, err, ErrFieldOutOfRange)
}

func TestDecodeControllerInvalidDataSource(t *testing.T) {
	slot := make([]byte, controllerLen)
	slot[2] = 0x01 // static effect
	slot[5] = 0x00
	slot[6] = 0x1D // unassigned data source

	_, err := decodeController(newReader(slot))
	assert.ErrorIs(t, err, ErrFieldOutOfRange)
}

func TestDecodeEffectParameterValidation(t *testing.T) {
	// A rainbow effect with a speed above 100 %.
	e := &RainbowEffect{Color: ColorFromHSV(0, 1, 1), Speed: 50, ColorRange: 50}
	flags, body, err := encodeEffect(e)
	require.NoError(t, err)

	body[12] = 0x01 // speed = 0x0101
	body[13] = 0x01
	_, err = decodeEffect(newReader(body), e.Code(), flags)
	assert.ErrorIs(t, err, ErrFieldOutOfRange)
}

func TestLightingSettingsPacksControllers(t *testing.T) {
	// Controllers occupy fixed slots on the wire; decoding drops empty
	// slots and keeps the configured ones in order.
	w := newWriter(lightingLen)
	ls := &LightingSettings{
		Brightness: 128,
		StripControllers: []Controller{
			{Length: 10, Effect: &StaticEffect{Color: ColorFromHSV(0, 1, 1)}},
			{Length: 20, Effect: &AmbientEffect{}},
		},
	}
	require.NoError(t, encodeLightingSettings(w, ls))

	got, err := decodeLightingSettings(newReader(w.bytes()))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, Brightness(128), got.Brightness)
	require.Len(t, got.StripControllers, 2)
	assert.Empty(t, got.SensorControllers)
	assert.Equal(t, uint8(10), got.StripControllers[0].Length)
	assert.Equal(t, uint8(20), got.StripControllers[1].Length)
}

func TestLightingSettingsDisabled(t *testing.T) {
	w := newWriter(lightingLen)
	require.NoError(t, encodeLightingSettings(w, nil))

	got, err := decodeLightingSettings(newReader(w.bytes()))
	require.NoError(t, err)
	assert.Nil(t, got)
}

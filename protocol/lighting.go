package protocol

// The RGBpx section of the settings frame configures up to eight LED
// controllers, six driving the external strip connectors and two driving
// the sensor's own ring. Each controller occupies a fixed 70 byte slot: a
// 9 byte header, a 60 byte effect body and one reserved byte. The body
// always reserves space for two source-control mappings, a 24 byte
// parameter area and six colors; how much of that an effect actually uses
// depends on its effect code. This package encodes and decodes those bytes,
// it does not render effects.

const (
	lightingHeaderLen = 4
	controllerLen     = 70
	controllerBodyLen = 61
	sourceControlLen  = 6
	stripControllers  = 6
	sensorControllers = 2

	lightingLen = lightingHeaderLen +
		(stripControllers+sensorControllers)*controllerLen
)

// lightingDisabled marks the whole RGBpx section as unconfigured.
const lightingDisabled = 0x02

// Source-control presence bits in the controller flag word.
const (
	flagSourceControl0 = 0x4000
	flagSourceControl1 = 0x8000
)

// LightingSettings is the decoded RGBpx section. A nil *LightingSettings in
// Settings means the section is disabled on the device.
type LightingSettings struct {
	// Brightness is the global LED brightness.
	Brightness Brightness

	// StripControllers are the active controllers of the LED strip
	// connectors, at most six.
	StripControllers []Controller

	// SensorControllers are the active controllers of the sensor ring,
	// at most two.
	SensorControllers []Controller
}

// Controller is one configured LED effect region.
type Controller struct {
	// Offset is the first LED of the region.
	Offset uint8

	// Length is the region size in LEDs.
	Length uint8

	// Effect is the configured effect.
	Effect Effect

	// DataSource is the sensor channel bound to the effect's
	// source-control mappings, nil when unbound.
	DataSource *DataSource

	// AttenuationRising and AttenuationFalling dampen fluctuations of the
	// bound sensor channel.
	AttenuationRising  uint8
	AttenuationFalling uint8
}

// SourceControl maps a sensor input range onto an effect parameter range.
type SourceControl struct {
	InputMin  uint16
	InputMax  uint16
	OutputMin uint8
	OutputMax uint8
}

// ColorRange maps the value range below Value to a color, used by the bar
// graph and color switch effects.
type ColorRange struct {
	Color Color
	Value uint16
	Blink bool
}

// GradientStop is one color stop of the color gradient effect.
type GradientStop struct {
	Color Color
	Value uint16
}

// SoundSlider is one channel of the sound slider effect.
type SoundSlider struct {
	Color  Color
	Effect SoundEffect
	Speed  SoundEffectSpeed
}

// SoundShiftChannel is one channel of the sound shift effect.
type SoundShiftChannel struct {
	Color       Color
	Speed       SoundEffectSpeed
	RandomColor bool
}

// RainVariant distinguishes the three particle effects sharing one layout.
type RainVariant uint8

const (
	RainVariantRain     RainVariant = 0x0F
	RainVariantSnow     RainVariant = 0x10
	RainVariantStardust RainVariant = 0x11
)

func (v RainVariant) validate() error {
	if v < RainVariantRain || v > RainVariantStardust {
		return invalidValueError("rain_variant", int64(v))
	}
	return nil
}

// Effect is one of the LED effect configurations. The concrete type behind
// the interface determines the effect code written to the wire.
type Effect interface {
	// Code returns the wire effect code.
	Code() uint8
}

// StaticEffect shows a single constant color.
type StaticEffect struct {
	Color Color

	SourceControlBrightness *SourceControl
	SourceControlSaturation *SourceControl
}

func (e *StaticEffect) Code() uint8 { return 0x01 }

// BreathingEffect fades a color in and out.
type BreathingEffect struct {
	Color Color

	Speed              EffectPercent
	Intensity          EffectPercent
	DelayMaxBrightness EffectDelay
	DelayMinBrightness EffectDelay

	SourceControlSpeed     *SourceControl
	SourceControlIntensity *SourceControl
}

func (e *BreathingEffect) Code() uint8 { return 0x02 }

// RainbowEffect cycles the strip through the color wheel.
type RainbowEffect struct {
	Color Color

	Speed      EffectPercent
	ColorRange EffectPercent

	ReverseDirection bool

	SourceControlSpeed      *SourceControl
	SourceControlBrightness *SourceControl
}

func (e *RainbowEffect) Code() uint8 { return 0x03 }

// BlinkEffect alternates between a background and up to five colors.
type BlinkEffect struct {
	Background Color
	Colors     []Color

	Speed EffectPercent

	FadeIn      bool
	FadeOut     bool
	RandomColor bool
	SlideColors bool

	SourceControlSpeed      *SourceControl
	SourceControlBrightness *SourceControl
}

func (e *BlinkEffect) Code() uint8 { return 0x04 }

// ColorChangeEffect cycles through up to six colors.
type ColorChangeEffect struct {
	Colors []Color

	Speed EffectPercent

	Fade        bool
	RandomColor bool
	SlideColors bool

	SourceControlSpeed      *SourceControl
	SourceControlBrightness *SourceControl
}

func (e *ColorChangeEffect) Code() uint8 { return 0x05 }

// SequenceEffect runs up to five colors along the strip.
type SequenceEffect struct {
	Background Color
	Colors     []Color

	Speed               EffectPercent
	Smoothness          EffectPercent
	DelayAfterSequence  EffectDelay
	DelayBeforeSequence EffectDelay

	ReverseDirection bool
	Fade             bool
	RandomColor      bool

	SourceControlSpeed      *SourceControl
	SourceControlBrightness *SourceControl
}

func (e *SequenceEffect) Code() uint8 { return 0x07 }

// ScannerEffect sweeps a light bar across the strip. With Laser set it runs
// as the laser variant of the same layout.
type ScannerEffect struct {
	Background Color
	OuterColor Color
	InnerColor Color

	Speed      EffectPercent
	Smoothness EffectPercent
	Width      EffectWidth

	ReverseDirection bool
	Fade             bool
	RandomColor      bool
	SecondColorMode  bool
	ColorChange      bool
	Circular         bool

	Laser bool

	SourceControlSpeed      *SourceControl
	SourceControlBrightness *SourceControl
}

func (e *ScannerEffect) Code() uint8 {
	if e.Laser {
		return 0x09
	}
	return 0x08
}

// WaveEffect moves color waves across the strip.
type WaveEffect struct {
	Background Color
	Colors     []Color

	Speed      EffectPercent
	Smoothness EffectPercent
	Width      EffectWidth

	ReverseDirection bool
	RandomColor      bool
	Circular         bool

	SourceControlSpeed      *SourceControl
	SourceControlBrightness *SourceControl
}

func (e *WaveEffect) Code() uint8 { return 0x0A }

// ColorSequenceEffect blends the whole strip through up to six colors.
type ColorSequenceEffect struct {
	Colors []Color

	Speed            EffectPercent
	Smoothness       EffectPercent
	ColorChangeSpeed EffectWidth

	ReverseDirection bool
	RandomColor      bool

	SourceControlSpeed      *SourceControl
	SourceControlBrightness *SourceControl
}

func (e *ColorSequenceEffect) Code() uint8 { return 0x0B }

// ColorShiftEffect rotates a hue window around the strip.
type ColorShiftEffect struct {
	Color Color

	Speed      EffectPercent
	ColorRange EffectPercent
	TotalArea  EffectWidth

	ReverseDirection bool

	SourceControlSpeed      *SourceControl
	SourceControlBrightness *SourceControl
}

func (e *ColorShiftEffect) Code() uint8 { return 0x0C }

// BarGraphEffect fills the strip proportionally to a sensor value, colored
// by up to four value ranges. With Sound set it runs as the sound bars
// variant driven by the sound input.
type BarGraphEffect struct {
	Background Color
	PeakColor  Color
	Ranges     []ColorRange

	EndValue     uint16
	Rotation     EffectPercent
	PeakHoldTime EffectPercent

	ReverseDirection bool
	ShowPeak         bool
	ShowBar          bool
	ShowRanges       bool
	FadeRanges       bool

	Sound bool

	SourceControlRotation *SourceControl
}

func (e *BarGraphEffect) Code() uint8 {
	if e.Sound {
		return 0x15
	}
	return 0x0D
}

// FlameEffect flickers between two colors over a background.
type FlameEffect struct {
	Background     Color
	ColorPrimary   Color
	ColorSecondary Color

	Intensity EffectWidth

	SourceControlIntensity *SourceControl
}

func (e *FlameEffect) Code() uint8 { return 0x0E }

// RainEffect lets particles fall across the strip; the variant selects the
// rain, snow or stardust rendering of the same layout.
type RainEffect struct {
	Background Color
	Color      Color

	Speed      EffectWidth
	Items      RainItems
	Size       EffectWidth
	Smoothness EffectWidth

	ReverseDirection bool
	RandomColor      bool

	Variant RainVariant

	SourceControlSpeed      *SourceControl
	SourceControlBrightness *SourceControl
}

func (e *RainEffect) Code() uint8 { return uint8(e.Variant) }

// ColorSwitchEffect shows the color of the range a sensor value falls into.
type ColorSwitchEffect struct {
	Ranges   []ColorRange
	EndValue uint16

	FadeRanges bool

	SourceControlBrightness *SourceControl
}

func (e *ColorSwitchEffect) Code() uint8 { return 0x12 }

// SwipingRainbowEffect moves a colored point over a hue-shifting strip.
type SwipingRainbowEffect struct {
	PointColor Color
	StripColor Color

	PointSpeed       EffectWidth
	PointSmoothness  EffectWidth
	PointSize        EffectWidth
	ColorChangeSpeed EffectWidth
	ColorRange       EffectWidth

	ReverseDirection bool

	SourceControlSpeed      *SourceControl
	SourceControlBrightness *SourceControl
}

func (e *SwipingRainbowEffect) Code() uint8 { return 0x13 }

// SoundFlashEffect flashes up to four colors with the sound input.
type SoundFlashEffect struct {
	Background Color
	Colors     [4]Color
}

func (e *SoundFlashEffect) Code() uint8 { return 0x14 }

// SoundSliderEffect drives four slider channels from the sound input.
type SoundSliderEffect struct {
	Background Color
	Sliders    [4]SoundSlider

	RotateColor EffectPercent
}

func (e *SoundSliderEffect) Code() uint8 { return 0x16 }

// SoundShiftEffect shifts two color channels with the sound input.
type SoundShiftEffect struct {
	Background Color
	Channels   [2]SoundShiftChannel

	RotateColor   EffectPercent
	IdleSpeed     EffectPercent
	ActivitySpeed EffectPercent

	ReverseDirection bool
}

func (e *SoundShiftEffect) Code() uint8 { return 0x17 }

// AmbientEffect shows the colors streamed via ambient color frames, with a
// background for LEDs outside the streamed range.
type AmbientEffect struct {
	Background Color
}

func (e *AmbientEffect) Code() uint8 { return 0x18 }

// ColorGradientEffect spreads a gradient of up to three stops over the
// strip.
type ColorGradientEffect struct {
	StartColor Color
	Stops      []GradientStop

	Rotation EffectPercent

	ReverseDirection bool
	ReverseRotation  bool

	SourceControlRotation *SourceControl
}

func (e *ColorGradientEffect) Code() uint8 { return 0x21 }

// effectReader adds validated parameter reads with a sticky error to the
// payload cursor, so effect decoders stay close to the wire layout.
type effectReader struct {
	*reader
	err error
}

func (r *effectReader) percent() EffectPercent {
	v := EffectPercent(r.u16())
	if r.err == nil {
		r.err = v.validate()
	}
	return v
}

func (r *effectReader) delay() EffectDelay {
	v := EffectDelay(r.u16())
	if r.err == nil {
		r.err = v.validate()
	}
	return v
}

func (r *effectReader) width() EffectWidth {
	v := EffectWidth(r.u16())
	if r.err == nil {
		r.err = v.validate()
	}
	return v
}

func (r *effectReader) rainItems() RainItems {
	v := RainItems(r.u16())
	if r.err == nil {
		r.err = v.validate()
	}
	return v
}

func (r *effectReader) soundEffect() SoundEffect {
	v := SoundEffect(r.u16())
	if r.err == nil {
		r.err = v.validate()
	}
	return v
}

func (r *effectReader) soundSpeed() SoundEffectSpeed {
	v := SoundEffectSpeed(r.u16())
	if r.err == nil {
		r.err = v.validate()
	}
	return v
}

// sourceControlOpt reads one source-control slot; an absent mapping leaves
// its six bytes reserved.
func (r *effectReader) sourceControlOpt(present bool) *SourceControl {
	if !present {
		r.skip(sourceControlLen)
		return nil
	}
	sc := SourceControl{
		InputMin:  r.u16(),
		InputMax:  r.u16(),
		OutputMin: r.u8(),
		OutputMax: r.u8(),
	}
	return &sc
}

func (r *effectReader) color() Color {
	return decodeColor(r.reader)
}

// colors reads n colors and skips the rest of the six color slots.
func (r *effectReader) colors(n int) []Color {
	out := make([]Color, n)
	for i := range out {
		out[i] = decodeColor(r.reader)
	}
	r.skip((6 - n) * colorLen)
	return out
}

// decodeLightingSettings reads the RGBpx section. A disabled section still
// occupies its full wire size; the controller slots are skipped and nil is
// returned.
func decodeLightingSettings(r *reader) (*LightingSettings, error) {
	brightness := Brightness(r.u8())
	r.skip(1)
	flags := r.u8()
	r.skip(1)

	if flags&lightingDisabled != 0 {
		r.skip((stripControllers + sensorControllers) * controllerLen)
		return nil, nil
	}

	ls := &LightingSettings{Brightness: brightness}
	for i := 0; i < stripControllers; i++ {
		c, err := decodeController(r)
		if err != nil {
			return nil, err
		}
		if c != nil {
			ls.StripControllers = append(ls.StripControllers, *c)
		}
	}
	for i := 0; i < sensorControllers; i++ {
		c, err := decodeController(r)
		if err != nil {
			return nil, err
		}
		if c != nil {
			ls.SensorControllers = append(ls.SensorControllers, *c)
		}
	}
	return ls, nil
}

// decodeController reads one 70 byte controller slot. A slot with effect
// code 0x00 is unconfigured and decodes to nil.
func decodeController(r *reader) (*Controller, error) {
	offset := r.u8()
	length := r.u8()
	code := r.u8()
	flags := r.u16()

	var dataSource *DataSource
	if raw := DataSource(r.u16()); raw != dataSourceNone {
		if err := raw.validate(); err != nil {
			return nil, err
		}
		dataSource = &raw
	}
	attRising := r.u8()
	attFalling := r.u8()

	if code == 0x00 {
		r.skip(controllerBodyLen)
		return nil, nil
	}

	effect, err := decodeEffect(r, code, flags)
	if err != nil {
		return nil, err
	}
	r.skip(1)

	return &Controller{
		Offset:             offset,
		Length:             length,
		Effect:             effect,
		DataSource:         dataSource,
		AttenuationRising:  attRising,
		AttenuationFalling: attFalling,
	}, nil
}

// decodeEffect reads the 60 byte effect body. The flag word of the
// controller header carries both the effect's boolean options and the
// presence bits of the two source-control slots.
func decodeEffect(raw *reader, code uint8, flags uint16) (Effect, error) {
	r := &effectReader{reader: raw}
	sc0 := flags&flagSourceControl0 != 0
	sc1 := flags&flagSourceControl1 != 0
	flag := func(bit uint16) bool { return flags&bit != 0 }

	var effect Effect
	switch code {
	case 0x01:
		scBrightness := r.sourceControlOpt(sc0)
		scSaturation := r.sourceControlOpt(sc1)
		r.skip(24)
		effect = &StaticEffect{
			Color:                   r.colors(1)[0],
			SourceControlBrightness: scBrightness,
			SourceControlSaturation: scSaturation,
		}

	case 0x02:
		scSpeed := r.sourceControlOpt(sc0)
		scIntensity := r.sourceControlOpt(sc1)
		e := &BreathingEffect{
			Speed:              r.percent(),
			Intensity:          r.percent(),
			DelayMaxBrightness: r.delay(),
			DelayMinBrightness: r.delay(),

			SourceControlSpeed:     scSpeed,
			SourceControlIntensity: scIntensity,
		}
		r.skip(16)
		e.Color = r.colors(1)[0]
		effect = e

	case 0x03:
		scSpeed := r.sourceControlOpt(sc0)
		scBrightness := r.sourceControlOpt(sc1)
		e := &RainbowEffect{
			Speed:      r.percent(),
			ColorRange: r.percent(),

			ReverseDirection: flag(0x02),

			SourceControlSpeed:      scSpeed,
			SourceControlBrightness: scBrightness,
		}
		r.skip(20)
		e.Color = r.colors(1)[0]
		effect = e

	case 0x04:
		scSpeed := r.sourceControlOpt(sc0)
		scBrightness := r.sourceControlOpt(sc1)
		e := &BlinkEffect{
			Speed: r.percent(),

			FadeIn:      flag(0x02),
			FadeOut:     flag(0x04),
			RandomColor: flag(0x08),
			SlideColors: flag(0x10),

			SourceControlSpeed:      scSpeed,
			SourceControlBrightness: scBrightness,
		}
		count := int(r.u16())
		r.skip(20)
		colors := r.colors(6)
		e.Background = colors[0]
		e.Colors = takeColors(colors[1:], count)
		effect = e

	case 0x05:
		scSpeed := r.sourceControlOpt(sc0)
		scBrightness := r.sourceControlOpt(sc1)
		e := &ColorChangeEffect{
			Speed: r.percent(),

			Fade:        flag(0x04),
			RandomColor: flag(0x08),
			SlideColors: flag(0x10),

			SourceControlSpeed:      scSpeed,
			SourceControlBrightness: scBrightness,
		}
		count := int(r.u16())
		r.skip(20)
		e.Colors = takeColors(r.colors(6), count)
		effect = e

	case 0x07:
		scSpeed := r.sourceControlOpt(sc0)
		scBrightness := r.sourceControlOpt(sc1)
		e := &SequenceEffect{
			Speed:      r.percent(),
			Smoothness: r.percent(),

			ReverseDirection: flag(0x02),
			Fade:             flag(0x04),
			RandomColor:      flag(0x08),

			SourceControlSpeed:      scSpeed,
			SourceControlBrightness: scBrightness,
		}
		count := int(r.u16())
		e.DelayAfterSequence = r.delay()
		e.DelayBeforeSequence = r.delay()
		r.skip(14)
		colors := r.colors(6)
		e.Background = colors[0]
		e.Colors = takeColors(colors[1:], count)
		effect = e

	case 0x08, 0x09:
		scSpeed := r.sourceControlOpt(sc0)
		scBrightness := r.sourceControlOpt(sc1)
		e := &ScannerEffect{
			Speed:      r.percent(),
			Smoothness: r.percent(),
			Width:      r.width(),

			ReverseDirection: flag(0x02),
			Fade:             flag(0x04),
			RandomColor:      flag(0x08),
			SecondColorMode:  flag(0x20),
			ColorChange:      flag(0x40),
			Circular:         flag(0x80),

			Laser: code == 0x09,

			SourceControlSpeed:      scSpeed,
			SourceControlBrightness: scBrightness,
		}
		r.skip(18)
		colors := r.colors(3)
		e.Background = colors[0]
		e.OuterColor = colors[1]
		e.InnerColor = colors[2]
		effect = e

	case 0x0A:
		scSpeed := r.sourceControlOpt(sc0)
		scBrightness := r.sourceControlOpt(sc1)
		e := &WaveEffect{
			Speed:      r.percent(),
			Smoothness: r.percent(),
			Width:      r.width(),

			ReverseDirection: flag(0x02),
			RandomColor:      flag(0x04),
			Circular:         flag(0x80),

			SourceControlSpeed:      scSpeed,
			SourceControlBrightness: scBrightness,
		}
		count := int(r.u16())
		r.skip(16)
		colors := r.colors(6)
		e.Background = colors[0]
		e.Colors = takeColors(colors[1:], count)
		effect = e

	case 0x0B:
		scSpeed := r.sourceControlOpt(sc0)
		scBrightness := r.sourceControlOpt(sc1)
		e := &ColorSequenceEffect{
			Speed:      r.percent(),
			Smoothness: r.percent(),

			ReverseDirection: flag(0x02),
			RandomColor:      flag(0x08),

			SourceControlSpeed:      scSpeed,
			SourceControlBrightness: scBrightness,
		}
		r.skip(2)
		count := int(r.u16())
		e.ColorChangeSpeed = r.width()
		r.skip(14)
		e.Colors = takeColors(r.colors(6), count)
		effect = e

	case 0x0C:
		scSpeed := r.sourceControlOpt(sc0)
		scBrightness := r.sourceControlOpt(sc1)
		e := &ColorShiftEffect{
			Speed:      r.percent(),
			ColorRange: r.percent(),
			TotalArea:  r.width(),

			ReverseDirection: flag(0x02),

			SourceControlSpeed:      scSpeed,
			SourceControlBrightness: scBrightness,
		}
		r.skip(18)
		e.Color = r.colors(1)[0]
		effect = e

	case 0x0D, 0x15:
		scRotation := r.sourceControlOpt(sc0)
		r.skip(sourceControlLen)
		startValue := r.u16()
		e := &BarGraphEffect{
			EndValue: r.u16(),
			Rotation: r.percent(),

			ReverseDirection: flag(0x08),
			ShowPeak:         flag(0x20),
			ShowBar:          flag(0x02),
			ShowRanges:       flag(0x04),
			FadeRanges:       flag(0x01),

			Sound: code == 0x15,

			SourceControlRotation: scRotation,
		}
		count := int(r.u16())
		var values [4]uint16
		values[0] = startValue
		for i := 1; i < 4; i++ {
			values[i] = r.u16()
		}
		e.PeakHoldTime = r.percent()
		r.skip(8)
		e.Background = r.color()
		e.PeakColor = r.color()
		for i := 0; i < min(count+1, 4); i++ {
			e.Ranges = append(e.Ranges, ColorRange{
				Color: r.color(),
				Value: values[i],
				Blink: flag(1 << (7 + i)),
			})
		}
		r.skip((4 - min(count+1, 4)) * colorLen)
		effect = e

	case 0x0E:
		scIntensity := r.sourceControlOpt(sc0)
		r.skip(sourceControlLen)
		e := &FlameEffect{
			Intensity: r.width(),

			SourceControlIntensity: scIntensity,
		}
		r.skip(22)
		colors := r.colors(3)
		e.Background = colors[0]
		e.ColorPrimary = colors[1]
		e.ColorSecondary = colors[2]
		effect = e

	case 0x0F, 0x10, 0x11:
		scSpeed := r.sourceControlOpt(sc0)
		scBrightness := r.sourceControlOpt(sc1)
		e := &RainEffect{
			Speed:      r.width(),
			Items:      r.rainItems(),
			Size:       r.width(),
			Smoothness: r.width(),

			ReverseDirection: flag(0x02),
			RandomColor:      flag(0x08),

			Variant: RainVariant(code),

			SourceControlSpeed:      scSpeed,
			SourceControlBrightness: scBrightness,
		}
		r.skip(16)
		colors := r.colors(2)
		e.Background = colors[0]
		e.Color = colors[1]
		effect = e

	case 0x12:
		scBrightness := r.sourceControlOpt(sc1)
		r.skip(sourceControlLen)
		count := int(r.u16())
		var values [6]uint16
		for i := range values {
			values[i] = r.u16()
		}
		e := &ColorSwitchEffect{
			EndValue: r.u16(),

			FadeRanges: flag(0x01),

			SourceControlBrightness: scBrightness,
		}
		r.skip(8)
		colors := r.colors(6)
		for i := 0; i < min(count+1, 6); i++ {
			e.Ranges = append(e.Ranges, ColorRange{
				Color: colors[i],
				Value: values[i],
				Blink: flag(1 << (1 + i)),
			})
		}
		effect = e

	case 0x13:
		scSpeed := r.sourceControlOpt(sc0)
		scBrightness := r.sourceControlOpt(sc1)
		e := &SwipingRainbowEffect{
			PointSpeed:       r.width(),
			PointSmoothness:  r.width(),
			PointSize:        r.width(),
			ColorChangeSpeed: r.width(),
			ColorRange:       r.width(),

			ReverseDirection: flag(0x01),

			SourceControlSpeed:      scSpeed,
			SourceControlBrightness: scBrightness,
		}
		r.skip(14)
		colors := r.colors(2)
		e.PointColor = colors[0]
		e.StripColor = colors[1]
		effect = e

	case 0x14:
		r.skip(2 * sourceControlLen)
		r.skip(24)
		e := &SoundFlashEffect{}
		colors := r.colors(5)
		e.Background = colors[0]
		copy(e.Colors[:], colors[1:])
		effect = e

	case 0x16:
		r.skip(2 * sourceControlLen)
		e := &SoundSliderEffect{}
		for i := range e.Sliders {
			e.Sliders[i].Effect = r.soundEffect()
		}
		for i := range e.Sliders {
			e.Sliders[i].Speed = r.soundSpeed()
		}
		e.RotateColor = r.percent()
		r.skip(6)
		colors := r.colors(5)
		e.Background = colors[0]
		for i := range e.Sliders {
			e.Sliders[i].Color = colors[1+i]
		}
		effect = e

	case 0x17:
		r.skip(2 * sourceControlLen)
		e := &SoundShiftEffect{
			RotateColor: r.percent(),

			ReverseDirection: flag(0x01),
		}
		for i := range e.Channels {
			e.Channels[i].Speed = r.soundSpeed()
			e.Channels[i].RandomColor = flag(1 << (1 + i))
		}
		e.IdleSpeed = r.percent()
		e.ActivitySpeed = r.percent()
		r.skip(14)
		colors := r.colors(3)
		e.Background = colors[0]
		e.Channels[0].Color = colors[1]
		e.Channels[1].Color = colors[2]
		effect = e

	case 0x18:
		r.skip(2 * sourceControlLen)
		r.skip(24)
		effect = &AmbientEffect{Background: r.colors(1)[0]}

	case 0x21:
		scRotation := r.sourceControlOpt(sc0)
		r.skip(sourceControlLen)
		r.skip(4)
		e := &ColorGradientEffect{
			Rotation: r.percent(),

			ReverseDirection: flag(0x08),
			ReverseRotation:  flag(0x10),

			SourceControlRotation: scRotation,
		}
		count := int(r.u16())
		var values [3]uint16
		for i := range values {
			values[i] = r.u16()
		}
		r.skip(10)
		r.skip(2 * colorLen)
		e.StartColor = r.color()
		for i := 0; i < 3; i++ {
			c := r.color()
			if i < min(count, 3) {
				e.Stops = append(e.Stops, GradientStop{Color: c, Value: values[i]})
			}
		}
		effect = e

	default:
		return nil, invalidValueError("effect", int64(code))
	}

	if r.err != nil {
		return nil, r.err
	}
	return effect, nil
}

// takeColors caps a wire color count against the colors actually present.
// A count of zero yields nil, matching a snapshot that never set the list.
func takeColors(colors []Color, count int) []Color {
	if count > len(colors) {
		count = len(colors)
	}
	if count == 0 {
		return nil
	}
	out := make([]Color, count)
	copy(out, colors[:count])
	return out
}

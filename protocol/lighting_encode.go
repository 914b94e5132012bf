package protocol

// Encoding of the RGBpx section. Encoders emit exactly the layout the
// decoders read; unused bytes of a controller slot are zero. Out-of-range
// parameters and oversized color lists abort the encode, they are never
// truncated.

// encodeLightingSettings writes the RGBpx section. A nil settings value
// writes a disabled section of the same wire size.
func encodeLightingSettings(w *writer, ls *LightingSettings) error {
	if ls == nil {
		w.skip(1)
		w.skip(1)
		w.u8(lightingDisabled)
		w.skip(1)
		w.skip((stripControllers + sensorControllers) * controllerLen)
		return nil
	}

	if len(ls.StripControllers) > stripControllers {
		return rangeError("strip_controllers", int64(len(ls.StripControllers)), 0, stripControllers)
	}
	if len(ls.SensorControllers) > sensorControllers {
		return rangeError("sensor_controllers", int64(len(ls.SensorControllers)), 0, sensorControllers)
	}

	w.u8(uint8(ls.Brightness))
	w.skip(3)

	for i := 0; i < stripControllers; i++ {
		if err := encodeControllerSlot(w, ls.StripControllers, i); err != nil {
			return err
		}
	}
	for i := 0; i < sensorControllers; i++ {
		if err := encodeControllerSlot(w, ls.SensorControllers, i); err != nil {
			return err
		}
	}
	return nil
}

// encodeControllerSlot writes the i-th controller of the group, or an
// unconfigured slot when the group has fewer controllers.
func encodeControllerSlot(w *writer, group []Controller, i int) error {
	if i >= len(group) {
		w.skip(controllerLen)
		return nil
	}
	return encodeController(w, &group[i])
}

func encodeController(w *writer, c *Controller) error {
	if c.Effect == nil {
		return invalidValueError("effect", 0)
	}
	flags, body, err := encodeEffect(c.Effect)
	if err != nil {
		return err
	}

	w.u8(c.Offset)
	w.u8(c.Length)
	w.u8(c.Effect.Code())
	w.u16(flags)
	if c.DataSource == nil {
		w.u16(dataSourceNone)
	} else {
		if err := c.DataSource.validate(); err != nil {
			return err
		}
		w.u16(uint16(*c.DataSource))
	}
	w.u8(c.AttenuationRising)
	w.u8(c.AttenuationFalling)
	w.write(body)
	w.skip(1)
	return nil
}

// effectWriter mirrors effectReader: validated parameter writes with a
// sticky error, filling the fixed 60 byte effect body.
type effectWriter struct {
	*writer
	flags uint16
	err   error
}

func (w *effectWriter) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *effectWriter) percent(v EffectPercent) {
	w.fail(v.validate())
	w.u16(uint16(v))
}

func (w *effectWriter) delay(v EffectDelay) {
	w.fail(v.validate())
	w.u16(uint16(v))
}

func (w *effectWriter) width(v EffectWidth) {
	w.fail(v.validate())
	w.u16(uint16(v))
}

func (w *effectWriter) rainItems(v RainItems) {
	w.fail(v.validate())
	w.u16(uint16(v))
}

func (w *effectWriter) soundEffect(v SoundEffect) {
	w.fail(v.validate())
	w.u16(uint16(v))
}

func (w *effectWriter) soundSpeed(v SoundEffectSpeed) {
	w.fail(v.validate())
	w.u16(uint16(v))
}

func (w *effectWriter) flag(bit uint16, set bool) {
	if set {
		w.flags |= bit
	}
}

// sourceControl writes one source-control slot and records its presence
// bit in the flag word.
func (w *effectWriter) sourceControl(bit uint16, sc *SourceControl) {
	if sc == nil {
		w.skip(sourceControlLen)
		return
	}
	w.flags |= bit
	w.u16(sc.InputMin)
	w.u16(sc.InputMax)
	w.u8(sc.OutputMin)
	w.u8(sc.OutputMax)
}

func (w *effectWriter) color(c Color) {
	encodeColor(w.writer, c)
}

// colors writes the given colors into the six color slots, zero-padding
// the rest. The caller has already bounded len(colors).
func (w *effectWriter) colors(colors ...Color) {
	for _, c := range colors {
		encodeColor(w.writer, c)
	}
	w.skip((6 - len(colors)) * colorLen)
}

// encodeEffect builds the controller flag word and the 60 byte effect body.
func encodeEffect(effect Effect) (uint16, []byte, error) {
	w := &effectWriter{writer: newWriter(controllerBodyLen - 1)}

	switch e := effect.(type) {
	case *StaticEffect:
		w.sourceControl(flagSourceControl0, e.SourceControlBrightness)
		w.sourceControl(flagSourceControl1, e.SourceControlSaturation)
		w.skip(24)
		w.colors(e.Color)

	case *BreathingEffect:
		w.sourceControl(flagSourceControl0, e.SourceControlSpeed)
		w.sourceControl(flagSourceControl1, e.SourceControlIntensity)
		w.percent(e.Speed)
		w.percent(e.Intensity)
		w.delay(e.DelayMaxBrightness)
		w.delay(e.DelayMinBrightness)
		w.skip(16)
		w.colors(e.Color)

	case *RainbowEffect:
		w.sourceControl(flagSourceControl0, e.SourceControlSpeed)
		w.sourceControl(flagSourceControl1, e.SourceControlBrightness)
		w.flag(0x02, e.ReverseDirection)
		w.percent(e.Speed)
		w.percent(e.ColorRange)
		w.skip(20)
		w.colors(e.Color)

	case *BlinkEffect:
		if len(e.Colors) > 5 {
			return 0, nil, rangeError("blink_colors", int64(len(e.Colors)), 0, 5)
		}
		w.sourceControl(flagSourceControl0, e.SourceControlSpeed)
		w.sourceControl(flagSourceControl1, e.SourceControlBrightness)
		w.flag(0x02, e.FadeIn)
		w.flag(0x04, e.FadeOut)
		w.flag(0x08, e.RandomColor)
		w.flag(0x10, e.SlideColors)
		w.percent(e.Speed)
		w.u16(uint16(len(e.Colors)))
		w.skip(20)
		w.colors(append([]Color{e.Background}, e.Colors...)...)

	case *ColorChangeEffect:
		if len(e.Colors) > 6 {
			return 0, nil, rangeError("color_change_colors", int64(len(e.Colors)), 0, 6)
		}
		w.sourceControl(flagSourceControl0, e.SourceControlSpeed)
		w.sourceControl(flagSourceControl1, e.SourceControlBrightness)
		w.flag(0x04, e.Fade)
		w.flag(0x08, e.RandomColor)
		w.flag(0x10, e.SlideColors)
		w.percent(e.Speed)
		w.u16(uint16(len(e.Colors)))
		w.skip(20)
		w.colors(e.Colors...)

	case *SequenceEffect:
		if len(e.Colors) > 5 {
			return 0, nil, rangeError("sequence_colors", int64(len(e.Colors)), 0, 5)
		}
		w.sourceControl(flagSourceControl0, e.SourceControlSpeed)
		w.sourceControl(flagSourceControl1, e.SourceControlBrightness)
		w.flag(0x02, e.ReverseDirection)
		w.flag(0x04, e.Fade)
		w.flag(0x08, e.RandomColor)
		w.percent(e.Speed)
		w.percent(e.Smoothness)
		w.u16(uint16(len(e.Colors)))
		w.delay(e.DelayAfterSequence)
		w.delay(e.DelayBeforeSequence)
		w.skip(14)
		w.colors(append([]Color{e.Background}, e.Colors...)...)

	case *ScannerEffect:
		w.sourceControl(flagSourceControl0, e.SourceControlSpeed)
		w.sourceControl(flagSourceControl1, e.SourceControlBrightness)
		w.flag(0x02, e.ReverseDirection)
		w.flag(0x04, e.Fade)
		w.flag(0x08, e.RandomColor)
		w.flag(0x20, e.SecondColorMode)
		w.flag(0x40, e.ColorChange)
		w.flag(0x80, e.Circular)
		w.percent(e.Speed)
		w.percent(e.Smoothness)
		w.width(e.Width)
		w.skip(18)
		w.colors(e.Background, e.OuterColor, e.InnerColor)

	case *WaveEffect:
		if len(e.Colors) > 5 {
			return 0, nil, rangeError("wave_colors", int64(len(e.Colors)), 0, 5)
		}
		w.sourceControl(flagSourceControl0, e.SourceControlSpeed)
		w.sourceControl(flagSourceControl1, e.SourceControlBrightness)
		w.flag(0x02, e.ReverseDirection)
		w.flag(0x04, e.RandomColor)
		w.flag(0x80, e.Circular)
		w.percent(e.Speed)
		w.percent(e.Smoothness)
		w.width(e.Width)
		w.u16(uint16(len(e.Colors)))
		w.skip(16)
		w.colors(append([]Color{e.Background}, e.Colors...)...)

	case *ColorSequenceEffect:
		if len(e.Colors) > 6 {
			return 0, nil, rangeError("color_sequence_colors", int64(len(e.Colors)), 0, 6)
		}
		w.sourceControl(flagSourceControl0, e.SourceControlSpeed)
		w.sourceControl(flagSourceControl1, e.SourceControlBrightness)
		w.flag(0x02, e.ReverseDirection)
		w.flag(0x08, e.RandomColor)
		w.percent(e.Speed)
		w.percent(e.Smoothness)
		w.skip(2)
		w.u16(uint16(len(e.Colors)))
		w.width(e.ColorChangeSpeed)
		w.skip(14)
		w.colors(e.Colors...)

	case *ColorShiftEffect:
		w.sourceControl(flagSourceControl0, e.SourceControlSpeed)
		w.sourceControl(flagSourceControl1, e.SourceControlBrightness)
		w.flag(0x02, e.ReverseDirection)
		w.percent(e.Speed)
		w.percent(e.ColorRange)
		w.width(e.TotalArea)
		w.skip(18)
		w.colors(e.Color)

	case *BarGraphEffect:
		if len(e.Ranges) < 1 || len(e.Ranges) > 4 {
			return 0, nil, rangeError("bar_graph_ranges", int64(len(e.Ranges)), 1, 4)
		}
		w.sourceControl(flagSourceControl0, e.SourceControlRotation)
		w.skip(sourceControlLen)
		w.flag(0x08, e.ReverseDirection)
		w.flag(0x20, e.ShowPeak)
		w.flag(0x02, e.ShowBar)
		w.flag(0x04, e.ShowRanges)
		w.flag(0x01, e.FadeRanges)
		var values [4]uint16
		for i, rg := range e.Ranges {
			values[i] = rg.Value
			w.flag(1<<(7+i), rg.Blink)
		}
		w.u16(values[0])
		w.u16(e.EndValue)
		w.percent(e.Rotation)
		w.u16(uint16(len(e.Ranges) - 1))
		w.u16(values[1])
		w.u16(values[2])
		w.u16(values[3])
		w.percent(e.PeakHoldTime)
		w.skip(8)
		w.color(e.Background)
		w.color(e.PeakColor)
		for _, rg := range e.Ranges {
			w.color(rg.Color)
		}
		w.skip((4 - len(e.Ranges)) * colorLen)

	case *FlameEffect:
		w.sourceControl(flagSourceControl0, e.SourceControlIntensity)
		w.skip(sourceControlLen)
		w.width(e.Intensity)
		w.skip(22)
		w.colors(e.Background, e.ColorPrimary, e.ColorSecondary)

	case *RainEffect:
		if err := e.Variant.validate(); err != nil {
			return 0, nil, err
		}
		w.sourceControl(flagSourceControl0, e.SourceControlSpeed)
		w.sourceControl(flagSourceControl1, e.SourceControlBrightness)
		w.flag(0x02, e.ReverseDirection)
		w.flag(0x08, e.RandomColor)
		w.width(e.Speed)
		w.rainItems(e.Items)
		w.width(e.Size)
		w.width(e.Smoothness)
		w.skip(16)
		w.colors(e.Background, e.Color)

	case *ColorSwitchEffect:
		if len(e.Ranges) < 1 || len(e.Ranges) > 6 {
			return 0, nil, rangeError("color_switch_ranges", int64(len(e.Ranges)), 1, 6)
		}
		w.sourceControl(flagSourceControl1, e.SourceControlBrightness)
		w.skip(sourceControlLen)
		w.flag(0x01, e.FadeRanges)
		w.u16(uint16(len(e.Ranges) - 1))
		var values [6]uint16
		for i, rg := range e.Ranges {
			values[i] = rg.Value
			w.flag(1<<(1+i), rg.Blink)
		}
		for _, v := range values {
			w.u16(v)
		}
		w.u16(e.EndValue)
		w.skip(8)
		for _, rg := range e.Ranges {
			w.color(rg.Color)
		}
		w.skip((6 - len(e.Ranges)) * colorLen)

	case *SwipingRainbowEffect:
		w.sourceControl(flagSourceControl0, e.SourceControlSpeed)
		w.sourceControl(flagSourceControl1, e.SourceControlBrightness)
		w.flag(0x01, e.ReverseDirection)
		w.width(e.PointSpeed)
		w.width(e.PointSmoothness)
		w.width(e.PointSize)
		w.width(e.ColorChangeSpeed)
		w.width(e.ColorRange)
		w.skip(14)
		w.colors(e.PointColor, e.StripColor)

	case *SoundFlashEffect:
		w.skip(2 * sourceControlLen)
		w.skip(24)
		w.colors(append([]Color{e.Background}, e.Colors[:]...)...)

	case *SoundSliderEffect:
		w.skip(2 * sourceControlLen)
		for _, s := range e.Sliders {
			w.soundEffect(s.Effect)
		}
		for _, s := range e.Sliders {
			w.soundSpeed(s.Speed)
		}
		w.percent(e.RotateColor)
		w.skip(6)
		w.colors(e.Background, e.Sliders[0].Color, e.Sliders[1].Color,
			e.Sliders[2].Color, e.Sliders[3].Color)

	case *SoundShiftEffect:
		w.skip(2 * sourceControlLen)
		w.flag(0x01, e.ReverseDirection)
		w.percent(e.RotateColor)
		for i, ch := range e.Channels {
			w.soundSpeed(ch.Speed)
			w.flag(1<<(1+i), ch.RandomColor)
		}
		w.percent(e.IdleSpeed)
		w.percent(e.ActivitySpeed)
		w.skip(14)
		w.colors(e.Background, e.Channels[0].Color, e.Channels[1].Color)

	case *AmbientEffect:
		w.skip(2 * sourceControlLen)
		w.skip(24)
		w.colors(e.Background)

	case *ColorGradientEffect:
		if len(e.Stops) > 3 {
			return 0, nil, rangeError("gradient_stops", int64(len(e.Stops)), 0, 3)
		}
		w.sourceControl(flagSourceControl0, e.SourceControlRotation)
		w.skip(sourceControlLen)
		w.flag(0x08, e.ReverseDirection)
		w.flag(0x10, e.ReverseRotation)
		w.skip(4)
		w.percent(e.Rotation)
		w.u16(uint16(len(e.Stops)))
		var values [3]uint16
		for i, stop := range e.Stops {
			values[i] = stop.Value
		}
		for _, v := range values {
			w.u16(v)
		}
		w.skip(10)
		w.skip(2 * colorLen)
		w.color(e.StartColor)
		for _, stop := range e.Stops {
			w.color(stop.Color)
		}
		w.skip((3 - len(e.Stops)) * colorLen)

	default:
		return 0, nil, invalidValueError("effect", int64(effect.Code()))
	}

	if w.err != nil {
		return 0, nil, w.err
	}
	return w.flags, w.bytes(), nil
}

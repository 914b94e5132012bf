package protocol

// EncodeSettings builds a complete settings frame (kind 0x03) from a
// snapshot: envelope, payload in wire order, CRC-16/USB trailer. Every
// ranged value is validated before it is written; an out-of-range value
// aborts the encode with ErrFieldOutOfRange instead of truncating.
// Decoding an encoded frame yields the original snapshot.
func EncodeSettings(s *Settings) ([]byte, error) {
	w := newWriter(settingsPayloadLen)

	w.u16(s.Version)

	if err := encodeDisplaySettings(w, &s.Display); err != nil {
		return nil, err
	}
	if err := encodeCurrentDraw(w, s.System.IncreasedCurrentDraw); err != nil {
		return nil, err
	}
	if err := s.System.AquaBusAddress.validate(); err != nil {
		return nil, err
	}
	w.u8(uint8(s.System.AquaBusAddress))

	if err := s.Sensor.WaterTempOffset.validate(); err != nil {
		return nil, err
	}
	w.i16(int16(s.Sensor.WaterTempOffset))
	if err := s.Sensor.ExternalTempOffset.validate(); err != nil {
		return nil, err
	}
	w.i16(int16(s.Sensor.ExternalTempOffset))
	if err := s.Sensor.Medium.validate(); err != nil {
		return nil, err
	}
	w.u8(uint8(s.Sensor.Medium))
	if err := s.Sensor.ConnectorType.validate(); err != nil {
		return nil, err
	}
	w.u8(uint8(s.Sensor.ConnectorType))

	for _, p := range s.Sensor.FlowCorrection {
		if err := p.Correction.validate(); err != nil {
			return nil, err
		}
		w.i16(int16(p.Correction))
	}
	for _, p := range s.Sensor.FlowCorrection {
		if err := p.Flow.validate(); err != nil {
			return nil, err
		}
		w.u16(uint16(p.Flow))
	}

	if err := encodeLightingSettings(w, s.Lighting); err != nil {
		return nil, err
	}

	w.u8(uint8(s.System.StandbyFlags))
	w.skip(2)
	if err := s.Sensor.ConductivityOffset.validate(); err != nil {
		return nil, err
	}
	w.i16(int16(s.Sensor.ConductivityOffset))
	if err := s.Sensor.WaterQualityMax.validate(); err != nil {
		return nil, err
	}
	w.u16(uint16(s.Sensor.WaterQualityMax))
	if err := s.Sensor.WaterQualityMin.validate(); err != nil {
		return nil, err
	}
	w.u16(uint16(s.Sensor.WaterQualityMin))
	w.skip(1)
	w.u8(uint8(s.Sensor.PowerFlags))
	if err := s.Sensor.PowerDamping.validate(); err != nil {
		return nil, err
	}
	w.u16(uint16(s.Sensor.PowerDamping))

	if err := encodeAlarmSettings(w, &s.Alarms); err != nil {
		return nil, err
	}
	w.skip(1)

	return buildFrame(KindSettings, w.bytes()), nil
}

// nextPageDisabled is written when page cycling is off; any value above 60
// decodes back to a nil interval.
const nextPageDisabled = 0xFF

func encodeDisplaySettings(w *writer, d *DisplaySettings) error {
	if err := d.TemperatureUnit.validate(); err != nil {
		return err
	}
	w.u8(uint8(d.TemperatureUnit))
	if err := d.FlowUnit.validate(); err != nil {
		return err
	}
	w.u8(uint8(d.FlowUnit))
	w.skip(1)

	if d.NextPageInterval == nil {
		w.u8(nextPageDisabled)
	} else {
		if err := d.NextPageInterval.validate(); err != nil {
			return err
		}
		w.u8(uint8(*d.NextPageInterval))
	}
	w.skip(2)
	w.u16(uint16(d.PageFlags))
	w.skip(4)

	if err := d.Brightness.validate(); err != nil {
		return err
	}
	w.u8(uint8(d.Brightness))
	if d.IdleBrightness == nil {
		w.u8(displayBrightnessOff)
	} else {
		if err := d.IdleBrightness.validate(); err != nil {
			return err
		}
		w.u8(uint8(*d.IdleBrightness))
	}
	w.skip(4)
	w.u8(uint8(d.DisplayFlags))

	for _, c := range d.Charts {
		w.skip(1)
		if err := c.Source.validate(); err != nil {
			return err
		}
		w.u8(uint8(c.Source))
		if err := c.Interval.validate(); err != nil {
			return err
		}
		w.u16(uint16(c.Interval))
	}
	return nil
}

func encodeCurrentDraw(w *writer, cd *CurrentDraw) error {
	w.skip(1)
	if cd == nil {
		w.u8(0)
		w.u16(0)
		return nil
	}
	if err := cd.validate(); err != nil {
		return err
	}
	w.u8(currentDrawEnabled)
	w.u16(uint16(*cd))
	return nil
}

func encodeAlarmSettings(w *writer, a *AlarmSettings) error {
	w.u8(uint8(a.Flags))

	var enabled uint8
	if a.FlowAlarmLimit != nil {
		enabled |= alarmEnableFlow
	}
	if a.WaterTemperatureLimit != nil {
		enabled |= alarmEnableWaterTemp
	}
	if a.ExternalTempLimit != nil {
		enabled |= alarmEnableExternalTemp
	}
	if a.WaterQualityLimit != nil {
		enabled |= alarmEnableQuality
	}
	w.u8(enabled)
	w.skip(1)

	if err := a.StartupDelay.validate(); err != nil {
		return err
	}
	w.u8(uint8(a.StartupDelay))

	// Disabled limits are written as zero.
	if err := encodeOptU16(w, a.FlowAlarmLimit); err != nil {
		return err
	}
	if err := encodeOptU16(w, a.WaterTemperatureLimit); err != nil {
		return err
	}
	if err := encodeOptU16(w, a.ExternalTempLimit); err != nil {
		return err
	}
	if err := encodeOptU16(w, a.WaterQualityLimit); err != nil {
		return err
	}

	if err := a.OutputSignal.validate(); err != nil {
		return err
	}
	w.u8(uint8(a.OutputSignal))
	return nil
}

// encodeOptU16 writes an optional ranged 16 bit value, zero when absent.
func encodeOptU16[T interface {
	~uint16
	validate() error
}](w *writer, v *T) error {
	if v == nil {
		w.u16(0)
		return nil
	}
	if err := (*v).validate(); err != nil {
		return err
	}
	w.u16(uint16(*v))
	return nil
}

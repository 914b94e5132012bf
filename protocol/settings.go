package protocol

// settingsPayloadLen is the payload size of the settings frame.
const settingsPayloadLen = 679

const flowCorrectionPoints = 10

// Settings is the full decoded configuration of a device.
type Settings struct {
	// Version is the settings layout revision reported by the device. It
	// is carried through encode unchanged.
	Version uint16

	// System holds standby, bus and power-budget settings.
	System SystemSettings

	// Sensor holds calibration and measurement settings.
	Sensor SensorSettings

	// Alarms holds alarm limits and signaling settings.
	Alarms AlarmSettings

	// Display holds display and chart settings.
	Display DisplaySettings

	// Lighting holds the RGBpx settings, nil when the section is disabled.
	Lighting *LightingSettings
}

// Kind implements Frame.
func (s *Settings) Kind() FrameKind {
	return KindSettings
}

// SystemSettings holds standby behavior, the AquaBus address and the
// current budget for connected LED strips.
type SystemSettings struct {
	StandbyFlags   StandbyFlags
	AquaBusAddress AquaBusAddress

	// IncreasedCurrentDraw raises the allowed RGBpx current draw, nil
	// when the default budget applies.
	IncreasedCurrentDraw *CurrentDraw
}

// SensorSettings holds the measurement calibration.
type SensorSettings struct {
	// Medium is the coolant the flow calibration is tuned for.
	Medium Medium

	// ConnectorType is the fitting the device is plumbed with.
	ConnectorType ConnectorType

	// FlowCorrection maps ten flow reference points to correction
	// percentages.
	FlowCorrection [flowCorrectionPoints]FlowCorrectionPoint

	WaterTempOffset    TempOffset
	ExternalTempOffset TempOffset
	ConductivityOffset ConductivityOffset

	// WaterQualityMax and WaterQualityMin are the conductivity reference
	// points mapped to 100 % and 0 % water quality.
	WaterQualityMax Conductivity
	WaterQualityMin Conductivity

	PowerFlags   PowerFlags
	PowerDamping PowerDamping
}

// FlowCorrectionPoint is one entry of the flow correction curve.
type FlowCorrectionPoint struct {
	Flow       Flow
	Correction FlowCorrection
}

// AlarmSettings holds alarm limits and how alarms are signaled. A nil
// limit means the alarm is disabled.
type AlarmSettings struct {
	Flags AlarmFlags

	// StartupDelay suppresses alarms for the given time after power-on.
	StartupDelay StartupDelay

	FlowAlarmLimit        *Flow
	WaterTemperatureLimit *Temperature
	ExternalTempLimit     *Temperature
	WaterQualityLimit     *WaterQuality

	OutputSignal OutputSignal
}

// DisplaySettings holds display, page and chart settings.
type DisplaySettings struct {
	TemperatureUnit TemperatureUnit
	FlowUnit        FlowUnit
	DisplayFlags    DisplayFlags

	// NextPageInterval is the page cycle interval, nil when cycling is
	// disabled.
	NextPageInterval *NextPageInterval

	PageFlags PageFlags

	Brightness DisplayBrightness

	// IdleBrightness is the brightness after a period without input, nil
	// when the display switches off instead.
	IdleBrightness *DisplayBrightness

	Charts [4]Chart
}

// Chart is one of the four value charts the display can show.
type Chart struct {
	Source   ChartSource
	Interval ChartInterval
}

// DecodeSettings decodes a settings frame (kind 0x03) into a snapshot.
// The payload is walked in its fixed wire order; any out-of-range or
// unassigned value aborts the decode with no partial result.
func DecodeSettings(raw []byte) (*Settings, error) {
	payload, err := framePayload(raw, KindSettings, settingsPayloadLen)
	if err != nil {
		return nil, err
	}
	r := newReader(payload)

	s := &Settings{Version: r.u16()}

	if s.Display, err = decodeDisplaySettings(r); err != nil {
		return nil, err
	}
	if s.System.IncreasedCurrentDraw, err = decodeCurrentDraw(r); err != nil {
		return nil, err
	}
	s.System.AquaBusAddress = AquaBusAddress(r.u8())
	if err = s.System.AquaBusAddress.validate(); err != nil {
		return nil, err
	}

	s.Sensor.WaterTempOffset = TempOffset(r.i16())
	if err = s.Sensor.WaterTempOffset.validate(); err != nil {
		return nil, err
	}
	s.Sensor.ExternalTempOffset = TempOffset(r.i16())
	if err = s.Sensor.ExternalTempOffset.validate(); err != nil {
		return nil, err
	}
	s.Sensor.Medium = Medium(r.u8())
	if err = s.Sensor.Medium.validate(); err != nil {
		return nil, err
	}
	s.Sensor.ConnectorType = ConnectorType(r.u8())
	if err = s.Sensor.ConnectorType.validate(); err != nil {
		return nil, err
	}

	// The correction curve is transferred as two parallel arrays: all ten
	// correction values first, then the ten flow reference points.
	var corrections [flowCorrectionPoints]FlowCorrection
	for i := range corrections {
		corrections[i] = FlowCorrection(r.i16())
		if err = corrections[i].validate(); err != nil {
			return nil, err
		}
	}
	for i := range s.Sensor.FlowCorrection {
		flow := Flow(r.u16())
		if err = flow.validate(); err != nil {
			return nil, err
		}
		s.Sensor.FlowCorrection[i] = FlowCorrectionPoint{
			Flow:       flow,
			Correction: corrections[i],
		}
	}

	if s.Lighting, err = decodeLightingSettings(r); err != nil {
		return nil, err
	}

	s.System.StandbyFlags = StandbyFlags(r.u8())
	r.skip(2)
	s.Sensor.ConductivityOffset = ConductivityOffset(r.i16())
	if err = s.Sensor.ConductivityOffset.validate(); err != nil {
		return nil, err
	}
	s.Sensor.WaterQualityMax = Conductivity(r.u16())
	if err = s.Sensor.WaterQualityMax.validate(); err != nil {
		return nil, err
	}
	s.Sensor.WaterQualityMin = Conductivity(r.u16())
	if err = s.Sensor.WaterQualityMin.validate(); err != nil {
		return nil, err
	}
	r.skip(1)
	s.Sensor.PowerFlags = PowerFlags(r.u8())
	s.Sensor.PowerDamping = PowerDamping(r.u16())
	if err = s.Sensor.PowerDamping.validate(); err != nil {
		return nil, err
	}

	if s.Alarms, err = decodeAlarmSettings(r); err != nil {
		return nil, err
	}
	r.skip(1)

	return s, nil
}

func decodeDisplaySettings(r *reader) (DisplaySettings, error) {
	var d DisplaySettings
	var err error

	d.TemperatureUnit = TemperatureUnit(r.u8())
	if err = d.TemperatureUnit.validate(); err != nil {
		return d, err
	}
	d.FlowUnit = FlowUnit(r.u8())
	if err = d.FlowUnit.validate(); err != nil {
		return d, err
	}
	r.skip(1)

	// Interval values above 60 mean page cycling is disabled; values below
	// the minimum of 3 are invalid.
	if raw := r.u8(); raw <= 60 {
		interval := NextPageInterval(raw)
		if err = interval.validate(); err != nil {
			return d, err
		}
		d.NextPageInterval = &interval
	}
	r.skip(2)
	d.PageFlags = PageFlags(r.u16())
	r.skip(4)

	d.Brightness = DisplayBrightness(r.u8())
	if err = d.Brightness.validate(); err != nil {
		return d, err
	}
	if raw := DisplayBrightness(r.u8()); raw != displayBrightnessOff {
		if err = raw.validate(); err != nil {
			return d, err
		}
		d.IdleBrightness = &raw
	}
	r.skip(4)
	d.DisplayFlags = DisplayFlags(r.u8())

	for i := range d.Charts {
		r.skip(1)
		d.Charts[i].Source = ChartSource(r.u8())
		if err = d.Charts[i].Source.validate(); err != nil {
			return d, err
		}
		d.Charts[i].Interval = ChartInterval(r.u16())
		if err = d.Charts[i].Interval.validate(); err != nil {
			return d, err
		}
	}
	return d, nil
}

// currentDrawEnabled gates the increased current draw value.
const currentDrawEnabled = 0x01

func decodeCurrentDraw(r *reader) (*CurrentDraw, error) {
	r.skip(1)
	flags := r.u8()
	val := CurrentDraw(r.u16())
	if flags&currentDrawEnabled == 0 {
		return nil, nil
	}
	if err := val.validate(); err != nil {
		return nil, err
	}
	return &val, nil
}

// Alarm enable bits in the settings frame.
const (
	alarmEnableFlow         = 0x01
	alarmEnableWaterTemp    = 0x02
	alarmEnableExternalTemp = 0x04
	alarmEnableQuality      = 0x08
)

func decodeAlarmSettings(r *reader) (AlarmSettings, error) {
	var a AlarmSettings
	var err error

	a.Flags = AlarmFlags(r.u8())
	enabled := r.u8()
	r.skip(1)
	a.StartupDelay = StartupDelay(r.u8())
	if err = a.StartupDelay.validate(); err != nil {
		return a, err
	}

	// Limit values of disabled alarms are transferred but carry no
	// meaning; they are read and dropped without range validation.
	if flow := Flow(r.u16()); enabled&alarmEnableFlow != 0 {
		if err = flow.validate(); err != nil {
			return a, err
		}
		a.FlowAlarmLimit = &flow
	}
	if temp := Temperature(r.u16()); enabled&alarmEnableWaterTemp != 0 {
		if err = temp.validate(); err != nil {
			return a, err
		}
		a.WaterTemperatureLimit = &temp
	}
	if temp := Temperature(r.u16()); enabled&alarmEnableExternalTemp != 0 {
		if err = temp.validate(); err != nil {
			return a, err
		}
		a.ExternalTempLimit = &temp
	}
	if quality := WaterQuality(r.u16()); enabled&alarmEnableQuality != 0 {
		if err = quality.validate(); err != nil {
			return a, err
		}
		a.WaterQualityLimit = &quality
	}

	a.OutputSignal = OutputSignal(r.u8())
	if err = a.OutputSignal.validate(); err != nil {
		return a, err
	}
	return a, nil
}

package main

import (
	"fmt"

	"github.com/Bergmann89/HighFlowNext/protocol"
)

// YAML report types. These mirror the decoded snapshots with everything
// resolved to printable values, so the output is stable and greppable.

type sensorReport struct {
	Serial          string   `yaml:"serial"`
	FirmwareVersion uint16   `yaml:"firmware_version"`
	Status          []string `yaml:"status,omitempty"`
	Flow            float64  `yaml:"flow_lph"`
	WaterTemp       float64  `yaml:"water_temp_c"`
	ExternalTemp    *float64 `yaml:"external_temp_c,omitempty"`
	Conductivity    float64  `yaml:"conductivity_us_cm"`
	WaterQuality    float64  `yaml:"water_quality_pct"`
	Power           float64  `yaml:"power_w"`
	Voltage5V       float64  `yaml:"voltage_5v"`
	VoltageUSB      float64  `yaml:"voltage_usb"`
	Frequency       float64  `yaml:"frequency_hz"`
	Volume          float64  `yaml:"volume_l"`
	Alarms          []string `yaml:"alarms,omitempty"`
}

type settingsReport struct {
	Version uint16 `yaml:"version"`

	System struct {
		Standby        []string `yaml:"standby,omitempty"`
		AquaBusAddress uint8    `yaml:"aquabus_address"`
		CurrentDrawMA  *uint16  `yaml:"increased_current_draw_ma,omitempty"`
	} `yaml:"system"`

	Sensor struct {
		Medium             string       `yaml:"medium"`
		Connector          string       `yaml:"connector"`
		WaterTempOffset    float64      `yaml:"water_temp_offset_c"`
		ExternalTempOffset float64      `yaml:"external_temp_offset_c"`
		ConductivityOffset float64      `yaml:"conductivity_offset_us_cm"`
		WaterQualityMax    float64      `yaml:"water_quality_max_us_cm"`
		WaterQualityMin    float64      `yaml:"water_quality_min_us_cm"`
		AutoOffset         bool         `yaml:"auto_offset_compensation"`
		PowerDampingW      float64      `yaml:"power_damping_w"`
		FlowCorrection     [][2]float64 `yaml:"flow_correction"`
	} `yaml:"sensor"`

	Alarms struct {
		Indicators   []string `yaml:"indicators,omitempty"`
		StartupDelay uint8    `yaml:"startup_delay_s"`
		FlowLimit    *float64 `yaml:"flow_limit_lph,omitempty"`
		WaterTemp    *float64 `yaml:"water_temp_limit_c,omitempty"`
		ExternalTemp *float64 `yaml:"external_temp_limit_c,omitempty"`
		WaterQuality *float64 `yaml:"water_quality_limit_pct,omitempty"`
		OutputSignal string   `yaml:"output_signal"`
	} `yaml:"alarms"`

	Display struct {
		TemperatureUnit  string        `yaml:"temperature_unit"`
		FlowUnit         string        `yaml:"flow_unit"`
		Flags            []string      `yaml:"flags,omitempty"`
		NextPageInterval *uint8        `yaml:"next_page_interval_s,omitempty"`
		Pages            []string      `yaml:"pages,omitempty"`
		Brightness       string        `yaml:"brightness"`
		IdleBrightness   *string       `yaml:"idle_brightness,omitempty"`
		Charts           []chartReport `yaml:"charts"`
	} `yaml:"display"`

	Lighting *lightingReport `yaml:"lighting,omitempty"`
}

type chartReport struct {
	Source   string  `yaml:"source"`
	Interval float64 `yaml:"interval_s"`
}

type lightingReport struct {
	Brightness        uint8              `yaml:"brightness"`
	StripControllers  []controllerReport `yaml:"strip_controllers,omitempty"`
	SensorControllers []controllerReport `yaml:"sensor_controllers,omitempty"`
}

type controllerReport struct {
	Offset             uint8   `yaml:"offset"`
	Length             uint8   `yaml:"length"`
	Effect             string  `yaml:"effect"`
	DataSource         *string `yaml:"data_source,omitempty"`
	AttenuationRising  uint8   `yaml:"attenuation_rising"`
	AttenuationFalling uint8   `yaml:"attenuation_falling"`
}

type stringsReport struct {
	DeviceName  string   `yaml:"device_name"`
	SensorNames []string `yaml:"sensor_names"`
}

func reportFor(frame protocol.Frame) any {
	switch f := frame.(type) {
	case *protocol.SensorSnapshot:
		return sensorReportFrom(f)
	case *protocol.Settings:
		return settingsReportFrom(f)
	case *protocol.StringsSnapshot:
		return &stringsReport{
			DeviceName:  f.DeviceName,
			SensorNames: f.SensorNames[:],
		}
	default:
		return frame
	}
}

func sensorReportFrom(s *protocol.SensorSnapshot) *sensorReport {
	return &sensorReport{
		Serial:          s.Serial(),
		FirmwareVersion: s.FirmwareVersion,
		Status:          statusNames(s.Status),
		Flow:            s.Flow,
		WaterTemp:       s.WaterTemp,
		ExternalTemp:    s.ExternalTemp,
		Conductivity:    s.Conductivity,
		WaterQuality:    s.WaterQuality,
		Power:           s.Power,
		Voltage5V:       s.Voltage5V,
		VoltageUSB:      s.VoltageUSB,
		Frequency:       s.Frequency,
		Volume:          s.Volume,
		Alarms:          alarmStateNames(s.Alarms),
	}
}

func settingsReportFrom(s *protocol.Settings) *settingsReport {
	r := &settingsReport{Version: s.Version}

	r.System.Standby = standbyNames(s.System.StandbyFlags)
	r.System.AquaBusAddress = uint8(s.System.AquaBusAddress)
	if s.System.IncreasedCurrentDraw != nil {
		ma := s.System.IncreasedCurrentDraw.Milliamps()
		r.System.CurrentDrawMA = &ma
	}

	r.Sensor.Medium = s.Sensor.Medium.String()
	r.Sensor.Connector = s.Sensor.ConnectorType.String()
	r.Sensor.WaterTempOffset = s.Sensor.WaterTempOffset.Celsius()
	r.Sensor.ExternalTempOffset = s.Sensor.ExternalTempOffset.Celsius()
	r.Sensor.ConductivityOffset = s.Sensor.ConductivityOffset.MicroSiemens()
	r.Sensor.WaterQualityMax = s.Sensor.WaterQualityMax.MicroSiemens()
	r.Sensor.WaterQualityMin = s.Sensor.WaterQualityMin.MicroSiemens()
	r.Sensor.AutoOffset = s.Sensor.PowerFlags.Has(protocol.PowerAutoOffsetCompensation)
	r.Sensor.PowerDampingW = s.Sensor.PowerDamping.Watts()
	for _, p := range s.Sensor.FlowCorrection {
		r.Sensor.FlowCorrection = append(r.Sensor.FlowCorrection,
			[2]float64{p.Flow.LitersPerHour(), p.Correction.Percent()})
	}

	r.Alarms.Indicators = alarmFlagNames(s.Alarms.Flags)
	r.Alarms.StartupDelay = uint8(s.Alarms.StartupDelay)
	if s.Alarms.FlowAlarmLimit != nil {
		v := s.Alarms.FlowAlarmLimit.LitersPerHour()
		r.Alarms.FlowLimit = &v
	}
	if s.Alarms.WaterTemperatureLimit != nil {
		v := s.Alarms.WaterTemperatureLimit.Celsius()
		r.Alarms.WaterTemp = &v
	}
	if s.Alarms.ExternalTempLimit != nil {
		v := s.Alarms.ExternalTempLimit.Celsius()
		r.Alarms.ExternalTemp = &v
	}
	if s.Alarms.WaterQualityLimit != nil {
		v := s.Alarms.WaterQualityLimit.Percent()
		r.Alarms.WaterQuality = &v
	}
	r.Alarms.OutputSignal = s.Alarms.OutputSignal.String()

	r.Display.TemperatureUnit = s.Display.TemperatureUnit.String()
	r.Display.FlowUnit = s.Display.FlowUnit.String()
	r.Display.Flags = displayFlagNames(s.Display.DisplayFlags)
	if s.Display.NextPageInterval != nil {
		v := uint8(*s.Display.NextPageInterval)
		r.Display.NextPageInterval = &v
	}
	r.Display.Pages = pageNames(s.Display.PageFlags)
	r.Display.Brightness = s.Display.Brightness.String()
	if s.Display.IdleBrightness != nil {
		v := s.Display.IdleBrightness.String()
		r.Display.IdleBrightness = &v
	}
	for _, c := range s.Display.Charts {
		r.Display.Charts = append(r.Display.Charts, chartReport{
			Source:   c.Source.String(),
			Interval: c.Interval.Seconds(),
		})
	}

	if s.Lighting != nil {
		lr := &lightingReport{Brightness: uint8(s.Lighting.Brightness)}
		for _, c := range s.Lighting.StripControllers {
			lr.StripControllers = append(lr.StripControllers, controllerReportFrom(c))
		}
		for _, c := range s.Lighting.SensorControllers {
			lr.SensorControllers = append(lr.SensorControllers, controllerReportFrom(c))
		}
		r.Lighting = lr
	}

	return r
}

func controllerReportFrom(c protocol.Controller) controllerReport {
	r := controllerReport{
		Offset:             c.Offset,
		Length:             c.Length,
		Effect:             effectName(c.Effect),
		AttenuationRising:  c.AttenuationRising,
		AttenuationFalling: c.AttenuationFalling,
	}
	if c.DataSource != nil {
		v := c.DataSource.String()
		r.DataSource = &v
	}
	return r
}

// effectNames maps wire effect codes to readable names.
var effectNames = map[uint8]string{
	0x01: "static",
	0x02: "breathing",
	0x03: "rainbow",
	0x04: "blink",
	0x05: "color change",
	0x07: "sequence",
	0x08: "scanner",
	0x09: "laser",
	0x0A: "wave",
	0x0B: "color sequence",
	0x0C: "color shift",
	0x0D: "bar graph",
	0x0E: "flame",
	0x0F: "rain",
	0x10: "snow",
	0x11: "stardust",
	0x12: "color switch",
	0x13: "swiping rainbow",
	0x14: "sound flash",
	0x15: "sound bars",
	0x16: "sound slider",
	0x17: "sound shift",
	0x18: "ambient",
	0x21: "color gradient",
}

func effectName(e protocol.Effect) string {
	if e == nil {
		return "none"
	}
	if name, ok := effectNames[e.Code()]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%#02x)", e.Code())
}

// Flag name helpers

func statusNames(f protocol.StatusFlags) []string {
	var names []string
	if f.Has(protocol.StatusStandby) {
		names = append(names, "standby")
	}
	if f.Has(protocol.StatusAlarmActive) {
		names = append(names, "alarm active")
	}
	return names
}

func alarmStateNames(s protocol.AlarmState) []string {
	var names []string
	if s.Has(protocol.AlarmStateFlow) {
		names = append(names, "flow")
	}
	if s.Has(protocol.AlarmStateWaterTemp) {
		names = append(names, "water temperature")
	}
	if s.Has(protocol.AlarmStateExternalTemp) {
		names = append(names, "external temperature")
	}
	if s.Has(protocol.AlarmStateWaterQuality) {
		names = append(names, "water quality")
	}
	return names
}

func standbyNames(f protocol.StandbyFlags) []string {
	var names []string
	if f.Has(protocol.StandbyNoUSB) {
		names = append(names, "no usb power")
	}
	if f.Has(protocol.StandbyOnSuspend) {
		names = append(names, "host suspend")
	}
	if f.Has(protocol.StandbyOnAquaBusLoss) {
		names = append(names, "aquabus loss")
	}
	if f.Has(protocol.StandbyDisableAlarmDetect) {
		names = append(names, "alarm detection disabled")
	}
	if f.Has(protocol.StandbyDisplayOff) {
		names = append(names, "display off")
	}
	if f.Has(protocol.StandbyLEDsDisabled) {
		names = append(names, "leds disabled")
	}
	if f.Has(protocol.StandbyDisableVolumeCounter) {
		names = append(names, "volume counter disabled")
	}
	return names
}

func alarmFlagNames(f protocol.AlarmFlags) []string {
	var names []string
	if f.Has(protocol.AlarmDisableSignalOutput) {
		names = append(names, "signal output disabled")
	}
	if f.Has(protocol.AlarmOpticalIndicator) {
		names = append(names, "optical")
	}
	if f.Has(protocol.AlarmAcousticIndicator) {
		names = append(names, "acoustic")
	}
	return names
}

func displayFlagNames(f protocol.DisplayFlags) []string {
	var names []string
	if f.Has(protocol.DisplayRotate) {
		names = append(names, "rotate")
	}
	if f.Has(protocol.DisplayInvert) {
		names = append(names, "invert")
	}
	if f.Has(protocol.DisplayAutoInvert) {
		names = append(names, "auto invert")
	}
	if f.Has(protocol.DisplayDisableButtons) {
		names = append(names, "buttons disabled")
	}
	if f.Has(protocol.DisplayLockMenu) {
		names = append(names, "menu locked")
	}
	return names
}

var pageFlagNames = []struct {
	flag protocol.PageFlags
	name string
}{
	{protocol.PageDeviceInfo, "device info"},
	{protocol.PageFlow, "flow"},
	{protocol.PageWaterTemp, "water temperature"},
	{protocol.PageExternalTemp, "external temperature"},
	{protocol.PageConductivity, "conductivity"},
	{protocol.PageWaterQuality, "water quality"},
	{protocol.PageVolumeCounter, "volume counter"},
	{protocol.PagePowerSensor, "power"},
	{protocol.PageFlowWaterTemp, "flow + water temperature"},
	{protocol.PageCondQuality, "conductivity + quality"},
	{protocol.PageTemperatures, "temperatures"},
	{protocol.PageFlowVolume, "flow + volume"},
	{protocol.PageChart1, "chart 1"},
	{protocol.PageChart2, "chart 2"},
	{protocol.PageChart3, "chart 3"},
	{protocol.PageChart4, "chart 4"},
}

func pageNames(f protocol.PageFlags) []string {
	var names []string
	for _, p := range pageFlagNames {
		if f.Has(p.flag) {
			names = append(names, p.name)
		}
	}
	return names
}

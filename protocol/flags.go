package protocol

// Enumerations and bit-flag sets carried by the settings frame. Enumeration
// decode rejects unassigned raw values; flag sets keep unassigned bits as
// they are so unknown firmware bits survive a decode/encode round trip.

// TemperatureUnit selects the unit temperatures are displayed in.
type TemperatureUnit uint8

const (
	TemperatureUnitCelsius    TemperatureUnit = 0x00
	TemperatureUnitFahrenheit TemperatureUnit = 0x01
)

func (u TemperatureUnit) String() string {
	switch u {
	case TemperatureUnitCelsius:
		return "celsius"
	case TemperatureUnitFahrenheit:
		return "fahrenheit"
	}
	return "unknown"
}

func (u TemperatureUnit) validate() error {
	if u > TemperatureUnitFahrenheit {
		return invalidValueError("temperature_unit", int64(u))
	}
	return nil
}

// FlowUnit selects the unit the flow is displayed in.
type FlowUnit uint8

const (
	FlowUnitLitersPerHour  FlowUnit = 0x00
	FlowUnitGallonsPerHour FlowUnit = 0x01
)

func (u FlowUnit) String() string {
	switch u {
	case FlowUnitLitersPerHour:
		return "l/h"
	case FlowUnitGallonsPerHour:
		return "gal/h"
	}
	return "unknown"
}

func (u FlowUnit) validate() error {
	if u > FlowUnitGallonsPerHour {
		return invalidValueError("flow_unit", int64(u))
	}
	return nil
}

// Medium is the coolant the flow calibration is tuned for.
type Medium uint8

const (
	MediumDPUltra        Medium = 0x00
	MediumDistilledWater Medium = 0x01
)

func (m Medium) String() string {
	switch m {
	case MediumDPUltra:
		return "DP Ultra"
	case MediumDistilledWater:
		return "distilled water"
	}
	return "unknown"
}

func (m Medium) validate() error {
	if m > MediumDistilledWater {
		return invalidValueError("medium", int64(m))
	}
	return nil
}

// ConnectorType is the fitting the device is plumbed with; it influences
// the flow calibration.
type ConnectorType uint8

const (
	// ConnectorInnerDiameterGt7mm: fitting inner diameter above 7 mm.
	ConnectorInnerDiameterGt7mm ConnectorType = 0x00
	// ConnectorInnerDiameterLt7mm: fitting inner diameter below 7 mm.
	ConnectorInnerDiameterLt7mm ConnectorType = 0x01
)

func (c ConnectorType) String() string {
	switch c {
	case ConnectorInnerDiameterGt7mm:
		return "inner diameter > 7mm"
	case ConnectorInnerDiameterLt7mm:
		return "inner diameter < 7mm"
	}
	return "unknown"
}

func (c ConnectorType) validate() error {
	if c > ConnectorInnerDiameterLt7mm {
		return invalidValueError("connector_type", int64(c))
	}
	return nil
}

// DisplayBrightness is a display brightness step.
type DisplayBrightness uint8

const (
	DisplayBrightnessMaximum DisplayBrightness = 0x00
	DisplayBrightnessMedium  DisplayBrightness = 0x01
	DisplayBrightnessLow     DisplayBrightness = 0x02

	// displayBrightnessOff marks the idle brightness as "display off" on
	// the wire; it decodes to a nil optional.
	displayBrightnessOff = 0x03
)

func (b DisplayBrightness) String() string {
	switch b {
	case DisplayBrightnessMaximum:
		return "maximum"
	case DisplayBrightnessMedium:
		return "medium"
	case DisplayBrightnessLow:
		return "low"
	}
	return "unknown"
}

func (b DisplayBrightness) validate() error {
	if b > DisplayBrightnessLow {
		return invalidValueError("display_brightness", int64(b))
	}
	return nil
}

// ChartSource is the sensor a display chart plots.
type ChartSource uint8

const (
	ChartSourceFlow             ChartSource = 0x00
	ChartSourceWaterTemp        ChartSource = 0x01
	ChartSourceExternalTemp     ChartSource = 0x02
	ChartSourceConductivity     ChartSource = 0x03
	ChartSourceWaterQuality     ChartSource = 0x04
	ChartSourcePowerConsumption ChartSource = 0x05
	ChartSourceSystemVoltage    ChartSource = 0x06
)

func (s ChartSource) String() string {
	switch s {
	case ChartSourceFlow:
		return "flow"
	case ChartSourceWaterTemp:
		return "water temperature"
	case ChartSourceExternalTemp:
		return "external temperature"
	case ChartSourceConductivity:
		return "conductivity"
	case ChartSourceWaterQuality:
		return "water quality"
	case ChartSourcePowerConsumption:
		return "power consumption"
	case ChartSourceSystemVoltage:
		return "system voltage"
	}
	return "unknown"
}

func (s ChartSource) validate() error {
	if s > ChartSourceSystemVoltage {
		return invalidValueError("chart_source", int64(s))
	}
	return nil
}

// OutputSignal selects what the signal output pin generates.
type OutputSignal uint8

const (
	// OutputSignalConstantSpeed generates a constant speed signal.
	OutputSignalConstantSpeed OutputSignal = 0x00
	// OutputSignalHighFlowSensor emulates the high flow sensor (53069).
	OutputSignalHighFlowSensor OutputSignal = 0x01
	// OutputSignalFanFromFlow derives a fan speed signal from the flow
	// rate (1000 rpm = 100 l/h).
	OutputSignalFanFromFlow OutputSignal = 0x02
	// OutputSignalPulseOnAlarm switches the output for one second on alarm.
	OutputSignalPulseOnAlarm OutputSignal = 0x03
	// OutputSignalPermanentOn keeps the output switched on.
	OutputSignalPermanentOn OutputSignal = 0x04
	// OutputSignalPermanentOff keeps the output switched off.
	OutputSignalPermanentOff OutputSignal = 0x05
)

func (s OutputSignal) String() string {
	switch s {
	case OutputSignalConstantSpeed:
		return "constant speed"
	case OutputSignalHighFlowSensor:
		return "high flow sensor"
	case OutputSignalFanFromFlow:
		return "fan speed from flow"
	case OutputSignalPulseOnAlarm:
		return "pulse on alarm"
	case OutputSignalPermanentOn:
		return "permanently on"
	case OutputSignalPermanentOff:
		return "permanently off"
	}
	return "unknown"
}

func (s OutputSignal) validate() error {
	if s > OutputSignalPermanentOff {
		return invalidValueError("output_signal", int64(s))
	}
	return nil
}

// StandbyFlags controls the behavior of the device in standby.
type StandbyFlags uint8

const (
	// StandbyNoUSB enters standby if USB is not connected.
	StandbyNoUSB StandbyFlags = 0x01
	// StandbyOnSuspend enters standby upon a USB suspend command.
	StandbyOnSuspend StandbyFlags = 0x02
	// StandbyOnAquaBusLoss enters standby if the AquaBus connection is lost.
	StandbyOnAquaBusLoss StandbyFlags = 0x04
	// StandbyDisableAlarmDetect disables alarm detection in standby.
	StandbyDisableAlarmDetect StandbyFlags = 0x10
	// StandbyDisplayOff disables the display in standby.
	StandbyDisplayOff StandbyFlags = 0x20
	// StandbyLEDsDisabled disables the LEDs in standby.
	StandbyLEDsDisabled StandbyFlags = 0x40
	// StandbyDisableVolumeCounter disables the volume counter in standby.
	StandbyDisableVolumeCounter StandbyFlags = 0x80
)

// Has reports whether all given flags are set.
func (f StandbyFlags) Has(flags StandbyFlags) bool {
	return f&flags == flags
}

// PowerFlags controls the power calculation.
type PowerFlags uint8

const (
	// PowerAutoOffsetCompensation enables automatic offset compensation in
	// standby.
	PowerAutoOffsetCompensation PowerFlags = 0x01
)

// Has reports whether all given flags are set.
func (f PowerFlags) Has(flags PowerFlags) bool {
	return f&flags == flags
}

// AlarmFlags controls how alarms are signaled.
type AlarmFlags uint8

const (
	// AlarmDisableSignalOutput disables the signal output during an alarm.
	AlarmDisableSignalOutput AlarmFlags = 0x20
	// AlarmOpticalIndicator flashes the red ring during an alarm.
	AlarmOpticalIndicator AlarmFlags = 0x40
	// AlarmAcousticIndicator beeps during an alarm.
	AlarmAcousticIndicator AlarmFlags = 0x80
)

// Has reports whether all given flags are set.
func (f AlarmFlags) Has(flags AlarmFlags) bool {
	return f&flags == flags
}

// DisplayFlags controls display orientation and button behavior.
type DisplayFlags uint8

const (
	// DisplayRotate rotates the display by 180°.
	DisplayRotate DisplayFlags = 0x01
	// DisplayInvert inverts the display colors.
	DisplayInvert DisplayFlags = 0x04
	// DisplayAutoInvert inverts the display colors automatically.
	DisplayAutoInvert DisplayFlags = 0x08
	// DisplayDisableButtons disables the device buttons.
	DisplayDisableButtons DisplayFlags = 0x10
	// DisplayLockMenu locks the device menu.
	DisplayLockMenu DisplayFlags = 0x20
)

// Has reports whether all given flags are set.
func (f DisplayFlags) Has(flags DisplayFlags) bool {
	return f&flags == flags
}

// PageFlags selects the pages the display cycles through.
type PageFlags uint16

const (
	PageDeviceInfo        PageFlags = 0x0001
	PageFlow              PageFlags = 0x0002
	PageWaterTemp         PageFlags = 0x0004
	PageExternalTemp      PageFlags = 0x0008
	PageConductivity      PageFlags = 0x0010
	PageWaterQuality      PageFlags = 0x0020
	PageVolumeCounter     PageFlags = 0x0040
	PagePowerSensor       PageFlags = 0x0080
	PageFlowWaterTemp     PageFlags = 0x0100
	PageCondQuality       PageFlags = 0x0200
	PageTemperatures      PageFlags = 0x0400
	PageFlowVolume        PageFlags = 0x0800
	PageChart1            PageFlags = 0x1000
	PageChart2            PageFlags = 0x2000
	PageChart3            PageFlags = 0x4000
	PageChart4            PageFlags = 0x8000
)

// Has reports whether all given flags are set.
func (f PageFlags) Has(flags PageFlags) bool {
	return f&flags == flags
}

// DataSource is a sensor channel a lighting controller can bind an effect
// parameter to.
type DataSource uint16

const (
	DataSourceFlow                DataSource = 0x0000
	DataSourceWaterTemperature    DataSource = 0x0001
	DataSourceExternalTemperature DataSource = 0x0002
	DataSourceConductivity        DataSource = 0x0003
	DataSourceWaterQuality        DataSource = 0x0004
	DataSourcePower               DataSource = 0x0005
	DataSourceSoftwareSensor1     DataSource = 0x0006
	DataSourceSoftwareSensor2     DataSource = 0x0007
	DataSourceSoftwareSensor3     DataSource = 0x0008
	DataSourceSoftwareSensor4     DataSource = 0x0009
	DataSourceSoftwareSensor5     DataSource = 0x000A
	DataSourceSoftwareSensor6     DataSource = 0x000B
	DataSourceSoftwareSensor7     DataSource = 0x000C
	DataSourceSoftwareSensor8     DataSource = 0x000D
	DataSourceSound               DataSource = 0x001C

	// dataSourceNone marks an unbound controller on the wire; it decodes
	// to a nil optional.
	dataSourceNone = 0xFFFF
)

func (s DataSource) String() string {
	switch s {
	case DataSourceFlow:
		return "flow"
	case DataSourceWaterTemperature:
		return "water temperature"
	case DataSourceExternalTemperature:
		return "external temperature"
	case DataSourceConductivity:
		return "conductivity"
	case DataSourceWaterQuality:
		return "water quality"
	case DataSourcePower:
		return "power"
	case DataSourceSound:
		return "sound"
	}
	if s >= DataSourceSoftwareSensor1 && s <= DataSourceSoftwareSensor8 {
		return "software sensor"
	}
	return "unknown"
}

func (s DataSource) validate() error {
	if s <= DataSourceSoftwareSensor8 || s == DataSourceSound {
		return nil
	}
	return invalidValueError("data_source", int64(s))
}

// SoundEffect is the animation pattern of a sound-reactive slider.
type SoundEffect uint16

const (
	// SoundEffectOutwardsFromCenter expands outward from the strip center.
	SoundEffectOutwardsFromCenter SoundEffect = 0x0000
	// SoundEffectInwardsToCenterA contracts toward the center, pattern A.
	SoundEffectInwardsToCenterA SoundEffect = 0x0001
	// SoundEffectInwardsToCenterB contracts toward the center, pattern B.
	SoundEffectInwardsToCenterB SoundEffect = 0x0002
	// SoundEffectFromLeft animates from the left channel.
	SoundEffectFromLeft SoundEffect = 0x0003
	// SoundEffectFromRight animates from the right channel.
	SoundEffectFromRight SoundEffect = 0x0004
	// SoundEffectAllLEDs drives all LEDs with the sound level.
	SoundEffectAllLEDs SoundEffect = 0x0005
)

func (e SoundEffect) validate() error {
	if e > SoundEffectAllLEDs {
		return invalidValueError("sound_effect", int64(e))
	}
	return nil
}

// AlarmState is the set of alarms currently raised by the device, as
// reported in the sensor frame.
type AlarmState uint16

const (
	AlarmStateFlow         AlarmState = 0x0001
	AlarmStateWaterTemp    AlarmState = 0x0002
	AlarmStateExternalTemp AlarmState = 0x0004
	AlarmStateWaterQuality AlarmState = 0x0008
)

// Has reports whether all given alarms are raised.
func (s AlarmState) Has(flags AlarmState) bool {
	return s&flags == flags
}

// StatusFlags is the device status byte of the sensor frame.
type StatusFlags uint8

const (
	// StatusStandby is set while the device is in standby.
	StatusStandby StatusFlags = 0x01
	// StatusAlarmActive is set while any alarm is raised.
	StatusAlarmActive StatusFlags = 0x02
)

// Has reports whether all given status bits are set.
func (f StatusFlags) Has(flags StatusFlags) bool {
	return f&flags == flags
}

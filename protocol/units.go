package protocol

// The scalar wrapper types in this file carry raw wire values together with
// their physical interpretation. Conversions to physical units happen in
// the accessor methods; conversions from physical units round to the
// nearest wire step, ties away from zero, and reject values whose rounded
// result falls outside the field's domain. Snapshots always store the raw
// wire value, so a decode/encode round trip is bit-exact.

// Flow is a volumetric flow in 1/10 l/h, valid 0 to 3000 (0 to 300 l/h).
type Flow uint16

// FlowFromLitersPerHour converts a physical flow to its wire value.
func FlowFromLitersPerHour(v float64) (Flow, error) {
	raw := Scale{1, 10}.Raw(v)
	if err := checkRange("flow", raw, 0, 3000); err != nil {
		return 0, err
	}
	return Flow(raw), nil
}

// LitersPerHour returns the flow in l/h.
func (f Flow) LitersPerHour() float64 {
	return Scale{1, 10}.Float(int64(f))
}

func (f Flow) validate() error {
	return checkRange("flow", f, 0, 3000)
}

// FlowCorrection is a calibration correction in 1/100 %, valid -5000 to
// 5000 (-50 % to +50 %).
type FlowCorrection int16

// FlowCorrectionFromPercent converts a correction percentage to its wire
// value.
func FlowCorrectionFromPercent(v float64) (FlowCorrection, error) {
	raw := Scale{1, 100}.Raw(v)
	if err := checkRange("flow_correction", raw, -5000, 5000); err != nil {
		return 0, err
	}
	return FlowCorrection(raw), nil
}

// Percent returns the correction in percent.
func (c FlowCorrection) Percent() float64 {
	return Scale{1, 100}.Float(int64(c))
}

func (c FlowCorrection) validate() error {
	return checkRange("flow_correction", c, -5000, 5000)
}

// Temperature is a temperature in 1/100 °C, valid 0 to 10000 (0 to 100 °C).
type Temperature uint16

// TemperatureFromCelsius converts a physical temperature to its wire value.
func TemperatureFromCelsius(v float64) (Temperature, error) {
	raw := Scale{1, 100}.Raw(v)
	if err := checkRange("temperature", raw, 0, 10000); err != nil {
		return 0, err
	}
	return Temperature(raw), nil
}

// Celsius returns the temperature in °C.
func (t Temperature) Celsius() float64 {
	return Scale{1, 100}.Float(int64(t))
}

func (t Temperature) validate() error {
	return checkRange("temperature", t, 0, 10000)
}

// TempOffset is a temperature calibration offset in 1/100 °C, valid -1500
// to 1500 (-15 °C to +15 °C).
type TempOffset int16

// TempOffsetFromCelsius converts a physical offset to its wire value.
func TempOffsetFromCelsius(v float64) (TempOffset, error) {
	raw := Scale{1, 100}.Raw(v)
	if err := checkRange("temperature_offset", raw, -1500, 1500); err != nil {
		return 0, err
	}
	return TempOffset(raw), nil
}

// Celsius returns the offset in °C.
func (o TempOffset) Celsius() float64 {
	return Scale{1, 100}.Float(int64(o))
}

func (o TempOffset) validate() error {
	return checkRange("temperature_offset", o, -1500, 1500)
}

// WaterQuality is a quality threshold in 1/100 %, valid 0 to 10000.
type WaterQuality uint16

// WaterQualityFromPercent converts a quality percentage to its wire value.
func WaterQualityFromPercent(v float64) (WaterQuality, error) {
	raw := Scale{1, 100}.Raw(v)
	if err := checkRange("water_quality", raw, 0, 10000); err != nil {
		return 0, err
	}
	return WaterQuality(raw), nil
}

// Percent returns the quality in percent.
func (q WaterQuality) Percent() float64 {
	return Scale{1, 100}.Float(int64(q))
}

func (q WaterQuality) validate() error {
	return checkRange("water_quality", q, 0, 10000)
}

// Conductivity is a conductivity reference point in µS/cm, valid 0 to 2000.
type Conductivity uint16

// MicroSiemens returns the conductivity in µS/cm.
func (c Conductivity) MicroSiemens() float64 {
	return float64(c)
}

func (c Conductivity) validate() error {
	return checkRange("conductivity", c, 0, 2000)
}

// ConductivityOffset is a conductivity calibration offset in 1/10 µS/cm,
// valid -500 to 500 (-50 to +50 µS/cm).
type ConductivityOffset int16

// ConductivityOffsetFromMicroSiemens converts a physical offset to its wire
// value.
func ConductivityOffsetFromMicroSiemens(v float64) (ConductivityOffset, error) {
	raw := Scale{1, 10}.Raw(v)
	if err := checkRange("conductivity_offset", raw, -500, 500); err != nil {
		return 0, err
	}
	return ConductivityOffset(raw), nil
}

// MicroSiemens returns the offset in µS/cm.
func (o ConductivityOffset) MicroSiemens() float64 {
	return Scale{1, 10}.Float(int64(o))
}

func (o ConductivityOffset) validate() error {
	return checkRange("conductivity_offset", o, -500, 500)
}

// PowerDamping is the damping of the dissipated-power readout in mW, valid
// 0 to 10000 (0 to 10 W).
type PowerDamping uint16

// PowerDampingFromWatts converts a physical damping to its wire value.
func PowerDampingFromWatts(v float64) (PowerDamping, error) {
	raw := Scale{1, 1000}.Raw(v)
	if err := checkRange("power_damping", raw, 0, 10000); err != nil {
		return 0, err
	}
	return PowerDamping(raw), nil
}

// Watts returns the damping in W.
func (d PowerDamping) Watts() float64 {
	return Scale{1, 1000}.Float(int64(d))
}

func (d PowerDamping) validate() error {
	return checkRange("power_damping", d, 0, 10000)
}

// CurrentDraw is the configured current draw of connected RGBpx strips in
// mA, valid 500 to 2000.
type CurrentDraw uint16

// Milliamps returns the current draw in mA.
func (c CurrentDraw) Milliamps() uint16 {
	return uint16(c)
}

func (c CurrentDraw) validate() error {
	return checkRange("current_draw", c, 500, 2000)
}

// StartupDelay is the alarm suppression delay after power-on in seconds,
// valid 0 to 100.
type StartupDelay uint8

func (d StartupDelay) validate() error {
	return checkRange("startup_delay", d, 0, 100)
}

// AquaBusAddress is the device address on the AquaBus, valid 58 to 61.
type AquaBusAddress uint8

func (a AquaBusAddress) validate() error {
	return checkRange("aquabus_address", a, 58, 61)
}

// NextPageInterval is the display page cycle interval in seconds, valid 3
// to 60.
type NextPageInterval uint8

func (i NextPageInterval) validate() error {
	return checkRange("next_page_interval", i, 3, 60)
}

// ChartInterval is a chart sampling interval in 1/10 s, valid 1 to 60000
// (0.1 s to 100 min).
type ChartInterval uint16

// Seconds returns the interval in seconds.
func (i ChartInterval) Seconds() float64 {
	return Scale{1, 10}.Float(int64(i))
}

func (i ChartInterval) validate() error {
	return checkRange("chart_interval", i, 1, 60000)
}

// Brightness is a lighting brightness level, 0 to 255.
type Brightness uint8

// EffectPercent is a lighting effect parameter in percent, valid 0 to 100.
type EffectPercent uint16

func (p EffectPercent) validate() error {
	return checkRange("effect_percent", p, 0, 100)
}

// EffectDelay is a lighting effect delay in 1/10 s, valid 0 to 100.
type EffectDelay uint16

// Seconds returns the delay in seconds.
func (d EffectDelay) Seconds() float64 {
	return Scale{1, 10}.Float(int64(d))
}

func (d EffectDelay) validate() error {
	return checkRange("effect_delay", d, 0, 100)
}

// EffectWidth is a lighting effect size or speed parameter, valid 1 to 100.
type EffectWidth uint16

func (w EffectWidth) validate() error {
	return checkRange("effect_width", w, 1, 100)
}

// RainItems is the particle count of the rain effect family, valid 1 to 4.
type RainItems uint16

func (i RainItems) validate() error {
	return checkRange("rain_items", i, 1, 4)
}

// SoundEffectSpeed is the speed of a sound-reactive effect, valid 1 to 10.
type SoundEffectSpeed uint16

func (s SoundEffectSpeed) validate() error {
	return checkRange("sound_effect_speed", s, 1, 10)
}

// SoundLevel is a sound intensity in percent, valid 0 to 100.
type SoundLevel uint8

func (l SoundLevel) validate() error {
	return checkRange("sound_level", l, 0, 100)
}

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

// testSettings builds a settings snapshot exercising every section,
// including a populated RGBpx configuration.
func testSettings() *Settings {
	return &Settings{
		Version: 1,
		System: SystemSettings{
			StandbyFlags:         StandbyNoUSB | StandbyDisplayOff,
			AquaBusAddress:       58,
			IncreasedCurrentDraw: ptr(CurrentDraw(1500)),
		},
		Sensor: SensorSettings{
			Medium:        MediumDistilledWater,
			ConnectorType: ConnectorInnerDiameterLt7mm,
			FlowCorrection: [flowCorrectionPoints]FlowCorrectionPoint{
				{Flow: 200, Correction: -150},
				{Flow: 400, Correction: -100},
				{Flow: 600, Correction: -50},
				{Flow: 800, Correction: 0},
				{Flow: 1000, Correction: 25},
				{Flow: 1400, Correction: 50},
				{Flow: 1800, Correction: 100},
				{Flow: 2200, Correction: 150},
				{Flow: 2600, Correction: 200},
				{Flow: 3000, Correction: 250},
			},
			WaterTempOffset:    -125,
			ExternalTempOffset: 50,
			ConductivityOffset: -50,
			WaterQualityMax:    500,
			WaterQualityMin:    950,
			PowerFlags:         PowerAutoOffsetCompensation,
			PowerDamping:       1000,
		},
		Alarms: AlarmSettings{
			Flags:                 AlarmOpticalIndicator | AlarmAcousticIndicator,
			StartupDelay:          10,
			FlowAlarmLimit:        ptr(Flow(300)),
			WaterTemperatureLimit: ptr(Temperature(4500)),
			WaterQualityLimit:     ptr(WaterQuality(5000)),
			OutputSignal:          OutputSignalHighFlowSensor,
		},
		Display: DisplaySettings{
			TemperatureUnit:  TemperatureUnitCelsius,
			FlowUnit:         FlowUnitLitersPerHour,
			DisplayFlags:     DisplayRotate | DisplayLockMenu,
			NextPageInterval: ptr(NextPageInterval(10)),
			PageFlags:        PageDeviceInfo | PageFlow | PageChart1,
			Brightness:       DisplayBrightnessMaximum,
			IdleBrightness:   ptr(DisplayBrightnessLow),
			Charts: [4]Chart{
				{Source: ChartSourceFlow, Interval: 10},
				{Source: ChartSourceWaterTemp, Interval: 100},
				{Source: ChartSourceConductivity, Interval: 600},
				{Source: ChartSourcePowerConsumption, Interval: 60000},
			},
		},
		Lighting: &LightingSettings{
			Brightness: 255,
			StripControllers: []Controller{
				{
					Offset:             0,
					Length:             30,
					DataSource:         ptr(DataSourceFlow),
					AttenuationRising:  5,
					AttenuationFalling: 10,
					Effect: &RainbowEffect{
						Color:            ColorFromHSV(0, 1, 1),
						Speed:            50,
						ColorRange:       100,
						ReverseDirection: true,
						SourceControlSpeed: &SourceControl{
							InputMin:  0,
							InputMax:  3000,
							OutputMin: 10,
							OutputMax: 90,
						},
					},
				},
				{
					Offset: 30,
					Length: 30,
					Effect: &BarGraphEffect{
						Background: ColorFromHSV(0, 0, 0),
						PeakColor:  ColorFromHSV(0, 1, 1),
						Ranges: []ColorRange{
							{Color: ColorFromHSV(120, 1, 1), Value: 100},
							{Color: ColorFromHSV(60, 1, 1), Value: 200},
							{Color: ColorFromHSV(0, 1, 1), Value: 300, Blink: true},
						},
						EndValue:     400,
						Rotation:     25,
						PeakHoldTime: 50,
						ShowBar:      true,
						ShowPeak:     true,
						SourceControlRotation: &SourceControl{
							InputMax:  1000,
							OutputMax: 255,
						},
					},
				},
				{
					Offset: 60,
					Length: 12,
					Effect: &BlinkEffect{
						Background: ColorFromHSV(0, 0, 0),
						Colors: []Color{
							ColorFromHSV(200, 1, 0.8),
							ColorFromHSV(320, 0.7, 1),
						},
						Speed:   75,
						FadeIn:  true,
						FadeOut: true,
					},
				},
			},
			SensorControllers: []Controller{
				{
					Length: 8,
					Effect: &StaticEffect{
						Color: ColorFromHSV(220, 1, 0.6),
					},
				},
				{
					Offset: 8,
					Length: 8,
					Effect: &AmbientEffect{
						Background: ColorFromHSV(0, 0, 0.1),
					},
				},
			},
		},
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	want := testSettings()

	frame, err := EncodeSettings(want)
	require.NoError(t, err)
	require.Len(t, frame, headerLen+settingsPayloadLen+checksumLen)
	assert.Equal(t, byte(KindSettings), frame[0])

	got, err := DecodeSettings(frame)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsRoundTripWithoutLighting(t *testing.T) {
	want := testSettings()
	want.Lighting = nil

	frame, err := EncodeSettings(want)
	require.NoError(t, err)

	got, err := DecodeSettings(frame)
	require.NoError(t, err)
	assert.Nil(t, got.Lighting)
	assert.Equal(t, want, got)
}

func TestSettingsEncodeDeterministic(t *testing.T) {
	s := testSettings()

	first, err := EncodeSettings(s)
	require.NoError(t, err)
	second, err := EncodeSettings(s)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Re-encoding a decoded frame reproduces it byte for byte.
	decoded, err := DecodeSettings(first)
	require.NoError(t, err)
	third, err := EncodeSettings(decoded)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestSettingsEncodeOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Settings)
	}{
		{"aquabus address", func(s *Settings) { s.System.AquaBusAddress = 99 }},
		{"current draw", func(s *Settings) { s.System.IncreasedCurrentDraw = ptr(CurrentDraw(2001)) }},
		{"water temp offset", func(s *Settings) { s.Sensor.WaterTempOffset = 1501 }},
		{"flow correction", func(s *Settings) { s.Sensor.FlowCorrection[0].Correction = 5001 }},
		{"correction flow", func(s *Settings) { s.Sensor.FlowCorrection[0].Flow = 3001 }},
		{"water quality max", func(s *Settings) { s.Sensor.WaterQualityMax = 2001 }},
		{"power damping", func(s *Settings) { s.Sensor.PowerDamping = 10001 }},
		{"startup delay", func(s *Settings) { s.Alarms.StartupDelay = 101 }},
		{"flow alarm limit", func(s *Settings) { s.Alarms.FlowAlarmLimit = ptr(Flow(3001)) }},
		{"next page interval", func(s *Settings) { s.Display.NextPageInterval = ptr(NextPageInterval(61)) }},
		{"chart interval", func(s *Settings) { s.Display.Charts[0].Interval = 0 }},
		{"effect speed", func(s *Settings) {
			s.Lighting.StripControllers[0].Effect.(*RainbowEffect).Speed = 101
		}},
		{"blink color count", func(s *Settings) {
			blink := s.Lighting.StripControllers[2].Effect.(*BlinkEffect)
			blink.Colors = make([]Color, 6)
		}},
		{"bar graph without ranges", func(s *Settings) {
			s.Lighting.StripControllers[1].Effect.(*BarGraphEffect).Ranges = nil
		}},
		{"too many strip controllers", func(s *Settings) {
			s.Lighting.StripControllers = make([]Controller, 7)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSettings()
			tt.mutate(s)

			_, err := EncodeSettings(s)
			assert.ErrorIs(t, err, ErrFieldOutOfRange)
		})
	}
}

// corruptSettingsFrame patches one payload byte and recomputes the
// checksum, so the decoder's field validation is what rejects the frame.
func corruptSettingsFrame(t *testing.T, frame []byte, payloadOff int, val byte) []byte {
	t.Helper()

	out := make([]byte, len(frame))
	copy(out, frame)
	payload := out[headerLen : len(out)-checksumLen]
	payload[payloadOff] = val
	crc := Checksum(payload)
	out[len(out)-2] = byte(crc >> 8)
	out[len(out)-1] = byte(crc)
	return out
}

func TestSettingsDecodeFieldValidation(t *testing.T) {
	frame, err := EncodeSettings(testSettings())
	require.NoError(t, err)

	tests := []struct {
		name string
		off  int
		val  byte
	}{
		{"temperature unit", 2, 0x05},
		{"aquabus address", 41, 0x00},
		{"medium", 46, 0x05},
		{"connector type", 47, 0x02},
		{"output signal", 677, 0x06},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSettings(corruptSettingsFrame(t, frame, tt.off, tt.val))
			assert.ErrorIs(t, err, ErrFieldOutOfRange)
		})
	}
}

func TestSettingsDecodeLengthMismatch(t *testing.T) {
	frame, err := EncodeSettings(testSettings())
	require.NoError(t, err)

	_, err = DecodeSettings(frame[:100])
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSettingsDecodeChecksumMismatch(t *testing.T) {
	frame, err := EncodeSettings(testSettings())
	require.NoError(t, err)

	frame[10] ^= 0x80
	_, err = DecodeSettings(frame)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func BenchmarkDecodeSettings(b *testing.B) {
	frame, err := EncodeSettings(testSettings())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeSettings(frame); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeSettings(b *testing.B) {
	s := testSettings()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := EncodeSettings(s); err != nil {
			b.Fatal(err)
		}
	}
}

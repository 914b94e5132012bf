package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSensorFrame builds a valid sensor values frame through the schema
// and lets the caller mutate the payload before the checksum is computed.
func buildSensorFrame(t *testing.T, mutate func(payload []byte)) []byte {
	t.Helper()

	payload := make([]byte, sensorPayloadLen)
	set := func(name string, v int64) {
		f, ok := sensorSchema.Field(name)
		require.True(t, ok, "field %s", name)
		require.NoError(t, f.Put(payload, v))
	}

	set("serial_major", 12345)
	set("serial_minor", 4711)
	set("firmware_version", 1032)
	set("status", int64(StatusStandby))
	set("flow", 2350)
	set("water_temp", 2350)
	set("external_temp", externalTempAbsent)
	set("conductivity", 1234)
	set("water_quality", 9950)
	set("power", 150)
	set("voltage_5v", 501)
	set("voltage_usb", 512)
	set("frequency", 823)
	set("volume", 123456)
	set("alarms", int64(AlarmStateFlow|AlarmStateWaterQuality))

	if mutate != nil {
		mutate(payload)
	}
	return buildFrame(KindSensorValues, payload)
}

func TestDecodeSensorValues(t *testing.T) {
	snap, err := DecodeSensorValues(buildSensorFrame(t, nil))
	require.NoError(t, err)

	assert.Equal(t, uint16(12345), snap.SerialMajor)
	assert.Equal(t, uint16(4711), snap.SerialMinor)
	assert.Equal(t, "12345-04711", snap.Serial())
	assert.Equal(t, uint16(1032), snap.FirmwareVersion)
	assert.True(t, snap.Status.Has(StatusStandby))
	assert.False(t, snap.Status.Has(StatusAlarmActive))

	assert.InDelta(t, 235.0, snap.Flow, 1e-9)
	assert.InDelta(t, 23.50, snap.WaterTemp, 1e-9)
	assert.Nil(t, snap.ExternalTemp)
	assert.InDelta(t, 123.4, snap.Conductivity, 1e-9)
	assert.InDelta(t, 99.50, snap.WaterQuality, 1e-9)
	assert.InDelta(t, 1.50, snap.Power, 1e-9)
	assert.InDelta(t, 5.01, snap.Voltage5V, 1e-9)
	assert.InDelta(t, 5.12, snap.VoltageUSB, 1e-9)
	assert.InDelta(t, 82.3, snap.Frequency, 1e-9)
	assert.InDelta(t, 12345.6, snap.Volume, 1e-9)

	assert.True(t, snap.Alarms.Has(AlarmStateFlow))
	assert.True(t, snap.Alarms.Has(AlarmStateWaterQuality))
	assert.False(t, snap.Alarms.Has(AlarmStateWaterTemp))
}

func TestDecodeSensorValuesExternalTemp(t *testing.T) {
	frame := buildSensorFrame(t, func(payload []byte) {
		f, _ := sensorSchema.Field("external_temp")
		require.NoError(t, f.Put(payload, -520))
	})

	snap, err := DecodeSensorValues(frame)
	require.NoError(t, err)
	require.NotNil(t, snap.ExternalTemp)
	assert.InDelta(t, -5.20, *snap.ExternalTemp, 1e-9)
}

func TestDecodeSensorValuesOutOfRange(t *testing.T) {
	frame := buildSensorFrame(t, func(payload []byte) {
		// 3001 in 1/10 l/h, one step above the valid flow range. The
		// checksum is recomputed afterwards, so only the range check can
		// reject the frame.
		payload[8] = 0x0B
		payload[9] = 0xB9
	})

	_, err := DecodeSensorValues(frame)
	assert.ErrorIs(t, err, ErrFieldOutOfRange)
}

func TestDecodeSensorValuesDeterministic(t *testing.T) {
	frame := buildSensorFrame(t, nil)

	a, err := DecodeSensorValues(frame)
	require.NoError(t, err)
	b, err := DecodeSensorValues(frame)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeSensorValuesKind(t *testing.T) {
	snap, err := DecodeSensorValues(buildSensorFrame(t, nil))
	require.NoError(t, err)
	assert.Equal(t, KindSensorValues, snap.Kind())
}

func TestSensorSchemaExposed(t *testing.T) {
	s := SensorSchema()
	assert.Equal(t, sensorPayloadLen, s.PayloadLen())

	f, ok := s.Field("water_temp")
	require.True(t, ok)
	assert.Equal(t, "°C", f.Unit)
	assert.True(t, f.Signed)
}

func BenchmarkDecodeSensorValues(b *testing.B) {
	payload := make([]byte, sensorPayloadLen)
	f, _ := sensorSchema.Field("flow")
	_ = f.Put(payload, 1234)
	f, _ = sensorSchema.Field("external_temp")
	_ = f.Put(payload, externalTempAbsent)
	frame := buildFrame(KindSensorValues, payload)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeSensorValues(frame); err != nil {
			b.Fatal(err)
		}
	}
}

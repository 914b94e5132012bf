package protocol

import (
	"fmt"
	"math"
)

// sensorPayloadLen is the payload size of the sensor values frame. The two
// bytes after the alarm word are reserved.
const sensorPayloadLen = 34

// externalTempAbsent is the raw value the device reports when no external
// temperature sensor is connected.
const externalTempAbsent = 0x7FFF

// sensorSchema describes the fixed layout of the sensor values payload.
// The decoder is driven entirely by this table; adding a field for a newer
// firmware revision means extending the table, not touching decode logic.
var sensorSchema = mustSchema(sensorPayloadLen,
	Field{Name: "serial_major", Offset: 0, Width: 2, Scale: Unity, Max: math.MaxUint16},
	Field{Name: "serial_minor", Offset: 2, Width: 2, Scale: Unity, Max: math.MaxUint16},
	Field{Name: "firmware_version", Offset: 4, Width: 2, Scale: Unity, Max: math.MaxUint16},
	Field{Name: "status", Offset: 6, Width: 1, Scale: Unity, Max: math.MaxUint8},
	Field{Name: "flow", Offset: 8, Width: 2, Scale: Scale{1, 10}, Unit: "l/h", Max: 3000},
	Field{Name: "water_temp", Offset: 10, Width: 2, Signed: true, Scale: Scale{1, 100}, Unit: "°C", Min: -1500, Max: 10000},
	Field{Name: "external_temp", Offset: 12, Width: 2, Signed: true, Scale: Scale{1, 100}, Unit: "°C", Min: -1500, Max: math.MaxInt16},
	Field{Name: "conductivity", Offset: 14, Width: 2, Scale: Scale{1, 10}, Unit: "µS/cm", Max: 20000},
	Field{Name: "water_quality", Offset: 16, Width: 2, Scale: Scale{1, 100}, Unit: "%", Max: 10000},
	Field{Name: "power", Offset: 18, Width: 2, Scale: Scale{1, 100}, Unit: "W", Max: math.MaxUint16},
	Field{Name: "voltage_5v", Offset: 20, Width: 2, Scale: Scale{1, 100}, Unit: "V", Max: 1000},
	Field{Name: "voltage_usb", Offset: 22, Width: 2, Scale: Scale{1, 100}, Unit: "V", Max: 1000},
	Field{Name: "frequency", Offset: 24, Width: 2, Scale: Scale{1, 10}, Unit: "Hz", Max: math.MaxUint16},
	Field{Name: "volume", Offset: 26, Width: 4, Scale: Scale{1, 10}, Unit: "l", Max: math.MaxUint32},
	Field{Name: "alarms", Offset: 30, Width: 2, Scale: Unity, Max: math.MaxUint16},
)

// SensorSchema returns the field table of the sensor values frame, for
// callers that want to inspect or extend the layout (annotated dumps,
// newer firmware revisions).
func SensorSchema() Schema {
	return sensorSchema
}

// SensorSnapshot is one decoded sensor values frame. Scaled fields hold the
// physical value; the raw wire integers are available through the schema.
type SensorSnapshot struct {
	// SerialMajor and SerialMinor are the two halves of the device serial
	// number.
	SerialMajor uint16
	SerialMinor uint16

	// FirmwareVersion is the firmware revision reported by the device.
	FirmwareVersion uint16

	// Status is the device status byte.
	Status StatusFlags

	// Flow is the measured flow in l/h.
	Flow float64

	// WaterTemp is the water temperature in °C.
	WaterTemp float64

	// ExternalTemp is the external sensor temperature in °C, nil when no
	// external sensor is connected.
	ExternalTemp *float64

	// Conductivity is the coolant conductivity in µS/cm.
	Conductivity float64

	// WaterQuality is the computed water quality in percent.
	WaterQuality float64

	// Power is the estimated dissipated power in W.
	Power float64

	// Voltage5V and VoltageUSB are the supply voltages in V.
	Voltage5V  float64
	VoltageUSB float64

	// Frequency is the raw impeller frequency in Hz.
	Frequency float64

	// Volume is the totalized volume counter in l.
	Volume float64

	// Alarms is the set of currently raised alarms.
	Alarms AlarmState
}

// Kind implements Frame.
func (s *SensorSnapshot) Kind() FrameKind {
	return KindSensorValues
}

// Serial returns the serial number in the display format used by the
// device, for example "12345-67890".
func (s *SensorSnapshot) Serial() string {
	return fmt.Sprintf("%d-%05d", s.SerialMajor, s.SerialMinor)
}

// DecodeSensorValues decodes a sensor values frame (kind 0x01) into an
// immutable snapshot. Every field is extracted through the sensor schema
// and validated against its declared range before the snapshot is built;
// a failed frame yields no partial snapshot.
func DecodeSensorValues(raw []byte) (*SensorSnapshot, error) {
	payload, err := framePayload(raw, KindSensorValues, sensorSchema.PayloadLen())
	if err != nil {
		return nil, err
	}

	vals := make(map[string]int64, len(sensorSchema.fields))
	for _, f := range sensorSchema.fields {
		v, err := f.Value(payload)
		if err != nil {
			return nil, err
		}
		vals[f.Name] = v
	}

	snap := &SensorSnapshot{
		SerialMajor:     uint16(vals["serial_major"]),
		SerialMinor:     uint16(vals["serial_minor"]),
		FirmwareVersion: uint16(vals["firmware_version"]),
		Status:          StatusFlags(vals["status"]),
		Flow:            Scale{1, 10}.Float(vals["flow"]),
		WaterTemp:       Scale{1, 100}.Float(vals["water_temp"]),
		Conductivity:    Scale{1, 10}.Float(vals["conductivity"]),
		WaterQuality:    Scale{1, 100}.Float(vals["water_quality"]),
		Power:           Scale{1, 100}.Float(vals["power"]),
		Voltage5V:       Scale{1, 100}.Float(vals["voltage_5v"]),
		VoltageUSB:      Scale{1, 100}.Float(vals["voltage_usb"]),
		Frequency:       Scale{1, 10}.Float(vals["frequency"]),
		Volume:          Scale{1, 10}.Float(vals["volume"]),
		Alarms:          AlarmState(vals["alarms"]),
	}
	if ext := vals["external_temp"]; ext != externalTempAbsent {
		if err := checkRange("external_temp", ext, -1500, 10000); err != nil {
			return nil, err
		}
		t := Scale{1, 100}.Float(ext)
		snap.ExternalTemp = &t
	}
	return snap, nil
}

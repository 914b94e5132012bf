// Package protocol implements the High Flow NEXT binary wire protocol.
//
// This package handles decoding, validation, and construction of the binary
// frames exchanged with an Aqua Computer High Flow NEXT flow sensor. It is a
// pure codec: callers hand it raw byte buffers obtained from a transport
// (USB HID reports, captured dumps, ...) and receive immutable typed
// snapshots back, or hand it typed values and receive ready-to-send frames.
// The package performs no I/O and keeps no state between calls.
//
// # Frame Format
//
// Every frame shares the same envelope:
//   - Frame kind: 1 byte discriminator (see FrameKind)
//   - Payload: fixed length per kind, or length-prefixed for string frames
//   - Checksum: CRC-16/USB over the payload, 2 bytes big-endian
//
// Multi-byte integers inside payloads are big-endian. Scaled fields carry
// fixed-point integers; the declared scale of each field converts them to
// physical units (for example water temperature is transferred in 1/100 °C).
//
// # Frame Kinds
//
// The protocol defines five frame kinds:
//   - Sensor values (0x01): live telemetry, device to host
//   - Settings (0x03): full device configuration, both directions
//   - Ambient color (0x07): ambient lighting colors, host to device
//   - Sound data (0x08): sound levels for sound-reactive effects, host to device
//   - Strings (0x0C): user-assigned device and sensor names, device to host
//
// # Usage Example - Decoding
//
//	snapshot, err := protocol.DecodeSensorValues(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("flow: %.1f l/h\n", snapshot.Flow)
//
// # Usage Example - Encoding
//
//	frame, err := protocol.EncodeSettings(settings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// hand frame to the transport layer
//
// # Error Handling
//
// All decode and encode failures are reported through a small set of
// sentinel errors (ErrTooShort, ErrUnknownFrameType, ErrLengthMismatch,
// ErrChecksumMismatch, ErrFieldOutOfRange) wrapped with field context, so
// callers can match them with errors.Is. A failed decode never returns a
// partial snapshot, and out-of-range values are never truncated on encode.
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use on independent
// buffers. The package never retains references to input buffers or to the
// snapshots it returns.
package protocol

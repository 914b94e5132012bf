package protocol

import "github.com/sigurn/crc16"

// The device protects every frame with CRC-16/USB (poly 0x8005 reflected,
// init 0xFFFF, xorout 0xFFFF) computed over the payload only. The frame-kind
// byte and the checksum trailer itself are excluded from the checksummed
// range.
var crcTable = crc16.MakeTable(crc16.CRC16_USB)

// Checksum computes the CRC-16/USB checksum over the given byte range.
func Checksum(data []byte) uint16 {
	return crc16.Checksum(data, crcTable)
}

// VerifyChecksum reports whether the CRC-16/USB checksum of the given byte
// range matches the expected value.
func VerifyChecksum(data []byte, expected uint16) bool {
	return Checksum(data) == expected
}

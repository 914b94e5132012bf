package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumKnownVector(t *testing.T) {
	// Standard check value of CRC-16/USB.
	assert.Equal(t, uint16(0xB4C8), Checksum([]byte("123456789")))
}

func TestChecksumEmpty(t *testing.T) {
	assert.Equal(t, Checksum(nil), Checksum([]byte{}))
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	crc := Checksum(data)

	assert.True(t, VerifyChecksum(data, crc))
	assert.False(t, VerifyChecksum(data, crc^0x0001))
}

func TestChecksumSingleBitSensitivity(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i * 7)
	}
	want := Checksum(data)

	for i := range data {
		for bit := 0; bit < 8; bit++ {
			data[i] ^= 1 << bit
			assert.NotEqual(t, want, Checksum(data), "flip byte %d bit %d", i, bit)
			data[i] ^= 1 << bit
		}
	}
}

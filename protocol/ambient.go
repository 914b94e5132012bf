package protocol

// Host-to-device frames. Ambient color frames stream colors into regions
// running the ambient effect; sound data frames feed the sound-reactive
// effects. Both are write-only: the device never sends them, so only
// encoders exist.

// maxAmbientLEDs is the number of addressable ambient LEDs.
const maxAmbientLEDs = 90

// EncodeAmbientColor builds an ambient color frame (kind 0x07) setting
// len(colors) LEDs starting at the given offset. The window must contain
// at least one LED and stay inside the addressable range.
func EncodeAmbientColor(offset uint8, colors []Color) ([]byte, error) {
	if len(colors) < 1 || len(colors) > maxAmbientLEDs {
		return nil, rangeError("ambient_colors", int64(len(colors)), 1, maxAmbientLEDs)
	}
	if int(offset)+len(colors) > maxAmbientLEDs {
		return nil, rangeError("ambient_offset", int64(offset), 0, int64(maxAmbientLEDs-len(colors)))
	}

	w := newWriter(2 + len(colors)*colorLen)
	w.u8(offset)
	w.u8(uint8(len(colors)))
	for _, c := range colors {
		encodeColor(w, c)
	}
	return buildFrame(KindAmbientColor, w.bytes()), nil
}

// soundPayloadLen is the payload size of the sound data frame.
const soundPayloadLen = 11

// soundBands is the number of frequency bands of the sound data frame.
const soundBands = 8

// SoundData is one sample of sound levels for the sound-reactive effects.
type SoundData struct {
	// LevelLeft and LevelRight are the channel levels in percent.
	LevelLeft  SoundLevel
	LevelRight SoundLevel

	// Bands are the levels of the eight frequency bands in percent.
	Bands [soundBands]SoundLevel

	// Beat marks a detected beat in this sample.
	Beat bool
}

// EncodeSoundData builds a sound data frame (kind 0x08). Levels above
// 100 % report ErrFieldOutOfRange.
func EncodeSoundData(d SoundData) ([]byte, error) {
	if err := d.LevelLeft.validate(); err != nil {
		return nil, err
	}
	if err := d.LevelRight.validate(); err != nil {
		return nil, err
	}
	for _, b := range d.Bands {
		if err := b.validate(); err != nil {
			return nil, err
		}
	}

	w := newWriter(soundPayloadLen)
	w.u8(uint8(d.LevelLeft))
	w.u8(uint8(d.LevelRight))
	for _, b := range d.Bands {
		w.u8(uint8(b))
	}
	if d.Beat {
		w.u8(1)
	} else {
		w.u8(0)
	}
	return buildFrame(KindSoundData, w.bytes()), nil
}

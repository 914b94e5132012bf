package protocol

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
)

// Scale is the rational factor that converts a raw wire integer into its
// physical value. A water temperature transferred in 1/100 °C has
// Scale{1, 100}.
type Scale struct {
	Num int64
	Den int64
}

// Unity is the identity scale for fields transferred in whole units.
var Unity = Scale{1, 1}

// Float converts a raw wire value to its physical value.
func (s Scale) Float(raw int64) float64 {
	return float64(raw) * float64(s.Num) / float64(s.Den)
}

// Raw converts a physical value back to its wire representation, rounding
// to the nearest raw step with ties away from zero.
func (s Scale) Raw(v float64) int64 {
	scaled := v * float64(s.Den) / float64(s.Num)
	if scaled < 0 {
		return -int64(math.Floor(-scaled + 0.5))
	}
	return int64(math.Floor(scaled + 0.5))
}

// Field describes a single value inside a fixed-layout payload: where it
// lives, how wide it is, how to interpret the bytes, and which raw values
// are valid. Field tables are data, not code, so layout changes between
// firmware revisions stay local to the table definitions.
type Field struct {
	Name   string
	Offset int
	Width  int // 1, 2 or 4 bytes
	Order  binary.ByteOrder
	Signed bool
	Scale  Scale
	Unit   string
	Min    int64 // inclusive, raw wire value
	Max    int64 // inclusive, raw wire value
}

// end returns the exclusive end offset of the field.
func (f Field) end() int {
	return f.Offset + f.Width
}

// order falls back to the protocol default when the descriptor leaves the
// byte order unset.
func (f Field) order() binary.ByteOrder {
	if f.Order != nil {
		return f.Order
	}
	return binary.BigEndian
}

// Raw extracts the raw wire integer without range validation. The payload
// must be at least f.Offset+f.Width bytes; the schema guarantees that for
// payloads it accepted.
func (f Field) Raw(payload []byte) int64 {
	b := payload[f.Offset:f.end()]
	var u uint64
	switch f.Width {
	case 1:
		u = uint64(b[0])
	case 2:
		u = uint64(f.order().Uint16(b))
	case 4:
		u = uint64(f.order().Uint32(b))
	}
	if !f.Signed {
		return int64(u)
	}
	switch f.Width {
	case 1:
		return int64(int8(u))
	case 2:
		return int64(int16(u))
	default:
		return int64(int32(u))
	}
}

// Value extracts the raw wire integer and validates it against the field's
// declared range.
func (f Field) Value(payload []byte) (int64, error) {
	raw := f.Raw(payload)
	if raw < f.Min || raw > f.Max {
		return 0, rangeError(f.Name, raw, f.Min, f.Max)
	}
	return raw, nil
}

// Physical extracts the field, validates the raw range, and applies the
// scale factor.
func (f Field) Physical(payload []byte) (float64, error) {
	raw, err := f.Value(payload)
	if err != nil {
		return 0, err
	}
	return f.Scale.Float(raw), nil
}

// Put writes a raw wire integer into the payload, rejecting values outside
// the field's declared range or outside what the field width can represent.
func (f Field) Put(payload []byte, raw int64) error {
	if raw < f.Min || raw > f.Max {
		return rangeError(f.Name, raw, f.Min, f.Max)
	}
	b := payload[f.Offset:f.end()]
	switch f.Width {
	case 1:
		b[0] = byte(raw)
	case 2:
		f.order().PutUint16(b, uint16(raw))
	case 4:
		f.order().PutUint32(b, uint32(raw))
	}
	return nil
}

// Schema is a validated, ordered set of field descriptors covering a
// fixed-length payload. A Schema is immutable after construction; Extend
// derives a new one.
type Schema struct {
	payloadLen int
	fields     []Field
}

// NewSchema validates the field table against the payload length and
// against itself: widths must be 1, 2 or 4, every field must lie inside the
// payload, no two fields may overlap, names must be unique, and Min may not
// exceed Max. Gaps between fields are allowed; they are reserved bytes.
func NewSchema(payloadLen int, fields ...Field) (Schema, error) {
	if payloadLen <= 0 {
		return Schema{}, fmt.Errorf("schema: invalid payload length %d", payloadLen)
	}
	sorted := make([]Field, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	seen := make(map[string]struct{}, len(sorted))
	for i, f := range sorted {
		if f.Name == "" {
			return Schema{}, fmt.Errorf("schema: field %d has no name", i)
		}
		if _, dup := seen[f.Name]; dup {
			return Schema{}, fmt.Errorf("schema: duplicate field %q", f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.Width != 1 && f.Width != 2 && f.Width != 4 {
			return Schema{}, fmt.Errorf("schema: field %q has invalid width %d", f.Name, f.Width)
		}
		if f.Offset < 0 || f.end() > payloadLen {
			return Schema{}, fmt.Errorf("schema: field %q [%d, %d) outside payload of %d bytes",
				f.Name, f.Offset, f.end(), payloadLen)
		}
		if f.Min > f.Max {
			return Schema{}, fmt.Errorf("schema: field %q has empty range [%d, %d]", f.Name, f.Min, f.Max)
		}
		if i > 0 && sorted[i-1].end() > f.Offset {
			return Schema{}, fmt.Errorf("schema: fields %q and %q overlap", sorted[i-1].Name, f.Name)
		}
	}
	return Schema{payloadLen: payloadLen, fields: sorted}, nil
}

// mustSchema wraps NewSchema for the package's own tables, which are fixed
// at compile time. An invalid table is a programming error.
func mustSchema(payloadLen int, fields ...Field) Schema {
	s, err := NewSchema(payloadLen, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// PayloadLen returns the payload length the schema covers.
func (s Schema) PayloadLen() int {
	return s.payloadLen
}

// Fields returns the descriptors in offset order. The returned slice is a
// copy; mutating it does not affect the schema.
func (s Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a descriptor by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Extend derives a new schema with a larger payload and additional fields,
// re-running full validation. Newer firmware revisions append fields after
// the existing layout; existing fields are never moved or removed, so a
// decoder built on the extended schema still reads old fields at their old
// offsets.
func (s Schema) Extend(payloadLen int, fields ...Field) (Schema, error) {
	if payloadLen < s.payloadLen {
		return Schema{}, fmt.Errorf("schema: extended payload %d shrinks existing %d bytes",
			payloadLen, s.payloadLen)
	}
	for _, f := range fields {
		if f.Offset < s.payloadLen {
			return Schema{}, fmt.Errorf("schema: extension field %q at offset %d overlaps existing layout",
				f.Name, f.Offset)
		}
	}
	all := make([]Field, 0, len(s.fields)+len(fields))
	all = append(all, s.fields...)
	all = append(all, fields...)
	return NewSchema(payloadLen, all...)
}

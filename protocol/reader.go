package protocol

import (
	"encoding/binary"
	"fmt"
)

// reader walks a fixed-length payload whose total size was verified before
// decoding starts. Every decoder consumes a statically known number of
// bytes, so running past the end is a bug in the layout tables, not an
// input error; the reader panics in that case instead of corrupting a
// snapshot.
type reader struct {
	buf []byte
	off int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) need(n int) []byte {
	if r.off+n > len(r.buf) {
		panic(fmt.Sprintf("protocol: payload cursor overrun at offset %d (+%d of %d)",
			r.off, n, len(r.buf)))
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *reader) u8() uint8 {
	return r.need(1)[0]
}

func (r *reader) u16() uint16 {
	return binary.BigEndian.Uint16(r.need(2))
}

func (r *reader) i16() int16 {
	return int16(r.u16())
}

func (r *reader) skip(n int) {
	r.need(n)
}

// writer fills a preallocated fixed-length payload. Like the reader it
// panics on overrun; encoders write exactly the layout the decoders read.
type writer struct {
	buf []byte
	off int
}

func newWriter(size int) *writer {
	return &writer{buf: make([]byte, size)}
}

func (w *writer) need(n int) []byte {
	if w.off+n > len(w.buf) {
		panic(fmt.Sprintf("protocol: payload cursor overrun at offset %d (+%d of %d)",
			w.off, n, len(w.buf)))
	}
	b := w.buf[w.off : w.off+n]
	w.off += n
	return b
}

func (w *writer) u8(v uint8) {
	w.need(1)[0] = v
}

func (w *writer) u16(v uint16) {
	binary.BigEndian.PutUint16(w.need(2), v)
}

func (w *writer) i16(v int16) {
	w.u16(uint16(v))
}

// skip leaves n reserved bytes as zero.
func (w *writer) skip(n int) {
	w.need(n)
}

func (w *writer) write(p []byte) {
	copy(w.need(len(p)), p)
}

// bytes returns the filled payload after asserting that the encoder
// consumed the full layout.
func (w *writer) bytes() []byte {
	if w.off != len(w.buf) {
		panic(fmt.Sprintf("protocol: payload not fully written (%d of %d bytes)",
			w.off, len(w.buf)))
	}
	return w.buf
}

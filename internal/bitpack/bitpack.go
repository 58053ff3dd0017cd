// Package bitpack implements bit-level packing of unsigned integer fields
// into byte sequences, for field widths that do not align with byte
// boundaries.
package bitpack

// ByteCount returns the number of bytes needed to hold the given number of
// bits.
func ByteCount(bitCount uint) int {
	return int((bitCount + 7) / 8)
}

// BitCount returns the number of bits held by the given number of bytes.
func BitCount(byteCount int) uint {
	return 8 * uint(byteCount)
}

// Appender is a growable accumulator of fixed-width unsigned integer fields.
//
// Fields are appended MSB-first: the most significant bit of each field
// occupies the lowest bit offset, and fields are laid out back to back with
// no padding between them. Unwritten bits of the last byte are zero, which
// makes Bytes directly usable as a zero-padded bitstream.
//
// The zero value is an empty accumulator ready for use.
type Appender struct {
	buf  []byte
	bits uint
}

// Append appends the low width bits of v to the accumulator. Bits of v above
// width are ignored; callers that need range enforcement must validate before
// appending. The width must be in [1,64].
func (a *Appender) Append(v uint64, width uint) {
	if width == 0 || width > 64 {
		panic("bitpack: append of field with invalid bit width")
	}
	if width < 64 {
		v &= (1 << width) - 1
	}
	for width > 0 {
		free := 8 - a.bits%8
		if free == 8 {
			a.buf = append(a.buf, 0)
		}
		n := free
		if width < n {
			n = width
		}
		// Take the top n bits of the remaining value and place them in the
		// top n free bits of the current byte.
		chunk := byte(v >> (width - n))
		a.buf[len(a.buf)-1] |= chunk << (free - n)
		a.bits += n
		width -= n
	}
}

// BitLen returns the number of bits appended so far.
func (a *Appender) BitLen() uint { return a.bits }

// Len returns the length in bytes of the accumulated output.
func (a *Appender) Len() int { return len(a.buf) }

// Bytes returns the accumulated bytes. If BitLen is not a multiple of 8 the
// trailing (least significant) bits of the last byte are zero. The returned
// slice aliases the accumulator and is only valid until the next Append or
// Reset.
func (a *Appender) Bytes() []byte { return a.buf }

// Reset restores the accumulator to its empty state, retaining the underlying
// buffer for reuse.
func (a *Appender) Reset() {
	a.buf = a.buf[:0]
	a.bits = 0
}

// Uint reads a width-bit unsigned integer stored MSB-first at the given bit
// offset in buf. It is the inverse of Appender.Append and panics if the field
// extends past the end of buf.
func Uint(buf []byte, bitOffset, width uint) uint64 {
	if width == 0 || width > 64 {
		panic("bitpack: read of field with invalid bit width")
	}
	if bitOffset+width > BitCount(len(buf)) {
		panic("bitpack: read past the end of the buffer")
	}
	v := uint64(0)
	for width > 0 {
		avail := 8 - bitOffset%8
		n := avail
		if width < n {
			n = width
		}
		chunk := buf[bitOffset/8] >> (avail - n) & (1<<n - 1)
		v = v<<n | uint64(chunk)
		bitOffset += n
		width -= n
	}
	return v
}

package randsrc

import (
	crand "crypto/rand"
)

// deviceBlock is how many bytes one OS read fetches. Serving symbols from a
// block keeps the syscall count low.
const deviceBlock = 256

// Device serves fixed-width symbols from the operating system entropy pool
// (crypto/rand). Symbols are uniform over [0, 2^width - 1].
//
// A failed OS read panics: the process has no entropy source to fall back
// on, and returning a non-random value would silently poison every
// downstream conversion.
type Device struct {
	width int
	block [deviceBlock]byte
	rd    *BitReader
}

// NewDevice returns a Device producing width-bit symbols. width must be in
// 1..64; anything else panics, as it is a programming error at the call site.
func NewDevice(width int) *Device {
	checkWidth(width)
	return &Device{width: width}
}

func (d *Device) Next() uint64 {
	if d.rd == nil || d.rd.Remaining() < d.width {
		if _, err := crand.Read(d.block[:]); err != nil {
			panic("randsrc: OS entropy source failed: " + err.Error())
		}
		d.rd = NewBitReader(d.block[:])
	}
	return d.rd.ReadBits(d.width)
}

func (d *Device) Bounds() (uint64, uint64) {
	return 0, widthMax(d.width)
}

func checkWidth(width int) {
	if width < 1 || width > 64 {
		panic("randsrc: symbol width must be between 1 and 64 bits")
	}
}

// widthMax is the largest width-bit value.
func widthMax(width int) uint64 {
	if width == 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

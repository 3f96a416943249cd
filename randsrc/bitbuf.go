// Package randsrc provides entropy source implementations for the converter:
// the OS entropy pool, a deterministic seeded stream, and stub/instrumented
// sources for fixtures and measurement.
package randsrc

// BitReader draws symbols of arbitrary bit width out of a byte block,
// least-significant bit first. The block sources below fetch randomness in
// bulk (one OS read, one cipher block) and then serve many narrow symbols
// from it through a BitReader, so the expensive fetch is amortized.
//
// It performs no bounds checking: reading past the end panics via the slice
// index. Callers refill before the block runs dry.
type BitReader struct {
	bytes      []byte
	byteOffset int // index of the current byte
	bitOffset  int // 0-7: index of the next unread bit in the current byte
}

// NewBitReader returns a reader positioned at the first bit of b.
func NewBitReader(b []byte) *BitReader {
	return &BitReader{bytes: b}
}

// Remaining reports how many unread bits are left in the block.
func (r *BitReader) Remaining() int {
	return (len(r.bytes)-r.byteOffset)*8 - r.bitOffset
}

// ReadBits consumes the next bits (0..64) and returns them as an integer,
// low bit first.
func (r *BitReader) ReadBits(bits int) uint64 {
	if bits == 0 {
		return 0
	}

	free := 8 - r.bitOffset

	// All requested bits live inside the current byte.
	if bits <= free {
		mask := uint64(0xff) >> (8 - (r.bitOffset + bits))
		v := (uint64(r.bytes[r.byteOffset]) & mask) >> r.bitOffset
		if bits == free {
			r.bitOffset = 0
			r.byteOffset++
		} else {
			r.bitOffset += bits
		}
		return v
	}

	// The read spans bytes: take what is left here, then recurse for the
	// rest and splice it in above the bits just taken.
	v := uint64(r.bytes[r.byteOffset]) >> r.bitOffset
	r.bitOffset = 0
	r.byteOffset++
	return v | r.ReadBits(bits-free)<<free
}

package randsrc

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refBit extracts bit i of the stream the reference way: LSB-first within
// each byte.
func refBit(bytes []byte, i int) uint64 {
	return uint64(bytes[i/8]>>(i%8)) & 1
}

// refRead reassembles bits [start, start+count) the reference way.
func refRead(bytes []byte, start, count int) uint64 {
	var v uint64
	for i := 0; i < count; i++ {
		v |= refBit(bytes, start+i) << i
	}
	return v
}

func TestBitReaderKnownPatterns(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		reads []int
		want  []uint64
	}{
		{
			name:  "single bits",
			bytes: []byte{0b10110010},
			reads: []int{1, 1, 1, 1, 1, 1, 1, 1},
			want:  []uint64{0, 1, 0, 0, 1, 1, 0, 1},
		},
		{
			name:  "aligned bytes",
			bytes: []byte{0xAA, 0x55},
			reads: []int{8, 8},
			want:  []uint64{0xAA, 0x55},
		},
		{
			name:  "crossing a byte boundary",
			bytes: []byte{0xFF, 0x01},
			reads: []int{4, 8, 4},
			want:  []uint64{0xF, 0x1F, 0x0},
		},
		{
			name:  "full width",
			bytes: []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88},
			reads: []int{64},
			want:  []uint64{0x8877665544332211},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewBitReader(tc.bytes)
			for i, bits := range tc.reads {
				assert.EqualValues(t, tc.want[i], r.ReadBits(bits), "read #%d", i)
			}
			assert.Zero(t, r.Remaining())
		})
	}
}

func TestBitReaderRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(0))

	for round := 0; round < 50; round++ {
		t.Run(fmt.Sprintf("case#%d", round), func(t *testing.T) {
			block := make([]byte, 64)
			_, err := rng.Read(block)
			require.NoError(t, err)

			r := NewBitReader(block)
			pos := 0
			for r.Remaining() > 0 {
				bits := 1 + rng.Intn(17)
				if bits > r.Remaining() {
					bits = r.Remaining()
				}
				require.EqualValues(t, refRead(block, pos, bits), r.ReadBits(bits))
				pos += bits
				require.Equal(t, len(block)*8-pos, r.Remaining())
			}
		})
	}
}

func TestBitReaderZeroRead(t *testing.T) {
	r := NewBitReader([]byte{0xFF})
	assert.EqualValues(t, 0, r.ReadBits(0))
	assert.Equal(t, 8, r.Remaining())
}

func TestBitReaderPastEndPanics(t *testing.T) {
	r := NewBitReader([]byte{0xFF})
	r.ReadBits(8)
	assert.Panics(t, func() { r.ReadBits(1) })
}

func BenchmarkBitReader(b *testing.B) {
	for _, bits := range []int{1, 8, 16, 32} {
		b.Run(fmt.Sprintf("%d bits", bits), func(b *testing.B) {
			block := make([]byte, 4096)
			r := NewBitReader(block)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if r.Remaining() < bits {
					r = NewBitReader(block)
				}
				_ = r.ReadBits(bits)
			}
		})
	}
}

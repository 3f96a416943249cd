package randsrc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChaChaDeterminism(t *testing.T) {
	var seed [32]byte
	seed[3] = 0x7F

	a := NewChaCha(seed, 16)
	b := NewChaCha(seed, 16)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next(), "same seed must yield the same stream")
	}

	var other [32]byte
	other[3] = 0x80
	c := NewChaCha(other, 16)
	d := NewChaCha(seed, 16)
	differs := false
	for i := 0; i < 64; i++ {
		if c.Next() != d.Next() {
			differs = true
			break
		}
	}
	assert.True(t, differs, "different seeds must yield different streams")
}

func TestChaChaBounds(t *testing.T) {
	var seed [32]byte

	for _, width := range []int{1, 7, 16, 32, 64} {
		t.Run(fmt.Sprintf("width=%d", width), func(t *testing.T) {
			s := NewChaCha(seed, width)
			lo, hi := s.Bounds()
			assert.EqualValues(t, 0, lo)
			assert.Equal(t, widthMax(width), hi)

			// Draw across several refills and keep every symbol in bounds.
			for i := 0; i < 2000; i++ {
				v := s.Next()
				require.LessOrEqual(t, v, hi)
			}
		})
	}
}

func TestDevice(t *testing.T) {
	d := NewDevice(12)
	lo, hi := d.Bounds()
	assert.EqualValues(t, 0, lo)
	assert.EqualValues(t, 0xFFF, hi)

	for i := 0; i < 5000; i++ {
		require.LessOrEqual(t, d.Next(), hi)
	}
}

func TestWidthValidation(t *testing.T) {
	assert.Panics(t, func() { NewDevice(0) })
	assert.Panics(t, func() { NewDevice(65) })
	assert.Panics(t, func() { NewChaCha([32]byte{}, -1) })
}

func TestWidthMax(t *testing.T) {
	assert.EqualValues(t, 1, widthMax(1))
	assert.EqualValues(t, 0xFFFF, widthMax(16))
	assert.EqualValues(t, uint64(0xFFFFFFFFFFFFFFFF), widthMax(64))
}

func TestCycle(t *testing.T) {
	c := NewCycle(1, 6, []uint64{4, 2, 6})
	lo, hi := c.Bounds()
	assert.EqualValues(t, 1, lo)
	assert.EqualValues(t, 6, hi)

	got := make([]uint64, 7)
	for i := range got {
		got[i] = c.Next()
	}
	assert.Equal(t, []uint64{4, 2, 6, 4, 2, 6, 4}, got, "sequence must wrap")

	assert.Panics(t, func() { NewCycle(0, 1, nil) })
}

func TestCounting(t *testing.T) {
	counted := NewCounting(NewCycle(0, 0xFF, []uint64{1, 2, 3}))

	lo, hi := counted.Bounds()
	assert.EqualValues(t, 0, lo)
	assert.EqualValues(t, 0xFF, hi)

	for i := 0; i < 10; i++ {
		counted.Next()
	}
	assert.EqualValues(t, 10, counted.Calls())
	assert.InDelta(t, 80.0, counted.BitsFetched(), 1e-9, "10 fetches of 8-bit symbols")
}

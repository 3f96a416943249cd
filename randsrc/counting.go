package randsrc

import (
	"math"

	"github.com/calum74/econv/entropy"
)

// Counting wraps a Source and counts the symbols drawn through it, so the
// entropy actually consumed by a conversion can be measured. It forwards
// Bounds unchanged and is otherwise transparent.
type Counting struct {
	src   entropy.Source
	calls uint64
}

// NewCounting returns a counting wrapper around src.
func NewCounting(src entropy.Source) *Counting {
	return &Counting{src: src}
}

func (c *Counting) Next() uint64 {
	c.calls++
	return c.src.Next()
}

func (c *Counting) Bounds() (uint64, uint64) {
	return c.src.Bounds()
}

// Calls reports how many symbols have been fetched.
func (c *Counting) Calls() uint64 {
	return c.calls
}

// BitsFetched reports the entropy fetched so far in bits:
// calls * log2(interval size).
func (c *Counting) BitsFetched() float64 {
	lo, hi := c.src.Bounds()
	size := float64(hi) - float64(lo) + 1
	return float64(c.calls) * math.Log2(size)
}

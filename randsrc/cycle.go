package randsrc

// Cycle replays a fixed symbol sequence, wrapping at the end. It exists for
// regression fixtures: a converter fed from a Cycle produces an exact,
// re-derivable output sequence. It is obviously not a uniform source, so any
// statistical property of the output is meaningless.
type Cycle struct {
	min, max uint64
	symbols  []uint64
	next     int
}

// NewCycle returns a Cycle with declared bounds [min, max] replaying
// symbols in order. It panics on an empty sequence.
func NewCycle(min, max uint64, symbols []uint64) *Cycle {
	if len(symbols) == 0 {
		panic("randsrc: cycle needs at least one symbol")
	}
	return &Cycle{min: min, max: max, symbols: symbols}
}

func (c *Cycle) Next() uint64 {
	s := c.symbols[c.next]
	c.next = (c.next + 1) % len(c.symbols)
	return s
}

func (c *Cycle) Bounds() (uint64, uint64) {
	return c.min, c.max
}

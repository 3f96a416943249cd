package entropy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calum74/econv/entropy"
)

func TestRoller(t *testing.T) {
	src := &lcgSource{state: 21}
	c := entropy.New[uint64]()
	roll := c.Roller(src)

	for n := int64(1); n <= 20; n++ {
		for i := 0; i < 50; i++ {
			r := roll(n)
			assert.GreaterOrEqual(t, r, int64(0))
			assert.Less(t, r, n)
		}
	}

	assert.Panics(t, func() { roll(0) }, "an empty range is a caller bug with no error slot to report it in")
}

func TestUniformDistributionShape(t *testing.T) {
	src := &lcgSource{state: 8}
	c := entropy.New[uint64]()
	d6 := c.Uniform(1, 6, src)

	seen := make(map[int64]bool)
	for i := 0; i < 500; i++ {
		r := d6()
		require.GreaterOrEqual(t, r, int64(1))
		require.LessOrEqual(t, r, int64(6))
		seen[r] = true
	}
	assert.Len(t, seen, 6, "every face should show up over 500 rolls")
}

func TestShuffleIsAPermutation(t *testing.T) {
	src := &lcgSource{state: 33}
	c := entropy.New[uint64]()

	deck := make([]int, 52)
	for i := range deck {
		deck[i] = i
	}
	require.NoError(t, entropy.Shuffle(c, src, deck))

	seen := make([]bool, len(deck))
	for _, card := range deck {
		require.False(t, seen[card], "card %d dealt twice", card)
		seen[card] = true
	}
}

func TestShuffleTrivialDecks(t *testing.T) {
	src := newStub(0, 0xFFFF, 1)
	c := entropy.New[uint64]()

	require.NoError(t, entropy.Shuffle(c, src, []int{}))
	require.NoError(t, entropy.Shuffle(c, src, []int{7}))
	assert.Zero(t, src.calls, "decks of size <= 1 need no entropy")
}

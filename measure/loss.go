// Package measure quantifies the entropy cost of conversions: theoretical
// loss bounds per draw, measured consumption over real runs, and a
// goodness-of-fit check of the output distribution. The converter never uses
// any of this; it exists for instrumentation and tests.
package measure

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/calum74/econv/entropy"
)

// AccumulatorMax is the largest value the accumulator of width T can hold,
// which is the buffering ceiling the loss bounds depend on.
func AccumulatorMax[T constraints.Unsigned]() float64 {
	var zero T
	return float64(zero - 1)
}

// MaxEntropyLoss bounds the average entropy lost converting symbols of size
// in into outputs of size out with buffering ceiling limit. Individual draws
// can lose more; the average cannot.
func MaxEntropyLoss(out, in, limit float64) float64 {
	p := out * in / limit
	q := 1.0 - p
	return (-p*math.Log2(p) - q*math.Log2(q)) / q
}

// ExpectedEntropyLoss is a slightly tighter estimate of the average loss,
// assuming requested targets are themselves roughly random.
func ExpectedEntropyLoss(out, in, limit float64) float64 {
	p := (out - 2) * in / (3.0 * limit)
	q := 1.0 - p
	return (-p*math.Log2(p) - q*math.Log2(q)) / q
}

// MinEfficiency is the worst-case fraction of fetched entropy that ends up
// in the output when producing values of size out from a base-2 source.
func MinEfficiency(out, limit float64) float64 {
	return math.Log2(out) / (MaxEntropyLoss(out, 2, limit) + math.Log2(out))
}

// ShuffleOutputEntropy is the information content of one uniform permutation
// of a deck of size n: log2(n!).
func ShuffleOutputEntropy(n int) float64 {
	e := 0.0
	for i := 2; i <= n; i++ {
		e += math.Log2(float64(i))
	}
	return e
}

// MaxShuffleLoss bounds the average entropy lost per shuffle of a deck of
// size n: the sum of the per-draw bounds for targets 2..n.
func MaxShuffleLoss(n int, limit float64) float64 {
	loss := 0.0
	for i := 2; i <= n; i++ {
		loss += MaxEntropyLoss(float64(i), 2, limit)
	}
	return loss
}

// ShuffleEfficiency is a loose lower bound on the fraction of fetched
// entropy a shuffle of a deck of size n turns into permutation.
func ShuffleEfficiency(n int, limit float64) float64 {
	se := ShuffleOutputEntropy(n)
	return se / (se + MaxShuffleLoss(n, limit))
}

// BufferedEntropy reports the entropy currently held inside c, in bits.
func BufferedEntropy[T constraints.Unsigned](c *entropy.Converter[T]) float64 {
	return math.Log2(c.BufferedRange())
}

package entropy

// This package implements an entropy converter: it reads uniform random
// integers from a source distribution of one size and turns them into uniform
// random integers of a different, caller-chosen size, throwing away as little
// of the source's randomness as possible.
//
// Use case:
// - The source is expensive (a hardware device, the OS entropy pool) and the
//   caller needs values in arbitrary ranges: die rolls, shuffles, re-basing
//   digit streams.
// - Naive approaches (modulo, float scaling, simple rejection) discard a
//   large fraction of the fetched bits. The converter's conversion ratio is
//   very nearly 1.
//
// The converter preserves uniformity and entropy efficiency. It does NOT add
// unpredictability: an adversary who knows the source's internal state knows
// the output.

import (
	"golang.org/x/exp/constraints"
)

// rejectCeiling bounds the recycle loop purely as a safety valve against a
// source that is nowhere near uniform. Each pass is taken with probability
// below srcRange/span, so a sane source makes reaching the ceiling
// astronomically unlikely. Hitting it is a fatal contract breach; it never
// alters the output distribution of a successful call.
const rejectCeiling = 1 << 20

type (
	// Converter accumulates entropy and converts it between uniform integer
	// distributions. T fixes the accumulator width; wider T buffers more
	// entropy per call and wastes less of it.
	//
	// The pair (value, span) encodes an integer uniformly distributed over
	// [0, span); log2(span) is the number of buffered bits. The pair
	// (buf, bufMax) additionally caches unconsumed raw bits from the most
	// recent fetch when the source interval is a power of two.
	//
	// A Converter must not be copied after first use: a copy would duplicate
	// the stored entropy, and two owners of the same bits observe correlated
	// "random" outputs. Transfer ownership with TakeFrom instead. A Converter
	// is not safe for concurrent use; it has exactly one logical owner.
	//
	// The zero value is a valid empty converter.
	Converter[T constraints.Unsigned] struct {
		noCopy noCopy

		value T // uniform over [0, span)
		span  T // 1 <= span <= max of T; span 0 is normalized to 1 on use

		buf    uint64 // unconsumed bits of the last power-of-two fetch
		bufMax uint64 // 2^k - 1 where k bits remain readable from buf
	}

	// noCopy triggers go vet's copylocks check on value copies.
	noCopy struct{}
)

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New returns an empty Converter holding zero entropy.
func New[T constraints.Unsigned]() *Converter[T] {
	return &Converter[T]{span: 1}
}

// maxOf is the largest value representable in T.
func maxOf[T constraints.Unsigned]() T {
	var zero T
	return zero - 1
}

// Reset discards all stored entropy, returning the converter to the empty
// state.
func (c *Converter[T]) Reset() {
	c.value = 0
	c.span = 1
	c.buf = 0
	c.bufMax = 0
}

// TakeFrom moves the entropy stored in other into c, leaving other empty.
// This is the ownership-transfer operation: the stored bits end up with
// exactly one owner, never two.
func (c *Converter[T]) TakeFrom(other *Converter[T]) {
	if other == c {
		return
	}
	c.value = other.value
	c.span = other.span
	c.buf = other.buf
	c.bufMax = other.bufMax
	if c.span == 0 {
		c.span = 1
	}
	other.Reset()
}

// BufferedRange reports the stored entropy as a range size: the number of
// equally likely internal states the converter currently distinguishes.
// Its base-2 logarithm is the buffered entropy in bits. An empty converter
// reports 1. The value is for instrumentation; the algorithm never reads it.
func (c *Converter[T]) BufferedRange() float64 {
	span := c.span
	if span == 0 {
		span = 1
	}
	return float64(span)*float64(c.bufMax) + float64(span)
}

// Convert reads entropy from src and returns a uniform integer in
// [0, target). target must be positive.
func (c *Converter[T]) Convert(target int64, src Source) (int64, error) {
	if target <= 0 {
		return 0, ErrInvalidRange
	}
	return c.ConvertRange(0, target-1, src)
}

// ConvertRange reads entropy from src and returns a uniform integer in
// [outMin, outMax], using the source's own declared bounds as the input
// interval.
func (c *Converter[T]) ConvertRange(outMin, outMax int64, src Source) (int64, error) {
	inMin, inMax := src.Bounds()
	return c.ConvertBetween(outMin, outMax, inMin, inMax, src)
}

// ConvertBetween reads entropy from src, whose symbols lie in [inMin, inMax],
// and returns a uniform integer in [outMin, outMax]. This is the canonical
// entry point; the accumulator buffers as much entropy as its width allows.
func (c *Converter[T]) ConvertBetween(outMin, outMax int64, inMin, inMax uint64, src Source) (int64, error) {
	return c.convert(outMin, outMax, inMin, inMax, maxOf[T](), src)
}

// ConvertLimited is ConvertBetween with an explicit ceiling on the amount of
// entropy the accumulator may buffer. Normally the algorithm buffers as much
// as possible; a lower limit trades efficiency for a smaller stored state.
func (c *Converter[T]) ConvertLimited(outMin, outMax int64, inMin, inMax uint64, limit T, src Source) (int64, error) {
	return c.convert(outMin, outMax, inMin, inMax, limit, src)
}

// convert validates the request and routes it to the engine, either through
// the power-of-two bit buffer or with whole symbols.
func (c *Converter[T]) convert(outMin, outMax int64, inMin, inMax uint64, limit T, src Source) (int64, error) {
	// A zero-width output needs no randomness at all.
	if outMin == outMax {
		return outMax, nil
	}
	if outMin > outMax {
		return 0, ErrInvalidRange
	}
	if inMin >= inMax {
		return 0, ErrInvalidRange
	}

	// Interval sizes in two's-complement uint64 arithmetic, so the full
	// signed span (negative outMin, positive outMax) is handled.
	outSpan := uint64(outMax) - uint64(outMin)
	if outSpan >= uint64(maxOf[T]()) {
		// target = outSpan+1 would not fit in the accumulator.
		return 0, ErrRangeTooLarge
	}
	target := T(outSpan + 1)
	inRange := inMax - inMin

	var (
		r   T
		err error
	)
	if inRange&(inRange+1) == 0 {
		// The source interval size is a power of two (inRange+1 may wrap to 0
		// for the full 2^64 interval; the mask test covers that too). Feed
		// the engine single bits through the buffer instead of materializing
		// inRange+1 as a multiplier, so one fetch of k bits serves k draws.
		// buf is as wide as any symbol a Source can emit, so no capacity
		// check is needed before caching a fetch.
		r, err = c.fromSource(target, 2, limit, func() (T, error) {
			if c.bufMax == 0 {
				g := src.Next()
				if g < inMin || g > inMax {
					return 0, ErrSourceOutOfRange
				}
				c.buf = g - inMin
				c.bufMax = inRange
			}
			bit := T(c.buf & 1)
			// bufMax stays of the form 2^k - 1: it gates "is there another
			// bit?" and counts the remaining bits with a single mask.
			c.buf >>= 1
			c.bufMax >>= 1
			return bit, nil
		})
	} else {
		// Generic path: symbols are consumed whole, so the full interval size
		// must fit in the accumulator type.
		if inRange >= uint64(maxOf[T]()) {
			return 0, ErrRangeTooLarge
		}
		srcRange := T(inRange + 1)
		r, err = c.fromSource(target, srcRange, limit, func() (T, error) {
			g := src.Next()
			if g < inMin || g > inMax {
				return 0, ErrSourceOutOfRange
			}
			return T(g - inMin), nil
		})
	}
	if err != nil {
		return 0, err
	}
	// int64(r) may wrap for huge unsigned spans; the two's-complement sum
	// still lands in [outMin, outMax].
	return outMin + int64(uint64(r)), nil
}

// fromSource is the base-conversion engine. fetch yields symbols uniform over
// [0, srcRange); the result is uniform over [0, target). Any entropy left
// over after extraction stays in the accumulator for the next call.
func (c *Converter[T]) fromSource(target, srcRange, limit T, fetch func() (T, error)) (T, error) {
	// Folding one more symbol must never overflow: span stays below
	// limit/srcRange before each fold, so span*srcRange <= limit, and
	// extraction needs target <= span.
	if target > limit/srcRange {
		return 0, ErrRangeTooLarge
	}
	if c.span == 0 {
		c.span = 1
	}

	for pass := 0; ; pass++ {
		if pass == rejectCeiling {
			panic("entropy: recycle loop exceeded its safety ceiling; the source is not producing uniform symbols")
		}

		// Fold in as much input as fits under the ceiling before trying to
		// extract. Buffering maximally up front is counterintuitive but is
		// what pushes the conversion ratio toward 1: digit-by-digit
		// accumulation in base srcRange.
		for c.span < limit/srcRange {
			s, err := fetch()
			if err != nil {
				return 0, err
			}
			if s >= srcRange {
				return 0, ErrSourceOutOfRange
			}
			c.value = c.value*srcRange + s
			c.span *= srcRange
		}

		// fair is the largest multiple of target not exceeding span: the
		// prefix of [0, span) that partitions into equal blocks of target.
		fair := c.span - c.span%target

		if c.value < fair {
			// value landed in the fair region. Emit value mod target and
			// keep the quotient as leftover entropy for the next call.
			r := c.value % target
			c.value /= target
			c.span = fair / target
			if c.value >= c.span {
				panic("entropy: internal invariant broken: value escaped [0, span)")
			}
			return r, nil
		}

		// value landed in the tail that cannot be evenly partitioned.
		// Subtract the fair region from both value and span: the remaining
		// entropy is recycled, not discarded, and the loop goes back to
		// refilling. Termination is probabilistic (geometric tail), not
		// deterministic; that is intrinsic to the algorithm, not a defect.
		c.value -= fair
		c.span -= fair
	}
}

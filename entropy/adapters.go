package entropy

// Adapters exposing the converter in the callable shapes generic algorithms
// expect. Both shapes leave no room for an error return, so range errors
// surface as panics; with a positive n and a sane source the only reachable
// failure is a source contract violation.

import "golang.org/x/exp/constraints"

// Roller binds the converter to a source and returns the single-argument
// shape shuffle and permutation algorithms consume: given n, a uniform
// integer in [0, n).
func (c *Converter[T]) Roller(src Source) func(n int64) int64 {
	return func(n int64) int64 {
		r, err := c.Convert(n, src)
		if err != nil {
			panic(err)
		}
		return r
	}
}

// Uniform binds the converter, a fixed interval [a, b] and a source into a
// zero-argument callable producing a uniform integer in [a, b] per call: a
// reusable distribution object.
func (c *Converter[T]) Uniform(a, b int64, src Source) func() int64 {
	return func() int64 {
		r, err := c.ConvertRange(a, b, src)
		if err != nil {
			panic(err)
		}
		return r
	}
}

// Shuffle permutes s uniformly at random (Fisher-Yates), drawing its
// randomness through the converter so the entropy cost stays near the
// information-theoretic minimum of log2(len(s)!) bits.
func Shuffle[T constraints.Unsigned, E any](c *Converter[T], src Source, s []E) error {
	for i := len(s) - 1; i > 0; i-- {
		j, err := c.Convert(int64(i)+1, src)
		if err != nil {
			return err
		}
		s[i], s[j] = s[j], s[i]
	}
	return nil
}

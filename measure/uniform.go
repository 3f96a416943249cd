package measure

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/calum74/econv/entropy"
)

// UniformityReport summarizes a goodness-of-fit check of converter output
// against the uniform distribution on [0, target).
type UniformityReport struct {
	Target  int64
	Samples int
	Counts  []uint64

	// ChiSquare is Pearson's statistic over the per-value counts; PValue is
	// the probability of a statistic at least this extreme under true
	// uniformity (chi-squared with target-1 degrees of freedom).
	ChiSquare float64
	PValue    float64

	// MaxDeviation is the largest relative deviation of any count from the
	// expected samples/target.
	MaxDeviation float64
}

// CheckUniform draws samples values in [0, target) through a fresh converter
// of width T and checks the empirical distribution for uniformity.
func CheckUniform[T constraints.Unsigned](src entropy.Source, target int64, samples int) (UniformityReport, error) {
	counts := make([]uint64, target)
	conv := entropy.New[T]()

	for i := 0; i < samples; i++ {
		r, err := conv.Convert(target, src)
		if err != nil {
			return UniformityReport{}, err
		}
		counts[r]++
	}

	report := UniformityReport{
		Target:  target,
		Samples: samples,
		Counts:  counts,
		PValue:  1,
	}

	// With a single bucket there is nothing to test.
	if target < 2 {
		return report, nil
	}

	expected := float64(samples) / float64(target)
	for _, c := range counts {
		diff := float64(c) - expected
		report.ChiSquare += diff * diff / expected
		if dev := math.Abs(diff) / expected; dev > report.MaxDeviation {
			report.MaxDeviation = dev
		}
	}
	report.PValue = distuv.ChiSquared{K: float64(target - 1)}.Survival(report.ChiSquare)

	return report, nil
}

package measure

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/calum74/econv/entropy"
	"github.com/calum74/econv/randsrc"
)

// ConversionReport summarizes the entropy cost of repeatedly drawing uniform
// values of one size through a converter.
type ConversionReport struct {
	Target  int64
	Samples int

	InputBits  float64 // fetched from the source, minus what is still buffered
	OutputBits float64 // information content of the emitted values

	LossPerDraw  float64 // measured average loss per conversion
	BoundPerDraw float64 // theoretical upper bound on the average loss
}

// Conversion draws samples values in [0, target) from src through a fresh
// converter of width T and reports the measured entropy cost against the
// theoretical bound. The bound assumes the source interval is a power of two
// in size, so the converter buffers it as base-2 symbols.
func Conversion[T constraints.Unsigned](src entropy.Source, target int64, samples int) (ConversionReport, error) {
	counted := randsrc.NewCounting(src)
	conv := entropy.New[T]()

	for i := 0; i < samples; i++ {
		if _, err := conv.Convert(target, counted); err != nil {
			return ConversionReport{}, err
		}
	}

	// Entropy still buffered in the converter was fetched but not spent.
	in := counted.BitsFetched() - BufferedEntropy(conv)
	out := float64(samples) * math.Log2(float64(target))

	return ConversionReport{
		Target:       target,
		Samples:      samples,
		InputBits:    in,
		OutputBits:   out,
		LossPerDraw:  (in - out) / float64(samples),
		BoundPerDraw: MaxEntropyLoss(float64(target), 2, AccumulatorMax[T]()),
	}, nil
}

// ShuffleReport summarizes the entropy cost of repeated full-deck shuffles.
type ShuffleReport struct {
	Deck   int
	Rounds int

	InputBits  float64
	OutputBits float64

	LossPerShuffle  float64
	BoundPerShuffle float64
}

// ShuffleCost shuffles a deck of the given size rounds times through a fresh
// converter of width T and reports measured against bounded loss.
func ShuffleCost[T constraints.Unsigned](src entropy.Source, deck, rounds int) (ShuffleReport, error) {
	counted := randsrc.NewCounting(src)
	conv := entropy.New[T]()

	cards := make([]int, deck)
	for i := range cards {
		cards[i] = i
	}

	for round := 0; round < rounds; round++ {
		if err := entropy.Shuffle(conv, counted, cards); err != nil {
			return ShuffleReport{}, err
		}
	}

	in := counted.BitsFetched() - BufferedEntropy(conv)
	out := float64(rounds) * ShuffleOutputEntropy(deck)

	return ShuffleReport{
		Deck:            deck,
		Rounds:          rounds,
		InputBits:       in,
		OutputBits:      out,
		LossPerShuffle:  (in - out) / float64(rounds),
		BoundPerShuffle: MaxShuffleLoss(deck, AccumulatorMax[T]()),
	}, nil
}

// ExpectedLossReport summarizes a randomized sequence of conversions whose
// targets depend on earlier outputs, exercising the converter the way an
// irregular workload would.
type ExpectedLossReport struct {
	Samples int

	InputBits  float64
	OutputBits float64

	MeasuredLoss float64
	ExpectedLoss float64
	BoundLoss    float64
}

// ExpectedLoss runs samples conversions with a target that wanders based on
// previous results, and compares the measured loss with the expected and
// worst-case estimates.
func ExpectedLoss[T constraints.Unsigned](src entropy.Source, samples int) (ExpectedLossReport, error) {
	const (
		targetMin = 5
		targetMax = 1000
	)

	counted := randsrc.NewCounting(src)
	conv := entropy.New[T]()
	limit := AccumulatorMax[T]()

	var out, expected, bound float64
	target := int64(50)
	for i := 0; i < samples; i++ {
		out += math.Log2(float64(target))
		expected += ExpectedEntropyLoss(float64(target), 2, limit)
		bound += MaxEntropyLoss(float64(target), 2, limit)

		r, err := conv.Convert(target, counted)
		if err != nil {
			return ExpectedLossReport{}, err
		}

		// Let the result steer the next target so the workload is irregular.
		target = 2 + r*2
		if target > targetMax {
			target = targetMax
		}
		if target < targetMin {
			target = targetMin
		}
	}

	in := counted.BitsFetched() - BufferedEntropy(conv)

	return ExpectedLossReport{
		Samples:      samples,
		InputBits:    in,
		OutputBits:   out,
		MeasuredLoss: in - out,
		ExpectedLoss: expected,
		BoundLoss:    bound,
	}, nil
}

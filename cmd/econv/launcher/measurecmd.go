package launcher

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/calum74/econv/flags"
	"github.com/calum74/econv/measure"
)

var measureCommand = cli.Command{
	Name:  "measure",
	Usage: "Measure entropy loss and output uniformity across accumulator widths",
	Flags: []cli.Flag{
		cli.Int64Flag{
			Name:  "target",
			Usage: "Output range size for conversion and uniformity measurements",
			Value: 6,
		},
		cli.IntFlag{
			Name:  "deck",
			Usage: "Deck size for shuffle measurements",
			Value: 52,
		},
	},
	Action: func(ctx *cli.Context) error {
		// The whole point of the table is comparing widths, so all three
		// instantiations run regardless of --width.
		if err := measureWidth[uint16](ctx, 16); err != nil {
			return err
		}
		if err := measureWidth[uint32](ctx, 32); err != nil {
			return err
		}
		return measureWidth[uint64](ctx, 64)
	},
}

func measureWidth[T constraints.Unsigned](ctx *cli.Context, width int) error {
	samples := ctx.GlobalInt(flags.SamplesFlagName)
	target := ctx.Int64("target")
	deck := ctx.Int("deck")

	log := logrus.WithField("width", width)

	conv, err := measure.Conversion[T](newSource(ctx), target, samples)
	if err != nil {
		return err
	}
	fmt.Printf("\nMeasuring %d draws of [0,%d) using %d bits:\n", samples, target, width)
	fmt.Printf("  Input entropy  = %.6f bits\n", conv.InputBits)
	fmt.Printf("  Output entropy = %.6f bits\n", conv.OutputBits)
	fmt.Printf("  Measured entropy loss per draw    = %.6g bits\n", conv.LossPerDraw)
	fmt.Printf("  Upper bound entropy loss per draw = %.6g bits\n", conv.BoundPerDraw)

	shuf, err := measure.ShuffleCost[T](newSource(ctx), deck, samples)
	if err != nil {
		return err
	}
	fmt.Printf("\nMeasuring %d shuffles of a deck of %d using %d bits:\n", samples, deck, width)
	fmt.Printf("  Input entropy  = %.6f bits\n", shuf.InputBits)
	fmt.Printf("  Output entropy = %.6f bits\n", shuf.OutputBits)
	fmt.Printf("  Measured entropy loss per shuffle    = %.6g bits\n", shuf.LossPerShuffle)
	fmt.Printf("  Upper bound entropy loss per shuffle = %.6g bits\n", shuf.BoundPerShuffle)

	exp, err := measure.ExpectedLoss[T](newSource(ctx), samples)
	if err != nil {
		return err
	}
	fmt.Printf("\nMeasuring randomized entropy loss using %d bits:\n", width)
	fmt.Printf("  Measured loss = %.6g bits\n", exp.MeasuredLoss)
	fmt.Printf("  Expected loss = %.6g bits\n", exp.ExpectedLoss)
	fmt.Printf("  Upper bound   = %.6g bits\n", exp.BoundLoss)

	uni, err := measure.CheckUniform[T](newSource(ctx), target, samples)
	if err != nil {
		return err
	}
	fmt.Printf("\nUniformity of [0,%d) over %d draws using %d bits:\n", target, samples, width)
	fmt.Printf("  Chi-squared = %.4f (p = %.4f)\n", uni.ChiSquare, uni.PValue)
	fmt.Printf("  Max deviation from expected count = %.2f%%\n", 100*uni.MaxDeviation)
	if uni.PValue < 0.001 {
		log.Warn("output failed the uniformity check; is the source actually uniform?")
	}

	return nil
}

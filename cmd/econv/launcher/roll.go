package launcher

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/calum74/econv/entropy"
	"github.com/calum74/econv/measure"
)

var rollCommand = cli.Command{
	Name:  "roll",
	Usage: "Roll dice through the entropy converter",
	Flags: []cli.Flag{
		cli.Int64Flag{
			Name:  "sides",
			Usage: "Number of sides per die",
			Value: 6,
		},
		cli.IntFlag{
			Name:  "count",
			Usage: "Number of rolls",
			Value: 1,
		},
	},
	Action: func(ctx *cli.Context) error {
		return forWidth(ctx,
			func() error { return roll[uint16](ctx) },
			func() error { return roll[uint32](ctx) },
			func() error { return roll[uint64](ctx) },
		)
	},
}

func roll[T constraints.Unsigned](ctx *cli.Context) error {
	sides := ctx.Int64("sides")
	count := ctx.Int("count")
	if sides < 1 {
		return fmt.Errorf("a die needs at least one side, got %d", sides)
	}

	src := newSource(ctx)
	conv := entropy.New[T]()

	for i := 0; i < count; i++ {
		r, err := conv.ConvertRange(1, sides, src)
		if err != nil {
			return err
		}
		fmt.Printf("You rolled a %d\n", r)
	}

	logrus.WithField("buffered_bits", measure.BufferedEntropy(conv)).
		Debug("entropy retained for future rolls")
	return nil
}

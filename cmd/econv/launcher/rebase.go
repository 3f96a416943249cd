package launcher

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/calum74/econv/entropy"
	"github.com/calum74/econv/measure"
)

var rebaseCommand = cli.Command{
	Name:  "rebase",
	Usage: "Re-base a random digit stream from one base into another",
	Flags: []cli.Flag{
		cli.Int64Flag{
			Name:  "from",
			Usage: "Base of the source digit stream",
			Value: 10,
		},
		cli.Int64Flag{
			Name:  "to",
			Usage: "Base of the output digit stream",
			Value: 16,
		},
		cli.IntFlag{
			Name:  "count",
			Usage: "Number of output digits",
			Value: 32,
		},
	},
	Action: func(ctx *cli.Context) error {
		return forWidth(ctx,
			func() error { return rebase[uint16](ctx) },
			func() error { return rebase[uint32](ctx) },
			func() error { return rebase[uint64](ctx) },
		)
	},
}

// rebase chains two converters: the first turns raw source symbols into
// uniform base-from digits, and the second consumes those digits as a Source
// of its own and emits uniform base-to digits. Chaining costs almost no
// entropy because each stage recycles its remainders.
func rebase[T constraints.Unsigned](ctx *cli.Context) error {
	from := ctx.Int64("from")
	to := ctx.Int64("to")
	count := ctx.Int("count")
	if from < 2 || to < 2 {
		return fmt.Errorf("bases must be at least 2, got %d and %d", from, to)
	}

	raw := newSource(ctx)
	feeder := entropy.New[T]()
	digits := entropy.SourceFunc{
		Min: 0,
		Max: uint64(from - 1),
		Fn: func() uint64 {
			d, err := feeder.Convert(from, raw)
			if err != nil {
				// The bases were validated above, so only a source contract
				// breach can land here.
				panic(err)
			}
			return uint64(d)
		},
	}

	conv := entropy.New[T]()
	var sb strings.Builder
	for i := 0; i < count; i++ {
		d, err := conv.ConvertRange(0, to-1, digits)
		if err != nil {
			return err
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", d)
	}
	fmt.Printf("base-%d digits: %s\n", to, sb.String())

	logrus.WithFields(logrus.Fields{
		"feeder_buffered_bits": measure.BufferedEntropy(feeder),
		"output_buffered_bits": measure.BufferedEntropy(conv),
	}).Debug("rebase complete")
	return nil
}

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

var shuffleCommand = cli.Command{
	Name:  "shuffle",
	Usage: "Print uniformly shuffled decks",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "deck",
			Usage: "Deck size",
			Value: 52,
		},
		cli.IntFlag{
			Name:  "count",
			Usage: "Number of shuffles",
			Value: 1,
		},
	},
	Action: func(ctx *cli.Context) error {
		return forWidth(ctx,
			func() error { return shuffle[uint16](ctx) },
			func() error { return shuffle[uint32](ctx) },
			func() error { return shuffle[uint64](ctx) },
		)
	},
}

func shuffle[T constraints.Unsigned](ctx *cli.Context) error {
	deck := ctx.Int("deck")
	count := ctx.Int("count")
	if deck < 1 {
		return fmt.Errorf("deck size must be positive, got %d", deck)
	}

	src := newSource(ctx)
	conv := entropy.New[T]()

	cards := make([]int, deck)
	for round := 0; round < count; round++ {
		for i := range cards {
			cards[i] = i
		}
		if err := entropy.Shuffle(conv, src, cards); err != nil {
			return err
		}

		var sb strings.Builder
		for i, card := range cards {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", card)
		}
		fmt.Println(sb.String())
	}

	logrus.WithFields(logrus.Fields{
		"deck":          deck,
		"buffered_bits": measure.BufferedEntropy(conv),
	}).Debug("shuffles complete")
	return nil
}

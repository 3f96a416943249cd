// Package launcher wires the econv CLI: flag handling, logging setup and the
// demo/measurement commands. Everything here is a consumer of the entropy
// package's public contract; the core itself never logs and has no notion of
// a command line.
package launcher

import (
	"encoding/binary"
	"fmt"

	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/calum74/econv/entropy"
	"github.com/calum74/econv/flags"
	"github.com/calum74/econv/randsrc"
)

var app = flags.NewApp()

func init() {
	app.Flags = flags.CommonFlags()
	app.Before = setupLogging
	app.Commands = []cli.Command{
		rollCommand,
		shuffleCommand,
		rebaseCommand,
		measureCommand,
	}
}

// Launch parses args and runs the selected command.
func Launch(args []string) error {
	return app.Run(args)
}

func setupLogging(ctx *cli.Context) error {
	switch format := ctx.GlobalString(flags.FormatFlagName); format {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	levels := []logrus.Level{
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
		logrus.DebugLevel,
		logrus.TraceLevel,
	}
	v := ctx.GlobalInt(flags.VerbosityFlagName)
	if v < 0 || v >= len(levels) {
		return fmt.Errorf("verbosity %d out of range", v)
	}
	logrus.SetLevel(levels[v])
	return nil
}

// newSource builds the configured entropy source: the OS device by default,
// or a seeded deterministic stream when --seed is non-zero.
func newSource(ctx *cli.Context) entropy.Source {
	const symbolWidth = 32

	seed := ctx.GlobalUint64(flags.SeedFlagName)
	if seed == 0 {
		logrus.Debug("using OS entropy device")
		return randsrc.NewDevice(symbolWidth)
	}

	logrus.WithField("seed", seed).Debug("using seeded deterministic source")
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return randsrc.NewChaCha(key, symbolWidth)
}

// forWidth dispatches to the runner matching the --width flag. The converter
// width is a compile-time type choice, so each supported width needs its own
// instantiation.
func forWidth(ctx *cli.Context, run16, run32, run64 func() error) error {
	switch width := ctx.GlobalInt(flags.WidthFlagName); width {
	case 16:
		return run16()
	case 32:
		return run32()
	case 64:
		return run64()
	default:
		return fmt.Errorf("unsupported accumulator width %d (want 16, 32 or 64)", width)
	}
}

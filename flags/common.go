package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// Flag names looked up by the launcher.
const (
	WidthFlagName     = "width"
	SeedFlagName      = "seed"
	SamplesFlagName   = "samples"
	VerbosityFlagName = "log.verbosity"
	FormatFlagName    = "log.format"
)

// CommonFlags returns the base set of CLI flags shared across commands.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  WidthFlagName,
			Usage: "Accumulator width in bits (16, 32 or 64)",
			Value: 64,
		},
		cli.Uint64Flag{
			Name:  SeedFlagName,
			Usage: "Seed for the deterministic source; 0 uses the OS entropy device",
		},
		cli.IntFlag{
			Name:  SamplesFlagName,
			Usage: "Number of draws for measurement commands",
			Value: 1000,
		},
		cli.IntFlag{
			Name:  VerbosityFlagName,
			Usage: "Logging verbosity (0=fatal,1=error,2=warn,3=info,4=debug,5=trace)",
			Value: 3,
		},
		cli.StringFlag{
			Name:  FormatFlagName,
			Usage: "Log output format (text|json)",
			Value: "text",
		},
	}
}

package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// NewApp returns the base CLI application for the econv tool.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "econv"
	app.Usage = "entropy conversion toolkit: uniform values, shuffles and loss measurements"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	return app
}

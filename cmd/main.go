package main

import (
	"fmt"
	"os"

	"github.com/calum74/econv/cmd/econv/launcher"
)

func main() {
	if err := launcher.Launch(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

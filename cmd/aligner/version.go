package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Set via -ldflags at build time.
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(ui.Out, "aligner version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}

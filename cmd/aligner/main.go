package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	app := &cli.App{
		Name:  "aligner",
		Usage: "weighted alignment and error rates for disfluency-tagged transcripts",
		Commands: []*cli.Command{
			alignCommand(ui),
			testCommand(ui),
			replCommand(ui),
			versionCommand(ui),
		},
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
	}

	if err := app.Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "aligner: %v\n", err)
}

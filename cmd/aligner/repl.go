package main

import (
	"github.com/revelaction/aligner/align"
	"github.com/revelaction/aligner/render"
	"github.com/revelaction/aligner/repl"

	"github.com/urfave/cli/v2"
)

func replCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Interactively align sentence pairs",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "modified", Aliases: []string{"m"}, Usage: "start with modified weights for disfluent words"},
			&cli.Float64Flag{Name: "ins", Value: 3, Usage: "insertion weight"},
			&cli.Float64Flag{Name: "del", Value: 3, Usage: "deletion weight"},
			&cli.Float64Flag{Name: "sub", Value: 4, Usage: "substitution weight"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored evaluation codes"},
		},
		Action: func(c *cli.Context) error {
			w := align.Weights{
				Insertion:    c.Float64("ins"),
				Deletion:     c.Float64("del"),
				Substitution: c.Float64("sub"),
				Modified:     c.Bool("modified"),
			}

			r := render.NewRenderer()
			r.HasColor = !c.Bool("no-color")

			h := repl.NewHandler(w, r)
			return h.Run()
		},
	}
}

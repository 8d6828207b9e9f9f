package main

import (
	"fmt"
	"path/filepath"

	"github.com/revelaction/aligner/align"
	"github.com/revelaction/aligner/file"
	"github.com/revelaction/aligner/render"
	"github.com/revelaction/aligner/score"
	sent "github.com/revelaction/aligner/sentence"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
)

func alignCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "align",
		Usage: "Align reference and hypothesis files and report error rates",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ref", Aliases: []string{"r"}, Usage: "path to the reference sentences", Required: true},
			&cli.StringFlag{Name: "hyp", Aliases: []string{"y"}, Usage: "path to the hypothesis sentences", Required: true},
			&cli.BoolFlag{Name: "modified", Aliases: []string{"m"}, Usage: "use modified weights for disfluent words (FER/DER instead of WER)"},
			&cli.Float64Flag{Name: "ins", Value: 3, Usage: "insertion weight"},
			&cli.Float64Flag{Name: "del", Value: 3, Usage: "deletion weight"},
			&cli.Float64Flag{Name: "sub", Value: 4, Usage: "substitution weight"},
			&cli.StringFlag{Name: "result-path", EnvVars: []string{"ALIGNER_RESULT_PATH"}, Usage: "directory to write " + file.ResultFile + " to"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "print only the summary, with a progress bar"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored evaluation codes"},
		},
		Action: func(c *cli.Context) error {
			w := align.Weights{
				Insertion:    c.Float64("ins"),
				Deletion:     c.Float64("del"),
				Substitution: c.Float64("sub"),
				Modified:     c.Bool("modified"),
			}

			opts := alignOptions{
				RefPath:    c.String("ref"),
				HypPath:    c.String("hyp"),
				ResultPath: c.String("result-path"),
				Quiet:      c.Bool("quiet"),
				NoColor:    c.Bool("no-color"),
			}

			return alignAction(opts, w, ui)
		},
	}
}

type alignOptions struct {
	RefPath    string
	HypPath    string
	ResultPath string
	Quiet      bool
	NoColor    bool
}

func alignAction(opts alignOptions, w align.Weights, ui UI) error {

	pairs, err := file.ReadPairs(opts.RefPath, opts.HypPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Loading %s and %s files ...\n", filepath.Base(opts.RefPath), filepath.Base(opts.HypPath))

	// the results file is always written colorless
	var rw *file.ResultWriter
	plain := render.NewRenderer()
	if opts.ResultPath != "" {
		rw, err = file.NewResultWriter(opts.ResultPath)
		if err != nil {
			return err
		}
		defer rw.Close()
	}

	r := render.NewRenderer()
	r.HasColor = !opts.NoColor

	var bar *uiprogress.Bar
	if opts.Quiet {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(pairs))
		bar.AppendCompleted()
		bar.PrependElapsed()
	}

	a := align.New(w)
	total := score.Score{Modified: w.Modified}

	for n, p := range pairs {

		ref := sent.New(p.Ref)
		edits, err := a.Align(ref, sent.New(p.Hyp))
		if err != nil {
			// skip the failed pair, keep scoring the rest
			fmt.Fprintf(ui.Err, "skipping sentence %d: %v\n", n+1, err)
			if bar != nil {
				bar.Incr()
			}
			continue
		}

		sc := score.FromEdits(edits, ref, w.Modified)
		total.Add(sc)

		if !opts.Quiet {
			fmt.Fprintln(ui.Out, r.Block(n+1, r.Alignment(edits, sc)))
		}

		if rw != nil {
			if err := rw.Write(plain.Block(n+1, plain.Alignment(edits, sc))); err != nil {
				return err
			}
		}

		if bar != nil {
			bar.Incr()
		}
	}

	if opts.Quiet {
		uiprogress.Stop()
	}

	fmt.Fprint(ui.Out, r.Summary(total))

	return nil
}

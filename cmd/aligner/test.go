package main

import (
	"fmt"

	"github.com/revelaction/aligner/align"
	"github.com/revelaction/aligner/render"
	"github.com/revelaction/aligner/score"
	sent "github.com/revelaction/aligner/sentence"

	"github.com/urfave/cli/v2"
)

// Sample corpus of Switchboard-style sentence pairs. Disfluent words in
// the references are tagged with UPPERCASE.
var sampleRef = []string{
	"THE THE THE the sad part about here is that winter starts in",
	"THEY YOU KNOW THEY they wouldn't have been given access to the friend or foe codes",
	"IT'S BEEN it's been lucratim for him",
	"I I i guess he was RIGH-",
	"YEAH yeah THEY THEY THEY they will check for alcohol",
	"makes you wanna stick around",
	"yeah",
	"right well I i'm on the benefits committee here",
	"yeah I i totally agree I i think it's kind of appalling",
	"they're pretty fun THEY'RE they're good kids",
	"I i mean i don't really know WHAT THEY CAN how they can really enforce the laws any better",
	"I THINK i think IT WAS IT WAS THERE WERE there were a lot more demographic related interestts",
	"I MEAN i mean it's great",
}

var sampleHyp = []string{
	"the sad part about here is that winter starts in",
	"they wouldn't have been given access to the friend or foe codes",
	"it's been lucri for em",
	"i guess he was wrong",
	"yeah i mean they check for alcohol",
	"makes you want to stick around",
	"",
	"right well i'm not i'm not the benefits committee here",
	"yeah i i i totally agree i think it's it's kind of a pollen",
	"they are pretty fun they were good kids",
	"i mean i don't really know they can really impose the laws any better",
	"i think there was a lot more geographic related interests",
	"i mean i i i mean it is great",
}

func testCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "test",
		Usage: "Align the bundled sample corpus with modified weights",
		Action: func(c *cli.Context) error {
			return testAction(ui)
		},
	}
}

func testAction(ui UI) error {

	w := align.Default()
	w.Modified = true

	a := align.New(w)
	r := render.NewRenderer()

	for n := range sampleRef {
		ref := sent.New(sampleRef[n])

		edits, err := a.Align(ref, sent.New(sampleHyp[n]))
		if err != nil {
			return err
		}

		sc := score.FromEdits(edits, ref, true)
		fmt.Fprintln(ui.Out, r.Block(n+1, r.Alignment(edits, sc)))
	}

	return nil
}

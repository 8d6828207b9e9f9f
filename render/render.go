package render

import (
	"fmt"
	"strings"

	"github.com/revelaction/aligner/align"
	"github.com/revelaction/aligner/score"
)

const (
	blockSeparator   = "--------------------------------------------------"
	summarySeparator = "=================================================="
)

var (
	Red       = "\033[1;31m"
	Teal      = "\033[1;36m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
)

// Renderer formats alignments and score summaries for terminal output or
// for the results file. With HasColor the evaluation codes are colored;
// the results file writer keeps a colorless Renderer.
type Renderer struct {
	HasColor bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Alignment renders the three aligned lines (REF, HYP, Eval) followed by
// the per-sentence scores line, or the fluent/disfluent pair of lines when
// the score was produced with modified weights.
func (r *Renderer) Alignment(edits []align.Edit, sc score.Score) string {
	refs := make([]string, 0, len(edits))
	hyps := make([]string, 0, len(edits))
	var eval strings.Builder

	for _, e := range edits {
		refs = append(refs, e.Ref)
		hyps = append(hyps, e.Hyp)
		eval.WriteString(r.evalCell(e))
	}

	out := fmt.Sprintf("REF: \t%s\n", strings.Join(refs, " "))
	out += fmt.Sprintf("HYP: \t%s\n", strings.Join(hyps, " "))
	out += fmt.Sprintf("Eval: \t%s\n", eval.String())

	if sc.Modified {
		out += fmt.Sprintf("Fluent:    (#C #S #D #I) %d %d %d %d \n",
			sc.Fluent.Match, sc.Fluent.Substitution, sc.Fluent.Deletion, sc.Fluent.Insertion)
		out += fmt.Sprintf("Disfluent: (#C #S #D #I) %d %d %d %d\n",
			sc.Disfluent.Match, sc.Disfluent.Substitution, sc.Disfluent.Deletion, sc.Disfluent.Insertion)
	} else {
		out += fmt.Sprintf("Scores: (#C #S #D #I) %d %d %d %d\n",
			sc.Fluent.Match, sc.Fluent.Substitution, sc.Fluent.Deletion, sc.Fluent.Insertion)
	}

	return out
}

// Block wraps one rendered alignment with the sentence header.
func (r *Renderer) Block(n int, alignment string) string {
	return fmt.Sprintf("%s \nSent #%d \n%s \n%s", blockSeparator, n, blockSeparator, alignment)
}

// Summary renders the corpus-level rates for the summed score: WER for
// plain weights, FER/DER plus precision, recall and F-score for modified
// weights.
func (r *Renderer) Summary(sc score.Score) string {
	var out strings.Builder
	out.WriteString(summarySeparator + "\n")

	ferNum := sc.Fluent.Substitution + sc.Fluent.Deletion + sc.Fluent.Insertion
	if !sc.Modified {
		fmt.Fprintf(&out, "Word Error Rate (WER): %d/%d = %.3f\n", ferNum, sc.FluentTokens, sc.FER())
		return out.String()
	}

	fmt.Fprintf(&out, "Fluent Error Rate (FER): %d/%d = %.3f\n", ferNum, sc.FluentTokens, sc.FER())

	derNum := sc.Disfluent.Match + sc.Disfluent.Substitution + sc.Disfluent.Insertion
	fmt.Fprintf(&out, "Disfluent Error Rate (DER): %d/%d = %.3f\n", derNum, sc.DisfluentTokens, sc.DER())

	fmt.Fprintf(&out, "Precision: %d/%d = %.3f\n",
		sc.Disfluent.Deletion, sc.Disfluent.Deletion+sc.Fluent.Deletion, sc.Precision())
	fmt.Fprintf(&out, "Recall: %d/%d = %.3f\n",
		sc.Disfluent.Deletion, sc.DisfluentTokens, sc.Recall())
	fmt.Fprintf(&out, "F-score: %.3f\n", sc.FScore())

	return out.String()
}

func (r *Renderer) evalCell(e align.Edit) string {
	if !r.HasColor || e.Eval == "" {
		return e.Eval
	}

	var color string
	switch e.Type {
	case align.OpSubstitution:
		color = Red
	case align.OpDeletion:
		color = Yellow256
	case align.OpInsertion:
		color = Teal
	default:
		return e.Eval
	}

	return color + e.Eval[:1] + Off + e.Eval[1:]
}

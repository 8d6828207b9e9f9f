package repl

import (
	"fmt"
	"strings"

	"github.com/revelaction/aligner/align"
	"github.com/revelaction/aligner/render"
	"github.com/revelaction/aligner/score"
	sent "github.com/revelaction/aligner/sentence"

	prompt "github.com/c-bata/go-prompt"
)

// Handler runs the interactive alignment loop: the user enters a reference
// line (disfluent words in UPPERCASE), then a hypothesis line, and gets
// the rendered alignment back.
type Handler struct {
	Weights  align.Weights
	Renderer *render.Renderer
}

func NewHandler(w align.Weights, r *render.Renderer) *Handler {
	return &Handler{
		Weights:  w,
		Renderer: r,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+W: toggle modified weights, 🔧 quit")

	// initialize prompt history, shared by both prompts
	history := []string{}

	for {

		refIn := prompt.Input("      REF 🔖 ", h.completer(&history), h.options(history)...)
		if refIn == "quit" {
			return nil
		}
		history = append(history, refIn)

		hypIn := prompt.Input("      HYP 🔖 ", h.completer(&history), h.options(history)...)
		if hypIn == "quit" {
			return nil
		}
		history = append(history, hypIn)

		a := align.New(h.Weights)
		ref := sent.New(refIn)

		edits, err := a.Align(ref, sent.New(hypIn))
		if err != nil {
			fmt.Printf("❌ %s\n", err)
			continue
		}

		sc := score.FromEdits(edits, ref, h.Weights.Modified)
		fmt.Println(h.Renderer.Alignment(edits, sc))
	}
}

func (h *Handler) options(history []string) []prompt.Option {
	return []prompt.Option{
		prompt.OptionTitle("aligner repl"),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
		prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionMaxSuggestion(12),
		prompt.OptionHistory(history),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlW,
			Fn: func(buf *prompt.Buffer) {
				h.Weights.Modified = !h.Weights.Modified
				fmt.Println("Modified weights set to: " + fmt.Sprintf("%t", h.Weights.Modified))
			}}),
	}
}

// completer suggests previously entered lines, so a reference can be
// re-aligned against several hypotheses without retyping.
func (h *Handler) completer(history *[]string) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		// Only suggest once there is input
		if "" == befCursor {
			return s
		}

		for _, line := range *history {
			if strings.HasPrefix(line, befCursor) {
				// Do not show suggestion at the end of the text
				if len(befCursor) < len(line) {
					s = append(s, prompt.Suggest{Text: line, Description: ""})
				}
			}
		}

		return s
	}
}

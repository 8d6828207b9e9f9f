package sentence

import (
	"strings"
	"unicode"
)

// Sentence is an ordered sequence of word tokens, obtained by splitting a
// line on whitespace. No further normalization is applied.
type Sentence []string

// New splits text on whitespace into a Sentence.
func New(text string) Sentence {
	return Sentence(strings.Fields(text))
}

// IsDisfluent reports whether a token carries the disfluency tag: it
// contains at least one letter and every cased letter is uppercase.
// A token with no letters (punctuation, the '*' mask) is never tagged.
//
// The tag is a side channel in the text itself (Sclite convention), not a
// separate field, so labeled corpora stay readable as plain text.
func IsDisfluent(token string) bool {
	cased := false
	for _, r := range token {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}

	return cased
}

// DisfluentCount returns the number of disfluent-tagged tokens.
func (s Sentence) DisfluentCount() int {
	n := 0
	for _, token := range s {
		if IsDisfluent(token) {
			n++
		}
	}

	return n
}

// String joins the tokens back with single spaces.
func (s Sentence) String() string {
	return strings.Join(s, " ")
}

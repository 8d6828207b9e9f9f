package score

import (
	"github.com/revelaction/aligner/align"
	sent "github.com/revelaction/aligner/sentence"
)

// Counts holds the number of edit operations of each type.
type Counts struct {
	Match        int
	Substitution int
	Deletion     int
	Insertion    int
}

func (c *Counts) add(o Counts) {
	c.Match += o.Match
	c.Substitution += o.Substitution
	c.Deletion += o.Deletion
	c.Insertion += o.Insertion
}

// Score is the scoring of one alignment, or the sum over many.
//
// Without modified weights everything lands in Fluent and FluentTokens is
// the full reference length. With modified weights the counts are
// partitioned by the disfluency tag of each operation's reference token.
//
// Scores over independent sentence pairs sum commutatively, so a corpus
// total is a plain reduction with Add, in any order.
type Score struct {
	Fluent    Counts
	Disfluent Counts

	FluentTokens    int
	DisfluentTokens int

	Modified bool
}

// FromEdits counts the edit sequence of one sentence pair. ref must be the
// reference sentence the edits were produced from; it provides the token
// totals.
func FromEdits(edits []align.Edit, ref sent.Sentence, modified bool) Score {
	s := Score{Modified: modified}

	for _, e := range edits {
		c := &s.Fluent
		// the insertion '*' mask never counts as disfluent
		if modified && sent.IsDisfluent(e.Ref) {
			c = &s.Disfluent
		}

		switch e.Type {
		case align.OpMatch:
			c.Match++
		case align.OpSubstitution:
			c.Substitution++
		case align.OpDeletion:
			c.Deletion++
		case align.OpInsertion:
			c.Insertion++
		}
	}

	if modified {
		s.DisfluentTokens = ref.DisfluentCount()
		s.FluentTokens = len(ref) - s.DisfluentTokens
	} else {
		s.FluentTokens = len(ref)
	}

	return s
}

// Add accumulates another score into s.
func (s *Score) Add(o Score) {
	s.Fluent.add(o.Fluent)
	s.Disfluent.add(o.Disfluent)
	s.FluentTokens += o.FluentTokens
	s.DisfluentTokens += o.DisfluentTokens
}

// FER is the fluent error rate: (sub+del+ins) over the fluent token count.
// Without modified weights this is the plain word error rate.
func (s Score) FER() float64 {
	return rate(s.Fluent.Substitution+s.Fluent.Deletion+s.Fluent.Insertion, s.FluentTokens)
}

// DER is the disfluent error rate: (match+sub+ins) over the disfluent
// token count. A disfluent word surviving into the hypothesis unchanged is
// itself the error being measured, so matches count against DER.
func (s Score) DER() float64 {
	return rate(s.Disfluent.Match+s.Disfluent.Substitution+s.Disfluent.Insertion, s.DisfluentTokens)
}

// Precision is the share of deletions that removed disfluent words.
func (s Score) Precision() float64 {
	return rate(s.Disfluent.Deletion, s.Disfluent.Deletion+s.Fluent.Deletion)
}

// Recall is the share of disfluent words that were removed.
func (s Score) Recall() float64 {
	return rate(s.Disfluent.Deletion, s.DisfluentTokens)
}

// FScore is the harmonic mean of Precision and Recall.
func (s Score) FScore() float64 {
	d := s.DisfluentTokens + s.Disfluent.Deletion + s.Fluent.Deletion
	if d == 0 {
		return 0
	}

	return 2 * float64(s.Disfluent.Deletion) / float64(d)
}

func rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}

	return float64(numerator) / float64(denominator)
}

package align

import (
	"errors"
	"math"
	"strings"

	sent "github.com/revelaction/aligner/sentence"
)

// Epsilon is the tie-break perturbation applied to operations whose
// reference token is disfluent-tagged. It is far below any integer weight
// difference, so it never changes which alignment is cheapest overall; it
// only steers which of several equal-cost paths the backtrace follows.
const Epsilon = 1e-7

// ErrEmptyReference is returned when the reference sentence has no tokens.
// An empty hypothesis is legal, an empty reference is a usage error.
var ErrEmptyReference = errors.New("reference sentence cannot be an empty line")

// Weights configures the cost of each edit operation. A match costs zero.
//
// With Modified set, disfluent-region operations use perturbed weights:
// match +ε, deletion −ε, insertion +ε, substitution +ε. Deleting a
// disfluent word becomes marginally cheaper than any alternative of equal
// integer cost, so the recovered edit sequence classifies disfluent
// regions consistently.
type Weights struct {
	Insertion    float64
	Deletion     float64
	Substitution float64

	Modified bool
}

// Default returns the Sclite-inspired weights: ins=3, del=3, sub=4.
func Default() Weights {
	return Weights{Insertion: 3, Deletion: 3, Substitution: 4}
}

// Op is the type of a single edit operation.
type Op int

const (
	OpMatch Op = iota
	OpSubstitution
	OpDeletion
	OpInsertion
)

func (o Op) String() string {
	switch o {
	case OpMatch:
		return "match"
	case OpSubstitution:
		return "substitution"
	case OpDeletion:
		return "deletion"
	case OpInsertion:
		return "insertion"
	}

	return "unknown"
}

// Edit is one step of the alignment.
//
// Ref and Hyp are display cells, not raw tokens: an absent side is masked
// with '*' runes of the counterpart's width, and a substitution pads both
// sides with spaces to equal width. Eval is the single-letter evaluation
// code padded to the cell width (blank for a match).
//
// The trailing space padding does not affect the disfluency predicate, and
// the '*' mask is never disfluent-tagged, so scoring can partition edits
// by sent.IsDisfluent(edit.Ref) directly.
type Edit struct {
	Type Op
	Ref  string
	Hyp  string
	Eval string
}

// Aligner computes a weighted alignment between a reference sentence and a
// hypothesis sentence. It is stateless apart from its weights; one Aligner
// can be shared across sentence pairs, including concurrently.
type Aligner struct {
	weights Weights
}

func New(w Weights) *Aligner {
	return &Aligner{weights: w}
}

// Align returns the full edit sequence covering ref and hyp, in
// left-to-right reference order.
//
// An empty hypothesis short-circuits to pure deletions; the degenerate
// one-column matrix would produce exactly the same sequence.
func (a *Aligner) Align(ref, hyp sent.Sentence) ([]Edit, error) {
	if len(ref) == 0 {
		return nil, ErrEmptyReference
	}

	if len(hyp) == 0 {
		return a.zeroLength(ref), nil
	}

	return a.backtrace(a.costMatrix(ref, hyp), ref, hyp), nil
}

// Distance returns the minimum weighted cost of aligning ref and hyp, the
// bottom-right cell of the cost matrix. With unit weights and Modified off
// this is the classic Levenshtein distance over tokens.
func (a *Aligner) Distance(ref, hyp sent.Sentence) (float64, error) {
	if len(ref) == 0 {
		return 0, ErrEmptyReference
	}

	rows := a.costMatrix(ref, hyp)
	return rows[len(ref)][len(hyp)], nil
}

// epsilon returns the perturbation for operations on the given reference
// token.
func (a *Aligner) epsilon(refToken string) float64 {
	if a.weights.Modified && sent.IsDisfluent(refToken) {
		return Epsilon
	}

	return 0
}

// costMatrix builds the (len(ref)+1) x (len(hyp)+1) table where cell [i][j]
// is the minimum weighted cost of aligning the first i reference tokens
// with the first j hypothesis tokens. Row 0 and column 0 are the pure
// insertion/deletion base cases.
func (a *Aligner) costMatrix(ref, hyp sent.Sentence) [][]float64 {
	rows := make([][]float64, 0, len(ref)+1)

	previous := make([]float64, len(hyp)+1)
	for j := range previous {
		previous[j] = float64(j) * a.weights.Insertion
	}
	rows = append(rows, previous)

	for i, wRef := range ref {
		// The perturbed branch weights are computed once per row, with the
		// exact expressions the backtrace uses. The backtrace compares
		// costs for equality, so the additions must associate identically
		// in both places; (sub+eps) added as one term is not the same
		// float64 as adding sub and eps separately.
		eps := a.epsilon(wRef)
		delWeight := a.weights.Deletion - eps
		insWeight := a.weights.Insertion + eps
		subWeight := a.weights.Substitution + eps

		// the tag is erased before comparison
		wRef = strings.ToLower(wRef)

		current := make([]float64, 0, len(hyp)+1)
		current = append(current, delWeight*float64(i+1))

		for j, wHyp := range hyp {
			deletions := previous[j+1] + delWeight
			insertions := current[j] + insWeight
			substitutions := previous[j] + eps
			if wRef != wHyp {
				substitutions = previous[j] + subWeight
			}

			current = append(current, math.Min(insertions, math.Min(deletions, substitutions)))
		}

		previous = current
		rows = append(rows, current)
	}

	return rows
}

// backtrace walks the cost matrix from the bottom-right corner to the
// origin and emits one Edit per step.
//
// The rule order is the tie-break policy: match is claimed before the
// explicit substitution equation, substitution before deletion, deletion
// before insertion. Cost comparisons are exact; the backtrace recomputes
// the same floating-point arithmetic the builder used, so ties are exact
// by construction. The final rule is a second match formulation covering
// the epsilon-only diagonal step that the neighbor-minimum rule can miss.
func (a *Aligner) backtrace(rows [][]float64, ref, hyp sent.Sentence) []Edit {
	i, j := len(ref), len(hyp)

	var edits []Edit
	for i != 0 || j != 0 {
		cost := rows[i][j]

		// same branch weights, same association as the builder
		var eps float64
		if i != 0 {
			eps = a.epsilon(ref[i-1])
		}
		delWeight := a.weights.Deletion - eps
		insWeight := a.weights.Insertion + eps
		subWeight := a.weights.Substitution + eps

		minNeighbor := math.Inf(1)
		if i != 0 && j != 0 {
			minNeighbor = rows[i-1][j-1]
		}
		if i != 0 && rows[i-1][j] < minNeighbor {
			minNeighbor = rows[i-1][j]
		}
		if j != 0 && rows[i][j-1] < minNeighbor {
			minNeighbor = rows[i][j-1]
		}

		switch {
		case i != 0 && j != 0 && cost == minNeighbor+eps:
			i, j = i-1, j-1
			edits = append(edits, matchEdit(ref[i], hyp[j]))

		case i != 0 && j != 0 && cost == rows[i-1][j-1]+subWeight:
			i, j = i-1, j-1
			edits = append(edits, substitutionEdit(ref[i], hyp[j]))

		case (i != 0 && cost == rows[i-1][j]+delWeight) || j == 0:
			i--
			edits = append(edits, deletionEdit(ref[i]))

		case (j != 0 && cost == rows[i][j-1]+insWeight) || i == 0:
			j--
			edits = append(edits, insertionEdit(hyp[j]))

		case cost == rows[i-1][j-1]+eps:
			i, j = i-1, j-1
			edits = append(edits, matchEdit(ref[i], hyp[j]))
		}
	}

	// emitted from sentence end to start, restore reference order
	for l, r := 0, len(edits)-1; l < r; l, r = l+1, r-1 {
		edits[l], edits[r] = edits[r], edits[l]
	}

	return edits
}

// zeroLength handles an empty hypothesis: every reference token is deleted.
func (a *Aligner) zeroLength(ref sent.Sentence) []Edit {
	edits := make([]Edit, 0, len(ref))
	for _, wRef := range ref {
		edits = append(edits, deletionEdit(wRef))
	}

	return edits
}

func matchEdit(ref, hyp string) Edit {
	return Edit{
		Type: OpMatch,
		Ref:  ref,
		Hyp:  hyp,
		Eval: pad(runeLen(ref) + 1),
	}
}

func substitutionEdit(ref, hyp string) Edit {
	lnRef, lnHyp := runeLen(ref), runeLen(hyp)
	return Edit{
		Type: OpSubstitution,
		Ref:  ref + pad(lnHyp-lnRef),
		Hyp:  hyp + pad(lnRef-lnHyp),
		Eval: "S" + pad(max(lnRef, lnHyp)),
	}
}

func deletionEdit(ref string) Edit {
	lnRef := runeLen(ref)
	return Edit{
		Type: OpDeletion,
		Ref:  ref,
		Hyp:  strings.Repeat("*", lnRef),
		Eval: "D" + pad(lnRef),
	}
}

func insertionEdit(hyp string) Edit {
	lnHyp := runeLen(hyp)
	return Edit{
		Type: OpInsertion,
		Ref:  strings.Repeat("*", lnHyp),
		Hyp:  hyp,
		Eval: "I" + pad(lnHyp),
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(" ", n)
}

// Package textdiff wraps Ratcliff-Obershelp sequence matching for the two
// comparisons the pipeline makes: word-level change counts between an
// original and an edited document, and similarity ratios between
// part-of-speech tag sequences.
package textdiff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// ChangedWords returns the number of words changed between the original and
// edited word sequences. Each replaced, deleted, or inserted region counts
// the larger of its two sides.
func ChangedWords(original, edited []string) int {
	matcher := difflib.NewMatcher(original, edited)
	changed := 0
	for _, op := range matcher.GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		left := op.I2 - op.I1
		right := op.J2 - op.J1
		if right > left {
			left = right
		}
		changed += left
	}
	return changed
}

// SimilarityRatio returns the similarity of two strings in [0,1], computed
// character-wise. Empty input yields 0.
func SimilarityRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return matcher.Ratio()
}

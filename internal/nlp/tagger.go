// Package nlp provides the optional part-of-speech capability used by the
// analysis pipeline. The capability is selected once at startup: either the
// prose-backed implementation or the deterministic regex fallback. Both
// always produce a result, so pipeline output shape never depends on the
// chosen implementation.
package nlp

import (
	"regexp"
	"strings"
)

// Tagger answers the two part-of-speech questions the pipeline asks.
type Tagger interface {
	// SpecificCounts returns the number of proper nouns and numeric tokens
	// in text.
	SpecificCounts(text string) (properNouns, numbers int)
	// SentencePatterns returns a space-joined tag sequence per sentence,
	// with punctuation tags removed. ok reports whether real tagging backs
	// the patterns; detectors that need structural tags degrade to zero
	// when it is false.
	SentencePatterns(sentences []string) (patterns []string, ok bool)
}

// Segmenter splits running text into sentences.
type Segmenter interface {
	Sentences(text string) []string
}

var (
	properNounRE      = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	numberRE          = regexp.MustCompile(`[0-9]+`)
	sentenceBoundRE   = regexp.MustCompile(`[.!?]+\s+`)
	punctuationTagSet = map[string]bool{
		".": true, ",": true, ":": true, ";": true, "!": true, "?": true,
	}
)

// RegexTagger is the fallback tagger: capitalized words approximate proper
// nouns and digit runs approximate numeric tokens.
type RegexTagger struct{}

func (RegexTagger) SpecificCounts(text string) (int, int) {
	properNouns := len(properNounRE.FindAllStringIndex(text, -1))
	numbers := len(numberRE.FindAllStringIndex(text, -1))
	return properNouns, numbers
}

func (RegexTagger) SentencePatterns(sentences []string) ([]string, bool) {
	return nil, false
}

// RegexSegmenter is the fallback segmenter: split on terminal punctuation
// followed by whitespace.
type RegexSegmenter struct{}

func (RegexSegmenter) Sentences(text string) []string {
	var out []string
	for _, s := range sentenceBoundRE.Split(text, -1) {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

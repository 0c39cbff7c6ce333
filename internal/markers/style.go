package markers

import (
	"fmt"
	"regexp"

	"gonum.org/v1/gonum/stat"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/pkg/models"
)

var hedgingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)It (is|should be) (important|worth|interesting) to (note|mention|observe) that`),
	regexp.MustCompile(`(?i)This (suggests|indicates|demonstrates) that`),
}

var formalTransitionREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)in light of the above`),
	regexp.MustCompile(`(?i)taking into consideration`),
	regexp.MustCompile(`(?i)with regard to`),
	regexp.MustCompile(`(?i)in terms of`),
	regexp.MustCompile(`(?i)it is evident that`),
	regexp.MustCompile(`(?i)it can be observed that`),
}

var passiveVoiceRE = regexp.MustCompile(`(?i)\b(is|are|was|were|been|being)\s+\w+ed\b`)

// DetectStyle runs the category D detectors: style markers.
func DetectStyle(text string, wordCount int, sentences []string, counts Counts) []models.MarkerResult {
	var results []models.MarkerResult

	// D1 hedging phrase overuse above an expected 2 per 1,000 words.
	count := 0
	var evidence []models.Evidence
	for _, re := range hedgingPatterns {
		matches := re.FindAllStringIndex(text, -1)
		count += len(matches)
		evidence = append(evidence, snippetsN(text, matches, 2)...)
	}
	if len(evidence) > evidenceLimit {
		evidence = evidence[:evidenceLimit]
	}
	var expected float64
	if wordCount > 0 {
		expected = float64(wordCount) / 1000 * 2
	}
	excess := float64(count) - expected
	if excess < 0 {
		excess = 0
	}
	results = append(results, models.MarkerResult{
		ID:              "D1",
		Category:        "D",
		Name:            "Hedging Language Overuse",
		Count:           count,
		Score:           excess * 4,
		MaxContribution: 40,
		Evidence:        evidence,
		Description:     "Overuse of hedging phrases.",
	})
	counts["D1_hedging_overuse"] = float64(count)

	// D2 formal transition phrases.
	count = 0
	evidence = nil
	for _, re := range formalTransitionREs {
		matches := re.FindAllStringIndex(text, -1)
		count += len(matches)
		evidence = append(evidence, snippetsN(text, matches, 2)...)
	}
	if len(evidence) > evidenceLimit {
		evidence = evidence[:evidenceLimit]
	}
	results = append(results, models.MarkerResult{
		ID:              "D2",
		Category:        "D",
		Name:            "Overly Formal Transitions",
		Count:           count,
		Score:           float64(count) * 3,
		MaxContribution: 30,
		Evidence:        evidence,
		Description:     "Formal transition phrases associated with AI writing.",
	})
	counts["D2_formal_transitions"] = float64(count)

	// D3 passive voice density above 25% of words.
	matches := passiveVoiceRE.FindAllStringIndex(text, -1)
	count = len(matches)
	var passivePct float64
	if wordCount > 0 {
		passivePct = float64(count) / float64(wordCount) * 100
	}
	var score float64
	if passivePct > 25 {
		score = passivePct - 25
	}
	results = append(results, models.MarkerResult{
		ID:              "D3",
		Category:        "D",
		Name:            "Passive Voice Density",
		Count:           count,
		Score:           score,
		MaxContribution: 25,
		Evidence:        snippets(text, matches),
		Description:     "High passive voice density.",
	})
	counts["D3_passive_density"] = passivePct

	// D4 sentence length uniformity: population stddev below 5 words.
	var lengths []float64
	for _, sent := range sentences {
		if n := document.CountWords(sent); n > 0 {
			lengths = append(lengths, float64(n))
		}
	}
	score = 0
	var sd float64
	if len(lengths) >= 2 {
		sd = stat.PopStdDev(lengths, nil)
		if sd < 5 {
			score = (5 - sd) * 10
		}
	}
	evidence = nil
	if score > 0 {
		evidence = []models.Evidence{{Text: fmt.Sprintf("Sentence length SD %.2f", sd), Index: 0}}
	}
	d4Count := 0
	if score > 0 {
		d4Count = 1
	}
	results = append(results, models.MarkerResult{
		ID:              "D4",
		Category:        "D",
		Name:            "Sentence Length Uniformity",
		Count:           d4Count,
		Score:           score,
		MaxContribution: 30,
		Evidence:        evidence,
		Description:     "Unusually uniform sentence lengths.",
	})
	counts["D4_sentence_uniformity"] = float64(d4Count)

	return results
}

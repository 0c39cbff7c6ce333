package markers

import (
	"regexp"
	"strings"

	"github.com/awarelabs/aware/internal/nlp"
	"github.com/awarelabs/aware/internal/textdiff"
	"github.com/awarelabs/aware/pkg/models"
)

var transitionWords = []string{
	"furthermore",
	"moreover",
	"additionally",
	"consequently",
	"subsequently",
	"nevertheless",
	"nonetheless",
	"correspondingly",
}

var enumerationWords = []string{
	"firstly",
	"first",
	"secondly",
	"second",
	"thirdly",
	"third",
	"fourthly",
	"fourth",
	"finally",
	"lastly",
}

var spacingAnomalyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(\s+\S`),      // space after opening parenthesis
	regexp.MustCompile(`\S\s+\)`),      // space before closing parenthesis
	regexp.MustCompile(`\s—\s`),        // spaces around em-dash
	regexp.MustCompile(`\d\s+–\s+\d`),  // spaces around en-dash in ranges
	regexp.MustCompile(`\w\s+/\s+\w`),  // spaces around slash
}

const structureSimilarityThreshold = 0.70

// DetectStructure runs the category B detectors: structural AI-style
// patterns. Repetitive-structure detection degrades to zero when the tagger
// cannot provide real part-of-speech patterns.
func DetectStructure(text string, wordCount int, sentences []string, tagger nlp.Tagger, counts Counts) []models.MarkerResult {
	var results []models.MarkerResult

	// B1 sentence-initial formal transitions, scored above an expected
	// rate of 2 per 1,000 words.
	count := 0
	var evidence []models.Evidence
	for idx, sent := range sentences {
		lower := strings.ToLower(strings.TrimSpace(sent))
		for _, word := range transitionWords {
			if strings.HasPrefix(lower, word+",") {
				count++
				if len(evidence) < evidenceLimit {
					evidence = append(evidence, models.Evidence{Text: truncate(sent, 160), Index: idx})
				}
				break
			}
		}
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
		ID:              "B1",
		Category:        "B",
		Name:            "Transitional Word Patterns",
		Count:           count,
		Score:           excess * 8,
		MaxContribution: 80,
		Evidence:        evidence,
		Description:     "AI-style transitional phrases at sentence starts.",
	})
	counts["B1_transitional"] = float64(count)

	// B2 enumeration runs: firstly/secondly/finally sequences.
	flags := make([]bool, len(sentences))
	type enumHit struct {
		idx  int
		sent string
	}
	var hits []enumHit
	for idx, sent := range sentences {
		lower := strings.ToLower(strings.TrimSpace(sent))
		for _, word := range enumerationWords {
			if strings.HasPrefix(lower, word+",") {
				flags[idx] = true
				hits = append(hits, enumHit{idx, sent})
				break
			}
		}
	}
	var score float64
	sequences := 0
	for i := 0; i < len(flags); {
		if !flags[i] {
			i++
			continue
		}
		start := i
		for i < len(flags) && flags[i] {
			i++
		}
		switch length := i - start; {
		case length >= 3:
			score += 12
			sequences++
		case length == 2:
			score += 6
			sequences++
		}
	}
	evidence = nil
	for _, hit := range hits {
		if len(evidence) >= evidenceLimit {
			break
		}
		evidence = append(evidence, models.Evidence{Text: truncate(hit.sent, 160), Index: hit.idx})
	}
	results = append(results, models.MarkerResult{
		ID:              "B2",
		Category:        "B",
		Name:            "Enumeration Patterns",
		Count:           sequences,
		Score:           score,
		MaxContribution: 60,
		Evidence:        evidence,
		Description:     "Firstly/Secondly/Finally enumeration sequences.",
	})
	counts["B2_enumeration"] = float64(sequences)

	// B3 spacing anomalies around punctuation.
	count = 0
	evidence = nil
	for _, re := range spacingAnomalyPatterns {
		matches := re.FindAllStringIndex(text, -1)
		count += len(matches)
		evidence = append(evidence, snippetsN(text, matches, 2)...)
	}
	if len(evidence) > evidenceLimit {
		evidence = evidence[:evidenceLimit]
	}
	results = append(results, models.MarkerResult{
		ID:              "B3",
		Category:        "B",
		Name:            "Spacing Anomalies",
		Count:           count,
		Score:           float64(count) * 5,
		MaxContribution: 50,
		Evidence:        evidence,
		Description:     "Unusual spacing around punctuation or symbols.",
	})
	counts["B3_spacing"] = float64(count)

	// B4 mid-sentence line breaks: newline directly followed by a
	// lowercase letter.
	matches := lineBreakMatches(text)
	count = len(matches)
	results = append(results, models.MarkerResult{
		ID:              "B4",
		Category:        "B",
		Name:            "Line Break Irregularities",
		Count:           count,
		Score:           float64(count) * 3,
		MaxContribution: 30,
		Evidence:        snippets(text, matches),
		Description:     "Unexpected mid-sentence line breaks.",
	})
	counts["B4_line_breaks"] = float64(count)

	// B5 repetitive sentence structures via part-of-speech patterns.
	score = 0
	clusters := 0
	evidence = nil
	if patterns, ok := tagger.SentencePatterns(sentences); ok {
		for i := 0; i+2 < len(patterns); i++ {
			if patterns[i] == "" || patterns[i+1] == "" || patterns[i+2] == "" {
				continue
			}
			sim1 := textdiff.SimilarityRatio(patterns[i], patterns[i+1])
			sim2 := textdiff.SimilarityRatio(patterns[i+1], patterns[i+2])
			if sim1 >= structureSimilarityThreshold && sim2 >= structureSimilarityThreshold {
				clusters++
				score += 10
				if len(evidence) < 3 {
					evidence = append(evidence, models.Evidence{
						Text:  truncate(strings.Join(sentences[i:i+3], " | "), 240),
						Index: i,
					})
				}
			}
		}
	}
	results = append(results, models.MarkerResult{
		ID:              "B5",
		Category:        "B",
		Name:            "Repetitive Sentence Structures",
		Count:           clusters,
		Score:           score,
		MaxContribution: 50,
		Evidence:        evidence,
		Description:     "Consecutive sentences with highly similar structures.",
	})
	counts["B5_repetitive"] = float64(clusters)

	return results
}

func lineBreakMatches(text string) [][]int {
	var matches [][]int
	for i := 1; i < len(text)-1; i++ {
		if text[i] == '\n' && text[i-1] != '\n' && text[i+1] >= 'a' && text[i+1] <= 'z' {
			matches = append(matches, []int{i - 1, i + 1})
		}
	}
	return matches
}

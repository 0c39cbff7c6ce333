package markers

import (
	"fmt"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/pkg/models"
)

var aiFavoriteWordsRE = regexp.MustCompile(`(?i)\b(delve|delving|crucial|crucially|pivotal|multifaceted|nuanced|comprehensive|robust|leverage[sd]?|facilitate[sd]?|utilize[sd]?|landscape|paradigm|synergy|holistic|streamline[sd]?|foster[sd]?|underscores?|realm|encompasses?|intricate|notably|essentially|arguably|proliferation|unprecedented|simultaneously|inadvertently|perpetuate[sd]?|necessitat\w+|optimal|optimiz\w+|genuine|authentic|fundamental\w*|contemporary|methodolog\w+|empirical|demonstrate[sd]?|cohort|disparit\w+|discourse|evolve[sd]?|imperative[s]?|rigor)\b`)

var expandedFormREs = compileTerms(
	"do not", "does not", "did not", "cannot", "will not", "would not",
	"should not", "could not", "is not", "are not", "have not", "has not",
	"it is", "that is",
)

var contractedFormREs = compileTerms(
	"don't", "doesn't", "didn't", "can't", "won't", "wouldn't",
	"shouldn't", "couldn't", "isn't", "aren't", "haven't", "hasn't",
	"it's", "that's",
)

func compileTerms(terms ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(terms))
	for i, term := range terms {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return res
}

// DetectVocabulary runs the category E detectors: vocabulary markers.
func DetectVocabulary(text string, paragraphs []string, counts Counts) []models.MarkerResult {
	var results []models.MarkerResult

	// E1 AI-favored vocabulary, tiered on unique hits with a repetition
	// bonus.
	matches := aiFavoriteWordsRE.FindAllStringIndex(text, -1)
	wordFreq := make(map[string]int)
	for _, m := range matches {
		wordFreq[strings.ToLower(text[m[0]:m[1]])]++
	}
	uniqueCount := len(wordFreq)
	var score float64
	switch {
	case uniqueCount >= 9:
		score = 50
	case uniqueCount >= 6:
		score = 30
	case uniqueCount >= 3:
		score = 15
	}
	for _, freq := range wordFreq {
		if freq >= 3 {
			score += 10
			break
		}
	}
	results = append(results, models.MarkerResult{
		ID:              "E1",
		Category:        "E",
		Name:            "AI-Favorite Words",
		Count:           uniqueCount,
		Score:           score,
		MaxContribution: 70,
		Evidence:        snippets(text, matches),
		Description:     "AI-favored vocabulary words detected.",
	})
	counts["E1_ai_words"] = float64(uniqueCount)

	// E2 contraction avoidance: expanded vs contracted forms.
	lower := strings.ToLower(text)
	expandedCount := 0
	for _, re := range expandedFormREs {
		expandedCount += len(re.FindAllStringIndex(lower, -1))
	}
	contractionCount := 0
	for _, re := range contractedFormREs {
		contractionCount += len(re.FindAllStringIndex(lower, -1))
	}
	total := expandedCount + contractionCount
	score = 0
	var avoidanceRatio float64
	if total > 5 {
		avoidanceRatio = float64(expandedCount) / float64(total)
		if total > 10 {
			switch {
			case avoidanceRatio > 0.9:
				score = 25
			case avoidanceRatio > 0.8:
				score = 15
			case avoidanceRatio > 0.7:
				score = 5
			}
		}
	}
	var evidence []models.Evidence
	if total > 0 {
		evidence = []models.Evidence{{Text: fmt.Sprintf("Avoidance ratio %.2f", avoidanceRatio), Index: 0}}
	}
	results = append(results, models.MarkerResult{
		ID:              "E2",
		Category:        "E",
		Name:            "Contraction Avoidance",
		Count:           total,
		Score:           score,
		MaxContribution: 25,
		Evidence:        evidence,
		Description:     "Preference for expanded forms over contractions.",
	})
	counts["E2_contraction_avoidance"] = avoidanceRatio

	// E3 paragraph-level average word length uniformity.
	var avgLengths []float64
	for _, para := range paragraphs {
		words := document.Words(para)
		if len(words) == 0 {
			continue
		}
		sum := 0
		for _, w := range words {
			sum += len(w)
		}
		avgLengths = append(avgLengths, float64(sum)/float64(len(words)))
	}
	score = 0
	var sd float64
	if len(avgLengths) >= 2 {
		sd = stat.PopStdDev(avgLengths, nil)
		switch {
		case sd < 0.2:
			score = 20
		case sd < 0.3:
			score = 10
		}
	}
	evidence = nil
	if len(avgLengths) > 0 {
		evidence = []models.Evidence{{Text: fmt.Sprintf("Avg word length SD %.2f", sd), Index: 0}}
	}
	e3Count := 0
	if score > 0 {
		e3Count = 1
	}
	results = append(results, models.MarkerResult{
		ID:              "E3",
		Category:        "E",
		Name:            "Vocabulary Sophistication Uniformity",
		Count:           e3Count,
		Score:           score,
		MaxContribution: 20,
		Evidence:        evidence,
		Description:     "Low variability in paragraph word-length averages.",
	})
	counts["E3_vocab_uniformity"] = float64(e3Count)

	return results
}

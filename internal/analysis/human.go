package analysis

import (
	"regexp"

	"gonum.org/v1/gonum/stat"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/internal/nlp"
	"github.com/awarelabs/aware/pkg/models"
)

var (
	personalPronounRE = regexp.MustCompile(`(?i)\b(I|we|my|our|me|us)\b`)
	contractionRE     = regexp.MustCompile(`\b\w+'[a-z]+\b`)
)

// detectHumanIndicators looks for signals of human authorship; each one
// triggered reduces the final score.
func detectHumanIndicators(text string, sentences []string, wordCount int, doc *models.DocumentFeatures, tagger nlp.Tagger) ([]models.HumanIndicator, float64) {
	var indicators []models.HumanIndicator
	reduction := 0.0

	// Frequent small tracked edits look like typo fixes.
	if len(doc.TrackChanges) > 0 {
		smallEdits := 0
		for _, edit := range doc.TrackChanges {
			if edit.WordCount > 0 && edit.WordCount <= 2 {
				smallEdits++
			}
		}
		if smallEdits >= 10 {
			indicators = append(indicators, models.HumanIndicator{
				ID:             "TYPO_PATTERN",
				Description:    "Presence of frequent small corrections.",
				ScoreReduction: 15,
				Rationale:      "Small typo-like edits suggest human revision.",
			})
			reduction += 15
		}
	}

	// Large sentence-length variance.
	var lengths []float64
	for _, s := range sentences {
		if n := document.CountWords(s); n > 0 {
			lengths = append(lengths, float64(n))
		}
	}
	if len(lengths) >= 2 && stat.PopStdDev(lengths, nil) > 12 {
		indicators = append(indicators, models.HumanIndicator{
			ID:             "INCONSISTENT_STYLE",
			Description:    "High variance in sentence lengths.",
			ScoreReduction: 10,
			Rationale:      "Natural variation suggests human writing.",
		})
		reduction += 10
	}

	// First-person voice.
	if len(personalPronounRE.FindAllString(text, -1)) >= 5 {
		indicators = append(indicators, models.HumanIndicator{
			ID:             "PERSONAL_VOICE",
			Description:    "First-person perspective detected.",
			ScoreReduction: 20,
			Rationale:      "Personal voice is less typical of AI output.",
		})
		reduction += 20
	}

	// Dense proper nouns and numbers read as domain expertise.
	properNouns, numbers := tagger.SpecificCounts(text)
	var detailRatio float64
	if wordCount > 0 {
		detailRatio = float64(properNouns+numbers) / float64(wordCount)
	}
	if detailRatio > 0.08 {
		indicators = append(indicators, models.HumanIndicator{
			ID:             "DOMAIN_EXPERTISE",
			Description:    "High density of specific names or numbers.",
			ScoreReduction: 15,
			Rationale:      "Specific domain details suggest human expertise.",
		})
		reduction += 15
	}

	// Contractions above 2% of words.
	contractionCount := len(contractionRE.FindAllString(text, -1))
	if wordCount > 0 && float64(contractionCount)/float64(wordCount) > 0.02 {
		indicators = append(indicators, models.HumanIndicator{
			ID:             "COLLOQUIALISMS",
			Description:    "Frequent contractions and informal phrasing.",
			ScoreReduction: 10,
			Rationale:      "Colloquial tone suggests human writing.",
		})
		reduction += 10
	}

	return indicators, reduction
}

package markers

import (
	"fmt"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/pkg/models"
)

var listItemRE = regexp.MustCompile(`^\d+\.`)

// DetectMacroStructure runs the category F detectors: document-level
// structural patterns.
func DetectMacroStructure(text string, paragraphs []string, sentences []string, counts Counts) []models.MarkerResult {
	var results []models.MarkerResult

	// F1 paragraph length uniformity via the coefficient of variation.
	var paraLengths []float64
	for _, para := range paragraphs {
		if n := document.CountWords(para); n > 0 {
			paraLengths = append(paraLengths, float64(n))
		}
	}
	var score, cv float64
	if len(paraLengths) >= 2 {
		mean := stat.Mean(paraLengths, nil)
		sd := stat.PopStdDev(paraLengths, nil)
		if mean > 0 {
			cv = sd / mean
		}
		switch {
		case cv < 0.15:
			score = 25
		case cv < 0.25:
			score = 15
		case cv < 0.35:
			score = 5
		}
	}
	var evidence []models.Evidence
	if len(paraLengths) > 0 {
		evidence = []models.Evidence{{Text: fmt.Sprintf("Paragraph length CV %.2f", cv), Index: 0}}
	}
	f1Count := 0
	if score > 0 {
		f1Count = 1
	}
	results = append(results, models.MarkerResult{
		ID:              "F1",
		Category:        "F",
		Name:            "Paragraph Length Uniformity",
		Count:           f1Count,
		Score:           score,
		MaxContribution: 25,
		Evidence:        evidence,
		Description:     "Paragraph lengths show unusually low variance.",
	})
	counts["F1_para_uniformity"] = float64(f1Count)

	// F2 perfect parallel structures: runs of four or more sentences that
	// open with the same three tokens.
	patterns := make([]string, len(sentences))
	for i, sent := range sentences {
		tokens := document.Words(strings.ToLower(sent))
		if len(tokens) > 3 {
			tokens = tokens[:3]
		}
		patterns[i] = strings.Join(tokens, " ")
	}
	score = 0
	sets := 0
	evidence = nil
	for i := 0; i < len(patterns); {
		if patterns[i] == "" {
			i++
			continue
		}
		start := i
		for i < len(patterns) && patterns[i] == patterns[start] {
			i++
		}
		if i-start >= 4 {
			sets++
			score += 10
			if len(evidence) < 3 {
				evidence = append(evidence, models.Evidence{
					Text:  truncate(strings.Join(sentences[start:i], " | "), 240),
					Index: start,
				})
			}
		}
	}
	results = append(results, models.MarkerResult{
		ID:              "F2",
		Category:        "F",
		Name:            "Perfect Parallel Structures",
		Count:           sets,
		Score:           score,
		MaxContribution: 30,
		Evidence:        evidence,
		Description:     "Multiple list items with identical structure.",
	})
	counts["F2_parallel_structures"] = float64(sets)

	// F3 balanced argument pattern: pros and cons lists of equal size.
	prosCount, consCount := balancedSections(text)
	score = 0
	if prosCount >= 4 && prosCount == consCount {
		score = 15
	}
	evidence = nil
	if score > 0 {
		evidence = []models.Evidence{{Text: fmt.Sprintf("Pros %d vs Cons %d", prosCount, consCount), Index: 0}}
	}
	f3Count := 0
	if score > 0 {
		f3Count = 1
	}
	results = append(results, models.MarkerResult{
		ID:              "F3",
		Category:        "F",
		Name:            "Balanced Argument Pattern",
		Count:           f3Count,
		Score:           score,
		MaxContribution: 15,
		Evidence:        evidence,
		Description:     "Pros and cons lists perfectly balanced.",
	})
	counts["F3_balanced_argument"] = float64(f3Count)

	return results
}

// balancedSections counts bullet items under pros-like and cons-like
// headers.
func balancedSections(text string) (prosCount, consCount int) {
	current := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		header := strings.ToLower(line)
		if strings.HasPrefix(header, "pros") || strings.HasPrefix(header, "advantages") || strings.HasPrefix(header, "benefits") {
			current = "pros"
			continue
		}
		if strings.HasPrefix(header, "cons") || strings.HasPrefix(header, "disadvantages") || strings.HasPrefix(header, "limitations") {
			current = "cons"
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || listItemRE.MatchString(line) {
			switch current {
			case "pros":
				prosCount++
			case "cons":
				consCount++
			}
		}
	}
	return prosCount, consCount
}

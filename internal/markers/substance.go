package markers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/awarelabs/aware/internal/nlp"
	"github.com/awarelabs/aware/pkg/models"
)

var vagueTermREs = compileTermsCI(
	"many studies show",
	"research indicates",
	"experts agree",
	"some researchers",
	"various factors",
	"numerous examples",
	"several aspects",
)

var circularDefinitionRE = regexp.MustCompile(`(?i)\b(\w+)\b\s+(is defined as|refers to|means)\s+([^.]+)`)

var genericStatementREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\w+ is important\b`),
	regexp.MustCompile(`(?i)\b\w+ plays a crucial role\b`),
	regexp.MustCompile(`(?i)\b\w+ has both advantages and disadvantages\b`),
	regexp.MustCompile(`(?i)\b\w+ is a complex topic\b`),
	regexp.MustCompile(`(?i)\b\w+ requires careful consideration\b`),
	regexp.MustCompile(`(?i)\b\w+ is essential for success\b`),
	regexp.MustCompile(`(?i)\b\w+ has become increasingly important\b`),
}

func compileTermsCI(terms ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(terms))
	for i, term := range terms {
		res[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	}
	return res
}

// DetectSubstance runs the category G detectors: content-substance markers.
func DetectSubstance(text string, sentences []string, tagger nlp.Tagger, counts Counts) []models.MarkerResult {
	var results []models.MarkerResult

	// G1 vague quantifiers against specific details (proper nouns and
	// numbers).
	vagueCount := 0
	for _, re := range vagueTermREs {
		vagueCount += len(re.FindAllStringIndex(text, -1))
	}
	properNouns, numbers := tagger.SpecificCounts(text)
	specificItems := properNouns + numbers
	ratio := float64(vagueCount) / float64(specificItems+1)
	var score float64
	switch {
	case ratio > 3.0:
		score = 25
	case ratio > 2.0:
		score = 15
	case ratio > 1.0:
		score = 5
	}
	var evidence []models.Evidence
	if vagueCount > 0 {
		evidence = []models.Evidence{{Text: fmt.Sprintf("Vague/specific ratio %.2f", ratio), Index: 0}}
	}
	results = append(results, models.MarkerResult{
		ID:              "G1",
		Category:        "G",
		Name:            "Lack of Specific Examples",
		Count:           vagueCount,
		Score:           score,
		MaxContribution: 25,
		Evidence:        evidence,
		Description:     "High ratio of vague quantifiers to specific details.",
	})
	counts["G1_lack_specifics"] = ratio

	// G2 circular definitions: the defined term reappears inside its own
	// definition.
	var circular []string
	for _, sent := range sentences {
		m := circularDefinitionRE.FindStringSubmatch(sent)
		if m == nil {
			continue
		}
		subject := strings.ToLower(m[1])
		definition := strings.ToLower(m[3])
		if strings.Contains(definition, subject) {
			circular = append(circular, sent)
		}
	}
	evidence = nil
	for i, sent := range circular {
		if i >= evidenceLimit {
			break
		}
		evidence = append(evidence, models.Evidence{Text: truncate(sent, 160), Index: i})
	}
	results = append(results, models.MarkerResult{
		ID:              "G2",
		Category:        "G",
		Name:            "Circular Definitions",
		Count:           len(circular),
		Score:           float64(len(circular)) * 15,
		MaxContribution: 30,
		Evidence:        evidence,
		Description:     "Definitions that reuse the term being defined.",
	})
	counts["G2_circular_definitions"] = float64(len(circular))

	// G3 generic statements without substance.
	count := 0
	evidence = nil
	for _, re := range genericStatementREs {
		matches := re.FindAllStringIndex(text, -1)
		count += len(matches)
		evidence = append(evidence, snippetsN(text, matches, 2)...)
	}
	if len(evidence) > evidenceLimit {
		evidence = evidence[:evidenceLimit]
	}
	results = append(results, models.MarkerResult{
		ID:              "G3",
		Category:        "G",
		Name:            "Generic Statements",
		Count:           count,
		Score:           float64(count) * 3,
		MaxContribution: 30,
		Evidence:        evidence,
		Description:     "Generic statements that lack concrete substance.",
	})
	counts["G3_generic_statements"] = float64(count)

	return results
}

package markers

import (
	"regexp"
	"unicode/utf8"

	"github.com/awarelabs/aware/pkg/models"
)

var (
	emDashRE        = regexp.MustCompile(`—|--`)
	subSuperRE      = regexp.MustCompile(`[₀₁₂₃₄₅₆₇₈₉⁰¹²³⁴⁵⁶⁷⁸⁹ⁿ⁺⁻⁼⁽⁾]`)
	straightQuoteRE = regexp.MustCompile(`["']`)
	smartQuoteRE    = regexp.MustCompile(`[“”‘’]`)
)

// DetectFormatting runs the category A detectors: formatting red flags.
func DetectFormatting(text string, wordCount int, paragraphs []string, counts Counts) []models.MarkerResult {
	var results []models.MarkerResult

	// A1 em-dash usage, tiered.
	matches := emDashRE.FindAllStringIndex(text, -1)
	count := len(matches)
	var score float64
	switch {
	case count <= 2:
		score = 0
	case count <= 5:
		score = float64(count-2) * 15
	default:
		score = 45 + float64(count-5)*20
	}
	results = append(results, models.MarkerResult{
		ID:              "A1",
		Category:        "A",
		Name:            "Em-Dash Usage",
		Count:           count,
		Score:           score,
		MaxContribution: 150,
		Evidence:        snippets(text, matches),
		Description:     "Excessive em-dash usage can indicate AI-generated text.",
	})
	counts["A1_em_dash"] = float64(count)

	// A2 colon/semicolon density, normalized per 500 words.
	matches = colonSemicolonMatches(text)
	count = len(matches)
	score = 0
	if wordCount > 0 {
		density := float64(count) / float64(wordCount) * 500
		excess := density - 1.0
		if excess < 0 {
			excess = 0
		}
		score = excess * 10 * (float64(wordCount) / 500)
	}
	results = append(results, models.MarkerResult{
		ID:              "A2",
		Category:        "A",
		Name:            "Colon/Semicolon Density",
		Count:           count,
		Score:           score,
		MaxContribution: 100,
		Evidence:        snippets(text, matches),
		Description:     "Unusually high colon/semicolon density in running text.",
	})
	counts["A2_colon_semicolon"] = float64(count)

	// A3 Unicode sub/superscript characters.
	matches = subSuperRE.FindAllStringIndex(text, -1)
	count = len(matches)
	results = append(results, models.MarkerResult{
		ID:              "A3",
		Category:        "A",
		Name:            "Unicode Sub/Superscripts",
		Count:           count,
		Score:           float64(count) * 25,
		MaxContribution: 150,
		Evidence:        snippets(text, matches),
		Description:     "Unicode sub/superscripts used instead of proper formatting.",
	})
	counts["A3_unicode_subscript"] = float64(count)

	// A4 paragraphs mixing straight and smart quotes.
	clusters := 0
	var evidence []models.Evidence
	if straightQuoteRE.MatchString(text) && smartQuoteRE.MatchString(text) {
		for i, para := range paragraphs {
			if straightQuoteRE.MatchString(para) && smartQuoteRE.MatchString(para) {
				clusters++
				if len(evidence) < evidenceLimit {
					evidence = append(evidence, models.Evidence{Text: truncate(para, 160), Index: i})
				}
			}
		}
	}
	results = append(results, models.MarkerResult{
		ID:              "A4",
		Category:        "A",
		Name:            "Mixed Quotation Styles",
		Count:           clusters,
		Score:           float64(clusters) * 5,
		MaxContribution: 50,
		Evidence:        evidence,
		Description:     "Mixed straight and smart quotes in the same document.",
	})
	counts["A4_mixed_quotes"] = float64(clusters)

	return results
}

// colonSemicolonMatches finds colons and semicolons in running text,
// skipping time-like and ratio-like usages (digit before, or digit/slash
// after).
func colonSemicolonMatches(text string) [][]int {
	var matches [][]int
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != ':' && c != ';' {
			continue
		}
		if i > 0 {
			prev, _ := utf8.DecodeLastRuneInString(text[:i])
			if prev >= '0' && prev <= '9' {
				continue
			}
		}
		if i+1 < len(text) {
			next, _ := utf8.DecodeRuneInString(text[i+1:])
			if (next >= '0' && next <= '9') || next == '/' {
				continue
			}
		}
		matches = append(matches, []int{i, i + 1})
	}
	return matches
}

package markers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/awarelabs/aware/pkg/models"
)

var (
	authorYearCitationRE = regexp.MustCompile(`\([A-Z][A-Za-z]+,?\s+\d{4}\)`)
	numericCitationRE    = regexp.MustCompile(`\[\d+\]`)
	etAlRE               = regexp.MustCompile(`(?i)\bet al\.\b`)
	roundYearRE          = regexp.MustCompile(`\b(2020|2021|2022)\b`)
	resultsHeaderRE      = regexp.MustCompile(`(?i)^\s*(results|findings)\b`)
	anyDigitRE           = regexp.MustCompile(`\d`)
)

var methodologyPhraseREs = compileTermsCI(
	"standard procedures were followed",
	"appropriate statistical methods",
	"conventional techniques",
	"established protocols",
)

var methodologyPhrases = []string{
	"standard procedures were followed",
	"appropriate statistical methods",
	"conventional techniques",
	"established protocols",
}

var qualitativeResultREs = compileTermsCI(
	"showed significant improvement",
	"demonstrated positive results",
	"indicated a trend",
)

// DetectAcademic runs the category I detectors: academic-writing markers.
func DetectAcademic(text string, paragraphs []string, counts Counts) []models.MarkerResult {
	var results []models.MarkerResult

	// I1 citation anomalies: mixed styles, round years, heavy et al. use.
	authorYear := authorYearCitationRE.FindAllString(text, -1)
	numeric := numericCitationRE.FindAllString(text, -1)
	etAl := etAlRE.FindAllString(text, -1)
	roundYears := roundYearRE.FindAllString(text, -1)
	clusters := 0
	var evidence []models.Evidence
	if len(authorYear) > 0 && len(numeric) > 0 {
		clusters++
		evidence = append(evidence, models.Evidence{Text: "Mixed citation styles detected.", Index: 0})
	}
	if len(roundYears) >= 3 {
		clusters++
		evidence = append(evidence, models.Evidence{Text: fmt.Sprintf("Round-year citations: %d", len(roundYears)), Index: 0})
	}
	if len(etAl) >= 3 {
		clusters++
		evidence = append(evidence, models.Evidence{Text: fmt.Sprintf("Et al. usage: %d", len(etAl)), Index: 0})
	}
	results = append(results, models.MarkerResult{
		ID:              "I1",
		Category:        "I",
		Name:            "Citation Anomalies",
		Count:           clusters,
		Score:           float64(clusters) * 15,
		MaxContribution: 45,
		Evidence:        evidence,
		Description:     "Suspicious or inconsistent citation patterns.",
	})
	counts["I1_citation_anomalies"] = float64(clusters)

	// I2 generic methodology language.
	count := 0
	evidence = nil
	for i, re := range methodologyPhraseREs {
		n := len(re.FindAllStringIndex(text, -1))
		count += n
		if n > 0 {
			evidence = append(evidence, models.Evidence{Text: methodologyPhrases[i], Index: 0})
		}
	}
	var score float64
	switch {
	case count >= 4:
		score = 20
	case count >= 2:
		score = 10
	}
	if len(evidence) > evidenceLimit {
		evidence = evidence[:evidenceLimit]
	}
	results = append(results, models.MarkerResult{
		ID:              "I2",
		Category:        "I",
		Name:            "Generic Methodology",
		Count:           count,
		Score:           score,
		MaxContribution: 20,
		Evidence:        evidence,
		Description:     "Vague methodology language without specific details.",
	})
	counts["I2_generic_method"] = float64(count)

	// I3 results section described qualitatively with no numbers.
	score = 0
	foundResults := -1
	for i, para := range paragraphs {
		if resultsHeaderRE.MatchString(para) {
			foundResults = i
			break
		}
	}
	var section []string
	if foundResults >= 0 {
		end := foundResults + 5
		if end > len(paragraphs) {
			end = len(paragraphs)
		}
		section = paragraphs[foundResults:end]
		sectionText := strings.Join(section, " ")
		if !anyDigitRE.MatchString(sectionText) {
			for _, re := range qualitativeResultREs {
				if re.MatchString(sectionText) {
					score = 15
					break
				}
			}
		}
	}
	evidence = nil
	if score > 0 && len(section) > 0 {
		evidence = []models.Evidence{{Text: truncate(section[0], 160), Index: foundResults}}
	}
	i3Count := 0
	if score > 0 {
		i3Count = 1
	}
	results = append(results, models.MarkerResult{
		ID:              "I3",
		Category:        "I",
		Name:            "Results Without Data",
		Count:           i3Count,
		Score:           score,
		MaxContribution: 15,
		Evidence:        evidence,
		Description:     "Results described qualitatively without quantitative data.",
	})
	counts["I3_results_no_data"] = float64(i3Count)

	return results
}

package markers

import (
	"fmt"
	"time"

	"github.com/awarelabs/aware/pkg/models"
)

// DetectArtifacts runs the category H detectors: document artifacts from
// metadata, styling, and hidden characters.
func DetectArtifacts(doc *models.DocumentFeatures, wordCount int, counts Counts) []models.MarkerResult {
	var results []models.MarkerResult
	text := doc.Text

	// H1 abrupt font changes.
	clusters := doc.FontInfo.Clusters
	var evidence []models.Evidence
	if clusters > 0 {
		evidence = []models.Evidence{{Text: fmt.Sprintf("Font change clusters: %d", clusters), Index: 0}}
	}
	results = append(results, models.MarkerResult{
		ID:              "H1",
		Category:        "H",
		Name:            "Font Inconsistencies",
		Count:           clusters,
		Score:           float64(clusters) * 10,
		MaxContribution: 40,
		Evidence:        evidence,
		Description:     "Abrupt font changes in the document.",
	})
	counts["H1_font_inconsistent"] = float64(clusters)

	// H2 mixed heading, list, or spacing styles.
	inconsistencies := 0
	evidence = nil
	if len(doc.StyleInfo.HeadingStyles) > 1 {
		inconsistencies++
		evidence = append(evidence, models.Evidence{Text: "Multiple heading styles detected.", Index: 0})
	}
	if len(doc.StyleInfo.ListStyles) > 1 {
		inconsistencies++
		evidence = append(evidence, models.Evidence{Text: "Multiple list styles detected.", Index: 0})
	}
	if len(doc.StyleInfo.SpacingValues) > 1 {
		inconsistencies++
		evidence = append(evidence, models.Evidence{Text: "Paragraph spacing inconsistencies detected.", Index: 0})
	}
	results = append(results, models.MarkerResult{
		ID:              "H2",
		Category:        "H",
		Name:            "Style Inconsistencies",
		Count:           inconsistencies,
		Score:           float64(inconsistencies) * 5,
		MaxContribution: 25,
		Evidence:        evidence,
		Description:     "Mixed heading, list, or spacing styles.",
	})
	counts["H2_style_inconsistent"] = float64(inconsistencies)

	// H3 metadata timing anomalies for large documents.
	anomalies := 0
	var score float64
	evidence = nil
	if wordCount > 5000 && doc.Metadata.Revision != nil && *doc.Metadata.Revision < 3 {
		anomalies++
		score += 20
		evidence = append(evidence, models.Evidence{
			Text:  fmt.Sprintf("Low revision count (%d) for large doc.", *doc.Metadata.Revision),
			Index: 0,
		})
	}
	if doc.Metadata.Created != nil && doc.Metadata.Modified != nil &&
		doc.Metadata.Modified.Before(doc.Metadata.Created.Add(10*time.Minute)) &&
		wordCount > 5000 {
		anomalies++
		score += 15
		evidence = append(evidence, models.Evidence{Text: "Modification time close to creation time.", Index: 0})
	}
	results = append(results, models.MarkerResult{
		ID:              "H3",
		Category:        "H",
		Name:            "Metadata Timestamp Anomalies",
		Count:           anomalies,
		Score:           score,
		MaxContribution: 25,
		Evidence:        evidence,
		Description:     "Suspicious metadata timing for large documents.",
	})
	counts["H3_metadata_anomalies"] = float64(anomalies)

	// H5 invisible characters left behind by copy-paste. Characters within
	// five positions of each other count as one cluster.
	matches, positions := invisibleCharMatches(text)
	clusters = 0
	lastPos := -1
	for i := range matches {
		if lastPos < 0 || positions[i]-lastPos > 5 {
			clusters++
		}
		lastPos = positions[i]
	}
	results = append(results, models.MarkerResult{
		ID:              "H5",
		Category:        "H",
		Name:            "Clipboard Artifacts",
		Count:           clusters,
		Score:           float64(clusters) * 10,
		MaxContribution: 40,
		Evidence:        snippets(text, matches),
		Description:     "Unusual whitespace or hidden characters from copy-paste.",
	})
	counts["H5_clipboard_artifacts"] = float64(clusters)

	return results
}

// invisibleCharMatches returns byte spans and rune positions of zero-width
// and non-breaking characters.
func invisibleCharMatches(text string) (matches [][]int, positions []int) {
	pos := 0
	for i, r := range text {
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF', '\u00A0', '\uFFFC':
			matches = append(matches, []int{i, i + len(string(r))})
			positions = append(positions, pos)
		}
		pos++
	}
	return matches, positions
}

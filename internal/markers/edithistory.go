package markers

import (
	"fmt"
	"math"
	"sort"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/internal/textdiff"
	"github.com/awarelabs/aware/pkg/models"
)

// DetectEditHistory runs the category C detectors: edit-history evidence.
// All markers return zero when the original document or track changes are
// absent.
func DetectEditHistory(text string, wordCount int, doc *models.DocumentFeatures, original *models.DocumentFeatures, counts Counts) []models.MarkerResult {
	var results []models.MarkerResult

	// C1 extent of edit against the pre-edit original.
	var eoe, score float64
	if original != nil {
		originalWords := document.Words(original.Text)
		editedWords := document.Words(text)
		changed := textdiff.ChangedWords(originalWords, editedWords)
		if wordCount > 0 {
			eoe = float64(changed) / float64(wordCount) * 100
		}
		if eoe > 100 {
			score = 30 + math.Floor((eoe-100)/10)*5
		}
	}
	var evidence []models.Evidence
	if eoe > 0 {
		evidence = []models.Evidence{{Text: fmt.Sprintf("EoE %.1f%%", eoe), Index: 0}}
	}
	c1Count := 0
	if eoe > 100 {
		c1Count = 1
	}
	results = append(results, models.MarkerResult{
		ID:              "C1",
		Category:        "C",
		Name:            "Extent of Edit",
		Count:           c1Count,
		Score:           score,
		MaxContribution: 80,
		Evidence:        evidence,
		Description:     "Comparison of original vs edited extent of changes.",
	})
	counts["C1_eoe"] = eoe

	// C2 large inserted chunks (>50 words) in the track changes.
	var largeChunks []models.TrackChange
	for _, edit := range doc.TrackChanges {
		if edit.Type == models.EditInsertion && edit.WordCount > 50 {
			largeChunks = append(largeChunks, edit)
		}
	}
	evidence = nil
	for _, edit := range largeChunks {
		if len(evidence) >= evidenceLimit {
			break
		}
		evidence = append(evidence, models.Evidence{Text: truncate(edit.Text, 160), Index: edit.ParagraphIndex})
	}
	results = append(results, models.MarkerResult{
		ID:              "C2",
		Category:        "C",
		Name:            "Large Inserted Chunks",
		Count:           len(largeChunks),
		Score:           float64(len(largeChunks)) * 20,
		MaxContribution: 100,
		Evidence:        evidence,
		Description:     "Large inserted text blocks without granular edits.",
	})
	counts["C2_large_chunks"] = float64(len(largeChunks))

	// C3 editing time against an expected 1,000 words per hour.
	score = 0
	var ratio float64
	hasRatio := false
	if doc.Metadata.EditingMinutes != nil && wordCount > 0 {
		expectedHours := float64(wordCount) / 1000
		actualHours := float64(*doc.Metadata.EditingMinutes) / 60
		if expectedHours > 0 {
			ratio = actualHours / expectedHours
		}
		hasRatio = true
		switch {
		case ratio < 0.3:
			score = 30
		case ratio < 0.5:
			score = 15
		case ratio < 0.7:
			score = 5
		}
	}
	evidence = nil
	if hasRatio {
		evidence = []models.Evidence{{Text: fmt.Sprintf("Edit time ratio %.2f", ratio), Index: 0}}
	}
	c3Count := 0
	if score > 0 {
		c3Count = 1
	}
	results = append(results, models.MarkerResult{
		ID:              "C3",
		Category:        "C",
		Name:            "Editing Time Analysis",
		Count:           c3Count,
		Score:           score,
		MaxContribution: 30,
		Evidence:        evidence,
		Description:     "Editing time compared to expected human editing speed.",
	})
	counts["C3_edit_time_ratio"] = ratio

	// C4 edit concentration: top two of ten position buckets holding more
	// than 60% of edits.
	score = 0
	clustered := false
	if len(doc.TrackChanges) > 0 && len(doc.Paragraphs) > 0 {
		segments := make([]int, 10)
		totalParas := len(doc.Paragraphs)
		if totalParas < 1 {
			totalParas = 1
		}
		for _, edit := range doc.TrackChanges {
			if edit.ParagraphIndex < 0 {
				continue
			}
			segment := edit.ParagraphIndex * 10 / totalParas
			if segment > 9 {
				segment = 9
			}
			segments[segment]++
		}
		totalEdits := 0
		for _, n := range segments {
			totalEdits += n
		}
		if totalEdits > 0 {
			sorted := append([]int(nil), segments...)
			sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
			topTwo := sorted[0] + sorted[1]
			if float64(topTwo)/float64(totalEdits) > 0.6 {
				clustered = true
				score = 15
			}
		}
	}
	evidence = nil
	if clustered {
		evidence = []models.Evidence{{Text: "Edits clustered in small document segments.", Index: 0}}
	}
	c4Count := 0
	if clustered {
		c4Count = 1
	}
	results = append(results, models.MarkerResult{
		ID:              "C4",
		Category:        "C",
		Name:            "Edit Cluster Analysis",
		Count:           c4Count,
		Score:           score,
		MaxContribution: 15,
		Evidence:        evidence,
		Description:     "High concentration of edits in limited sections.",
	})
	counts["C4_clustered"] = float64(c4Count)

	return results
}

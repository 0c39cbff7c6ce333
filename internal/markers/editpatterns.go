package markers

import (
	"fmt"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/pkg/models"
)

// DetectEditPatterns runs the category J detectors: tracked-edit patterns.
// Both markers score zero when the document carries no track changes.
func DetectEditPatterns(doc *models.DocumentFeatures, paragraphs []string, counts Counts) []models.MarkerResult {
	var results []models.MarkerResult
	edits := doc.TrackChanges
	totalParas := len(paragraphs)
	if totalParas < 1 {
		totalParas = 1
	}

	// J1 wholesale replacement: paragraphs where tracked edits cover more
	// than half the words.
	rewrittenParas := 0
	if len(edits) > 0 {
		paraWordCounts := make([]int, len(paragraphs))
		for i, para := range paragraphs {
			paraWordCounts[i] = document.CountWords(para)
		}
		editsByPara := make(map[int]int)
		for _, edit := range edits {
			if edit.ParagraphIndex < 0 {
				continue
			}
			editsByPara[edit.ParagraphIndex] += edit.WordCount
		}
		for idx, editWords := range editsByPara {
			totalWords := 0
			if idx < len(paraWordCounts) {
				totalWords = paraWordCounts[idx]
			}
			if totalWords > 0 && float64(editWords)/float64(totalWords) > 0.5 {
				rewrittenParas++
			}
		}
	}
	rewriteRatio := float64(rewrittenParas) / float64(totalParas)
	var score float64
	switch {
	case rewriteRatio > 0.8:
		score = 35
	case rewriteRatio > 0.6:
		score = 20
	case rewriteRatio > 0.4:
		score = 10
	}
	var evidence []models.Evidence
	if len(edits) > 0 {
		evidence = []models.Evidence{{Text: fmt.Sprintf("Rewrite ratio %.2f", rewriteRatio), Index: 0}}
	}
	results = append(results, models.MarkerResult{
		ID:              "J1",
		Category:        "J",
		Name:            "Wholesale Replacement Pattern",
		Count:           rewrittenParas,
		Score:           score,
		MaxContribution: 35,
		Evidence:        evidence,
		Description:     "Large percentage of paragraphs rewritten.",
	})
	counts["J1_wholesale"] = float64(rewrittenParas)

	// J2 edit granularity: share of edits at sentence scale (20+ words)
	// rather than word scale.
	sentenceLevel := 0
	totalEdits := 0
	for _, edit := range edits {
		if edit.WordCount == 0 {
			continue
		}
		totalEdits++
		if edit.WordCount >= 20 {
			sentenceLevel++
		}
	}
	var ratio float64
	if totalEdits > 0 {
		ratio = float64(sentenceLevel) / float64(totalEdits)
	}
	score = 0
	switch {
	case ratio > 0.7:
		score = 25
	case ratio > 0.5:
		score = 15
	}
	evidence = nil
	if len(edits) > 0 {
		evidence = []models.Evidence{{Text: fmt.Sprintf("Sentence-level edit ratio %.2f", ratio), Index: 0}}
	}
	results = append(results, models.MarkerResult{
		ID:              "J2",
		Category:        "J",
		Name:            "Edit Granularity",
		Count:           sentenceLevel,
		Score:           score,
		MaxContribution: 25,
		Evidence:        evidence,
		Description:     "High ratio of sentence-level edits vs word-level edits.",
	})
	counts["J2_edit_granularity"] = ratio

	return results
}

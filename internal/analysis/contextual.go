package analysis

import (
	"github.com/awarelabs/aware/internal/markers"
	"github.com/awarelabs/aware/internal/stats"
	"github.com/awarelabs/aware/pkg/models"
)

type contextualResult struct {
	Adjustments     []models.ContextualAdjustment
	TotalAdjustment float64
	AdjustedScore   float64
}

// contextualAdjustments reduces false positives from document context.
// Academic prose is naturally formal; very short documents carry weak
// signal; long ones carry strong signal.
func contextualAdjustments(baseScore float64, documentType string, wordCount int, counts markers.Counts) contextualResult {
	var adjustments []models.ContextualAdjustment
	value := 0.0

	if documentType == "academic" {
		formalMarkers := counts["D2_formal_transitions"]
		if formalMarkers > 0 && formalMarkers <= 4 {
			adjustments = append(adjustments, models.ContextualAdjustment{
				Reason:     "Academic writing naturally uses formal transitions",
				Adjustment: -5,
			})
			value -= 5
		}
		if counts["I1_citation_anomalies"] <= 1 {
			adjustments = append(adjustments, models.ContextualAdjustment{
				Reason:     "Citation patterns appear reasonable for academic work",
				Adjustment: -3,
			})
			value -= 3
		}
	}

	if wordCount < 300 {
		adjustments = append(adjustments, models.ContextualAdjustment{
			Reason:     "Very short document - patterns less reliable",
			Adjustment: -5,
		})
		value -= 5
	} else if wordCount > 5000 {
		adjustments = append(adjustments, models.ContextualAdjustment{
			Reason:     "Long document - patterns more reliable",
			Adjustment: 3,
		})
		value += 3
	}

	adjusted := baseScore + value
	if adjusted < 0 {
		adjusted = 0
	}
	if adjusted > 100 {
		adjusted = 100
	}

	return contextualResult{
		Adjustments:     adjustments,
		TotalAdjustment: value,
		AdjustedScore:   stats.Round2(adjusted),
	}
}

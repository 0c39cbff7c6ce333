package analysis

import "github.com/awarelabs/aware/pkg/models"

// classifyRisk maps a score to its risk band, then floors the band upward
// when several formatting markers fired.
func classifyRisk(score float64, highConfidenceMarkers int) models.Classification {
	var classification models.Classification
	switch {
	case score <= 15:
		classification = models.ClassMinimal
	case score <= 35:
		classification = models.ClassLow
	case score <= 55:
		classification = models.ClassModerate
	case score <= 75:
		classification = models.ClassHigh
	default:
		classification = models.ClassCritical
	}

	if highConfidenceMarkers >= 3 && (classification == models.ClassMinimal || classification == models.ClassLow) {
		classification = models.ClassModerate
	}
	if highConfidenceMarkers >= 5 && classification == models.ClassModerate {
		classification = models.ClassHigh
	}

	return classification
}

// applyCompositeOverride raises the classification to the highest
// auto-classify label among triggered composites. It never lowers it.
func applyCompositeOverride(classification models.Classification, composites []models.CompositeMatch) models.Classification {
	for _, comp := range composites {
		if comp.AutoClassify.Rank() >= 0 {
			classification = models.MaxClassification(classification, comp.AutoClassify)
		}
	}
	return classification
}

func recommendationFor(classification models.Classification) string {
	switch classification {
	case models.ClassMinimal, models.ClassLow:
		return "Low probability of AI use. No action needed; monitor only and document evidence."
	case models.ClassModerate:
		return "Medium probability of AI use. Manual review recommended; investigate and offer re-edit if needed."
	case models.ClassHigh:
		return "High probability of AI use. Investigation required with remediation planning."
	}
	return "Critical probability of AI use. Immediate escalation and remediation required."
}

package analysis

import (
	"testing"

	"github.com/awarelabs/aware/internal/markers"
)

func TestBayesianAdjustment_NoEvidenceLowersScore(t *testing.T) {
	result := bayesianAdjustment(50, markers.Counts{}, "general", 1500)

	// With zero formatting markers the posterior falls below the prior.
	if result.AdjustedScore >= 50 {
		t.Errorf("expected score reduced, got %v", result.AdjustedScore)
	}
	if result.PriorProbability != 30 {
		t.Errorf("expected general prior 30%%, got %v", result.PriorProbability)
	}
	if result.Confidence != 1.0 {
		t.Errorf("expected full confidence for long doc, got %v", result.Confidence)
	}
}

func TestBayesianAdjustment_StrongEvidenceRaisesScore(t *testing.T) {
	counts := markers.Counts{
		"A1_em_dash":           6,
		"A2_colon_semicolon":   4,
		"A3_unicode_subscript": 1,
		"A4_mixed_quotes":      2,
		"A5_other":             1,
	}
	result := bayesianAdjustment(40, counts, "academic", 2000)

	if result.AdjustedScore <= 40 {
		t.Errorf("expected score raised, got %v", result.AdjustedScore)
	}
	if result.PriorProbability != 15 {
		t.Errorf("expected academic prior 15%%, got %v", result.PriorProbability)
	}
	if result.LikelihoodRatio != 19 {
		t.Errorf("expected likelihood ratio 19, got %v", result.LikelihoodRatio)
	}
}

func TestBayesianAdjustment_ScoreCeiling(t *testing.T) {
	counts := markers.Counts{
		"A1_em_dash": 6, "A2_colon_semicolon": 4, "A3_unicode_subscript": 1,
		"A4_mixed_quotes": 2, "A5_other": 1,
	}
	result := bayesianAdjustment(95, counts, "general", 2000)
	if result.AdjustedScore > 100 {
		t.Errorf("expected ceiling at 100, got %v", result.AdjustedScore)
	}
}

func TestBayesianAdjustment_ShortDocConfidence(t *testing.T) {
	result := bayesianAdjustment(10, markers.Counts{}, "general", 200)
	if result.Confidence != 0.6 {
		t.Errorf("expected confidence 0.6 under 300 words, got %v", result.Confidence)
	}
}

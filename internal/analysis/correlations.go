package analysis

import (
	"fmt"
	"strconv"

	"github.com/awarelabs/aware/internal/markers"
	"github.com/awarelabs/aware/pkg/models"
)

const correlationBonusCap = 50

type correlationPattern struct {
	markers    []string
	thresholds []float64
	name       string
	bonus      float64
}

// Strong patterns first, then moderate ones; matches are reported in this
// order.
var correlationPatterns = []correlationPattern{
	{
		markers:    []string{"A1_em_dash", "D2_formal_transitions", "E1_ai_words"},
		thresholds: []float64{3, 2, 3},
		name:       "Formal AI Writing Pattern",
		bonus:      15,
	},
	{
		markers:    []string{"F1_para_uniformity", "G1_lack_specifics", "D1_hedging_overuse"},
		thresholds: []float64{1, 1.5, 2},
		name:       "Generic Content Pattern",
		bonus:      20,
	},
	{
		markers:    []string{"B1_transitional", "B2_enumeration", "F2_parallel_structures"},
		thresholds: []float64{4, 1, 1},
		name:       "Structured AI Pattern",
		bonus:      18,
	},
	{
		markers:    []string{"E2_contraction_avoidance", "E1_ai_words", "D2_formal_transitions"},
		thresholds: []float64{0.7, 4, 2},
		name:       "Overly Formal Pattern",
		bonus:      12,
	},
	{
		markers:    []string{"E3_vocab_uniformity", "D4_sentence_uniformity"},
		thresholds: []float64{1, 1},
		name:       "Overall Uniformity",
		bonus:      10,
	},
	{
		markers:    []string{"I1_citation_anomalies", "I2_generic_method"},
		thresholds: []float64{1, 2},
		name:       "Academic Red Flags",
		bonus:      15,
	},
}

// PatternCorrelations scores combinations of markers that reinforce each
// other. Every marker in a pattern must meet its threshold for the pattern
// to trigger.
func PatternCorrelations(counts markers.Counts) models.CorrelationReport {
	var matches []models.CorrelationMatch
	score := 0.0
	for _, pattern := range correlationPatterns {
		present := make([]string, 0, len(pattern.markers))
		allMet := true
		for i, key := range pattern.markers {
			value := counts[key]
			if value < pattern.thresholds[i] {
				allMet = false
				break
			}
			present = append(present, fmt.Sprintf("%s=%s", key, strconv.FormatFloat(value, 'g', -1, 64)))
		}
		if allMet {
			matches = append(matches, models.CorrelationMatch{
				PatternName: pattern.name,
				Markers:     present,
				BonusScore:  pattern.bonus,
			})
			score += pattern.bonus
		}
	}
	if score > correlationBonusCap {
		score = correlationBonusCap
	}
	return models.CorrelationReport{
		CorrelationPatterns: matches,
		CorrelationBonus:    score,
		PatternCount:        len(matches),
	}
}

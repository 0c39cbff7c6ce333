package analysis

import (
	"github.com/awarelabs/aware/internal/markers"
	"github.com/awarelabs/aware/pkg/models"
)

// compositeBonusCap bounds the total bonus from triggered composite
// patterns.
const compositeBonusCap = 50

type compositeCondition struct {
	key   string
	op    string // empty means any non-zero value
	value float64
}

type compositePattern struct {
	id           string
	name         string
	conditions   []compositeCondition
	bonus        float64
	autoClassify models.Classification
	description  string
}

var compositePatterns = []compositePattern{
	{
		id:   "SMOKING_GUN_1",
		name: "Copy-Paste Signature",
		conditions: []compositeCondition{
			{key: "A1_em_dash", op: ">=", value: 5},
			{key: "H5_clipboard_artifacts"},
			{key: "J4_time_gap"},
		},
		bonus:        50,
		autoClassify: models.ClassHigh,
		description:  "Multiple em-dashes + clipboard artifacts + suspicious timing",
	},
	{
		id:   "SMOKING_GUN_2",
		name: "AI Writing Style Bundle",
		conditions: []compositeCondition{
			{key: "E1_ai_words", op: ">=", value: 5},
			{key: "B1_transitional", op: ">=", value: 4},
			{key: "F1_para_uniformity"},
		},
		bonus:        40,
		autoClassify: models.ClassHigh,
		description:  "AI vocabulary + transitional patterns + uniform structure",
	},
	{
		id:   "SMOKING_GUN_3",
		name: "Wholesale Replacement Evidence",
		conditions: []compositeCondition{
			{key: "C1_eoe", op: ">", value: 100},
			{key: "C2_large_chunks", op: ">=", value: 2},
			{key: "J1_wholesale"},
		},
		bonus:        60,
		autoClassify: models.ClassCritical,
		description:  "High EoE + large chunk insertions + wholesale edit pattern",
	},
	{
		id:   "SUSPICIOUS_COMBO_1",
		name: "Academic AI Pattern",
		conditions: []compositeCondition{
			{key: "G1_lack_specifics"},
			{key: "I2_generic_method", op: ">=", value: 2},
			{key: "D1_hedging_overuse", op: ">=", value: 2},
		},
		bonus:        25,
		autoClassify: models.ClassModerate,
		description:  "Vague content + generic methodology + excessive hedging",
	},
	{
		id:   "SUSPICIOUS_COMBO_2",
		name: "Format Inconsistency Bundle",
		conditions: []compositeCondition{
			{key: "H1_font_inconsistent"},
			{key: "H2_style_inconsistent"},
			{key: "H5_clipboard_artifacts"},
		},
		bonus:        30,
		autoClassify: models.ClassModerate,
		description:  "Multiple formatting artifacts suggesting external paste",
	},
}

// CompositePatterns evaluates the cross-category smoking-gun patterns and
// returns the triggered matches with their total bonus, capped.
func CompositePatterns(counts markers.Counts) ([]models.CompositeMatch, float64) {
	var matches []models.CompositeMatch
	bonus := 0.0
	for _, pattern := range compositePatterns {
		if !allConditionsMet(pattern.conditions, counts) {
			continue
		}
		matches = append(matches, models.CompositeMatch{
			Pattern:      pattern.id,
			Name:         pattern.name,
			Bonus:        pattern.bonus,
			AutoClassify: pattern.autoClassify,
			Description:  pattern.description,
		})
		bonus += pattern.bonus
	}
	if bonus > compositeBonusCap {
		bonus = compositeBonusCap
	}
	return matches, bonus
}

func allConditionsMet(conditions []compositeCondition, counts markers.Counts) bool {
	for _, cond := range conditions {
		if !evaluateCondition(cond, counts) {
			return false
		}
	}
	return true
}

func evaluateCondition(cond compositeCondition, counts markers.Counts) bool {
	current := counts[cond.key]
	switch cond.op {
	case "":
		return current != 0
	case ">=":
		return current >= cond.value
	case ">":
		return current > cond.value
	case "<=":
		return current <= cond.value
	case "==":
		return current == cond.value
	}
	return false
}

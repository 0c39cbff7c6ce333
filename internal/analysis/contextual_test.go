package analysis

import (
	"testing"

	"github.com/awarelabs/aware/internal/markers"
)

func TestContextualAdjustments_Academic(t *testing.T) {
	counts := markers.Counts{
		"D2_formal_transitions": 3,
		"I1_citation_anomalies": 0,
	}
	result := contextualAdjustments(50, "academic", 1500, counts)

	// Both academic reductions apply: -5 and -3.
	if result.TotalAdjustment != -8 {
		t.Errorf("expected total adjustment -8, got %v", result.TotalAdjustment)
	}
	if result.AdjustedScore != 42 {
		t.Errorf("expected adjusted score 42, got %v", result.AdjustedScore)
	}
	if len(result.Adjustments) != 2 {
		t.Errorf("expected 2 adjustments, got %d", len(result.Adjustments))
	}
}

func TestContextualAdjustments_DocumentLength(t *testing.T) {
	short := contextualAdjustments(20, "general", 200, markers.Counts{})
	if short.TotalAdjustment != -5 {
		t.Errorf("expected -5 for short doc, got %v", short.TotalAdjustment)
	}

	long := contextualAdjustments(20, "general", 6000, markers.Counts{})
	if long.TotalAdjustment != 3 {
		t.Errorf("expected +3 for long doc, got %v", long.TotalAdjustment)
	}

	mid := contextualAdjustments(20, "general", 2000, markers.Counts{})
	if mid.TotalAdjustment != 0 {
		t.Errorf("expected no adjustment for mid-length doc, got %v", mid.TotalAdjustment)
	}
}

func TestContextualAdjustments_FloorAtZero(t *testing.T) {
	result := contextualAdjustments(2, "general", 100, markers.Counts{})
	if result.AdjustedScore != 0 {
		t.Errorf("expected floor at 0, got %v", result.AdjustedScore)
	}
}

func TestDocumentType(t *testing.T) {
	academic := "Abstract. Introduction. The methodology section presents results and discussion with references."
	if got := DocumentType(academic); got != "academic" {
		t.Errorf("expected academic, got %s", got)
	}

	business := "Executive summary for stakeholder review: ROI targets, KPI dashboards, and quarterly deliverable milestones."
	if got := DocumentType(business); got != "business" {
		t.Errorf("expected business, got %s", got)
	}

	if got := DocumentType("Just a plain note about nothing in particular."); got != "general" {
		t.Errorf("expected general, got %s", got)
	}
}

package markers

import (
	"strings"
	"testing"
)

func TestDetectVocabulary_AIWordTiers(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
		wantScore float64
	}{
		{"below threshold", "We delve into the crucial details.", 2, 0},
		{"first tier", "We delve into crucial and pivotal details.", 3, 15},
		{
			"second tier",
			"We delve into crucial, pivotal, multifaceted, nuanced, and robust details.",
			6, 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := make(Counts)
			results := DetectVocabulary(tt.text, nil, counts)

			e1 := results[0]
			if e1.ID != "E1" {
				t.Fatalf("expected E1 first, got %s", e1.ID)
			}
			if e1.Count != tt.wantCount {
				t.Errorf("expected %d unique AI words, got %d", tt.wantCount, e1.Count)
			}
			if e1.Score != tt.wantScore {
				t.Errorf("expected score %.1f, got %.1f", tt.wantScore, e1.Score)
			}
		})
	}
}

func TestDetectVocabulary_RepetitionBonus(t *testing.T) {
	text := "Crucial points. Crucial facts. Crucial data. Also pivotal and nuanced."
	counts := make(Counts)
	results := DetectVocabulary(text, nil, counts)

	e1 := results[0]
	// Three unique words hit the 15-point tier and "crucial" repeats three
	// times for the bonus.
	if e1.Score != 25 {
		t.Errorf("expected score 25, got %.1f", e1.Score)
	}
}

func TestDetectVocabulary_ContractionAvoidance(t *testing.T) {
	text := strings.Repeat("It is true that we do not know. ", 6)
	counts := make(Counts)
	results := DetectVocabulary(text, nil, counts)

	e2 := results[1]
	if e2.ID != "E2" {
		t.Fatalf("expected E2 second, got %s", e2.ID)
	}
	if e2.Count != 12 {
		t.Errorf("expected 12 total forms, got %d", e2.Count)
	}
	// All expanded, none contracted: full avoidance.
	if e2.Score != 25 {
		t.Errorf("expected score 25, got %.1f", e2.Score)
	}
	if counts["E2_contraction_avoidance"] != 1 {
		t.Errorf("expected avoidance ratio 1, got %v", counts["E2_contraction_avoidance"])
	}
}

package markers

import (
	"testing"

	"github.com/awarelabs/aware/internal/nlp"
)

func TestDetectSubstance_CircularDefinitions(t *testing.T) {
	sentences := []string{
		"Education means the process of education in schools.",
		"Photosynthesis refers to how plants convert light into energy.",
	}
	counts := make(Counts)
	results := DetectSubstance("", sentences, nlp.RegexTagger{}, counts)

	g2 := results[1]
	if g2.ID != "G2" {
		t.Fatalf("expected G2 second, got %s", g2.ID)
	}
	if g2.Count != 1 {
		t.Errorf("expected 1 circular definition, got %d", g2.Count)
	}
	if g2.Score != 15 {
		t.Errorf("expected score 15, got %.1f", g2.Score)
	}
}

func TestDetectSubstance_GenericStatements(t *testing.T) {
	text := "Technology is important. Communication plays a crucial role. Privacy is a complex topic."
	counts := make(Counts)
	results := DetectSubstance(text, nil, nlp.RegexTagger{}, counts)

	g3 := results[2]
	if g3.Count != 3 {
		t.Errorf("expected 3 generic statements, got %d", g3.Count)
	}
	if g3.Score != 9 {
		t.Errorf("expected score 9, got %.1f", g3.Score)
	}
}

func TestDetectSubstance_VagueRatio(t *testing.T) {
	// Many vague quantifiers against almost no specifics.
	text := "many studies show things. research indicates stuff. experts agree broadly. various factors apply."
	counts := make(Counts)
	results := DetectSubstance(text, nil, nlp.RegexTagger{}, counts)

	g1 := results[0]
	if g1.Count != 4 {
		t.Errorf("expected 4 vague phrases, got %d", g1.Count)
	}
	if g1.Score != 25 {
		t.Errorf("expected score 25 for ratio above 3, got %.1f", g1.Score)
	}
}

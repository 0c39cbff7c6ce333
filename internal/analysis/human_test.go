package analysis

import (
	"strings"
	"testing"

	"github.com/awarelabs/aware/internal/nlp"
	"github.com/awarelabs/aware/pkg/models"
)

func TestDetectHumanIndicators_PersonalVoice(t *testing.T) {
	text := "I think we should go. My plan needs our approval, so tell me what us folks decide."
	doc := &models.DocumentFeatures{Text: text}
	indicators, reduction := detectHumanIndicators(text, nil, 200, doc, nlp.RegexTagger{})

	found := false
	for _, ind := range indicators {
		if ind.ID == "PERSONAL_VOICE" {
			found = true
			if ind.ScoreReduction != 20 {
				t.Errorf("expected reduction 20, got %v", ind.ScoreReduction)
			}
		}
	}
	if !found {
		t.Fatal("expected PERSONAL_VOICE indicator")
	}
	if reduction < 20 {
		t.Errorf("expected total reduction at least 20, got %v", reduction)
	}
}

func TestDetectHumanIndicators_TypoPattern(t *testing.T) {
	edits := make([]models.TrackChange, 12)
	for i := range edits {
		edits[i] = models.TrackChange{Type: models.EditDeletion, WordCount: 1, ParagraphIndex: i}
	}
	doc := &models.DocumentFeatures{TrackChanges: edits}
	indicators, _ := detectHumanIndicators("neutral text", nil, 500, doc, nlp.RegexTagger{})

	found := false
	for _, ind := range indicators {
		if ind.ID == "TYPO_PATTERN" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected TYPO_PATTERN indicator for many small edits")
	}
}

func TestDetectHumanIndicators_Colloquialisms(t *testing.T) {
	text := strings.Repeat("don't can't won't ", 5) + "plus a few plain words"
	doc := &models.DocumentFeatures{Text: text}
	indicators, _ := detectHumanIndicators(text, nil, 20, doc, nlp.RegexTagger{})

	found := false
	for _, ind := range indicators {
		if ind.ID == "COLLOQUIALISMS" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected COLLOQUIALISMS indicator")
	}
}

func TestDetectHumanIndicators_NoneForNeutralText(t *testing.T) {
	doc := &models.DocumentFeatures{Text: "the quick brown fox jumps over the lazy dog"}
	indicators, reduction := detectHumanIndicators(doc.Text, nil, 9, doc, nlp.RegexTagger{})
	if len(indicators) != 0 || reduction != 0 {
		t.Errorf("expected no indicators, got %+v (reduction %v)", indicators, reduction)
	}
}

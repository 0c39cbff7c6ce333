package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/internal/markers"
	"github.com/awarelabs/aware/internal/nlp"
	"github.com/awarelabs/aware/pkg/models"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(nlp.RegexTagger{}, nlp.RegexSegmenter{})
}

func TestAnalyze_ResultShape(t *testing.T) {
	doc := document.ParseText("A plain paragraph of ordinary text for the analyzer.", "note.txt")
	result := newTestAnalyzer().Analyze(doc, nil)

	if len(result.Categories) != len(markers.Categories) {
		t.Fatalf("expected %d categories, got %d", len(markers.Categories), len(result.Categories))
	}
	wantMarkers := map[string]int{
		"A": 4, "B": 5, "C": 4, "D": 4, "E": 3, "F": 3, "G": 3, "H": 4, "I": 3, "J": 2,
	}
	for cat, want := range wantMarkers {
		got, ok := result.Categories[cat]
		if !ok {
			t.Fatalf("missing category %s", cat)
		}
		if len(got.Markers) != want {
			t.Errorf("category %s: expected %d markers, got %d", cat, want, len(got.Markers))
		}
	}
	if result.Classification.Rank() < 0 {
		t.Errorf("invalid classification %s", result.Classification)
	}
	if result.Recommendation == "" {
		t.Error("expected a recommendation")
	}
	if result.Meta.AnalysisID == "" || result.Meta.Version == "" {
		t.Errorf("incomplete meta: %+v", result.Meta)
	}
	if result.Meta.Document.DocumentType != "general" {
		t.Errorf("expected general document type, got %s", result.Meta.Document.DocumentType)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := strings.Repeat(
		"Furthermore, the comprehensive framework leverages robust methodology. "+
			"Moreover, it is important to note that the multifaceted landscape evolved. ", 10)
	doc := document.ParseText(text, "sample.txt")

	a := newTestAnalyzer()
	first := a.Analyze(doc, nil)
	second := a.Analyze(doc, nil)

	// Identity and timestamp differ per run; everything else must not.
	first.Meta.AnalysisID, second.Meta.AnalysisID = "", ""
	first.Meta.Timestamp, second.Meta.Timestamp = "", ""

	b1, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b2, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b1) != string(b2) {
		t.Error("expected identical results for identical input")
	}
}

func TestAnalyze_MarkerScoresCapped(t *testing.T) {
	// A wall of em-dashes would raw-score far beyond the marker cap.
	text := strings.Repeat("word — word — word. ", 40)
	doc := document.ParseText(text, "dashes.txt")
	result := newTestAnalyzer().Analyze(doc, nil)

	for cat, entry := range result.Categories {
		for _, m := range entry.Markers {
			if m.Score > m.MaxContribution {
				t.Errorf("marker %s score %.1f above cap %.1f", m.ID, m.Score, m.MaxContribution)
			}
		}
		if entry.Score > markers.Caps[cat] {
			t.Errorf("category %s score %.1f above cap %.1f", cat, entry.Score, markers.Caps[cat])
		}
	}
}

func TestAnalyze_EmptyDocumentScoresZero(t *testing.T) {
	doc := document.ParseText("", "empty.txt")
	result := newTestAnalyzer().Analyze(doc, nil)

	if result.Score != 0 {
		t.Errorf("expected score 0 for empty document, got %v", result.Score)
	}
	if result.Classification != models.ClassMinimal {
		t.Errorf("expected MINIMAL, got %s", result.Classification)
	}
	for cat, entry := range result.Categories {
		if entry.Score != 0 {
			t.Errorf("category %s: expected score 0, got %v", cat, entry.Score)
		}
	}
	if result.ScoringBreakdown.CompositeBonus != 0 {
		t.Errorf("expected composite bonus 0, got %v", result.ScoringBreakdown.CompositeBonus)
	}
	if result.ScoringBreakdown.BaseScore != 0 {
		t.Errorf("expected base score 0, got %v", result.ScoringBreakdown.BaseScore)
	}
	if result.Confidence == "HIGH" {
		t.Errorf("expected reduced confidence for empty document, got %s", result.Confidence)
	}
}

func TestAnalyze_ScoreWithinBounds(t *testing.T) {
	texts := []string{
		"",
		"One word.",
		strings.Repeat("The delve crucial robust comprehensive landscape paradigm. ", 50),
	}
	for _, text := range texts {
		doc := document.ParseText(text, "t.txt")
		result := newTestAnalyzer().Analyze(doc, nil)
		if result.Score < 0 || result.Score > 100 {
			t.Errorf("score out of bounds: %v", result.Score)
		}
		if result.ScoringBreakdown.FinalScore != result.Score {
			t.Errorf("breakdown final %v disagrees with score %v",
				result.ScoringBreakdown.FinalScore, result.Score)
		}
	}
}

func TestAnalyze_AIStyleBundleTriggersComposite(t *testing.T) {
	// Uniform paragraphs stuffed with AI vocabulary and transition openers.
	para := "Furthermore, the comprehensive system leverages robust multifaceted paradigms. " +
		"Moreover, the pivotal landscape underscores nuanced synergy throughout."
	text := strings.Join([]string{para, para, para, para}, "\n\n")
	doc := document.ParseText(text, "bundle.txt")
	result := newTestAnalyzer().Analyze(doc, nil)

	var bundle *models.CompositeMatch
	for i := range result.CompositePatterns {
		if result.CompositePatterns[i].Pattern == "SMOKING_GUN_2" {
			bundle = &result.CompositePatterns[i]
		}
	}
	if bundle == nil {
		t.Fatalf("expected AI Writing Style Bundle, got %+v", result.CompositePatterns)
	}
	// The bundle auto-classifies at least HIGH.
	if result.Classification.Rank() < models.ClassHigh.Rank() {
		t.Errorf("expected at least HIGH, got %s", result.Classification)
	}
}

func TestAnalyze_EvidenceTiedToMarkers(t *testing.T) {
	doc := document.ParseText("Dashes — everywhere — in — this — text — today.", "d.txt")
	result := newTestAnalyzer().Analyze(doc, nil)

	if len(result.Evidence) == 0 {
		t.Fatal("expected evidence entries")
	}
	for _, e := range result.Evidence {
		if e.MarkerID == "" || e.Text == "" {
			t.Errorf("incomplete evidence entry: %+v", e)
		}
	}
}

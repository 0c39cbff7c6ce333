package markers

import (
	"strings"
	"testing"
)

func TestDetectFormatting_EmDashTiers(t *testing.T) {
	tests := []struct {
		name      string
		dashes    int
		wantScore float64
	}{
		{"under threshold", 2, 0},
		{"mid tier", 4, 30},
		{"high tier", 7, 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "Some text " + strings.Repeat("word — ", tt.dashes)
			counts := make(Counts)
			results := DetectFormatting(text, 20, nil, counts)

			a1 := results[0]
			if a1.ID != "A1" {
				t.Fatalf("expected A1 first, got %s", a1.ID)
			}
			if a1.Count != tt.dashes {
				t.Errorf("expected count %d, got %d", tt.dashes, a1.Count)
			}
			if a1.Score != tt.wantScore {
				t.Errorf("expected score %.1f, got %.1f", tt.wantScore, a1.Score)
			}
			if counts["A1_em_dash"] != float64(tt.dashes) {
				t.Errorf("expected A1_em_dash count %d, got %v", tt.dashes, counts["A1_em_dash"])
			}
		})
	}
}

func TestDetectFormatting_ColonSkipsTimesAndRatios(t *testing.T) {
	text := "Meeting at 3:30 today; the ratio is 2:1 and the URL is http://x"
	counts := make(Counts)
	results := DetectFormatting(text, 13, nil, counts)

	a2 := results[1]
	if a2.ID != "A2" {
		t.Fatalf("expected A2 second, got %s", a2.ID)
	}
	// "3:30" and "2:1" are time/ratio-like, "http://x" has a slash after the
	// colon. Only the semicolon counts.
	if a2.Count != 1 {
		t.Errorf("expected 1 colon/semicolon hit, got %d", a2.Count)
	}
}

func TestDetectFormatting_MixedQuotes(t *testing.T) {
	paragraphs := []string{
		`He said "hello" and then “goodbye” in one breath.`,
		`No quotes here.`,
	}
	text := strings.Join(paragraphs, "\n\n")
	counts := make(Counts)
	results := DetectFormatting(text, 15, paragraphs, counts)

	a4 := results[3]
	if a4.ID != "A4" {
		t.Fatalf("expected A4 fourth, got %s", a4.ID)
	}
	if a4.Count != 1 {
		t.Errorf("expected 1 mixed-quote paragraph, got %d", a4.Count)
	}
	if a4.Score != 5 {
		t.Errorf("expected score 5, got %.1f", a4.Score)
	}
}

func TestDetectFormatting_UnicodeSubscripts(t *testing.T) {
	counts := make(Counts)
	results := DetectFormatting("H₂O and x² are common", 5, nil, counts)

	a3 := results[2]
	if a3.Count != 2 {
		t.Errorf("expected 2 sub/superscript chars, got %d", a3.Count)
	}
	if a3.Score != 50 {
		t.Errorf("expected score 50, got %.1f", a3.Score)
	}
}

package stats

import (
	"strings"
	"testing"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"hello", 2},
		{"the", 1},
		{"beautiful", 3},
		{"code", 1},
		{"a", 1},
		{"rhythm", 1},
	}

	for _, tt := range tests {
		if got := CountSyllables(tt.word); got != tt.want {
			t.Errorf("CountSyllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestReadability_Empty(t *testing.T) {
	r := Readability("", nil)
	if r.FleschReadingEase != 0 || r.ARI != 0 {
		t.Errorf("expected zero metrics for empty input, got %+v", r)
	}
}

func TestReadability_SMOGNeedsThirtySentences(t *testing.T) {
	text := "The complicated examination involves elaborate preparation. "
	short := Readability(strings.Repeat(text, 5), make([]string, 5))
	if short.SMOGIndex != 0 {
		t.Errorf("expected SMOG 0 under 30 sentences, got %v", short.SMOGIndex)
	}

	long := Readability(strings.Repeat(text, 30), make([]string, 30))
	if long.SMOGIndex <= 0 {
		t.Errorf("expected positive SMOG at 30 sentences, got %v", long.SMOGIndex)
	}
}

func TestReadability_GradeNeverNegative(t *testing.T) {
	r := Readability("Go on. Do it. So be it.", []string{"Go on.", "Do it.", "So be it."})
	if r.FleschKincaidGrade < 0 {
		t.Errorf("expected non-negative grade, got %v", r.FleschKincaidGrade)
	}
}

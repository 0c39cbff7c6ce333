package textdiff

import "testing"

func TestChangedWords(t *testing.T) {
	tests := []struct {
		name     string
		original []string
		edited   []string
		want     int
	}{
		{"identical", []string{"a", "b", "c"}, []string{"a", "b", "c"}, 0},
		{"one replaced", []string{"a", "b", "c"}, []string{"a", "x", "c"}, 1},
		{"insertion", []string{"a", "c"}, []string{"a", "b", "c"}, 1},
		{"deletion", []string{"a", "b", "c"}, []string{"a", "c"}, 1},
		{"full rewrite", []string{"a", "b"}, []string{"x", "y", "z"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChangedWords(tt.original, tt.edited); got != tt.want {
				t.Errorf("ChangedWords() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSimilarityRatio(t *testing.T) {
	if got := SimilarityRatio("abc", "abc"); got != 1 {
		t.Errorf("expected 1 for identical strings, got %v", got)
	}
	if got := SimilarityRatio("", "abc"); got != 0 {
		t.Errorf("expected 0 for empty input, got %v", got)
	}
	if got := SimilarityRatio("abc", "xyz"); got != 0 {
		t.Errorf("expected 0 for disjoint strings, got %v", got)
	}
	mid := SimilarityRatio("NN VB DT", "NN VB JJ")
	if mid <= 0.5 || mid >= 1 {
		t.Errorf("expected partial similarity, got %v", mid)
	}
}

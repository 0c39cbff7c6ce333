package markers

import (
	"testing"

	"github.com/awarelabs/aware/internal/nlp"
)

func TestDetectStructure_TransitionalSentences(t *testing.T) {
	sentences := []string{
		"Furthermore, the results improved.",
		"Moreover, the costs dropped.",
		"The team celebrated.",
	}
	counts := make(Counts)
	results := DetectStructure("", 11, sentences, nlp.RegexTagger{}, counts)

	b1 := results[0]
	if b1.ID != "B1" {
		t.Fatalf("expected B1 first, got %s", b1.ID)
	}
	if b1.Count != 2 {
		t.Errorf("expected 2 transitional sentences, got %d", b1.Count)
	}
	if b1.Score <= 0 {
		t.Errorf("expected positive score, got %.2f", b1.Score)
	}
}

func TestDetectStructure_EnumerationRuns(t *testing.T) {
	sentences := []string{
		"Firstly, we plan.",
		"Secondly, we build.",
		"Finally, we ship.",
		"That is all.",
	}
	counts := make(Counts)
	results := DetectStructure("", 12, sentences, nlp.RegexTagger{}, counts)

	b2 := results[1]
	if b2.Count != 1 {
		t.Errorf("expected 1 enumeration sequence, got %d", b2.Count)
	}
	if b2.Score != 12 {
		t.Errorf("expected score 12 for a three-sentence run, got %.1f", b2.Score)
	}
}

func TestLineBreakMatches(t *testing.T) {
	text := "The sentence continues\nhere without punctuation.\n\nNew paragraph."
	matches := lineBreakMatches(text)
	if len(matches) != 1 {
		t.Fatalf("expected 1 mid-sentence break, got %d", len(matches))
	}
}

func TestDetectStructure_RepetitiveNeedsTagger(t *testing.T) {
	sentences := []string{"One two three.", "One two three.", "One two three."}
	counts := make(Counts)
	results := DetectStructure("", 9, sentences, nlp.RegexTagger{}, counts)

	b5 := results[4]
	if b5.ID != "B5" {
		t.Fatalf("expected B5 fifth, got %s", b5.ID)
	}
	// The regex fallback provides no part-of-speech patterns, so the
	// detector degrades to zero.
	if b5.Score != 0 || b5.Count != 0 {
		t.Errorf("expected zero score without tagging, got score %.1f count %d", b5.Score, b5.Count)
	}
}

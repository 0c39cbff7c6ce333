package markers

import (
	"testing"
)

func TestDetectStyle_FormalTransitions(t *testing.T) {
	text := "With regard to the budget, it is evident that costs rose. In terms of scope, nothing changed."
	counts := make(Counts)
	results := DetectStyle(text, 17, nil, counts)

	d2 := results[1]
	if d2.ID != "D2" {
		t.Fatalf("expected D2 second, got %s", d2.ID)
	}
	if d2.Count != 3 {
		t.Errorf("expected 3 formal transitions, got %d", d2.Count)
	}
	if d2.Score != 9 {
		t.Errorf("expected score 9, got %.1f", d2.Score)
	}
}

func TestDetectStyle_SentenceUniformity(t *testing.T) {
	sentences := []string{
		"One two three four five.",
		"Six seven eight nine ten.",
		"More words again five total.",
	}
	counts := make(Counts)
	results := DetectStyle("", 15, sentences, counts)

	d4 := results[3]
	if d4.ID != "D4" {
		t.Fatalf("expected D4 fourth, got %s", d4.ID)
	}
	// All sentences are five words, so the deviation is zero and the raw
	// score is the full (5-0)*10.
	if d4.Score != 50 {
		t.Errorf("expected score 50, got %.1f", d4.Score)
	}
	if counts["D4_sentence_uniformity"] != 1 {
		t.Errorf("expected uniformity flag set, got %v", counts["D4_sentence_uniformity"])
	}
}

func TestDetectStyle_VariedSentencesScoreZero(t *testing.T) {
	sentences := []string{
		"Short one.",
		"This sentence is quite a bit longer than the first one by far and keeps going with many words.",
		"Medium length sentence right here now.",
	}
	counts := make(Counts)
	results := DetectStyle("", 30, sentences, counts)

	d4 := results[3]
	if d4.Score != 0 {
		t.Errorf("expected zero score for varied lengths, got %.1f", d4.Score)
	}
}

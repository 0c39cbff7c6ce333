package stats

import "testing"

func TestEntropy(t *testing.T) {
	if got := Entropy(""); got != 0 {
		t.Errorf("expected 0 for empty text, got %v", got)
	}
	if got := Entropy("aaaa"); got != 0 {
		t.Errorf("expected 0 for single-symbol text, got %v", got)
	}
	// Two symbols, equal frequency: exactly one bit.
	if got := Entropy("abab"); got != 1 {
		t.Errorf("expected 1 bit, got %v", got)
	}
	// Case is folded before counting.
	if got := Entropy("aAaA"); got != 0 {
		t.Errorf("expected 0 after case folding, got %v", got)
	}
}

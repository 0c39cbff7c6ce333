package stats

import (
	"strings"
	"testing"
)

func TestLexicalDiversity_AllUnique(t *testing.T) {
	ld := LexicalDiversity("alpha beta gamma")
	if ld.TypeTokenRatio != 1.0 {
		t.Errorf("expected TTR 1.0, got %v", ld.TypeTokenRatio)
	}
	if ld.HapaxLegomenaRatio != 1.0 {
		t.Errorf("expected hapax ratio 1.0, got %v", ld.HapaxLegomenaRatio)
	}
	if ld.SimpsonIndex != 0.6667 {
		t.Errorf("expected Simpson 0.6667, got %v", ld.SimpsonIndex)
	}
	if ld.YuleK != 0 {
		t.Errorf("expected Yule K 0 for all-unique text, got %v", ld.YuleK)
	}
}

func TestLexicalDiversity_Empty(t *testing.T) {
	ld := LexicalDiversity("")
	if ld.TypeTokenRatio != 0 || ld.MTLD != 0 {
		t.Errorf("expected zero metrics for empty text, got %+v", ld)
	}
}

func TestMTLD_ShortTextIsZero(t *testing.T) {
	words := strings.Fields("one two three four five six seven eight nine ten")
	if got := MTLD(words); got != 0 {
		t.Errorf("expected 0 for under 50 words, got %v", got)
	}
}

func TestMTLD_RepetitiveVsDiverse(t *testing.T) {
	repetitive := make([]string, 100)
	for i := range repetitive {
		repetitive[i] = []string{"the", "cat", "sat"}[i%3]
	}
	diverse := make([]string, 100)
	for i := range diverse {
		diverse[i] = strings.Repeat("w", i+1) // all distinct
	}

	if MTLD(repetitive) >= MTLD(diverse) {
		t.Errorf("expected repetitive MTLD (%v) below diverse MTLD (%v)",
			MTLD(repetitive), MTLD(diverse))
	}
}

package stats

import "testing"

func TestNgramRepetition_RepeatedPhrase(t *testing.T) {
	text := "the cat sat the cat sat the cat sat"
	r := NgramRepetition(text, 3)

	if r.MaxRepetitions != 3 {
		t.Errorf("expected max repetitions 3, got %d", r.MaxRepetitions)
	}
	// Every trigram in this text is repeated.
	if r.RepetitionScore != 100 {
		t.Errorf("expected repetition score 100, got %v", r.RepetitionScore)
	}
	if len(r.RepeatedNgrams) == 0 || r.RepeatedNgrams[0].Ngram != "the cat sat" {
		t.Fatalf("expected top ngram 'the cat sat', got %+v", r.RepeatedNgrams)
	}
	if r.RepeatedNgrams[0].Count != 3 {
		t.Errorf("expected top count 3, got %d", r.RepeatedNgrams[0].Count)
	}
}

func TestNgramRepetition_NoRepeats(t *testing.T) {
	r := NgramRepetition("every single word here is used exactly once only", 3)
	if r.RepetitionScore != 0 || len(r.RepeatedNgrams) != 0 {
		t.Errorf("expected empty result, got %+v", r)
	}
}

func TestNgramRepetition_Deterministic(t *testing.T) {
	text := "a b c a b c d e f d e f g h i g h i"
	first := NgramRepetition(text, 3)
	for i := 0; i < 10; i++ {
		again := NgramRepetition(text, 3)
		for j := range first.RepeatedNgrams {
			if first.RepeatedNgrams[j] != again.RepeatedNgrams[j] {
				t.Fatalf("ordering changed between runs: %+v vs %+v",
					first.RepeatedNgrams, again.RepeatedNgrams)
			}
		}
	}
}

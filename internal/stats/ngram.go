package stats

import (
	"sort"
	"strings"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/pkg/models"
)

// NgramRepetition reports repeated n-gram phrases over the lowercased word
// stream. RepetitionScore is the percentage of n-grams belonging to a
// repeated phrase; the top five repeated phrases are listed by count, ties
// broken by first occurrence.
func NgramRepetition(text string, n int) models.NgramRepetition {
	words := document.Words(strings.ToLower(text))
	if len(words) < n {
		return models.NgramRepetition{}
	}

	totalNgrams := len(words) - n + 1
	freq := make(map[string]int, totalNgrams)
	firstSeen := make(map[string]int, totalNgrams)
	for i := 0; i < totalNgrams; i++ {
		ngram := strings.Join(words[i:i+n], " ")
		if _, ok := freq[ngram]; !ok {
			firstSeen[ngram] = i
		}
		freq[ngram]++
	}

	var repeated []string
	repeatedCount := 0
	maxReps := 0
	for ngram, count := range freq {
		if count > 1 {
			repeated = append(repeated, ngram)
			repeatedCount += count
			if count > maxReps {
				maxReps = count
			}
		}
	}
	if len(repeated) == 0 {
		return models.NgramRepetition{}
	}

	sort.Slice(repeated, func(i, j int) bool {
		if freq[repeated[i]] != freq[repeated[j]] {
			return freq[repeated[i]] > freq[repeated[j]]
		}
		return firstSeen[repeated[i]] < firstSeen[repeated[j]]
	})
	if len(repeated) > 5 {
		repeated = repeated[:5]
	}
	top := make([]models.RepeatedNgram, len(repeated))
	for i, ngram := range repeated {
		top[i] = models.RepeatedNgram{Ngram: ngram, Count: freq[ngram]}
	}

	return models.NgramRepetition{
		RepetitionScore: Round2(float64(repeatedCount) / float64(totalNgrams) * 100),
		RepeatedNgrams:  top,
		MaxRepetitions:  maxReps,
	}
}

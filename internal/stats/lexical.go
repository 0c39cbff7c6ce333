package stats

import (
	"strings"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/pkg/models"
)

const mtldThreshold = 0.72

// LexicalDiversity computes vocabulary richness metrics over the lowercased
// word stream. All metrics are zero for empty text.
func LexicalDiversity(text string) models.LexicalDiversity {
	words := document.Words(strings.ToLower(text))
	if len(words) == 0 {
		return models.LexicalDiversity{}
	}

	wordFreq := make(map[string]int)
	for _, w := range words {
		wordFreq[w]++
	}
	totalWords := len(words)
	uniqueCount := len(wordFreq)

	ttr := float64(uniqueCount) / float64(totalWords)

	// Yule's K, lower means more diverse.
	m1 := float64(totalWords)
	m2 := 0.0
	for _, freq := range wordFreq {
		m2 += float64(freq) * float64(freq)
	}
	yuleK := 10000 * (m2 - m1) / (m1 * m1)

	// Simpson's index, higher means more diverse.
	simpson := 0.0
	if totalWords > 1 {
		sum := 0.0
		for _, freq := range wordFreq {
			p := float64(freq) / float64(totalWords)
			sum += p * p
		}
		simpson = 1 - sum
	}

	hapaxCount := 0
	for _, freq := range wordFreq {
		if freq == 1 {
			hapaxCount++
		}
	}
	hapaxRatio := float64(hapaxCount) / float64(uniqueCount)

	return models.LexicalDiversity{
		TypeTokenRatio:     Round4(ttr),
		YuleK:              Round2(yuleK),
		SimpsonIndex:       Round4(simpson),
		HapaxLegomenaRatio: Round4(hapaxRatio),
		MTLD:               Round2(MTLD(words)),
	}
}

// MTLD is the bidirectional Measure of Textual Lexical Diversity. Texts
// under 50 words score 0.
func MTLD(words []string) float64 {
	if len(words) < 50 {
		return 0
	}
	forward := mtldDirectional(words)
	reversed := make([]string, len(words))
	for i, w := range words {
		reversed[len(words)-1-i] = w
	}
	backward := mtldDirectional(reversed)
	return (forward + backward) / 2
}

func mtldDirectional(words []string) float64 {
	ttr := 1.0
	tokenCount := 0
	typeCount := 0
	types := make(map[string]struct{})
	factorCount := 0.0

	for _, word := range words {
		tokenCount++
		if _, seen := types[word]; !seen {
			typeCount++
			types[word] = struct{}{}
		}
		ttr = float64(typeCount) / float64(tokenCount)
		if ttr <= mtldThreshold {
			factorCount++
			tokenCount = 0
			typeCount = 0
			types = make(map[string]struct{})
		}
	}
	if tokenCount > 0 {
		factorCount += (1 - ttr) / (1 - mtldThreshold)
	}
	if factorCount > 0 {
		return float64(len(words)) / factorCount
	}
	return float64(len(words))
}

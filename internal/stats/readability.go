package stats

import (
	"math"
	"strings"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/pkg/models"
)

// Readability computes six standard readability formulas. SMOG needs at
// least 30 sentences and is 0 below that.
func Readability(text string, sentences []string) models.ReadabilityMetrics {
	words := document.Words(text)
	if len(words) == 0 || len(sentences) == 0 {
		return models.ReadabilityMetrics{}
	}

	totalWords := float64(len(words))
	totalSentences := float64(len(sentences))
	totalSyllables := 0
	complexWords := 0
	characters := 0
	for _, word := range words {
		syl := CountSyllables(word)
		totalSyllables += syl
		if syl >= 3 {
			complexWords++
		}
		characters += len(word)
	}

	avgSentenceLength := totalWords / totalSentences
	avgSyllablesPerWord := float64(totalSyllables) / totalWords

	fleschReadingEase := 206.835 - 1.015*avgSentenceLength - 84.6*avgSyllablesPerWord
	fleschKincaid := 0.39*avgSentenceLength + 11.8*avgSyllablesPerWord - 15.59

	percentComplex := float64(complexWords) / totalWords * 100
	gunningFog := 0.4 * (avgSentenceLength + percentComplex)

	var smog float64
	if len(sentences) >= 30 {
		smog = 1.0430*math.Sqrt(float64(complexWords)*(30/totalSentences)) + 3.1291
	}

	l := float64(characters) / totalWords * 100
	s := totalSentences / totalWords * 100
	colemanLiau := 0.0588*l - 0.296*s - 15.8

	ari := 4.71*(float64(characters)/totalWords) + 0.5*(totalWords/totalSentences) - 21.43

	return models.ReadabilityMetrics{
		FleschReadingEase:  Round2(fleschReadingEase),
		FleschKincaidGrade: Round2(math.Max(0, fleschKincaid)),
		GunningFog:         Round2(gunningFog),
		SMOGIndex:          Round2(smog),
		ColemanLiauIndex:   Round2(colemanLiau),
		ARI:                Round2(ari),
	}
}

// CountSyllables estimates the syllable count of a single word by counting
// vowel groups, with a silent-e adjustment and a floor of one.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

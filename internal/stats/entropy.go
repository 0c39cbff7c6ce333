package stats

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Entropy is the Shannon entropy in bits of the lowercased character
// distribution.
func Entropy(text string) float64 {
	if text == "" {
		return 0
	}
	charFreq := make(map[rune]int)
	for _, r := range strings.ToLower(text) {
		charFreq[r]++
	}
	totalChars := float64(utf8.RuneCountInString(text))

	entropy := 0.0
	for _, count := range charFreq {
		p := float64(count) / totalChars
		entropy -= p * math.Log2(p)
	}
	return Round4(entropy)
}

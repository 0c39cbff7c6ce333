package stats

import (
	"regexp"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/pkg/models"
)

var conjunctionRE = regexp.MustCompile(`\b(and|but|or|while|because|if|when|although)\b`)

// Burstiness measures variation in sentence length and complexity. Human
// writing is bursty; uniform rhythm reads as machine-generated.
func Burstiness(sentences []string) models.Burstiness {
	if len(sentences) < 2 {
		return models.Burstiness{}
	}

	lengths := make([]float64, len(sentences))
	complexities := make([]float64, len(sentences))
	for i, sent := range sentences {
		words := document.Words(sent)
		lengths[i] = float64(len(words))
		if len(words) == 0 {
			continue
		}
		charSum := 0
		for _, w := range words {
			charSum += len(w)
		}
		avgWordLength := float64(charSum) / float64(len(words))
		commaCount := strings.Count(sent, ",")
		conjunctionCount := len(conjunctionRE.FindAllString(strings.ToLower(sent), -1))
		complexities[i] = avgWordLength + float64(commaCount)*2 + float64(conjunctionCount)*1.5
	}

	var burstiness float64
	meanLength := stat.Mean(lengths, nil)
	if meanLength > 0 {
		burstiness = stat.PopStdDev(lengths, nil) / meanLength
	}

	complexityVar := stat.PopStdDev(complexities, nil)

	// Rolling three-sentence windows approximate local perplexity.
	const windowSize = 3
	var localVariances []float64
	for i := 0; i+windowSize <= len(lengths); i++ {
		localVariances = append(localVariances, stat.PopStdDev(lengths[i:i+windowSize], nil))
	}
	var perplexityVar float64
	if len(localVariances) > 0 {
		perplexityVar = stat.Mean(localVariances, nil)
	}

	return models.Burstiness{
		BurstinessScore:     Round4(burstiness),
		PerplexityVariance:  Round2(perplexityVar),
		ComplexityVariation: Round2(complexityVar),
	}
}

package analysis

import (
	"strings"

	"github.com/awarelabs/aware/internal/markers"
	"github.com/awarelabs/aware/internal/stats"
)

// Prior probability of AI assistance per document type.
var documentTypePriors = map[string]float64{
	"academic": 0.15,
	"business": 0.25,
	"general":  0.30,
}

// bayesianResult carries both the adjusted score and the probabilities
// reported in the output.
type bayesianResult struct {
	AdjustedScore        float64
	PosteriorProbability float64
	PriorProbability     float64
	LikelihoodRatio      float64
	Confidence           float64
}

// bayesianAdjustment rescales the score by the posterior-to-prior ratio.
// Evidence strength is the number of formatting (category A) markers that
// fired.
func bayesianAdjustment(baseScore float64, counts markers.Counts, documentType string, wordCount int) bayesianResult {
	prior, ok := documentTypePriors[documentType]
	if !ok {
		prior = 0.25
	}

	highConfidenceMarkers := 0
	for key, val := range counts {
		if strings.HasPrefix(key, "A") && val > 0 {
			highConfidenceMarkers++
		}
	}

	var likelihoodAI, likelihoodHuman float64
	switch {
	case highConfidenceMarkers >= 5:
		likelihoodAI, likelihoodHuman = 0.95, 0.05
	case highConfidenceMarkers >= 3:
		likelihoodAI, likelihoodHuman = 0.80, 0.15
	case highConfidenceMarkers >= 1:
		likelihoodAI, likelihoodHuman = 0.60, 0.35
	default:
		likelihoodAI, likelihoodHuman = 0.30, 0.65
	}

	numerator := likelihoodAI * prior
	denominator := numerator + likelihoodHuman*(1-prior)
	posterior := prior
	if denominator > 0 {
		posterior = numerator / denominator
	}

	adjusted := baseScore * (posterior / prior)
	if adjusted > 100 {
		adjusted = 100
	}

	var confidence float64
	switch {
	case wordCount < 300:
		confidence = 0.6
	case wordCount < 1000:
		confidence = 0.8
	default:
		confidence = 1.0
	}

	likelihoodRatio := 10.0
	if likelihoodHuman > 0 {
		likelihoodRatio = likelihoodAI / likelihoodHuman
	}

	return bayesianResult{
		AdjustedScore:        stats.Round2(adjusted),
		PosteriorProbability: stats.Round2(posterior * 100),
		PriorProbability:     stats.Round2(prior * 100),
		LikelihoodRatio:      stats.Round2(likelihoodRatio),
		Confidence:           confidence,
	}
}

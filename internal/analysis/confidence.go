package analysis

import "github.com/awarelabs/aware/internal/stats"

type confidenceResult struct {
	Score         float64
	Factor        float64
	AdjustedScore float64
}

// adjustForConfidence scales the score by document-length confidence and
// damps high scores backed by fewer than three markers.
func adjustForConfidence(finalScore float64, documentLength, markersFound int) confidenceResult {
	var factor float64
	switch {
	case documentLength < 500:
		factor = 0.7
	case documentLength < 1000:
		factor = 0.85
	default:
		factor = 1.0
	}

	if markersFound < 3 && finalScore > 50 {
		finalScore *= 0.8
	}

	return confidenceResult{
		Score:         stats.Round1(finalScore),
		Factor:        factor,
		AdjustedScore: stats.Round1(finalScore * factor),
	}
}

func confidenceLevel(factor float64) string {
	if factor >= 0.9 {
		return "HIGH"
	}
	if factor >= 0.75 {
		return "MEDIUM"
	}
	return "LOW"
}

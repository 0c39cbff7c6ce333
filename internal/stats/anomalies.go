package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/pkg/models"
)

// DetectAnomalies flags statistical distributions that are too regular for
// human writing: uniform sentence lengths, uniform paragraph lengths, and a
// word-length profile inside the machine-typical band.
func DetectAnomalies(text string, sentences, paragraphs []string) models.AnomalyReport {
	var anomalies []models.Anomaly
	score := 0.0

	// Sentences with almost no length outliers (|z| > 2.5 under 5%).
	var sentLengths []float64
	for _, s := range sentences {
		if n := document.CountWords(s); n > 0 {
			sentLengths = append(sentLengths, float64(n))
		}
	}
	if len(sentLengths) >= 5 {
		meanLen := stat.Mean(sentLengths, nil)
		stdLen := stat.PopStdDev(sentLengths, nil)
		outliers := 0
		if stdLen > 0 {
			for _, length := range sentLengths {
				if math.Abs((length-meanLen)/stdLen) > 2.5 {
					outliers++
				}
			}
		}
		if float64(outliers)/float64(len(sentLengths)) < 0.05 {
			anomalies = append(anomalies, models.Anomaly{
				Type:        "Uniform Sentence Lengths",
				Description: "Unusually consistent sentence lengths",
				Severity:    "medium",
			})
			score += 10
		}
	}

	// Paragraph lengths within a 30% spread of their mean.
	var paraLengths []float64
	for _, p := range paragraphs {
		if n := document.CountWords(p); n > 0 {
			paraLengths = append(paraLengths, float64(n))
		}
	}
	if len(paraLengths) >= 3 {
		minLen, maxLen := paraLengths[0], paraLengths[0]
		for _, l := range paraLengths[1:] {
			if l < minLen {
				minLen = l
			}
			if l > maxLen {
				maxLen = l
			}
		}
		avgLen := stat.Mean(paraLengths, nil)
		if avgLen > 50 && (maxLen-minLen)/avgLen < 0.3 {
			anomalies = append(anomalies, models.Anomaly{
				Type:        "Uniform Paragraph Lengths",
				Description: "Paragraphs are suspiciously similar in length",
				Severity:    "high",
			})
			score += 15
		}
	}

	// Word lengths matching the machine-typical short/long split.
	words := document.Words(text)
	if len(words) >= 50 {
		shortWords, longWords := 0, 0
		for _, w := range words {
			switch {
			case len(w) <= 3:
				shortWords++
			case len(w) >= 8:
				longWords++
			}
		}
		shortRatio := float64(shortWords) / float64(len(words))
		longRatio := float64(longWords) / float64(len(words))
		if shortRatio > 0.35 && shortRatio < 0.45 && longRatio > 0.08 && longRatio < 0.15 {
			anomalies = append(anomalies, models.Anomaly{
				Type:        "Optimal Word Length Distribution",
				Description: "Word lengths follow AI-typical distribution",
				Severity:    "low",
			})
			score += 5
		}
	}

	return models.AnomalyReport{
		Anomalies:    anomalies,
		AnomalyScore: score,
		AnomalyCount: len(anomalies),
	}
}

// Package analysis orchestrates the detection pipeline: marker detection,
// category weighting, composite and correlation bonuses, statistical
// features, Bayesian and contextual rescoring, and final classification.
package analysis

import (
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/internal/markers"
	"github.com/awarelabs/aware/internal/nlp"
	"github.com/awarelabs/aware/internal/stats"
	"github.com/awarelabs/aware/pkg/models"
)

// Version tags every analysis result.
const Version = "2.0_enhanced"

// Analyzer runs the full detection pipeline. It is safe for concurrent use;
// all state lives in the per-call working set.
type Analyzer struct {
	tagger    nlp.Tagger
	segmenter nlp.Segmenter
}

// NewAnalyzer builds an Analyzer around the given part-of-speech capability.
func NewAnalyzer(tagger nlp.Tagger, segmenter nlp.Segmenter) *Analyzer {
	return &Analyzer{tagger: tagger, segmenter: segmenter}
}

// Analyze scores one document. original is the pre-edit version used by the
// edit-history markers; it may be nil.
func (a *Analyzer) Analyze(doc *models.DocumentFeatures, original *models.DocumentFeatures) *models.AnalysisResult {
	text := doc.Text
	paragraphs := doc.Paragraphs
	wordCount := document.CountWords(text)
	sentences := a.segmenter.Sentences(text)
	documentType := DocumentType(text)

	counts := make(markers.Counts)
	var markerResults []models.MarkerResult
	markerResults = append(markerResults, markers.DetectFormatting(text, wordCount, paragraphs, counts)...)
	markerResults = append(markerResults, markers.DetectStructure(text, wordCount, sentences, a.tagger, counts)...)
	markerResults = append(markerResults, markers.DetectEditHistory(text, wordCount, doc, original, counts)...)
	markerResults = append(markerResults, markers.DetectStyle(text, wordCount, sentences, counts)...)
	markerResults = append(markerResults, markers.DetectVocabulary(text, paragraphs, counts)...)
	markerResults = append(markerResults, markers.DetectMacroStructure(text, paragraphs, sentences, counts)...)
	markerResults = append(markerResults, markers.DetectSubstance(text, sentences, a.tagger, counts)...)
	markerResults = append(markerResults, markers.DetectArtifacts(doc, wordCount, counts)...)
	markerResults = append(markerResults, markers.DetectAcademic(text, paragraphs, counts)...)
	markerResults = append(markerResults, markers.DetectEditPatterns(doc, paragraphs, counts)...)

	// Cap each marker at its max contribution, group into categories, and
	// flatten the evidence.
	categoryScores := make(map[string]float64, len(markers.Categories))
	categories := make(map[string]models.CategoryScore, len(markers.Categories))
	for _, cat := range markers.Categories {
		categories[cat] = models.CategoryScore{Markers: []models.MarkerResult{}}
	}
	var evidence []models.EvidenceItem
	for i := range markerResults {
		marker := &markerResults[i]
		if marker.Score > marker.MaxContribution {
			marker.Score = marker.MaxContribution
		}
		categoryScores[marker.Category] += marker.Score
		entry := categories[marker.Category]
		rounded := *marker
		rounded.Score = stats.Round2(marker.Score)
		entry.Markers = append(entry.Markers, rounded)
		categories[marker.Category] = entry
		for _, snippet := range marker.Evidence {
			evidence = append(evidence, models.EvidenceItem{
				MarkerID: marker.ID,
				Text:     snippet.Text,
				Index:    snippet.Index,
			})
		}
	}
	for _, cat := range markers.Categories {
		if categoryScores[cat] > markers.Caps[cat] {
			categoryScores[cat] = markers.Caps[cat]
		}
		entry := categories[cat]
		entry.Score = stats.Round2(categoryScores[cat])
		categories[cat] = entry
	}

	// Weighted base score normalized against the weighted maximum.
	weighted, maxWeighted := 0.0, 0.0
	for _, cat := range markers.Categories {
		weighted += categoryScores[cat] * markers.Weights[cat]
		maxWeighted += markers.Caps[cat] * markers.Weights[cat]
	}
	baseScore := 0.0
	if maxWeighted > 0 {
		baseScore = weighted / maxWeighted * 100
	}

	compositeMatches, compositeBonus := CompositePatterns(counts)
	baseScore = clamp100(baseScore + compositeBonus)

	lexical := stats.LexicalDiversity(text)
	readability := stats.Readability(text, sentences)
	ngrams := stats.NgramRepetition(text, 3)
	burstiness := stats.Burstiness(sentences)
	textEntropy := stats.Entropy(text)
	anomalies := stats.DetectAnomalies(text, sentences, paragraphs)
	correlations := PatternCorrelations(counts)

	baseScore = clamp100(baseScore + correlations.CorrelationBonus)
	baseScore = clamp100(baseScore + anomalies.AnomalyScore)

	// Low diversity, low burstiness, heavy repetition, and low entropy each
	// push the score up. An empty document measures zero on every feature,
	// which is absence of signal, not uniformity.
	if wordCount > 0 {
		if lexical.TypeTokenRatio < 0.35 {
			baseScore += 8
		}
		if lexical.MTLD < 50 {
			baseScore += 12
		}
		if lexical.HapaxLegomenaRatio < 0.25 {
			baseScore += 6
		}
		if burstiness.BurstinessScore < 0.3 {
			baseScore += 10
		}
		if burstiness.ComplexityVariation < 3.0 {
			baseScore += 8
		}
		switch {
		case ngrams.RepetitionScore > 15:
			baseScore += 15
		case ngrams.RepetitionScore > 8:
			baseScore += 8
		}
		if textEntropy < 4.0 {
			baseScore += 10
		}
		readabilitySpread := stat.PopStdDev([]float64{
			readability.FleschKincaidGrade,
			readability.GunningFog,
			readability.ColemanLiauIndex,
		}, nil)
		if readabilitySpread < 2.0 {
			baseScore += 7
		}
	}
	baseScore = clamp100(baseScore)

	humanIndicators, humanReduction := detectHumanIndicators(text, sentences, wordCount, doc, a.tagger)
	baseScore -= humanReduction
	if baseScore < 0 {
		baseScore = 0
	}

	markersFound := 0
	for _, m := range markerResults {
		if m.Score > 0 {
			markersFound++
		}
	}
	confidence := adjustForConfidence(baseScore, wordCount, markersFound)
	adjustedScore := confidence.AdjustedScore

	bayesian := bayesianAdjustment(adjustedScore, counts, documentType, wordCount)
	contextual := contextualAdjustments(bayesian.AdjustedScore, documentType, wordCount, counts)

	// Blend the three scoring views rather than taking the minimum.
	adjustedScore = adjustedScore*0.4 + bayesian.AdjustedScore*0.4 + contextual.AdjustedScore*0.2

	enhancedConfidence := confidence.Factor*0.4 + bayesian.Confidence*0.3 + markerConfidence(markersFound)*0.3
	confidenceLabel := confidenceLevel(enhancedConfidence)

	highConfidenceMarkers := 0
	for _, m := range markerResults {
		if m.Category == "A" && m.Score > 0 {
			highConfidenceMarkers++
		}
	}
	classification := classifyRisk(adjustedScore, highConfidenceMarkers)
	classification = applyCompositeOverride(classification, compositeMatches)

	return &models.AnalysisResult{
		Score:             stats.Round1(adjustedScore),
		Classification:    classification,
		Confidence:        confidenceLabel,
		Categories:        categories,
		CompositePatterns: compositeMatches,
		HumanIndicators:   humanIndicators,
		Evidence:          evidence,
		Recommendation:    recommendationFor(classification),
		AdvancedAnalysis: models.AdvancedAnalysis{
			LexicalDiversity:     lexical,
			ReadabilityMetrics:   readability,
			NgramRepetition:      ngrams,
			Burstiness:           burstiness,
			TextEntropy:          textEntropy,
			StatisticalAnomalies: anomalies,
			PatternCorrelations:  correlations,
			BayesianAnalysis: models.BayesianAnalysis{
				PosteriorProbability: bayesian.PosteriorProbability,
				PriorProbability:     bayesian.PriorProbability,
				LikelihoodRatio:      bayesian.LikelihoodRatio,
			},
			ContextualAdjustments: contextual.Adjustments,
		},
		ScoringBreakdown: models.ScoringBreakdown{
			BaseScore:          stats.Round1(baseScore),
			CompositeBonus:     compositeBonus,
			CorrelationBonus:   correlations.CorrelationBonus,
			AnomalyBonus:       anomalies.AnomalyScore,
			HumanReduction:     humanReduction,
			BayesianAdjusted:   stats.Round1(bayesian.AdjustedScore),
			ContextualAdjusted: stats.Round1(contextual.AdjustedScore),
			FinalScore:         stats.Round1(adjustedScore),
		},
		Meta: models.Meta{
			AnalysisID: uuid.NewString(),
			Timestamp:  time.Now().UTC().Format("2006-01-02T15:04:05.000000") + "Z",
			Version:    Version,
			Document: models.DocumentStats{
				Filename:        doc.Filename,
				WordCount:       wordCount,
				ParagraphCount:  len(paragraphs),
				SentenceCount:   len(sentences),
				DocumentType:    documentType,
				HasOriginal:     original != nil,
				HasTrackChanges: len(doc.TrackChanges) > 0,
				HasTimingData:   doc.Metadata.EditingMinutes != nil,
			},
		},
	}
}

func markerConfidence(markersFound int) float64 {
	if markersFound >= 5 {
		return 1.0
	}
	return 0.7
}

func clamp100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

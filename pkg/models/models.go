package models

import (
	"time"
)

// DocumentFeatures is the parsed, read-only view of one document that the
// analysis pipeline consumes. Text and Paragraphs are always present; every
// other field is optional and contributes nothing when absent.
type DocumentFeatures struct {
	Filename     string
	Text         string
	Paragraphs   []string
	Metadata     DocumentMetadata
	TrackChanges []TrackChange
	FontInfo     FontInfo
	StyleInfo    StyleInfo
	FileType     string
}

// DocumentMetadata carries office-document properties. Nil pointers mean the
// property was missing or unparsable upstream.
type DocumentMetadata struct {
	Created        *time.Time
	Modified       *time.Time
	Revision       *int
	EditingMinutes *int
}

// Track change edit kinds.
const (
	EditInsertion = "ins"
	EditDeletion  = "del"
)

// TrackChange is a single tracked edit extracted from a document.
// ParagraphIndex is -1 when the owning paragraph could not be determined.
type TrackChange struct {
	Type           string `json:"type"`
	WordCount      int    `json:"word_count"`
	ParagraphIndex int    `json:"paragraph_index"`
	Text           string `json:"text"`
}

// FontInfo summarizes font usage across a document's runs.
type FontInfo struct {
	Clusters   int            `json:"clusters"`
	Dominant   string         `json:"dominant,omitempty"`
	FontCounts map[string]int `json:"font_counts,omitempty"`
}

// StyleInfo summarizes paragraph styling variety.
type StyleInfo struct {
	HeadingStyles []string  `json:"heading_styles,omitempty"`
	ListStyles    []string  `json:"list_styles,omitempty"`
	SpacingValues []float64 `json:"spacing_values,omitempty"`
}

// Evidence is a snippet of source text supporting a marker.
type Evidence struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// MarkerResult is the output of one heuristic detector. Score is clamped to
// MaxContribution before category aggregation.
type MarkerResult struct {
	ID              string     `json:"id"`
	Category        string     `json:"-"`
	Name            string     `json:"name"`
	Count           int        `json:"count"`
	Score           float64    `json:"score"`
	MaxContribution float64    `json:"max_contribution"`
	Evidence        []Evidence `json:"evidence"`
	Description     string     `json:"description"`
}

// CategoryScore is the capped, summed score of one marker category.
type CategoryScore struct {
	Score   float64        `json:"score"`
	Markers []MarkerResult `json:"markers"`
}

// CompositeMatch is a triggered cross-category pattern.
type CompositeMatch struct {
	Pattern      string         `json:"pattern"`
	Name         string         `json:"name"`
	Bonus        float64        `json:"bonus"`
	AutoClassify Classification `json:"auto_classify"`
	Description  string         `json:"description"`
}

// HumanIndicator is a triggered human-authorship signal that reduces the
// final score.
type HumanIndicator struct {
	ID             string  `json:"id"`
	Description    string  `json:"description"`
	ScoreReduction float64 `json:"score_reduction"`
	Rationale      string  `json:"rationale"`
}

// EvidenceItem is a flattened evidence snippet tied back to its marker.
type EvidenceItem struct {
	MarkerID string `json:"marker_id"`
	Text     string `json:"text"`
	Index    int    `json:"index"`
}

// Classification is the ordinal risk label assigned to a document.
type Classification string

const (
	ClassMinimal  Classification = "MINIMAL"
	ClassLow      Classification = "LOW"
	ClassModerate Classification = "MODERATE"
	ClassHigh     Classification = "HIGH"
	ClassCritical Classification = "CRITICAL"
)

var classificationOrder = []Classification{
	ClassMinimal, ClassLow, ClassModerate, ClassHigh, ClassCritical,
}

// Rank returns the position of c in the ordinal sequence MINIMAL..CRITICAL,
// or -1 for an unknown label.
func (c Classification) Rank() int {
	for i, label := range classificationOrder {
		if label == c {
			return i
		}
	}
	return -1
}

// MaxClassification returns the higher of two classifications.
func MaxClassification(a, b Classification) Classification {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// LexicalDiversity holds vocabulary richness metrics.
type LexicalDiversity struct {
	TypeTokenRatio     float64 `json:"type_token_ratio"`
	YuleK              float64 `json:"yule_k"`
	SimpsonIndex       float64 `json:"simpson_index"`
	HapaxLegomenaRatio float64 `json:"hapax_legomena_ratio"`
	MTLD               float64 `json:"mtld"`
}

// ReadabilityMetrics holds the standard readability formulas.
type ReadabilityMetrics struct {
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	GunningFog         float64 `json:"gunning_fog"`
	SMOGIndex          float64 `json:"smog_index"`
	ColemanLiauIndex   float64 `json:"coleman_liau_index"`
	ARI                float64 `json:"ari"`
}

// RepeatedNgram is one repeated n-gram with its occurrence count.
type RepeatedNgram struct {
	Ngram string `json:"ngram"`
	Count int    `json:"count"`
}

// NgramRepetition summarizes repeated phrase patterns.
type NgramRepetition struct {
	RepetitionScore float64         `json:"repetition_score"`
	RepeatedNgrams  []RepeatedNgram `json:"repeated_ngrams"`
	MaxRepetitions  int             `json:"max_repetitions"`
}

// Burstiness measures variation in sentence length and complexity.
type Burstiness struct {
	BurstinessScore     float64 `json:"burstiness_score"`
	PerplexityVariance  float64 `json:"perplexity_variance"`
	ComplexityVariation float64 `json:"complexity_variation"`
}

// Anomaly is one detected statistical anomaly.
type Anomaly struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// AnomalyReport aggregates statistical anomalies and their score bonus.
type AnomalyReport struct {
	Anomalies    []Anomaly `json:"anomalies"`
	AnomalyScore float64   `json:"anomaly_score"`
	AnomalyCount int       `json:"anomaly_count"`
}

// CorrelationMatch is one triggered marker-correlation pattern.
type CorrelationMatch struct {
	PatternName string   `json:"pattern_name"`
	Markers     []string `json:"markers"`
	BonusScore  float64  `json:"bonus_score"`
}

// CorrelationReport aggregates correlation patterns; the bonus is capped.
type CorrelationReport struct {
	CorrelationPatterns []CorrelationMatch `json:"correlation_patterns"`
	CorrelationBonus    float64            `json:"correlation_bonus"`
	PatternCount        int                `json:"pattern_count"`
}

// BayesianAnalysis reports the probabilistic adjustment, as percentages.
type BayesianAnalysis struct {
	PosteriorProbability float64 `json:"posterior_probability"`
	PriorProbability     float64 `json:"prior_probability"`
	LikelihoodRatio      float64 `json:"likelihood_ratio"`
}

// ContextualAdjustment is one applied contextual correction.
type ContextualAdjustment struct {
	Reason     string  `json:"reason"`
	Adjustment float64 `json:"adjustment"`
}

// AdvancedAnalysis bundles all statistical feature outputs.
type AdvancedAnalysis struct {
	LexicalDiversity      LexicalDiversity       `json:"lexical_diversity"`
	ReadabilityMetrics    ReadabilityMetrics     `json:"readability_metrics"`
	NgramRepetition       NgramRepetition        `json:"ngram_repetition"`
	Burstiness            Burstiness             `json:"burstiness"`
	TextEntropy           float64                `json:"text_entropy"`
	StatisticalAnomalies  AnomalyReport          `json:"statistical_anomalies"`
	PatternCorrelations   CorrelationReport      `json:"pattern_correlations"`
	BayesianAnalysis      BayesianAnalysis       `json:"bayesian_analysis"`
	ContextualAdjustments []ContextualAdjustment `json:"contextual_adjustments"`
}

// ScoringBreakdown exposes every intermediate scoring stage.
type ScoringBreakdown struct {
	BaseScore          float64 `json:"base_score"`
	CompositeBonus     float64 `json:"composite_bonus"`
	CorrelationBonus   float64 `json:"correlation_bonus"`
	AnomalyBonus       float64 `json:"anomaly_bonus"`
	HumanReduction     float64 `json:"human_reduction"`
	BayesianAdjusted   float64 `json:"bayesian_adjusted"`
	ContextualAdjusted float64 `json:"contextual_adjusted"`
	FinalScore         float64 `json:"final_score"`
}

// DocumentStats describes the analyzed document.
type DocumentStats struct {
	Filename        string `json:"filename"`
	WordCount       int    `json:"word_count"`
	ParagraphCount  int    `json:"paragraph_count"`
	SentenceCount   int    `json:"sentence_count"`
	DocumentType    string `json:"document_type"`
	HasOriginal     bool   `json:"has_original"`
	HasTrackChanges bool   `json:"has_track_changes"`
	HasTimingData   bool   `json:"has_timing_data"`
}

// Meta carries analysis provenance.
type Meta struct {
	AnalysisID string        `json:"analysis_id"`
	Timestamp  string        `json:"timestamp"`
	Version    string        `json:"version"`
	Document   DocumentStats `json:"document"`
}

// AnalysisResult is the complete output of one analysis run.
type AnalysisResult struct {
	Score             float64                  `json:"score"`
	Classification    Classification           `json:"classification"`
	Confidence        string                   `json:"confidence"`
	Categories        map[string]CategoryScore `json:"categories"`
	CompositePatterns []CompositeMatch         `json:"composite_patterns"`
	HumanIndicators   []HumanIndicator         `json:"human_indicators"`
	Evidence          []EvidenceItem           `json:"evidence"`
	Recommendation    string                   `json:"recommendation"`
	AdvancedAnalysis  AdvancedAnalysis         `json:"advanced_analysis"`
	ScoringBreakdown  ScoringBreakdown         `json:"scoring_breakdown"`
	Meta              Meta                     `json:"meta"`
}

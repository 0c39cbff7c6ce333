package stats

import (
	"strings"
	"testing"
)

func TestDetectAnomalies_UniformParagraphs(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("word ", 60))
	paragraphs := []string{para, para, para}
	report := DetectAnomalies("", nil, paragraphs)

	found := false
	for _, a := range report.Anomalies {
		if a.Type == "Uniform Paragraph Lengths" {
			found = true
			if a.Severity != "high" {
				t.Errorf("expected high severity, got %s", a.Severity)
			}
		}
	}
	if !found {
		t.Fatal("expected uniform paragraph anomaly")
	}
	if report.AnomalyScore < 15 {
		t.Errorf("expected score at least 15, got %v", report.AnomalyScore)
	}
}

func TestDetectAnomalies_UniformSentences(t *testing.T) {
	sent := "one two three four five six seven"
	sentences := []string{sent, sent, sent, sent, sent, sent}
	report := DetectAnomalies("", sentences, nil)

	found := false
	for _, a := range report.Anomalies {
		if a.Type == "Uniform Sentence Lengths" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected uniform sentence anomaly")
	}
}

func TestDetectAnomalies_EmptyInput(t *testing.T) {
	report := DetectAnomalies("", nil, nil)
	if report.AnomalyCount != 0 || report.AnomalyScore != 0 {
		t.Errorf("expected no anomalies, got %+v", report)
	}
}

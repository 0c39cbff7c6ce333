package nlp

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseTagger tags text with the prose NLP library (Penn Treebank tags).
// Any tagging failure degrades silently to the regex fallback so that
// output is always produced.
type ProseTagger struct {
	fallback RegexTagger
}

// NewProseTagger returns a tagger backed by the prose library.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

func (t *ProseTagger) SpecificCounts(text string) (int, int) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return t.fallback.SpecificCounts(text)
	}

	var properNouns, numbers int
	for _, tok := range doc.Tokens() {
		switch tok.Tag {
		case "NNP", "NNPS":
			properNouns++
		case "CD":
			numbers++
		}
	}
	return properNouns, numbers
}

func (t *ProseTagger) SentencePatterns(sentences []string) ([]string, bool) {
	patterns := make([]string, len(sentences))
	for i, sent := range sentences {
		doc, err := prose.NewDocument(sent,
			prose.WithExtraction(false),
			prose.WithSegmentation(false),
		)
		if err != nil {
			continue
		}
		var tags []string
		for _, tok := range doc.Tokens() {
			if !punctuationTagSet[tok.Tag] {
				tags = append(tags, tok.Tag)
			}
		}
		patterns[i] = strings.Join(tags, " ")
	}
	return patterns, true
}

// ProseSegmenter splits text into sentences with the prose library,
// falling back to regex splitting on failure.
type ProseSegmenter struct {
	fallback RegexSegmenter
}

// NewProseSegmenter returns a segmenter backed by the prose library.
func NewProseSegmenter() *ProseSegmenter {
	return &ProseSegmenter{}
}

func (s *ProseSegmenter) Sentences(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false),
	)
	if err != nil {
		return s.fallback.Sentences(text)
	}

	var out []string
	for _, sent := range doc.Sentences() {
		if trimmed := strings.TrimSpace(sent.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package document

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/awarelabs/aware/pkg/models"
)

// WordRE matches word tokens the same way across parsing and analysis.
// Unicode letters and digits count; Go's \w would be ASCII-only.
var WordRE = regexp.MustCompile(`[\p{L}\p{N}_]+`)

var paragraphSplitRE = regexp.MustCompile(`\n\s*\n`)

// Words returns the word tokens of text.
func Words(text string) []string {
	return WordRE.FindAllString(text, -1)
}

// CountWords returns the number of word tokens in text.
func CountWords(text string) int {
	return len(WordRE.FindAllStringIndex(text, -1))
}

// ParseText builds DocumentFeatures from plain text or markdown content.
// Line endings are normalized and paragraphs split on blank lines.
func ParseText(text, filename string) *models.DocumentFeatures {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var paragraphs []string
	for _, p := range paragraphSplitRE.Split(normalized, -1) {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}

	return &models.DocumentFeatures{
		Filename:   filename,
		Text:       normalized,
		Paragraphs: paragraphs,
		FileType:   fileType(filename),
	}
}

// ParseBytes dispatches raw file content to the parser for its extension.
// Unknown extensions are treated as plain text.
func ParseBytes(data []byte, filename string) (*models.DocumentFeatures, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return ParseDOCX(data, filename)
	case ".pdf":
		return ParsePDF(data, filename)
	default:
		return ParseText(string(data), filename), nil
	}
}

func fileType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

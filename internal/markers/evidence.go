package markers

import (
	"strings"

	"github.com/awarelabs/aware/pkg/models"
)

// Evidence presentation constants. Windows are measured around the match
// offset; both are presentation details, not scoring inputs.
const (
	evidenceWindow = 40
	evidenceLimit  = 5
)

// snippets builds evidence entries around regex match positions, up to the
// default limit.
func snippets(text string, matches [][]int) []models.Evidence {
	return snippetsN(text, matches, evidenceLimit)
}

func snippetsN(text string, matches [][]int, limit int) []models.Evidence {
	var out []models.Evidence
	for _, m := range matches {
		if len(out) >= limit {
			break
		}
		start := m[0] - evidenceWindow
		if start < 0 {
			start = 0
		}
		end := m[1] + evidenceWindow
		if end > len(text) {
			end = len(text)
		}
		snippet := strings.TrimSpace(strings.ReplaceAll(text[start:end], "\n", " "))
		out = append(out, models.Evidence{
			Text:  strings.ToValidUTF8(snippet, ""),
			Index: m[0],
		})
	}
	return out
}

// truncate shortens s to at most n characters.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

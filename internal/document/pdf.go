package document

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/awarelabs/aware/pkg/models"
)

// ParsePDF extracts plain text from PDF content page by page. Pages that
// fail to extract are skipped; the result carries text and paragraphs only.
func ParsePDF(data []byte, filename string) (*models.DocumentFeatures, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var sb bytes.Buffer
	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n\n")
	}

	features := ParseText(sb.String(), filename)
	features.FileType = "pdf"
	return features, nil
}

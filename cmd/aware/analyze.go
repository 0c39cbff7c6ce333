package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awarelabs/aware/internal/analysis"
	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/internal/nlp"
	"github.com/awarelabs/aware/pkg/models"
)

var (
	originalPath string
	prettyOutput bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a document and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		var original *models.DocumentFeatures
		if originalPath != "" {
			original, err = loadDocument(originalPath)
			if err != nil {
				return err
			}
		}

		var tagger nlp.Tagger = nlp.NewProseTagger()
		var segmenter nlp.Segmenter = nlp.NewProseSegmenter()
		if disablePOS {
			tagger = nlp.RegexTagger{}
			segmenter = nlp.RegexSegmenter{}
		}
		result := analysis.NewAnalyzer(tagger, segmenter).Analyze(doc, original)

		enc := json.NewEncoder(os.Stdout)
		if prettyOutput {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(result)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(
		&originalPath, "original", "", "pre-edit version of the document for edit-history markers",
	)
	analyzeCmd.Flags().BoolVar(
		&prettyOutput, "pretty", false, "indent the JSON output",
	)
}

func loadDocument(path string) (*models.DocumentFeatures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := document.ParseBytes(data, path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

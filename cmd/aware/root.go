package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/awarelabs/aware/internal/analysis"
)

var disablePOS bool

var rootCmd = &cobra.Command{
	Use:   "aware",
	Short: "AI-authorship detection for documents",
	Long: `Aware scores documents for signs of AI authorship.

The pipeline includes:
  - Heuristic markers across ten categories (formatting, structure,
    edit history, style, vocabulary, and more)
  - Composite smoking-gun patterns and marker correlations
  - Statistical features: lexical diversity, readability, burstiness
  - Bayesian and contextual rescoring with a final risk classification`,
	Version: analysis.Version,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(
		&disablePOS, "no-pos", false, "disable part-of-speech tagging and use regex fallbacks",
	)

	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

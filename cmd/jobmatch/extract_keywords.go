package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/ingestion"
)

var extractKeywordsCmd = &cobra.Command{
	Use:   "extract-keywords",
	Short: "Extract weighted keywords from a job description",
	Long:  "Extract the weighted keywords of a description, read from a text file or given inline. Skill terms are boosted and weights are normalized so the top keyword weighs 1.",
	RunE:  runExtractKeywords,
}

var (
	extractTextFile string
	extractText     string
	extractOut      string
)

func init() {
	extractKeywordsCmd.Flags().StringVarP(&extractTextFile, "text-file", "t", "", "Path to text file containing the description")
	extractKeywordsCmd.Flags().StringVar(&extractText, "text", "", "Description text (mutually exclusive with --text-file)")
	extractKeywordsCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(extractKeywordsCmd)
}

func runExtractKeywords(cmd *cobra.Command, _ []string) error {
	if extractTextFile == "" && extractText == "" {
		return fmt.Errorf("either --text-file or --text must be provided")
	}
	if extractTextFile != "" && extractText != "" {
		return fmt.Errorf("--text-file and --text are mutually exclusive; provide only one")
	}

	description := extractText
	if extractTextFile != "" {
		var err error
		description, err = ingestion.ReadDescription(extractTextFile)
		if err != nil {
			return err
		}
	}

	extracted := eng.extractor.Extract(ingestion.CleanText(description))
	if eng.cfg.Verbose {
		eng.printer.PrintKeywords(extracted)
	}
	return writeJSON(cmd.OutOrStdout(), extractOut, extracted)
}

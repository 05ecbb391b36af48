package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/application"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Print short insights on how a candidate fits one job posting",
	Long: `Score the candidate against the posting and print insights. Without an
insight collaborator a fixed fallback line is printed.`,
	RunE:  runInsights,
}

var (
	insightsCandidate string
	insightsJobs      string
	insightsJobID     string
)

func init() {
	insightsCmd.Flags().StringVarP(&insightsCandidate, "candidate", "c", "", "Path to candidate profile JSON (required)")
	insightsCmd.Flags().StringVarP(&insightsJobs, "jobs", "j", "", "Path to ingested job postings JSON (required)")
	insightsCmd.Flags().StringVar(&insightsJobID, "job-id", "", "ID of the posting (optional when the file holds one)")

	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, _ []string) error {
	if insightsCandidate == "" {
		return fmt.Errorf("--candidate is required")
	}
	profile, err := loadCandidate(insightsCandidate, "")
	if err != nil {
		return err
	}
	jobs, err := loadJobs(insightsJobs)
	if err != nil {
		return err
	}
	job, err := findJob(jobs, insightsJobID)
	if err != nil {
		return err
	}

	builder := application.NewBuilder(
		application.WithScorer(eng.scorer),
		application.WithLogger(eng.logger),
	)
	insights, err := builder.Insights(cmd.Context(), profile, job)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, insight := range insights {
		if _, err := fmt.Fprintf(out, "- %s\n", insight); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/application"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Build an application for a candidate and one job posting",
	Long: `Score the candidate against the posting and assemble an application record
with a tailored resume and cover letter. The match score is always the
deterministic engine score. Without an AI enhancer the work history and a
templated cover letter are used, and --use-ai only logs a warning.`,
	RunE: runApply,
}

var (
	applyCandidate string
	applyJobs      string
	applyJobID     string
	applyUseAI     bool
	applyOut       string
)

func init() {
	applyCmd.Flags().StringVarP(&applyCandidate, "candidate", "c", "", "Path to candidate profile JSON (required)")
	applyCmd.Flags().StringVarP(&applyJobs, "jobs", "j", "", "Path to ingested job postings JSON (required)")
	applyCmd.Flags().StringVar(&applyJobID, "job-id", "", "ID of the posting to apply to (optional when the file holds one)")
	applyCmd.Flags().BoolVar(&applyUseAI, "use-ai", false, "Request AI enhancement of the resume and cover letter")
	applyCmd.Flags().StringVarP(&applyOut, "out", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, _ []string) error {
	if applyCandidate == "" {
		return fmt.Errorf("--candidate is required")
	}
	profile, err := loadCandidate(applyCandidate, "")
	if err != nil {
		return err
	}
	jobs, err := loadJobs(applyJobs)
	if err != nil {
		return err
	}
	job, err := findJob(jobs, applyJobID)
	if err != nil {
		return err
	}

	builder := application.NewBuilder(
		application.WithScorer(eng.scorer),
		application.WithLogger(eng.logger),
	)
	app, err := builder.Build(cmd.Context(), profile, job, applyUseAI)
	if err != nil {
		return err
	}
	eng.logger.Debug("built application", "summary", application.Summary(app))

	if eng.cfg.Verbose {
		eng.printer.PrintApplication(app)
	}
	return writeJSON(cmd.OutOrStdout(), applyOut, app)
}

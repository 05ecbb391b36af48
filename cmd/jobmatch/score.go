package main

import (
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate against one job posting",
	Long:  "Score how well a candidate's skills fit one ingested job posting. The score blends skill overlap with the weight of matched job keywords.",
	RunE:  runScore,
}

var (
	scoreCandidate string
	scoreSkills    string
	scoreJobs      string
	scoreJobID     string
	scoreOut       string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to candidate profile JSON")
	scoreCmd.Flags().StringVarP(&scoreSkills, "skills", "s", "", "Comma-separated candidate skills (instead of --candidate)")
	scoreCmd.Flags().StringVarP(&scoreJobs, "jobs", "j", "", "Path to ingested job postings JSON (required)")
	scoreCmd.Flags().StringVar(&scoreJobID, "job-id", "", "ID of the posting to score (optional when the file holds one)")
	scoreCmd.Flags().StringVarP(&scoreOut, "out", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	profile, err := loadCandidate(scoreCandidate, scoreSkills)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(scoreJobs)
	if err != nil {
		return err
	}
	job, err := findJob(jobs, scoreJobID)
	if err != nil {
		return err
	}

	result, err := eng.scorer.ScoreJob(profile.Skills, job)
	if err != nil {
		return err
	}

	if eng.cfg.Verbose {
		eng.printer.PrintMatch(job, &result)
	}
	return writeJSON(cmd.OutOrStdout(), scoreOut, result)
}

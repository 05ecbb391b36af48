package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/listing"
	"github.com/jonathan/job-matcher/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank job postings for a candidate",
	Long: `Filter ingested job postings, then rank the rest by match score, most
recent first among equal scores. A candidate with no skills gets a pure
recency order.`,
	RunE: runRank,
}

var (
	rankCandidate    string
	rankSkills       string
	rankJobs         string
	rankLocation     string
	rankMinSalary    int
	rankMaxSalary    int
	rankRemote       string
	rankFilterSkills string
	rankTop          int
	rankOut          string
)

func init() {
	rankCmd.Flags().StringVarP(&rankCandidate, "candidate", "c", "", "Path to candidate profile JSON")
	rankCmd.Flags().StringVarP(&rankSkills, "skills", "s", "", "Comma-separated candidate skills (instead of --candidate)")
	rankCmd.Flags().StringVarP(&rankJobs, "jobs", "j", "", "Path to ingested job postings JSON (required)")
	rankCmd.Flags().StringVar(&rankLocation, "location", "", "Keep postings whose location contains this text")
	rankCmd.Flags().IntVar(&rankMinSalary, "min-salary", 0, "Keep postings paying at least this much")
	rankCmd.Flags().IntVar(&rankMaxSalary, "max-salary", 0, "Keep postings starting at or below this salary")
	rankCmd.Flags().StringVar(&rankRemote, "remote", "", "Keep only remote (true) or on-site (false) postings")
	rankCmd.Flags().StringVar(&rankFilterSkills, "filter-skills", "", "Keep postings declaring any of these comma-separated skills")
	rankCmd.Flags().IntVarP(&rankTop, "top", "n", 0, "Only output the top N postings (0 for all)")
	rankCmd.Flags().StringVarP(&rankOut, "out", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	if rankTop < 0 {
		return fmt.Errorf("--top must not be negative")
	}
	profile, err := loadCandidate(rankCandidate, rankSkills)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(rankJobs)
	if err != nil {
		return err
	}
	filter, err := rankFilter()
	if err != nil {
		return err
	}

	ranked, err := listing.NewLister(eng.ranker, eng.vocab).List(cmd.Context(), profile.Skills, jobs, filter)
	if err != nil {
		return err
	}
	ranked.CandidateID = profile.ID
	eng.logger.Debug("ranked postings", "candidate", profile.ID, "jobs", len(jobs), "kept", len(ranked.Ranked))

	if rankTop > 0 && len(ranked.Ranked) > rankTop {
		ranked.Ranked = ranked.Ranked[:rankTop]
	}

	if eng.cfg.Verbose {
		eng.printer.PrintRankedJobs(ranked)
	}
	return writeJSON(cmd.OutOrStdout(), rankOut, ranked)
}

func rankFilter() (listing.Filter, error) {
	filter := listing.Filter{
		Location:  rankLocation,
		MinSalary: rankMinSalary,
		MaxSalary: rankMaxSalary,
	}
	if rankFilterSkills != "" {
		filter.Skills = types.ParseSkillSet(rankFilterSkills)
	}
	if rankRemote != "" {
		remote, err := strconv.ParseBool(rankRemote)
		if err != nil {
			return listing.Filter{}, fmt.Errorf("--remote must be true or false: %w", err)
		}
		filter.Remote = &remote
	}
	return filter, nil
}

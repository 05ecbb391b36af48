// Package main provides the jobmatch command line: keyword extraction, job
// ingestion, scoring, ranking and application building.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Deterministic job matching engine",
	Long: `jobmatch extracts weighted keywords from job descriptions, scores how well a
candidate's skills fit each posting, and ranks postings for a candidate.

Engine parameters come from --config (JSON) and JOBMATCH_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		eng, err = newEngine(cmd, configPath, verbose)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

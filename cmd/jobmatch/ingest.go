package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/types"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest job postings and extract their keywords",
	Long: `Ingest job postings from a JSON file (one posting or an array), from a
description text file, or from a posting URL. Each posting is cleaned, its
keywords are extracted once, and the resulting job postings are written as a
JSON array.`,
	RunE: runIngest,
}

var (
	ingestInput      string
	ingestTextFile   string
	ingestURL        string
	ingestID         string
	ingestTitle      string
	ingestCompany    string
	ingestSkills     string
	ingestLocation   string
	ingestRemote     bool
	ingestUseBrowser bool
	ingestOut        string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestInput, "input", "i", "", "Path to JSON file with one posting or an array of postings")
	ingestCmd.Flags().StringVarP(&ingestTextFile, "text-file", "t", "", "Path to text file containing a job description")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch a job posting from")
	ingestCmd.Flags().StringVar(&ingestID, "id", "", "Posting ID for --text-file or --url (generated when empty)")
	ingestCmd.Flags().StringVar(&ingestTitle, "title", "", "Posting title for --text-file or --url")
	ingestCmd.Flags().StringVar(&ingestCompany, "company", "", "Company name for --text-file or --url")
	ingestCmd.Flags().StringVar(&ingestSkills, "skills", "", "Comma-separated declared skills for --text-file or --url")
	ingestCmd.Flags().StringVar(&ingestLocation, "location", "", "Location for --text-file or --url")
	ingestCmd.Flags().BoolVar(&ingestRemote, "remote", false, "Mark the posting as remote")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for JavaScript-rendered pages (requires Chrome)")
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	sources := 0
	for _, s := range []string{ingestInput, ingestTextFile, ingestURL} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("one of --input, --text-file or --url must be provided")
	}
	if sources > 1 {
		return fmt.Errorf("--input, --text-file and --url are mutually exclusive; provide only one")
	}

	var postings []ingestion.NewPosting
	switch {
	case ingestInput != "":
		loaded, err := ingestion.LoadNewPostings(ingestInput)
		if err != nil {
			return err
		}
		postings = loaded

	case ingestTextFile != "":
		description, err := ingestion.ReadDescription(ingestTextFile)
		if err != nil {
			return err
		}
		postings = []ingestion.NewPosting{applyPostingFlags(ingestion.NewPosting{
			Description: description,
			Format:      ingestion.FormatText,
		})}

	default:
		fetched, err := ingestion.FetchPosting(cmd.Context(), ingestURL, ingestion.URLOptions{
			UseBrowser: ingestUseBrowser || eng.cfg.UseBrowser,
			Logger:     eng.logger,
		})
		if err != nil {
			return err
		}
		postings = []ingestion.NewPosting{applyPostingFlags(fetched)}
	}

	jobs, err := eng.ingestor().IngestAll(postings)
	if err != nil {
		return fmt.Errorf("failed to ingest postings: %w", err)
	}

	for i := range jobs {
		eng.logger.Debug("ingested posting", "id", jobs[i].ID, "title", jobs[i].Title, "keywords", len(jobs[i].Keywords))
		if eng.cfg.Verbose {
			eng.printer.PrintKeywords(jobs[i].Keywords)
		}
	}
	hits, misses := eng.extractor.Stats()
	eng.logger.Debug("keyword cache", "entries", eng.extractor.Len(), "hits", hits, "misses", misses)
	return writeJSON(cmd.OutOrStdout(), ingestOut, jobs)
}

// applyPostingFlags fills p from the posting flags that were set.
func applyPostingFlags(p ingestion.NewPosting) ingestion.NewPosting {
	if ingestID != "" {
		p.ID = ingestID
	}
	if ingestTitle != "" {
		p.Title = ingestTitle
	}
	if ingestCompany != "" {
		p.Company = ingestCompany
	}
	if ingestSkills != "" {
		p.Skills = types.ParseSkillSet(ingestSkills)
	}
	if ingestLocation != "" {
		p.Location = ingestLocation
	}
	if ingestRemote {
		p.IsRemote = true
	}
	return p
}

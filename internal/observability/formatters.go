// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// joinLimited joins at most limit items and notes how many were left out.
func joinLimited(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:limit], ", "), len(items)-limit)
}

// PrintKeywords outputs the extracted keywords with their weights.
func (p *Printer) PrintKeywords(keywords types.KeywordSet) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d keywords:\n\n", len(keywords)))
	for _, kw := range keywords {
		sb.WriteString(fmt.Sprintf("  %-40s %.2f\n", truncate(kw.Term, 40), kw.Weight))
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs one match result with its skill breakdown.
func (p *Printer) PrintMatch(job *types.JobPosting, match *types.MatchResult) {
	if job == nil || match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:      %s\n", job.Title))
	if job.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	}
	sb.WriteString(fmt.Sprintf("Score:    %.3f (%d%%)\n", float64(match.Score), match.Percent))
	sb.WriteString(fmt.Sprintf("Skills:   %.2f  Keywords: %.2f\n", match.SkillOverlap, match.KeywordOverlap))
	sb.WriteString("\n")

	if len(match.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("✓ %s\n", joinLimited(match.MatchedSkills, maxItemsToShow)))
	}
	if len(match.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("✗ %s\n", joinLimited(match.MissingSkills, maxItemsToShow)))
	}
	if match.Notes != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", match.Notes))
	}

	p.printBox("MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedJobs outputs the top ranked jobs with scores and matched skills.
func (p *Printer) PrintRankedJobs(ranked *types.RankedJobs) {
	if ranked == nil || len(ranked.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(ranked.Ranked)))

	count := min(len(ranked.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		row := ranked.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s", i+1, row.Job.Title))
		if row.Job.Company != "" {
			sb.WriteString(fmt.Sprintf(" @ %s", row.Job.Company))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Score: %.2f (%d%%)", float64(row.Match.Score), row.Match.Percent))
		if row.TimeAgo != "" {
			sb.WriteString(fmt.Sprintf("  %s", row.TimeAgo))
		}
		sb.WriteString("\n")
		if len(row.Match.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", truncate(strings.Join(row.Match.MatchedSkills, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(ranked.Ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintApplication outputs the application record and the start of its cover letter.
func (p *Printer) PrintApplication(app *types.Application) {
	if app == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Application: %s\n", app.ID))
	sb.WriteString(fmt.Sprintf("Job:         %s\n", app.JobID))
	sb.WriteString(fmt.Sprintf("Status:      %s\n", app.Status))
	sb.WriteString(fmt.Sprintf("Match:       %d%%\n", app.MatchScore.Percent()))
	if app.Enhanced {
		sb.WriteString("Enhanced:    yes\n")
	} else {
		sb.WriteString("Enhanced:    no\n")
	}

	if len(app.KeyChanges) > 0 {
		sb.WriteString("\nKey Changes:\n")
		count := min(len(app.KeyChanges), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", app.KeyChanges[i]))
		}
		if len(app.KeyChanges) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(app.KeyChanges)-3))
		}
	}

	if app.CoverLetter != "" {
		first := strings.SplitN(strings.TrimSpace(app.CoverLetter), "\n", 2)[0]
		sb.WriteString(fmt.Sprintf("\nLetter: %s\n", first))
	}

	p.printBox("APPLICATION", strings.TrimSuffix(sb.String(), "\n"))
}

package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywords(types.KeywordSet{
		{Term: "go", Weight: 1},
		{Term: "distributed systems", Weight: 0.5},
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED KEYWORDS")
	assert.Contains(t, output, "Extracted 2 keywords")
	assert.Contains(t, output, "distributed systems")
	assert.Contains(t, output, "1.00")
	assert.Contains(t, output, "0.50")
}

func TestPrintKeywords_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywords(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobPosting{ID: "A", Title: "Backend Engineer", Company: "Acme"}
	match := &types.MatchResult{
		Score:          0.543,
		Percent:        54,
		SkillOverlap:   0.5,
		KeywordOverlap: 0.643,
		MatchedSkills:  []string{"python"},
		MissingSkills:  []string{"go"},
		Notes:          "Moderate skill match (python). Missing go. Good keyword overlap",
	}

	p.PrintMatch(job, match)
	output := buf.String()

	assert.Contains(t, output, "MATCH")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Acme")
	assert.Contains(t, output, "0.543 (54%)")
	assert.Contains(t, output, "✓ python")
	assert.Contains(t, output, "✗ go")
	assert.Contains(t, output, "Moderate skill match")
}

func TestPrintMatch_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatch(nil, &types.MatchResult{})
	p.PrintMatch(&types.JobPosting{}, nil)

	assert.Empty(t, buf.String())
}

func TestPrintRankedJobs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := &types.RankedJobs{
		Ranked: []types.RankedJob{
			{
				Job:     types.JobPosting{ID: "A", Title: "Go Developer", Company: "Acme"},
				Match:   types.MatchResult{Score: 0.85, Percent: 85, MatchedSkills: []string{"go", "kubernetes"}},
				TimeAgo: "2 days ago",
			},
			{
				Job:   types.JobPosting{ID: "B", Title: "Java Developer"},
				Match: types.MatchResult{Score: 0},
			},
		},
	}

	p.PrintRankedJobs(ranked)
	output := buf.String()

	assert.Contains(t, output, "TOP RANKED JOBS")
	assert.Contains(t, output, "Total jobs ranked: 2")
	assert.Contains(t, output, "#1  Go Developer @ Acme")
	assert.Contains(t, output, "0.85 (85%)")
	assert.Contains(t, output, "2 days ago")
	assert.Contains(t, output, "go, kubernetes")
	assert.Contains(t, output, "#2  Java Developer")
}

func TestPrintRankedJobs_ManyJobs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rows := make([]types.RankedJob, 8)
	for i := range rows {
		rows[i] = types.RankedJob{Job: types.JobPosting{ID: "j", Title: "Engineer"}}
	}

	p.PrintRankedJobs(&types.RankedJobs{Ranked: rows})
	output := buf.String()

	assert.Contains(t, output, "#5")
	assert.NotContains(t, output, "#6")
	assert.Contains(t, output, "... and 3 more jobs")
}

func TestPrintRankedJobs_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedJobs(nil)
	p.PrintRankedJobs(&types.RankedJobs{})

	assert.Empty(t, buf.String())
}

func TestPrintApplication(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	app := &types.Application{
		ID:          "app-1",
		JobID:       "job-1",
		Status:      types.StatusApplied,
		MatchScore:  0.543,
		CoverLetter: "Dear Hiring Manager,\n\nI am interested...",
		KeyChanges:  []string{"a", "b", "c", "d"},
		Enhanced:    true,
	}

	p.PrintApplication(app)
	output := buf.String()

	assert.Contains(t, output, "APPLICATION")
	assert.Contains(t, output, "app-1")
	assert.Contains(t, output, "54%")
	assert.Contains(t, output, "Enhanced:    yes")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "Letter: Dear Hiring Manager,")
}

func TestPrintApplication_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintApplication(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TEST", strings.Repeat("x", 100))
	output := buf.String()

	assert.Contains(t, output, "...")
	assert.NotContains(t, output, strings.Repeat("x", 60))
}

func TestJoinLimited(t *testing.T) {
	assert.Equal(t, "a, b", joinLimited([]string{"a", "b"}, 5))
	assert.Equal(t, "a, b (+2 more)", joinLimited([]string{"a", "b", "c", "d"}, 2))
}

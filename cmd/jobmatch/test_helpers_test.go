package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

var posted = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// runCLI executes the root command in-process and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeJSONFile(t *testing.T, dir, name string, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeFile(t, dir, name, string(data))
}

// sampleJobs holds the two postings of the worked scoring example.
func sampleJobs() []types.JobPosting {
	return []types.JobPosting{
		{
			ID:       "A",
			Title:    "Backend Engineer",
			Company:  "Acme",
			Skills:   types.NewSkillSet([]string{"python", "go"}),
			Keywords: types.KeywordSet{{Term: "python", Weight: 0.9}, {Term: "docker", Weight: 0.5}},
			Location: "Berlin",
			IsRemote: true,
			PostedAt: posted,
		},
		{
			ID:       "B",
			Title:    "Java Developer",
			Company:  "Initech",
			Skills:   types.NewSkillSet([]string{"java"}),
			Keywords: types.KeywordSet{{Term: "java", Weight: 1.0}},
			Location: "Paris",
			PostedAt: posted.Add(-time.Hour),
		},
	}
}

func writeSampleJobs(t *testing.T, dir string) string {
	t.Helper()
	return writeJSONFile(t, dir, "jobs.json", sampleJobs())
}

func writeCandidate(t *testing.T, dir string) string {
	t.Helper()
	return writeFile(t, dir, "candidate.json", `{
		"id": "cand-1",
		"name": "Sam",
		"skills": "Python, SQL",
		"experience_years": 5,
		"work_history": "Built data pipelines in Python."
	}`)
}

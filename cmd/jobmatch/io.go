package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

// readJSON loads path into v after checking it against the named schema.
func readJSON(path, schema string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if schema != "" {
		if err := schemas.Validate(schema, data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// loadJobs reads an array of ingested postings and validates each one.
func loadJobs(path string) ([]types.JobPosting, error) {
	if path == "" {
		return nil, fmt.Errorf("--jobs is required")
	}
	var raw []json.RawMessage
	if err := readJSON(path, "", &raw); err != nil {
		return nil, err
	}

	jobs := make([]types.JobPosting, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, doc := range raw {
		if err := schemas.Validate(schemas.JobPosting, doc); err != nil {
			return nil, fmt.Errorf("%s: job %d: %w", path, i, err)
		}
		var job types.JobPosting
		if err := json.Unmarshal(doc, &job); err != nil {
			return nil, fmt.Errorf("%s: job %d: %w", path, i, err)
		}
		if err := job.Validate(); err != nil {
			return nil, fmt.Errorf("%s: job %d: %w", path, i, err)
		}
		if _, dup := seen[job.ID]; dup {
			return nil, fmt.Errorf("%s: job %d: duplicate id %q", path, i, job.ID)
		}
		seen[job.ID] = struct{}{}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// findJob returns the job with id, or the only job when id is empty.
func findJob(jobs []types.JobPosting, id string) (*types.JobPosting, error) {
	if id == "" {
		if len(jobs) == 1 {
			return &jobs[0], nil
		}
		return nil, fmt.Errorf("--job-id is required when the jobs file holds %d postings", len(jobs))
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i], nil
		}
	}
	return nil, fmt.Errorf("job %q not found", id)
}

// loadCandidate reads a profile file, or builds an anonymous profile from a
// comma-separated skills list.
func loadCandidate(profilePath, skillsCSV string) (*types.CandidateProfile, error) {
	if profilePath != "" && skillsCSV != "" {
		return nil, fmt.Errorf("--candidate and --skills are mutually exclusive; provide only one")
	}
	if profilePath == "" {
		return &types.CandidateProfile{ID: "anonymous", Skills: types.ParseSkillSet(skillsCSV)}, nil
	}

	var profile types.CandidateProfile
	if err := readJSON(profilePath, schemas.CandidateProfile, &profile); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

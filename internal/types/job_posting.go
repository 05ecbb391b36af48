// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// JobPosting is a job listing with its declared skills and the keywords
// extracted from its description at ingestion. It is not mutated afterwards.
type JobPosting struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company"`
	Description string     `json:"description"`
	Skills      SkillSet   `json:"skills"`
	Keywords    KeywordSet `json:"keywords"`
	Location    string     `json:"location,omitempty"`
	SalaryMin   int        `json:"salary_min,omitempty" validate:"gte=0"`
	SalaryMax   int        `json:"salary_max,omitempty" validate:"omitempty,gtefield=SalaryMin"`
	IsRemote    bool       `json:"is_remote"`
	PostedAt    time.Time  `json:"posted_at"`
	URL         string     `json:"url,omitempty"`
}

// Validate checks required fields, the salary range, and the skill and keyword sets.
func (j *JobPosting) Validate() error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("invalid job posting %q: %w", j.ID, err)
	}
	if err := j.Skills.Validate(); err != nil {
		return fmt.Errorf("invalid job posting %q: %w", j.ID, err)
	}
	if err := j.Keywords.Validate(); err != nil {
		return fmt.Errorf("invalid job posting %q: %w", j.ID, err)
	}
	return nil
}

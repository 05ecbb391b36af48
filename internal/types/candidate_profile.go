// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// CandidateProfile is a candidate's declared skills and work history.
type CandidateProfile struct {
	ID              string   `json:"id" validate:"required"`
	Name            string   `json:"name,omitempty"`
	Skills          SkillSet `json:"skills"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0"`
	WorkHistory     string   `json:"work_history"`
}

// Validate checks required fields and the skill set.
func (c *CandidateProfile) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid candidate profile %q: %w", c.ID, err)
	}
	if err := c.Skills.Validate(); err != nil {
		return fmt.Errorf("invalid candidate profile %q: %w", c.ID, err)
	}
	return nil
}

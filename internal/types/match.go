// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"math"
	"time"
)

// MatchScore quantifies candidate-to-job fit in [0,1]. A score of 0 for a
// candidate with no skills means "no personalization", not "irrelevant".
type MatchScore float64

// Percent returns the score on the 0-100 reporting scale.
func (m MatchScore) Percent() int {
	return int(math.Round(float64(m) * 100))
}

// MatchResult is a score together with the signals that produced it
type MatchResult struct {
	Score           MatchScore `json:"match_score"`
	Percent         int        `json:"match_percent"`
	SkillOverlap    float64    `json:"skill_overlap"`
	KeywordOverlap  float64    `json:"keyword_overlap"`
	MatchedSkills   []string   `json:"matched_skills"`
	MissingSkills   []string   `json:"missing_skills"`
	MatchedKeywords []string   `json:"matched_keywords"`
	Notes           string     `json:"notes"`
}

// RankedJob is a job posting with its match result for one candidate
type RankedJob struct {
	Job     JobPosting  `json:"job"`
	Match   MatchResult `json:"match"`
	TimeAgo string      `json:"time_ago,omitempty"`
}

// RankedJobs represents an ordered job listing for one candidate
type RankedJobs struct {
	CandidateID string      `json:"candidate_id,omitempty"`
	Ranked      []RankedJob `json:"ranked"`
}

// Application statuses
const (
	StatusApplied = "applied"
)

// Application is the record attached to a submitted application. MatchScore is
// always the deterministic engine score, whether or not AI enhancement ran.
type Application struct {
	ID             string     `json:"id"`
	CandidateID    string     `json:"candidate_id"`
	JobID          string     `json:"job_id"`
	Status         string     `json:"status"`
	MatchScore     MatchScore `json:"match_score"`
	TailoredResume string     `json:"tailored_resume"`
	CoverLetter    string     `json:"cover_letter"`
	KeyChanges     []string   `json:"key_changes"`
	Enhanced       bool       `json:"enhanced"`
	AppliedAt      time.Time  `json:"applied_at"`
}

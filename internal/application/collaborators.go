package application

import (
	"context"

	"github.com/jonathan/job-matcher/internal/types"
)

// EnhanceRequest is what an Enhancer receives to tailor an application.
type EnhanceRequest struct {
	OriginalResume string            `json:"original_resume"`
	JobTitle       string            `json:"job_title"`
	Company        string            `json:"company"`
	JobDescription string            `json:"job_description"`
	RequiredSkills []string          `json:"required_skills"`
	Match          types.MatchResult `json:"match"`
	// Prompt is a ready-made instruction for text-generation backends
	Prompt string `json:"prompt"`
}

// EnhanceResult is an Enhancer's output. Empty fields fall back to the
// deterministic defaults.
type EnhanceResult struct {
	OptimizedResume string   `json:"optimizedResume"`
	CoverLetter     string   `json:"coverLetter"`
	KeyChanges      []string `json:"keyChanges"`
}

// Enhancer rewrites a resume and drafts a cover letter for a job, typically
// through a language model.
type Enhancer interface {
	Enhance(ctx context.Context, req EnhanceRequest) (EnhanceResult, error)
}

// InsightRequest is what an Insighter receives.
type InsightRequest struct {
	Profile        types.CandidateProfile `json:"profile"`
	JobDescription string                 `json:"job_description"`
	Match          types.MatchResult      `json:"match"`
	Prompt         string                 `json:"prompt"`
}

// Insighter explains why a job suits a candidate.
type Insighter interface {
	Insights(ctx context.Context, req InsightRequest) ([]string, error)
}

// Package application assembles job applications around the deterministic
// match score, with optional AI enhancement that degrades to templated text.
package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/prompts"
	"github.com/jonathan/job-matcher/internal/types"
)

// fallbackSkillCount is how many skills the fallback cover letter names
const fallbackSkillCount = 3

// defaultSkillPhrase stands in when neither job nor candidate lists skills
const defaultSkillPhrase = "software development"

// Builder assembles Applications. Collaborators are optional.
type Builder struct {
	scorer    *matching.Scorer
	enhancer  Enhancer
	insighter Insighter
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// Option configures a Builder.
type Option func(*Builder)

// WithScorer sets the scorer used for the match score.
func WithScorer(s *matching.Scorer) Option {
	return func(b *Builder) { b.scorer = s }
}

// WithEnhancer sets the collaborator used when AI enhancement is requested.
func WithEnhancer(e Enhancer) Option {
	return func(b *Builder) { b.enhancer = e }
}

// WithInsighter sets the collaborator used for job insights.
func WithInsighter(i Insighter) Option {
	return func(b *Builder) { b.insighter = i }
}

// WithLogger sets the logger for collaborator failures.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// NewBuilder creates a Builder with the default scorer and no collaborators.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		scorer: matching.NewDefaultScorer(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build scores profile against job and assembles an application. The score is
// attached before any enhancement and is never changed by it. With useAI and
// an Enhancer the resume and cover letter come from the collaborator; if it
// fails, the work history is kept and a fallback letter naming the job's top
// skills is used.
func (b *Builder) Build(ctx context.Context, profile *types.CandidateProfile, job *types.JobPosting, useAI bool) (*types.Application, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	match, err := b.scorer.ScoreJob(profile.Skills, job)
	if err != nil {
		return nil, err
	}

	app := &types.Application{
		ID:             b.newID(),
		CandidateID:    profile.ID,
		JobID:          job.ID,
		Status:         types.StatusApplied,
		MatchScore:     match.Score,
		TailoredResume: profile.WorkHistory,
		CoverLetter:    coverLetter(job),
		KeyChanges:     []string{},
		AppliedAt:      b.now().UTC(),
	}

	if !useAI {
		return app, nil
	}
	if b.enhancer == nil {
		b.logger.Warn("AI enhancement requested but no enhancer configured, using fallback", "job_id", job.ID)
		return app, nil
	}

	result, err := b.enhancer.Enhance(ctx, b.enhanceRequest(profile, job, match))
	if err != nil {
		b.logger.Warn("AI enhancement failed, using fallback", "job_id", job.ID, "candidate_id", profile.ID, "error", err)
		app.CoverLetter = fallbackCoverLetter(job, profile)
		app.KeyChanges = []string{prompts.MustGet(prompts.Application, "key-change-fallback")}
		return app, nil
	}

	app.Enhanced = true
	if strings.TrimSpace(result.OptimizedResume) != "" {
		app.TailoredResume = result.OptimizedResume
	}
	if strings.TrimSpace(result.CoverLetter) != "" {
		app.CoverLetter = result.CoverLetter
	}
	if len(result.KeyChanges) > 0 {
		app.KeyChanges = result.KeyChanges
	}
	return app, nil
}

// Insights returns the Insighter's view of the match, or the generic fallback
// insight when there is no Insighter, it fails, or it returns nothing.
func (b *Builder) Insights(ctx context.Context, profile *types.CandidateProfile, job *types.JobPosting) ([]string, error) {
	match, err := b.scorer.ScoreJob(profile.Skills, job)
	if err != nil {
		return nil, err
	}

	fallback := []string{prompts.MustGet(prompts.Application, "insight-fallback")}
	if b.insighter == nil {
		return fallback, nil
	}

	insights, err := b.insighter.Insights(ctx, InsightRequest{
		Profile:        *profile,
		JobDescription: job.Description,
		Match:          match,
		Prompt: prompts.Render(prompts.Application, "job-insights", map[string]string{
			"Skills":      strings.Join(profile.Skills, ", "),
			"Experience":  strconv.Itoa(profile.ExperienceYears),
			"WorkHistory": profile.WorkHistory,
			"Percent":     strconv.Itoa(match.Percent),
			"Notes":       match.Notes,
			"Description": job.Description,
		}),
	})
	if err != nil {
		b.logger.Warn("job insights failed, using fallback", "job_id", job.ID, "error", err)
		return fallback, nil
	}
	if len(insights) == 0 {
		return fallback, nil
	}
	return insights, nil
}

func (b *Builder) enhanceRequest(profile *types.CandidateProfile, job *types.JobPosting, match types.MatchResult) EnhanceRequest {
	return EnhanceRequest{
		OriginalResume: profile.WorkHistory,
		JobTitle:       job.Title,
		Company:        job.Company,
		JobDescription: job.Description,
		RequiredSkills: []string(job.Skills),
		Match:          match,
		Prompt: prompts.Render(prompts.Application, "enhance-resume", map[string]string{
			"Resume":      profile.WorkHistory,
			"Title":       job.Title,
			"Company":     job.Company,
			"Description": job.Description,
			"Skills":      strings.Join(job.Skills, ", "),
		}),
	}
}

func coverLetter(job *types.JobPosting) string {
	company := job.Company
	if company == "" {
		company = "your company"
	}
	return prompts.Render(prompts.Application, "cover-letter", map[string]string{
		"Title":   job.Title,
		"Company": company,
	})
}

// fallbackCoverLetter names the first skills the job asks for, or the
// candidate's own when the job lists none.
func fallbackCoverLetter(job *types.JobPosting, profile *types.CandidateProfile) string {
	return prompts.Render(prompts.Application, "cover-letter-fallback", map[string]string{
		"Title":  job.Title,
		"Skills": skillPhrase(job.Skills, profile.Skills),
	})
}

func skillPhrase(jobSkills, candidateSkills types.SkillSet) string {
	skills := jobSkills
	if len(skills) == 0 {
		skills = candidateSkills
	}
	if len(skills) == 0 {
		return defaultSkillPhrase
	}
	if len(skills) > fallbackSkillCount {
		skills = skills[:fallbackSkillCount]
	}
	return strings.Join(skills, ", ")
}

// Summary renders a one-line description of app.
func Summary(app *types.Application) string {
	return fmt.Sprintf("%s -> %s: %s (%d%% match)", app.CandidateID, app.JobID, app.Status, app.MatchScore.Percent())
}

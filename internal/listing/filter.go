// Package listing filters job postings and presents them ranked for a candidate.
package listing

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-matcher/internal/parsing"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vocabulary"
)

var validate = validator.New()

// Filter narrows the postings considered for ranking. Zero fields match everything.
type Filter struct {
	// Location matches postings whose location contains it, ignoring case
	Location string `json:"location,omitempty"`
	// MinSalary keeps postings whose salary range reaches at least this amount
	MinSalary int `json:"min_salary,omitempty" validate:"gte=0"`
	// MaxSalary keeps postings whose salary range starts at or below this amount
	MaxSalary int `json:"max_salary,omitempty" validate:"omitempty,gtefield=MinSalary"`
	// Remote, when set, keeps only remote (true) or only on-site (false) postings
	Remote *bool `json:"is_remote,omitempty"`
	// Skills keeps postings that declare at least one of these skills
	Skills types.SkillSet `json:"skills,omitempty"`
}

// Validate checks the salary bounds and skill set.
func (f *Filter) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	if err := f.Skills.Validate(); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	return nil
}

// Matches reports whether job passes every set criterion. Skills compare by
// canonical name through vocab.
func (f *Filter) Matches(job *types.JobPosting, vocab *vocabulary.Vocabulary) bool {
	if f.Location != "" && !strings.Contains(parsing.Fold(job.Location), parsing.Fold(f.Location)) {
		return false
	}
	if f.MinSalary > 0 && salaryCeiling(job) < f.MinSalary {
		return false
	}
	if f.MaxSalary > 0 && job.SalaryMin > f.MaxSalary {
		return false
	}
	if f.Remote != nil && job.IsRemote != *f.Remote {
		return false
	}
	if len(f.Skills) > 0 && !sharesSkill(f.Skills, job.Skills, vocab) {
		return false
	}
	return true
}

// Apply returns the jobs that match, in input order.
func (f *Filter) Apply(jobs []types.JobPosting, vocab *vocabulary.Vocabulary) []types.JobPosting {
	kept := make([]types.JobPosting, 0, len(jobs))
	for i := range jobs {
		if f.Matches(&jobs[i], vocab) {
			kept = append(kept, jobs[i])
		}
	}
	return kept
}

// salaryCeiling is the top of a posting's advertised range.
func salaryCeiling(job *types.JobPosting) int {
	if job.SalaryMax > 0 {
		return job.SalaryMax
	}
	return job.SalaryMin
}

func sharesSkill(wanted, declared types.SkillSet, vocab *vocabulary.Vocabulary) bool {
	want := make(map[string]struct{}, len(wanted))
	for _, skill := range wanted {
		want[vocab.Canonical(skill)] = struct{}{}
	}
	for _, skill := range declared {
		if _, ok := want[vocab.Canonical(skill)]; ok {
			return true
		}
	}
	return false
}

// Package ingestion turns raw job postings into validated JobPostings with
// their keywords extracted once, up front.
package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/job-matcher/internal/fetch"
	"github.com/jonathan/job-matcher/internal/keywords"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vocabulary"
)

// Description formats
const (
	FormatText = "text"
	FormatHTML = "html"
)

var validate = validator.New()

// NewPosting is a job posting as submitted, before ingestion.
type NewPosting struct {
	ID          string         `json:"id,omitempty"`
	Title       string         `json:"title" validate:"required"`
	Company     string         `json:"company"`
	Description string         `json:"description"`
	Format      string         `json:"format,omitempty" validate:"omitempty,oneof=text html"`
	Skills      types.SkillSet `json:"skills"`
	Location    string         `json:"location,omitempty"`
	SalaryMin   int            `json:"salary_min,omitempty"`
	SalaryMax   int            `json:"salary_max,omitempty"`
	IsRemote    bool           `json:"is_remote"`
	PostedAt    time.Time      `json:"posted_at"`
	URL         string         `json:"url,omitempty"`
}

// KeywordExtractor derives keywords from description text. Both
// keywords.Extractor and keywords.Cache satisfy it.
type KeywordExtractor interface {
	Extract(description string) types.KeywordSet
}

// Options configures an Ingestor.
type Options struct {
	// InferSkills fills an empty skill list from the vocabulary skills found
	// among the extracted keywords.
	InferSkills bool
}

// Ingestor builds JobPostings from NewPostings.
type Ingestor struct {
	extractor KeywordExtractor
	vocab     *vocabulary.Vocabulary
	opts      Options
	now       func() time.Time
	newID     func() string
}

// NewIngestor creates an Ingestor. A nil extractor selects a cached default
// extractor; a nil vocab selects the default vocabulary.
func NewIngestor(extractor KeywordExtractor, vocab *vocabulary.Vocabulary, opts Options) *Ingestor {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	if extractor == nil {
		extractor = keywords.NewCache(keywords.NewExtractor(vocab, keywords.Options{}), 0)
	}
	return &Ingestor{
		extractor: extractor,
		vocab:     vocab,
		opts:      opts,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Ingest cleans the description, extracts its keywords, assigns an ID and
// posting time when missing, and validates the result.
func (i *Ingestor) Ingest(p NewPosting) (types.JobPosting, error) {
	if err := validate.Struct(p); err != nil {
		return types.JobPosting{}, fmt.Errorf("invalid posting %q: %w", p.Title, err)
	}

	description := p.Description
	if p.Format == FormatHTML {
		text, err := fetch.ExtractMainText(description, fetch.JobPostingSelectors())
		if err != nil {
			return types.JobPosting{}, fmt.Errorf("failed to read HTML description of %q: %w", p.Title, err)
		}
		description = text
	}
	description = CleanText(description)

	extracted := i.extractor.Extract(description)

	skills := types.NewSkillSet(p.Skills)
	if len(skills) == 0 && i.opts.InferSkills {
		skills = i.inferSkills(extracted)
	}

	job := types.JobPosting{
		ID:          p.ID,
		Title:       p.Title,
		Company:     p.Company,
		Description: description,
		Skills:      skills,
		Keywords:    extracted,
		Location:    p.Location,
		SalaryMin:   p.SalaryMin,
		SalaryMax:   p.SalaryMax,
		IsRemote:    p.IsRemote,
		PostedAt:    p.PostedAt,
		URL:         p.URL,
	}
	if job.ID == "" {
		job.ID = i.newID()
	}
	if job.PostedAt.IsZero() {
		job.PostedAt = i.now().UTC()
	}

	if err := job.Validate(); err != nil {
		return types.JobPosting{}, err
	}
	return job, nil
}

// IngestAll ingests every posting, rejecting duplicate IDs.
func (i *Ingestor) IngestAll(postings []NewPosting) ([]types.JobPosting, error) {
	jobs := make([]types.JobPosting, 0, len(postings))
	seen := make(map[string]int, len(postings))
	for n, p := range postings {
		job, err := i.Ingest(p)
		if err != nil {
			return nil, fmt.Errorf("posting %d: %w", n, err)
		}
		if first, dup := seen[job.ID]; dup {
			return nil, fmt.Errorf("posting %d: duplicate id %q (first seen at posting %d)", n, job.ID, first)
		}
		seen[job.ID] = n
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (i *Ingestor) inferSkills(extracted types.KeywordSet) types.SkillSet {
	var found []string
	for _, kw := range extracted {
		if i.vocab.IsSkill(kw.Term) {
			found = append(found, kw.Term)
		}
	}
	return types.NewSkillSet(found)
}

// LoadNewPostings reads a JSON file holding one posting or an array of them.
func LoadNewPostings(path string) ([]NewPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read postings file: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var postings []NewPosting
		if err := json.Unmarshal(trimmed, &postings); err != nil {
			return nil, fmt.Errorf("failed to parse postings: %w", err)
		}
		return postings, nil
	}

	var posting NewPosting
	if err := json.Unmarshal(trimmed, &posting); err != nil {
		return nil, fmt.Errorf("failed to parse posting: %w", err)
	}
	return []NewPosting{posting}, nil
}

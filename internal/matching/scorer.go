// Package matching scores how well a candidate's skills fit a job posting.
package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vocabulary"
)

// Default weights for scoring components
const (
	DefaultSkillWeight   = 0.7
	DefaultKeywordWeight = 0.3
)

// weightSumTolerance absorbs float rounding when checking that weights sum to 1
const weightSumTolerance = 1e-9

var validate = validator.New()

// Weights blends the skill and keyword signals into one score.
type Weights struct {
	Skill   float64 `json:"skill" validate:"gte=0,lte=1"`
	Keyword float64 `json:"keyword" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the default 0.7 skill / 0.3 keyword split.
func DefaultWeights() Weights {
	return Weights{Skill: DefaultSkillWeight, Keyword: DefaultKeywordWeight}
}

// Validate checks that both weights are in [0,1] and sum to 1.
func (w Weights) Validate() error {
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("invalid weights: %w", err)
	}
	if math.Abs(w.Skill+w.Keyword-1) > weightSumTolerance {
		return fmt.Errorf("invalid weights: skill %.3f + keyword %.3f must sum to 1", w.Skill, w.Keyword)
	}
	return nil
}

// Scorer computes match scores. It holds only immutable state and is safe for
// concurrent use.
type Scorer struct {
	vocab   *vocabulary.Vocabulary
	weights Weights
}

// NewScorer creates a Scorer. A nil vocab selects the default vocabulary.
func NewScorer(vocab *vocabulary.Vocabulary, weights Weights) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Scorer{vocab: vocab, weights: weights}, nil
}

// NewDefaultScorer creates a Scorer with the default vocabulary and weights.
func NewDefaultScorer() *Scorer {
	return &Scorer{vocab: vocabulary.Default(), weights: DefaultWeights()}
}

// Weights returns the scorer's weights.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score rates candidate against a job's declared skills and extracted keywords.
//
// The skill signal is the fraction of job skills the candidate holds. The
// keyword signal is the share of keyword weight whose term is one of the
// candidate's skills. Both compare canonical names after alias resolution, so
// "js" matches "javascript" but "java" never matches "javascript".
func (s *Scorer) Score(candidate, jobSkills types.SkillSet, keywords types.KeywordSet) (types.MatchResult, error) {
	if err := candidate.Validate(); err != nil {
		return types.MatchResult{}, fmt.Errorf("candidate skills: %w", err)
	}
	if err := jobSkills.Validate(); err != nil {
		return types.MatchResult{}, fmt.Errorf("job skills: %w", err)
	}
	if err := keywords.Validate(); err != nil {
		return types.MatchResult{}, fmt.Errorf("job keywords: %w", err)
	}

	held := s.canonicalSet(candidate)

	skillOverlap, matched, missing := s.skillOverlap(held, jobSkills)
	keywordOverlap, matchedKeywords := s.keywordOverlap(held, keywords)

	score := s.weights.Skill*skillOverlap + s.weights.Keyword*keywordOverlap
	score = math.Max(0, math.Min(1, score))

	return types.MatchResult{
		Score:           types.MatchScore(score),
		Percent:         types.MatchScore(score).Percent(),
		SkillOverlap:    skillOverlap,
		KeywordOverlap:  keywordOverlap,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		MatchedKeywords: matchedKeywords,
		Notes:           generateNotes(skillOverlap, keywordOverlap, matched, missing),
	}, nil
}

// ScoreJob is Score against a job posting's skills and keywords.
func (s *Scorer) ScoreJob(candidate types.SkillSet, job *types.JobPosting) (types.MatchResult, error) {
	result, err := s.Score(candidate, job.Skills, job.Keywords)
	if err != nil {
		return types.MatchResult{}, fmt.Errorf("scoring job %q: %w", job.ID, err)
	}
	return result, nil
}

func (s *Scorer) canonicalSet(skills types.SkillSet) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		set[s.vocab.Canonical(skill)] = struct{}{}
	}
	return set
}

// skillOverlap returns |C ∩ J| / |J| over canonical names, plus the matched and
// missing job skills in sorted order.
func (s *Scorer) skillOverlap(held map[string]struct{}, jobSkills types.SkillSet) (float64, []string, []string) {
	required := s.canonicalSet(jobSkills)
	if len(required) == 0 {
		return 0, []string{}, []string{}
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for skill := range required {
		if _, ok := held[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	return float64(len(matched)) / float64(len(required)), matched, missing
}

// keywordOverlap returns the weight share of keywords the candidate holds as
// skills, plus those keyword terms in keyword order.
func (s *Scorer) keywordOverlap(held map[string]struct{}, keywords types.KeywordSet) (float64, []string) {
	total := keywords.TotalWeight()
	if total == 0 {
		return 0, []string{}
	}

	matchedWeight := 0.0
	matched := make([]string, 0)
	for _, kw := range keywords {
		if _, ok := held[s.vocab.Canonical(kw.Term)]; ok {
			matchedWeight += kw.Weight
			matched = append(matched, kw.Term)
		}
	}

	overlap := matchedWeight / total
	if overlap > 1.0 {
		overlap = 1.0
	}
	return overlap, matched
}

package listing

import (
	"context"
	"time"

	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vocabulary"
)

// Lister filters postings, ranks the survivors for a candidate and labels
// each row with its age.
type Lister struct {
	ranker *ranking.Ranker
	vocab  *vocabulary.Vocabulary
	now    func() time.Time
}

// NewLister creates a Lister. Nil arguments select the defaults.
func NewLister(ranker *ranking.Ranker, vocab *vocabulary.Vocabulary) *Lister {
	if ranker == nil {
		ranker = ranking.NewRanker(nil, ranking.Options{})
	}
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Lister{ranker: ranker, vocab: vocab, now: time.Now}
}

// WithClock returns a copy of l that reads the time from now.
func (l *Lister) WithClock(now func() time.Time) *Lister {
	c := *l
	c.now = now
	return &c
}

// List applies filter to jobs and ranks what remains for candidate. The
// filter runs before ranking, so it never changes the relative order of the
// jobs it keeps.
func (l *Lister) List(ctx context.Context, candidate types.SkillSet, jobs []types.JobPosting, filter Filter) (*types.RankedJobs, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	ranked, err := l.ranker.RankParallel(ctx, candidate, filter.Apply(jobs, l.vocab))
	if err != nil {
		return nil, err
	}

	now := l.now()
	for i := range ranked {
		ranked[i].TimeAgo = TimeAgo(ranked[i].Job.PostedAt, now)
	}
	return &types.RankedJobs{Ranked: ranked}, nil
}

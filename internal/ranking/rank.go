// Package ranking orders job postings by how well they fit a candidate.
package ranking

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/types"
)

// Options configures a Ranker.
type Options struct {
	// Workers bounds the goroutines RankParallel scores with. Zero selects GOMAXPROCS.
	Workers int
}

// Ranker scores and orders jobs for a candidate.
type Ranker struct {
	scorer  *matching.Scorer
	workers int
}

// NewRanker creates a Ranker. A nil scorer selects the default scorer.
func NewRanker(scorer *matching.Scorer, opts Options) *Ranker {
	if scorer == nil {
		scorer = matching.NewDefaultScorer()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Ranker{scorer: scorer, workers: workers}
}

// Rank scores every job against candidate and returns them ordered by score
// descending, then most recently posted, then ID. A candidate with no skills
// scores 0 everywhere, which leaves a pure recency order.
func (r *Ranker) Rank(candidate types.SkillSet, jobs []types.JobPosting) ([]types.RankedJob, error) {
	ranked := make([]types.RankedJob, 0, len(jobs))
	for i := range jobs {
		result, err := r.scorer.ScoreJob(candidate, &jobs[i])
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, types.RankedJob{Job: jobs[i], Match: result})
	}

	SortRanked(ranked)
	return ranked, nil
}

// RankParallel is Rank with scoring spread over a bounded worker pool. It
// returns the same order as Rank. Cancelling ctx stops scheduling further jobs
// and returns the context error.
func (r *Ranker) RankParallel(ctx context.Context, candidate types.SkillSet, jobs []types.JobPosting) ([]types.RankedJob, error) {
	ranked := make([]types.RankedJob, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	scheduled := 0
	for i := range jobs {
		if gCtx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			result, err := r.scorer.ScoreJob(candidate, &jobs[i])
			if err != nil {
				return err
			}
			// each goroutine owns index i
			ranked[i] = types.RankedJob{Job: jobs[i], Match: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if scheduled < len(jobs) {
		return nil, fmt.Errorf("ranking cancelled after %d of %d jobs: %w", scheduled, len(jobs), ctx.Err())
	}

	SortRanked(ranked)
	return ranked, nil
}

// SortRanked orders rows by score descending, PostedAt descending, then ID
// ascending. The order is total for distinct IDs, so sorting twice is a no-op.
func SortRanked(rows []types.RankedJob) {
	sort.SliceStable(rows, func(i, j int) bool {
		return less(&rows[i], &rows[j])
	})
}

func less(a, b *types.RankedJob) bool {
	if a.Match.Score != b.Match.Score {
		return a.Match.Score > b.Match.Score
	}
	if !a.Job.PostedAt.Equal(b.Job.PostedAt) {
		return a.Job.PostedAt.After(b.Job.PostedAt)
	}
	return a.Job.ID < b.Job.ID
}

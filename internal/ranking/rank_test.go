package ranking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jonathan/job-matcher/internal/parsing"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func job(id string, daysAgo int, skills []string, keywords types.KeywordSet) types.JobPosting {
	return types.JobPosting{
		ID:       id,
		Title:    "Engineer " + id,
		Skills:   types.NewSkillSet(skills),
		Keywords: keywords,
		PostedAt: baseTime.AddDate(0, 0, -daysAgo),
	}
}

func ids(rows []types.RankedJob) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Job.ID
	}
	return out
}

func TestRank_WorkedExample(t *testing.T) {
	jobs := []types.JobPosting{
		job("B", 0, []string{"java"}, types.KeywordSet{{Term: "java", Weight: 1.0}}),
		job("A", 0, []string{"python", "go"}, types.KeywordSet{{Term: "python", Weight: 0.9}, {Term: "docker", Weight: 0.5}}),
	}

	ranked, err := NewRanker(nil, Options{}).Rank(types.NewSkillSet([]string{"python", "sql"}), jobs)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, ids(ranked))
	assert.InDelta(t, 0.543, float64(ranked[0].Match.Score), 0.001)
	assert.Equal(t, types.MatchScore(0), ranked[1].Match.Score)
}

func TestRank_TieBreaks(t *testing.T) {
	keywords := types.KeywordSet{{Term: "go", Weight: 1}}
	jobs := []types.JobPosting{
		job("c", 3, []string{"go"}, keywords),
		job("b", 1, []string{"go"}, keywords),
		job("a", 3, []string{"go"}, keywords),
		job("z", 0, []string{"rust"}, types.KeywordSet{}),
	}

	ranked, err := NewRanker(nil, Options{}).Rank(types.NewSkillSet([]string{"go"}), jobs)
	require.NoError(t, err)

	// equal scores: newest first, then ID
	assert.Equal(t, []string{"b", "a", "c", "z"}, ids(ranked))
}

func TestRank_EmptyCandidateIsRecencyOrder(t *testing.T) {
	jobs := []types.JobPosting{
		job("old", 30, []string{"go"}, types.KeywordSet{{Term: "go", Weight: 1}}),
		job("new", 0, []string{"python"}, types.KeywordSet{}),
		job("mid", 7, nil, types.KeywordSet{}),
	}

	ranked, err := NewRanker(nil, Options{}).Rank(types.SkillSet{}, jobs)
	require.NoError(t, err)

	assert.Equal(t, []string{"new", "mid", "old"}, ids(ranked))
	for _, row := range ranked {
		assert.Equal(t, types.MatchScore(0), row.Match.Score)
	}
}

func TestRank_Idempotent(t *testing.T) {
	r := NewRanker(nil, Options{})
	candidate := types.NewSkillSet([]string{"go", "docker"})
	jobs := sampleJobs(25)

	first, err := r.Rank(candidate, jobs)
	require.NoError(t, err)
	reordered := make([]types.JobPosting, len(first))
	for i, row := range first {
		reordered[i] = row.Job
	}
	second, err := r.Rank(candidate, reordered)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRank_TotalOrder(t *testing.T) {
	ranked, err := NewRanker(nil, Options{}).Rank(types.NewSkillSet([]string{"go", "sql"}), sampleJobs(40))
	require.NoError(t, err)

	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		assert.False(t, less(&cur, &prev), "rows %d and %d out of order", i-1, i)
		assert.True(t, less(&prev, &cur), "rows %d and %d not strictly ordered", i-1, i)
	}
}

func TestRank_Empty(t *testing.T) {
	ranked, err := NewRanker(nil, Options{}).Rank(types.NewSkillSet([]string{"go"}), nil)
	require.NoError(t, err)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRank_ContractViolation(t *testing.T) {
	jobs := []types.JobPosting{job("ok", 0, []string{"go"}, types.KeywordSet{})}
	jobs = append(jobs, types.JobPosting{ID: "bad", Skills: types.SkillSet{"Go"}})

	_, err := NewRanker(nil, Options{}).Rank(types.NewSkillSet([]string{"go"}), jobs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsing.ErrContractViolation))
}

func TestRankParallel_MatchesRank(t *testing.T) {
	candidate := types.NewSkillSet([]string{"go", "python", "kubernetes"})
	jobs := sampleJobs(100)

	for _, workers := range []int{0, 1, 3, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			r := NewRanker(nil, Options{Workers: workers})

			sequential, err := r.Rank(candidate, jobs)
			require.NoError(t, err)
			parallel, err := r.RankParallel(context.Background(), candidate, jobs)
			require.NoError(t, err)

			assert.Equal(t, sequential, parallel)
		})
	}
}

func TestRankParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRanker(nil, Options{Workers: 2}).RankParallel(ctx, types.NewSkillSet([]string{"go"}), sampleJobs(10))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRankParallel_ContractViolation(t *testing.T) {
	jobs := append(sampleJobs(5), types.JobPosting{ID: "bad", Keywords: types.KeywordSet{{Term: "go", Weight: 2}}})

	_, err := NewRanker(nil, Options{Workers: 2}).RankParallel(context.Background(), types.SkillSet{}, jobs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsing.ErrContractViolation))
}

func sampleJobs(n int) []types.JobPosting {
	skillPool := [][]string{
		{"go", "kubernetes"},
		{"python", "sql"},
		{"java"},
		{"go", "sql", "docker"},
		{},
	}
	keywordPool := []types.KeywordSet{
		{{Term: "go", Weight: 1}, {Term: "distributed systems", Weight: 0.5}},
		{{Term: "python", Weight: 1}},
		{},
		{{Term: "docker", Weight: 1}, {Term: "team", Weight: 0.25}},
	}

	jobs := make([]types.JobPosting, n)
	for i := range jobs {
		jobs[i] = job(fmt.Sprintf("job-%03d", i), i%6, skillPool[i%len(skillPool)], keywordPool[i%len(keywordPool)])
	}
	return jobs
}

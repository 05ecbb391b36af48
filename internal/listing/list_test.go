package listing

import (
	"context"
	"testing"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		age  time.Duration
		want string
	}{
		{0, "Just now"},
		{59 * time.Minute, "Just now"},
		{-2 * time.Hour, "Just now"},
		{time.Hour, "1 hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{23 * time.Hour, "23 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{47 * time.Hour, "1 day ago"},
		{3 * 24 * time.Hour, "3 days ago"},
		{7 * 24 * time.Hour, "1 week ago"},
		{13 * 24 * time.Hour, "1 week ago"},
		{21 * 24 * time.Hour, "3 weeks ago"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeAgo(now.Add(-tt.age), now), "age %s", tt.age)
	}
}

func TestLister_List(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	jobs := []types.JobPosting{
		{ID: "a", Title: "Python", Skills: types.NewSkillSet([]string{"python"}), Keywords: types.KeywordSet{{Term: "python", Weight: 1}}, PostedAt: now.Add(-30 * time.Minute)},
		{ID: "b", Title: "Go", Skills: types.NewSkillSet([]string{"go"}), Keywords: types.KeywordSet{{Term: "go", Weight: 1}}, PostedAt: now.Add(-50 * time.Hour), IsRemote: true},
		{ID: "c", Title: "Go and SQL", Skills: types.NewSkillSet([]string{"go", "sql"}), Keywords: types.KeywordSet{}, PostedAt: now.Add(-8 * 24 * time.Hour)},
	}
	lister := NewLister(nil, nil).WithClock(func() time.Time { return now })
	candidate := types.NewSkillSet([]string{"go"})

	all, err := lister.List(context.Background(), candidate, jobs, Filter{})
	require.NoError(t, err)
	require.Len(t, all.Ranked, 3)
	assert.Equal(t, "b", all.Ranked[0].Job.ID)
	assert.Equal(t, "c", all.Ranked[1].Job.ID)
	assert.Equal(t, "a", all.Ranked[2].Job.ID)
	assert.Equal(t, "2 days ago", all.Ranked[0].TimeAgo)
	assert.Equal(t, "1 week ago", all.Ranked[1].TimeAgo)
	assert.Equal(t, "Just now", all.Ranked[2].TimeAgo)

	onsite, err := lister.List(context.Background(), candidate, jobs, Filter{Remote: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, onsite.Ranked, 2)
	assert.Equal(t, "c", onsite.Ranked[0].Job.ID, "filtering keeps relative order")
	assert.Equal(t, "a", onsite.Ranked[1].Job.ID)
}

func TestLister_ListInvalidFilter(t *testing.T) {
	_, err := NewLister(nil, nil).List(context.Background(), types.SkillSet{}, nil, Filter{MinSalary: 5, MaxSalary: 1})
	assert.Error(t, err)
}

func TestLister_ListNothingMatches(t *testing.T) {
	got, err := NewLister(nil, nil).List(context.Background(), types.SkillSet{}, listingJobs(), Filter{Location: "Berlin"})
	require.NoError(t, err)
	assert.Empty(t, got.Ranked)
}

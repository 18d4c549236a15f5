package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/stats"
)

func TestLeaderboardService_Rank(t *testing.T) {
	f := newFixture(t, "2024-03-06 20:00")
	ctx := context.Background()

	f.addUser(t, "a", "Ana")
	f.addUser(t, "b", "Bo")
	f.addUser(t, "c", "Cy")

	seed := map[string]map[string]int{
		"a": {"2024-03-06": 40, "2024-03-05": 100, "2024-01-10": 0},
		"b": {"2024-03-06": 90, "2024-03-04": 0, "2024-03-05": 0},
		"c": {"2024-03-05": 50},
	}
	for id, h := range seed {
		for date, progress := range h {
			_, err := f.history.Save(id, date, nil, progress)
			require.NoError(t, err)
		}
	}

	daily, err := f.leaderboard.Rank(ctx, stats.PeriodDaily)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, memberIDs(daily))
	assert.Equal(t, 0, daily[2].Progress, "no entry today ranks as zero")

	weekly, err := f.leaderboard.Rank(ctx, stats.PeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, memberIDs(weekly))
	assert.Equal(t, 70, weekly[0].Stats.Weekly)

	penalty, err := f.leaderboard.Rank(ctx, stats.PeriodPenalty)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, memberIDs(penalty))
	assert.Equal(t, 2000, penalty[0].Stats.Penalty)
}

func TestLeaderboardService_CacheInvalidatedOnHistoryWrite(t *testing.T) {
	f := newFixture(t, "2024-03-06 20:00")
	ctx := context.Background()

	f.addUser(t, "a", "Ana")
	_, err := f.history.Save("a", "2024-03-06", nil, 10)
	require.NoError(t, err)

	members, err := f.leaderboard.Members(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, 10, members[0].Progress)

	var cached []any
	require.NoError(t, f.cache.Get(ctx, LeaderboardCacheKey("2024-03-06"), &cached))

	f.addUser(t, "b", "Bo")
	members, err = f.leaderboard.Members(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1, "served from cache")

	_, err = f.history.Save("a", "2024-03-06", nil, 80)
	require.NoError(t, err)

	members, err = f.leaderboard.Members(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, 80, members[0].Progress)
	assert.Equal(t, 80, members[0].History["2024-03-06"])
}

func memberIDs(members []model.Member) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}

func TestLeaderboardService_Member(t *testing.T) {
	f := newFixture(t, "2024-03-06 20:00")
	ctx := context.Background()

	f.addUser(t, "a", "Ana")
	_, err := f.history.Save("a", "2024-03-05", nil, 0)
	require.NoError(t, err)

	member, err := f.leaderboard.Member(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Ana", member.Name)
	assert.Equal(t, 1000, member.Stats.Penalty)
	assert.NotEmpty(t, member.Avatar)

	_, err = f.leaderboard.Member(ctx, "ghost")
	assert.True(t, IsNotFound(err))
}

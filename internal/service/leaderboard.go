package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/templui/goalboard/internal/cache"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/repository"
	"github.com/templui/goalboard/internal/stats"
)

// LeaderboardCacheKey is the cache key of the member list built on date.
func LeaderboardCacheKey(date string) string {
	return "leaderboard:members:" + date
}

type LeaderboardService struct {
	users   repository.UserRepository
	history repository.HistoryRepository
	cache   cache.Cache
	ttl     time.Duration
	clock   Clock
}

func NewLeaderboardService(
	users repository.UserRepository,
	history repository.HistoryRepository,
	c cache.Cache,
	ttl time.Duration,
	clock Clock,
) *LeaderboardService {
	if c == nil {
		c = cache.Noop{}
	}
	return &LeaderboardService{
		users:   users,
		history: history,
		cache:   c,
		ttl:     ttl,
		clock:   clock,
	}
}

// Members returns every registered user with today's progress, full
// history and derived stats, in registration order.
func (s *LeaderboardService) Members(ctx context.Context) ([]model.Member, error) {
	now := s.clock.Now()
	key := LeaderboardCacheKey(stats.DateKey(now))

	var members []model.Member
	err := s.cache.Get(ctx, key, &members)
	if err == nil {
		return members, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("leaderboard cache read failed", "error", err)
	}

	members, err = s.buildMembers(now)
	if err != nil {
		return nil, err
	}

	err = s.cache.Set(ctx, key, members, s.ttl)
	if err != nil {
		slog.Warn("leaderboard cache write failed", "error", err)
	}

	return members, nil
}

func (s *LeaderboardService) buildMembers(now time.Time) ([]model.Member, error) {
	users, err := s.users.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	today := stats.DateKey(now)
	members := make([]model.Member, 0, len(users))
	for _, u := range users {
		entries, err := s.history.Entries(u.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load history of %s: %w", u.ID, err)
		}

		h := make(stats.History, len(entries))
		for _, e := range entries {
			h[e.Date] = e.Progress
		}

		members = append(members, model.Member{
			ID:       u.ID,
			Name:     u.Nickname,
			Avatar:   u.AvatarURL(),
			Progress: h[today],
			History:  h,
			Stats:    stats.Summarize(h, now),
		})
	}

	return members, nil
}

// Rank returns the members ordered for period.
func (s *LeaderboardService) Rank(ctx context.Context, period stats.Period) ([]model.Member, error) {
	members, err := s.Members(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Rank(members, period), nil
}

// Member returns one ranked member's card.
func (s *LeaderboardService) Member(ctx context.Context, id string) (*model.Member, error) {
	members, err := s.Members(ctx)
	if err != nil {
		return nil, err
	}

	for i := range members {
		if members[i].ID == id {
			return &members[i], nil
		}
	}
	return nil, repository.ErrUserNotFound
}

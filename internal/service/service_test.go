package service

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalboard/internal/cache"
	"github.com/templui/goalboard/internal/db/dbtest"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/repository"
	"github.com/templui/goalboard/internal/storage"
)

var kst = time.FixedZone("KST", 9*60*60)

// fixedClock returns a clock frozen at the given local wall time in KST.
func fixedClock(value string) (Clock, *time.Time) {
	now, err := time.ParseInLocation("2006-01-02 15:04", value, kst)
	if err != nil {
		panic(err)
	}
	return NewClock(func() time.Time { return now }, kst), &now
}

type fixture struct {
	db          *sqlx.DB
	users       repository.UserRepository
	history     *HistoryService
	goals       *GoalService
	leaderboard *LeaderboardService
	cache       *cache.Memory
	now         *time.Time
}

func newFixture(t *testing.T, at string) *fixture {
	t.Helper()

	database := dbtest.New(t)
	clock, now := fixedClock(at)
	memCache := cache.NewMemory()

	users := repository.NewUserRepository(database)
	historyRepo := repository.NewHistoryRepository(database)
	history := NewHistoryService(historyRepo, memCache, clock)

	return &fixture{
		db:          database,
		users:       users,
		history:     history,
		goals:       NewGoalService(repository.NewGoalRepository(database), history, clock),
		leaderboard: NewLeaderboardService(users, historyRepo, memCache, time.Minute, clock),
		cache:       memCache,
		now:         now,
	}
}

func (f *fixture) addUser(t *testing.T, id, nickname string) *model.User {
	t.Helper()
	user := &model.User{ID: id, Nickname: nickname, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	require.NoError(t, f.users.Upsert(user))
	return user
}

func guestGoalService(clock Clock) (*GoalService, *HistoryService) {
	store := storage.NewMemoryStorage()
	history := NewHistoryService(repository.NewGuestHistoryRepository(store), nil, clock)
	return NewGoalService(repository.NewGuestGoalRepository(store), history, clock), history
}

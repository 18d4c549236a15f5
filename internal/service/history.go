package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/templui/goalboard/internal/cache"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/repository"
	"github.com/templui/goalboard/internal/stats"
	"github.com/templui/goalboard/internal/validation"
)

type HistoryService struct {
	repo  repository.HistoryRepository
	cache cache.Cache
	clock Clock
}

func NewHistoryService(repo repository.HistoryRepository, c cache.Cache, clock Clock) *HistoryService {
	if c == nil {
		c = cache.Noop{}
	}
	return &HistoryService{repo: repo, cache: c, clock: clock}
}

// Record snapshots goals as today's entry for ownerID.
func (s *HistoryService) Record(ownerID string, goals []*model.Goal) (*model.HistoryEntry, error) {
	return s.upsert(ownerID, s.clock.Today(), stats.Progress(goals), model.SnapshotGoals(goals))
}

// Save stores a client submitted entry. Progress is range checked but
// not recomputed from the goals.
func (s *HistoryService) Save(ownerID, date string, goals model.Snapshots, progress int) (*model.HistoryEntry, error) {
	err := validation.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateProgress(progress)
	if err != nil {
		return nil, err
	}

	return s.upsert(ownerID, date, progress, append(model.Snapshots{}, goals...))
}

func (s *HistoryService) upsert(ownerID, date string, progress int, goals model.Snapshots) (*model.HistoryEntry, error) {
	now := time.Now().UTC()
	entry := &model.HistoryEntry{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Date:      date,
		Progress:  progress,
		Goals:     goals,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Upsert(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save history: %w", err)
	}

	err = s.cache.Delete(context.Background(), LeaderboardCacheKey(s.clock.Today()))
	if err != nil {
		slog.Warn("failed to invalidate leaderboard cache", "error", err, "user_id", ownerID)
	}

	return entry, nil
}

// Entries returns the owner's history keyed by date.
func (s *HistoryService) Entries(ownerID string) (map[string]*model.HistoryEntry, error) {
	entries, err := s.repo.Entries(ownerID)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*model.HistoryEntry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}
	return byDate, nil
}

// ProgressMap returns the owner's history as date to progress.
func (s *HistoryService) ProgressMap(ownerID string) (stats.History, error) {
	entries, err := s.repo.Entries(ownerID)
	if err != nil {
		return nil, err
	}

	h := make(stats.History, len(entries))
	for _, e := range entries {
		h[e.Date] = e.Progress
	}
	return h, nil
}

func (s *HistoryService) Entry(ownerID, date string) (*model.HistoryEntry, error) {
	err := validation.ValidateDate(date)
	if err != nil {
		return nil, err
	}
	return s.repo.ByDate(ownerID, date)
}

// Calendar lays out month (YYYY-MM, current month when empty) day by day.
func (s *HistoryService) Calendar(ownerID, month string) ([]model.CalendarDay, error) {
	anchor := s.clock.Now()
	if month != "" {
		err := validation.ValidateMonth(month)
		if err != nil {
			return nil, err
		}
		anchor, err = time.ParseInLocation("2006-01", month, s.clock.Location())
		if err != nil {
			return nil, validation.ErrInvalidMonth
		}
	}

	h, err := s.ProgressMap(ownerID)
	if err != nil {
		return nil, err
	}

	days := stats.MonthDays(anchor)
	calendar := make([]model.CalendarDay, 0, len(days))
	for _, d := range days {
		key := stats.DateKey(d)
		day := model.CalendarDay{Date: key}
		if progress, ok := h[key]; ok {
			day.Progress = &progress
		}
		day.Level = stats.Intensity(day.Progress)
		calendar = append(calendar, day)
	}
	return calendar, nil
}

// IsNotFound reports whether err means the requested entry does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrHistoryNotFound) ||
		errors.Is(err, repository.ErrGoalNotFound) ||
		errors.Is(err, repository.ErrUserNotFound)
}

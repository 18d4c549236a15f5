package service

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/repository"
	"github.com/templui/goalboard/internal/stats"
	"github.com/templui/goalboard/internal/validation"
)

// GoalService manages one owner's daily checklist. The owner is a user ID
// or a guest ID, depending on the repositories it was built with.
type GoalService struct {
	repo    repository.GoalRepository
	history *HistoryService
	clock   Clock
}

func NewGoalService(repo repository.GoalRepository, history *HistoryService, clock Clock) *GoalService {
	return &GoalService{
		repo:    repo,
		history: history,
		clock:   clock,
	}
}

func (s *GoalService) Goals(ownerID string) ([]*model.Goal, error) {
	goals, err := s.repo.Goals(ownerID)
	if err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []*model.Goal{}
	}
	return goals, nil
}

func (s *GoalService) Add(ownerID, text string) (*model.Goal, error) {
	text, err := validation.GoalText(text)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Text:        text,
		Completed:   false,
		CreatedDate: stats.DateKey(now),
		CreatedAt:   now.UTC(),
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.recordToday(ownerID)
	return goal, nil
}

func (s *GoalService) Toggle(ownerID, goalID string) (*model.Goal, error) {
	goal, err := s.repo.ByID(ownerID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Toggle()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	s.recordToday(ownerID)
	return goal, nil
}

func (s *GoalService) Delete(ownerID, goalID string) error {
	err := s.repo.Delete(ownerID, goalID)
	if err != nil {
		return err
	}

	s.recordToday(ownerID)
	return nil
}

// recordToday rewrites today's history entry from the current goal list.
// The goal change itself stands even when this fails.
func (s *GoalService) recordToday(ownerID string) {
	goals, err := s.repo.Goals(ownerID)
	if err != nil {
		slog.Error("failed to load goals for history", "error", err, "user_id", ownerID)
		return
	}

	_, err = s.history.Record(ownerID, goals)
	if err != nil {
		slog.Error("failed to record daily history", "error", err, "user_id", ownerID, "date", s.clock.Today())
	}
}

// Summary returns today's progress and the owner's stats. Today's live
// progress replaces the stored entry for today; an owner with no goals
// and no entry yet is not counted for today.
func (s *GoalService) Summary(ownerID string) (*model.Summary, error) {
	goals, err := s.repo.Goals(ownerID)
	if err != nil {
		return nil, err
	}

	h, err := s.history.ProgressMap(ownerID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	today := stats.DateKey(now)
	progress := stats.Progress(goals)
	if _, ok := h[today]; ok || len(goals) > 0 {
		h[today] = progress
	}

	completed := 0
	for _, g := range goals {
		if g.Completed {
			completed++
		}
	}

	summary := stats.Summarize(h, now)
	return &model.Summary{
		Date:           today,
		Progress:       progress,
		Total:          len(goals),
		Completed:      completed,
		Stats:          summary,
		PenaltyDisplay: FormatPenalty(summary.Penalty),
		Motivation:     stats.Motivation(progress),
	}, nil
}

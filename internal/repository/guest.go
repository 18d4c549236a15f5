package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/storage"
)

// Guest data lives in the key-value store, one JSON document per guest
// and kind, so guest mode runs through the same services as signed-in users.

func guestKey(guestID, name string) string {
	return "guests/" + guestID + "/" + name + ".json"
}

func loadJSON(store storage.Storage, key string, v any) error {
	data, err := store.Load(key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func saveJSON(store storage.Storage, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Save(key, bytes.NewReader(data))
}

type guestGoalRepository struct {
	mu    sync.Mutex
	store storage.Storage
}

func NewGuestGoalRepository(store storage.Storage) GoalRepository {
	return &guestGoalRepository{store: store}
}

func (r *guestGoalRepository) load(guestID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	err := loadJSON(r.store, guestKey(guestID, "goals"), &goals)
	if err != nil {
		return nil, fmt.Errorf("failed to load guest goals: %w", err)
	}
	for _, g := range goals {
		g.UserID = guestID
	}
	return goals, nil
}

func (r *guestGoalRepository) save(guestID string, goals []*model.Goal) error {
	if goals == nil {
		goals = []*model.Goal{}
	}
	return saveJSON(r.store, guestKey(guestID, "goals"), goals)
}

func (r *guestGoalRepository) Create(goal *model.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goals, err := r.load(goal.UserID)
	if err != nil {
		return err
	}
	goals = append(goals, goal)
	return r.save(goal.UserID, goals)
}

func (r *guestGoalRepository) ByID(guestID, goalID string) (*model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	goals, err := r.load(guestID)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(goals, func(g *model.Goal) bool { return g.ID == goalID })
	if i < 0 {
		return nil, ErrGoalNotFound
	}
	return goals[i], nil
}

func (r *guestGoalRepository) Goals(guestID string) ([]*model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(guestID)
}

func (r *guestGoalRepository) Update(goal *model.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goals, err := r.load(goal.UserID)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(goals, func(g *model.Goal) bool { return g.ID == goal.ID })
	if i < 0 {
		return ErrGoalNotFound
	}
	goals[i].Text = goal.Text
	goals[i].Completed = goal.Completed
	return r.save(goal.UserID, goals)
}

func (r *guestGoalRepository) Delete(guestID, goalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goals, err := r.load(guestID)
	if err != nil {
		return err
	}
	before := len(goals)
	goals = slices.DeleteFunc(goals, func(g *model.Goal) bool { return g.ID == goalID })
	if len(goals) == before {
		return ErrGoalNotFound
	}
	return r.save(guestID, goals)
}

type guestHistoryRepository struct {
	mu    sync.Mutex
	store storage.Storage
}

func NewGuestHistoryRepository(store storage.Storage) HistoryRepository {
	return &guestHistoryRepository{store: store}
}

func (r *guestHistoryRepository) load(guestID string) (map[string]*model.HistoryEntry, error) {
	entries := make(map[string]*model.HistoryEntry)
	err := loadJSON(r.store, guestKey(guestID, "history"), &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to load guest history: %w", err)
	}
	for _, e := range entries {
		e.UserID = guestID
	}
	return entries, nil
}

func (r *guestHistoryRepository) Upsert(entry *model.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(entry.UserID)
	if err != nil {
		return err
	}

	stored := *entry
	if existing, ok := entries[entry.Date]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	}
	entries[entry.Date] = &stored

	return saveJSON(r.store, guestKey(entry.UserID, "history"), entries)
}

func (r *guestHistoryRepository) ByDate(guestID, date string) (*model.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(guestID)
	if err != nil {
		return nil, err
	}
	entry, ok := entries[date]
	if !ok {
		return nil, ErrHistoryNotFound
	}
	return entry, nil
}

func (r *guestHistoryRepository) Entries(guestID string) ([]*model.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(guestID)
	if err != nil {
		return nil, err
	}

	list := make([]*model.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		list = append(list, e)
	}
	slices.SortFunc(list, func(a, b *model.HistoryEntry) int {
		return strings.Compare(a.Date, b.Date)
	})
	return list, nil
}

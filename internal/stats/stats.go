// Package stats turns daily progress history into period averages,
// penalties and leaderboard rankings. Everything here is pure: the
// reference date is always passed in.
package stats

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"time"

	"github.com/templui/goalboard/internal/model"
)

// PenaltyUnit is owed for every day with zero progress.
const PenaltyUnit = 1000

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodPenalty Period = "penalty"
)

var ErrUnknownPeriod = errors.New("unknown ranking period")

// ParsePeriod accepts the ranking period names. An empty string means daily.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case "":
		return PeriodDaily, nil
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodPenalty:
		return p, nil
	}
	return "", ErrUnknownPeriod
}

// History maps a YYYY-MM-DD date to that day's progress percentage.
type History map[string]int

type Averages struct {
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
	Yearly  int `json:"yearly"`
}

type accumulator struct {
	sum   int
	count int
}

func (a *accumulator) add(v int) {
	a.sum += v
	a.count++
}

func (a accumulator) average() int {
	if a.count == 0 {
		return 0
	}
	return roundHalfUp(float64(a.sum) / float64(a.count))
}

// Calculate averages the history entries that fall in the current week,
// month and year of now. Periods run from their start up to and including
// now's day; later dates in the same period are counted too. Keys that are
// not dates never match.
func Calculate(h History, now time.Time) Averages {
	var week, month, year accumulator
	for key, progress := range h {
		day, err := ParseDate(key, now.Location())
		if err != nil {
			continue
		}
		if SameWeek(now, day) {
			week.add(progress)
		}
		if SameMonth(now, day) {
			month.add(progress)
		}
		if SameYear(now, day) {
			year.add(progress)
		}
	}

	return Averages{
		Weekly:  week.average(),
		Monthly: month.average(),
		Yearly:  year.average(),
	}
}

// Penalty charges PenaltyUnit for each recorded day at exactly zero.
// Days without an entry cost nothing.
func Penalty(h History) int {
	zeroDays := 0
	for _, progress := range h {
		if progress == 0 {
			zeroDays++
		}
	}
	return zeroDays * PenaltyUnit
}

// Summarize combines Calculate and Penalty.
func Summarize(h History, now time.Time) model.Stats {
	avg := Calculate(h, now)
	return model.Stats{
		Weekly:  avg.Weekly,
		Monthly: avg.Monthly,
		Yearly:  avg.Yearly,
		Penalty: Penalty(h),
	}
}

// Progress is the rounded share of completed goals, 0 for an empty list.
func Progress(goals []*model.Goal) int {
	if len(goals) == 0 {
		return 0
	}
	completed := 0
	for _, g := range goals {
		if g.Completed {
			completed++
		}
	}
	return roundHalfUp(100 * float64(completed) / float64(len(goals)))
}

// Rank returns a copy of members ordered by the period's score, highest
// first. Ties keep their input order. For PeriodPenalty the member owing
// the most comes first. An unknown period leaves the order unchanged.
func Rank(members []model.Member, period Period) []model.Member {
	ranked := make([]model.Member, len(members))
	copy(ranked, members)

	score := scoreFunc(period)
	if score == nil {
		return ranked
	}

	slices.SortStableFunc(ranked, func(a, b model.Member) int {
		return cmp.Compare(score(b), score(a))
	})
	return ranked
}

func scoreFunc(period Period) func(model.Member) int {
	switch period {
	case PeriodDaily:
		return func(m model.Member) int { return m.Progress }
	case PeriodWeekly:
		return func(m model.Member) int { return m.Stats.Weekly }
	case PeriodMonthly:
		return func(m model.Member) int { return m.Stats.Monthly }
	case PeriodYearly:
		return func(m model.Member) int { return m.Stats.Yearly }
	case PeriodPenalty:
		return func(m model.Member) int { return Penalty(m.History) }
	}
	return nil
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

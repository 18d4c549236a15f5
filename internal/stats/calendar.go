package stats

import (
	"time"
)

// DateLayout is the layout of history keys.
const DateLayout = time.DateOnly

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a history key as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// SameWeek reports whether a and b fall in the same Monday-started week,
// evaluated in a's location. A week spanning New Year is still one week.
func SameWeek(a, b time.Time) bool {
	return sameDay(StartOfWeek(a), StartOfWeek(b.In(a.Location())))
}

func SameMonth(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func SameYear(a, b time.Time) bool {
	return a.Year() == b.In(a.Location()).Year()
}

// MonthDays returns every day of the month containing t, at midnight.
func MonthDays(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	var days []time.Time
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

package service

import (
	"time"

	"github.com/templui/goalboard/internal/stats"
)

// Clock decides what "today" is for every service.
type Clock struct {
	now      func() time.Time
	location *time.Location
}

func NewClock(now func() time.Time, location *time.Location) Clock {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return Clock{now: now, location: location}
}

func (c Clock) Now() time.Time {
	return c.now().In(c.location)
}

func (c Clock) Today() string {
	return stats.DateKey(c.Now())
}

func (c Clock) Location() *time.Location {
	return c.location
}

package availability

import (
	"fmt"
	"time"
)

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:mm" (24h).
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On anchors the clock time to the calendar day of date, in date's location.
func (c ClockTime) On(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		c.Hour, c.Minute, 0, 0,
		date.Location(),
	)
}

// sameDay reports whether a and b fall on the same calendar date in a's location.
func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ceilToStep rounds t up to the next multiple of step counted from the top
// of t's hour. A t already on the grid is returned unchanged.
func ceilToStep(t time.Time, step time.Duration) time.Time {
	hour := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	elapsed := t.Sub(hour)
	if rem := elapsed % step; rem != 0 {
		elapsed += step - rem
	}
	return hour.Add(elapsed)
}

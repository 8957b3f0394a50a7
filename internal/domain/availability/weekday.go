package availability

import (
	"fmt"
	"strings"
	"time"
)

// Weekday names are stored as lowercase English words.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("invalid day of week %q", s)
	}
	return d, nil
}

// WeekdayName returns the lowercase English name used in persisted schedules.
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

package availability

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Occupies reports whether an appointment in this status blocks the schedule.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Appointment is the projection of a booked appointment the engine needs.
type Appointment struct {
	Start           time.Time
	DurationMinutes int
	Status          Status
}

func (a Appointment) End() time.Time {
	return a.Start.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// overlaps uses half-open intervals: [start,end) and [a.Start,a.End) collide
// iff start < a.End && end > a.Start.
func (a Appointment) overlaps(start, end time.Time) bool {
	return start.Before(a.End()) && end.After(a.Start)
}

func conflictsWithAny(start, end time.Time, appointments []Appointment) bool {
	for _, a := range appointments {
		if !a.Status.Occupies() {
			continue
		}
		if a.overlaps(start, end) {
			return true
		}
	}
	return false
}

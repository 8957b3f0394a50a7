// Package availability computes bookable appointment slots from a barber's
// weekly schedule and validates proposed bookings against it.
//
// Everything here is a pure function of its arguments: callers fetch the
// schedule and appointments, and inject the current time.
package availability

import (
	"iter"
	"slices"
	"time"
)

// SlotStep is the spacing of candidate start times. It does not depend on
// the service duration.
const SlotStep = 30 * time.Minute

// MaxDurationMinutes bounds a service; a booking never spans more than a day.
const MaxDurationMinutes = 24 * 60

// Slots returns the bookable start times on date as a sequence. Inputs are
// validated up front; the sequence itself is recomputed on every range, so
// it can be iterated any number of times.
//
// Only blocks recurring on date's weekday are considered. A slot must fit
// entirely inside one block and must not intersect any pending or
// confirmed appointment. When date is the same calendar day as now, start
// times before now are skipped by rounding now up to the next half hour.
func Slots(
	blocks []Block,
	date time.Time,
	durationMin int,
	appointments []Appointment,
	now time.Time,
) (iter.Seq[time.Time], error) {

	if err := checkDuration(durationMin); err != nil {
		return nil, err
	}
	daily := BlocksFor(blocks, date)
	for _, b := range daily {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}

	duration := time.Duration(durationMin) * time.Minute
	today := sameDay(date, now)

	return func(yield func(time.Time) bool) {
		var out []time.Time
		for _, b := range daily {
			out = appendBlockSlots(out, b, date, duration, appointments, now, today)
		}

		slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
		out = slices.CompactFunc(out, time.Time.Equal)

		for _, s := range out {
			if !yield(s) {
				return
			}
		}
	}, nil
}

// EnumerateSlots is Slots collected into a sorted slice. An empty, non-nil
// slice means no slot is available.
func EnumerateSlots(
	blocks []Block,
	date time.Time,
	durationMin int,
	appointments []Appointment,
	now time.Time,
) ([]time.Time, error) {

	seq, err := Slots(blocks, date, durationMin, appointments, now)
	if err != nil {
		return nil, err
	}
	out := slices.Collect(seq)
	if out == nil {
		out = []time.Time{}
	}
	return out, nil
}

func appendBlockSlots(
	out []time.Time,
	b Block,
	date time.Time,
	duration time.Duration,
	appointments []Appointment,
	now time.Time,
	today bool,
) []time.Time {

	blockStart, blockEnd := b.Window(date)

	cursor := blockStart
	if today && cursor.Before(now) {
		cursor = ceilToStep(now.In(date.Location()), SlotStep)
		if cursor.Before(blockStart) {
			cursor = blockStart
		}
	}

	for end := cursor.Add(duration); !end.After(blockEnd); end = cursor.Add(duration) {
		if !conflictsWithAny(cursor, end, appointments) {
			out = append(out, cursor)
		}
		cursor = cursor.Add(SlotStep)
	}
	return out
}

// ValidateSlot is the server-side authority on a single booking. It checks
// containment in a block of start's weekday, then collisions with pending
// or confirmed appointments. It does not look at the clock.
//
// The returned error is nil, ErrInvalidDuration, ErrInvalidBlock,
// ErrOutsideWorkingHours or ErrSlotTaken.
func ValidateSlot(
	blocks []Block,
	start time.Time,
	durationMin int,
	appointments []Appointment,
) error {

	if err := checkDuration(durationMin); err != nil {
		return err
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)

	contained := false
	for _, b := range BlocksFor(blocks, start) {
		if err := b.Validate(); err != nil {
			return err
		}
		blockStart, blockEnd := b.Window(start)
		if !start.Before(blockStart) && !end.After(blockEnd) {
			contained = true
		}
	}
	if !contained {
		return ErrOutsideWorkingHours
	}

	if conflictsWithAny(start, end, appointments) {
		return ErrSlotTaken
	}
	return nil
}

func checkDuration(durationMin int) error {
	if durationMin <= 0 || durationMin > MaxDurationMinutes {
		return ErrInvalidDuration
	}
	return nil
}

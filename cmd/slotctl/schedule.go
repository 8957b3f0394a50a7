package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type scheduleFile struct {
	Timezone string `json:"timezone"`
	Blocks   []struct {
		DayOfWeek string `json:"day_of_week"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	} `json:"blocks"`
	Appointments []struct {
		StartTime       string `json:"start_time"`
		DurationMinutes int    `json:"duration_minutes"`
		Status          string `json:"status"`
	} `json:"appointments"`
}

type schedule struct {
	loc          *time.Location
	blocks       []availability.Block
	appointments []availability.Appointment
}

var knownStatuses = map[availability.Status]bool{
	availability.StatusPending:   true,
	availability.StatusConfirmed: true,
	availability.StatusCancelled: true,
	availability.StatusCompleted: true,
}

func loadSchedule(path, tz string) (*schedule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	return parseSchedule(raw, tz)
}

// parseSchedule decodes a schedule file. tz, when set, wins over the
// file's own timezone. Any malformed entry fails the whole file.
func parseSchedule(raw []byte, tz string) (*schedule, error) {
	var f scheduleFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}

	if tz == "" {
		tz = f.Timezone
	}
	if tz != "" && !timezone.IsValid(tz) {
		return nil, fmt.Errorf("unknown timezone %q", tz)
	}
	s := &schedule{loc: timezone.Location(tz)}

	for i, b := range f.Blocks {
		block, err := availability.NewBlock(b.DayOfWeek, b.StartTime, b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		s.blocks = append(s.blocks, block)
	}

	for i, a := range f.Appointments {
		start, err := time.Parse(time.RFC3339, a.StartTime)
		if err != nil {
			return nil, fmt.Errorf("appointment %d: start_time: %w", i, err)
		}
		status := availability.Status(a.Status)
		if status == "" {
			status = availability.StatusPending
		}
		if !knownStatuses[status] {
			return nil, fmt.Errorf("appointment %d: unknown status %q", i, a.Status)
		}
		s.appointments = append(s.appointments, availability.Appointment{
			Start:           start.In(s.loc),
			DurationMinutes: a.DurationMinutes,
			Status:          status,
		})
	}

	return s, nil
}

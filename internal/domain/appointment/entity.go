package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// ===============================
// Projections for the availability engine
// ===============================

func ToEngineAppointments(aps []models.Appointment) []availability.Appointment {
	out := make([]availability.Appointment, 0, len(aps))
	for _, ap := range aps {
		duration := ap.DurationMin
		if duration <= 0 {
			duration = int(ap.EndTime.Sub(ap.StartTime) / time.Minute)
		}
		out = append(out, availability.Appointment{
			Start:           ap.StartTime,
			DurationMinutes: duration,
			Status:          Status(ap.Status),
		})
	}
	return out
}

// ToEngineBlocks parses persisted blocks. Malformed rows fail the whole
// call so data-entry mistakes surface instead of silently hiding slots.
func ToEngineBlocks(rows []models.AvailabilityBlock) ([]availability.Block, error) {
	out := make([]availability.Block, 0, len(rows))
	for _, r := range rows {
		b, err := availability.NewBlock(r.DayOfWeek, r.StartTime, r.EndTime)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentDTO struct {
	ID          uint       `json:"id"`
	BarberID    uint       `json:"barber_id"`
	ServiceID   uint       `json:"service_id"`
	ClientID    uint       `json:"client_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	DurationMin int        `json:"duration_min"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:          ap.ID,
		BarberID:    ap.BarberID,
		ServiceID:   ap.ServiceID,
		ClientID:    ap.ClientID,
		StartTime:   ap.StartTime,
		EndTime:     ap.EndTime,
		DurationMin: ap.DurationMin,
		Status:      ap.Status,
		Notes:       ap.Notes,
		ConfirmedAt: ap.ConfirmedAt,
		CancelledAt: ap.CancelledAt,
		CompletedAt: ap.CompletedAt,
	}
}

type AvailabilityBlockDTO struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func FromBlocks(rows []models.AvailabilityBlock) []AvailabilityBlockDTO {
	out := make([]AvailabilityBlockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, AvailabilityBlockDTO{
			DayOfWeek: r.DayOfWeek,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}
	return out
}

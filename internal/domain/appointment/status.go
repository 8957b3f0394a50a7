package appointment

import (
	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status = availability.Status

const (
	StatusPending   = availability.StatusPending
	StatusConfirmed = availability.StatusConfirmed
	StatusCancelled = availability.StatusCancelled
	StatusCompleted = availability.StatusCompleted
)

var ErrInvalidState = httperr.ErrBusiness("invalid_state")

// ===============================
// Validations
// ===============================

// CanConfirm: só pendentes podem ser confirmados
func CanConfirm(current Status) error {
	if current != StatusPending {
		return ErrInvalidState
	}
	return nil
}

// CanCancel: pendentes ou confirmados
func CanCancel(current Status) error {
	if !current.Occupies() {
		return ErrInvalidState
	}
	return nil
}

// CanComplete: só confirmados podem ser concluídos
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return ErrInvalidState
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

var ErrAppointmentNotFound = httperr.ErrBusiness("appointment_not_found")

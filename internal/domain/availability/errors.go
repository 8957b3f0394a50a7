package availability

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

var (
	// ErrInvalidDuration signals a service duration that is not positive or
	// exceeds MaxDurationMinutes.
	ErrInvalidDuration = httperr.ErrBusiness("invalid_duration")

	// ErrInvalidBlock signals malformed schedule data (start >= end or
	// unparsable fields).
	ErrInvalidBlock = httperr.ErrBusiness("invalid_availability_block")

	ErrOutsideWorkingHours = httperr.ErrBusiness("outside_working_hours")
	ErrSlotTaken           = httperr.ErrBusiness("slot_taken")
)

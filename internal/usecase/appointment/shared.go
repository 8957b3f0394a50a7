package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const defaultMinAdvanceMinutes = 120

// minAdvance is how far ahead of now a booking must start.
func minAdvance(shop *models.Barbershop) time.Duration {
	m := shop.MinAdvanceMinutes
	if m < 0 {
		m = defaultMinAdvanceMinutes
	}
	return time.Duration(m) * time.Minute
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

func uintPtr(v uint) *uint {
	return &v
}

package appointment

import "time"

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceID    uint
	Date         string // YYYY-MM-DD, no fuso da barbearia
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func NewTimeSlot(start time.Time, durationMin int) TimeSlot {
	return TimeSlot{
		Start: start.Format("15:04"),
		End:   start.Add(time.Duration(durationMin) * time.Minute).Format("15:04"),
	}
}

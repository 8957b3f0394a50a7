package models

import "time"

// AvailabilityBlock is one recurring weekly working interval of a barber.
// A barber may have several per day (split shifts).
type AvailabilityBlock struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_block_barber_day" json:"barber_id"`

	DayOfWeek string `gorm:"size:10;not null;index:idx_block_barber_day" json:"day_of_week"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

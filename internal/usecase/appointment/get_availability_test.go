package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository/memory"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func starts(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGetAvailability(t *testing.T) {
	tests := []struct {
		name       string
		minAdvance int
		serviceID  uint
		date       string
		seed       func(r *memory.Repository)
		want       []string
	}{
		{
			name:      "future day lists every step of the block",
			serviceID: serviceID,
			date:      "2026-10-19",
			want:      []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:      "longer service must end inside the block",
			serviceID: longID,
			date:      "2026-10-19",
			want:      []string{"09:00", "09:30", "10:00", "10:30", "11:00"},
		},
		{
			name:      "confirmed appointment removes its slot",
			serviceID: serviceID,
			date:      "2026-10-19",
			seed: func(r *memory.Repository) {
				addAppointment(r, mondayAt(10, 0), 30, string(domain.StatusConfirmed))
			},
			want: []string{"09:00", "09:30", "10:30", "11:00", "11:30"},
		},
		{
			name:      "cancelled appointment frees its slot",
			serviceID: serviceID,
			date:      "2026-10-19",
			seed: func(r *memory.Repository) {
				addAppointment(r, mondayAt(10, 0), 30, string(domain.StatusCancelled))
			},
			want: []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:      "today starts at the next step after now",
			serviceID: serviceID,
			date:      "2026-10-14",
			want: []string{
				"10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
				"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
			},
		},
		{
			name:       "today honours the minimum advance",
			minAdvance: 120,
			serviceID:  serviceID,
			date:       "2026-10-14",
			want:       []string{"12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30"},
		},
		{
			name:      "day without blocks is empty",
			serviceID: serviceID,
			date:      "2026-10-20",
			want:      []string{},
		},
		{
			name:      "past day is empty",
			serviceID: serviceID,
			date:      "2026-10-13",
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seedRepository(tt.minAdvance)
			if tt.seed != nil {
				tt.seed(repo)
			}
			uc := NewGetAvailability(repo, fixedClock(wednesdayAt(10, 7)))

			got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
				BarbershopID: shopID,
				BarberID:     barberID,
				ServiceID:    tt.serviceID,
				Date:         tt.date,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil {
				t.Fatalf("expected empty slice, got nil")
			}
			if !equalStrings(starts(got), tt.want) {
				t.Fatalf("slots = %v, want %v", starts(got), tt.want)
			}
		})
	}
}

func TestGetAvailabilitySlotEnd(t *testing.T) {
	repo := seedRepository(0)
	uc := NewGetAvailability(repo, fixedClock(wednesdayAt(10, 7)))

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: shopID, BarberID: barberID, ServiceID: longID, Date: "2026-10-19",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected slots")
	}
	if got[0].Start != "09:00" || got[0].End != "10:00" {
		t.Fatalf("first slot = %+v, want 09:00-10:00", got[0])
	}
}

func TestGetAvailabilityErrors(t *testing.T) {
	tests := []struct {
		name string
		in   domain.AvailabilityInput
		seed func(r *memory.Repository)
		code string
		is   error
	}{
		{
			name: "unknown barbershop",
			in:   domain.AvailabilityInput{BarbershopID: 99, BarberID: barberID, ServiceID: serviceID, Date: "2026-10-19"},
			code: "barbershop_not_found",
		},
		{
			name: "barber from another shop",
			in:   domain.AvailabilityInput{BarbershopID: shopID, BarberID: 77, ServiceID: serviceID, Date: "2026-10-19"},
			seed: func(r *memory.Repository) {
				r.AddBarber(models.Barber{ID: 77, BarbershopID: 5, Active: true})
			},
			code: "barber_not_found",
		},
		{
			name: "unknown service",
			in:   domain.AvailabilityInput{BarbershopID: shopID, BarberID: barberID, ServiceID: 99, Date: "2026-10-19"},
			code: "service_not_found",
		},
		{
			name: "malformed date",
			in:   domain.AvailabilityInput{BarbershopID: shopID, BarberID: barberID, ServiceID: serviceID, Date: "19/10/2026"},
			code: "invalid_date",
		},
		{
			name: "malformed block in storage",
			in:   domain.AvailabilityInput{BarbershopID: shopID, BarberID: barberID, ServiceID: serviceID, Date: "2026-10-19"},
			seed: func(r *memory.Repository) {
				r.SetBlocks(barberID, append(r.Blocks(barberID), models.AvailabilityBlock{
					BarberID: barberID, DayOfWeek: "monday", StartTime: "14:00", EndTime: "13:00",
				}))
			},
			is: availability.ErrInvalidBlock,
		},
		{
			name: "service without duration",
			in:   domain.AvailabilityInput{BarbershopID: shopID, BarberID: barberID, ServiceID: 50, Date: "2026-10-19"},
			seed: func(r *memory.Repository) {
				r.AddService(models.Service{ID: 50, BarbershopID: shopID, Active: true})
			},
			is: availability.ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seedRepository(0)
			if tt.seed != nil {
				tt.seed(repo)
			}
			uc := NewGetAvailability(repo, fixedClock(wednesdayAt(10, 7)))

			_, err := uc.Execute(context.Background(), tt.in)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.code != "" && !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("error = %v, want %s", err, tt.code)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestGetAvailabilityUsesShopTimezone(t *testing.T) {
	repo := seedRepository(0)
	// 13:07 UTC is 10:07 in São Paulo.
	now := time.Date(2026, 10, 14, 13, 7, 0, 0, time.UTC)
	uc := NewGetAvailability(repo, fixedClock(now))

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: shopID, BarberID: barberID, ServiceID: serviceID, Date: "2026-10-14",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 || got[0].Start != "10:30" {
		t.Fatalf("slots = %v, want first 10:30", starts(got))
	}
}

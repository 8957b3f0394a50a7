package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetAvailability(repo domain.Repository, clock timezone.Clock) *GetAvailability {
	return &GetAvailability{repo: repo, clock: clock}
}

// Execute lists the bookable slots of a barber on one day. It runs the same
// engine the booking submission validates with, and drops slots that would
// violate the shop's minimum advance.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, shop.ID, in.BarberID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, shop.ID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	date, err := timezone.ParseDate(shop.Timezone, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := timezone.NowIn(uc.clock, shop.Timezone)
	today, _ := timezone.DayBounds(now)
	if date.Before(today) {
		return []domain.TimeSlot{}, nil
	}

	rows, err := uc.repo.ListBlocksForDay(ctx, barber.ID, availability.WeekdayName(date.Weekday()))
	if err != nil {
		return nil, err
	}
	blocks, err := domain.ToEngineBlocks(rows)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := timezone.DayBounds(date)
	appointments, err := uc.repo.ListActiveAppointments(ctx, barber.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	starts, err := availability.EnumerateSlots(
		blocks,
		date,
		service.DurationMin,
		domain.ToEngineAppointments(appointments),
		now,
	)
	if err != nil {
		return nil, err
	}

	earliest := now.Add(minAdvance(shop))
	slots := make([]domain.TimeSlot, 0, len(starts))
	for _, s := range starts {
		if s.Before(earliest) {
			continue
		}
		slots = append(slots, domain.NewTimeSlot(s, service.DurationMin))
	}

	return slots, nil
}

package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BlockInput struct {
	DayOfWeek string
	StartTime string
	EndTime   string
}

type ReplaceAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReplaceAvailability(repo domain.Repository, dispatcher *audit.Dispatcher) *ReplaceAvailability {
	return &ReplaceAvailability{repo: repo, audit: dispatcher}
}

// Execute replaces the barber's whole weekly schedule. Every block is
// validated before anything is written; one malformed block rejects the
// request.
func (uc *ReplaceAvailability) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	in []BlockInput,
) ([]models.AvailabilityBlock, error) {

	barber, err := uc.repo.GetBarber(ctx, barbershopID, barberID)
	if err != nil {
		return nil, err
	}

	rows := make([]models.AvailabilityBlock, 0, len(in))
	for _, b := range in {
		block, err := availability.NewBlock(b.DayOfWeek, b.StartTime, b.EndTime)
		if err != nil {
			return nil, err
		}
		rows = append(rows, models.AvailabilityBlock{
			BarberID:  barber.ID,
			DayOfWeek: availability.WeekdayName(block.Day),
			StartTime: block.Start.String(),
			EndTime:   block.End.String(),
		})
	}

	if err := uc.repo.ReplaceAvailabilityBlocks(ctx, barber.ID, rows); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		BarberID:     uintPtr(barber.ID),
		Action:       audit.ActionAvailabilityReplaced,
		Entity:       "barber",
		EntityID:     uintPtr(barber.ID),
		Metadata:     map[string]any{"blocks": len(rows)},
	})

	return rows, nil
}

package appointment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

var ErrTooSoon = httperr.ErrBusiness("too_soon")

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
	log   *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	log *zap.Logger,
) *CreateAppointment {
	if log == nil {
		log = zap.NewNop()
	}
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		clock: clock,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Barbearia e barbeiro
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, shop.ID, in.BarberID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no timezone da barbearia
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(shop.Timezone, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3️⃣ Antecedência mínima
	// --------------------------------------------------
	now := timezone.NowIn(uc.clock, shop.Timezone)
	if start.Before(now.Add(minAdvance(shop))) {
		return nil, ErrTooSoon
	}

	// --------------------------------------------------
	// 4️⃣ Serviço
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, shop.ID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Validação + criação sob lock do barbeiro
	// --------------------------------------------------
	var created *models.Appointment

	err = uc.repo.WithBarberLock(ctx, barber.ID, func(tx domain.Repository) error {
		rows, err := tx.ListBlocksForDay(ctx, barber.ID, availability.WeekdayName(start.Weekday()))
		if err != nil {
			return err
		}
		blocks, err := domain.ToEngineBlocks(rows)
		if err != nil {
			return err
		}

		dayStart, dayEnd := timezone.DayBounds(start)
		existing, err := tx.ListActiveAppointments(ctx, barber.ID, dayStart, dayEnd)
		if err != nil {
			return err
		}

		if err := availability.ValidateSlot(
			blocks,
			start,
			service.DurationMin,
			domain.ToEngineAppointments(existing),
		); err != nil {
			return err
		}

		client, err := tx.GetOrCreateClient(ctx, shop.ID, in.ClientName, in.ClientPhone, in.ClientEmail)
		if err != nil {
			return err
		}

		ap := &models.Appointment{
			BarbershopID: shop.ID,
			BarberID:     barber.ID,
			ClientID:     client.ID,
			ServiceID:    service.ID,
			StartTime:    start,
			EndTime:      start.Add(minutes(service.DurationMin)),
			DurationMin:  service.DurationMin,
			Status:       string(domain.InitialStatus()),
			Notes:        in.Notes,
		}
		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		// a constraint de exclusão é a palavra final em corridas
		if httperr.IsExclusionConflict(err) {
			err = availability.ErrSlotTaken
		}

		if errors.Is(err, availability.ErrSlotTaken) || errors.Is(err, availability.ErrOutsideWorkingHours) {
			uc.log.Info("booking rejected",
				zap.Uint("barber_id", barber.ID),
				zap.Time("start", start),
				zap.Error(err),
			)
			uc.audit.Dispatch(audit.Event{
				BarbershopID: shop.ID,
				BarberID:     uintPtr(barber.ID),
				Action:       audit.ActionAppointmentRejected,
				Entity:       "appointment",
				Metadata: map[string]any{
					"reason":     err.Error(),
					"start":      start,
					"service_id": service.ID,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		BarberID:     uintPtr(barber.ID),
		Action:       audit.ActionAppointmentCreated,
		Entity:       "appointment",
		EntityID:     uintPtr(created.ID),
	})

	return created, nil
}

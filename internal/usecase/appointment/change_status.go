package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type transition func(ap *models.Appointment, now time.Time) error

// changeStatus é o fluxo comum de confirmar / cancelar / concluir.
type changeStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	clock  timezone.Clock
	apply  transition
	action string
}

func (uc *changeStatus) execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, err
	}
	if ap.BarbershopID != shop.ID {
		return nil, domain.ErrAppointmentNotFound
	}

	now := timezone.NowIn(uc.clock, shop.Timezone)
	if err := uc.apply(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		BarberID:     uintPtr(barberID),
		Action:       uc.action,
		Entity:       "appointment",
		EntityID:     uintPtr(ap.ID),
	})

	return ap, nil
}

type ConfirmAppointment struct{ changeStatus }

func NewConfirmAppointment(repo domain.Repository, dispatcher *audit.Dispatcher, clock timezone.Clock) *ConfirmAppointment {
	return &ConfirmAppointment{changeStatus{
		repo: repo, audit: dispatcher, clock: clock,
		apply: domain.Confirm, action: audit.ActionAppointmentConfirmed,
	}}
}

func (uc *ConfirmAppointment) Execute(ctx context.Context, barbershopID, barberID, appointmentID uint) (*models.Appointment, error) {
	return uc.execute(ctx, barbershopID, barberID, appointmentID)
}

type CancelAppointment struct{ changeStatus }

func NewCancelAppointment(repo domain.Repository, dispatcher *audit.Dispatcher, clock timezone.Clock) *CancelAppointment {
	return &CancelAppointment{changeStatus{
		repo: repo, audit: dispatcher, clock: clock,
		apply: domain.Cancel, action: audit.ActionAppointmentCancelled,
	}}
}

func (uc *CancelAppointment) Execute(ctx context.Context, barbershopID, barberID, appointmentID uint) (*models.Appointment, error) {
	return uc.execute(ctx, barbershopID, barberID, appointmentID)
}

type CompleteAppointment struct{ changeStatus }

func NewCompleteAppointment(repo domain.Repository, dispatcher *audit.Dispatcher, clock timezone.Clock) *CompleteAppointment {
	return &CompleteAppointment{changeStatus{
		repo: repo, audit: dispatcher, clock: clock,
		apply: domain.Complete, action: audit.ActionAppointmentCompleted,
	}}
}

func (uc *CompleteAppointment) Execute(ctx context.Context, barbershopID, barberID, appointmentID uint) (*models.Appointment, error) {
	return uc.execute(ctx, barbershopID, barberID, appointmentID)
}

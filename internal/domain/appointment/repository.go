package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	UpdateBarbershop(
		ctx context.Context,
		shop *models.Barbershop,
	) error

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.Barber, error)

	ListBarbers(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Barber, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Availability --------
	ListAvailabilityBlocks(
		ctx context.Context,
		barberID uint,
	) ([]models.AvailabilityBlock, error)

	ListBlocksForDay(
		ctx context.Context,
		barberID uint,
		dayOfWeek string,
	) ([]models.AvailabilityBlock, error)

	ReplaceAvailabilityBlocks(
		ctx context.Context,
		barberID uint,
		blocks []models.AvailabilityBlock,
	) error

	// -------- Appointment --------

	// ListActiveAppointments returns pending and confirmed appointments of
	// the barber that intersect [start, end).
	ListActiveAppointments(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Transaction --------

	// WithBarberLock runs fn inside one transaction that holds an exclusive
	// lock on the barber's schedule. The Repository passed to fn is bound to
	// that transaction.
	WithBarberLock(
		ctx context.Context,
		barberID uint,
		fn func(tx Repository) error,
	) error
}

// Package memory is an in-process domain.Repository. It backs the test
// suites and local demos; WithBarberLock serializes writers with a mutex
// instead of a database transaction.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository struct {
	mu   sync.Mutex
	txMu sync.Mutex

	shops        map[uint]models.Barbershop
	barbers      map[uint]models.Barber
	services     map[uint]models.Service
	blocks       map[uint][]models.AvailabilityBlock
	clients      []models.Client
	appointments []models.Appointment

	createErr error
	lockCalls int
	nextID    uint
}

func New() *Repository {
	return &Repository{
		shops:    map[uint]models.Barbershop{},
		barbers:  map[uint]models.Barber{},
		services: map[uint]models.Service{},
		blocks:   map[uint][]models.AvailabilityBlock{},
		nextID:   100,
	}
}

// ======================================================
// Seeding / inspection
// ======================================================

func (r *Repository) AddBarbershop(shop models.Barbershop) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops[shop.ID] = shop
}

func (r *Repository) AddBarber(b models.Barber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.barbers[b.ID] = b
}

func (r *Repository) AddService(s models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[s.ID] = s
}

func (r *Repository) SetBlocks(barberID uint, blocks []models.AvailabilityBlock) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks[barberID] = append([]models.AvailabilityBlock(nil), blocks...)
}

// AddAppointment stores ap as is, assigning an id when it has none.
func (r *Repository) AddAppointment(ap models.Appointment) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap.ID == 0 {
		ap.ID = r.id()
	}
	r.appointments = append(r.appointments, ap)
	return ap
}

// FailCreate makes every later CreateAppointment return err.
func (r *Repository) FailCreate(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createErr = err
}

func (r *Repository) Appointments() []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Appointment(nil), r.appointments...)
}

func (r *Repository) Clients() []models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Client(nil), r.clients...)
}

func (r *Repository) Blocks(barberID uint) []models.AvailabilityBlock {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AvailabilityBlock(nil), r.blocks[barberID]...)
}

func (r *Repository) LockCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lockCalls
}

func (r *Repository) id() uint {
	r.nextID++
	return r.nextID
}

// ======================================================
// domain.Repository
// ======================================================

func (r *Repository) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shop, ok := r.shops[id]
	if !ok {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}
	return &shop, nil
}

func (r *Repository) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, shop := range r.shops {
		if shop.Slug == slug {
			return &shop, nil
		}
	}
	return nil, httperr.ErrBusiness("barbershop_not_found")
}

func (r *Repository) UpdateBarbershop(_ context.Context, shop *models.Barbershop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shops[shop.ID]; !ok {
		return httperr.ErrBusiness("barbershop_not_found")
	}
	r.shops[shop.ID] = *shop
	return nil
}

func (r *Repository) GetBarber(_ context.Context, barbershopID, barberID uint) (*models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.barbers[barberID]
	if !ok || b.BarbershopID != barbershopID || !b.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	return &b, nil
}

func (r *Repository) ListBarbers(_ context.Context, barbershopID uint) ([]models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Barber{}
	for _, b := range r.barbers {
		if b.BarbershopID == barbershopID && b.Active {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repository) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[serviceID]
	if !ok || s.BarbershopID != barbershopID || !s.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &s, nil
}

func (r *Repository) ListServices(_ context.Context, barbershopID uint) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Service{}
	for _, s := range r.services {
		if s.BarbershopID == barbershopID && s.Active {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repository) GetOrCreateClient(_ context.Context, barbershopID uint, name, phone, email string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.BarbershopID == barbershopID && c.Phone == phone {
			return &c, nil
		}
	}
	c := models.Client{ID: r.id(), BarbershopID: barbershopID, Name: name, Phone: phone, Email: email}
	r.clients = append(r.clients, c)
	return &c, nil
}

func (r *Repository) ListAvailabilityBlocks(_ context.Context, barberID uint) ([]models.AvailabilityBlock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AvailabilityBlock{}, r.blocks[barberID]...), nil
}

func (r *Repository) ListBlocksForDay(_ context.Context, barberID uint, day string) ([]models.AvailabilityBlock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AvailabilityBlock
	for _, b := range r.blocks[barberID] {
		if b.DayOfWeek == day {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *Repository) ReplaceAvailabilityBlocks(_ context.Context, barberID uint, blocks []models.AvailabilityBlock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range blocks {
		blocks[i].ID = r.id()
		blocks[i].BarberID = barberID
	}
	r.blocks[barberID] = append([]models.AvailabilityBlock(nil), blocks...)
	return nil
}

func (r *Repository) ListActiveAppointments(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID || !domain.Status(ap.Status).Occupies() {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *Repository) ListAppointmentsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID == barberID && !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *Repository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	ap.ID = r.id()
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *Repository) GetAppointmentForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.appointments {
		if ap.ID == appointmentID && ap.BarberID == barberID {
			return &ap, nil
		}
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *Repository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return domain.ErrAppointmentNotFound
}

func (r *Repository) WithBarberLock(_ context.Context, _ uint, fn func(tx domain.Repository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.mu.Lock()
	r.lockCalls++
	r.mu.Unlock()

	return fn(r)
}

var _ domain.Repository = (*Repository)(nil)

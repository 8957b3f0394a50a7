package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository/memory"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	shopID    uint = 1
	barberID  uint = 2
	serviceID uint = 3
	longID    uint = 4
)

// 2026-10-14 is a Wednesday; 2026-10-19 a Monday.
var brt = timezone.Location("America/Sao_Paulo")

func fixedClock(t time.Time) timezone.Clock {
	return func() time.Time { return t }
}

func wednesdayAt(hour, minute int) time.Time {
	return time.Date(2026, 10, 14, hour, minute, 0, 0, brt)
}

func mondayAt(hour, minute int) time.Time {
	return time.Date(2026, 10, 19, hour, minute, 0, 0, brt)
}

func seedRepository(minAdvance int) *memory.Repository {
	r := memory.New()
	r.AddBarbershop(models.Barbershop{
		ID: shopID, Name: "Navalha", Slug: "navalha",
		Timezone: "America/Sao_Paulo", MinAdvanceMinutes: minAdvance,
	})
	r.AddBarber(models.Barber{ID: barberID, BarbershopID: shopID, Name: "João", Active: true})
	r.AddService(models.Service{ID: serviceID, BarbershopID: shopID, Name: "Corte", DurationMin: 30, Active: true})
	r.AddService(models.Service{ID: longID, BarbershopID: shopID, Name: "Corte + barba", DurationMin: 60, Active: true})
	r.SetBlocks(barberID, []models.AvailabilityBlock{
		{ID: 10, BarberID: barberID, DayOfWeek: "monday", StartTime: "09:00", EndTime: "12:00"},
		{ID: 11, BarberID: barberID, DayOfWeek: "wednesday", StartTime: "09:00", EndTime: "17:00"},
	})
	return r
}

func addAppointment(r *memory.Repository, start time.Time, duration int, status string) models.Appointment {
	return r.AddAppointment(models.Appointment{
		BarbershopID: shopID,
		BarberID:     barberID,
		ServiceID:    serviceID,
		StartTime:    start,
		EndTime:      start.Add(time.Duration(duration) * time.Minute),
		DurationMin:  duration,
		Status:       status,
	})
}

func newDispatcher(t *testing.T) (*audit.Dispatcher, *memorySink) {
	t.Helper()
	sink := &memorySink{}
	return audit.NewDispatcher(sink, nil), sink
}

// flush drains the dispatcher so recorded events can be asserted.
func flush(t *testing.T, d *audit.Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("audit flush: %v", err)
	}
}

// memorySink collects audit events.
type memorySink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *memorySink) Log(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *memorySink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

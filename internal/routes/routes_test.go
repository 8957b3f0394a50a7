package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository/memory"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var brt = timezone.Location("America/Sao_Paulo")

// Wednesday 2026-10-14 10:07; bookings target Monday 2026-10-19.
var now = time.Date(2026, 10, 14, 10, 7, 0, 0, brt)

type fakeAuditStore struct {
	filter audit.Filter
}

func (s *fakeAuditStore) List(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	s.filter = f
	return []models.AuditLog{{ID: 1, BarbershopID: f.BarbershopID, Action: audit.ActionAppointmentCreated}}, 1, nil
}

func seed() *memory.Repository {
	repo := memory.New()
	repo.AddBarbershop(models.Barbershop{ID: 1, Name: "Navalha", Slug: "navalha", Timezone: "America/Sao_Paulo", MinAdvanceMinutes: 120})
	repo.AddBarber(models.Barber{ID: 2, BarbershopID: 1, Name: "João", Active: true})
	repo.AddService(models.Service{ID: 3, BarbershopID: 1, Name: "Corte", DurationMin: 30, Active: true})
	repo.AddService(models.Service{ID: 4, BarbershopID: 1, Name: "Corte + barba", DurationMin: 60, Active: true})
	repo.SetBlocks(2, []models.AvailabilityBlock{
		{BarberID: 2, DayOfWeek: "monday", StartTime: "09:00", EndTime: "12:00"},
	})
	return repo
}

type server struct {
	engine *gin.Engine
	repo   *memory.Repository
	audit  *fakeAuditStore
}

func newServer(t *testing.T, writeLimit gin.HandlerFunc) *server {
	t.Helper()
	repo := seed()
	store := &fakeAuditStore{}

	r := gin.New()
	r.Use(middleware.RequestID())
	Mount(r, NewHandlers(repo, store, nil, func() time.Time { return now }, zap.NewNop()), writeLimit)

	return &server{engine: r, repo: repo, audit: store}
}

func (s *server) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func booking(at string, serviceID uint) map[string]any {
	return map[string]any{
		"client_name":  "Maria",
		"client_phone": "11999990000",
		"barber_id":    2,
		"service_id":   serviceID,
		"date":         "2026-10-19",
		"time":         at,
	}
}

func TestHealth(t *testing.T) {
	s := newServer(t, nil)

	w, body := s.do(t, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("health = %d %v", w.Code, body)
	}
}

func TestPublicCatalog(t *testing.T) {
	s := newServer(t, nil)

	w, body := s.do(t, http.MethodGet, "/api/public/navalha/services", nil)
	if w.Code != http.StatusOK || body["total"] != float64(2) {
		t.Fatalf("services = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodGet, "/api/public/navalha/barbers", nil)
	if w.Code != http.StatusOK || body["total"] != float64(1) {
		t.Fatalf("barbers = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodGet, "/api/public/nope/services", nil)
	if w.Code != http.StatusNotFound || body["error_code"] != "barbershop_not_found" {
		t.Fatalf("unknown shop = %d %v", w.Code, body)
	}
}

func TestPublicAvailability(t *testing.T) {
	s := newServer(t, nil)

	w, body := s.do(t, http.MethodGet, "/api/public/navalha/availability?barber_id=2&service_id=3&date=2026-10-19", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d %v", w.Code, body)
	}
	slots, _ := body["slots"].([]any)
	if len(slots) != 6 {
		t.Fatalf("slots = %v, want 6", body["slots"])
	}
	first := slots[0].(map[string]any)
	if first["start"] != "09:00" || first["end"] != "09:30" {
		t.Fatalf("first slot = %v", first)
	}
}

func TestPublicAvailabilityErrors(t *testing.T) {
	s := newServer(t, nil)

	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"missing params", "/api/public/navalha/availability?date=2026-10-19", http.StatusBadRequest, "missing_params"},
		{"bad barber id", "/api/public/navalha/availability?barber_id=x&service_id=3&date=2026-10-19", http.StatusBadRequest, "invalid_barber_id"},
		{"unknown barber", "/api/public/navalha/availability?barber_id=9&service_id=3&date=2026-10-19", http.StatusNotFound, "barber_not_found"},
		{"unknown service", "/api/public/navalha/availability?barber_id=2&service_id=9&date=2026-10-19", http.StatusNotFound, "service_not_found"},
		{"bad date", "/api/public/navalha/availability?barber_id=2&service_id=3&date=19-10-2026", http.StatusBadRequest, "invalid_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := s.do(t, http.MethodGet, tt.path, nil)
			if w.Code != tt.status || body["error_code"] != tt.code {
				t.Fatalf("got %d %v, want %d %s", w.Code, body, tt.status, tt.code)
			}
		})
	}
}

func TestPublicCreateAppointment(t *testing.T) {
	s := newServer(t, nil)

	w, body := s.do(t, http.MethodPost, "/api/public/navalha/appointments", booking("10:00", 3))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d %v", w.Code, body)
	}
	if body["status"] != "pending" || body["duration_min"] != float64(30) {
		t.Fatalf("body = %v", body)
	}

	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"same slot again", booking("10:00", 3), http.StatusConflict, "slot_taken"},
		{"overlapping longer service", booking("09:30", 4), http.StatusConflict, "slot_taken"},
		{"before opening", booking("08:30", 3), http.StatusUnprocessableEntity, "outside_working_hours"},
		{"past closing", booking("11:30", 4), http.StatusUnprocessableEntity, "outside_working_hours"},
		{"bad time", booking("10h", 3), http.StatusBadRequest, "invalid_date_or_time"},
		{"missing fields", map[string]any{"client_name": "Maria"}, http.StatusBadRequest, "invalid_request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := s.do(t, http.MethodPost, "/api/public/navalha/appointments", tt.body)
			if w.Code != tt.status || body["error_code"] != tt.code {
				t.Fatalf("got %d %v, want %d %s", w.Code, body, tt.status, tt.code)
			}
		})
	}

	if got := len(s.repo.Appointments()); got != 1 {
		t.Fatalf("appointments = %d, want 1", got)
	}
}

func TestPublicCreateAppointmentRateLimited(t *testing.T) {
	limit := middleware.RateLimit(middleware.NewMemoryLimiter(1, time.Minute), "test", zap.NewNop())
	s := newServer(t, limit)

	w, _ := s.do(t, http.MethodPost, "/api/public/navalha/appointments", booking("09:00", 3))
	if w.Code != http.StatusCreated {
		t.Fatalf("first status = %d", w.Code)
	}

	w, body := s.do(t, http.MethodPost, "/api/public/navalha/appointments", booking("11:00", 3))
	if w.Code != http.StatusTooManyRequests || body["error_code"] != "rate_limited" {
		t.Fatalf("second = %d %v", w.Code, body)
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	s := newServer(t, nil)

	w, body := s.do(t, http.MethodPost, "/api/public/navalha/appointments", booking("10:00", 3))
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d %v", w.Code, body)
	}
	id := int(body["id"].(float64))
	base := "/api/shops/navalha/barbers/2/appointments/"

	w, body = s.do(t, http.MethodPatch, base+strconv.Itoa(id)+"/complete", nil)
	if w.Code != http.StatusUnprocessableEntity || body["error_code"] != "invalid_state" {
		t.Fatalf("complete pending = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodPatch, base+strconv.Itoa(id)+"/confirm", nil)
	if w.Code != http.StatusOK || body["status"] != "confirmed" {
		t.Fatalf("confirm = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodPatch, base+strconv.Itoa(id)+"/complete", nil)
	if w.Code != http.StatusOK || body["status"] != "completed" {
		t.Fatalf("complete = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodPatch, base+"9999/cancel", nil)
	if w.Code != http.StatusNotFound || body["error_code"] != "appointment_not_found" {
		t.Fatalf("unknown = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodPatch, base+"abc/cancel", nil)
	if w.Code != http.StatusBadRequest || body["error_code"] != "invalid_appointment_id" {
		t.Fatalf("bad id = %d %v", w.Code, body)
	}
}

func TestCancelledSlotIsBookableAgain(t *testing.T) {
	s := newServer(t, nil)

	_, body := s.do(t, http.MethodPost, "/api/public/navalha/appointments", booking("10:00", 3))
	id := int(body["id"].(float64))

	w, _ := s.do(t, http.MethodPatch, "/api/shops/navalha/barbers/2/appointments/"+strconv.Itoa(id)+"/cancel", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel = %d", w.Code)
	}

	w, body = s.do(t, http.MethodPost, "/api/public/navalha/appointments", booking("10:00", 3))
	if w.Code != http.StatusCreated {
		t.Fatalf("rebook = %d %v", w.Code, body)
	}
}

func TestListAppointments(t *testing.T) {
	s := newServer(t, nil)
	s.do(t, http.MethodPost, "/api/public/navalha/appointments", booking("09:00", 3))
	s.do(t, http.MethodPost, "/api/public/navalha/appointments", booking("10:00", 4))

	w, body := s.do(t, http.MethodGet, "/api/shops/navalha/barbers/2/appointments?date=2026-10-19", nil)
	if w.Code != http.StatusOK || body["total"] != float64(2) {
		t.Fatalf("by date = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodGet, "/api/shops/navalha/barbers/2/appointments/month?year=2026&month=10", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("by month = %d %v", w.Code, body)
	}
	if rows, _ := body["appointments"].([]any); len(rows) != 2 {
		t.Fatalf("month rows = %v", body["appointments"])
	}

	w, body = s.do(t, http.MethodGet, "/api/shops/navalha/barbers/2/appointments/month?year=2026&month=13", nil)
	if w.Code != http.StatusBadRequest || body["error_code"] != "invalid_month" {
		t.Fatalf("bad month = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodGet, "/api/shops/navalha/barbers/2/appointments", nil)
	if w.Code != http.StatusBadRequest || body["error_code"] != "missing_date" {
		t.Fatalf("missing date = %d %v", w.Code, body)
	}
}

func TestReplaceAvailability(t *testing.T) {
	s := newServer(t, nil)
	path := "/api/shops/navalha/barbers/2/availability"

	w, body := s.do(t, http.MethodPut, path, map[string]any{
		"blocks": []map[string]string{
			{"day_of_week": "monday", "start_time": "14:00", "end_time": "13:00"},
		},
	})
	if w.Code != http.StatusBadRequest || body["error_code"] != "invalid_availability_block" {
		t.Fatalf("invalid block = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodPut, path, map[string]any{
		"blocks": []map[string]string{
			{"day_of_week": "Monday", "start_time": "09:00", "end_time": "12:00"},
			{"day_of_week": "monday", "start_time": "14:00", "end_time": "18:00"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("replace = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodGet, path, nil)
	blocks, _ := body["blocks"].([]any)
	if w.Code != http.StatusOK || len(blocks) != 2 {
		t.Fatalf("get = %d %v", w.Code, body)
	}

	// a tarde nova aparece na disponibilidade
	_, body = s.do(t, http.MethodGet, "/api/public/navalha/availability?barber_id=2&service_id=4&date=2026-10-19", nil)
	if slots, _ := body["slots"].([]any); len(slots) != 5+7 {
		t.Fatalf("slots = %v", body["slots"])
	}
}

func TestBarbershopSettings(t *testing.T) {
	s := newServer(t, nil)

	w, body := s.do(t, http.MethodPatch, "/api/shops/navalha", map[string]any{"timezone": "Mars/Olympus"})
	if w.Code != http.StatusBadRequest || body["error_code"] != "invalid_timezone" {
		t.Fatalf("bad tz = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodPatch, "/api/shops/navalha", map[string]any{"min_advance_minutes": -5})
	if w.Code != http.StatusBadRequest || body["error_code"] != "invalid_min_advance" {
		t.Fatalf("bad advance = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodPatch, "/api/shops/navalha", map[string]any{"min_advance_minutes": 0})
	if w.Code != http.StatusOK || body["min_advance_minutes"] != float64(0) {
		t.Fatalf("update = %d %v", w.Code, body)
	}

	// sem antecedência, o mesmo dia abre a partir do próximo meio horário
	s.repo.SetBlocks(2, []models.AvailabilityBlock{
		{BarberID: 2, DayOfWeek: "wednesday", StartTime: "09:00", EndTime: "12:00"},
	})
	_, body = s.do(t, http.MethodGet, "/api/public/navalha/availability?barber_id=2&service_id=3&date=2026-10-14", nil)
	slots, _ := body["slots"].([]any)
	if len(slots) != 3 || slots[0].(map[string]any)["start"] != "10:30" {
		t.Fatalf("same day slots = %v", body["slots"])
	}
}

func TestAuditLogs(t *testing.T) {
	s := newServer(t, nil)

	w, body := s.do(t, http.MethodGet, "/api/shops/navalha/audit-logs?action=appointment_created&barber_id=2&from=2026-10-01&limit=500", nil)
	if w.Code != http.StatusOK || body["total"] != float64(1) {
		t.Fatalf("audit = %d %v", w.Code, body)
	}

	f := s.audit.filter
	if f.BarbershopID != 1 || f.Action != audit.ActionAppointmentCreated || f.Limit != 50 || f.Page != 1 {
		t.Fatalf("filter = %+v", f)
	}
	if f.BarberID == nil || *f.BarberID != 2 || f.From == nil || f.To != nil {
		t.Fatalf("filter = %+v", f)
	}
}

type brokenRepository struct {
	*memory.Repository
}

func (brokenRepository) ListServices(context.Context, uint) ([]models.Service, error) {
	return nil, errors.New("connection reset")
}

func TestInternalErrorsAreHidden(t *testing.T) {
	repo := brokenRepository{seed()}
	r := gin.New()
	Mount(r, NewHandlers(repo, &fakeAuditStore{}, nil, func() time.Time { return now }, zap.NewNop()), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/public/navalha/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("connection reset")) {
		t.Fatalf("internal error leaked: %s", w.Body.String())
	}
}

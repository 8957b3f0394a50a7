package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"slot taken", availability.ErrSlotTaken, http.StatusConflict, "slot_taken"},
		{"outside hours", availability.ErrOutsideWorkingHours, http.StatusUnprocessableEntity, "outside_working_hours"},
		{"wrapped invalid block", fmt.Errorf("%w: monday 14:00-13:00", availability.ErrInvalidBlock), http.StatusBadRequest, "invalid_availability_block"},
		{"not found", httperr.ErrBusiness("service_not_found"), http.StatusNotFound, "service_not_found"},
		{"unknown business code", httperr.ErrBusiness("something_else"), http.StatusBadRequest, "something_else"},
		{"infrastructure", errors.New("dial tcp: refused"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, zap.NewNop(), tt.err)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			var body httperr.HTTPError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tt.code || body.Message == "" {
				t.Fatalf("body = %+v, want code %s", body, tt.code)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw  string
		want uint
		ok   bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseID(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("parseID(%q) = %d %v, want %d %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

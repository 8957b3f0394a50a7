package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type statusChanger interface {
	Execute(ctx context.Context, barbershopID, barberID, appointmentID uint) (*models.Appointment, error)
}

type AppointmentHandler struct {
	repo     domain.Repository
	byDate   *ucAppointment.ListAppointmentsByDate
	byMonth  *ucAppointment.ListAppointmentsByMonth
	confirm  *ucAppointment.ConfirmAppointment
	cancel   *ucAppointment.CancelAppointment
	complete *ucAppointment.CompleteAppointment
	log      *zap.Logger
}

func NewAppointmentHandler(
	repo domain.Repository,
	byDate *ucAppointment.ListAppointmentsByDate,
	byMonth *ucAppointment.ListAppointmentsByMonth,
	confirm *ucAppointment.ConfirmAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		byDate:   byDate,
		byMonth:  byMonth,
		confirm:  confirm,
		cancel:   cancel,
		complete: complete,
		log:      log,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	barberID, ok := pathID(c, "barberID", "invalid_barber_id", "Barbeiro inválido.")
	if !ok {
		return
	}
	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	rows, err := h.byDate.Execute(c.Request.Context(), shop.ID, barberID, dateStr)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	barberID, ok := pathID(c, "barberID", "invalid_barber_id", "Barbeiro inválido.")
	if !ok {
		return
	}
	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	rows, err := h.byMonth.Execute(c.Request.Context(), shop.ID, barberID, year, month)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": rows,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, h.confirm)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, h.cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.changeStatus(c, h.complete)
}

func (h *AppointmentHandler) changeStatus(c *gin.Context, uc statusChanger) {
	barberID, ok := pathID(c, "barberID", "invalid_barber_id", "Barbeiro inválido.")
	if !ok {
		return
	}
	appointmentID, ok := pathID(c, "id", "invalid_appointment_id", "Agendamento inválido.")
	if !ok {
		return
	}
	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	ap, err := uc.Execute(c.Request.Context(), shop.ID, barberID, appointmentID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointment(ap))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo         domain.Repository
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	log          *zap.Logger
}

func NewPublicHandler(
	repo domain.Repository,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	log *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: availability,
		create:       create,
		log:          log,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email" binding:"omitempty,email"`
	BarberID    uint   `json:"barber_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	services, err := h.repo.ListServices(c.Request.Context(), shop.ID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	barbers, err := h.repo.ListBarbers(c.Request.Context(), shop.ID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, barbers)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" || c.Query("barber_id") == "" || c.Query("service_id") == "" {
		httperr.BadRequest(c, "missing_params", "Data, barbeiro e serviço obrigatórios.")
		return
	}

	barberID, ok := queryID(c, "barber_id", "invalid_barber_id", "Barbeiro inválido.")
	if !ok {
		return
	}
	serviceID, ok := queryID(c, "service_id", "invalid_service_id", "Serviço inválido.")
	if !ok {
		return
	}

	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarbershopID: shop.ID,
			BarberID:     barberID,
			ServiceID:    serviceID,
			Date:         dateStr,
		},
	)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			BarbershopID: shop.ID,
			BarberID:     req.BarberID,
			ClientName:   req.ClientName,
			ClientPhone:  req.ClientPhone,
			ClientEmail:  req.ClientEmail,
			ServiceID:    req.ServiceID,
			Date:         req.Date,
			Time:         req.Time,
			Notes:        req.Notes,
		},
	)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromAppointment(ap))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	repo    domain.Repository
	replace *ucAppointment.ReplaceAvailability
	log     *zap.Logger
}

func NewAvailabilityHandler(
	repo domain.Repository,
	replace *ucAppointment.ReplaceAvailability,
	log *zap.Logger,
) *AvailabilityHandler {
	return &AvailabilityHandler{repo: repo, replace: replace, log: log}
}

type AvailabilityUpdateRequest struct {
	Blocks []dto.AvailabilityBlockDTO `json:"blocks" binding:"required,dive"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID, ok := pathID(c, "barberID", "invalid_barber_id", "Barbeiro inválido.")
	if !ok {
		return
	}
	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.GetBarber(ctx, shop.ID, barberID); err != nil {
		writeError(c, h.log, err)
		return
	}

	rows, err := h.repo.ListAvailabilityBlocks(ctx, barberID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id": barberID,
		"blocks":    dto.FromBlocks(rows),
	})
}

// Update substitui a semana inteira do barbeiro.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	barberID, ok := pathID(c, "barberID", "invalid_barber_id", "Barbeiro inválido.")
	if !ok {
		return
	}

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	in := make([]ucAppointment.BlockInput, 0, len(req.Blocks))
	for _, b := range req.Blocks {
		in = append(in, ucAppointment.BlockInput{
			DayOfWeek: b.DayOfWeek,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}

	rows, err := h.replace.Execute(c.Request.Context(), shop.ID, barberID, in)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id": barberID,
		"blocks":    dto.FromBlocks(rows),
	})
}

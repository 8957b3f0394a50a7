package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type BarbershopHandler struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewBarbershopHandler(repo domain.Repository, log *zap.Logger) *BarbershopHandler {
	return &BarbershopHandler{repo: repo, log: log}
}

type UpdateBarbershopConfigRequest struct {
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
	Timezone          *string `json:"timezone"`
}

func (h *BarbershopHandler) Get(c *gin.Context) {
	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) Update(c *gin.Context) {
	var req UpdateBarbershopConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima deve ser zero ou positiva (em minutos).")
			return
		}
		shop.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		shop.Timezone = *req.Timezone
	}

	if err := h.repo.UpdateBarbershop(c.Request.Context(), shop); err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, shop)
}

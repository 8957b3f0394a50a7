package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type AuditLister interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	repo  domain.Repository
	store AuditLister
	log   *zap.Logger
}

func NewAuditLogsHandler(repo domain.Repository, store AuditLister, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo, store: store, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	shop, ok := shopFromSlug(c, h.repo)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	f := audit.Filter{
		BarbershopID: shop.ID,
		Action:       c.Query("action"),
		Entity:       c.Query("entity"),
		Page:         page,
		Limit:        limit,
	}

	if id, ok := parseID(c.Query("barber_id")); ok {
		f.BarberID = &id
	}

	if from, err := timezone.ParseDate(shop.Timezone, c.Query("from")); err == nil {
		f.From = &from
	}

	if to, err := timezone.ParseDate(shop.Timezone, c.Query("to")); err == nil {
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	logs, total, err := h.store.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}

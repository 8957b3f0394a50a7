package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func pathID(c *gin.Context, name, code, message string) (uint, bool) {
	id, ok := parseID(c.Param(name))
	if !ok {
		httperr.BadRequest(c, code, message)
	}
	return id, ok
}

func queryID(c *gin.Context, name, code, message string) (uint, bool) {
	id, ok := parseID(c.Query(name))
	if !ok {
		httperr.BadRequest(c, code, message)
	}
	return id, ok
}

// shopFromSlug resolves the :slug path param. On failure the response is
// already written.
func shopFromSlug(c *gin.Context, repo domain.Repository) (*models.Barbershop, bool) {
	shop, err := repo.GetBarbershopBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if httperr.IsBusiness(err, "barbershop_not_found") {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar barbearia.")
		return nil, false
	}
	return shop, true
}

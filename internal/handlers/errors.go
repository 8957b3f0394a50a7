package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

type answer struct {
	status  int
	message string
}

// Respostas por código de negócio. Códigos desconhecidos viram 400.
var businessAnswers = map[string]answer{
	"slot_taken":            {http.StatusConflict, "Horário indisponível. Escolha outro horário."},
	"outside_working_hours": {http.StatusUnprocessableEntity, "Fora do horário de atendimento."},
	"too_soon":              {http.StatusUnprocessableEntity, "Horário no passado ou sem a antecedência mínima."},
	"invalid_duration":      {http.StatusUnprocessableEntity, "Duração do serviço inválida."},
	"invalid_state":         {http.StatusUnprocessableEntity, "Agendamento não pode mudar para este status."},

	"invalid_availability_block": {http.StatusBadRequest, "Bloco de disponibilidade inválido."},
	"invalid_date":               {http.StatusBadRequest, "Data inválida."},
	"invalid_date_or_time":       {http.StatusBadRequest, "Data ou hora inválida."},
	"invalid_year":               {http.StatusBadRequest, "Ano inválido."},
	"invalid_month":              {http.StatusBadRequest, "Mês inválido."},

	"barbershop_not_found":  {http.StatusNotFound, "Barbearia não encontrada."},
	"barber_not_found":      {http.StatusNotFound, "Barbeiro não encontrado."},
	"service_not_found":     {http.StatusNotFound, "Serviço não encontrado."},
	"appointment_not_found": {http.StatusNotFound, "Agendamento não encontrado."},
}

// writeError answers a use case failure. Business errors carry their own
// code; anything else is logged and hidden behind a generic 500.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	if code, ok := httperr.CodeOf(err); ok {
		a, known := businessAnswers[code]
		if !known {
			a = answer{http.StatusBadRequest, "Requisição inválida."}
		}
		httperr.Write(c, a.status, code, a.message)
		return
	}

	log.Error("request failed",
		zap.String("request_id", middleware.RequestIDFrom(c)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mathysbarber/agenda-api/internal/httperr"
)

// Mapeamento central code → (status, mensagem) dos erros de negócio.
var businessErrors = map[string]struct {
	Status  int
	Message string
}{
	"invalid_date":  {http.StatusBadRequest, "Data inválida."},
	"invalid_time":  {http.StatusBadRequest, "Hora fora da grade da barbearia."},
	"invalid_state": {http.StatusBadRequest, "A cita não permite essa transição."},

	"user_not_found":        {http.StatusNotFound, "Usuário não encontrado."},
	"barber_not_found":      {http.StatusNotFound, "Barbeiro não encontrado."},
	"day_not_found":         {http.StatusNotFound, "Dia não encontrado no calendário."},
	"slot_not_found":        {http.StatusNotFound, "Hora não encontrada no calendário."},
	"appointment_not_found": {http.StatusNotFound, "Nenhuma cita encontrada nessa hora."},

	"slot_taken":            {http.StatusConflict, "Essa hora já está ocupada."},
	"slot_claim_limit":      {http.StatusConflict, "Essa hora já está esgotada para todos os barbeiros."},
	"day_already_cancelled": {http.StatusConflict, "Esse barbeiro já cancelou esse dia."},
	"day_cancel_limit":      {http.StatusConflict, "Já há três barbeiros com esse dia cancelado."},

	"permission_denied": {http.StatusForbidden, "Você não tem permissão para essa ação."},
}

// writeError traduz erros de negócio para a resposta HTTP; qualquer
// coisa fora do mapa vira 500 com o código genérico informado.
func writeError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	if code, ok := httperr.IsAnyBusiness(err); ok {
		if entry, known := businessErrors[code]; known {
			httperr.Write(c, entry.Status, code, entry.Message)
			return
		}
	}

	httperr.Internal(c, fallbackCode, fallbackMessage)
}

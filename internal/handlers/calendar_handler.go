package handlers

import (
	"github.com/gin-gonic/gin"

	domcal "github.com/mathysbarber/agenda-api/internal/domain/calendar"
	"github.com/mathysbarber/agenda-api/internal/httperr"
	"github.com/mathysbarber/agenda-api/internal/httpresp"
	ucCalendar "github.com/mathysbarber/agenda-api/internal/usecase/calendar"
)

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	repo            domcal.Repository
	extendWeekUC    *ucCalendar.ExtendWeek
	extendRollingUC *ucCalendar.ExtendRolling
	availableUC     *ucCalendar.AvailableDays
}

func NewCalendarHandler(
	repo domcal.Repository,
	extendWeekUC *ucCalendar.ExtendWeek,
	extendRollingUC *ucCalendar.ExtendRolling,
	availableUC *ucCalendar.AvailableDays,
) *CalendarHandler {
	return &CalendarHandler{
		repo:            repo,
		extendWeekUC:    extendWeekUC,
		extendRollingUC: extendRollingUC,
		availableUC:     availableUC,
	}
}

// ======================================================
// DAYS
// ======================================================

func (h *CalendarHandler) ListDays(c *gin.Context) {
	days, err := h.repo.ListDays(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_days", "Erro ao listar os dias.")
		return
	}

	httpresp.List(c, days)
}

func (h *CalendarHandler) AvailableDays(c *gin.Context) {
	out, err := h.availableUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Erro ao listar horas livres.")
		return
	}

	// mapa vazio, nunca 404: "sem horas livres" é um resultado válido
	httpresp.OK(c, out)
}

// ======================================================
// GENERATION (operator)
// ======================================================

func (h *CalendarHandler) ExtendWeek(c *gin.Context) {
	created, err := h.extendWeekUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_extend_week", "Erro ao gerar a semana.")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Semana gerada.",
		"days":    created,
	})
}

type ExtendRollingRequest struct {
	Days int `json:"days"`
}

func (h *CalendarHandler) ExtendRolling(c *gin.Context) {
	var req ExtendRollingRequest
	// corpo vazio é válido: cai no default de 8 dias
	_ = c.ShouldBindJSON(&req)

	created, err := h.extendRollingUC.Execute(c.Request.Context(), req.Days)
	if err != nil {
		httperr.Internal(c, "failed_to_extend_rolling", "Erro ao gerar a janela rolante.")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Janela rolante gerada.",
		"days":    created,
	})
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mathysbarber/agenda-api/internal/httperr"
	"github.com/mathysbarber/agenda-api/internal/httpresp"
	"github.com/mathysbarber/agenda-api/internal/models"
	ucCalendar "github.com/mathysbarber/agenda-api/internal/usecase/calendar"
)

type BarberHandler struct {
	db             *gorm.DB
	cancelDayUC    *ucCalendar.CancelDay
	availabilityUC *ucCalendar.BarberAvailability
}

func NewBarberHandler(
	db *gorm.DB,
	cancelDayUC *ucCalendar.CancelDay,
	availabilityUC *ucCalendar.BarberAvailability,
) *BarberHandler {
	return &BarberHandler{
		db:             db,
		cancelDayUC:    cancelDayUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// CRUD
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Preload("User").Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "ID de barbeiro inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.Preload("User").First(&barber, "user_id = ?", uint(id)).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	httpresp.OK(c, barber)
}

// ======================================================
// DAY CANCELLATION
// ======================================================

type CancelDayRequest struct {
	Date string `json:"date" binding:"required"`
}

func (h *BarberHandler) CancelDay(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "ID de barbeiro inválido.")
		return
	}

	var req CancelDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Data obrigatória.")
		return
	}

	if err := h.cancelDayUC.Execute(c.Request.Context(), uint(id), req.Date); err != nil {
		writeError(c, err, "failed_to_cancel_day", "Erro ao cancelar o dia.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Dia cancelado para o barbeiro."})
}

// ======================================================
// AVAILABILITY (per barber)
// ======================================================

func (h *BarberHandler) Availability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "ID de barbeiro inválido.")
		return
	}

	out, err := h.availabilityUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		writeError(c, err, "failed_to_list_availability", "Erro ao listar horas do barbeiro.")
		return
	}

	httpresp.OK(c, out)
}

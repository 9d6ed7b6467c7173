package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mathysbarber/agenda-api/internal/httperr"
	"github.com/mathysbarber/agenda-api/internal/httpresp"
	"github.com/mathysbarber/agenda-api/internal/middleware"
	ucBooking "github.com/mathysbarber/agenda-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *ucBooking.CreateAppointment
	cancelUC   *ucBooking.CancelAppointment
	completeUC *ucBooking.CompleteAppointment
	releaseUC  *ucBooking.ReleaseAppointment
	listUC     *ucBooking.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	cancelUC *ucBooking.CancelAppointment,
	completeUC *ucBooking.CompleteAppointment,
	releaseUC *ucBooking.ReleaseAppointment,
	listUC *ucBooking.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		releaseUC:  releaseUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID uint   `json:"barber_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`

	CutType string   `json:"cut_type"`
	Extras  []string `json:"extras"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		UserID:   userID,
		BarberID: req.BarberID,
		Date:     req.Date,
		Time:     req.Time,
		CutType:  req.CutType,
		Extras:   req.Extras,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_appointment", "Erro ao agendar a cita.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (mine / assigned)
// ======================================================

func (h *AppointmentHandler) Mine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listUC.ForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar citas.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Assigned(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listUC.ForBarber(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar citas.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// PARAM HELPERS
// ======================================================

func slotParams(c *gin.Context) (uint, string, string, bool) {
	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "ID de barbeiro inválido.")
		return 0, "", "", false
	}

	return uint(barberID), c.Param("date"), c.Param("time"), true
}

// ======================================================
// CANCEL / COMPLETE / RELEASE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	actorRole := c.MustGet(middleware.ContextUserRole).(string)

	barberID, date, timeStr, ok := slotParams(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), actorID, actorRole, barberID, date, timeStr)
	if err != nil {
		writeError(c, err, "failed_to_cancel_appointment", "Erro ao cancelar a cita.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	actorRole := c.MustGet(middleware.ContextUserRole).(string)

	barberID, date, timeStr, ok := slotParams(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), actorID, actorRole, barberID, date, timeStr)
	if err != nil {
		writeError(c, err, "failed_to_complete_appointment", "Erro ao concluir a cita.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Release(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	barberID, date, timeStr, ok := slotParams(c)
	if !ok {
		return
	}

	slot, err := h.releaseUC.Execute(c.Request.Context(), actorID, barberID, date, timeStr)
	if err != nil {
		writeError(c, err, "failed_to_release_appointment", "Erro ao liberar a cita.")
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Cita liberada.",
		"slot":    slot,
	})
}

package booking

import (
	"time"

	"github.com/mathysbarber/agenda-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// CanActOn valida quem pode mexer numa cita existente.

// Cancelar: o próprio cliente, qualquer barbeiro ou admin.
func CanCancelAs(ap *models.Appointment, actorID uint, role string) bool {
	if actorID == ap.UserID {
		return true
	}
	return role == "barber" || role == "admin"
}

// Concluir: só o barbeiro da cita ou admin.
func CanCompleteAs(ap *models.Appointment, actorID uint, role string) bool {
	if role == "admin" {
		return true
	}
	return role == "barber" && actorID == ap.BarberID
}

package booking

import (
	"context"

	"github.com/mathysbarber/agenda-api/internal/models"
)

type Repository interface {
	// -------- Identity --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetBarberUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Slot grid --------
	GetSlot(
		ctx context.Context,
		date string,
		time string,
	) (*models.Slot, error)

	// -------- Appointment (create / conflict) --------

	// ClaimSlot insere a cita, marca o slot como occupied e registra o
	// claim do barbeiro numa única transação. A corrida entre duas
	// criações simultâneas é resolvida pelo índice único parcial e
	// reportada como "slot_taken".
	ClaimSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	FindActiveAppointment(
		ctx context.Context,
		barberID uint,
		date string,
		time string,
	) (*models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ReleaseSlot desfaz a reserva numa única transação: remove o claim
	// do barbeiro, apaga a linha da cita (deleteRow=true) ou persiste a
	// mutação de status já aplicada (deleteRow=false), e só libera o
	// slot se nenhuma outra cita ativa restar naquela hora.
	ReleaseSlot(
		ctx context.Context,
		ap *models.Appointment,
		deleteRow bool,
	) (*models.Slot, error)

	// -------- Listing --------
	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)
}

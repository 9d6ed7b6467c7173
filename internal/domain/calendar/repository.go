package calendar

import (
	"context"

	"github.com/mathysbarber/agenda-api/internal/models"
)

type Repository interface {
	// -------- Day generation --------
	LastDayID(
		ctx context.Context,
	) (string, error)

	DayExists(
		ctx context.Context,
		dayID string,
	) (bool, error)

	// CreateDayWithSlots cria o dia e seus slots numa transação; a
	// chave primária em day_id faz chamadas repetidas serem inofensivas.
	CreateDayWithSlots(
		ctx context.Context,
		dayID string,
		times []string,
	) error

	// -------- Reads --------
	GetDay(
		ctx context.Context,
		dayID string,
	) (*models.Day, error)

	ListDays(
		ctx context.Context,
	) ([]models.Day, error)

	ListFreeSlots(
		ctx context.Context,
	) ([]models.Slot, error)

	// -------- Per-barber markers --------
	BarberExists(
		ctx context.Context,
		barberID uint,
	) (bool, error)

	// CancelDayForBarber valida o teto de três barbeiros sob lock e
	// reporta duplicatas como "day_already_cancelled".
	CancelDayForBarber(
		ctx context.Context,
		dayID string,
		barberID uint,
	) error

	CancelledDayIDs(
		ctx context.Context,
		barberID uint,
	) ([]string, error)

	// ClaimedTimes devolve, por dia, as horas que o barbeiro já tem
	// consumidas (day_id → lista de horas).
	ClaimedTimes(
		ctx context.Context,
		barberID uint,
	) (map[string][]string, error)
}

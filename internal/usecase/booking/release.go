package booking

import (
	"context"

	"github.com/mathysbarber/agenda-api/internal/audit"
	domain "github.com/mathysbarber/agenda-api/internal/domain/booking"
	"github.com/mathysbarber/agenda-api/internal/httperr"
	"github.com/mathysbarber/agenda-api/internal/models"
)

type ReleaseAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReleaseAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReleaseAppointment {
	return &ReleaseAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute apaga a cita de vez: diferente de cancelar, não deixa
// trilha. Devolve o slot atualizado.
func (uc *ReleaseAppointment) Execute(
	ctx context.Context,
	actorID uint,
	barberID uint,
	date string,
	timeStr string,
) (*models.Slot, error) {

	ap, err := uc.repo.FindActiveAppointment(ctx, barberID, date, timeStr)
	if err != nil || ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	slot, err := uc.repo.ReleaseSlot(ctx, ap, true)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &actorID,
		Action: "appointment_released",
		Entity: "appointment",
		Metadata: map[string]any{
			"barber_id": barberID,
			"date":      date,
			"time":      timeStr,
		},
	})

	return slot, nil
}

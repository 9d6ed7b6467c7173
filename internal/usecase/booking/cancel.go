package booking

import (
	"context"
	"time"

	"github.com/mathysbarber/agenda-api/internal/audit"
	"github.com/mathysbarber/agenda-api/internal/clock"
	domain "github.com/mathysbarber/agenda-api/internal/domain/booking"
	"github.com/mathysbarber/agenda-api/internal/httperr"
	"github.com/mathysbarber/agenda-api/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		now:   clock.Now,
	}
}

// Execute cancela a cita em (barberID, date, time). A linha fica no
// banco como trilha de auditoria; o slot só volta a free se nenhuma
// outra cita ativa restar naquela hora.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actorID uint,
	actorRole string,
	barberID uint,
	date string,
	timeStr string,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindActiveAppointment(ctx, barberID, date, timeStr)
	if err != nil || ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !domain.CanCancelAs(ap, actorID, actorRole) {
		return nil, httperr.ErrBusiness("permission_denied")
	}

	if err := domain.Cancel(ap, uc.now()); err != nil {
		return nil, err
	}

	// persiste o cancelamento e sincroniza o slot na mesma transação
	if _, err := uc.repo.ReleaseSlot(ctx, ap, false); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

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

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
		now:   clock.Now,
	}
}

// Execute marca a cita como concluída. O slot continua occupied:
// a hora foi consumida do mesmo jeito.
func (uc *CompleteAppointment) Execute(
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

	if !domain.CanCompleteAs(ap, actorID, actorRole) {
		return nil, httperr.ErrBusiness("permission_denied")
	}

	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

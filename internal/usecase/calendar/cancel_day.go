package calendar

import (
	"context"

	"github.com/mathysbarber/agenda-api/internal/audit"
	"github.com/mathysbarber/agenda-api/internal/clock"
	domain "github.com/mathysbarber/agenda-api/internal/domain/calendar"
	"github.com/mathysbarber/agenda-api/internal/httperr"
)

type CancelDay struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelDay(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelDay {
	return &CancelDay{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelDay) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) error {

	if !clock.IsValidDate(date) {
		return httperr.ErrBusiness("invalid_date")
	}

	exists, err := uc.repo.BarberExists(ctx, barberID)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.ErrBusiness("barber_not_found")
	}

	if _, err := uc.repo.GetDay(ctx, date); err != nil {
		return httperr.ErrBusiness("day_not_found")
	}

	// duplicata e teto de 3 são validados pelo repositório sob lock
	if err := uc.repo.CancelDayForBarber(ctx, date, barberID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &barberID,
		Action: "day_cancelled",
		Entity: "day",
		Metadata: map[string]any{
			"day_id":    date,
			"barber_id": barberID,
		},
	})

	return nil
}

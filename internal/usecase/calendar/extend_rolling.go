package calendar

import (
	"context"
	"time"

	"github.com/mathysbarber/agenda-api/internal/audit"
	"github.com/mathysbarber/agenda-api/internal/clock"
	domain "github.com/mathysbarber/agenda-api/internal/domain/calendar"
)

// ExtendRolling gera daysAhead dias consecutivos a partir de hoje,
// qualquer dia da semana, pulando os já existentes. É o "top up"
// manual, independente do lote semanal.
type ExtendRolling struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewExtendRolling(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ExtendRolling {
	return &ExtendRolling{
		repo:  repo,
		audit: audit,
		now:   clock.Now,
	}
}

func (uc *ExtendRolling) WithNow(now func() time.Time) *ExtendRolling {
	uc.now = now
	return uc
}

func (uc *ExtendRolling) Execute(ctx context.Context, daysAhead int) ([]string, error) {

	if daysAhead <= 0 {
		daysAhead = domain.DefaultRollingDays
	}

	today := clock.Midnight(uc.now())
	times := domain.SlotTimes()

	var created []string

	for i := 0; i < daysAhead; i++ {
		dayID := clock.FormatDate(today.AddDate(0, 0, i))

		exists, err := uc.repo.DayExists(ctx, dayID)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		if err := uc.repo.CreateDayWithSlots(ctx, dayID, times); err != nil {
			return nil, err
		}
		created = append(created, dayID)
	}

	if len(created) > 0 {
		uc.audit.Dispatch(audit.Event{
			Action:   "rolling_window_extended",
			Entity:   "day",
			Metadata: map[string]any{"days": created},
		})
	}

	return created, nil
}

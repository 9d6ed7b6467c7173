package calendar

import (
	"context"
	"time"

	"github.com/mathysbarber/agenda-api/internal/audit"
	"github.com/mathysbarber/agenda-api/internal/clock"
	domain "github.com/mathysbarber/agenda-api/internal/domain/calendar"
)

// ======================================================
// EXTEND WEEK
// ======================================================

// ExtendWeek mantém a janela rolante semanal: ancora no último dia
// conhecido (ou hoje), ajusta para segunda-feira e gera seis dias,
// segunda a sábado, pulando os que já existem. Idempotente por
// construção: rodar duas vezes seguidas não cria nada novo.
type ExtendWeek struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewExtendWeek(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ExtendWeek {
	return &ExtendWeek{
		repo:  repo,
		audit: audit,
		now:   clock.Now,
	}
}

func (uc *ExtendWeek) WithNow(now func() time.Time) *ExtendWeek {
	uc.now = now
	return uc
}

func (uc *ExtendWeek) Execute(ctx context.Context) ([]string, error) {

	// --------------------------------------------------
	// 1. Âncora: último dia do banco, senão hoje
	// --------------------------------------------------
	lastID, err := uc.repo.LastDayID(ctx)
	if err != nil {
		return nil, err
	}

	anchor := clock.Midnight(uc.now())
	if lastID != "" {
		if parsed, err := clock.ParseDate(lastID); err == nil {
			anchor = parsed
		}
	}

	// --------------------------------------------------
	// 2. Lote sempre começa numa segunda-feira
	// --------------------------------------------------
	anchor = clock.NextMonday(anchor)

	// --------------------------------------------------
	// 3. Segunda a sábado (domingo fechado)
	// --------------------------------------------------
	var created []string
	times := domain.SlotTimes()

	for i := 0; i < domain.WeekDays; i++ {
		dayID := clock.FormatDate(anchor.AddDate(0, 0, i))

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
			Action:   "week_generated",
			Entity:   "day",
			Metadata: map[string]any{"days": created},
		})
	}

	return created, nil
}

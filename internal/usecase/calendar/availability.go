package calendar

import (
	"context"
	"sort"

	domain "github.com/mathysbarber/agenda-api/internal/domain/calendar"
	"github.com/mathysbarber/agenda-api/internal/httperr"
)

// ======================================================
// AVAILABILITY
// ======================================================

// AvailableDays responde "quais horas ainda estão livres na barbearia",
// agrupadas por dia. Mapa vazio (nunca 404) quando não há nada livre.
type AvailableDays struct {
	repo domain.Repository
}

func NewAvailableDays(repo domain.Repository) *AvailableDays {
	return &AvailableDays{repo: repo}
}

func (uc *AvailableDays) Execute(ctx context.Context) (map[string][]string, error) {

	slots, err := uc.repo.ListFreeSlots(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]string)
	for _, s := range slots {
		out[s.DayID] = append(out[s.DayID], s.Time)
	}

	for _, times := range out {
		sort.Strings(times)
	}

	return out, nil
}

// BarberAvailability responde uma pergunta diferente: "em quais horas
// este barbeiro ainda pode ser agendado". Ignora o status occupied do
// slot de propósito: occupied é da barbearia inteira, o claim é do
// barbeiro. Dias cancelados pelo barbeiro saem por inteiro.
type BarberAvailability struct {
	repo domain.Repository
}

func NewBarberAvailability(repo domain.Repository) *BarberAvailability {
	return &BarberAvailability{repo: repo}
}

func (uc *BarberAvailability) Execute(
	ctx context.Context,
	barberID uint,
) (map[string][]string, error) {

	exists, err := uc.repo.BarberExists(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	days, err := uc.repo.ListDays(ctx)
	if err != nil {
		return nil, err
	}

	cancelled, err := uc.repo.CancelledDayIDs(ctx, barberID)
	if err != nil {
		return nil, err
	}
	cancelledSet := make(map[string]bool, len(cancelled))
	for _, id := range cancelled {
		cancelledSet[id] = true
	}

	claimed, err := uc.repo.ClaimedTimes(ctx, barberID)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]string)

	for _, day := range days {
		if cancelledSet[day.DayID] {
			continue
		}

		claimedTimes := make(map[string]bool)
		for _, t := range claimed[day.DayID] {
			claimedTimes[t] = true
		}

		var available []string
		for _, slot := range day.Slots {
			if !claimedTimes[slot.Time] {
				available = append(available, slot.Time)
			}
		}

		if len(available) > 0 {
			sort.Strings(available)
			out[day.DayID] = available
		}
	}

	return out, nil
}

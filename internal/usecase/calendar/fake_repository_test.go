package calendar

import (
	"context"
	"sort"

	domain "github.com/mathysbarber/agenda-api/internal/domain/calendar"
	"github.com/mathysbarber/agenda-api/internal/httperr"
	"github.com/mathysbarber/agenda-api/internal/models"
)

// fakeRepo é uma implementação em memória do domain.Repository com as
// mesmas regras do repositório gorm (duplicata, teto de três).
type fakeRepo struct {
	days    map[string]*models.Day
	barbers map[uint]bool
	cancels map[string][]uint          // day_id → barbeiros que cancelaram
	claims  map[uint]map[string][]string // barber_id → day_id → horas
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		days:    make(map[string]*models.Day),
		barbers: make(map[uint]bool),
		cancels: make(map[string][]uint),
		claims:  make(map[uint]map[string][]string),
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) LastDayID(ctx context.Context) (string, error) {
	last := ""
	for id := range f.days {
		if id > last {
			last = id
		}
	}
	return last, nil
}

func (f *fakeRepo) DayExists(ctx context.Context, dayID string) (bool, error) {
	_, ok := f.days[dayID]
	return ok, nil
}

func (f *fakeRepo) CreateDayWithSlots(ctx context.Context, dayID string, times []string) error {
	if _, ok := f.days[dayID]; ok {
		return nil
	}

	day := &models.Day{DayID: dayID}
	for _, t := range times {
		day.Slots = append(day.Slots, models.Slot{
			DayID:  dayID,
			Time:   t,
			Status: domain.SlotFree,
		})
	}
	f.days[dayID] = day
	return nil
}

func (f *fakeRepo) GetDay(ctx context.Context, dayID string) (*models.Day, error) {
	day, ok := f.days[dayID]
	if !ok {
		return nil, httperr.ErrBusiness("day_not_found")
	}
	return day, nil
}

func (f *fakeRepo) ListDays(ctx context.Context) ([]models.Day, error) {
	ids := make([]string, 0, len(f.days))
	for id := range f.days {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.Day, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.days[id])
	}
	return out, nil
}

func (f *fakeRepo) ListFreeSlots(ctx context.Context) ([]models.Slot, error) {
	var out []models.Slot
	for _, day := range f.days {
		for _, s := range day.Slots {
			if s.Status == domain.SlotFree {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) BarberExists(ctx context.Context, barberID uint) (bool, error) {
	return f.barbers[barberID], nil
}

func (f *fakeRepo) CancelDayForBarber(ctx context.Context, dayID string, barberID uint) error {
	for _, id := range f.cancels[dayID] {
		if id == barberID {
			return httperr.ErrBusiness("day_already_cancelled")
		}
	}
	if len(f.cancels[dayID]) >= domain.MaxBarbersPerDay {
		return httperr.ErrBusiness("day_cancel_limit")
	}

	f.cancels[dayID] = append(f.cancels[dayID], barberID)
	return nil
}

func (f *fakeRepo) CancelledDayIDs(ctx context.Context, barberID uint) ([]string, error) {
	var out []string
	for dayID, barbers := range f.cancels {
		for _, id := range barbers {
			if id == barberID {
				out = append(out, dayID)
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) ClaimedTimes(ctx context.Context, barberID uint) (map[string][]string, error) {
	out := make(map[string][]string)
	for dayID, times := range f.claims[barberID] {
		out[dayID] = append([]string(nil), times...)
	}
	return out, nil
}

// -------- helpers de montagem --------

func (f *fakeRepo) addBarber(id uint) {
	f.barbers[id] = true
}

func (f *fakeRepo) claim(barberID uint, dayID string, times ...string) {
	if f.claims[barberID] == nil {
		f.claims[barberID] = make(map[string][]string)
	}
	f.claims[barberID][dayID] = append(f.claims[barberID][dayID], times...)
}

func (f *fakeRepo) occupy(dayID, t string) {
	day := f.days[dayID]
	for i := range day.Slots {
		if day.Slots[i].Time == t {
			day.Slots[i].Status = domain.SlotOccupied
		}
	}
}

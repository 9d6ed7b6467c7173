package booking

import (
	"context"
	"sync"

	domain "github.com/mathysbarber/agenda-api/internal/domain/booking"
	domcal "github.com/mathysbarber/agenda-api/internal/domain/calendar"
	"github.com/mathysbarber/agenda-api/internal/httperr"
	"github.com/mathysbarber/agenda-api/internal/models"
)

// fakeRepo reproduz em memória o contrato do repositório gorm,
// inclusive o índice único parcial e o teto de claims por slot.
// O mutex faz o papel da transação.
type fakeRepo struct {
	mu sync.Mutex

	users map[uint]*models.User
	slots map[string]*models.Slot // chave date|time

	appointments []*models.Appointment
	claims       map[string][]uint // date|time → barbeiros com claim
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  make(map[uint]*models.User),
		slots:  make(map[string]*models.Slot),
		claims: make(map[string][]uint),
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func slotKey(date, t string) string {
	return date + "|" + t
}

func (f *fakeRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	return u, nil
}

func (f *fakeRepo) GetBarberUser(ctx context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok || u.Role != "barber" {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	return u, nil
}

func (f *fakeRepo) GetSlot(ctx context.Context, date string, t string) (*models.Slot, error) {
	s, ok := f.slots[slotKey(date, t)]
	if !ok {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	return s, nil
}

func (f *fakeRepo) ClaimSlot(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey(ap.Date, ap.Time)
	slot, ok := f.slots[key]
	if !ok {
		return httperr.ErrBusiness("slot_not_found")
	}

	// índice único parcial: uma cita ativa por (barbeiro, data, hora)
	if f.activeLocked(ap.BarberID, ap.Date, ap.Time) != nil {
		return httperr.ErrBusiness("slot_taken")
	}

	if len(f.claims[key]) >= domcal.MaxBarbersPerDay {
		return httperr.ErrBusiness("slot_claim_limit")
	}

	f.nextID++
	ap.ID = f.nextID
	f.appointments = append(f.appointments, ap)
	f.claims[key] = append(f.claims[key], ap.BarberID)
	slot.Status = domcal.SlotOccupied
	return nil
}

func (f *fakeRepo) FindActiveAppointment(
	ctx context.Context,
	barberID uint,
	date string,
	t string,
) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activeLocked(barberID, date, t), nil
}

func (f *fakeRepo) activeLocked(barberID uint, date, t string) *models.Appointment {
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date == date && ap.Time == t &&
			ap.Status != "cancelled" {
			return ap
		}
	}
	return nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return nil // ponteiro compartilhado, mutação já aplicada
}

func (f *fakeRepo) ReleaseSlot(
	ctx context.Context,
	ap *models.Appointment,
	deleteRow bool,
) (*models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if deleteRow {
		kept := f.appointments[:0]
		for _, other := range f.appointments {
			if other.ID != ap.ID {
				kept = append(kept, other)
			}
		}
		f.appointments = kept
	}

	key := slotKey(ap.Date, ap.Time)
	barbers := f.claims[key][:0]
	for _, id := range f.claims[key] {
		if id != ap.BarberID {
			barbers = append(barbers, id)
		}
	}
	f.claims[key] = barbers

	slot, ok := f.slots[key]
	if !ok {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	// só libera se nenhuma outra cita ativa restar naquela hora
	stillActive := false
	for _, other := range f.appointments {
		if other.Date == ap.Date && other.Time == ap.Time &&
			other.Status != "cancelled" {
			stillActive = true
		}
	}
	if !stillActive {
		slot.Status = domcal.SlotFree
	}

	return slot, nil
}

func (f *fakeRepo) ListForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForBarber(ctx context.Context, barberID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

// -------- helpers de montagem --------

func (f *fakeRepo) addUser(id uint, name string) {
	f.users[id] = &models.User{ID: id, Name: name, Role: "user"}
}

func (f *fakeRepo) addBarberUser(id uint, name string) {
	f.users[id] = &models.User{ID: id, Name: name, Role: "barber"}
}

func (f *fakeRepo) addSlot(date, t string) {
	f.slots[slotKey(date, t)] = &models.Slot{
		DayID:  date,
		Time:   t,
		Status: domcal.SlotFree,
	}
}

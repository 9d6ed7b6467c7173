package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/mathysbarber/agenda-api/internal/audit"
	"github.com/mathysbarber/agenda-api/internal/clock"
	domain "github.com/mathysbarber/agenda-api/internal/domain/booking"
	domcal "github.com/mathysbarber/agenda-api/internal/domain/calendar"
	"github.com/mathysbarber/agenda-api/internal/httperr"
	"github.com/mathysbarber/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID   uint
	BarberID uint

	Date string
	Time string

	CutType string
	Extras  []string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Data e hora na grade fixa
	// --------------------------------------------------
	if !clock.IsValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !domcal.IsSlotTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 2. Cliente e barbeiro precisam existir
	// --------------------------------------------------
	user, err := uc.repo.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	barber, err := uc.repo.GetBarberUser(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// 3. O slot tem que estar gerado no calendário
	// --------------------------------------------------
	if _, err := uc.repo.GetSlot(ctx, in.Date, in.Time); err != nil {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	// --------------------------------------------------
	// 4. Caminho rápido: hora já tomada nesse barbeiro
	// --------------------------------------------------
	if existing, _ := uc.repo.FindActiveAppointment(
		ctx,
		barber.ID,
		in.Date,
		in.Time,
	); existing != nil {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 5. Reserva atômica: insert + occupied + claim numa
	//    transação só. A corrida que escapa do passo 4 morre
	//    no índice único e volta como slot_taken igual.
	// --------------------------------------------------
	ap := &models.Appointment{
		Reference: uuid.NewString(),
		UserID:    user.ID,
		BarberID:  barber.ID,
		Date:      in.Date,
		Time:      in.Time,
		Status:    string(domain.InitialStatus()),
		CutType:   in.CutType,
		Extras:    in.Extras,
	}

	if err := uc.repo.ClaimSlot(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id": barber.ID,
			"date":      in.Date,
			"time":      in.Time,
		},
	})

	return ap, nil
}

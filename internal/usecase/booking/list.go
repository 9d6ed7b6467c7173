package booking

import (
	"context"

	domain "github.com/mathysbarber/agenda-api/internal/domain/booking"
	"github.com/mathysbarber/agenda-api/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ForUser(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Reference:   ap.Reference,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			CutType:     ap.CutType,
			Extras:      ap.Extras,
			ClientName:  ap.User.Name,
			BarberName:  ap.Barber.Name,
			BarberPhone: ap.Barber.Phone,
		})
	}

	return out, nil
}

func (uc *ListAppointments) ForBarber(
	ctx context.Context,
	barberID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListForBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Reference:   ap.Reference,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			CutType:     ap.CutType,
			Extras:      ap.Extras,
			ClientName:  ap.User.Name,
			ClientPhone: ap.User.Phone,
			BarberName:  ap.Barber.Name,
		})
	}

	return out, nil
}

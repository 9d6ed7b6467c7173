package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/mathysbarber/agenda-api/internal/domain/booking"
	domcal "github.com/mathysbarber/agenda-api/internal/domain/calendar"
	"github.com/mathysbarber/agenda-api/internal/httperr"
	"github.com/mathysbarber/agenda-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Identity
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetBarberUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, "barber").
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Slot grid
// --------------------------------------------------

func (r *BookingGormRepository) GetSlot(
	ctx context.Context,
	date string,
	timeStr string,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).
		Where("day_id = ? AND time = ?", date, timeStr).
		First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) FindActiveAppointment(
	ctx context.Context,
	barberID uint,
	date string,
	timeStr string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND time = ? AND status <> ?",
			barberID, date, timeStr, string(domain.StatusCancelled),
		).
		First(&ap).Error

	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) ClaimSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// o lock no slot serializa a checagem de teto dos claims
		var slot models.Slot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("day_id = ? AND time = ?", ap.Date, ap.Time).
			First(&slot).Error; err != nil {
			return httperr.ErrBusiness("slot_not_found")
		}

		var claims int64
		if err := tx.
			Model(&models.SlotClaim{}).
			Where("day_id = ? AND time = ?", ap.Date, ap.Time).
			Count(&claims).Error; err != nil {
			return err
		}
		if claims >= domcal.MaxBarbersPerDay {
			return httperr.ErrBusiness("slot_claim_limit")
		}

		// o índice único parcial decide a corrida: o perdedor
		// recebe 23505 aqui e sai como slot_taken
		if err := tx.Create(ap).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		claim := models.SlotClaim{
			DayID:    ap.Date,
			Time:     ap.Time,
			BarberID: ap.BarberID,
		}
		if err := tx.Create(&claim).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		return tx.Model(&models.Slot{}).
			Where("day_id = ? AND time = ?", ap.Date, ap.Time).
			Update("status", domcal.SlotOccupied).Error
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ReleaseSlot(
	ctx context.Context,
	ap *models.Appointment,
	deleteRow bool,
) (*models.Slot, error) {

	var slot models.Slot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("day_id = ? AND time = ?", ap.Date, ap.Time).
			First(&slot).Error; err != nil {
			return httperr.ErrBusiness("slot_not_found")
		}

		if deleteRow {
			if err := tx.Delete(&models.Appointment{}, ap.ID).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Save(ap).Error; err != nil {
				return err
			}
		}

		if err := tx.
			Where(
				"day_id = ? AND time = ? AND barber_id = ?",
				ap.Date, ap.Time, ap.BarberID,
			).
			Delete(&models.SlotClaim{}).Error; err != nil {
			return err
		}

		// invariante: occupied ⇔ existe cita não cancelada nessa hora
		var active int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"date = ? AND time = ? AND status <> ?",
				ap.Date, ap.Time, string(domain.StatusCancelled),
			).
			Count(&active).Error; err != nil {
			return err
		}

		status := domcal.SlotOccupied
		if active == 0 {
			status = domcal.SlotFree
		}
		slot.Status = status

		return tx.Model(&models.Slot{}).
			Where("day_id = ? AND time = ?", ap.Date, ap.Time).
			Update("status", status).Error
	})

	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Barber").
		Where("user_id = ?", userID).
		Order("date ASC, time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Barber").
		Where("barber_id = ?", barberID).
		Order("date ASC, time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

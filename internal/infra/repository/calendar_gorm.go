package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/mathysbarber/agenda-api/internal/domain/calendar"
	"github.com/mathysbarber/agenda-api/internal/httperr"
	"github.com/mathysbarber/agenda-api/internal/models"
)

type CalendarGormRepository struct {
	db *gorm.DB
}

func NewCalendarGormRepository(db *gorm.DB) *CalendarGormRepository {
	return &CalendarGormRepository{db: db}
}

// --------------------------------------------------
// Day generation
// --------------------------------------------------

func (r *CalendarGormRepository) LastDayID(
	ctx context.Context,
) (string, error) {

	var day models.Day
	err := r.db.WithContext(ctx).
		Order("day_id DESC").
		First(&day).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return day.DayID, nil
}

func (r *CalendarGormRepository) DayExists(
	ctx context.Context,
	dayID string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Day{}).
		Where("day_id = ?", dayID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CalendarGormRepository) CreateDayWithSlots(
	ctx context.Context,
	dayID string,
	times []string,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(&models.Day{DayID: dayID}).Error; err != nil {
			return err
		}

		slots := make([]models.Slot, 0, len(times))
		for _, t := range times {
			slots = append(slots, models.Slot{
				DayID:  dayID,
				Time:   t,
				Status: domain.SlotFree,
			})
		}

		return tx.Create(&slots).Error
	})

	// duas réplicas gerando o mesmo dia: a perdedora bate na chave
	// primária e o dia já está lá, nada a fazer
	if httperr.IsUniqueViolation(err) {
		return nil
	}
	return err
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *CalendarGormRepository) GetDay(
	ctx context.Context,
	dayID string,
) (*models.Day, error) {

	var day models.Day
	err := r.db.WithContext(ctx).
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("time ASC")
		}).
		First(&day, "day_id = ?", dayID).Error

	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *CalendarGormRepository) ListDays(
	ctx context.Context,
) ([]models.Day, error) {

	var days []models.Day
	err := r.db.WithContext(ctx).
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("time ASC")
		}).
		Order("day_id ASC").
		Find(&days).Error

	if err != nil {
		return nil, err
	}
	return days, nil
}

func (r *CalendarGormRepository) ListFreeSlots(
	ctx context.Context,
) ([]models.Slot, error) {

	var slots []models.Slot
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.SlotFree).
		Order("day_id ASC, time ASC").
		Find(&slots).Error

	if err != nil {
		return nil, err
	}
	return slots, nil
}

// --------------------------------------------------
// Per-barber markers
// --------------------------------------------------

func (r *CalendarGormRepository) BarberExists(
	ctx context.Context,
	barberID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND role = ?", barberID, "barber").
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CalendarGormRepository) CancelDayForBarber(
	ctx context.Context,
	dayID string,
	barberID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// lock no dia serializa a checagem do teto de três
		var day models.Day
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&day, "day_id = ?", dayID).Error; err != nil {
			return httperr.ErrBusiness("day_not_found")
		}

		var existing int64
		if err := tx.
			Model(&models.DayCancellation{}).
			Where("day_id = ? AND barber_id = ?", dayID, barberID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return httperr.ErrBusiness("day_already_cancelled")
		}

		var total int64
		if err := tx.
			Model(&models.DayCancellation{}).
			Where("day_id = ?", dayID).
			Count(&total).Error; err != nil {
			return err
		}
		if total >= domain.MaxBarbersPerDay {
			return httperr.ErrBusiness("day_cancel_limit")
		}

		err := tx.Create(&models.DayCancellation{
			DayID:    dayID,
			BarberID: barberID,
		}).Error

		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("day_already_cancelled")
		}
		return err
	})
}

func (r *CalendarGormRepository) CancelledDayIDs(
	ctx context.Context,
	barberID uint,
) ([]string, error) {

	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.DayCancellation{}).
		Where("barber_id = ?", barberID).
		Pluck("day_id", &ids).Error

	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *CalendarGormRepository) ClaimedTimes(
	ctx context.Context,
	barberID uint,
) (map[string][]string, error) {

	var claims []models.SlotClaim
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("day_id ASC, time ASC").
		Find(&claims).Error; err != nil {
		return nil, err
	}

	out := make(map[string][]string)
	for _, c := range claims {
		out[c.DayID] = append(out[c.DayID], c.Time)
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*CalendarGormRepository)(nil)

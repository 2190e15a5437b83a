package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-calendar/internal/domain/booking"
	"github.com/BruksfildServices01/salon-calendar/internal/models"
)

type CalendarGormRepository struct {
	db *gorm.DB
}

func NewCalendarGormRepository(db *gorm.DB) *CalendarGormRepository {
	return &CalendarGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *CalendarGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *CalendarGormRepository) ListWorkingHours(
	ctx context.Context,
	salonID uint,
) ([]models.WorkingHour, error) {

	var hours []models.WorkingHour
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *CalendarGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	salonID uint,
	from string,
	to string,
	employeeID *uint,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Employee").
		Where("salon_id = ? AND date >= ? AND date < ?", salonID, from, to)

	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var bookings []models.Booking
	if err := q.
		Order("date ASC").
		Order("time ASC").
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Data version
// --------------------------------------------------

type versionRow struct {
	Total      int64
	LastUpdate sql.NullTime
}

const versionColumns = "COUNT(*) AS total, MAX(updated_at) AS last_update"

// GetDataVersion reads row counts and the latest updated_at of the bookings
// in [from, to) and of the salon's working hours.
func (r *CalendarGormRepository) GetDataVersion(
	ctx context.Context,
	salonID uint,
	from string,
	to string,
	employeeID *uint,
) (domain.DataVersion, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select(versionColumns).
		Where("salon_id = ? AND date >= ? AND date < ?", salonID, from, to)

	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var bookings versionRow
	if err := q.Scan(&bookings).Error; err != nil {
		return domain.DataVersion{}, err
	}

	var hours versionRow
	if err := r.db.WithContext(ctx).
		Model(&models.WorkingHour{}).
		Select(versionColumns).
		Where("salon_id = ?", salonID).
		Scan(&hours).Error; err != nil {
		return domain.DataVersion{}, err
	}

	return domain.DataVersion{
		Bookings:          bookings.Total,
		BookingsUpdatedAt: bookings.LastUpdate.Time,
		WorkingHours:      hours.Total,
		HoursUpdatedAt:    hours.LastUpdate.Time,
	}, nil
}

// Compile-time check
var _ domain.Repository = (*CalendarGormRepository)(nil)

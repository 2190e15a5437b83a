package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-calendar/internal/models"
)

// Repository is the read side the calendar needs. Dates are YYYY-MM-DD
// strings and the period is half-open: from <= date < to.
type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// -------- Working hours --------
	ListWorkingHours(
		ctx context.Context,
		salonID uint,
	) ([]models.WorkingHour, error)

	// -------- Bookings --------
	ListBookingsForPeriod(
		ctx context.Context,
		salonID uint,
		from string,
		to string,
		employeeID *uint,
	) ([]models.Booking, error)

	// -------- Versioning --------
	GetDataVersion(
		ctx context.Context,
		salonID uint,
		from string,
		to string,
		employeeID *uint,
	) (DataVersion, error)
}

// DataVersion summarizes the rows a layout reads. Any insert, update or
// delete of a booking in the period or of a working hour changes it.
type DataVersion struct {
	Bookings          int64
	BookingsUpdatedAt time.Time
	WorkingHours      int64
	HoursUpdatedAt    time.Time
}

func (v DataVersion) String() string {
	return fmt.Sprintf("b%d.%d-h%d.%d",
		v.Bookings, v.BookingsUpdatedAt.UnixMicro(),
		v.WorkingHours, v.HoursUpdatedAt.UnixMicro(),
	)
}

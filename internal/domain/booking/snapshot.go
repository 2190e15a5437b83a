package booking

import (
	"strconv"

	"github.com/BruksfildServices01/salon-calendar/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-calendar/internal/models"
)

// ToBookingRecords maps stored bookings into calendar inputs. Relation
// names are passed as secondary label sources behind the denormalized
// names saved on the booking.
func ToBookingRecords(bookings []models.Booking) []calendar.BookingRecord {
	out := make([]calendar.BookingRecord, 0, len(bookings))
	for _, b := range bookings {
		rec := calendar.BookingRecord{
			ID:              strconv.FormatUint(uint64(b.ID), 10),
			Date:            b.Date,
			Time:            b.Time,
			DurationMinutes: b.DurationMinutes,
			CustomerName:    b.CustomerName,
			ServiceName:     b.ServiceName,
			ResourceTitle:   b.EmployeeName,
			Status:          calendar.ParseStatus(b.Status),
		}

		if b.EndTime != nil {
			rec.EndTime = *b.EndTime
		}
		if b.Customer != nil {
			rec.Customer = &calendar.NamedRef{Name: b.Customer.Name}
		}
		if b.Service != nil {
			rec.Service = &calendar.NamedRef{Name: b.Service.Name}
			if rec.DurationMinutes == nil && rec.EndTime == "" && b.Service.DurationMin > 0 {
				d := b.Service.DurationMin
				rec.DurationMinutes = &d
			}
		}
		if b.EmployeeID != nil {
			rec.ResourceID = strconv.FormatUint(uint64(*b.EmployeeID), 10)
		}
		if b.Employee != nil {
			rec.Resource = &calendar.NamedRef{Name: b.Employee.Name}
		}

		out = append(out, rec)
	}
	return out
}

func ToWorkingHourRecords(hours []models.WorkingHour) []calendar.WorkingHourRecord {
	out := make([]calendar.WorkingHourRecord, 0, len(hours))
	for _, wh := range hours {
		out = append(out, calendar.WorkingHourRecord{
			DayOfWeek: wh.DayOfWeek,
			IsClosed:  wh.IsClosed,
			OpenTime:  wh.OpenTime,
			CloseTime: wh.CloseTime,
		})
	}
	return out
}

package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-calendar/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-calendar/internal/models"
)

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestToBookingRecords(t *testing.T) {
	bookings := []models.Booking{
		{
			ID:           12,
			Date:         "2025-03-10",
			Time:         "09:00:00",
			EndTime:      strPtr("09:45"),
			CustomerName: "Bruno",
			EmployeeID:   uintPtr(3),
			Employee:     &models.Employee{ID: 3, Name: "Ana"},
			Service:      &models.Service{Name: "Haircut", DurationMin: 30},
			Status:       "confirmed",
		},
		{
			ID:      13,
			Date:    "2025-03-10",
			Time:    "10:00",
			Service: &models.Service{Name: "Beard", DurationMin: 20},
			Status:  "canceled",
		},
		{
			ID:              14,
			Date:            "2025-03-10",
			Time:            "11:00",
			DurationMinutes: intPtr(90),
			Service:         &models.Service{Name: "Color", DurationMin: 45},
		},
	}

	recs := ToBookingRecords(bookings)
	require.Len(t, recs, 3)

	first := recs[0]
	assert.Equal(t, "12", first.ID)
	assert.Equal(t, "09:45", first.EndTime)
	assert.Nil(t, first.DurationMinutes)
	assert.Equal(t, "3", first.ResourceID)
	assert.Equal(t, "Ana", first.Resource.Name)
	assert.Equal(t, "Haircut", first.Service.Name)
	assert.Equal(t, calendar.StatusConfirmed, first.Status)

	require.NotNil(t, recs[1].DurationMinutes)
	assert.Equal(t, 20, *recs[1].DurationMinutes)
	assert.Equal(t, calendar.StatusCancelled, recs[1].Status)
	assert.Empty(t, recs[1].ResourceID)

	assert.Equal(t, 90, *recs[2].DurationMinutes)
}

func TestToWorkingHourRecords(t *testing.T) {
	recs := ToWorkingHourRecords([]models.WorkingHour{
		{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"},
		{DayOfWeek: 0, IsClosed: true},
	})

	assert.Equal(t, []calendar.WorkingHourRecord{
		{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"},
		{DayOfWeek: 0, IsClosed: true},
	}, recs)
}

func TestWithoutCancelled(t *testing.T) {
	events := []calendar.Event{
		{ID: "1", Status: calendar.StatusConfirmed},
		{ID: "2", Status: calendar.StatusCancelled},
		{ID: "3", Status: calendar.StatusNoShow},
	}

	out := WithoutCancelled(events)

	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "3", out[1].ID)
	assert.False(t, IsActive(calendar.StatusNoShow))
	assert.True(t, IsActive(calendar.StatusPending))
}

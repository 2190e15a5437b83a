package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid(t *testing.T) {
	days := MonthGrid(date(2025, 3, 12), time.Monday)

	require.Len(t, days, 42)
	assert.Equal(t, date(2025, 2, 24), days[0])
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, date(2025, 4, 6), days[41])

	sunday := MonthGrid(date(2025, 6, 1), time.Sunday)
	assert.Equal(t, date(2025, 6, 1), sunday[0])
}

func TestBucketByDay(t *testing.T) {
	days := []time.Time{date(2025, 3, 10), date(2025, 3, 11)}
	events := []Event{
		ev("late", "15:00", "16:00"),
		ev("early", "09:00", "10:00"),
		ev("mid", "12:00", "13:00"),
		{ID: "next", Start: at("09:00").AddDate(0, 0, 1), End: at("10:00").AddDate(0, 0, 1)},
		{ID: "outside", Start: at("09:00").AddDate(0, 0, 5), End: at("10:00").AddDate(0, 0, 5)},
	}

	cells := BucketByDay(events, days, 2)

	require.Len(t, cells, 2)
	require.Len(t, cells[0].Events, 2)
	assert.Equal(t, "early", cells[0].Events[0].ID)
	assert.Equal(t, "mid", cells[0].Events[1].ID)
	assert.Equal(t, 1, cells[0].Overflow)

	require.Len(t, cells[1].Events, 1)
	assert.Equal(t, "next", cells[1].Events[0].ID)
	assert.Zero(t, cells[1].Overflow)
}

func TestBucketByDayEmpty(t *testing.T) {
	cells := BucketByDay(nil, []time.Time{date(2025, 3, 10)}, 0)

	require.Len(t, cells, 1)
	assert.NotNil(t, cells[0].Events)
	assert.Empty(t, cells[0].Events)
}

func TestBuildMonth(t *testing.T) {
	layout := BuildMonth([]Event{ev("A", "09:00", "10:00")}, date(2025, 3, 10), time.Monday, 0)

	assert.Equal(t, 2025, layout.Year)
	assert.Equal(t, time.March, layout.Month)
	require.Len(t, layout.Weeks, 6)
	for _, w := range layout.Weeks {
		assert.Len(t, w, 7)
	}

	assert.False(t, layout.Weeks[0][0].InMonth)
	// Mar 10 2025 is the Monday of the third row
	cell := layout.Weeks[2][0]
	assert.Equal(t, date(2025, 3, 10), cell.Date)
	assert.True(t, cell.InMonth)
	require.Len(t, cell.Events, 1)
	assert.Equal(t, "A", cell.Events[0].ID)
}

func TestBuildTimeGrid(t *testing.T) {
	days := []time.Time{date(2025, 3, 10), date(2025, 3, 11)}
	events := []Event{
		ev("A", "09:00", "10:00"),
		ev("B", "09:30", "10:30"),
		ev("C", "11:00", "11:30"),
	}

	cols := BuildTimeGrid(events, days, DefaultWindow, DefaultGrid)

	require.Len(t, cols, 2)
	require.Len(t, cols[0].Events, 3)
	assert.Equal(t, 2, cols[0].MaxLanes)

	c := cols[0].Events[2]
	assert.Equal(t, "C", c.Event.ID)
	assert.InDelta(t, 120, c.Geometry.Top, 1e-9)
	assert.InDelta(t, 50, c.Geometry.Width, 1e-9)
	assert.InDelta(t, 0, c.Geometry.Offset, 1e-9)

	b := cols[0].Events[1]
	assert.InDelta(t, 50, b.Geometry.Offset, 1e-9)

	assert.Empty(t, cols[1].Events)
	assert.Equal(t, 1, cols[1].MaxLanes)
}

func TestPlaceInCellUsesPercentOfWindow(t *testing.T) {
	cell := DayCell{
		Date:   date(2025, 3, 10),
		Events: []Event{ev("A", "12:00", "15:00"), ev("B", "12:00", "13:00")},
	}
	grid := DefaultGrid
	grid.RTL = true

	placed := PlaceInCell(cell, DefaultWindow, grid)

	require.Len(t, placed, 2)
	for _, pe := range placed {
		assert.Equal(t, UnitPercent, pe.Geometry.Unit)
		assert.InDelta(t, 25, pe.Geometry.Top, 1e-9)
		assert.InDelta(t, 100, pe.Geometry.Width, 1e-9)
		assert.InDelta(t, 0, pe.Geometry.Offset, 1e-9)
		assert.Equal(t, SideRight, pe.Geometry.Side)
	}
	assert.InDelta(t, 25, placed[0].Geometry.Height, 1e-9)
	assert.Equal(t, "B", placed[1].Event.ID)

	assert.Empty(t, PlaceInCell(DayCell{Date: date(2025, 3, 11)}, DefaultWindow, grid))
}

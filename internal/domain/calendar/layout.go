package calendar

import "time"

// PlacedEvent is an event with its box in the time grid.
type PlacedEvent struct {
	Event    Event
	Geometry Geometry
}

// DayColumn is one column of a day or week view.
type DayColumn struct {
	Date     time.Time
	MaxLanes int
	Events   []PlacedEvent
}

// BuildTimeGrid lays out events over the given days: lanes are assigned
// per day and every event is positioned against that day's window.
// Events starting outside days are ignored.
func BuildTimeGrid(events []Event, days []time.Time, window TimeWindow, grid GridConfig) []DayColumn {
	lanes := make(map[time.Time]DayLanes)
	for _, dl := range AssignLanesByDay(events) {
		lanes[dl.Date] = dl
	}

	total := float64(window.TotalMinutes())

	cols := make([]DayColumn, 0, len(days))
	for _, d := range days {
		d = Day(d)
		col := DayColumn{Date: d, MaxLanes: 1, Events: []PlacedEvent{}}

		if dl, ok := lanes[d]; ok {
			col.MaxLanes = dl.MaxLanes
			windowStart := window.StartOn(d)
			for _, ev := range dl.Events {
				col.Events = append(col.Events, PlacedEvent{
					Event:    ev,
					Geometry: MapToGeometry(ev, ev.LaneIndex, ev.LaneCount, windowStart, total, grid),
				})
			}
		}

		cols = append(cols, col)
	}
	return cols
}

// PlaceInCell positions the visible events of a month cell against that
// day's window in percent. Month cells have no lanes, so every box spans
// the full cell width.
func PlaceInCell(cell DayCell, window TimeWindow, grid GridConfig) []PlacedEvent {
	grid = grid.Percent()
	total := float64(window.TotalMinutes())
	windowStart := window.StartOn(cell.Date)

	placed := make([]PlacedEvent, 0, len(cell.Events))
	for _, ev := range cell.Events {
		placed = append(placed, PlacedEvent{
			Event:    ev,
			Geometry: MapToGeometry(ev, 0, 1, windowStart, total, grid),
		})
	}
	return placed
}

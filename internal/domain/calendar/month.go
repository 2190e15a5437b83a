package calendar

import (
	"sort"
	"time"
)

const monthGridDays = 42

// MonthGrid returns the 6x7 days shown for the month of cursor, starting on
// the configured first weekday.
func MonthGrid(cursor time.Time, weekStart time.Weekday) []time.Time {
	first := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, time.UTC)
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	start := first.AddDate(0, 0, -lead)

	days := make([]time.Time, monthGridDays)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// DayCell is one day of the month view.
type DayCell struct {
	Date     time.Time
	InMonth  bool
	Events   []Event
	Overflow int
}

// BucketByDay groups events by their start day into the given days. At
// most maxVisible events are kept per cell (0 keeps all); the rest are
// counted in Overflow. Events outside days are dropped.
func BucketByDay(events []Event, days []time.Time, maxVisible int) []DayCell {
	index := make(map[time.Time]int, len(days))
	cells := make([]DayCell, len(days))
	for i, d := range days {
		d = Day(d)
		index[d] = i
		cells[i] = DayCell{Date: d, Events: []Event{}}
	}

	for _, ev := range events {
		i, ok := index[Day(ev.Start)]
		if !ok {
			continue
		}
		cells[i].Events = append(cells[i].Events, ev)
	}

	for i := range cells {
		evs := cells[i].Events
		sort.SliceStable(evs, func(a, b int) bool { return evs[a].Start.Before(evs[b].Start) })
		if maxVisible > 0 && len(evs) > maxVisible {
			cells[i].Overflow = len(evs) - maxVisible
			cells[i].Events = evs[:maxVisible]
		}
	}

	return cells
}

// MonthLayout is the month view: six weeks of seven cells.
type MonthLayout struct {
	Year  int
	Month time.Month
	Weeks [][]DayCell
}

func BuildMonth(events []Event, cursor time.Time, weekStart time.Weekday, maxVisible int) MonthLayout {
	days := MonthGrid(cursor, weekStart)
	cells := BucketByDay(events, days, maxVisible)

	layout := MonthLayout{Year: cursor.Year(), Month: cursor.Month()}
	for w := 0; w < len(cells); w += 7 {
		week := cells[w : w+7]
		for i := range week {
			week[i].InMonth = week[i].Date.Month() == cursor.Month()
		}
		layout.Weeks = append(layout.Weeks, week)
	}
	return layout
}

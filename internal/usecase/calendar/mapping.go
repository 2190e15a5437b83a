package calendar

import (
	"fmt"

	"github.com/BruksfildServices01/salon-calendar/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-calendar/internal/dto"
)

const instantFormat = "2006-01-02T15:04:05"

func toEventDTO(ev calendar.Event) dto.CalendarEventDTO {
	return dto.CalendarEventDTO{
		ID:            ev.ID,
		Start:         ev.Start.Format(instantFormat),
		End:           ev.End.Format(instantFormat),
		Status:        string(ev.Status),
		Title:         ev.Title,
		ResourceID:    ev.ResourceID,
		ResourceLabel: ev.ResourceLabel,
		CustomerLabel: ev.CustomerLabel,
		LaneIndex:     ev.LaneIndex,
		LaneCount:     ev.LaneCount,
	}
}

func toGeometryDTO(g calendar.Geometry) *dto.GeometryDTO {
	out := &dto.GeometryDTO{
		Unit:   string(g.Unit),
		Top:    g.Top,
		Height: g.Height,
		Width:  g.Width,
	}
	offset := g.Offset
	if g.Side == calendar.SideRight {
		out.Right = &offset
	} else {
		out.Left = &offset
	}
	return out
}

func toDayColumnsDTO(cols []calendar.DayColumn) []dto.DayColumnDTO {
	out := make([]dto.DayColumnDTO, 0, len(cols))
	for _, col := range cols {
		events := make([]dto.CalendarEventDTO, 0, len(col.Events))
		for _, pe := range col.Events {
			e := toEventDTO(pe.Event)
			e.Geometry = toGeometryDTO(pe.Geometry)
			events = append(events, e)
		}
		out = append(out, dto.DayColumnDTO{
			Date:     col.Date.Format(calendar.DateFormat),
			MaxLanes: col.MaxLanes,
			Events:   events,
		})
	}
	return out
}

// toMonthDTO gives each visible cell event a percent box inside the
// working window of its day.
func toMonthDTO(m calendar.MonthLayout, window calendar.TimeWindow, grid calendar.GridConfig) *dto.MonthDTO {
	out := &dto.MonthDTO{
		Year:  m.Year,
		Month: int(m.Month),
		Weeks: make([][]dto.DayCellDTO, 0, len(m.Weeks)),
	}
	for _, week := range m.Weeks {
		cells := make([]dto.DayCellDTO, 0, len(week))
		for _, cell := range week {
			events := make([]dto.CalendarEventDTO, 0, len(cell.Events))
			for _, pe := range calendar.PlaceInCell(cell, window, grid) {
				e := toEventDTO(pe.Event)
				e.Geometry = toGeometryDTO(pe.Geometry)
				events = append(events, e)
			}
			cells = append(cells, dto.DayCellDTO{
				Date:     cell.Date.Format(calendar.DateFormat),
				InMonth:  cell.InMonth,
				Events:   events,
				Overflow: cell.Overflow,
			})
		}
		out.Weeks = append(out.Weeks, cells)
	}
	return out
}

func toWindowDTO(w calendar.TimeWindow) dto.TimeWindowDTO {
	return dto.TimeWindowDTO{
		Start:        clockString(w.StartHour, w.StartMinute),
		End:          clockString(w.EndHour, w.EndMinute),
		TotalMinutes: w.TotalMinutes(),
	}
}

// clockString keeps "24:00" readable; time.Format would wrap it to 00:00.
func clockString(h, m int) string {
	return fmt.Sprintf("%02d:%02d", h, m)
}

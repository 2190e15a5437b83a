package calendar

import (
	"sort"
	"time"
)

// AssignLanes packs one day's events into lanes with a greedy first-fit
// scan over a table of lane end times. Events come back sorted by start;
// equal starts keep their input order.
//
// LaneCount is the peak number of lanes reached anywhere in the day, not
// the peak of the event's own overlap cluster, so events in quiet parts
// of a busy day are drawn as narrow as the busiest moment.
func AssignLanes(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})

	var laneEnds []time.Time
	maxLanes := 0

	for i := range out {
		lane := -1
		for l, end := range laneEnds {
			if !out[i].Start.Before(end) {
				lane = l
				break
			}
		}

		if lane == -1 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, out[i].End)
		} else {
			laneEnds[lane] = out[i].End
		}

		if len(laneEnds) > maxLanes {
			maxLanes = len(laneEnds)
		}
		out[i].LaneIndex = lane
	}

	if maxLanes == 0 {
		maxLanes = 1
	}
	for i := range out {
		out[i].LaneCount = maxLanes
	}

	return out
}

// DayLanes is one calendar day's lane assignment.
type DayLanes struct {
	Date     time.Time
	Events   []Event
	MaxLanes int
}

// AssignLanesByDay groups events by the day they start on and assigns
// lanes per day. Days are returned in ascending order.
func AssignLanesByDay(events []Event) []DayLanes {
	byDay := make(map[time.Time][]Event)
	for _, ev := range events {
		d := Day(ev.Start)
		byDay[d] = append(byDay[d], ev)
	}

	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]DayLanes, 0, len(days))
	for _, d := range days {
		assigned := AssignLanes(byDay[d])
		out = append(out, DayLanes{
			Date:     d,
			Events:   assigned,
			MaxLanes: assigned[0].LaneCount,
		})
	}
	return out
}

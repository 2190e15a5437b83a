package calendar

import (
	"strconv"
	"strings"
)

// DefaultWindow is used when no working day is open.
var DefaultWindow = TimeWindow{StartHour: 9, EndHour: 21}

type clock struct {
	hour   int
	minute int
}

func (c clock) before(o clock) bool {
	if c.hour != o.hour {
		return c.hour < o.hour
	}
	return c.minute < o.minute
}

// ResolveBounds derives the visible window from the open working days:
// the earliest opening and the latest closing across all of them.
func ResolveBounds(hours []WorkingHourRecord, fallback TimeWindow) TimeWindow {
	var (
		earliest, latest clock
		found            bool
	)

	for _, wh := range hours {
		if wh.IsClosed || strings.TrimSpace(wh.OpenTime) == "" || strings.TrimSpace(wh.CloseTime) == "" {
			continue
		}

		open := parseClock(wh.OpenTime, fallback.StartHour)
		closing := parseClock(wh.CloseTime, fallback.EndHour)

		if !found {
			earliest, latest = open, closing
			found = true
			continue
		}
		if open.before(earliest) {
			earliest = open
		}
		if latest.before(closing) {
			latest = closing
		}
	}

	if !found {
		return fallback
	}

	// overnight or inverted hours cannot be drawn on a single-day grid
	if !earliest.before(latest) {
		return fallback
	}

	return TimeWindow{
		StartHour:   earliest.hour,
		StartMinute: earliest.minute,
		EndHour:     latest.hour,
		EndMinute:   latest.minute,
	}
}

// parseClock reads "HH:MM" or "HH:MM:SS". Anything else yields defHour:00.
func parseClock(s string, defHour int) clock {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return clock{hour: defHour}
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return clock{hour: defHour}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return clock{hour: defHour}
	}
	if h == 24 && m != 0 {
		return clock{hour: defHour}
	}

	return clock{hour: h, minute: m}
}

// ParseWindow builds a window from two "HH:MM" strings, falling back to
// DefaultWindow for whichever side does not parse.
func ParseWindow(open, closing string) TimeWindow {
	o := parseClock(open, DefaultWindow.StartHour)
	c := parseClock(closing, DefaultWindow.EndHour)
	if !o.before(c) {
		return DefaultWindow
	}
	return TimeWindow{StartHour: o.hour, StartMinute: o.minute, EndHour: c.hour, EndMinute: c.minute}
}

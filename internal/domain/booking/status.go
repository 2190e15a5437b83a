package booking

import "github.com/BruksfildServices01/salon-calendar/internal/domain/calendar"

// ===============================
// Booking Status
// ===============================

// IsActive reports whether a booking still occupies its slot.
func IsActive(s calendar.Status) bool {
	return s != calendar.StatusCancelled && s != calendar.StatusNoShow
}

// WithoutCancelled drops cancelled events and keeps everything else,
// including no-shows, which still happened on the calendar.
func WithoutCancelled(events []calendar.Event) []calendar.Event {
	out := make([]calendar.Event, 0, len(events))
	for _, ev := range events {
		if ev.Status == calendar.StatusCancelled {
			continue
		}
		out = append(out, ev)
	}
	return out
}

package calendar

import (
	"strconv"
	"strings"
	"time"
)

// Accessor extracts one candidate display string from a booking.
type Accessor func(b BookingRecord) string

// LabelChain is an ordered list of accessors; the first non-empty result wins.
type LabelChain []Accessor

var (
	ServiceLabelChain = LabelChain{
		func(b BookingRecord) string { return b.ServiceName },
		func(b BookingRecord) string { return refName(b.Service) },
	}

	ResourceLabelChain = LabelChain{
		func(b BookingRecord) string { return b.ResourceTitle },
		func(b BookingRecord) string { return refName(b.Resource) },
	}

	CustomerLabelChain = LabelChain{
		func(b BookingRecord) string { return b.CustomerName },
		func(b BookingRecord) string { return refName(b.Customer) },
	}
)

func refName(r *NamedRef) string {
	if r == nil {
		return ""
	}
	return r.Name
}

// Resolve returns the first non-blank value of the chain or the placeholder.
func (c LabelChain) Resolve(b BookingRecord, placeholder string) string {
	for _, get := range c {
		if v := strings.TrimSpace(get(b)); v != "" {
			return v
		}
	}
	return placeholder
}

// Placeholders are shown when a label chain yields nothing.
type Placeholders struct {
	Service  string
	Resource string
	Customer string
}

var DefaultPlaceholders = Placeholders{
	Service:  "Service",
	Resource: "Main",
	Customer: "Customer",
}

type ProjectOptions struct {
	// Today replaces a missing or unreadable booking date.
	Today        time.Time
	Placeholders Placeholders
}

// Project turns raw bookings into calendar events. It never rejects a
// record; a malformed one becomes a degenerate event that the geometry
// floor keeps visible.
func Project(bookings []BookingRecord, opts ProjectOptions) []Event {
	ph := opts.Placeholders
	if ph == (Placeholders{}) {
		ph = DefaultPlaceholders
	}

	out := make([]Event, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, projectOne(b, opts.Today, ph))
	}
	return out
}

func projectOne(b BookingRecord, today time.Time, ph Placeholders) Event {
	day, ok := parseDate(b.Date)
	if !ok {
		day = Day(today)
	}

	start := combine(day, b.Time)

	var end time.Time
	if hm, ok := parseHM(b.EndTime); ok {
		end = day.Add(hm)
	} else {
		end = start.Add(time.Duration(durationOf(b)) * time.Minute)
	}

	resourceID := strings.TrimSpace(b.ResourceID)
	if resourceID == "" {
		resourceID = MainResource
	}

	return Event{
		ID:            b.ID,
		Start:         start,
		End:           end,
		Status:        ParseStatus(string(b.Status)),
		Title:         ServiceLabelChain.Resolve(b, ph.Service),
		ResourceID:    resourceID,
		ResourceLabel: ResourceLabelChain.Resolve(b, ph.Resource),
		CustomerLabel: CustomerLabelChain.Resolve(b, ph.Customer),
	}
}

func durationOf(b BookingRecord) int {
	if b.DurationMinutes == nil || *b.DurationMinutes == 0 {
		return DefaultDurationMinutes
	}
	return *b.DurationMinutes
}

// combine places a time-of-day on a day; a missing time means midnight.
func combine(day time.Time, hm string) time.Time {
	d, ok := parseHM(hm)
	if !ok {
		return day
	}
	return day.Add(d)
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateFormat) {
		// accept full timestamps such as 2025-01-10T00:00:00Z
		s = s[:len(DateFormat)]
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseHM reads "HH:MM" or "HH:MM:SS" as an offset from midnight.
func parseHM(s string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	if h == 24 && m != 0 {
		return 0, false
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, true
}

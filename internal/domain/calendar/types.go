package calendar

import "time"

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"

	// MainResource is used when a booking has no assigned staff member.
	MainResource = "main"

	DefaultDurationMinutes = 60
)

// ===============================
// Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// ParseStatus never fails: unknown values are shown as pending.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return Status(s)
	case "canceled":
		return StatusCancelled
	case "noshow", "no-show":
		return StatusNoShow
	default:
		return StatusPending
	}
}

// ===============================
// Inputs
// ===============================

// NamedRef is a nested record that only contributes a display name.
type NamedRef struct {
	Name string
}

type BookingRecord struct {
	ID string

	Date    string
	Time    string
	EndTime string

	DurationMinutes *int

	CustomerName string
	Customer     *NamedRef

	ServiceName string
	Service     *NamedRef

	ResourceID    string
	ResourceTitle string
	Resource      *NamedRef

	Status Status
}

type WorkingHourRecord struct {
	DayOfWeek int
	IsClosed  bool
	OpenTime  string
	CloseTime string
}

// ===============================
// Derived
// ===============================

// Event is a booking placed on the calendar. Start and End are naive
// wall-clock instants carried in UTC.
type Event struct {
	ID     string
	Start  time.Time
	End    time.Time
	Status Status

	Title         string
	ResourceID    string
	ResourceLabel string
	CustomerLabel string

	LaneIndex int
	LaneCount int
}

func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

func (e Event) Overlaps(o Event) bool {
	return e.Start.Before(o.End) && o.Start.Before(e.End)
}

// TimeWindow is the visible time-of-day range of a time grid.
type TimeWindow struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

func (w TimeWindow) StartMinutes() int {
	return w.StartHour*60 + w.StartMinute
}

func (w TimeWindow) EndMinutes() int {
	return w.EndHour*60 + w.EndMinute
}

// TotalMinutes is the height of the window in minutes.
func (w TimeWindow) TotalMinutes() int {
	return w.EndMinutes() - w.StartMinutes()
}

// StartOn anchors the window start to the given calendar day.
func (w TimeWindow) StartOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), w.StartHour, w.StartMinute, 0, 0, time.UTC)
}

// Day truncates t to midnight of its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package calendar

import (
	"strings"
	"time"
)

type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

func ParseViewMode(s string) (ViewMode, bool) {
	switch v := ViewMode(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewDay, ViewWeek, ViewMonth:
		return v, true
	default:
		return "", false
	}
}

type Intent string

const (
	IntentPrev  Intent = "prev"
	IntentNext  Intent = "next"
	IntentToday Intent = "today"
)

func ParseIntent(s string) (Intent, bool) {
	switch i := Intent(strings.ToLower(strings.TrimSpace(s))); i {
	case IntentPrev, IntentNext, IntentToday:
		return i, true
	default:
		return "", false
	}
}

// ParseWeekStart accepts "sunday"; everything else starts weeks on Monday.
func ParseWeekStart(s string) time.Weekday {
	if strings.EqualFold(strings.TrimSpace(s), "sunday") {
		return time.Sunday
	}
	return time.Monday
}

// Cursor is the active view and the date it is centred on.
type Cursor struct {
	View ViewMode
	Date time.Time
}

// Navigate applies an intent. It only moves the cursor; layouts are
// recomputed from scratch for the new range.
func Navigate(c Cursor, intent Intent, today time.Time) Cursor {
	c.Date = Day(c.Date)

	switch intent {
	case IntentToday:
		c.Date = Day(today)
	case IntentPrev:
		c.Date = step(c.View, c.Date, -1)
	case IntentNext:
		c.Date = step(c.View, c.Date, 1)
	}
	return c
}

func step(view ViewMode, d time.Time, dir int) time.Time {
	switch view {
	case ViewWeek:
		return d.AddDate(0, 0, 7*dir)
	case ViewMonth:
		return addMonthsClamped(d, dir)
	default:
		return d.AddDate(0, 0, dir)
	}
}

// addMonthsClamped moves by whole months keeping the day when it exists,
// so Jan 31 + 1 month is Feb 28/29 rather than early March.
func addMonthsClamped(d time.Time, months int) time.Time {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	last := first.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// WeekOf returns the first day of the week containing d.
func WeekOf(d time.Time, weekStart time.Weekday) time.Time {
	d = Day(d)
	back := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -back)
}

// Range is the half-open date range [from, to) the view needs data for.
func (c Cursor) Range(weekStart time.Weekday) (from, to time.Time) {
	switch c.View {
	case ViewWeek:
		from = WeekOf(c.Date, weekStart)
		return from, from.AddDate(0, 0, 7)
	case ViewMonth:
		days := MonthGrid(c.Date, weekStart)
		return days[0], days[len(days)-1].AddDate(0, 0, 1)
	default:
		from = Day(c.Date)
		return from, from.AddDate(0, 0, 1)
	}
}

// Days lists every day of the cursor's range.
func (c Cursor) Days(weekStart time.Weekday) []time.Time {
	from, to := c.Range(weekStart)
	var days []time.Time
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

var rtlLanguages = []string{"ar", "he", "fa", "ur"}

// IsRTLLocale reports whether a locale tag such as "ar-SA" is written
// right to left.
func IsRTLLocale(locale string) bool {
	lang := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	for _, l := range rtlLanguages {
		if lang == l {
			return true
		}
	}
	return false
}

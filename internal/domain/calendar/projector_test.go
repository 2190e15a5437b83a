package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

var today = time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

func TestProjectDefaultDuration(t *testing.T) {
	out := Project([]BookingRecord{{ID: "1", Date: "2025-03-10", Time: "09:00"}}, ProjectOptions{Today: today})

	require.Len(t, out, 1)
	assert.Equal(t, at("09:00"), out[0].Start)
	assert.Equal(t, 60*time.Minute, out[0].Duration())
}

func TestProjectZeroDurationIsTreatedAsMissing(t *testing.T) {
	out := Project([]BookingRecord{{ID: "1", Date: "2025-03-10", Time: "09:00", DurationMinutes: intPtr(0)}}, ProjectOptions{Today: today})
	assert.Equal(t, 60*time.Minute, out[0].Duration())
}

func TestProjectEndTimeWinsOverDuration(t *testing.T) {
	out := Project([]BookingRecord{{
		ID:              "1",
		Date:            "2025-03-10",
		Time:            "09:00:00",
		EndTime:         "09:45",
		DurationMinutes: intPtr(90),
	}}, ProjectOptions{Today: today})

	assert.Equal(t, at("09:45"), out[0].End)
}

func TestProjectDurationUsedWhenEndTimeUnreadable(t *testing.T) {
	out := Project([]BookingRecord{{ID: "1", Date: "2025-03-10", Time: "09:00", EndTime: "soon", DurationMinutes: intPtr(30)}}, ProjectOptions{Today: today})
	assert.Equal(t, at("09:30"), out[0].End)
}

func TestProjectLenientDateAndTime(t *testing.T) {
	out := Project([]BookingRecord{
		{ID: "no-date", Time: "10:00"},
		{ID: "no-time", Date: "2025-03-10"},
		{ID: "timestamp-date", Date: "2025-03-10T00:00:00Z", Time: "11:00"},
	}, ProjectOptions{Today: today})

	require.Len(t, out, 3)
	assert.Equal(t, time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC), out[0].Start)
	assert.Equal(t, at("00:00"), out[1].Start)
	assert.Equal(t, at("11:00"), out[2].Start)
}

func TestProjectRejectsClockPastMidnight(t *testing.T) {
	out := Project([]BookingRecord{
		{ID: "late-start", Date: "2025-03-10", Time: "24:30"},
		{ID: "late-end", Date: "2025-03-10", Time: "22:00", EndTime: "24:30", DurationMinutes: intPtr(30)},
		{ID: "midnight-end", Date: "2025-03-10", Time: "23:00", EndTime: "24:00"},
	}, ProjectOptions{Today: today})

	require.Len(t, out, 3)
	assert.Equal(t, at("00:00"), out[0].Start)
	assert.Equal(t, at("22:30"), out[1].End)
	assert.Equal(t, date(2025, 3, 11), out[2].End)
}

func TestProjectKeepsDegenerateEvents(t *testing.T) {
	out := Project([]BookingRecord{{ID: "1", Date: "2025-03-10", Time: "10:00", EndTime: "09:00"}}, ProjectOptions{Today: today})

	require.Len(t, out, 1)
	assert.True(t, out[0].End.Before(out[0].Start))
}

func TestProjectLabelPrecedence(t *testing.T) {
	b := BookingRecord{
		ID:            "1",
		ServiceName:   "",
		Service:       &NamedRef{Name: "Haircut"},
		ResourceTitle: "Ana",
		Resource:      &NamedRef{Name: "ignored"},
		CustomerName:  "  ",
		Customer:      &NamedRef{Name: "Bruno"},
		ResourceID:    "7",
		Status:        "confirmed",
	}

	out := Project([]BookingRecord{b}, ProjectOptions{Today: today})

	assert.Equal(t, "Haircut", out[0].Title)
	assert.Equal(t, "Ana", out[0].ResourceLabel)
	assert.Equal(t, "Bruno", out[0].CustomerLabel)
	assert.Equal(t, "7", out[0].ResourceID)
	assert.Equal(t, StatusConfirmed, out[0].Status)
}

func TestProjectPlaceholdersAndMainResource(t *testing.T) {
	ph := Placeholders{Service: "Serviço", Resource: "Principal", Customer: "Cliente"}

	out := Project([]BookingRecord{{ID: "1", Date: "2025-03-10"}}, ProjectOptions{Today: today, Placeholders: ph})

	assert.Equal(t, "Serviço", out[0].Title)
	assert.Equal(t, "Principal", out[0].ResourceLabel)
	assert.Equal(t, "Cliente", out[0].CustomerLabel)
	assert.Equal(t, MainResource, out[0].ResourceID)
	assert.Equal(t, StatusPending, out[0].Status)
}

func TestLabelChainResolve(t *testing.T) {
	chain := LabelChain{
		func(b BookingRecord) string { return "" },
		func(b BookingRecord) string { return b.ID },
	}
	assert.Equal(t, "x", chain.Resolve(BookingRecord{ID: "x"}, "fallback"))
	assert.Equal(t, "fallback", chain.Resolve(BookingRecord{}, "fallback"))
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusNoShow, ParseStatus("no_show"))
	assert.Equal(t, StatusCancelled, ParseStatus("canceled"))
	assert.Equal(t, StatusPending, ParseStatus("whatever"))
}

package formatter

import (
	"testing"
	"time"

	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatConstraints_FullDocument(t *testing.T) {
	c := &domain.UserConstraints{
		SleepStart: domain.MinuteOfDay(23 * 60),
		SleepEnd:   domain.MinuteOfDay(7 * 60),
		PeakStart:  domain.MinuteOfDay(9 * 60),
		PeakEnd:    domain.MinuteOfDay(12 * 60),
		Blocks: []domain.RecurringBlock{{
			Title:    "Day job",
			Weekdays: []time.Weekday{time.Monday, time.Friday},
			Start:    domain.MinuteOfDay(9 * 60),
			End:      domain.MinuteOfDay(17 * 60),
			Pattern:  domain.PatternA,
			Timezone: "Europe/Berlin",
		}},
		Exceptions: []domain.DateException{
			{Date: "2026-06-05", Start: 8 * 60, End: 20 * 60, Blocked: true},
			{Date: "2026-06-06", Start: 9 * 60, End: 17 * 60, Blocked: false},
		},
	}

	out := FormatConstraints(c)

	assert.Contains(t, out, "23:00 – 07:00")
	assert.Contains(t, out, "09:00 – 12:00")
	assert.Contains(t, out, "Day job")
	assert.Contains(t, out, "Mon Fri")
	assert.Contains(t, out, "week A")
	assert.Contains(t, out, "Europe/Berlin")
	assert.Contains(t, out, "blocked")
	assert.Contains(t, out, "open")
}

func TestFormatConstraints_OmitsUnsetPeak(t *testing.T) {
	c := &domain.UserConstraints{
		SleepStart: domain.MinuteOfDay(22 * 60),
		SleepEnd:   domain.MinuteOfDay(6 * 60),
	}

	out := FormatConstraints(c)

	assert.Contains(t, out, "22:00 – 06:00")
	assert.NotContains(t, out, "PEAK")
}

func TestFormatBookingList_ShowsWindow(t *testing.T) {
	bookings := []domain.Booking{{
		ID:    "abcdef12-3456-7890-abcd-ef1234567890",
		Title: "Dentist",
		Start: time.Date(2026, time.June, 2, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.June, 2, 14, 45, 0, 0, time.UTC),
	}}

	out := FormatBookingList(bookings)

	assert.Contains(t, out, "abcdef12")
	assert.Contains(t, out, "Dentist")
	assert.Contains(t, out, "Jun 2 14:00")
	assert.Contains(t, out, "Jun 2 14:45")
}

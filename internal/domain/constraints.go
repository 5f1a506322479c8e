package domain

import (
	"fmt"
	"time"
)

// MinuteOfDay is a local wall-clock value in minutes since midnight.
// Values above 1439 represent times past midnight (bedtime spanning into
// the next day after normalization).
type MinuteOfDay int

// ParseClock parses "HH:MM" into a MinuteOfDay. An hour of 24 is accepted
// and yields 1440, midnight represented as end-of-day.
func ParseClock(s string) (MinuteOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parsing clock value %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return MinuteOfDay(h*60 + m), nil
}

// Clock renders the minute back as "HH:MM".
func (m MinuteOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60%24, int(m)%60)
}

// RecurringBlock is a weekly work or blocked window, optionally scoped to
// an alternating-week pattern or a different zone than the schedule's.
type RecurringBlock struct {
	Title    string
	Weekdays []time.Weekday
	Start    MinuteOfDay
	End      MinuteOfDay
	Pattern  WeekPattern
	Timezone string // optional override; empty means the schedule zone
}

// AppliesTo reports whether the block is active on the given weekday during
// the given week offset from the schedule start date.
func (b RecurringBlock) AppliesTo(day time.Weekday, weekOffset int) bool {
	if !b.Pattern.ActiveOn(weekOffset) {
		return false
	}
	for _, d := range b.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// DateException overrides recurring availability on a single date: either
// blocking a window or reopening one that a recurring block would close.
type DateException struct {
	Date    string // "2006-01-02", local
	Start   MinuteOfDay
	End     MinuteOfDay
	Blocked bool // false means explicitly available
}

// UserConstraints is the user's declared time availability.
type UserConstraints struct {
	SleepStart MinuteOfDay // bedtime
	SleepEnd   MinuteOfDay // wake time
	PeakStart  MinuteOfDay
	PeakEnd    MinuteOfDay
	Blocks     []RecurringBlock
	Exceptions []DateException
}

// Booking is a pre-existing calendar commitment in UTC.
type Booking struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the booking intersects [start, end).
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && start.Before(b.End)
}

// TimeSlot is a candidate one-hour local window available for placement.
type TimeSlot struct {
	Date    time.Time // local midnight
	Hour    int       // local start hour
	Weekday time.Weekday
}

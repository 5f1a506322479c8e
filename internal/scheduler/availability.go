package scheduler

import (
	"time"

	"github.com/cadence-sh/cadence/internal/domain"
)

// Hour-grid floor and ceiling: slots never start before 06:00 or at/after
// 22:00 regardless of the configured sleep window.
const (
	earliestSlotHour = 6
	latestSlotHour   = 21
)

// DayAvailability is one calendar day's open hourly slots.
type DayAvailability struct {
	Date    time.Time // wall date at midnight
	Week    int       // week offset from the schedule start date
	Weekday time.Weekday
	Hours   []int // ascending local start hours
}

// Availability is the full horizon's open slots, in date order.
type Availability struct {
	Days []DayAvailability
}

// DaysInWeek returns the days of the given week offset that still expose at
// least one open hour.
func (a *Availability) DaysInWeek(week int) []*DayAvailability {
	var out []*DayAvailability
	for i := range a.Days {
		if a.Days[i].Week == week && len(a.Days[i].Hours) > 0 {
			out = append(out, &a.Days[i])
		}
	}
	return out
}

// GenerateAvailability computes every open one-hour local slot across the
// horizon. The daily hour range derives from the sleep window (bedtime is
// normalized past midnight when it does not follow the wake time), bounded
// to the fixed floor/ceiling. An hour is closed by an active recurring
// block, a blocked date exception, or a pre-existing booking; an
// "available" date exception reopens recurring-block closures but never
// booking closures.
func GenerateAvailability(
	constraints domain.UserConstraints,
	bookings []domain.Booking,
	startDate time.Time,
	zone string,
	weeks int,
) (*Availability, error) {
	wake := int(constraints.SleepEnd)
	bed := int(constraints.SleepStart)
	if bed <= wake {
		bed += 24 * 60
	}

	firstHour := (wake + 59) / 60
	lastHour := (bed - 60) / 60
	if firstHour < earliestSlotHour {
		firstHour = earliestSlotHour
	}
	if lastHour > latestSlotHour {
		lastHour = latestSlotHour
	}
	if firstHour > lastHour {
		return nil, &ConfigurationError{Msg: "sleep window leaves no schedulable hours"}
	}

	avail := &Availability{}
	for d := 0; d < weeks*7; d++ {
		date := startDate.AddDate(0, 0, d)
		day := DayAvailability{
			Date:    date,
			Week:    d / 7,
			Weekday: date.Weekday(),
		}

		for h := firstHour; h <= lastHour; h++ {
			open, err := slotOpen(constraints, bookings, date, h, day.Weekday, day.Week, zone)
			if err != nil {
				return nil, err
			}
			if open {
				day.Hours = append(day.Hours, h)
			}
		}
		avail.Days = append(avail.Days, day)
	}
	return avail, nil
}

func slotOpen(
	constraints domain.UserConstraints,
	bookings []domain.Booking,
	date time.Time,
	hour int,
	weekday time.Weekday,
	weekOffset int,
	zone string,
) (bool, error) {
	slotStart := domain.MinuteOfDay(hour * 60)
	slotEnd := slotStart + 60

	// Bookings are compared with minute precision in UTC and can never be
	// reopened by an exception.
	booked, err := overlapsBooking(bookings, date, slotStart, slotEnd, zone)
	if err != nil {
		return false, err
	}
	if booked {
		return false, nil
	}

	dateKey := date.Format("2006-01-02")
	var reopened bool
	for _, ex := range constraints.Exceptions {
		if ex.Date != dateKey || ex.End <= slotStart || slotEnd <= ex.Start {
			continue
		}
		if ex.Blocked {
			return false, nil
		}
		reopened = true
	}

	for _, b := range constraints.Blocks {
		if !b.AppliesTo(weekday, weekOffset) {
			continue
		}
		hit, err := blockCoversSlot(b, date, slotStart, slotEnd, zone)
		if err != nil {
			return false, err
		}
		if hit && !reopened {
			return false, nil
		}
	}
	return true, nil
}

func overlapsBooking(bookings []domain.Booking, date time.Time, slotStart, slotEnd domain.MinuteOfDay, zone string) (bool, error) {
	if len(bookings) == 0 {
		return false, nil
	}
	startUTC, err := LocalToUTC(date, slotStart, zone)
	if err != nil {
		return false, err
	}
	endUTC, err := LocalToUTC(date, slotEnd, zone)
	if err != nil {
		return false, err
	}
	for _, bk := range bookings {
		if bk.Overlaps(startUTC, endUTC) {
			return true, nil
		}
	}
	return false, nil
}

// blockCoversSlot checks a recurring block against the slot. A block with a
// zone override is compared as UTC instants on the slot's date; otherwise
// both are plain local minute ranges.
func blockCoversSlot(b domain.RecurringBlock, date time.Time, slotStart, slotEnd domain.MinuteOfDay, zone string) (bool, error) {
	if b.Timezone == "" || b.Timezone == zone {
		return b.Start < slotEnd && slotStart < b.End, nil
	}

	slotStartUTC, err := LocalToUTC(date, slotStart, zone)
	if err != nil {
		return false, err
	}
	slotEndUTC, err := LocalToUTC(date, slotEnd, zone)
	if err != nil {
		return false, err
	}
	blockStartUTC, err := LocalToUTC(date, b.Start, b.Timezone)
	if err != nil {
		return false, err
	}
	blockEndUTC, err := LocalToUTC(date, b.End, b.Timezone)
	if err != nil {
		return false, err
	}
	return blockStartUTC.Before(slotEndUTC) && slotStartUTC.Before(blockEndUTC), nil
}

package scheduler

import (
	"fmt"
	"time"

	"github.com/cadence-sh/cadence/internal/domain"
)

// LocalToUTC converts a local wall-clock choice (date + minute of day in an
// IANA zone) into a UTC instant using two-pass offset resolution: guess the
// instant assuming zero offset, correct by the zone's offset at the guess,
// then re-query the offset at the corrected instant and apply it if it
// changed. Two passes cover a single DST discontinuity in the relevant
// range; zones with several offset-rule changes in short succession are a
// known limitation.
//
// A minute value of 1440 (midnight written as 24:00) is normalized to 00:00
// of the following day before conversion.
func LocalToUTC(date time.Time, minute domain.MinuteOfDay, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("loading timezone %q: %w", zone, err)
	}

	y, m, d := date.Date()
	min := int(minute)
	for min >= 24*60 {
		min -= 24 * 60
		d++
	}

	guess := time.Date(y, m, d, min/60, min%60, 0, 0, time.UTC)

	_, offset1 := guess.In(loc).Zone()
	corrected := guess.Add(-time.Duration(offset1) * time.Second)

	_, offset2 := corrected.In(loc).Zone()
	if offset2 != offset1 {
		corrected = guess.Add(-time.Duration(offset2) * time.Second)
	}
	return corrected, nil
}

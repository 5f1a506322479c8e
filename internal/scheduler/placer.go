package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/cadence-sh/cadence/internal/domain"
)

// PlaceSessions assigns every session a week, a date and a concrete time
// slot. Placement is all-or-nothing: when fewer sessions fit than the plan
// requires, the whole operation fails with the numeric shortfall and
// nothing is committed.
func PlaceSessions(
	phases []*domain.PhasePlan,
	avail *Availability,
	sessionsPerWeek int,
	preferredHour int,
	zone string,
) ([]*domain.Session, error) {
	ordered := append([]*domain.PhasePlan(nil), phases...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	var all []*domain.Session
	for _, p := range ordered {
		assignWeeks(p, sessionsPerWeek)
		all = append(all, p.Sessions...)
	}
	if len(all) == 0 {
		return nil, &ValidationError{Msg: "no sessions to place"}
	}

	// Stable by week, preserving phase-then-session order inside a week.
	sort.SliceStable(all, func(i, j int) bool { return all[i].WeekIndex < all[j].WeekIndex })

	pl := &placer{
		avail:         avail,
		zone:          zone,
		preferredHour: preferredHour,
		reserved:      make(map[string]map[int]bool),
	}

	placed := 0
	seq := 0
	for start := 0; start < len(all); {
		end := start
		for end < len(all) && all[end].WeekIndex == all[start].WeekIndex {
			end++
		}
		week := all[start].WeekIndex
		sessions := all[start:end]

		dates := pl.avail.DaysInWeek(week)
		usedDates := make(map[string]bool)

		for j, s := range sessions {
			day := pickDate(dates, usedDates, j, len(sessions))
			ok := false
			if day != nil {
				ok = pl.tryPlace(s, day)
			}
			if !ok {
				// Fall back to every other date in the week.
				for _, alt := range dates {
					if day != nil && alt.Date.Equal(day.Date) {
						continue
					}
					if pl.tryPlace(s, alt) {
						ok = true
						break
					}
				}
			}
			if ok {
				usedDates[s.Date.Format("2006-01-02")] = true
				s.Sequence = seq
				seq++
				placed++
			}
		}
		start = end
	}

	if placed < len(all) {
		return nil, &AvailabilityError{Required: len(all), Found: placed}
	}
	return all, nil
}

// assignWeeks spreads a phase's sessions evenly across the window's
// session positions, resolving rounding collisions by nearest-free local
// search, then maps each position to its week.
func assignWeeks(p *domain.PhasePlan, sessionsPerWeek int) {
	n := len(p.Sessions)
	if n == 0 {
		return
	}
	capacity := p.WindowWeeks() * sessionsPerWeek
	taken := make([]bool, capacity)

	for i, s := range p.Sessions {
		var pos int
		if n == 1 {
			pos = (capacity - 1) / 2
		} else {
			pos = int(math.Round(float64(capacity-1) * float64(i) / float64(n-1)))
		}
		pos = nearestFree(taken, pos)
		taken[pos] = true
		s.WeekIndex = p.WindowStart + pos/sessionsPerWeek
	}
}

// nearestFree finds the closest unoccupied position, preferring the later
// side on ties so sessions drift forward rather than pile up early.
func nearestFree(taken []bool, pos int) int {
	if pos >= 0 && pos < len(taken) && !taken[pos] {
		return pos
	}
	for d := 1; d < len(taken); d++ {
		if p := pos + d; p < len(taken) && !taken[p] {
			return p
		}
		if p := pos - d; p >= 0 && !taken[p] {
			return p
		}
	}
	return pos
}

// pickDate chooses the j-th session's date for a week holding k sessions.
// With at least as many distinct dates as sessions, an index-scaled spread
// prefers previously-unused dates; otherwise sessions wrap round-robin.
func pickDate(dates []*DayAvailability, used map[string]bool, j, k int) *DayAvailability {
	d := len(dates)
	if d == 0 {
		return nil
	}
	if d >= k {
		idx := j * d / k
		for off := 0; off < d; off++ {
			cand := dates[(idx+off)%d]
			if !used[cand.Date.Format("2006-01-02")] {
				return cand
			}
		}
		return dates[idx%d]
	}
	return dates[j%d]
}

type placer struct {
	avail         *Availability
	zone          string
	preferredHour int
	reserved      map[string]map[int]bool
}

// tryPlace attempts to give the session a slot on the given day. Candidate
// hours are ranked by distance from the preferred hour, then by ascending
// hour; every hour the session spans must be open and unreserved, and the
// session may not run past midnight. On success all spanned hours are
// reserved atomically.
func (pl *placer) tryPlace(s *domain.Session, day *DayAvailability) bool {
	key := day.Date.Format("2006-01-02")
	open := make(map[int]bool, len(day.Hours))
	for _, h := range day.Hours {
		open[h] = true
	}

	hours := append([]int(nil), day.Hours...)
	sort.SliceStable(hours, func(i, j int) bool {
		di := abs(hours[i] - pl.preferredHour)
		dj := abs(hours[j] - pl.preferredHour)
		if di != dj {
			return di < dj
		}
		return hours[i] < hours[j]
	})

	span := (s.AllocatedMin + 59) / 60
	for _, h := range hours {
		if h+span > 24 {
			continue
		}
		fits := true
		for hh := h; hh < h+span; hh++ {
			if !open[hh] || pl.reserved[key][hh] {
				fits = false
				break
			}
		}
		if !fits {
			continue
		}

		startUTC, err := LocalToUTC(day.Date, domain.MinuteOfDay(h*60), pl.zone)
		if err != nil {
			return false
		}

		if pl.reserved[key] == nil {
			pl.reserved[key] = make(map[int]bool)
		}
		for hh := h; hh < h+span; hh++ {
			pl.reserved[key][hh] = true
		}

		s.WeekIndex = day.Week
		s.Date = day.Date
		s.StartUTC = startUTC
		s.EndUTC = startUTC.Add(time.Duration(s.AllocatedMin) * time.Minute)
		s.Timezone = pl.zone
		return true
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package scheduler

import (
	"sort"

	"github.com/cadence-sh/cadence/internal/domain"
)

// MapPhaseWindows resolves each phase's declared week range into a window
// of output calendar weeks. The earliest phase that still has sessions
// anchors the calendar at week 0, so a plan resumed mid-execution does not
// schedule into already-elapsed weeks. Overflowing phases extend their own
// window and push every later phase by the same amount, which keeps phases
// strictly ordered and non-overlapping in week space.
func MapPhaseWindows(phases []*domain.PhasePlan, sessionsPerWeek int) {
	ordered := append([]*domain.PhasePlan(nil), phases...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	baseOffset := 0
	for _, p := range ordered {
		if len(p.Sessions) > 0 {
			baseOffset = p.StartWeek - 1
			break
		}
	}

	shift := 0
	for _, p := range ordered {
		start := p.StartWeek - 1 - baseOffset + shift
		end := p.EndWeek - 1 - baseOffset + shift
		if start < 0 {
			end += -start
			start = 0
		}

		capacity := (end - start + 1) * sessionsPerWeek
		if deficit := len(p.Sessions) - capacity; deficit > 0 {
			ext := (deficit + sessionsPerWeek - 1) / sessionsPerWeek
			end += ext
			shift += ext
		}

		p.WindowStart = start
		p.WindowEnd = end
	}
}

// HorizonWeeks returns the number of calendar weeks the resolved windows
// span, counting from week 0.
func HorizonWeeks(phases []*domain.PhasePlan) int {
	max := 0
	for _, p := range phases {
		if p.WindowEnd+1 > max {
			max = p.WindowEnd + 1
		}
	}
	return max
}

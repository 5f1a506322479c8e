package scheduler

import (
	"testing"

	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phaseWithSessions(number, startWeek, endWeek, sessions int) *domain.PhasePlan {
	p := &domain.PhasePlan{
		PhaseID: "p", Number: number, StartWeek: startWeek, EndWeek: endWeek,
	}
	for i := 0; i < sessions; i++ {
		p.Sessions = append(p.Sessions, &domain.Session{})
	}
	return p
}

func TestMapPhaseWindows_FirstPhaseAnchorsWeekZero(t *testing.T) {
	phases := []*domain.PhasePlan{
		phaseWithSessions(1, 1, 2, 2),
		phaseWithSessions(2, 3, 4, 2),
	}
	MapPhaseWindows(phases, 3)

	assert.Equal(t, 0, phases[0].WindowStart)
	assert.Equal(t, 1, phases[0].WindowEnd)
	assert.Equal(t, 2, phases[1].WindowStart)
	assert.Equal(t, 3, phases[1].WindowEnd)
}

func TestMapPhaseWindows_MidExecutionPlanRebased(t *testing.T) {
	// Phase 1 is finished (no sessions); phase 2 becomes the base and its
	// declared start (week 4) maps to output week 0.
	phases := []*domain.PhasePlan{
		phaseWithSessions(1, 1, 3, 0),
		phaseWithSessions(2, 4, 5, 2),
		phaseWithSessions(3, 6, 7, 2),
	}
	MapPhaseWindows(phases, 2)

	assert.Equal(t, 0, phases[1].WindowStart)
	assert.Equal(t, 1, phases[1].WindowEnd)
	assert.Equal(t, 2, phases[2].WindowStart)
	assert.Equal(t, 3, phases[2].WindowEnd)
}

func TestMapPhaseWindows_NegativeStartClampedToZero(t *testing.T) {
	// The base phase starts later than an earlier declared phase; the
	// earlier phase's shifted window would go negative and is clamped,
	// keeping its width.
	phases := []*domain.PhasePlan{
		phaseWithSessions(1, 1, 2, 0),
		phaseWithSessions(2, 2, 3, 2),
	}
	MapPhaseWindows(phases, 2)

	require.Equal(t, 0, phases[0].WindowStart)
	assert.Equal(t, 1, phases[0].WindowEnd)
	assert.Equal(t, 0, phases[1].WindowStart)
	assert.Equal(t, 1, phases[1].WindowEnd)
}

func TestMapPhaseWindows_OverflowExtendsAndShiftsLaterPhases(t *testing.T) {
	// Phase 1: 1 week x 2/wk = capacity 2, but 5 sessions -> extend by
	// ceil(3/2) = 2 weeks, shifting phase 2 by the same amount.
	phases := []*domain.PhasePlan{
		phaseWithSessions(1, 1, 1, 5),
		phaseWithSessions(2, 2, 3, 2),
	}
	MapPhaseWindows(phases, 2)

	assert.Equal(t, 0, phases[0].WindowStart)
	assert.Equal(t, 2, phases[0].WindowEnd)
	assert.Equal(t, 3, phases[1].WindowStart)
	assert.Equal(t, 4, phases[1].WindowEnd)
}

func TestMapPhaseWindows_PhasesNeverOverlap(t *testing.T) {
	phases := []*domain.PhasePlan{
		phaseWithSessions(1, 1, 1, 7),
		phaseWithSessions(2, 2, 2, 7),
		phaseWithSessions(3, 3, 3, 1),
	}
	MapPhaseWindows(phases, 2)

	for i := 1; i < len(phases); i++ {
		assert.Greater(t, phases[i].WindowStart, phases[i-1].WindowEnd,
			"phase %d window must start after phase %d ends", i+1, i)
	}
}

func TestHorizonWeeks(t *testing.T) {
	phases := []*domain.PhasePlan{
		phaseWithSessions(1, 1, 2, 2),
		phaseWithSessions(2, 3, 5, 2),
	}
	MapPhaseWindows(phases, 2)
	assert.Equal(t, 5, HorizonWeeks(phases))
}

package testutil

import (
	"time"

	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/google/uuid"
)

// Plan options
type PlanOption func(*domain.Plan)

func WithPreference(p domain.TimePreference) PlanOption {
	return func(pl *domain.Plan) {
		pl.Preference = p
	}
}

func WithPhases(phases ...domain.Phase) PlanOption {
	return func(pl *domain.Plan) {
		pl.Phases = phases
	}
}

// NewTestPlan builds a one-phase, one-milestone plan with a single
// estimated task per milestone unless overridden by options.
func NewTestPlan(title string, opts ...PlanOption) *domain.Plan {
	now := time.Now().UTC()
	est := 30
	p := &domain.Plan{
		ID:     uuid.New().String(),
		GoalID: uuid.New().String(),
		Title:  title,
		Phases: []domain.Phase{{
			ID: uuid.New().String(), Number: 1, Title: "Phase 1", StartWeek: 1, EndWeek: 2,
			Milestones: []domain.Milestone{{
				ID: uuid.New().String(), Order: 1, Title: "Milestone 1",
				Tasks: []domain.Task{{
					ID: uuid.New().String(), Order: 1, Title: title,
					EstimatedMin: &est,
				}},
			}},
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestBooking builds a booking spanning the given UTC window.
func NewTestBooking(title string, start time.Time, minutes int) *domain.Booking {
	return &domain.Booking{
		ID:    uuid.New().String(),
		Title: title,
		Start: start.UTC(),
		End:   start.UTC().Add(time.Duration(minutes) * time.Minute),
	}
}

// NewTestConstraints builds constraints with a 23:00-07:00 sleep window
// and a 09:00-12:00 peak window.
func NewTestConstraints() *domain.UserConstraints {
	return &domain.UserConstraints{
		SleepStart: 23 * 60,
		SleepEnd:   7 * 60,
		PeakStart:  9 * 60,
		PeakEnd:    12 * 60,
	}
}

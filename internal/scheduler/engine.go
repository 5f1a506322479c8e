package scheduler

import (
	"time"

	"github.com/cadence-sh/cadence/internal/domain"
)

// Request carries everything one scheduling run needs. Inputs are fetched
// once by the caller and never re-read mid-computation; the engine holds no
// state between invocations.
type Request struct {
	Plan        domain.Plan
	Constraints domain.UserConstraints
	Bookings    []domain.Booking

	StartDate         time.Time // wall date the output calendar starts on
	Timezone          string    // IANA identifier
	SessionsPerWeek   int
	MinutesPerSession int
}

// Result is the committed output of a run: placed sessions in sequence
// order plus the item association list persisted alongside them.
type Result struct {
	Sessions []*domain.Session
	Links    []domain.SessionItemLink
}

const defaultPreferredHour = 9

// Schedule converts the plan hierarchy plus availability constraints into a
// conflict-free, timezone-correct sequence of calendar sessions. The
// computation is a pure transform; it either places every derived session
// or fails without partial output.
func Schedule(req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	items, err := Flatten(req.Plan)
	if err != nil {
		return nil, err
	}

	sessions := PlanSessions(items, req.MinutesPerSession)
	phases := attachToPhases(req.Plan, sessions)
	MapPhaseWindows(phases, req.SessionsPerWeek)

	avail, err := GenerateAvailability(req.Constraints, req.Bookings, req.StartDate, req.Timezone, HorizonWeeks(phases))
	if err != nil {
		return nil, err
	}

	placed, err := PlaceSessions(phases, avail, req.SessionsPerWeek, preferredHour(req), req.Timezone)
	if err != nil {
		return nil, err
	}

	return &Result{Sessions: placed, Links: buildLinks(placed)}, nil
}

func validate(req Request) error {
	switch {
	case len(req.Plan.Phases) == 0:
		return &ValidationError{Msg: "plan has no phases"}
	case req.Timezone == "":
		return &ValidationError{Msg: "timezone is required"}
	case req.StartDate.IsZero():
		return &ValidationError{Msg: "start date is required"}
	case req.SessionsPerWeek <= 0:
		return &ValidationError{Msg: "sessions per week must be positive"}
	case req.MinutesPerSession <= 0:
		return &ValidationError{Msg: "minutes per session must be positive"}
	}
	return nil
}

// attachToPhases builds the per-phase containers and distributes planned
// sessions into them, preserving planner order.
func attachToPhases(plan domain.Plan, sessions []*domain.Session) []*domain.PhasePlan {
	phases := make([]*domain.PhasePlan, 0, len(plan.Phases))
	byID := make(map[string]*domain.PhasePlan, len(plan.Phases))
	for _, ph := range plan.Phases {
		pp := &domain.PhasePlan{
			PhaseID:   ph.ID,
			Number:    ph.Number,
			Title:     ph.Title,
			StartWeek: ph.StartWeek,
			EndWeek:   ph.EndWeek,
		}
		phases = append(phases, pp)
		byID[ph.ID] = pp
	}
	for _, s := range sessions {
		if pp, ok := byID[s.PhaseID]; ok {
			pp.Sessions = append(pp.Sessions, s)
		}
	}
	return phases
}

func preferredHour(req Request) int {
	switch req.Plan.Preference {
	case domain.PrefMorning:
		return 9
	case domain.PrefAfternoon:
		return 14
	case domain.PrefEvening:
		return 19
	}
	if req.Constraints.PeakEnd > req.Constraints.PeakStart {
		return int(req.Constraints.PeakStart+req.Constraints.PeakEnd) / 2 / 60
	}
	return defaultPreferredHour
}

func buildLinks(sessions []*domain.Session) []domain.SessionItemLink {
	var links []domain.SessionItemLink
	for _, s := range sessions {
		labels := s.Checklist()
		for i, it := range s.Items {
			links = append(links, domain.SessionItemLink{
				SessionID:   s.ID,
				PhaseID:     it.PhaseID,
				MilestoneID: it.MilestoneID,
				TaskID:      it.TaskID,
				SubtaskID:   it.SubtaskID,
				Title:       labels[i],
				OrderIndex:  i,
			})
		}
	}
	return links
}

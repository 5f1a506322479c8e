package domain

// PhasePlan carries one phase's sessions through window mapping and
// placement. Window indices are 0-based positions in the output calendar;
// declared weeks are the 1-based values from the plan.
type PhasePlan struct {
	PhaseID   string
	Number    int
	Title     string
	StartWeek int // declared
	EndWeek   int // declared

	WindowStart int // resolved, inclusive
	WindowEnd   int // resolved, inclusive

	Sessions []*Session
}

// WindowWeeks returns the resolved window length in weeks.
func (p *PhasePlan) WindowWeeks() int {
	return p.WindowEnd - p.WindowStart + 1
}

package domain

import "time"

// Plan is the normalized goal hierarchy handed to the scheduling engine.
// It is built exactly once by the importer boundary; nothing downstream of
// the importer ever sees the loosely-typed source rows.
type Plan struct {
	ID         string
	GoalID     string
	Title      string
	Preference TimePreference
	Phases     []Phase

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Phase struct {
	ID        string
	Number    int
	Title     string
	StartWeek int // declared, 1-based
	EndWeek   int // declared, 1-based, inclusive
	Milestones []Milestone
}

type Milestone struct {
	ID         string
	Order      int
	Title      string
	TargetWeek int
	Completed  bool
	Tasks      []Task
}

type Task struct {
	ID           string
	Order        int
	Title        string
	Completed    bool
	Struck       bool
	Cognitive    string // raw persisted value; validated against ValidCognitiveTypes
	EstimatedMin *int
	Difficulty   *int
	Subtasks     []Subtask
}

type Subtask struct {
	ID        string
	Order     int
	Title     string
	Completed bool
	Struck    bool
}

// EligibleSubtasks returns the subtasks that are neither completed nor struck,
// in declared order.
func (t Task) EligibleSubtasks() []Subtask {
	var out []Subtask
	for _, st := range t.Subtasks {
		if st.Completed || st.Struck {
			continue
		}
		out = append(out, st)
	}
	return out
}

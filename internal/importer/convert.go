package importer

import (
	"time"

	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated ImportSchema into a domain.Plan ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema
// is valid. Aliased fields are coalesced here, once — the loosely-typed rows
// never travel past this boundary.
func Convert(schema *ImportSchema) *domain.Plan {
	now := time.Now().UTC()

	goalID := schema.Goal.ID
	if goalID == "" {
		goalID = uuid.New().String()
	}

	plan := &domain.Plan{
		ID:         uuid.New().String(),
		GoalID:     goalID,
		Title:      schema.Goal.Title,
		Preference: domain.TimePreference(domain.CoalesceStr(schema.Goal.TimePreference, schema.Goal.TimePrefAlias)),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	plan.Phases = make([]domain.Phase, 0, len(schema.Phases))
	for _, p := range schema.Phases {
		phase := domain.Phase{
			ID:        p.ID,
			Number:    p.Number,
			Title:     p.Title,
			StartWeek: domain.IntFromPtrWithDefault(1, p.StartWeek, p.StartWeekAlias),
			EndWeek:   domain.IntFromPtrWithDefault(1, p.EndWeek, p.EndWeekAlias),
		}

		phase.Milestones = make([]domain.Milestone, 0, len(p.Milestones))
		for _, m := range p.Milestones {
			milestone := domain.Milestone{
				ID:         m.ID,
				Order:      m.Order,
				Title:      m.Title,
				TargetWeek: domain.IntFromPtrWithDefault(0, m.TargetWeek, m.TargetWeekAlias),
				Completed:  domain.BoolFromPtrWithDefault(false, m.Completed, m.CompletedAlias),
			}

			milestone.Tasks = make([]domain.Task, 0, len(m.Tasks))
			for _, t := range m.Tasks {
				milestone.Tasks = append(milestone.Tasks, convertTask(t))
			}
			phase.Milestones = append(phase.Milestones, milestone)
		}
		plan.Phases = append(plan.Phases, phase)
	}

	return plan
}

func convertTask(t TaskImport) domain.Task {
	task := domain.Task{
		ID:           t.ID,
		Order:        t.Order,
		Title:        t.Title,
		Completed:    domain.BoolFromPtrWithDefault(false, t.Completed, t.CompletedAlias),
		Struck:       domain.BoolFromPtrWithDefault(false, t.Struck, t.StruckAlias),
		Cognitive:    domain.CoalesceStr(t.Cognitive, t.CognitiveAlias),
		EstimatedMin: coalesceIntPtr(t.EstimatedMin, t.DurationMinutes),
		Difficulty:   coalesceIntPtr(t.Difficulty, t.DifficultyAlias),
	}

	task.Subtasks = make([]domain.Subtask, 0, len(t.Subtasks))
	for _, st := range t.Subtasks {
		task.Subtasks = append(task.Subtasks, domain.Subtask{
			ID:        st.ID,
			Order:     st.Order,
			Title:     st.Title,
			Completed: domain.BoolFromPtrWithDefault(false, st.Completed, st.CompletedAlias),
			Struck:    domain.BoolFromPtrWithDefault(false, st.Struck, st.StruckAlias),
		})
	}
	return task
}

// coalesceIntPtr returns the first non-nil pointer, preserving "unset".
func coalesceIntPtr(ptrs ...*int) *int {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}

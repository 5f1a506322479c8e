package scheduler

import (
	"sort"

	"github.com/cadence-sh/cadence/internal/domain"
)

// Flatten walks the plan hierarchy in declared order and emits the uniform
// schedulable units: one per eligible subtask when a task has subtasks, one
// per subtask-less task, and a single milestone-level fallback unit for an
// incomplete milestone with no tasks, so no plan unit is silently dropped.
// Completed or struck units are skipped at every level.
func Flatten(plan domain.Plan) ([]domain.WorkItem, error) {
	phases := append([]domain.Phase(nil), plan.Phases...)
	sort.SliceStable(phases, func(i, j int) bool { return phases[i].Number < phases[j].Number })

	var items []domain.WorkItem
	order := 0
	emit := func(it domain.WorkItem) {
		it.Order = order
		order++
		items = append(items, it)
	}

	for _, ph := range phases {
		milestones := append([]domain.Milestone(nil), ph.Milestones...)
		sort.SliceStable(milestones, func(i, j int) bool { return milestones[i].Order < milestones[j].Order })

		for _, ms := range milestones {
			if ms.Completed {
				continue
			}

			if len(ms.Tasks) == 0 {
				cog := ClassifyTitle(ms.Title)
				emit(domain.WorkItem{
					ID:          domain.OriginalID(ms.ID),
					Title:       ms.Title,
					PhaseID:     ph.ID,
					MilestoneID: ms.ID,
					DurationMin: clampDuration(DefaultDuration(cog, ms.Title)),
					Cognitive:   cog,
					Difficulty:  DefaultDifficulty(cog),
				})
				continue
			}

			tasks := append([]domain.Task(nil), ms.Tasks...)
			sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })

			for _, t := range tasks {
				if t.Completed || t.Struck {
					continue
				}

				subtasks := t.EligibleSubtasks()
				sort.SliceStable(subtasks, func(i, j int) bool { return subtasks[i].Order < subtasks[j].Order })

				if len(subtasks) == 0 {
					cog, dur, diff := resolveAttrs(t, t.Title)
					emit(domain.WorkItem{
						ID:          domain.OriginalID(t.ID),
						Title:       t.Title,
						PhaseID:     ph.ID,
						MilestoneID: ms.ID,
						TaskID:      t.ID,
						DurationMin: dur,
						Cognitive:   cog,
						Difficulty:  diff,
					})
					continue
				}

				// Divide the task's duration evenly across its remaining
				// subtasks, never below the item floor.
				_, taskDur, _ := resolveAttrs(t, t.Title)
				per := taskDur / len(subtasks)
				if per < domain.MinItemMinutes {
					per = domain.MinItemMinutes
				}
				for _, st := range subtasks {
					cog, _, diff := resolveAttrs(t, st.Title)
					emit(domain.WorkItem{
						ID:          domain.OriginalID(st.ID),
						Title:       st.Title,
						PhaseID:     ph.ID,
						MilestoneID: ms.ID,
						TaskID:      t.ID,
						SubtaskID:   st.ID,
						DurationMin: clampDuration(per),
						Cognitive:   cog,
						Difficulty:  diff,
					})
				}
			}
		}
	}

	if len(items) == 0 {
		return nil, &ValidationError{Msg: "plan contains no schedulable work"}
	}
	return items, nil
}

// resolveAttrs applies the explicit-else-inferred rule: persisted values are
// honored when present and in range, everything else is derived from the
// given title.
func resolveAttrs(t domain.Task, title string) (domain.CognitiveType, int, int) {
	var cog domain.CognitiveType
	if domain.ValidCognitiveTypes[t.Cognitive] {
		cog = domain.CognitiveType(t.Cognitive)
	} else {
		cog = ClassifyTitle(title)
	}

	dur := 0
	if t.EstimatedMin != nil && *t.EstimatedMin >= domain.MinItemMinutes && *t.EstimatedMin <= domain.MaxItemMinutes {
		dur = *t.EstimatedMin
	} else {
		dur = DefaultDuration(cog, title)
	}

	diff := 0
	if t.Difficulty != nil && *t.Difficulty >= domain.MinDifficulty && *t.Difficulty <= domain.MaxDifficulty {
		diff = *t.Difficulty
	} else {
		diff = DefaultDifficulty(cog)
	}

	return cog, clampDuration(dur), diff
}

func clampDuration(min int) int {
	return domain.Clamp(min, domain.MinItemMinutes, domain.MaxItemMinutes)
}

package importer

import (
	"fmt"

	"github.com/cadence-sh/cadence/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Goal.Title == "" {
		errs = append(errs, fmt.Errorf("goal.title is required"))
	}
	pref := domain.CoalesceStr(schema.Goal.TimePreference, schema.Goal.TimePrefAlias)
	switch domain.TimePreference(pref) {
	case domain.PrefNone, domain.PrefMorning, domain.PrefAfternoon, domain.PrefEvening:
	default:
		errs = append(errs, fmt.Errorf("goal.time_preference: invalid value %q", pref))
	}

	if len(schema.Phases) == 0 {
		errs = append(errs, fmt.Errorf("phases is required and must not be empty"))
	}

	phaseIDs := make(map[string]bool)
	for i, p := range schema.Phases {
		prefix := fmt.Sprintf("phases[%d]", i)

		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if phaseIDs[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, p.ID))
		} else {
			phaseIDs[p.ID] = true
		}
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if p.Number <= 0 {
			errs = append(errs, fmt.Errorf("%s.number must be positive", prefix))
		}

		start := domain.IntFromPtrWithDefault(0, p.StartWeek, p.StartWeekAlias)
		end := domain.IntFromPtrWithDefault(0, p.EndWeek, p.EndWeekAlias)
		if start <= 0 {
			errs = append(errs, fmt.Errorf("%s.start_week must be a positive week number", prefix))
		}
		if end <= 0 {
			errs = append(errs, fmt.Errorf("%s.end_week must be a positive week number", prefix))
		}
		if start > 0 && end > 0 && end < start {
			errs = append(errs, fmt.Errorf("%s: end_week (%d) must be >= start_week (%d)", prefix, end, start))
		}

		errs = append(errs, validateMilestones(prefix, p.Milestones)...)
	}

	return errs
}

func validateMilestones(prefix string, milestones []MilestoneImport) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, m := range milestones {
		mp := fmt.Sprintf("%s.milestones[%d]", prefix, i)

		if m.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", mp))
		} else if seen[m.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", mp, m.ID))
		} else {
			seen[m.ID] = true
		}
		if m.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", mp))
		}

		errs = append(errs, validateTasks(mp, m.Tasks)...)
	}

	return errs
}

func validateTasks(prefix string, tasks []TaskImport) []error {
	var errs []error

	for i, t := range tasks {
		tp := fmt.Sprintf("%s.tasks[%d]", prefix, i)

		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", tp))
		}
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", tp))
		}

		cog := domain.CoalesceStr(t.Cognitive, t.CognitiveAlias)
		if cog != "" && !domain.ValidCognitiveTypes[cog] {
			errs = append(errs, fmt.Errorf("%s.cognitive_type: invalid value %q", tp, cog))
		}

		est := domain.IntFromPtrWithDefault(0, t.EstimatedMin, t.DurationMinutes)
		if (t.EstimatedMin != nil || t.DurationMinutes != nil) && est <= 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_minutes must be positive", tp))
		}

		diff := domain.IntFromPtrWithDefault(0, t.Difficulty, t.DifficultyAlias)
		if (t.Difficulty != nil || t.DifficultyAlias != nil) &&
			(diff < domain.MinDifficulty || diff > domain.MaxDifficulty) {
			errs = append(errs, fmt.Errorf("%s.difficulty: value %d out of range [%d, %d]",
				tp, diff, domain.MinDifficulty, domain.MaxDifficulty))
		}

		for j, st := range t.Subtasks {
			sp := fmt.Sprintf("%s.subtasks[%d]", tp, j)
			if st.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", sp))
			}
			if st.Title == "" {
				errs = append(errs, fmt.Errorf("%s.title is required", sp))
			}
		}
	}

	return errs
}

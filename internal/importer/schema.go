package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for plan import.
//
// The planning service that produces these files duplicates several
// concepts under both snake_case and camelCase keys; the schema carries
// every alias it emits, and Convert coalesces them. Nothing outside this
// package ever sees the raw rows.
type ImportSchema struct {
	Goal   GoalImport    `json:"goal"`
	Phases []PhaseImport `json:"phases"`
}

// GoalImport defines the goal-level fields in the import file.
type GoalImport struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	TimePreference string `json:"time_preference,omitempty"`
	TimePrefAlias  string `json:"timePreference,omitempty"`
}

// PhaseImport defines one plan phase in the import file.
type PhaseImport struct {
	ID             string            `json:"id"`
	Number         int               `json:"number"`
	Title          string            `json:"title"`
	StartWeek      *int              `json:"start_week,omitempty"`
	StartWeekAlias *int              `json:"startWeek,omitempty"`
	EndWeek        *int              `json:"end_week,omitempty"`
	EndWeekAlias   *int              `json:"endWeek,omitempty"`
	Milestones     []MilestoneImport `json:"milestones"`
}

// MilestoneImport defines one milestone in the import file.
type MilestoneImport struct {
	ID              string       `json:"id"`
	Order           int          `json:"order"`
	Title           string       `json:"title"`
	TargetWeek      *int         `json:"target_week,omitempty"`
	TargetWeekAlias *int         `json:"targetWeek,omitempty"`
	Completed       *bool        `json:"completed,omitempty"`
	CompletedAlias  *bool        `json:"is_completed,omitempty"`
	Tasks           []TaskImport `json:"tasks"`
}

// TaskImport defines one task in the import file.
type TaskImport struct {
	ID              string          `json:"id"`
	Order           int             `json:"order"`
	Title           string          `json:"title"`
	Completed       *bool           `json:"completed,omitempty"`
	CompletedAlias  *bool           `json:"is_completed,omitempty"`
	Struck          *bool           `json:"struck,omitempty"`
	StruckAlias     *bool           `json:"is_struck,omitempty"`
	Cognitive       string          `json:"cognitive_type,omitempty"`
	CognitiveAlias  string          `json:"cognitiveType,omitempty"`
	EstimatedMin    *int            `json:"estimated_minutes,omitempty"`
	DurationMinutes *int            `json:"durationMinutes,omitempty"`
	Difficulty      *int            `json:"difficulty,omitempty"`
	DifficultyAlias *int            `json:"difficultyLevel,omitempty"`
	Subtasks        []SubtaskImport `json:"subtasks,omitempty"`
}

// SubtaskImport defines one subtask in the import file.
type SubtaskImport struct {
	ID             string `json:"id"`
	Order          int    `json:"order"`
	Title          string `json:"title"`
	Completed      *bool  `json:"completed,omitempty"`
	CompletedAlias *bool  `json:"is_completed,omitempty"`
	Struck         *bool  `json:"struck,omitempty"`
	StruckAlias    *bool  `json:"is_struck,omitempty"`
}

// LoadImportSchema reads and parses a plan import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// ParseImportSchema parses plan import JSON from a byte slice.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

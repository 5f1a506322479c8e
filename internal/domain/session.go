package domain

import (
	"fmt"
	"time"
)

// Session is one scheduled, time-boxed sitting holding one or more work
// items (or item chunks) of a compatible cognitive group.
type Session struct {
	ID          string
	PhaseID     string
	MilestoneID string
	TaskID      string // set when the session contains exactly one item
	SubtaskID   string // set when the session contains exactly one subtask item

	Items []WorkItem

	Cognitive    CognitiveType // most frequent item type, ties broken by first seen
	Difficulty   int           // max across items
	ItemMinutes  int           // sum of contained item durations
	AllocatedMin int           // minutes the session occupies on the calendar

	// Placement, filled by the placer.
	WeekIndex int
	Date      time.Time // local midnight of the chosen day
	StartUTC  time.Time
	EndUTC    time.Time
	Timezone  string
	Sequence  int // index among all committed sessions

	CreatedAt time.Time
}

// Checklist returns the human-readable list of contained item titles.
func (s *Session) Checklist() []string {
	out := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		if it.ID.IsChunk() {
			out = append(out, fmt.Sprintf("%s (part %d/%d)", it.Title, it.ID.Part, it.ID.TotalParts))
			continue
		}
		out = append(out, it.Title)
	}
	return out
}

// SessionItemLink associates one contained item with its committed session,
// persisted alongside the session record.
type SessionItemLink struct {
	SessionID   string
	PhaseID     string
	MilestoneID string
	TaskID      string
	SubtaskID   string
	Title       string // checklist label, chunk part suffix included
	OrderIndex  int
}

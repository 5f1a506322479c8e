package domain

import "fmt"

// ItemID identifies a schedulable unit. A unit is either an original plan
// leaf or one chunk of an oversized leaf that was split to fit the session
// length. The part/total pair is carried as typed fields, never encoded
// into the identifier string.
type ItemID struct {
	Original   string
	Part       int // 1-based; 0 for an unsplit item
	TotalParts int // 0 for an unsplit item
}

// OriginalID builds the identifier of an unsplit unit.
func OriginalID(id string) ItemID {
	return ItemID{Original: id}
}

// ChunkID builds the identifier of chunk part (1-based) of totalParts.
func ChunkID(id string, part, totalParts int) ItemID {
	return ItemID{Original: id, Part: part, TotalParts: totalParts}
}

// IsChunk reports whether the unit is a chunk of a split item.
func (id ItemID) IsChunk() bool { return id.TotalParts > 1 }

// IsFinalChunk reports whether the unit is the last chunk of a split item.
func (id ItemID) IsFinalChunk() bool { return id.IsChunk() && id.Part == id.TotalParts }

// String renders a display form such as "t-12" or "t-12 (part 2/3)".
func (id ItemID) String() string {
	if !id.IsChunk() {
		return id.Original
	}
	return fmt.Sprintf("%s (part %d/%d)", id.Original, id.Part, id.TotalParts)
}

// WorkItem is the uniform schedulable unit emitted by the flattener.
// Immutable once derived; owned exclusively by the current engine invocation.
type WorkItem struct {
	ID    ItemID
	Title string

	PhaseID     string
	MilestoneID string
	TaskID      string // empty for milestone-level fallback items
	SubtaskID   string // empty unless emitted at subtask level

	Order       int // strictly increasing across the whole flatten pass
	DurationMin int // clamped to [MinItemMinutes, MaxItemMinutes]
	Cognitive   CognitiveType
	Difficulty  int // clamped to [MinDifficulty, MaxDifficulty]
}

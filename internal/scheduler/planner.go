package scheduler

import (
	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/google/uuid"
)

// Per-session item caps by cognitive group. Admin and shallow work coalesce
// into the "light" group and tolerate more items per sitting; deep work is
// capped hardest.
const lightGroup = "light"

var groupItemCaps = map[string]int{
	lightGroup:               8,
	string(domain.CogDeep):   2,
	string(domain.CogLearning): 3,
	string(domain.CogCreative): 3,
}

const defaultGroupCap = 3

func groupOf(c domain.CognitiveType) string {
	if c == domain.CogAdmin || c == domain.CogShallow {
		return lightGroup
	}
	return string(c)
}

func groupCap(group string) int {
	if n, ok := groupItemCaps[group]; ok {
		return n
	}
	return defaultGroupCap
}

// PlanSessions packs flattened work items into sessions, phase by phase in
// milestone-then-item order. Items longer than one session are split into
// ordered chunks first; the chunk stream is then greedily accumulated while
// the cognitive group matches and neither the minutes budget nor the
// group's item cap would be exceeded. Small same-group items from adjacent
// milestones may share a session; the session keeps the first item's
// milestone reference.
func PlanSessions(items []domain.WorkItem, minutesPerSession int) []*domain.Session {
	var sessions []*domain.Session

	for _, phase := range partitionByPhase(items) {
		chunked := splitOversized(phase, minutesPerSession)

		var cur []domain.WorkItem
		curMin := 0
		flush := func() {
			if len(cur) == 0 {
				return
			}
			sessions = append(sessions, buildSession(cur, minutesPerSession))
			cur = nil
			curMin = 0
		}

		for _, it := range chunked {
			if len(cur) > 0 {
				g := groupOf(cur[0].Cognitive)
				fits := groupOf(it.Cognitive) == g &&
					curMin+it.DurationMin <= minutesPerSession &&
					len(cur)+1 <= groupCap(g)
				if !fits {
					flush()
				}
			}
			cur = append(cur, it)
			curMin += it.DurationMin
		}
		flush()
	}

	return sessions
}

// partitionByPhase groups items by phase in first-seen order, preserving
// item order within each group.
func partitionByPhase(items []domain.WorkItem) [][]domain.WorkItem {
	var order []string
	byPhase := make(map[string][]domain.WorkItem)
	for _, it := range items {
		if _, ok := byPhase[it.PhaseID]; !ok {
			order = append(order, it.PhaseID)
		}
		byPhase[it.PhaseID] = append(byPhase[it.PhaseID], it)
	}
	out := make([][]domain.WorkItem, 0, len(order))
	for _, id := range order {
		out = append(out, byPhase[id])
	}
	return out
}

// splitOversized replaces any item longer than one session with ordered
// chunks, each capped at the session length and the last carrying the
// remainder.
func splitOversized(items []domain.WorkItem, minutesPerSession int) []domain.WorkItem {
	var out []domain.WorkItem
	for _, it := range items {
		if it.DurationMin <= minutesPerSession {
			out = append(out, it)
			continue
		}
		parts := (it.DurationMin + minutesPerSession - 1) / minutesPerSession
		remaining := it.DurationMin
		for p := 1; p <= parts; p++ {
			chunk := it
			chunk.ID = domain.ChunkID(it.ID.Original, p, parts)
			if remaining < minutesPerSession {
				chunk.DurationMin = remaining
			} else {
				chunk.DurationMin = minutesPerSession
			}
			remaining -= chunk.DurationMin
			out = append(out, chunk)
		}
	}
	return out
}

func buildSession(items []domain.WorkItem, minutesPerSession int) *domain.Session {
	s := &domain.Session{
		ID:          uuid.New().String(),
		PhaseID:     items[0].PhaseID,
		MilestoneID: items[0].MilestoneID,
		Items:       append([]domain.WorkItem(nil), items...),
		Cognitive:   dominantCognitive(items),
	}

	for _, it := range items {
		s.ItemMinutes += it.DurationMin
		if it.Difficulty > s.Difficulty {
			s.Difficulty = it.Difficulty
		}
	}

	// Every session occupies a full box on the calendar, except a session
	// holding only the final short chunk of a split item.
	s.AllocatedMin = minutesPerSession
	if len(items) == 1 && items[0].ID.IsFinalChunk() && s.ItemMinutes < minutesPerSession {
		s.AllocatedMin = s.ItemMinutes
	}

	if len(items) == 1 {
		s.TaskID = items[0].TaskID
		s.SubtaskID = items[0].SubtaskID
	}
	return s
}

// dominantCognitive picks the most frequent item type, ties broken by the
// type seen first.
func dominantCognitive(items []domain.WorkItem) domain.CognitiveType {
	counts := make(map[domain.CognitiveType]int)
	var seen []domain.CognitiveType
	for _, it := range items {
		if counts[it.Cognitive] == 0 {
			seen = append(seen, it.Cognitive)
		}
		counts[it.Cognitive]++
	}
	best := seen[0]
	for _, c := range seen[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

package scheduler

import (
	"testing"

	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminItem(id, milestone string, minutes int) domain.WorkItem {
	return domain.WorkItem{
		ID: domain.OriginalID(id), Title: id,
		PhaseID: "p-1", MilestoneID: milestone, TaskID: id,
		DurationMin: minutes, Cognitive: domain.CogAdmin, Difficulty: 1,
	}
}

func deepItem(id, milestone string, minutes int) domain.WorkItem {
	return domain.WorkItem{
		ID: domain.OriginalID(id), Title: id,
		PhaseID: "p-1", MilestoneID: milestone, TaskID: id,
		DurationMin: minutes, Cognitive: domain.CogDeep, Difficulty: 4,
	}
}

func TestPlanSessions_LightGroupPacksAcrossMilestoneBoundary(t *testing.T) {
	// Six 5-minute admin items across two milestones at 30 min/session:
	// all fit the light-group caps (6 items <= 8, 30 min <= 30), so they
	// share one session carrying the first milestone's reference.
	var items []domain.WorkItem
	for _, m := range []string{"m-1", "m-2"} {
		for i := 0; i < 3; i++ {
			items = append(items, adminItem(m+"-t"+string(rune('a'+i)), m, 5))
		}
	}

	sessions := PlanSessions(items, 30)
	require.Len(t, sessions, 1)
	assert.Len(t, sessions[0].Items, 6)
	assert.Equal(t, "m-1", sessions[0].MilestoneID)
	assert.Equal(t, 30, sessions[0].ItemMinutes)
	assert.Equal(t, 30, sessions[0].AllocatedMin)
}

func TestPlanSessions_PhasesNeverShareASession(t *testing.T) {
	a := adminItem("t-1", "m-1", 5)
	b := adminItem("t-2", "m-2", 5)
	b.PhaseID = "p-2"

	sessions := PlanSessions([]domain.WorkItem{a, b}, 30)
	require.Len(t, sessions, 2)
}

func TestPlanSessions_LightGroupItemCap(t *testing.T) {
	var items []domain.WorkItem
	for i := 0; i < 10; i++ {
		items = append(items, adminItem(string(rune('a'+i)), "m-1", 5))
	}

	sessions := PlanSessions(items, 60)
	require.Len(t, sessions, 2, "light cap of 8 forces a second session")
	assert.Len(t, sessions[0].Items, 8)
	assert.Len(t, sessions[1].Items, 2)
}

func TestPlanSessions_DeepWorkCapIsTwo(t *testing.T) {
	items := []domain.WorkItem{
		deepItem("t-1", "m-1", 20),
		deepItem("t-2", "m-1", 20),
		deepItem("t-3", "m-1", 20),
	}

	sessions := PlanSessions(items, 60)
	require.Len(t, sessions, 2)
	assert.Len(t, sessions[0].Items, 2)
	assert.Len(t, sessions[1].Items, 1)
}

func TestPlanSessions_GroupChangeFlushes(t *testing.T) {
	items := []domain.WorkItem{
		adminItem("t-1", "m-1", 10),
		deepItem("t-2", "m-1", 30),
		adminItem("t-3", "m-1", 10),
	}

	sessions := PlanSessions(items, 60)
	require.Len(t, sessions, 3, "group alternation never merges")
}

func TestPlanSessions_OversizedItemSplitsIntoChunks(t *testing.T) {
	items := []domain.WorkItem{deepItem("t-1", "m-1", 150)}

	sessions := PlanSessions(items, 60)
	require.Len(t, sessions, 3)

	assert.True(t, sessions[0].Items[0].ID.IsChunk())
	assert.Equal(t, 1, sessions[0].Items[0].ID.Part)
	assert.Equal(t, 3, sessions[0].Items[0].ID.TotalParts)
	assert.Equal(t, 60, sessions[0].AllocatedMin)
	assert.Equal(t, 60, sessions[1].AllocatedMin)

	// The final 30-minute chunk alone gets a shortened allocation.
	last := sessions[2]
	require.Len(t, last.Items, 1)
	assert.True(t, last.Items[0].ID.IsFinalChunk())
	assert.Equal(t, 30, last.AllocatedMin)
}

func TestPlanSessions_TenNinetyMinuteDeepItems(t *testing.T) {
	var items []domain.WorkItem
	for i := 0; i < 10; i++ {
		items = append(items, deepItem(string(rune('a'+i)), "m-1", 90))
	}

	sessions := PlanSessions(items, 60)
	// Each item splits 60/30; a full first chunk can never share its
	// session, and 30+60 overflows, so every item yields its own pair.
	require.Len(t, sessions, 20)
	for i := 0; i < 20; i += 2 {
		assert.Equal(t, 60, sessions[i].AllocatedMin)
		assert.Equal(t, 30, sessions[i+1].AllocatedMin)
		assert.Equal(t, sessions[i].Items[0].ID.Original, sessions[i+1].Items[0].ID.Original)
	}
}

func TestPlanSessions_FinalChunkMayShareWithFollowingItems(t *testing.T) {
	items := []domain.WorkItem{
		deepItem("t-1", "m-1", 90),
		deepItem("t-2", "m-1", 30),
	}

	sessions := PlanSessions(items, 60)
	require.Len(t, sessions, 2)
	require.Len(t, sessions[1].Items, 2, "final 30-min chunk packs with the next 30-min deep item")
	assert.Equal(t, 60, sessions[1].ItemMinutes)
	assert.Equal(t, 60, sessions[1].AllocatedMin)
}

func TestPlanSessions_AggregateTypeAndDifficulty(t *testing.T) {
	items := []domain.WorkItem{
		adminItem("t-1", "m-1", 10),
		{ID: domain.OriginalID("t-2"), PhaseID: "p-1", MilestoneID: "m-1", TaskID: "t-2",
			DurationMin: 10, Cognitive: domain.CogShallow, Difficulty: 3},
		adminItem("t-3", "m-1", 10),
	}

	sessions := PlanSessions(items, 60)
	require.Len(t, sessions, 1)
	assert.Equal(t, domain.CogAdmin, sessions[0].Cognitive, "most frequent type wins")
	assert.Equal(t, 3, sessions[0].Difficulty, "difficulty is the max across items")
	assert.Empty(t, sessions[0].TaskID, "task ref only set for single-item sessions")
}

func TestPlanSessions_TieBrokenByFirstSeen(t *testing.T) {
	items := []domain.WorkItem{
		{ID: domain.OriginalID("t-1"), MilestoneID: "m-1", DurationMin: 10, Cognitive: domain.CogShallow},
		{ID: domain.OriginalID("t-2"), MilestoneID: "m-1", DurationMin: 10, Cognitive: domain.CogAdmin},
	}

	sessions := PlanSessions(items, 60)
	require.Len(t, sessions, 1)
	assert.Equal(t, domain.CogShallow, sessions[0].Cognitive)
}

func TestPlanSessions_SingleItemSessionCarriesTaskRef(t *testing.T) {
	items := []domain.WorkItem{{
		ID: domain.OriginalID("s-1"), MilestoneID: "m-1", TaskID: "t-1", SubtaskID: "s-1",
		DurationMin: 45, Cognitive: domain.CogCreative, Difficulty: 3,
	}}

	sessions := PlanSessions(items, 60)
	require.Len(t, sessions, 1)
	assert.Equal(t, "t-1", sessions[0].TaskID)
	assert.Equal(t, "s-1", sessions[0].SubtaskID)
}

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cadence-sh/cadence/internal/repository"
	"github.com/cadence-sh/cadence/internal/scheduler"
	"github.com/cadence-sh/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReschedule_CommitsSessions(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	plan, err := stack.plans.ImportPlanFromSchema(ctx, writingPlanSchema())
	require.NoError(t, err)

	result, err := stack.schedule.Reschedule(ctx, defaultScheduleRequest(plan.ID))
	require.NoError(t, err)
	require.Len(t, result.Sessions, 2)

	stored, err := stack.schedule.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 0, stored[0].WeekIndex)
	assert.Equal(t, 1, stored[1].WeekIndex, "two sessions spread across the two-week window")
	assert.True(t, stored[0].Sequence < stored[1].Sequence)

	checklist, err := stack.schedule.SessionChecklist(ctx, stored[0].ID)
	require.NoError(t, err)
	require.Len(t, checklist, 1)
	assert.Equal(t, "Draft the outline", checklist[0].Title)
}

func TestReschedule_ReplacesPreviousRun(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	plan, err := stack.plans.ImportPlanFromSchema(ctx, writingPlanSchema())
	require.NoError(t, err)

	first, err := stack.schedule.Reschedule(ctx, defaultScheduleRequest(plan.ID))
	require.NoError(t, err)

	second, err := stack.schedule.Reschedule(ctx, defaultScheduleRequest(plan.ID))
	require.NoError(t, err)

	stored, err := stack.schedule.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, stored, len(second.Sessions), "a rerun fully replaces the previous set")
	assert.NotEqual(t, first.Sessions[0].ID, stored[0].ID)
}

func TestReschedule_PlanNotFound(t *testing.T) {
	stack := newServiceStack(t)

	_, err := stack.schedule.Reschedule(context.Background(), defaultScheduleRequest("missing"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReschedule_AvailabilityShortfallSurfaces(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	plan, err := stack.plans.ImportPlanFromSchema(ctx, writingPlanSchema())
	require.NoError(t, err)

	// Block every waking hour on every day of the week.
	doc := `
sleep: {start: "23:00", end: "07:00"}
blocks:
  - title: Everything
    weekdays: [monday, tuesday, wednesday, thursday, friday, saturday, sunday]
    start: "06:00"
    end: "22:00"
`
	path := filepath.Join(t.TempDir(), "constraints.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	_, err = stack.constraints.SetFromFile(ctx, path)
	require.NoError(t, err)

	_, err = stack.schedule.Reschedule(ctx, defaultScheduleRequest(plan.ID))
	var aerr *scheduler.AvailabilityError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, 2, aerr.Required)
	assert.Equal(t, 0, aerr.Found)
}

func TestReschedule_SessionsAvoidBookings(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	plan, err := stack.plans.ImportPlanFromSchema(ctx, writingPlanSchema())
	require.NoError(t, err)

	// A standing 9:00 hour booking on the default preferred hour, both weeks.
	for day := 0; day < 14; day++ {
		start := scheduleStart.AddDate(0, 0, day).Add(9 * time.Hour)
		_, err := stack.bookings.Add(ctx, "Morning sync", start, start.Add(time.Hour))
		require.NoError(t, err)
	}

	result, err := stack.schedule.Reschedule(ctx, defaultScheduleRequest(plan.ID))
	require.NoError(t, err)

	bookings, err := stack.bookings.List(ctx)
	require.NoError(t, err)
	for _, s := range result.Sessions {
		for _, b := range bookings {
			assert.False(t, b.Overlaps(s.StartUTC, s.EndUTC),
				"session %s overlaps booking at %s", s.ID, b.Start)
		}
	}
}

func TestReschedule_AvoidsOtherPlansSessions(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	planA, err := stack.plans.ImportPlanFromSchema(ctx, writingPlanSchema())
	require.NoError(t, err)
	planB, err := stack.plans.ImportPlanFromSchema(ctx, writingPlanSchema())
	require.NoError(t, err)

	// Two identical plans scheduled back-to-back want the same preferred
	// slots; the second run must route around the first plan's sessions.
	_, err = stack.schedule.Reschedule(ctx, defaultScheduleRequest(planA.ID))
	require.NoError(t, err)
	_, err = stack.schedule.Reschedule(ctx, defaultScheduleRequest(planB.ID))
	require.NoError(t, err)

	aSessions, err := stack.schedule.ListByPlan(ctx, planA.ID)
	require.NoError(t, err)
	bSessions, err := stack.schedule.ListByPlan(ctx, planB.ID)
	require.NoError(t, err)
	require.Len(t, aSessions, 2)
	require.Len(t, bSessions, 2)

	for _, a := range aSessions {
		for _, b := range bSessions {
			assert.False(t, a.StartUTC.Before(b.EndUTC) && b.StartUTC.Before(a.EndUTC),
				"session %s [%s,%s) overlaps session %s [%s,%s)",
				a.ID, a.StartUTC, a.EndUTC, b.ID, b.StartUTC, b.EndUTC)
		}
	}
}

func TestReschedule_OwnSessionsDoNotBlockRerun(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	plan, err := stack.plans.ImportPlanFromSchema(ctx, writingPlanSchema())
	require.NoError(t, err)

	first, err := stack.schedule.Reschedule(ctx, defaultScheduleRequest(plan.ID))
	require.NoError(t, err)
	second, err := stack.schedule.Reschedule(ctx, defaultScheduleRequest(plan.ID))
	require.NoError(t, err)

	// A rerun replaces the plan's own set rather than dodging it, so the
	// same inputs land on the same slots.
	require.Len(t, second.Sessions, len(first.Sessions))
	for i := range first.Sessions {
		assert.Equal(t, first.Sessions[i].StartUTC, second.Sessions[i].StartUTC)
	}
}

func TestReschedule_PersistenceFailureKeepsPreviousSet(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	plan, err := stack.plans.ImportPlanFromSchema(ctx, writingPlanSchema())
	require.NoError(t, err)

	first, err := stack.schedule.Reschedule(ctx, defaultScheduleRequest(plan.ID))
	require.NoError(t, err)
	require.Len(t, first.Sessions, 2)

	// Same stack, but the unit of work fails on the second write of the
	// replacement transaction.
	planRepo := repository.NewSQLitePlanRepo(stack.db)
	constraintsRepo := repository.NewSQLiteConstraintsRepo(stack.db)
	bookingRepo := repository.NewSQLiteBookingRepo(stack.db)
	sessionRepo := repository.NewSQLiteSessionRepo(stack.db)
	failing := NewScheduleService(planRepo, constraintsRepo, bookingRepo, sessionRepo,
		&testutil.FailOnNthExecUoW{DB: stack.db, FailOn: 2, Err: assert.AnError})

	_, err = failing.Reschedule(ctx, defaultScheduleRequest(plan.ID))
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, assert.AnError)

	stored, err := stack.schedule.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, first.Sessions[0].ID, stored[0].ID, "rolled-back run leaves the committed set intact")
}

func TestReschedule_ValidationErrorForBadRequest(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	plan, err := stack.plans.ImportPlanFromSchema(ctx, writingPlanSchema())
	require.NoError(t, err)

	req := defaultScheduleRequest(plan.ID)
	req.Timezone = ""
	_, err = stack.schedule.Reschedule(ctx, req)
	var verr *scheduler.ValidationError
	assert.ErrorAs(t, err, &verr)
}

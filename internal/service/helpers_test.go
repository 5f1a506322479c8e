package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/cadence-sh/cadence/internal/importer"
	"github.com/cadence-sh/cadence/internal/repository"
	"github.com/cadence-sh/cadence/internal/testutil"
)

type serviceStack struct {
	db          *sql.DB
	plans       PlanService
	constraints ConstraintsService
	bookings    BookingService
	schedule    ScheduleService
}

func newServiceStack(t *testing.T) *serviceStack {
	t.Helper()
	database := testutil.NewTestDB(t)

	planRepo := repository.NewSQLitePlanRepo(database)
	constraintsRepo := repository.NewSQLiteConstraintsRepo(database)
	bookingRepo := repository.NewSQLiteBookingRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := testutil.NewTestUoW(database)

	return &serviceStack{
		db:          database,
		plans:       NewPlanService(planRepo),
		constraints: NewConstraintsService(constraintsRepo),
		bookings:    NewBookingService(bookingRepo),
		schedule:    NewScheduleService(planRepo, constraintsRepo, bookingRepo, sessionRepo, uow),
	}
}

func intPtr(v int) *int { return &v }

// importSchema builds a two-milestone writing plan: one phase over weeks
// 1-2, each milestone holding a single 30-minute task.
func writingPlanSchema() *importer.ImportSchema {
	return &importer.ImportSchema{
		Goal: importer.GoalImport{ID: "g-1", Title: "Write a novella"},
		Phases: []importer.PhaseImport{{
			ID: "p-1", Number: 1, Title: "Drafting",
			StartWeek: intPtr(1), EndWeek: intPtr(2),
			Milestones: []importer.MilestoneImport{
				{
					ID: "m-1", Order: 1, Title: "Outline",
					Tasks: []importer.TaskImport{{
						ID: "t-1", Order: 1, Title: "Draft the outline",
						Cognitive: "creative", EstimatedMin: intPtr(30), Difficulty: intPtr(3),
					}},
				},
				{
					ID: "m-2", Order: 2, Title: "Chapter one",
					Tasks: []importer.TaskImport{{
						ID: "t-2", Order: 1, Title: "Draft chapter one",
						Cognitive: "creative", EstimatedMin: intPtr(30), Difficulty: intPtr(3),
					}},
				},
			},
		}},
	}
}

// scheduleStart is a Monday.
var scheduleStart = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func defaultScheduleRequest(planID string) ScheduleRequest {
	return ScheduleRequest{
		PlanID:            planID,
		StartDate:         scheduleStart,
		Timezone:          "UTC",
		SessionsPerWeek:   3,
		MinutesPerSession: 30,
	}
}

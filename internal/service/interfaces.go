package service

import (
	"context"
	"time"

	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/cadence-sh/cadence/internal/importer"
)

type PlanService interface {
	ImportPlan(ctx context.Context, filePath string) (*domain.Plan, error)
	ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (*domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Delete(ctx context.Context, id string) error
}

type ConstraintsService interface {
	Get(ctx context.Context) (*domain.UserConstraints, error)
	SetFromFile(ctx context.Context, filePath string) (*domain.UserConstraints, error)
}

type BookingService interface {
	Add(ctx context.Context, title string, start, end time.Time) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	Remove(ctx context.Context, id string) error
}

// ScheduleRequest carries the knobs for one scheduling run.
type ScheduleRequest struct {
	PlanID            string
	StartDate         time.Time
	Timezone          string
	SessionsPerWeek   int
	MinutesPerSession int
}

// ScheduleResult holds the committed outcome of a scheduling run.
type ScheduleResult struct {
	Plan     *domain.Plan
	Sessions []*domain.Session
}

type ScheduleService interface {
	Reschedule(ctx context.Context, req ScheduleRequest) (*ScheduleResult, error)
	ListByPlan(ctx context.Context, planID string) ([]*domain.Session, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Session, error)
	SessionChecklist(ctx context.Context, sessionID string) ([]domain.SessionItemLink, error)
}

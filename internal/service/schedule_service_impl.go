package service

import (
	"context"
	"time"

	"github.com/cadence-sh/cadence/internal/db"
	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/cadence-sh/cadence/internal/repository"
	"github.com/cadence-sh/cadence/internal/scheduler"
)

type scheduleService struct {
	plans       repository.PlanRepo
	constraints repository.ConstraintsRepo
	bookings    repository.BookingRepo
	sessions    repository.SessionRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewScheduleService(
	plans repository.PlanRepo,
	constraints repository.ConstraintsRepo,
	bookings repository.BookingRepo,
	sessions repository.SessionRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		plans:       plans,
		constraints: constraints,
		bookings:    bookings,
		sessions:    sessions,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Reschedule runs the engine over the stored plan and commits the result as
// a full replacement of the plan's sessions. Inputs are fetched exactly once
// up front; the engine itself never touches the store.
func (s *scheduleService) Reschedule(ctx context.Context, req ScheduleRequest) (result *ScheduleResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"plan_id": req.PlanID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "reschedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	plan, err := s.plans.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	constraints, err := s.constraints.Get(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	// Sessions already committed for other plans occupy the user's calendar
	// just like bookings do; feeding them in keeps all plans non-overlapping.
	others, err := s.sessions.ListExcludingPlan(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	for _, other := range others {
		bookings = append(bookings, domain.Booking{
			ID:    other.ID,
			Title: "scheduled session",
			Start: other.StartUTC,
			End:   other.EndUTC,
		})
	}

	res, err := scheduler.Schedule(scheduler.Request{
		Plan:              *plan,
		Constraints:       *constraints,
		Bookings:          bookings,
		StartDate:         req.StartDate,
		Timezone:          req.Timezone,
		SessionsPerWeek:   req.SessionsPerWeek,
		MinutesPerSession: req.MinutesPerSession,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, sess := range res.Sessions {
		sess.CreatedAt = now
	}
	fields["session_count"] = len(res.Sessions)

	txErr := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).ReplaceForPlan(ctx, plan.ID, res.Sessions, res.Links)
	})
	if txErr != nil {
		err = &PersistenceError{Op: "session replace", Err: txErr}
		return nil, err
	}

	return &ScheduleResult{Plan: plan, Sessions: res.Sessions}, nil
}

func (s *scheduleService) ListByPlan(ctx context.Context, planID string) ([]*domain.Session, error) {
	return s.sessions.ListByPlan(ctx, planID)
}

func (s *scheduleService) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Session, error) {
	return s.sessions.ListUpcoming(ctx, from, limit)
}

func (s *scheduleService) SessionChecklist(ctx context.Context, sessionID string) ([]domain.SessionItemLink, error) {
	return s.sessions.ListLinks(ctx, sessionID)
}

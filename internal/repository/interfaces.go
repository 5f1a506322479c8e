package repository

import (
	"context"
	"time"

	"github.com/cadence-sh/cadence/internal/domain"
)

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id string) error
}

type ConstraintsRepo interface {
	Get(ctx context.Context) (*domain.UserConstraints, error)
	Upsert(ctx context.Context, c *domain.UserConstraints) error
}

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
	ListOverlapping(ctx context.Context, start, end time.Time) ([]domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	ListByPlan(ctx context.Context, planID string) ([]*domain.Session, error)
	ListExcludingPlan(ctx context.Context, planID string) ([]*domain.Session, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Session, error)
	ListLinks(ctx context.Context, sessionID string) ([]domain.SessionItemLink, error)
	ReplaceForPlan(ctx context.Context, planID string, sessions []*domain.Session, links []domain.SessionItemLink) error
	DeleteByPlan(ctx context.Context, planID string) error
}

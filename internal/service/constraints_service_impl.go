package service

import (
	"context"

	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/cadence-sh/cadence/internal/repository"
)

type constraintsService struct {
	constraints repository.ConstraintsRepo
}

func NewConstraintsService(constraints repository.ConstraintsRepo) ConstraintsService {
	return &constraintsService{constraints: constraints}
}

func (s *constraintsService) Get(ctx context.Context) (*domain.UserConstraints, error) {
	return s.constraints.Get(ctx)
}

func (s *constraintsService) SetFromFile(ctx context.Context, filePath string) (*domain.UserConstraints, error) {
	c, err := loadConstraintsFile(filePath)
	if err != nil {
		return nil, err
	}
	if err := s.constraints.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

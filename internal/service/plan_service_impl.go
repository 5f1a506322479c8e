package service

import (
	"context"
	"fmt"

	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/cadence-sh/cadence/internal/importer"
	"github.com/cadence-sh/cadence/internal/repository"
)

type planService struct {
	plans repository.PlanRepo
}

func NewPlanService(plans repository.PlanRepo) PlanService {
	return &planService{plans: plans}
}

func (s *planService) ImportPlan(ctx context.Context, filePath string) (*domain.Plan, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportPlanFromSchema(ctx, schema)
}

func (s *planService) ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (*domain.Plan, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	plan := importer.Convert(schema)
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("creating plan: %w", err)
	}
	return plan, nil
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context) ([]*domain.Plan, error) {
	return s.plans.List(ctx)
}

func (s *planService) Delete(ctx context.Context, id string) error {
	// Committed sessions cascade with the plan row.
	return s.plans.Delete(ctx, id)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}

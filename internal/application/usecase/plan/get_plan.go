package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// GetPlanOutput represents a plan together with its breakdown rows.
type GetPlanOutput struct {
	Plan       *PlanOutput
	Breakdowns []*entity.PlanMonthlyBreakdown
}

// GetPlanUseCase retrieves a single plan with its monthly breakdowns.
type GetPlanUseCase struct {
	planRepo adapter.PlanRepository
	clock    adapter.Clock
}

// NewGetPlanUseCase creates a new GetPlanUseCase instance.
func NewGetPlanUseCase(planRepo adapter.PlanRepository, clock adapter.Clock) *GetPlanUseCase {
	return &GetPlanUseCase{planRepo: planRepo, clock: clock}
}

// Execute retrieves the plan and its breakdowns.
func (uc *GetPlanUseCase) Execute(ctx context.Context, id uuid.UUID) (*GetPlanOutput, error) {
	p, err := uc.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanNotFound,
			fmt.Sprintf("plan %s not found", id),
			domainerror.ErrPlanNotFound,
		)
	}

	breakdowns, err := uc.planRepo.FindBreakdowns(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load breakdowns: %w", err)
	}

	return &GetPlanOutput{
		Plan:       ToPlanOutput(p, uc.clock.Now()),
		Breakdowns: breakdowns,
	}, nil
}

// ListPlansUseCase retrieves all plans.
type ListPlansUseCase struct {
	planRepo adapter.PlanRepository
	clock    adapter.Clock
}

// NewListPlansUseCase creates a new ListPlansUseCase instance.
func NewListPlansUseCase(planRepo adapter.PlanRepository, clock adapter.Clock) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, clock: clock}
}

// Execute retrieves all plans ordered by creation time.
func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]*PlanOutput, error) {
	plans, err := uc.planRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	now := uc.clock.Now()
	outputs := make([]*PlanOutput, 0, len(plans))
	for _, p := range plans {
		outputs = append(outputs, ToPlanOutput(p, now))
	}
	return outputs, nil
}

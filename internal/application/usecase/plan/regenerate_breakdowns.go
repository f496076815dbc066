package plan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// RegenerateBreakdownsUseCase rebuilds a plan's breakdown rows from the
// current expense history, discarding any manual row edits. Useful after the
// expense history has changed materially since the plan was created.
type RegenerateBreakdownsUseCase struct {
	planRepo    adapter.PlanRepository
	expenseRepo adapter.ExpenseRepository
	txManager   adapter.TxManager
	clock       adapter.Clock
}

// NewRegenerateBreakdownsUseCase creates a new RegenerateBreakdownsUseCase instance.
func NewRegenerateBreakdownsUseCase(
	planRepo adapter.PlanRepository,
	expenseRepo adapter.ExpenseRepository,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *RegenerateBreakdownsUseCase {
	return &RegenerateBreakdownsUseCase{
		planRepo:    planRepo,
		expenseRepo: expenseRepo,
		txManager:   txManager,
		clock:       clock,
	}
}

// Execute regenerates and persists the plan's breakdown rows.
func (uc *RegenerateBreakdownsUseCase) Execute(ctx context.Context, planID uuid.UUID) ([]*entity.PlanMonthlyBreakdown, error) {
	p, err := uc.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanNotFound,
			fmt.Sprintf("plan %s not found", planID),
			domainerror.ErrPlanNotFound,
		)
	}

	history, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense history: %w", err)
	}

	breakdowns := GenerateBreakdowns(p, history, uc.clock.Now())

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		return uc.planRepo.ReplaceBreakdowns(ctx, planID, breakdowns)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace breakdowns: %w", err)
	}

	slog.Debug("Regenerated plan breakdowns", "planID", planID, "rows", len(breakdowns))
	return breakdowns, nil
}

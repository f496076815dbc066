package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// UpdateBreakdownInput represents a manual edit to one projected month. Nil
// pointers leave the corresponding figure untouched.
type UpdateBreakdownInput struct {
	PlanID          uuid.UUID
	MonthIndex      int
	ProjectedIncome *decimal.Decimal
	TotalExpenses   *decimal.Decimal
}

// UpdateBreakdownUseCase applies a manual override to a single breakdown row
// and recomputes the net and cumulative figures of that row and every row
// after it. Earlier rows are never touched.
type UpdateBreakdownUseCase struct {
	planRepo  adapter.PlanRepository
	txManager adapter.TxManager
}

// NewUpdateBreakdownUseCase creates a new UpdateBreakdownUseCase instance.
func NewUpdateBreakdownUseCase(planRepo adapter.PlanRepository, txManager adapter.TxManager) *UpdateBreakdownUseCase {
	return &UpdateBreakdownUseCase{planRepo: planRepo, txManager: txManager}
}

// Execute applies the edit and persists the recomputed suffix.
func (uc *UpdateBreakdownUseCase) Execute(ctx context.Context, input UpdateBreakdownInput) ([]*entity.PlanMonthlyBreakdown, error) {
	rows, err := uc.planRepo.FindBreakdowns(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanNotFound,
			fmt.Sprintf("plan %s not found", input.PlanID),
			domainerror.ErrPlanNotFound,
		)
	}
	if input.MonthIndex < 0 || input.MonthIndex >= len(rows) {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeBreakdownNotFound,
			fmt.Sprintf("month index %d out of range for plan %s", input.MonthIndex, input.PlanID),
			domainerror.ErrBreakdownNotFound,
		)
	}

	row := rows[input.MonthIndex]
	if input.ProjectedIncome != nil {
		row.ProjectedIncome = *input.ProjectedIncome
	}
	if input.TotalExpenses != nil {
		row.TotalExpenses = *input.TotalExpenses
	}
	row.UpdatedAt = time.Now().UTC()

	RecomputeFrom(rows, input.MonthIndex)

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		return uc.planRepo.UpdateBreakdowns(ctx, rows[input.MonthIndex:])
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist breakdown edit: %w", err)
	}

	return rows, nil
}

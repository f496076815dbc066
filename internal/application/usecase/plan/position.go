package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// onTrackTolerance is the fraction of the expected cumulative net below which
// a plan counts as off track.
var onTrackTolerance = decimal.NewFromFloat(0.9)

// GetPlanPositionUseCase compares a live plan's projected trajectory against
// the expenses actually recorded since its start date.
type GetPlanPositionUseCase struct {
	planRepo    adapter.PlanRepository
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewGetPlanPositionUseCase creates a new GetPlanPositionUseCase instance.
func NewGetPlanPositionUseCase(
	planRepo adapter.PlanRepository,
	expenseRepo adapter.ExpenseRepository,
	clock adapter.Clock,
) *GetPlanPositionUseCase {
	return &GetPlanPositionUseCase{
		planRepo:    planRepo,
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute derives the plan's current position. Only active plans have a
// position; requesting one for a plan outside its window is an error.
func (uc *GetPlanPositionUseCase) Execute(ctx context.Context, planID uuid.UUID) (*entity.PlanPosition, error) {
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

	now := uc.clock.Now()
	if !p.IsActiveAt(now) {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanNotActive,
			fmt.Sprintf("plan %s is not active at %s", planID, now.Format("2006-01-02")),
			domainerror.ErrPlanNotActive,
		)
	}

	monthsElapsed := p.MonthsElapsedAt(now)

	expected := decimal.Zero
	if monthsElapsed > 0 {
		rows, err := uc.planRepo.FindBreakdowns(ctx, planID)
		if err != nil {
			return nil, fmt.Errorf("failed to load breakdowns: %w", err)
		}
		if monthsElapsed <= len(rows) {
			expected = rows[monthsElapsed-1].CumulativeNet
		} else if len(rows) > 0 {
			expected = rows[len(rows)-1].CumulativeNet
		}
	}

	actual, err := uc.actualNet(ctx, p, monthsElapsed)
	if err != nil {
		return nil, err
	}

	variance := actual.Sub(expected)
	onTrack := actual.GreaterThanOrEqual(expected.Mul(onTrackTolerance))

	return &entity.PlanPosition{
		PlanID:                planID,
		MonthsElapsed:         monthsElapsed,
		ExpectedCumulativeNet: expected,
		ActualNet:             actual,
		Variance:              variance,
		IsOnTrack:             onTrack,
	}, nil
}

// actualNet is income over the elapsed months minus every expense dated in
// [start, start+monthsElapsed months), converted to plan currency.
func (uc *GetPlanPositionUseCase) actualNet(ctx context.Context, p *entity.FinancialPlan, monthsElapsed int) (decimal.Decimal, error) {
	income := p.MonthlyIncome.Mul(decimal.NewFromInt(int64(monthsElapsed)))

	windowEnd := p.StartDate.AddDate(0, monthsElapsed, 0)
	history, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load expense history: %w", err)
	}

	spent := decimal.Zero
	for _, e := range history {
		if e.Date.Before(p.StartDate) || !e.Date.Before(windowEnd) {
			continue
		}
		spent = spent.Add(e.AmountIn(p.Currency))
	}

	return income.Sub(spent), nil
}

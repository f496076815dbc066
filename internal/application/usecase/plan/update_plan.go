package plan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// UpdatePlanInput represents the input for updating a plan. Nil pointers
// leave the corresponding field untouched.
type UpdatePlanInput struct {
	ID                    uuid.UUID
	Name                  *string
	StartDate             *time.Time
	DurationMonths        *int
	MonthlyIncome         *decimal.Decimal
	UseHistoricalData     *bool
	ManualMonthlyExpenses *decimal.Decimal
	ApplyInflation        *bool
	AnnualInflationRate   *decimal.Decimal
	ApplyInterest         *bool
	AnnualInterestRate    *decimal.Decimal
	InterestType          *entity.InterestType
	Currency              *string
}

// UpdatePlanOutput represents the output of a plan update.
type UpdatePlanOutput struct {
	Plan       *PlanOutput
	Breakdowns []*entity.PlanMonthlyBreakdown
}

// UpdatePlanUseCase handles plan updates. Any change to a plan parameter
// invalidates the projection, so the breakdown rows are regenerated from
// scratch in the same transaction. Manual breakdown edits do not survive a
// plan update.
type UpdatePlanUseCase struct {
	planRepo    adapter.PlanRepository
	expenseRepo adapter.ExpenseRepository
	txManager   adapter.TxManager
	clock       adapter.Clock
}

// NewUpdatePlanUseCase creates a new UpdatePlanUseCase instance.
func NewUpdatePlanUseCase(
	planRepo adapter.PlanRepository,
	expenseRepo adapter.ExpenseRepository,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo:    planRepo,
		expenseRepo: expenseRepo,
		txManager:   txManager,
		clock:       clock,
	}
}

// Execute performs the plan update and regenerates the breakdowns.
func (uc *UpdatePlanUseCase) Execute(ctx context.Context, input UpdatePlanInput) (*UpdatePlanOutput, error) {
	p, err := uc.planRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanNotFound,
			fmt.Sprintf("plan %s not found", input.ID),
			domainerror.ErrPlanNotFound,
		)
	}

	applyPlanUpdates(p, input)
	p.UpdatedAt = time.Now().UTC()

	if err := validatePlan(p); err != nil {
		return nil, err
	}

	history, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense history: %w", err)
	}

	now := uc.clock.Now()
	breakdowns := GenerateBreakdowns(p, history, now)

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.planRepo.Update(ctx, p); err != nil {
			return err
		}
		return uc.planRepo.ReplaceBreakdowns(ctx, p.ID, breakdowns)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	slog.Debug("Updated financial plan", "planID", p.ID)

	return &UpdatePlanOutput{
		Plan:       ToPlanOutput(p, now),
		Breakdowns: breakdowns,
	}, nil
}

func applyPlanUpdates(p *entity.FinancialPlan, input UpdatePlanInput) {
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.StartDate != nil {
		p.StartDate = *input.StartDate
	}
	if input.DurationMonths != nil {
		p.DurationMonths = *input.DurationMonths
	}
	if input.MonthlyIncome != nil {
		p.MonthlyIncome = *input.MonthlyIncome
	}
	if input.UseHistoricalData != nil {
		p.UseHistoricalData = *input.UseHistoricalData
	}
	if input.ManualMonthlyExpenses != nil {
		p.ManualMonthlyExpenses = *input.ManualMonthlyExpenses
	}
	if input.ApplyInflation != nil {
		p.ApplyInflation = *input.ApplyInflation
	}
	if input.AnnualInflationRate != nil {
		p.AnnualInflationRate = *input.AnnualInflationRate
	}
	if input.ApplyInterest != nil {
		p.ApplyInterest = *input.ApplyInterest
	}
	if input.AnnualInterestRate != nil {
		p.AnnualInterestRate = *input.AnnualInterestRate
	}
	if input.InterestType != nil {
		p.InterestType = *input.InterestType
	}
	if input.Currency != nil {
		p.Currency = *input.Currency
	}
}

// Package plan contains financial-plan use cases.
package plan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// CreatePlanInput represents the input for plan creation.
type CreatePlanInput struct {
	Name                  string
	StartDate             time.Time
	DurationMonths        int
	MonthlyIncome         decimal.Decimal
	UseHistoricalData     bool
	ManualMonthlyExpenses decimal.Decimal
	ApplyInflation        bool
	AnnualInflationRate   decimal.Decimal
	ApplyInterest         bool
	AnnualInterestRate    decimal.Decimal
	InterestType          entity.InterestType
	Currency              string
}

// CreatePlanOutput represents the output of plan creation.
type CreatePlanOutput struct {
	Plan       *PlanOutput
	Breakdowns []*entity.PlanMonthlyBreakdown
}

// CreatePlanUseCase handles plan creation. The full breakdown sequence is
// generated and persisted together with the plan in one transaction.
type CreatePlanUseCase struct {
	planRepo    adapter.PlanRepository
	expenseRepo adapter.ExpenseRepository
	txManager   adapter.TxManager
	clock       adapter.Clock
}

// NewCreatePlanUseCase creates a new CreatePlanUseCase instance.
func NewCreatePlanUseCase(
	planRepo adapter.PlanRepository,
	expenseRepo adapter.ExpenseRepository,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo:    planRepo,
		expenseRepo: expenseRepo,
		txManager:   txManager,
		clock:       clock,
	}
}

// Execute performs the plan creation.
func (uc *CreatePlanUseCase) Execute(ctx context.Context, input CreatePlanInput) (*CreatePlanOutput, error) {
	p := entity.NewFinancialPlan(input.Name, input.StartDate, input.DurationMonths, input.MonthlyIncome, input.Currency)
	p.UseHistoricalData = input.UseHistoricalData
	p.ManualMonthlyExpenses = input.ManualMonthlyExpenses
	p.ApplyInflation = input.ApplyInflation
	p.AnnualInflationRate = input.AnnualInflationRate
	p.ApplyInterest = input.ApplyInterest
	p.AnnualInterestRate = input.AnnualInterestRate
	if input.InterestType != "" {
		p.InterestType = input.InterestType
	}

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
		if err := uc.planRepo.Create(ctx, p); err != nil {
			return err
		}
		return uc.planRepo.ReplaceBreakdowns(ctx, p.ID, breakdowns)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	slog.Debug("Created financial plan",
		"planID", p.ID,
		"durationMonths", p.DurationMonths,
		"useHistoricalData", p.UseHistoricalData,
	)

	return &CreatePlanOutput{
		Plan:       ToPlanOutput(p, now),
		Breakdowns: breakdowns,
	}, nil
}

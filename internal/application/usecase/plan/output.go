// Package plan contains financial-plan use cases.
package plan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// PlanOutput represents a financial plan with its derived fields resolved at
// read time.
type PlanOutput struct {
	ID                    uuid.UUID
	Name                  string
	StartDate             time.Time
	EndDate               time.Time
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
	IsActive              bool
	MonthsElapsed         int
	Progress              float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ToPlanOutput converts a plan entity to a PlanOutput, deriving activity and
// progress at the given instant.
func ToPlanOutput(p *entity.FinancialPlan, now time.Time) *PlanOutput {
	return &PlanOutput{
		ID:                    p.ID,
		Name:                  p.Name,
		StartDate:             p.StartDate,
		EndDate:               p.EndDate(),
		DurationMonths:        p.DurationMonths,
		MonthlyIncome:         p.MonthlyIncome,
		UseHistoricalData:     p.UseHistoricalData,
		ManualMonthlyExpenses: p.ManualMonthlyExpenses,
		ApplyInflation:        p.ApplyInflation,
		AnnualInflationRate:   p.AnnualInflationRate,
		ApplyInterest:         p.ApplyInterest,
		AnnualInterestRate:    p.AnnualInterestRate,
		InterestType:          p.InterestType,
		Currency:              p.Currency,
		IsActive:              p.IsActiveAt(now),
		MonthsElapsed:         p.MonthsElapsedAt(now),
		Progress:              p.ProgressAt(now),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InterestType represents how interest is expressed on a plan. The type and
// rate are stored and surfaced to callers but never enter the monthly
// breakdown math.
type InterestType string

const (
	InterestSimple   InterestType = "simple"
	InterestCompound InterestType = "compound"
)

// IsValidInterestType reports whether the given interest type is known.
func IsValidInterestType(t InterestType) bool {
	return t == InterestSimple || t == InterestCompound
}

// FinancialPlan represents a multi-month cash flow projection scenario.
type FinancialPlan struct {
	ID             uuid.UUID
	Name           string
	StartDate      time.Time
	DurationMonths int
	MonthlyIncome  decimal.Decimal

	// Expense source: either the full expense history or a manual figure.
	UseHistoricalData      bool
	ManualMonthlyExpenses  decimal.Decimal

	ApplyInflation      bool
	AnnualInflationRate decimal.Decimal // Percent per year

	ApplyInterest      bool
	AnnualInterestRate decimal.Decimal // Percent per year
	InterestType       InterestType

	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFinancialPlan creates a new FinancialPlan entity.
func NewFinancialPlan(
	name string,
	startDate time.Time,
	durationMonths int,
	monthlyIncome decimal.Decimal,
	currency string,
) *FinancialPlan {
	now := time.Now().UTC()

	return &FinancialPlan{
		ID:             uuid.New(),
		Name:           name,
		StartDate:      startDate,
		DurationMonths: durationMonths,
		MonthlyIncome:  monthlyIncome,
		InterestType:   InterestSimple,
		Currency:       currency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// EndDate returns the plan's end date: start + duration months.
func (p *FinancialPlan) EndDate() time.Time {
	return p.StartDate.AddDate(0, p.DurationMonths, 0)
}

// IsActiveAt reports whether the plan is live at the given instant,
// i.e. now is strictly between start and end.
func (p *FinancialPlan) IsActiveAt(now time.Time) bool {
	return now.After(p.StartDate) && now.Before(p.EndDate())
}

// MonthsElapsedAt returns how many plan months have elapsed at the given
// instant, counting the first partial month as 1. The result is clamped to
// [0, DurationMonths].
func (p *FinancialPlan) MonthsElapsedAt(now time.Time) int {
	if !now.After(p.StartDate) {
		return 0
	}
	elapsed := 0
	for elapsed < p.DurationMonths && !p.StartDate.AddDate(0, elapsed, 0).After(now) {
		elapsed++
	}
	return elapsed
}

// ProgressAt returns the elapsed fraction of the plan at the given instant,
// clamped to [0, 1].
func (p *FinancialPlan) ProgressAt(now time.Time) float64 {
	if p.DurationMonths <= 0 {
		return 0
	}
	progress := float64(p.MonthsElapsedAt(now)) / float64(p.DurationMonths)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// PlanMonthlyBreakdown represents one projected month within a plan.
// Invariant: CumulativeNet at month i equals CumulativeNet at month i-1 plus
// NetAmount at month i, with month -1 treated as zero.
type PlanMonthlyBreakdown struct {
	ID         uuid.UUID
	PlanID     uuid.UUID
	MonthIndex int // 0-based from plan start

	ProjectedIncome decimal.Decimal

	// Legacy split kept for backward display compatibility: manual plans
	// populate FixedExpenses only, historical plans populate both from the
	// recurring and one-time components.
	FixedExpenses   decimal.Decimal
	AverageExpenses decimal.Decimal

	TotalExpenses decimal.Decimal
	NetAmount     decimal.Decimal
	CumulativeNet decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlanPosition compares a plan's expected cumulative trajectory at a point in
// time against the actually realized income and expenses.
type PlanPosition struct {
	PlanID                uuid.UUID
	MonthsElapsed         int
	ExpectedCumulativeNet decimal.Decimal
	ActualNet             decimal.Decimal
	Variance              decimal.Decimal
	IsOnTrack             bool
}

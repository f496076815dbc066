// Package plan contains financial-plan use cases.
package plan

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

const (
	// MaxPlanDurationMonths bounds a plan's projection horizon.
	MaxPlanDurationMonths = 120
	// MaxAnnualRatePercent bounds inflation and interest rates.
	MaxAnnualRatePercent = 100
)

// validatePlan checks a fully populated plan entity before any persistence
// write. All violations surface as coded domain errors.
func validatePlan(p *entity.FinancialPlan) error {
	if strings.TrimSpace(p.Name) == "" {
		return domainerror.NewPlanError(
			domainerror.ErrCodeBlankPlanName,
			"plan name must not be blank",
			domainerror.ErrBlankPlanName,
		)
	}

	if p.DurationMonths < 1 || p.DurationMonths > MaxPlanDurationMonths {
		return domainerror.NewPlanError(
			domainerror.ErrCodeInvalidPlanDuration,
			fmt.Sprintf("duration must be between 1 and %d months", MaxPlanDurationMonths),
			domainerror.ErrInvalidPlanDuration,
		)
	}

	if !p.MonthlyIncome.IsPositive() {
		return domainerror.NewPlanError(
			domainerror.ErrCodeInvalidPlanIncome,
			"monthly income must be greater than zero",
			domainerror.ErrInvalidPlanIncome,
		)
	}

	if !p.UseHistoricalData && p.ManualMonthlyExpenses.IsNegative() {
		return domainerror.NewPlanError(
			domainerror.ErrCodeInvalidManualExpenses,
			"manual monthly expenses must not be negative",
			domainerror.ErrInvalidManualExpenses,
		)
	}

	if p.ApplyInflation && !rateInRange(p.AnnualInflationRate) {
		return domainerror.NewPlanError(
			domainerror.ErrCodeInvalidInflationRate,
			fmt.Sprintf("inflation rate must be between 0 and %d percent", MaxAnnualRatePercent),
			domainerror.ErrInvalidInflationRate,
		)
	}

	if p.ApplyInterest {
		if !rateInRange(p.AnnualInterestRate) {
			return domainerror.NewPlanError(
				domainerror.ErrCodeInvalidInterestRate,
				fmt.Sprintf("interest rate must be between 0 and %d percent", MaxAnnualRatePercent),
				domainerror.ErrInvalidInterestRate,
			)
		}
		if !entity.IsValidInterestType(p.InterestType) {
			return domainerror.NewPlanError(
				domainerror.ErrCodeInvalidInterestType,
				"interest type must be 'simple' or 'compound'",
				domainerror.ErrInvalidInterestType,
			)
		}
	}

	return nil
}

func rateInRange(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(decimal.NewFromInt(MaxAnnualRatePercent))
}

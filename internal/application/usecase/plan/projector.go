// Package plan contains financial-plan use cases, including the multi-month
// projection engine.
package plan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// oneTimeAverageWindowMonths is the fixed denominator of the one-time expense
// average. The division is always by this constant even when fewer months of
// history exist; the original product behaves this way and projections must
// stay comparable with it.
const oneTimeAverageWindowMonths = 3

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// GenerateBreakdowns projects a plan month by month over its full duration.
// Income and expenses are compounded with the same monthly inflation factor
// (1 + annualRate/12/100)^monthIndex when inflation is enabled; the interest
// type and rate stored on the plan never enter this math. The returned rows
// carry a running cumulative net starting at zero before month 0.
func GenerateBreakdowns(p *entity.FinancialPlan, history []*entity.Expense, now time.Time) []*entity.PlanMonthlyBreakdown {
	monthlyRate := decimal.Zero
	if p.ApplyInflation {
		monthlyRate = p.AnnualInflationRate.Div(twelve).Div(hundred)
	}
	growth := one // (1 + monthlyRate)^monthIndex, advanced per iteration

	oneTimeAverage := decimal.Zero
	if p.UseHistoricalData {
		oneTimeAverage = oneTimeExpenseAverage(p, history, now)
	}

	createdAt := time.Now().UTC()
	cumulative := decimal.Zero
	rows := make([]*entity.PlanMonthlyBreakdown, 0, p.DurationMonths)

	for monthIndex := 0; monthIndex < p.DurationMonths; monthIndex++ {
		income := p.MonthlyIncome
		if p.ApplyInflation {
			income = p.MonthlyIncome.Mul(growth)
		}

		var fixed, average, base decimal.Decimal
		if p.UseHistoricalData {
			fixed = recurringExpensesInMonth(p, history, monthIndex)
			average = oneTimeAverage
			base = fixed.Add(average)
		} else {
			fixed = p.ManualMonthlyExpenses
			average = decimal.Zero
			base = p.ManualMonthlyExpenses
		}

		adjusted := base
		if p.ApplyInflation {
			adjusted = base.Mul(growth)
		}

		net := income.Sub(adjusted)
		cumulative = cumulative.Add(net)

		rows = append(rows, &entity.PlanMonthlyBreakdown{
			ID:              uuid.New(),
			PlanID:          p.ID,
			MonthIndex:      monthIndex,
			ProjectedIncome: income,
			FixedExpenses:   fixed,
			AverageExpenses: average,
			TotalExpenses:   adjusted,
			NetAmount:       net,
			CumulativeNet:   cumulative,
			CreatedAt:       createdAt,
			UpdatedAt:       createdAt,
		})

		growth = growth.Mul(one.Add(monthlyRate))
	}

	return rows
}

// recurringExpensesInMonth sums the recurring expense instances dated within
// the calendar month containing start+monthIndex months, in plan currency.
func recurringExpensesInMonth(p *entity.FinancialPlan, history []*entity.Expense, monthIndex int) decimal.Decimal {
	monthStart := startOfMonth(p.StartDate.AddDate(0, monthIndex, 0))
	nextMonth := monthStart.AddDate(0, 1, 0)

	sum := decimal.Zero
	for _, e := range history {
		if !e.IsRecurring() {
			continue
		}
		if e.Date.Before(monthStart) || !e.Date.Before(nextMonth) {
			continue
		}
		sum = sum.Add(e.AmountIn(p.Currency))
	}
	return sum
}

// oneTimeExpenseAverage sums the non-recurring expenses of the three full
// calendar months preceding the current one and divides by the fixed window
// size, regardless of how many of those months actually hold data.
func oneTimeExpenseAverage(p *entity.FinancialPlan, history []*entity.Expense, now time.Time) decimal.Decimal {
	windowEnd := startOfMonth(now)
	windowStart := windowEnd.AddDate(0, -oneTimeAverageWindowMonths, 0)

	sum := decimal.Zero
	for _, e := range history {
		if e.IsRecurring() {
			continue
		}
		if e.Date.Before(windowStart) || !e.Date.Before(windowEnd) {
			continue
		}
		sum = sum.Add(e.AmountIn(p.Currency))
	}
	return sum.Div(decimal.NewFromInt(oneTimeAverageWindowMonths))
}

// RecomputeFrom re-derives net amounts and cumulative nets for rows
// fromIndex onward, carrying the cumulative total from the preceding row.
// Rows before fromIndex are never touched. The slice must be ordered by
// month index.
func RecomputeFrom(rows []*entity.PlanMonthlyBreakdown, fromIndex int) {
	if fromIndex < 0 {
		fromIndex = 0
	}
	running := decimal.Zero
	if fromIndex > 0 && fromIndex <= len(rows) {
		running = rows[fromIndex-1].CumulativeNet
	}
	for i := fromIndex; i < len(rows); i++ {
		rows[i].NetAmount = rows[i].ProjectedIncome.Sub(rows[i].TotalExpenses)
		running = running.Add(rows[i].NetAmount)
		rows[i].CumulativeNet = running
	}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

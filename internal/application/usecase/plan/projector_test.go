package plan

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

func newManualPlan(durationMonths int, income, expenses decimal.Decimal) *entity.FinancialPlan {
	p := entity.NewFinancialPlan("test plan", day(2024, time.March, 1), durationMonths, income, "EUR")
	p.ManualMonthlyExpenses = expenses
	return p
}

func historyExpense(amount decimal.Decimal, date time.Time, recurrence entity.RecurrenceType) *entity.Expense {
	return entity.NewExpense(amount, "EUR", uuid.New(), nil, "history", date, recurrence, nil)
}

func TestGenerateBreakdowns_ManualExpensesNoInflation(t *testing.T) {
	p := newManualPlan(3, decimal.NewFromInt(1000), decimal.NewFromInt(400))

	rows := GenerateBreakdowns(p, nil, day(2024, time.March, 15))

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	wantCumulative := []int64{600, 1200, 1800}
	for i, row := range rows {
		if row.MonthIndex != i {
			t.Errorf("row %d: month index %d", i, row.MonthIndex)
		}
		if !row.NetAmount.Equal(decimal.NewFromInt(600)) {
			t.Errorf("row %d: net %s, want 600", i, row.NetAmount)
		}
		if !row.CumulativeNet.Equal(decimal.NewFromInt(wantCumulative[i])) {
			t.Errorf("row %d: cumulative %s, want %d", i, row.CumulativeNet, wantCumulative[i])
		}
		if !row.FixedExpenses.Equal(decimal.NewFromInt(400)) || !row.AverageExpenses.IsZero() {
			t.Errorf("row %d: manual plans carry expenses as fixed only, got fixed=%s average=%s",
				i, row.FixedExpenses, row.AverageExpenses)
		}
	}
}

func TestGenerateBreakdowns_InflationCompoundsMonthly(t *testing.T) {
	p := newManualPlan(3, decimal.NewFromInt(1000), decimal.NewFromInt(400))
	p.ApplyInflation = true
	p.AnnualInflationRate = decimal.NewFromInt(12) // 1% per month

	rows := GenerateBreakdowns(p, nil, day(2024, time.March, 15))

	// Month 0 is uninflated, month i scales by 1.01^i.
	factor := decimal.NewFromFloat(1.01)
	wantIncome := decimal.NewFromInt(1000)
	wantExpenses := decimal.NewFromInt(400)
	for i, row := range rows {
		if !row.ProjectedIncome.Equal(wantIncome) {
			t.Errorf("row %d: income %s, want %s", i, row.ProjectedIncome, wantIncome)
		}
		if !row.TotalExpenses.Equal(wantExpenses) {
			t.Errorf("row %d: expenses %s, want %s", i, row.TotalExpenses, wantExpenses)
		}
		wantIncome = wantIncome.Mul(factor)
		wantExpenses = wantExpenses.Mul(factor)
	}

	// Spot check: month 2 income is 1000 * 1.01^2 = 1020.10.
	if got := rows[2].ProjectedIncome.Round(2); !got.Equal(decimal.NewFromFloat(1020.10)) {
		t.Errorf("month 2 income %s, want 1020.10", got)
	}
}

func TestGenerateBreakdowns_CumulativeInvariant(t *testing.T) {
	p := newManualPlan(24, decimal.NewFromFloat(3517.42), decimal.NewFromFloat(2108.77))
	p.ApplyInflation = true
	p.AnnualInflationRate = decimal.NewFromFloat(7.5)

	rows := GenerateBreakdowns(p, nil, day(2024, time.March, 15))

	running := decimal.Zero
	for i, row := range rows {
		running = running.Add(row.NetAmount)
		if !row.CumulativeNet.Equal(running) {
			t.Fatalf("row %d: cumulative %s, want %s", i, row.CumulativeNet, running)
		}
		if !row.NetAmount.Equal(row.ProjectedIncome.Sub(row.TotalExpenses)) {
			t.Fatalf("row %d: net does not equal income minus expenses", i)
		}
	}
}

func TestGenerateBreakdowns_InterestNeverEntersTheMath(t *testing.T) {
	base := newManualPlan(6, decimal.NewFromInt(1000), decimal.NewFromInt(400))

	withInterest := newManualPlan(6, decimal.NewFromInt(1000), decimal.NewFromInt(400))
	withInterest.ApplyInterest = true
	withInterest.AnnualInterestRate = decimal.NewFromInt(5)
	withInterest.InterestType = entity.InterestCompound

	now := day(2024, time.March, 15)
	baseRows := GenerateBreakdowns(base, nil, now)
	interestRows := GenerateBreakdowns(withInterest, nil, now)

	for i := range baseRows {
		if !baseRows[i].CumulativeNet.Equal(interestRows[i].CumulativeNet) {
			t.Fatalf("row %d: interest settings changed the projection", i)
		}
	}
}

func TestGenerateBreakdowns_HistoricalRecurringByCalendarMonth(t *testing.T) {
	p := entity.NewFinancialPlan("historical", day(2024, time.March, 1), 2, decimal.NewFromInt(2000), "EUR")
	p.UseHistoricalData = true

	history := []*entity.Expense{
		// Recurring rent lands in both projected months.
		historyExpense(decimal.NewFromInt(700), day(2024, time.March, 5), entity.RecurrenceMonthly),
		historyExpense(decimal.NewFromInt(700), day(2024, time.April, 5), entity.RecurrenceMonthly),
		// Recurring in a month outside the plan window.
		historyExpense(decimal.NewFromInt(700), day(2024, time.May, 5), entity.RecurrenceMonthly),
	}

	rows := GenerateBreakdowns(p, history, day(2024, time.March, 10))

	for i, row := range rows {
		if !row.FixedExpenses.Equal(decimal.NewFromInt(700)) {
			t.Errorf("row %d: fixed %s, want 700", i, row.FixedExpenses)
		}
	}
}

func TestOneTimeExpenseAverage_FixedDenominator(t *testing.T) {
	p := entity.NewFinancialPlan("historical", day(2024, time.March, 1), 1, decimal.NewFromInt(2000), "EUR")
	p.UseHistoricalData = true

	// Only one of the three window months holds data; the divisor stays 3.
	history := []*entity.Expense{
		historyExpense(decimal.NewFromInt(300), day(2024, time.February, 10), entity.RecurrenceNone),
	}
	now := day(2024, time.March, 10)

	if got := oneTimeExpenseAverage(p, history, now); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("average %s, want 100", got)
	}
}

func TestOneTimeExpenseAverage_WindowExcludesCurrentMonth(t *testing.T) {
	p := entity.NewFinancialPlan("historical", day(2024, time.March, 1), 1, decimal.NewFromInt(2000), "EUR")
	p.UseHistoricalData = true

	history := []*entity.Expense{
		// Current month and pre-window data must both be ignored.
		historyExpense(decimal.NewFromInt(999), day(2024, time.March, 5), entity.RecurrenceNone),
		historyExpense(decimal.NewFromInt(999), day(2023, time.November, 20), entity.RecurrenceNone),
		// In window: Dec 2023 through Feb 2024.
		historyExpense(decimal.NewFromInt(150), day(2023, time.December, 1), entity.RecurrenceNone),
		historyExpense(decimal.NewFromInt(150), day(2024, time.January, 15), entity.RecurrenceNone),
		historyExpense(decimal.NewFromInt(300), day(2024, time.February, 29), entity.RecurrenceNone),
	}
	now := day(2024, time.March, 10)

	if got := oneTimeExpenseAverage(p, history, now); !got.Equal(decimal.NewFromInt(200)) {
		t.Errorf("average %s, want 200", got)
	}
}

func TestRecomputeFrom_TouchesOnlyTheSuffix(t *testing.T) {
	p := newManualPlan(5, decimal.NewFromInt(1000), decimal.NewFromInt(400))
	rows := GenerateBreakdowns(p, nil, day(2024, time.March, 15))

	// Override month 2's expenses and recompute from there.
	rows[2].TotalExpenses = decimal.NewFromInt(900)
	RecomputeFrom(rows, 2)

	if !rows[0].CumulativeNet.Equal(decimal.NewFromInt(600)) || !rows[1].CumulativeNet.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("rows before the edit were touched")
	}
	if !rows[2].NetAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("row 2: net %s, want 100", rows[2].NetAmount)
	}
	wantCumulative := []int64{600, 1200, 1300, 1900, 2500}
	for i, want := range wantCumulative {
		if !rows[i].CumulativeNet.Equal(decimal.NewFromInt(want)) {
			t.Errorf("row %d: cumulative %s, want %d", i, rows[i].CumulativeNet, want)
		}
	}
}

func TestRecomputeFrom_ZeroIndexRestartsFromZero(t *testing.T) {
	p := newManualPlan(3, decimal.NewFromInt(1000), decimal.NewFromInt(400))
	rows := GenerateBreakdowns(p, nil, day(2024, time.March, 15))

	rows[0].ProjectedIncome = decimal.NewFromInt(1500)
	RecomputeFrom(rows, 0)

	wantCumulative := []int64{1100, 1700, 2300}
	for i, want := range wantCumulative {
		if !rows[i].CumulativeNet.Equal(decimal.NewFromInt(want)) {
			t.Errorf("row %d: cumulative %s, want %d", i, rows[i].CumulativeNet, want)
		}
	}
}

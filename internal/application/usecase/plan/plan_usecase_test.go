package plan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func TestCreatePlan_PersistsPlanAndBreakdowns(t *testing.T) {
	planRepo := newFakePlanRepository()
	uc := NewCreatePlanUseCase(planRepo, &fakeExpenseHistory{}, fakeTxManager{}, fakeClock{now: day(2024, time.March, 15)})

	output, err := uc.Execute(context.Background(), CreatePlanInput{
		Name:                  "emergency fund",
		StartDate:             day(2024, time.April, 1),
		DurationMonths:        6,
		MonthlyIncome:         decimal.NewFromInt(1000),
		ManualMonthlyExpenses: decimal.NewFromInt(400),
		Currency:              "EUR",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := planRepo.FindByID(context.Background(), output.Plan.ID)
	if stored == nil {
		t.Fatal("plan was not persisted")
	}
	rows, _ := planRepo.FindBreakdowns(context.Background(), output.Plan.ID)
	if len(rows) != 6 {
		t.Fatalf("expected 6 breakdown rows, got %d", len(rows))
	}
	if !rows[5].CumulativeNet.Equal(decimal.NewFromInt(3600)) {
		t.Errorf("final cumulative %s, want 3600", rows[5].CumulativeNet)
	}
}

func TestCreatePlan_ValidationFailures(t *testing.T) {
	uc := NewCreatePlanUseCase(newFakePlanRepository(), &fakeExpenseHistory{}, fakeTxManager{}, fakeClock{now: day(2024, time.March, 15)})

	valid := CreatePlanInput{
		Name:           "plan",
		StartDate:      day(2024, time.April, 1),
		DurationMonths: 6,
		MonthlyIncome:  decimal.NewFromInt(1000),
		Currency:       "EUR",
	}

	tests := []struct {
		name    string
		mutate  func(input *CreatePlanInput)
		wantErr error
	}{
		{
			name:    "blank name",
			mutate:  func(input *CreatePlanInput) { input.Name = "  " },
			wantErr: domainerror.ErrBlankPlanName,
		},
		{
			name:    "zero duration",
			mutate:  func(input *CreatePlanInput) { input.DurationMonths = 0 },
			wantErr: domainerror.ErrInvalidPlanDuration,
		},
		{
			name:    "duration above the cap",
			mutate:  func(input *CreatePlanInput) { input.DurationMonths = MaxPlanDurationMonths + 1 },
			wantErr: domainerror.ErrInvalidPlanDuration,
		},
		{
			name:    "non-positive income",
			mutate:  func(input *CreatePlanInput) { input.MonthlyIncome = decimal.Zero },
			wantErr: domainerror.ErrInvalidPlanIncome,
		},
		{
			name:    "negative manual expenses",
			mutate:  func(input *CreatePlanInput) { input.ManualMonthlyExpenses = decimal.NewFromInt(-1) },
			wantErr: domainerror.ErrInvalidManualExpenses,
		},
		{
			name: "inflation rate out of range",
			mutate: func(input *CreatePlanInput) {
				input.ApplyInflation = true
				input.AnnualInflationRate = decimal.NewFromInt(101)
			},
			wantErr: domainerror.ErrInvalidInflationRate,
		},
		{
			name: "unknown interest type",
			mutate: func(input *CreatePlanInput) {
				input.ApplyInterest = true
				input.AnnualInterestRate = decimal.NewFromInt(5)
				input.InterestType = "exotic"
			},
			wantErr: domainerror.ErrInvalidInterestType,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestUpdatePlan_RegeneratesBreakdowns(t *testing.T) {
	planRepo := newFakePlanRepository()
	clock := fakeClock{now: day(2024, time.March, 15)}
	create := NewCreatePlanUseCase(planRepo, &fakeExpenseHistory{}, fakeTxManager{}, clock)

	created, err := create.Execute(context.Background(), CreatePlanInput{
		Name:                  "plan",
		StartDate:             day(2024, time.April, 1),
		DurationMonths:        3,
		MonthlyIncome:         decimal.NewFromInt(1000),
		ManualMonthlyExpenses: decimal.NewFromInt(400),
		Currency:              "EUR",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	update := NewUpdatePlanUseCase(planRepo, &fakeExpenseHistory{}, fakeTxManager{}, clock)
	duration := 5
	income := decimal.NewFromInt(2000)
	output, err := update.Execute(context.Background(), UpdatePlanInput{
		ID:             created.Plan.ID,
		DurationMonths: &duration,
		MonthlyIncome:  &income,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if len(output.Breakdowns) != 5 {
		t.Fatalf("expected 5 regenerated rows, got %d", len(output.Breakdowns))
	}
	if !output.Breakdowns[0].NetAmount.Equal(decimal.NewFromInt(1600)) {
		t.Errorf("row 0 net %s, want 1600", output.Breakdowns[0].NetAmount)
	}

	rows, _ := planRepo.FindBreakdowns(context.Background(), created.Plan.ID)
	if len(rows) != 5 {
		t.Errorf("expected stored rows to be replaced, got %d", len(rows))
	}
}

func TestUpdatePlan_NotFound(t *testing.T) {
	uc := NewUpdatePlanUseCase(newFakePlanRepository(), &fakeExpenseHistory{}, fakeTxManager{}, fakeClock{now: day(2024, time.March, 15)})
	name := "renamed"
	_, err := uc.Execute(context.Background(), UpdatePlanInput{ID: uuid.New(), Name: &name})
	if !errors.Is(err, domainerror.ErrPlanNotFound) {
		t.Errorf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestDeletePlan_RemovesPlanAndBreakdowns(t *testing.T) {
	planRepo := newFakePlanRepository()
	clock := fakeClock{now: day(2024, time.March, 15)}
	create := NewCreatePlanUseCase(planRepo, &fakeExpenseHistory{}, fakeTxManager{}, clock)
	created, err := create.Execute(context.Background(), CreatePlanInput{
		Name:           "plan",
		StartDate:      day(2024, time.April, 1),
		DurationMonths: 3,
		MonthlyIncome:  decimal.NewFromInt(1000),
		Currency:       "EUR",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := NewDeletePlanUseCase(planRepo).Execute(context.Background(), created.Plan.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	stored, _ := planRepo.FindByID(context.Background(), created.Plan.ID)
	if stored != nil {
		t.Error("plan still present after delete")
	}
	rows, _ := planRepo.FindBreakdowns(context.Background(), created.Plan.ID)
	if len(rows) != 0 {
		t.Errorf("breakdowns still present after delete: %d rows", len(rows))
	}
}

func TestUpdateBreakdown_RecomputesSuffixOnly(t *testing.T) {
	planRepo := newFakePlanRepository()
	clock := fakeClock{now: day(2024, time.March, 15)}
	create := NewCreatePlanUseCase(planRepo, &fakeExpenseHistory{}, fakeTxManager{}, clock)
	created, err := create.Execute(context.Background(), CreatePlanInput{
		Name:                  "plan",
		StartDate:             day(2024, time.April, 1),
		DurationMonths:        4,
		MonthlyIncome:         decimal.NewFromInt(1000),
		ManualMonthlyExpenses: decimal.NewFromInt(400),
		Currency:              "EUR",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	uc := NewUpdateBreakdownUseCase(planRepo, fakeTxManager{})
	expenses := decimal.NewFromInt(900)
	rows, err := uc.Execute(context.Background(), UpdateBreakdownInput{
		PlanID:        created.Plan.ID,
		MonthIndex:    1,
		TotalExpenses: &expenses,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCumulative := []int64{600, 700, 1300, 1900}
	for i, want := range wantCumulative {
		if !rows[i].CumulativeNet.Equal(decimal.NewFromInt(want)) {
			t.Errorf("row %d: cumulative %s, want %d", i, rows[i].CumulativeNet, want)
		}
	}

	stored, _ := planRepo.FindBreakdowns(context.Background(), created.Plan.ID)
	for i, want := range wantCumulative {
		if !stored[i].CumulativeNet.Equal(decimal.NewFromInt(want)) {
			t.Errorf("stored row %d: cumulative %s, want %d", i, stored[i].CumulativeNet, want)
		}
	}
}

func TestUpdateBreakdown_IndexOutOfRange(t *testing.T) {
	planRepo := newFakePlanRepository()
	clock := fakeClock{now: day(2024, time.March, 15)}
	create := NewCreatePlanUseCase(planRepo, &fakeExpenseHistory{}, fakeTxManager{}, clock)
	created, err := create.Execute(context.Background(), CreatePlanInput{
		Name:           "plan",
		StartDate:      day(2024, time.April, 1),
		DurationMonths: 2,
		MonthlyIncome:  decimal.NewFromInt(1000),
		Currency:       "EUR",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	uc := NewUpdateBreakdownUseCase(planRepo, fakeTxManager{})
	income := decimal.NewFromInt(1)
	_, err = uc.Execute(context.Background(), UpdateBreakdownInput{
		PlanID:          created.Plan.ID,
		MonthIndex:      2,
		ProjectedIncome: &income,
	})
	if !errors.Is(err, domainerror.ErrBreakdownNotFound) {
		t.Errorf("expected ErrBreakdownNotFound, got %v", err)
	}
}

func TestGetPlanPosition_OnTrack(t *testing.T) {
	planRepo := newFakePlanRepository()
	// Two months into a six month plan: income 1000, planned expenses 400.
	clock := fakeClock{now: day(2024, time.June, 5)}
	history := &fakeExpenseHistory{expenses: []*entity.Expense{
		historyExpense(decimal.NewFromInt(350), day(2024, time.April, 10), entity.RecurrenceNone),
		historyExpense(decimal.NewFromInt(380), day(2024, time.May, 12), entity.RecurrenceNone),
		// Outside the elapsed window.
		historyExpense(decimal.NewFromInt(999), day(2024, time.March, 20), entity.RecurrenceNone),
		historyExpense(decimal.NewFromInt(999), day(2024, time.June, 20), entity.RecurrenceNone),
	}}

	create := NewCreatePlanUseCase(planRepo, &fakeExpenseHistory{}, fakeTxManager{}, fakeClock{now: day(2024, time.March, 15)})
	created, err := create.Execute(context.Background(), CreatePlanInput{
		Name:                  "plan",
		StartDate:             day(2024, time.April, 1),
		DurationMonths:        6,
		MonthlyIncome:         decimal.NewFromInt(1000),
		ManualMonthlyExpenses: decimal.NewFromInt(400),
		Currency:              "EUR",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	uc := NewGetPlanPositionUseCase(planRepo, history, clock)
	position, err := uc.Execute(context.Background(), created.Plan.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// June 5 is inside month 3, counted inclusively.
	if position.MonthsElapsed != 3 {
		t.Errorf("months elapsed %d, want 3", position.MonthsElapsed)
	}
	if !position.ExpectedCumulativeNet.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("expected cumulative %s, want 1800", position.ExpectedCumulativeNet)
	}
	// Actual: 3 * 1000 income minus 350 + 380 spent in [Apr 1, Jul 1).
	// The June 20 expense falls inside the window too.
	wantActual := decimal.NewFromInt(3000).Sub(decimal.NewFromInt(350 + 380 + 999))
	if !position.ActualNet.Equal(wantActual) {
		t.Errorf("actual net %s, want %s", position.ActualNet, wantActual)
	}
	// 1271 < 1800 * 0.9.
	if position.IsOnTrack {
		t.Error("expected the plan to be off track")
	}
}

func TestGetPlanPosition_InactivePlan(t *testing.T) {
	planRepo := newFakePlanRepository()
	create := NewCreatePlanUseCase(planRepo, &fakeExpenseHistory{}, fakeTxManager{}, fakeClock{now: day(2024, time.March, 15)})
	created, err := create.Execute(context.Background(), CreatePlanInput{
		Name:           "plan",
		StartDate:      day(2024, time.April, 1),
		DurationMonths: 3,
		MonthlyIncome:  decimal.NewFromInt(1000),
		Currency:       "EUR",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Before start.
	uc := NewGetPlanPositionUseCase(planRepo, &fakeExpenseHistory{}, fakeClock{now: day(2024, time.March, 20)})
	if _, err := uc.Execute(context.Background(), created.Plan.ID); !errors.Is(err, domainerror.ErrPlanNotActive) {
		t.Errorf("expected ErrPlanNotActive before start, got %v", err)
	}

	// After end.
	uc = NewGetPlanPositionUseCase(planRepo, &fakeExpenseHistory{}, fakeClock{now: day(2024, time.August, 1)})
	if _, err := uc.Execute(context.Background(), created.Plan.ID); !errors.Is(err, domainerror.ErrPlanNotActive) {
		t.Errorf("expected ErrPlanNotActive after end, got %v", err)
	}
}

func TestRegenerateBreakdowns_ReflectsNewHistory(t *testing.T) {
	planRepo := newFakePlanRepository()
	clock := fakeClock{now: day(2024, time.March, 15)}

	create := NewCreatePlanUseCase(planRepo, &fakeExpenseHistory{}, fakeTxManager{}, clock)
	created, err := create.Execute(context.Background(), CreatePlanInput{
		Name:              "historical",
		StartDate:         day(2024, time.April, 1),
		DurationMonths:    2,
		MonthlyIncome:     decimal.NewFromInt(2000),
		UseHistoricalData: true,
		Currency:          "EUR",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !created.Breakdowns[0].TotalExpenses.IsZero() {
		t.Fatalf("expected zero expenses with empty history, got %s", created.Breakdowns[0].TotalExpenses)
	}

	history := &fakeExpenseHistory{expenses: []*entity.Expense{
		historyExpense(decimal.NewFromInt(700), day(2024, time.April, 5), entity.RecurrenceMonthly),
	}}
	uc := NewRegenerateBreakdownsUseCase(planRepo, history, fakeTxManager{}, clock)
	rows, err := uc.Execute(context.Background(), created.Plan.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rows[0].FixedExpenses.Equal(decimal.NewFromInt(700)) {
		t.Errorf("row 0 fixed %s, want 700", rows[0].FixedExpenses)
	}
}

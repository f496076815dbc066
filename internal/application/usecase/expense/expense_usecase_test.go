package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// fakeCategoryLookup overrides only FindByID; other methods are never reached
// by the expense use cases and panic if called.
type fakeCategoryLookup struct {
	adapter.CategoryRepository
	categories map[uuid.UUID]*entity.Category
}

func (f *fakeCategoryLookup) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	return f.categories[id], nil
}

// fakePreferences returns fixed limits.
type fakePreferences struct {
	prefs adapter.Preferences
}

func (f *fakePreferences) Get(_ context.Context) (*adapter.Preferences, error) {
	clone := f.prefs
	return &clone, nil
}

func (f *fakePreferences) Set(_ context.Context, prefs *adapter.Preferences) error {
	f.prefs = *prefs
	return nil
}

func knownCategory() (*fakeCategoryLookup, uuid.UUID) {
	c := entity.NewCategory("Food & Drinks", "#FF0000", "utensils")
	return &fakeCategoryLookup{categories: map[uuid.UUID]*entity.Category{c.ID: c}}, c.ID
}

func testPreferences() *fakePreferences {
	return &fakePreferences{prefs: adapter.Preferences{
		DefaultCurrency: "EUR",
		DailyLimit:      decimal.NewFromInt(50),
		MonthlyLimit:    decimal.NewFromInt(1500),
	}}
}

func TestAddExpense_OneTimeSnapshotsLimits(t *testing.T) {
	repo := newFakeExpenseRepository()
	categories, categoryID := knownCategory()
	uc := NewAddExpenseUseCase(repo, categories, testPreferences(), fakeTxManager{})

	output, err := uc.Execute(context.Background(), AddExpenseInput{
		Amount:         decimal.NewFromFloat(12.5),
		CategoryID:     categoryID,
		Description:    "Lunch",
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		RecurrenceType: entity.RecurrenceNone,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(output.Expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(output.Expenses))
	}

	created := output.Expenses[0]
	if !created.DailyLimitAtCreation.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected daily limit snapshot 50, got %s", created.DailyLimitAtCreation)
	}
	if !created.MonthlyLimitAtCreation.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected monthly limit snapshot 1500, got %s", created.MonthlyLimitAtCreation)
	}
	if created.Currency != "EUR" {
		t.Errorf("expected default currency EUR, got %s", created.Currency)
	}
	if created.RecurrenceGroupID != nil {
		t.Error("one-time expense must not carry a recurrence group")
	}
	if len(repo.expenses) != 1 {
		t.Errorf("expected 1 stored expense, got %d", len(repo.expenses))
	}
}

func TestAddExpense_RecurringMaterializesSeries(t *testing.T) {
	repo := newFakeExpenseRepository()
	categories, categoryID := knownCategory()
	uc := NewAddExpenseUseCase(repo, categories, testPreferences(), fakeTxManager{})

	end := time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC)
	output, err := uc.Execute(context.Background(), AddExpenseInput{
		Amount:            decimal.NewFromFloat(9.99),
		Currency:          "EUR",
		CategoryID:        categoryID,
		Description:       "Meal plan",
		Date:              time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		RecurrenceType:    entity.RecurrenceWeekly,
		RecurrenceEndDate: &end,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(output.Expenses) != 5 {
		t.Fatalf("expected 5 weekly instances, got %d", len(output.Expenses))
	}

	groupID := output.Expenses[0].RecurrenceGroupID
	if groupID == nil {
		t.Fatal("recurring instances must share a recurrence group")
	}
	for i, e := range output.Expenses {
		if e.RecurrenceGroupID == nil || *e.RecurrenceGroupID != *groupID {
			t.Errorf("instance %d has a different group ID", i)
		}
		if e.RecurrenceEndDate == nil || !e.RecurrenceEndDate.Equal(end) {
			t.Errorf("instance %d lost the recurrence end date", i)
		}
	}
}

func TestAddExpense_UnknownCategory(t *testing.T) {
	repo := newFakeExpenseRepository()
	categories := &fakeCategoryLookup{categories: map[uuid.UUID]*entity.Category{}}
	uc := NewAddExpenseUseCase(repo, categories, testPreferences(), fakeTxManager{})

	_, err := uc.Execute(context.Background(), AddExpenseInput{
		Amount:         decimal.NewFromInt(5),
		CategoryID:     uuid.New(),
		Description:    "Mystery",
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		RecurrenceType: entity.RecurrenceNone,
	})
	if !errors.Is(err, domainerror.ErrExpenseCategoryNotFound) {
		t.Errorf("expected category not found error, got %v", err)
	}
	if len(repo.expenses) != 0 {
		t.Error("no expense should be stored when the category is unknown")
	}
}

func TestAddExpense_RejectsNonPositiveAmount(t *testing.T) {
	categories, categoryID := knownCategory()
	uc := NewAddExpenseUseCase(newFakeExpenseRepository(), categories, testPreferences(), fakeTxManager{})

	_, err := uc.Execute(context.Background(), AddExpenseInput{
		Amount:         decimal.Zero,
		CategoryID:     categoryID,
		Description:    "Free lunch",
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		RecurrenceType: entity.RecurrenceNone,
	})
	if !errors.Is(err, domainerror.ErrInvalidExpenseAmount) {
		t.Errorf("expected invalid amount error, got %v", err)
	}
}

func TestListExpenses_GroupsByDay(t *testing.T) {
	repo := newFakeExpenseRepository()
	categoryID := uuid.New()
	day1 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	for _, seed := range []struct {
		amount float64
		date   time.Time
	}{
		{30, day1},
		{12, day1},
		{20, day2},
	} {
		e := entity.NewExpense(decimal.NewFromFloat(seed.amount), "EUR", categoryID, nil, "seed", seed.date, entity.RecurrenceNone, nil)
		if err := repo.Create(context.Background(), e); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	uc := NewListExpensesUseCase(repo)
	output, err := uc.Execute(context.Background(), ListExpensesInput{
		StartDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		GroupByDay: true,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !output.Total.Equal(decimal.NewFromInt(62)) {
		t.Errorf("expected total 62, got %s", output.Total)
	}
	if len(output.Days) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(output.Days))
	}
	if !output.Days[0].Date.Equal(day1) || !output.Days[0].Total.Equal(decimal.NewFromInt(42)) {
		t.Errorf("unexpected first bucket: date %s total %s", output.Days[0].Date, output.Days[0].Total)
	}
	if !output.Days[1].Total.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected second bucket total 20, got %s", output.Days[1].Total)
	}
}

func TestUpdateExpense_EditsSingleInstance(t *testing.T) {
	repo := newFakeExpenseRepository()
	categories, categoryID := knownCategory()
	e := entity.NewExpense(decimal.NewFromInt(10), "EUR", categoryID, nil, "Gym", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), entity.RecurrenceNone, nil)
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	uc := NewUpdateExpenseUseCase(repo, categories)
	newAmount := decimal.NewFromFloat(15.5)
	newDescription := "Gym membership"
	output, err := uc.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:   e.ID,
		Amount:      &newAmount,
		Description: &newDescription,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !output.Expense.Amount.Equal(newAmount) {
		t.Errorf("expected amount 15.5, got %s", output.Expense.Amount)
	}

	stored, err := repo.FindByID(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.Description != newDescription {
		t.Errorf("expected stored description %q, got %q", newDescription, stored.Description)
	}
}

func TestUpdateExpense_NotFound(t *testing.T) {
	categories, _ := knownCategory()
	uc := NewUpdateExpenseUseCase(newFakeExpenseRepository(), categories)

	amount := decimal.NewFromInt(5)
	_, err := uc.Execute(context.Background(), UpdateExpenseInput{ExpenseID: uuid.New(), Amount: &amount})
	if !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestDeleteExpense(t *testing.T) {
	repo := newFakeExpenseRepository()
	e := entity.NewExpense(decimal.NewFromInt(10), "EUR", uuid.New(), nil, "Snack", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), entity.RecurrenceNone, nil)
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	uc := NewDeleteExpenseUseCase(repo)
	if err := uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: e.ID}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(repo.expenses) != 0 {
		t.Error("expense should be gone after delete")
	}

	err := uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: e.ID})
	if !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected not found error on second delete, got %v", err)
	}
}

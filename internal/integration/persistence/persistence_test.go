package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

// openTestDB opens a fresh in-memory database with the full schema migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	err = db.AutoMigrate(
		&model.CategoryModel{},
		&model.SubCategoryModel{},
		&model.ExpenseModel{},
		&model.FinancialPlanModel{},
		&model.PlanBreakdownModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func seedCategory(t *testing.T, db *gorm.DB) *entity.Category {
	t.Helper()
	repo := NewCategoryRepository(db)
	c := entity.NewCategory("Food", "#E74C3C", "utensils")
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return c
}

func testExpense(categoryID uuid.UUID, date time.Time, groupID *uuid.UUID) *entity.Expense {
	e := entity.NewExpense(decimal.NewFromFloat(9.90), "EUR", categoryID, nil, "coffee", date, entity.RecurrenceNone, nil)
	if groupID != nil {
		e.RecurrenceType = entity.RecurrenceDaily
		e.RecurrenceGroupID = groupID
	}
	return e
}

func TestExpenseRepository_CreateAndFindByID(t *testing.T) {
	db := openTestDB(t)
	category := seedCategory(t, db)
	repo := NewExpenseRepository(db)

	e := testExpense(category.ID, time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC), nil)
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByID(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !found.Amount.Equal(e.Amount) || found.Description != "coffee" {
		t.Errorf("round trip mismatch: %+v", found)
	}
	if found.RecurrenceType != entity.RecurrenceNone {
		t.Errorf("recurrence type %s, want none", found.RecurrenceType)
	}
}

func TestExpenseRepository_GroupOperations(t *testing.T) {
	db := openTestDB(t)
	category := seedCategory(t, db)
	repo := NewExpenseRepository(db)
	groupID := uuid.New()

	// Daily series Jan 1 through Jan 10.
	var expenses []*entity.Expense
	for d := 1; d <= 10; d++ {
		expenses = append(expenses, testExpense(category.ID, time.Date(2024, 1, d, 8, 0, 0, 0, time.UTC), &groupID))
	}
	if err := repo.CreateBatch(context.Background(), expenses); err != nil {
		t.Fatalf("batch create failed: %v", err)
	}

	t.Run("FindByGroup returns instances in date order", func(t *testing.T) {
		found, err := repo.FindByGroup(context.Background(), groupID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(found) != 10 {
			t.Fatalf("found %d instances, want 10", len(found))
		}
		for i := 1; i < len(found); i++ {
			if found[i].Date.Before(found[i-1].Date) {
				t.Fatal("instances not ordered by date")
			}
		}
	})

	t.Run("UpdateGroupFields touches only the window", func(t *testing.T) {
		amount := decimal.NewFromInt(20)
		affected, err := repo.UpdateGroupFields(context.Background(), groupID,
			time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			adapter.GroupFieldUpdate{Amount: &amount})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if affected != 3 {
			t.Errorf("affected %d rows, want 3", affected)
		}

		found, _ := repo.FindByGroup(context.Background(), groupID)
		for _, e := range found {
			inWindow := e.Date.Day() >= 6 && e.Date.Day() <= 8
			if inWindow != e.Amount.Equal(amount) {
				t.Errorf("instance on day %d: amount %s", e.Date.Day(), e.Amount)
			}
		}
	})

	t.Run("DeleteGroupAfter removes strictly later days", func(t *testing.T) {
		deleted, err := repo.DeleteGroupAfter(context.Background(), groupID, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if deleted != 2 {
			t.Errorf("deleted %d rows, want 2", deleted)
		}
	})

	t.Run("DeleteGroupFrom removes the day itself too", func(t *testing.T) {
		deleted, err := repo.DeleteGroupFrom(context.Background(), groupID, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if deleted != 2 {
			t.Errorf("deleted %d rows, want 2", deleted)
		}
		found, _ := repo.FindByGroup(context.Background(), groupID)
		if len(found) != 6 {
			t.Errorf("remaining %d instances, want 6", len(found))
		}
	})
}

func TestExpenseRepository_FindByDateRangePreloadsTaxonomy(t *testing.T) {
	db := openTestDB(t)
	category := seedCategory(t, db)
	repo := NewExpenseRepository(db)

	e := testExpense(category.ID, time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), nil)
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByDateRange(context.Background(),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("found %d expenses, want 1", len(found))
	}
	if found[0].Category == nil || found[0].Category.Name != "Food" {
		t.Errorf("category not preloaded: %+v", found[0].Category)
	}
}

func TestCategoryRepository_DeleteCascades(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)

	c := entity.NewCategory("Parent", "#123456", "star")
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	s := entity.NewSubCategory("Child", c.ID)
	if err := repo.CreateSubCategory(context.Background(), s); err != nil {
		t.Fatalf("create subcategory failed: %v", err)
	}

	if err := repo.Delete(context.Background(), c.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	found, err := repo.FindSubCategoryByID(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found != nil {
		t.Error("subcategory survived the cascade")
	}
}

func TestPlanRepository_ReplaceBreakdowns(t *testing.T) {
	db := openTestDB(t)
	repo := NewPlanRepository(db)

	p := entity.NewFinancialPlan("plan", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 2, decimal.NewFromInt(1000), "EUR")
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	rows := []*entity.PlanMonthlyBreakdown{
		{ID: uuid.New(), PlanID: p.ID, MonthIndex: 0, ProjectedIncome: decimal.NewFromInt(1000), NetAmount: decimal.NewFromInt(600), CumulativeNet: decimal.NewFromInt(600)},
		{ID: uuid.New(), PlanID: p.ID, MonthIndex: 1, ProjectedIncome: decimal.NewFromInt(1000), NetAmount: decimal.NewFromInt(600), CumulativeNet: decimal.NewFromInt(1200)},
	}
	if err := repo.ReplaceBreakdowns(context.Background(), p.ID, rows); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	// Replacing again must not accumulate rows.
	if err := repo.ReplaceBreakdowns(context.Background(), p.ID, rows[:1]); err != nil {
		t.Fatalf("second replace failed: %v", err)
	}
	found, err := repo.FindBreakdowns(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("found %d rows, want 1", len(found))
	}
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	category := seedCategory(t, db)
	repo := NewExpenseRepository(db)
	txManager := NewTxManager(db)

	e := testExpense(category.ID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil)
	err := txManager.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if err := repo.Create(ctx, e); err != nil {
			return err
		}
		return context.Canceled // force a rollback
	})
	if err == nil {
		t.Fatal("expected the transaction to fail")
	}

	if _, err := repo.FindByID(context.Background(), e.ID); err == nil {
		t.Error("expense survived a rolled back transaction")
	}
}

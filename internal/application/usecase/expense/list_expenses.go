// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/recurrence"
	"github.com/pennywise/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses in a date range.
type ListExpensesInput struct {
	StartDate  time.Time
	EndDate    time.Time
	GroupByDay bool
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.ExpenseWithCategory
	Days     []*entity.ExpensesByDay // Populated when GroupByDay is set
	Total    decimal.Decimal
}

// ListExpensesUseCase handles the day/month browsing screens: expenses in a
// date range, optionally grouped by calendar day with daily totals.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves the expenses for the requested range.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	output := &ListExpensesOutput{
		Expenses: expenses,
		Total:    decimal.Zero,
	}
	for _, e := range expenses {
		output.Total = output.Total.Add(e.Expense.Amount)
	}

	if input.GroupByDay {
		output.Days = groupByDay(expenses)
	}

	return output, nil
}

// groupByDay buckets expenses by calendar day, preserving date order.
func groupByDay(expenses []*entity.ExpenseWithCategory) []*entity.ExpensesByDay {
	var days []*entity.ExpensesByDay
	index := make(map[string]*entity.ExpensesByDay)

	for _, e := range expenses {
		day := recurrence.StartOfDay(e.Expense.Date)
		key := day.Format("2006-01-02")

		bucket, ok := index[key]
		if !ok {
			bucket = &entity.ExpensesByDay{Date: day, Total: decimal.Zero}
			index[key] = bucket
			days = append(days, bucket)
		}
		bucket.Expenses = append(bucket.Expenses, e)
		bucket.Total = bucket.Total.Add(e.Expense.Amount)
	}

	return days
}

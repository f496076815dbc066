// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 255

// AddExpenseInput represents the input for expense creation.
type AddExpenseInput struct {
	Amount            decimal.Decimal
	Currency          string
	CategoryID        uuid.UUID
	SubCategoryID     *uuid.UUID
	Description       string
	Date              time.Time
	ExchangeRate      *decimal.Decimal
	RecurrenceType    entity.RecurrenceType
	RecurrenceEndDate *time.Time
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Expenses []*ExpenseOutput // One element for single expenses, N for recurring
}

// AddExpenseUseCase handles expense creation, expanding recurring templates
// into concrete instances inside a single transaction.
type AddExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	preferences  adapter.PreferencesGateway
	txManager    adapter.TxManager
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	preferences adapter.PreferencesGateway,
	txManager adapter.TxManager,
) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		preferences:  preferences,
		txManager:    txManager,
	}
}

// Execute performs the expense creation.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrExpenseDescriptionTooLong,
		)
	}

	if !entity.IsValidRecurrenceType(input.RecurrenceType) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidRecurrenceType,
			"recurrence type must be 'none', 'daily', 'weekdays', 'weekly' or 'monthly'",
			domainerror.ErrInvalidRecurrenceType,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryNotFound,
			"category not found",
			domainerror.ErrExpenseCategoryNotFound,
		)
	}

	template := entity.NewExpense(
		input.Amount,
		input.Currency,
		input.CategoryID,
		input.SubCategoryID,
		input.Description,
		input.Date,
		input.RecurrenceType,
		input.RecurrenceEndDate,
	)
	template.ExchangeRate = input.ExchangeRate

	// Snapshot the limits in effect right now. The snapshot is informational
	// only; a missing preferences store must not block the write.
	if prefs, err := uc.preferences.Get(ctx); err != nil {
		slog.Debug("Failed to read preferences for limit snapshot", "error", err)
	} else {
		template.DailyLimitAtCreation = prefs.DailyLimit
		template.MonthlyLimitAtCreation = prefs.MonthlyLimit
		if template.Currency == "" {
			template.Currency = prefs.DefaultCurrency
		}
	}

	if !template.IsRecurring() {
		if err := uc.expenseRepo.Create(ctx, template); err != nil {
			return nil, fmt.Errorf("failed to create expense: %w", err)
		}
		return &AddExpenseOutput{Expenses: []*ExpenseOutput{ToExpenseOutput(template)}}, nil
	}

	instances, err := ExpandNew(template)
	if err != nil {
		return nil, err
	}

	// A WEEKDAYS template whose whole range falls on a weekend expands to
	// nothing; that is a valid empty series.
	if len(instances) > 0 {
		err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
			return uc.expenseRepo.CreateBatch(ctx, instances)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to materialize recurring expense: %w", err)
		}

		slog.Debug("Materialized recurring expense",
			"groupID", instances[0].RecurrenceGroupID,
			"recurrenceType", template.RecurrenceType,
			"instances", len(instances),
		)
	}

	output := &AddExpenseOutput{Expenses: make([]*ExpenseOutput, len(instances))}
	for i, instance := range instances {
		output.Expenses[i] = ToExpenseOutput(instance)
	}
	return output, nil
}

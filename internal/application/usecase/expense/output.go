// Package expense contains expense-related use cases.
package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// ExpenseOutput represents an expense returned by expense use cases.
type ExpenseOutput struct {
	ID                     uuid.UUID
	Amount                 decimal.Decimal
	Currency               string
	CategoryID             uuid.UUID
	SubCategoryID          *uuid.UUID
	Description            string
	Date                   time.Time
	DailyLimitAtCreation   decimal.Decimal
	MonthlyLimitAtCreation decimal.Decimal
	ExchangeRate           *decimal.Decimal
	RecurrenceType         entity.RecurrenceType
	RecurrenceEndDate      *time.Time
	RecurrenceGroupID      *uuid.UUID
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// ToExpenseOutput converts a domain Expense entity to an ExpenseOutput.
func ToExpenseOutput(e *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:                     e.ID,
		Amount:                 e.Amount,
		Currency:               e.Currency,
		CategoryID:             e.CategoryID,
		SubCategoryID:          e.SubCategoryID,
		Description:            e.Description,
		Date:                   e.Date,
		DailyLimitAtCreation:   e.DailyLimitAtCreation,
		MonthlyLimitAtCreation: e.MonthlyLimitAtCreation,
		ExchangeRate:           e.ExchangeRate,
		RecurrenceType:         e.RecurrenceType,
		RecurrenceEndDate:      e.RecurrenceEndDate,
		RecurrenceGroupID:      e.RecurrenceGroupID,
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurrenceType represents how an expense repeats over time.
type RecurrenceType string

const (
	RecurrenceNone     RecurrenceType = "none"
	RecurrenceDaily    RecurrenceType = "daily"
	RecurrenceWeekdays RecurrenceType = "weekdays"
	RecurrenceWeekly   RecurrenceType = "weekly"
	RecurrenceMonthly  RecurrenceType = "monthly"
)

// IsValidRecurrenceType reports whether the given recurrence type is known.
func IsValidRecurrenceType(t RecurrenceType) bool {
	switch t {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekdays, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Expense represents a single monetary event in the Pennywise system.
// Recurring templates are eagerly materialized: every occurrence is stored as
// its own Expense row, sharing a RecurrenceGroupID with its siblings. Each
// instance is independently addressable; bulk group operations only touch
// instances dated today or later.
type Expense struct {
	ID            uuid.UUID
	Amount        decimal.Decimal // Always positive
	Currency      string
	CategoryID    uuid.UUID
	SubCategoryID *uuid.UUID
	Description   string
	Date          time.Time // Date+time this occurrence is active

	// Limits in effect when the expense was created (informational only).
	DailyLimitAtCreation   decimal.Decimal
	MonthlyLimitAtCreation decimal.Decimal

	// Exchange rate to the default currency, consulted at display time.
	ExchangeRate *decimal.Decimal

	RecurrenceType    RecurrenceType
	RecurrenceEndDate *time.Time
	RecurrenceGroupID *uuid.UUID // Shared by all instances of one template

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	amount decimal.Decimal,
	currency string,
	categoryID uuid.UUID,
	subCategoryID *uuid.UUID,
	description string,
	date time.Time,
	recurrenceType RecurrenceType,
	recurrenceEndDate *time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:                uuid.New(),
		Amount:            amount,
		Currency:          currency,
		CategoryID:        categoryID,
		SubCategoryID:     subCategoryID,
		Description:       description,
		Date:              date,
		RecurrenceType:    recurrenceType,
		RecurrenceEndDate: recurrenceEndDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// IsRecurring reports whether this expense belongs to a recurring series.
func (e *Expense) IsRecurring() bool {
	return e.RecurrenceType != RecurrenceNone && e.RecurrenceType != ""
}

// AmountIn returns the expense amount expressed in the given currency.
// If the expense is already in that currency the amount is returned as-is;
// otherwise the stored exchange rate is applied. With no rate available the
// raw amount is returned unchanged (display-time concern, never an error).
func (e *Expense) AmountIn(currency string) decimal.Decimal {
	if e.Currency == currency {
		return e.Amount
	}
	if e.ExchangeRate != nil {
		return e.Amount.Mul(*e.ExchangeRate)
	}
	return e.Amount
}

// ExpenseWithCategory represents an expense with its resolved taxonomy.
type ExpenseWithCategory struct {
	Expense     *Expense
	Category    *Category
	SubCategory *SubCategory
}

// ExpensesByDay represents expenses grouped by calendar day.
type ExpensesByDay struct {
	Date     time.Time
	Expenses []*ExpenseWithCategory
	Total    decimal.Decimal
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	GroupByDay bool
}

// GroupFieldUpdate carries the mutable display fields applied across a
// recurrence group. Nil pointers leave the field untouched.
type GroupFieldUpdate struct {
	Amount            *decimal.Decimal
	Description       *string
	ExchangeRate      *decimal.Decimal
	RecurrenceEndDate *time.Time
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// CreateBatch creates multiple expenses in a single operation.
	CreateBatch(ctx context.Context, expenses []*entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByGroup retrieves all instances of a recurrence group ordered by date.
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Expense, error)

	// FindByDateRange retrieves expenses with date in [start, end], with taxonomy.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.ExpenseWithCategory, error)

	// FindAll retrieves the full expense history ordered by date.
	FindAll(ctx context.Context) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// UpdateGroupFields applies the given field updates to every instance of
	// the group whose date falls in [from, to]. Returns the affected count.
	UpdateGroupFields(ctx context.Context, groupID uuid.UUID, from, to time.Time, update GroupFieldUpdate) (int64, error)

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteGroupAfter removes every instance of the group dated strictly
	// after the given date. Returns the deleted count.
	DeleteGroupAfter(ctx context.Context, groupID uuid.UUID, after time.Time) (int64, error)

	// DeleteGroupFrom removes every instance of the group dated on or after
	// the given date. Returns the deleted count.
	DeleteGroupFrom(ctx context.Context, groupID uuid.UUID, from time.Time) (int64, error)
}

// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/recurrence"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// UpdateFutureOccurrencesInput represents a group-wide edit applied to every
// instance dated today or later. Instances before today are excluded by
// convention, never mutated implicitly.
type UpdateFutureOccurrencesInput struct {
	GroupID      uuid.UUID
	Amount       *decimal.Decimal
	Description  *string
	ExchangeRate *decimal.Decimal
}

// UpdateFutureOccurrencesOutput reports how many instances were updated.
type UpdateFutureOccurrencesOutput struct {
	Updated int64
}

// UpdateFutureOccurrencesUseCase handles the "update all future occurrences"
// bulk operation on a recurrence group.
type UpdateFutureOccurrencesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewUpdateFutureOccurrencesUseCase creates a new UpdateFutureOccurrencesUseCase instance.
func NewUpdateFutureOccurrencesUseCase(expenseRepo adapter.ExpenseRepository, clock adapter.Clock) *UpdateFutureOccurrencesUseCase {
	return &UpdateFutureOccurrencesUseCase{
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute applies the edit to all instances dated on or after today.
func (uc *UpdateFutureOccurrencesUseCase) Execute(ctx context.Context, input UpdateFutureOccurrencesInput) (*UpdateFutureOccurrencesOutput, error) {
	instances, err := uc.expenseRepo.FindByGroup(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurrence group: %w", err)
	}
	if len(instances) == 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeRecurrenceGroupNotFound,
			"no instances found for recurrence group",
			domainerror.ErrRecurrenceGroupNotFound,
		)
	}

	today := recurrence.StartOfDay(uc.clock.Now())
	farFuture := today.AddDate(100, 0, 0)

	updated, err := uc.expenseRepo.UpdateGroupFields(ctx, input.GroupID, today, farFuture, adapter.GroupFieldUpdate{
		Amount:       input.Amount,
		Description:  input.Description,
		ExchangeRate: input.ExchangeRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update future occurrences: %w", err)
	}

	return &UpdateFutureOccurrencesOutput{Updated: updated}, nil
}

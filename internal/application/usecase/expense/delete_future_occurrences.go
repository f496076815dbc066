// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/recurrence"
)

// DeleteFutureOccurrencesInput represents a group-wide delete of every
// instance dated today or later.
type DeleteFutureOccurrencesInput struct {
	GroupID uuid.UUID
}

// DeleteFutureOccurrencesOutput reports how many instances were deleted.
type DeleteFutureOccurrencesOutput struct {
	Deleted int64
}

// DeleteFutureOccurrencesUseCase handles the "delete from today onward" bulk
// operation on a recurrence group. Past instances are left intact.
type DeleteFutureOccurrencesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewDeleteFutureOccurrencesUseCase creates a new DeleteFutureOccurrencesUseCase instance.
func NewDeleteFutureOccurrencesUseCase(expenseRepo adapter.ExpenseRepository, clock adapter.Clock) *DeleteFutureOccurrencesUseCase {
	return &DeleteFutureOccurrencesUseCase{
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute deletes all instances of the group dated on or after today.
func (uc *DeleteFutureOccurrencesUseCase) Execute(ctx context.Context, input DeleteFutureOccurrencesInput) (*DeleteFutureOccurrencesOutput, error) {
	today := recurrence.StartOfDay(uc.clock.Now())

	deleted, err := uc.expenseRepo.DeleteGroupFrom(ctx, input.GroupID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to delete future occurrences: %w", err)
	}

	return &DeleteFutureOccurrencesOutput{Deleted: deleted}, nil
}

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
	"github.com/pennywise/backend/internal/application/usecase/recurrence"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// ReconcileEndDateInput represents an edit to a live recurring series: a new
// end date plus the mutable display fields to propagate.
type ReconcileEndDateInput struct {
	GroupID      uuid.UUID
	OldEndDate   time.Time // The end date the series was materialized with
	NewEndDate   time.Time
	Amount       decimal.Decimal
	Description  string
	ExchangeRate *decimal.Decimal
}

// ReconcileEndDateOutput reports what the reconciliation changed.
type ReconcileEndDateOutput struct {
	Deleted int64
	Updated int64
	Created int
}

// ReconcileEndDateUseCase re-synchronizes a materialized recurring series
// after its end date changes. Instances dated strictly before today are
// historical records and are never touched: past spending already happened
// and must not retroactively change.
type ReconcileEndDateUseCase struct {
	expenseRepo adapter.ExpenseRepository
	txManager   adapter.TxManager
	clock       adapter.Clock
}

// NewReconcileEndDateUseCase creates a new ReconcileEndDateUseCase instance.
func NewReconcileEndDateUseCase(
	expenseRepo adapter.ExpenseRepository,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *ReconcileEndDateUseCase {
	return &ReconcileEndDateUseCase{
		expenseRepo: expenseRepo,
		txManager:   txManager,
		clock:       clock,
	}
}

// Execute performs the end-date reconciliation inside a single transaction.
func (uc *ReconcileEndDateUseCase) Execute(ctx context.Context, input ReconcileEndDateInput) (*ReconcileEndDateOutput, error) {
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

	// The earliest instance anchors the recurrence rule. The old end date is
	// caller-supplied: past instances keep the end date they were
	// materialized with, so it cannot be read back reliably from the group.
	anchor := instances[0]
	oldEnd := recurrence.StartOfDay(input.OldEndDate)
	newEnd := recurrence.StartOfDay(input.NewEndDate)
	today := recurrence.StartOfDay(uc.clock.Now())

	if newEnd.Before(recurrence.StartOfDay(anchor.Date)) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidRecurrenceEndDate,
			"new end date precedes the series start date",
			domainerror.ErrInvalidRecurrenceEndDate,
		)
	}

	output := &ReconcileEndDateOutput{}
	update := adapter.GroupFieldUpdate{
		Amount:            &input.Amount,
		Description:       &input.Description,
		ExchangeRate:      input.ExchangeRate,
		RecurrenceEndDate: &newEnd,
	}

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		switch {
		case newEnd.Before(oldEnd):
			// Shrinking: drop everything past the new end, then refresh the
			// surviving future-or-today instances.
			deleted, err := uc.expenseRepo.DeleteGroupAfter(ctx, input.GroupID, newEnd)
			if err != nil {
				return err
			}
			output.Deleted = deleted

			updated, err := uc.expenseRepo.UpdateGroupFields(ctx, input.GroupID, today, newEnd, update)
			if err != nil {
				return err
			}
			output.Updated = updated

		case newEnd.After(oldEnd):
			// Growing: refresh existing future-or-today instances, then fill
			// (oldEnd, newEnd] with occurrences that do not already exist.
			updated, err := uc.expenseRepo.UpdateGroupFields(ctx, input.GroupID, today, oldEnd, update)
			if err != nil {
				return err
			}
			output.Updated = updated

			created, err := uc.growSeries(ctx, instances, anchor, oldEnd, newEnd, input)
			if err != nil {
				return err
			}
			output.Created = created

		default:
			// Unchanged end date: only the mutable display fields move.
			updated, err := uc.expenseRepo.UpdateGroupFields(ctx, input.GroupID, today, newEnd, update)
			if err != nil {
				return err
			}
			output.Updated = updated
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile recurrence group: %w", err)
	}

	slog.Debug("Reconciled recurring series end date",
		"groupID", input.GroupID,
		"oldEnd", oldEnd.Format("2006-01-02"),
		"newEnd", newEnd.Format("2006-01-02"),
		"deleted", output.Deleted,
		"updated", output.Updated,
		"created", output.Created,
	)

	return output, nil
}

// growSeries materializes the occurrences in (oldEnd, newEnd], deduplicating
// by date within the group. The evaluator runs in its end-date-ignoring
// variant: the stale end date must not veto the newly opened window.
func (uc *ReconcileEndDateUseCase) growSeries(
	ctx context.Context,
	instances []*entity.Expense,
	anchor *entity.Expense,
	oldEnd, newEnd time.Time,
	input ReconcileEndDateInput,
) (int, error) {
	existing := make(map[string]struct{}, len(instances))
	for _, instance := range instances {
		existing[recurrence.StartOfDay(instance.Date).Format("2006-01-02")] = struct{}{}
	}

	template := *anchor
	template.Amount = input.Amount
	template.Description = input.Description
	template.ExchangeRate = input.ExchangeRate

	var created []*entity.Expense
	for day := oldEnd.AddDate(0, 0, 1); !day.After(newEnd); day = day.AddDate(0, 0, 1) {
		if !recurrence.IsActiveIgnoringEnd(&template, day) {
			continue
		}
		if _, ok := existing[day.Format("2006-01-02")]; ok {
			continue
		}
		created = append(created, materializeInstance(&template, anchor.RecurrenceGroupID, &newEnd, day))
	}

	if len(created) == 0 {
		return 0, nil
	}
	if err := uc.expenseRepo.CreateBatch(ctx, created); err != nil {
		return 0, err
	}
	return len(created), nil
}

package expense

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/recurrence"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// fakeExpenseRepository is an in-memory adapter.ExpenseRepository for unit
// tests of the materialization and reconciliation engines.
type fakeExpenseRepository struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	clone := *expense
	r.expenses[expense.ID] = &clone
	return nil
}

func (r *fakeExpenseRepository) CreateBatch(ctx context.Context, expenses []*entity.Expense) error {
	for _, e := range expenses {
		if err := r.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *fakeExpenseRepository) FindByGroup(_ context.Context, groupID uuid.UUID) ([]*entity.Expense, error) {
	var result []*entity.Expense
	for _, e := range r.expenses {
		if e.RecurrenceGroupID != nil && *e.RecurrenceGroupID == groupID {
			clone := *e
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *fakeExpenseRepository) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.ExpenseWithCategory, error) {
	var result []*entity.ExpenseWithCategory
	for _, e := range r.expenses {
		if !e.Date.Before(start) && !e.Date.After(end) {
			clone := *e
			result = append(result, &entity.ExpenseWithCategory{Expense: &clone})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Expense.Date.Before(result[j].Expense.Date) })
	return result, nil
}

func (r *fakeExpenseRepository) FindAll(_ context.Context) ([]*entity.Expense, error) {
	var result []*entity.Expense
	for _, e := range r.expenses {
		clone := *e
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *fakeExpenseRepository) Update(_ context.Context, expense *entity.Expense) error {
	if _, ok := r.expenses[expense.ID]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	clone := *expense
	r.expenses[expense.ID] = &clone
	return nil
}

func (r *fakeExpenseRepository) UpdateGroupFields(_ context.Context, groupID uuid.UUID, from, to time.Time, update adapter.GroupFieldUpdate) (int64, error) {
	var count int64
	for _, e := range r.expenses {
		if e.RecurrenceGroupID == nil || *e.RecurrenceGroupID != groupID {
			continue
		}
		day := recurrence.StartOfDay(e.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		if update.Amount != nil {
			e.Amount = *update.Amount
		}
		if update.Description != nil {
			e.Description = *update.Description
		}
		if update.ExchangeRate != nil {
			e.ExchangeRate = update.ExchangeRate
		}
		if update.RecurrenceEndDate != nil {
			end := *update.RecurrenceEndDate
			e.RecurrenceEndDate = &end
		}
		count++
	}
	return count, nil
}

func (r *fakeExpenseRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.expenses[id]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepository) DeleteGroupAfter(_ context.Context, groupID uuid.UUID, after time.Time) (int64, error) {
	var count int64
	for id, e := range r.expenses {
		if e.RecurrenceGroupID != nil && *e.RecurrenceGroupID == groupID && recurrence.StartOfDay(e.Date).After(after) {
			delete(r.expenses, id)
			count++
		}
	}
	return count, nil
}

func (r *fakeExpenseRepository) DeleteGroupFrom(_ context.Context, groupID uuid.UUID, from time.Time) (int64, error) {
	var count int64
	for id, e := range r.expenses {
		if e.RecurrenceGroupID != nil && *e.RecurrenceGroupID == groupID && !recurrence.StartOfDay(e.Date).Before(from) {
			delete(r.expenses, id)
			count++
		}
	}
	return count, nil
}

// groupDates returns the sorted date-set of a group, formatted as YYYY-MM-DD.
func (r *fakeExpenseRepository) groupDates(groupID uuid.UUID) []string {
	var dates []string
	for _, e := range r.expenses {
		if e.RecurrenceGroupID != nil && *e.RecurrenceGroupID == groupID {
			dates = append(dates, recurrence.StartOfDay(e.Date).Format("2006-01-02"))
		}
	}
	sort.Strings(dates)
	return dates
}

// fakeTxManager runs the function directly; unit tests assert semantics, not
// transactional isolation.
type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeClock returns a fixed instant.
type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

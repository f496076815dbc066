package plan

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// fakePlanRepository is an in-memory adapter.PlanRepository for unit tests.
type fakePlanRepository struct {
	plans      map[uuid.UUID]*entity.FinancialPlan
	breakdowns map[uuid.UUID][]*entity.PlanMonthlyBreakdown
}

func newFakePlanRepository() *fakePlanRepository {
	return &fakePlanRepository{
		plans:      make(map[uuid.UUID]*entity.FinancialPlan),
		breakdowns: make(map[uuid.UUID][]*entity.PlanMonthlyBreakdown),
	}
}

func (r *fakePlanRepository) Create(_ context.Context, p *entity.FinancialPlan) error {
	clone := *p
	r.plans[p.ID] = &clone
	return nil
}

func (r *fakePlanRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.FinancialPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakePlanRepository) FindAll(_ context.Context) ([]*entity.FinancialPlan, error) {
	out := make([]*entity.FinancialPlan, 0, len(r.plans))
	for _, p := range r.plans {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePlanRepository) Update(_ context.Context, p *entity.FinancialPlan) error {
	clone := *p
	r.plans[p.ID] = &clone
	return nil
}

func (r *fakePlanRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.plans, id)
	delete(r.breakdowns, id)
	return nil
}

func (r *fakePlanRepository) ReplaceBreakdowns(_ context.Context, planID uuid.UUID, rows []*entity.PlanMonthlyBreakdown) error {
	cloned := make([]*entity.PlanMonthlyBreakdown, len(rows))
	for i, row := range rows {
		clone := *row
		cloned[i] = &clone
	}
	r.breakdowns[planID] = cloned
	return nil
}

func (r *fakePlanRepository) FindBreakdowns(_ context.Context, planID uuid.UUID) ([]*entity.PlanMonthlyBreakdown, error) {
	rows := r.breakdowns[planID]
	cloned := make([]*entity.PlanMonthlyBreakdown, len(rows))
	for i, row := range rows {
		clone := *row
		cloned[i] = &clone
	}
	sort.Slice(cloned, func(i, j int) bool { return cloned[i].MonthIndex < cloned[j].MonthIndex })
	return cloned, nil
}

func (r *fakePlanRepository) UpdateBreakdowns(_ context.Context, rows []*entity.PlanMonthlyBreakdown) error {
	for _, row := range rows {
		stored := r.breakdowns[row.PlanID]
		for i, existing := range stored {
			if existing.MonthIndex == row.MonthIndex {
				clone := *row
				stored[i] = &clone
			}
		}
	}
	return nil
}

// fakeExpenseHistory serves FindAll from a fixed slice. The embedded nil
// interface makes the remaining repository methods panic if a test reaches
// them unexpectedly.
type fakeExpenseHistory struct {
	adapter.ExpenseRepository
	expenses []*entity.Expense
}

func (r *fakeExpenseHistory) FindAll(_ context.Context) ([]*entity.Expense, error) {
	return r.expenses, nil
}

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

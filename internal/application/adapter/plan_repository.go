// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// PlanRepository defines the interface for financial plan persistence operations.
type PlanRepository interface {
	// Create creates a new financial plan in the database.
	Create(ctx context.Context, plan *entity.FinancialPlan) error

	// FindByID retrieves a plan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialPlan, error)

	// FindAll retrieves all plans ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.FinancialPlan, error)

	// Update updates an existing plan in the database.
	Update(ctx context.Context, plan *entity.FinancialPlan) error

	// Delete removes a plan and cascades to its breakdown rows.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceBreakdowns deletes all breakdown rows of the plan and inserts
	// the given rows in their place.
	ReplaceBreakdowns(ctx context.Context, planID uuid.UUID, breakdowns []*entity.PlanMonthlyBreakdown) error

	// FindBreakdowns retrieves the plan's breakdown rows ordered by month index.
	FindBreakdowns(ctx context.Context, planID uuid.UUID) ([]*entity.PlanMonthlyBreakdown, error)

	// UpdateBreakdowns persists the given breakdown rows.
	UpdateBreakdowns(ctx context.Context, breakdowns []*entity.PlanMonthlyBreakdown) error
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

// planRepository implements the adapter.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance.
func NewPlanRepository(db *gorm.DB) adapter.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// Create creates a new financial plan in the database.
func (r *planRepository) Create(ctx context.Context, plan *entity.FinancialPlan) error {
	planModel := model.PlanFromEntity(plan)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a plan by its ID. Returns nil when not found.
func (r *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialPlan, error) {
	var planModel model.FinancialPlanModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// FindAll retrieves all plans ordered by creation time.
func (r *planRepository) FindAll(ctx context.Context) ([]*entity.FinancialPlan, error) {
	var planModels []model.FinancialPlanModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Order("created_at ASC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.FinancialPlan, len(planModels))
	for i, pm := range planModels {
		plans[i] = pm.ToEntity()
	}
	return plans, nil
}

// Update updates an existing plan in the database.
func (r *planRepository) Update(ctx context.Context, plan *entity.FinancialPlan) error {
	planModel := model.PlanFromEntity(plan)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Save(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a plan and its breakdown rows.
func (r *planRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).Delete(&model.PlanBreakdownModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FinancialPlanModel{}, "id = ?", id).Error
	})
}

// ReplaceBreakdowns deletes all breakdown rows of the plan and inserts the
// given rows in their place.
func (r *planRepository) ReplaceBreakdowns(ctx context.Context, planID uuid.UUID, breakdowns []*entity.PlanMonthlyBreakdown) error {
	breakdownModels := make([]*model.PlanBreakdownModel, len(breakdowns))
	for i, b := range breakdowns {
		breakdownModels[i] = model.BreakdownFromEntity(b)
	}

	db := dbFromContext(ctx, r.db).WithContext(ctx)
	if err := db.Where("plan_id = ?", planID).Delete(&model.PlanBreakdownModel{}).Error; err != nil {
		return err
	}
	if len(breakdownModels) == 0 {
		return nil
	}
	return db.CreateInBatches(breakdownModels, 100).Error
}

// FindBreakdowns retrieves the plan's breakdown rows ordered by month index.
func (r *planRepository) FindBreakdowns(ctx context.Context, planID uuid.UUID) ([]*entity.PlanMonthlyBreakdown, error) {
	var breakdownModels []model.PlanBreakdownModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("month_index ASC").
		Find(&breakdownModels)
	if result.Error != nil {
		return nil, result.Error
	}

	breakdowns := make([]*entity.PlanMonthlyBreakdown, len(breakdownModels))
	for i, bm := range breakdownModels {
		breakdowns[i] = bm.ToEntity()
	}
	return breakdowns, nil
}

// UpdateBreakdowns persists the given breakdown rows.
func (r *planRepository) UpdateBreakdowns(ctx context.Context, breakdowns []*entity.PlanMonthlyBreakdown) error {
	db := dbFromContext(ctx, r.db).WithContext(ctx)
	for _, b := range breakdowns {
		if err := db.Save(model.BreakdownFromEntity(b)).Error; err != nil {
			return err
		}
	}
	return nil
}

package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates multiple expenses in a single operation.
func (r *expenseRepository) CreateBatch(ctx context.Context, expenses []*entity.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	expenseModels := make([]*model.ExpenseModel, len(expenses))
	for i, e := range expenses {
		expenseModels[i] = model.ExpenseFromEntity(e)
	}
	result := dbFromContext(ctx, r.db).WithContext(ctx).CreateInBatches(expenseModels, 100)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByGroup retrieves all instances of a recurrence group ordered by date.
func (r *expenseRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("recurrence_group_id = ?", groupID).
		Order("date ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// FindByDateRange retrieves expenses with date in [start, end] with their
// taxonomy preloaded.
func (r *expenseRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.ExpenseWithCategory, error) {
	var expenseModels []model.ExpenseModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		Where("date >= ? AND date < ?", startOfDay(start), startOfDay(end).AddDate(0, 0, 1)).
		Order("date ASC, created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.ExpenseWithCategory, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntityWithCategory()
	}
	return expenses, nil
}

// FindAll retrieves the full expense history ordered by date.
func (r *expenseRepository) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Order("date ASC, created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// UpdateGroupFields applies the given field updates to every instance of the
// group dated within [from, to], at day granularity.
func (r *expenseRepository) UpdateGroupFields(ctx context.Context, groupID uuid.UUID, from, to time.Time, update adapter.GroupFieldUpdate) (int64, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.ExchangeRate != nil {
		updates["exchange_rate"] = *update.ExchangeRate
	}
	if update.RecurrenceEndDate != nil {
		updates["recurrence_end_date"] = *update.RecurrenceEndDate
	}

	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("recurrence_group_id = ? AND date >= ? AND date < ?",
			groupID, startOfDay(from), startOfDay(to).AddDate(0, 0, 1)).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// DeleteGroupAfter removes every instance of the group dated strictly after
// the given day.
func (r *expenseRepository) DeleteGroupAfter(ctx context.Context, groupID uuid.UUID, after time.Time) (int64, error) {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("recurrence_group_id = ? AND date >= ?", groupID, startOfDay(after).AddDate(0, 0, 1)).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteGroupFrom removes every instance of the group dated on or after the
// given day.
func (r *expenseRepository) DeleteGroupFrom(ctx context.Context, groupID uuid.UUID, from time.Time) (int64, error) {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("recurrence_group_id = ? AND date >= ?", groupID, startOfDay(from)).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateSubCategory creates a new subcategory in the database.
func (r *categoryRepository) CreateSubCategory(ctx context.Context, subCategory *entity.SubCategory) error {
	subCategoryModel := model.SubCategoryFromEntity(subCategory)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(subCategoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SeedDefaults inserts the given default taxonomy in one transaction.
func (r *categoryRepository) SeedDefaults(ctx context.Context, categories []*entity.Category, subCategories []*entity.SubCategory) error {
	categoryModels := make([]*model.CategoryModel, len(categories))
	for i, c := range categories {
		categoryModels[i] = model.CategoryFromEntity(c)
	}
	subCategoryModels := make([]*model.SubCategoryModel, len(subCategories))
	for i, s := range subCategories {
		subCategoryModels[i] = model.SubCategoryFromEntity(s)
	}

	return dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(categoryModels, 50).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(subCategoryModels, 100).Error
	})
}

// FindByID retrieves a category by its ID. Returns nil when not found.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindSubCategoryByID retrieves a subcategory by its ID. Returns nil when not found.
func (r *categoryRepository) FindSubCategoryByID(ctx context.Context, id uuid.UUID) (*entity.SubCategory, error) {
	var subCategoryModel model.SubCategoryModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&subCategoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return subCategoryModel.ToEntity(), nil
}

// FindAll retrieves all categories with their subcategories.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.CategoryWithSubCategories, error) {
	var categoryModels []model.CategoryModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("SubCategories").
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.CategoryWithSubCategories, len(categoryModels))
	for i, cm := range categoryModels {
		bundle := &entity.CategoryWithSubCategories{
			Category:      cm.ToEntity(),
			SubCategories: make([]*entity.SubCategory, len(cm.SubCategories)),
		}
		for j := range cm.SubCategories {
			bundle.SubCategories[j] = cm.SubCategories[j].ToEntity()
		}
		categories[i] = bundle
	}
	return categories, nil
}

// CountDefaults returns how many seeded default categories exist.
func (r *categoryRepository) CountDefaults(ctx context.Context) (int64, error) {
	var count int64
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("is_default = ?", true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Delete removes a category and its subcategories.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&model.SubCategoryModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CategoryModel{}, "id = ?", id).Error
	})
}

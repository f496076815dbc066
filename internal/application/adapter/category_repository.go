// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// CreateSubCategory creates a new subcategory in the database.
	CreateSubCategory(ctx context.Context, subCategory *entity.SubCategory) error

	// SeedDefaults inserts the given default taxonomy in one operation.
	SeedDefaults(ctx context.Context, categories []*entity.Category, subCategories []*entity.SubCategory) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindSubCategoryByID retrieves a subcategory by its ID.
	FindSubCategoryByID(ctx context.Context, id uuid.UUID) (*entity.SubCategory, error)

	// FindAll retrieves all categories with their subcategories.
	FindAll(ctx context.Context) ([]*entity.CategoryWithSubCategories, error)

	// CountDefaults returns how many seeded default categories exist.
	CountDefaults(ctx context.Context) (int64, error)

	// Delete removes a category and cascades to its subcategories.
	Delete(ctx context.Context, id uuid.UUID) error
}

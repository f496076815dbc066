// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a top-level expense classification.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Icon      string
	IsDefault bool // Part of the seeded default taxonomy
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new custom Category entity.
func NewCategory(name, color, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		IsDefault: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SubCategory represents a second-level classification under a Category.
// Deleting a category cascades to its subcategories.
type SubCategory struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSubCategory creates a new custom SubCategory entity.
func NewSubCategory(name string, categoryID uuid.UUID) *SubCategory {
	now := time.Now().UTC()

	return &SubCategory{
		ID:         uuid.New(),
		Name:       name,
		CategoryID: categoryID,
		IsDefault:  false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CategoryWithSubCategories bundles a category with its subcategories.
type CategoryWithSubCategories struct {
	Category      *Category
	SubCategories []*SubCategory
}

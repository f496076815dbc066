package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Color     string    `gorm:"type:varchar(7)"`
	Icon      string    `gorm:"type:varchar(50)"`
	IsDefault bool      `gorm:"default:false;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	SubCategories []SubCategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		Icon:      m.Icon,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		Icon:      category.Icon,
		IsDefault: category.IsDefault,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// SubCategoryModel represents the sub_categories table in the database.
type SubCategoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(100);not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	IsDefault  bool      `gorm:"default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the SubCategoryModel.
func (SubCategoryModel) TableName() string {
	return "sub_categories"
}

// ToEntity converts a SubCategoryModel to a domain SubCategory entity.
func (m *SubCategoryModel) ToEntity() *entity.SubCategory {
	return &entity.SubCategory{
		ID:         m.ID,
		Name:       m.Name,
		CategoryID: m.CategoryID,
		IsDefault:  m.IsDefault,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// SubCategoryFromEntity creates a SubCategoryModel from a domain SubCategory entity.
func SubCategoryFromEntity(subCategory *entity.SubCategory) *SubCategoryModel {
	return &SubCategoryModel{
		ID:         subCategory.ID,
		Name:       subCategory.Name,
		CategoryID: subCategory.CategoryID,
		IsDefault:  subCategory.IsDefault,
		CreatedAt:  subCategory.CreatedAt,
		UpdatedAt:  subCategory.UpdatedAt,
	}
}

package dto

import (
	"github.com/pennywise/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Color string `json:"color,omitempty" binding:"omitempty,max=7"`
	Icon  string `json:"icon,omitempty" binding:"omitempty,max=50"`
}

// CreateSubCategoryRequest represents the request body for subcategory creation.
type CreateSubCategoryRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	CategoryID string `json:"category_id" binding:"required,uuid"`
}

// SubCategoryResponse represents a subcategory in API responses.
type SubCategoryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	IsDefault  bool   `json:"is_default"`
}

// CategoryResponse represents a category with its subcategories.
type CategoryResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Color         string                 `json:"color,omitempty"`
	Icon          string                 `json:"icon,omitempty"`
	IsDefault     bool                   `json:"is_default"`
	SubCategories []*SubCategoryResponse `json:"sub_categories"`
}

// ToCategoryResponse converts a category bundle to a response DTO.
func ToCategoryResponse(bundle *entity.CategoryWithSubCategories) *CategoryResponse {
	resp := &CategoryResponse{
		ID:            bundle.Category.ID.String(),
		Name:          bundle.Category.Name,
		Color:         bundle.Category.Color,
		Icon:          bundle.Category.Icon,
		IsDefault:     bundle.Category.IsDefault,
		SubCategories: make([]*SubCategoryResponse, len(bundle.SubCategories)),
	}
	for i, s := range bundle.SubCategories {
		resp.SubCategories[i] = &SubCategoryResponse{
			ID:         s.ID.String(),
			Name:       s.Name,
			CategoryID: s.CategoryID.String(),
			IsDefault:  s.IsDefault,
		}
	}
	return resp
}

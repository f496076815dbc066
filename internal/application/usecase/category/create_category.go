package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for creating a custom category.
type CreateCategoryInput struct {
	Name  string
	Color string
	Icon  string
}

// CreateCategoryUseCase handles custom category creation.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeBlankCategoryName,
			"category name must not be blank",
			domainerror.ErrBlankCategoryName,
		)
	}

	c := entity.NewCategory(input.Name, input.Color, input.Icon)
	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return c, nil
}

// CreateSubCategoryInput represents the input for creating a custom subcategory.
type CreateSubCategoryInput struct {
	Name       string
	CategoryID uuid.UUID
}

// CreateSubCategoryUseCase handles custom subcategory creation.
type CreateSubCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateSubCategoryUseCase creates a new CreateSubCategoryUseCase instance.
func NewCreateSubCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateSubCategoryUseCase {
	return &CreateSubCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the subcategory creation. The parent category must exist.
func (uc *CreateSubCategoryUseCase) Execute(ctx context.Context, input CreateSubCategoryInput) (*entity.SubCategory, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeBlankCategoryName,
			"subcategory name must not be blank",
			domainerror.ErrBlankCategoryName,
		)
	}

	parent, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			fmt.Sprintf("category %s not found", input.CategoryID),
			domainerror.ErrCategoryNotFound,
		)
	}

	s := entity.NewSubCategory(input.Name, input.CategoryID)
	if err := uc.categoryRepo.CreateSubCategory(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to create subcategory: %w", err)
	}
	return s, nil
}

package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// DeleteCategoryUseCase handles deletion of custom categories. Seeded default
// categories are immutable; subcategories cascade at the repository level.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	c, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			fmt.Sprintf("category %s not found", id),
			domainerror.ErrCategoryNotFound,
		)
	}
	if c.IsDefault {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeDefaultCategoryImmutable,
			fmt.Sprintf("category %q is part of the default taxonomy", c.Name),
			domainerror.ErrDefaultCategoryImmutable,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	slog.Debug("Deleted category", "categoryID", id, "name", c.Name)
	return nil
}

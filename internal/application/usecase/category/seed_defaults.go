package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// SeedDefaultsUseCase installs the default taxonomy on first run. Calling it
// again is a no-op once any default category exists, so user edits to the
// seeded set are never clobbered.
type SeedDefaultsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultsUseCase creates a new SeedDefaultsUseCase instance.
func NewSeedDefaultsUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultsUseCase {
	return &SeedDefaultsUseCase{categoryRepo: categoryRepo}
}

// Execute seeds the default taxonomy if it is not present yet. It returns the
// number of categories inserted, zero when seeding was skipped.
func (uc *SeedDefaultsUseCase) Execute(ctx context.Context) (int, error) {
	count, err := uc.categoryRepo.CountDefaults(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count default categories: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	categories := make([]*entity.Category, 0, len(defaultTaxonomy))
	var subCategories []*entity.SubCategory
	for _, seed := range defaultTaxonomy {
		c := entity.NewCategory(seed.Name, seed.Color, seed.Icon)
		c.IsDefault = true
		categories = append(categories, c)

		for _, name := range seed.SubCategories {
			s := entity.NewSubCategory(name, c.ID)
			s.IsDefault = true
			subCategories = append(subCategories, s)
		}
	}

	if err := uc.categoryRepo.SeedDefaults(ctx, categories, subCategories); err != nil {
		return 0, fmt.Errorf("failed to seed default taxonomy: %w", err)
	}

	slog.Info("Seeded default taxonomy",
		"categories", len(categories),
		"subCategories", len(subCategories),
	)
	return len(categories), nil
}

package plan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// DeletePlanUseCase handles plan deletion. Breakdown rows cascade with the
// plan at the repository level.
type DeletePlanUseCase struct {
	planRepo adapter.PlanRepository
}

// NewDeletePlanUseCase creates a new DeletePlanUseCase instance.
func NewDeletePlanUseCase(planRepo adapter.PlanRepository) *DeletePlanUseCase {
	return &DeletePlanUseCase{planRepo: planRepo}
}

// Execute performs the plan deletion.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	p, err := uc.planRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domainerror.NewPlanError(
			domainerror.ErrCodePlanNotFound,
			fmt.Sprintf("plan %s not found", id),
			domainerror.ErrPlanNotFound,
		)
	}

	if err := uc.planRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	slog.Debug("Deleted financial plan", "planID", id)
	return nil
}

package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// DeletePlanUseCase removes a plan. Members referencing the deleted plan keep
// their stored plan name; subsequent expiry computations for that name fall
// back to the default term.
type DeletePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo plan.Repository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.planRepo.Delete(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	uc.logger.Infow("plan deleted", "id", id)
	return nil
}

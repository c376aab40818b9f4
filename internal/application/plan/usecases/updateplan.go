package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/plan/dto"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// UpdatePlanUseCase changes a plan's price, duration, features or status.
// The name is the identity members reference and stays immutable. A changed
// duration affects future member creations only; existing expiry dates are
// never recomputed.
type UpdatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, id uint, request dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	p, err := uc.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("plan not found", fmt.Sprintf("id=%d", id))
	}

	var status *plan.Status
	if request.Status != nil {
		parsed := plan.Status(*request.Status)
		if !parsed.IsValid() {
			return nil, errors.NewValidationError("invalid plan status", *request.Status)
		}
		status = &parsed
	}

	if err := p.Update(request.Price, request.Duration, request.Features, status); err != nil {
		return nil, errors.NewValidationError("invalid plan update", err.Error())
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "id", id, "name", p.Name())
	return toPlanResponse(p), nil
}

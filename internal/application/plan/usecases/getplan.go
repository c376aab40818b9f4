package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/plan/dto"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type GetPlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo plan.Repository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, id uint) (*dto.PlanResponse, error) {
	p, err := uc.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("plan not found", fmt.Sprintf("id=%d", id))
	}

	return toPlanResponse(p), nil
}

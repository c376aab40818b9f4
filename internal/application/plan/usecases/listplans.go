package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/plan/dto"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/logger"
)

type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, page, pageSize int) ([]*dto.PlanResponse, int64, error) {
	plans, total, err := uc.planRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	return toPlanResponses(plans), total, nil
}

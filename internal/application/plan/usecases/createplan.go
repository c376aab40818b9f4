package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/plan/dto"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type CreatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, request dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	existing, err := uc.planRepo.GetByName(ctx, request.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing plan: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("plan with this name already exists", request.Name)
	}

	entity, err := plan.NewPlan(request.Name, request.Price, request.Duration, request.Features)
	if err != nil {
		return nil, errors.NewValidationError("invalid plan", err.Error())
	}

	if err := uc.planRepo.Create(ctx, entity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	uc.logger.Infow("plan created", "name", entity.Name(), "duration", entity.Duration())
	return toPlanResponse(entity), nil
}

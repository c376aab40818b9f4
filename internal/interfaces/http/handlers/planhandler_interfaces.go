package handlers

import (
	"context"

	"gymdesk/internal/application/plan/dto"
)

// Use case interfaces for PlanHandler

type createPlanUseCase interface {
	Execute(ctx context.Context, request dto.CreatePlanRequest) (*dto.PlanResponse, error)
}

type getPlanUseCase interface {
	Execute(ctx context.Context, id uint) (*dto.PlanResponse, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context, page, pageSize int) ([]*dto.PlanResponse, int64, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, id uint, request dto.UpdatePlanRequest) (*dto.PlanResponse, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, id uint) error
}

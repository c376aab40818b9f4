package handlers

import (
	"context"

	"gymdesk/internal/application/staff/dto"
)

// Use case interfaces for StaffHandler

type createStaffUseCase interface {
	Execute(ctx context.Context, request dto.CreateStaffRequest) (*dto.StaffResponse, error)
}

type getStaffUseCase interface {
	Execute(ctx context.Context, id uint) (*dto.StaffResponse, error)
}

type listStaffUseCase interface {
	Execute(ctx context.Context, page, pageSize int) ([]*dto.StaffResponse, int64, error)
}

type updateStaffUseCase interface {
	Execute(ctx context.Context, id uint, request dto.UpdateStaffRequest) (*dto.StaffResponse, error)
}

type deleteStaffUseCase interface {
	Execute(ctx context.Context, id uint) error
}

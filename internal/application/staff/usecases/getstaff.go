package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/staff/dto"
	"gymdesk/internal/domain/staff"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type GetStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewGetStaffUseCase(staffRepo staff.Repository, logger logger.Interface) *GetStaffUseCase {
	return &GetStaffUseCase{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

func (uc *GetStaffUseCase) Execute(ctx context.Context, id uint) (*dto.StaffResponse, error) {
	s, err := uc.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("staff not found", fmt.Sprintf("id=%d", id))
	}

	return toStaffResponse(s), nil
}

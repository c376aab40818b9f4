package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/staff/dto"
	"gymdesk/internal/domain/staff"
	"gymdesk/internal/shared/logger"
)

type ListStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewListStaffUseCase(staffRepo staff.Repository, logger logger.Interface) *ListStaffUseCase {
	return &ListStaffUseCase{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

func (uc *ListStaffUseCase) Execute(ctx context.Context, page, pageSize int) ([]*dto.StaffResponse, int64, error) {
	members, total, err := uc.staffRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}

	return toStaffResponses(members), total, nil
}

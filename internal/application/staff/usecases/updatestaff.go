package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/staff/dto"
	"gymdesk/internal/domain/staff"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type UpdateStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewUpdateStaffUseCase(staffRepo staff.Repository, logger logger.Interface) *UpdateStaffUseCase {
	return &UpdateStaffUseCase{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

func (uc *UpdateStaffUseCase) Execute(ctx context.Context, id uint, request dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	s, err := uc.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("staff not found", fmt.Sprintf("id=%d", id))
	}

	var role *staff.Role
	if request.Role != nil {
		parsed := staff.Role(*request.Role)
		if !parsed.IsValid() {
			return nil, errors.NewValidationError("invalid staff role", *request.Role)
		}
		role = &parsed
	}

	var status *staff.Status
	if request.Status != nil {
		parsed := staff.Status(*request.Status)
		if !parsed.IsValid() {
			return nil, errors.NewValidationError("invalid staff status", *request.Status)
		}
		status = &parsed
	}

	if request.Email != nil && *request.Email != "" {
		if err := utils.ValidateEmail(*request.Email); err != nil {
			return nil, err
		}
	}

	if err := s.Update(request.Name, request.Email, request.Phone, role, request.Salary, status); err != nil {
		return nil, errors.NewValidationError("invalid staff update", err.Error())
	}

	if err := uc.staffRepo.Update(ctx, s); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}

	uc.logger.Infow("staff updated", "id", id)
	return toStaffResponse(s), nil
}

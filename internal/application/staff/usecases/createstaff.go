package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/staff/dto"
	"gymdesk/internal/domain/staff"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type CreateStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewCreateStaffUseCase(staffRepo staff.Repository, logger logger.Interface) *CreateStaffUseCase {
	return &CreateStaffUseCase{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

func (uc *CreateStaffUseCase) Execute(ctx context.Context, request dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	role := staff.Role(request.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid staff role", request.Role)
	}

	if request.Email != "" {
		if err := utils.ValidateEmail(request.Email); err != nil {
			return nil, err
		}
	}

	hireDate, err := biztime.ParseDate(request.HireDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid hire date", err.Error())
	}

	entity, err := staff.NewStaff(request.Name, request.Email, request.Phone, role, request.Salary, hireDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid staff", err.Error())
	}

	if err := uc.staffRepo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save staff: %w", err)
	}

	uc.logger.Infow("staff created", "id", entity.ID(), "role", entity.Role())
	return toStaffResponse(entity), nil
}

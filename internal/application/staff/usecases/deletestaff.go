package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/domain/staff"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type DeleteStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewDeleteStaffUseCase(staffRepo staff.Repository, logger logger.Interface) *DeleteStaffUseCase {
	return &DeleteStaffUseCase{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

func (uc *DeleteStaffUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.staffRepo.Delete(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return fmt.Errorf("failed to delete staff: %w", err)
	}

	uc.logger.Infow("staff deleted", "id", id)
	return nil
}

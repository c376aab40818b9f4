package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type DeleteMemberUseCase struct {
	memberRepo member.Repository
	logger     logger.Interface
}

func NewDeleteMemberUseCase(memberRepo member.Repository, logger logger.Interface) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *DeleteMemberUseCase) Execute(ctx context.Context, code string) error {
	if code == "" {
		return errors.NewValidationError("member code is required")
	}

	if err := uc.memberRepo.DeleteByCode(ctx, code); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return fmt.Errorf("failed to delete member: %w", err)
	}

	uc.logger.Infow("member deleted", "code", code)
	return nil
}

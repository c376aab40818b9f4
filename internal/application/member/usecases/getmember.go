package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type GetMemberUseCase struct {
	memberRepo member.Repository
	logger     logger.Interface
}

func NewGetMemberUseCase(memberRepo member.Repository, logger logger.Interface) *GetMemberUseCase {
	return &GetMemberUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *GetMemberUseCase) Execute(ctx context.Context, code string) (*dto.MemberResponse, error) {
	if code == "" {
		return nil, errors.NewValidationError("member code is required")
	}

	m, err := uc.memberRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if m == nil {
		return nil, errors.NewNotFoundError("member not found", code)
	}

	return toMemberResponse(m), nil
}

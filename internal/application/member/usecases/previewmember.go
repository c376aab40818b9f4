package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	vo "gymdesk/internal/domain/member/valueobjects"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// PreviewMemberUseCase computes the code and expiry date a new member would
// receive without persisting anything. The previewed code is provisional: a
// concurrent creation can claim the sequence before the real create runs.
type PreviewMemberUseCase struct {
	memberRepo member.Repository
	expiryCalc *member.ExpiryCalculator
	logger     logger.Interface
}

func NewPreviewMemberUseCase(
	memberRepo member.Repository,
	expiryCalc *member.ExpiryCalculator,
	logger logger.Interface,
) *PreviewMemberUseCase {
	return &PreviewMemberUseCase{
		memberRepo: memberRepo,
		expiryCalc: expiryCalc,
		logger:     logger,
	}
}

func (uc *PreviewMemberUseCase) Execute(ctx context.Context, request dto.PreviewMemberRequest) (*dto.PreviewMemberResponse, error) {
	if request.Plan == "" {
		return nil, errors.NewValidationError("membership plan is required")
	}

	joinDate, err := biztime.ParseDate(request.JoinDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid join date", err.Error())
	}

	count, err := uc.memberRepo.CountJoinedInMonth(ctx, joinDate.Year(), joinDate.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to count members in join month: %w", err)
	}

	expiryDate, err := uc.expiryCalc.ExpiryDate(ctx, joinDate, request.Plan)
	if err != nil {
		return nil, fmt.Errorf("failed to compute expiry date: %w", err)
	}

	return &dto.PreviewMemberResponse{
		Code:       vo.EncodeMemberCode(joinDate, int(count)+1),
		ExpiryDate: biztime.FormatDate(expiryDate),
	}, nil
}

package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	vo "gymdesk/internal/domain/member/valueobjects"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

// UpdateMemberUseCase applies a partial update. The member code, join date
// and expiry date are immutable; changing the plan does not recompute the
// expiry of the already-running term.
type UpdateMemberUseCase struct {
	memberRepo member.Repository
	logger     logger.Interface
}

func NewUpdateMemberUseCase(memberRepo member.Repository, logger logger.Interface) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *UpdateMemberUseCase) Execute(ctx context.Context, code string, request dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
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

	var status *vo.Status
	if request.Status != nil {
		parsed, err := vo.ParseStatus(*request.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid member status", err.Error())
		}
		status = &parsed
	}

	var paymentStatus *vo.PaymentStatus
	if request.PaymentStatus != nil {
		parsed, err := vo.ParsePaymentStatus(*request.PaymentStatus)
		if err != nil {
			return nil, errors.NewValidationError("invalid payment status", err.Error())
		}
		paymentStatus = &parsed
	}

	if request.Email != nil && *request.Email != "" {
		if err := utils.ValidateEmail(*request.Email); err != nil {
			return nil, err
		}
	}

	if err := m.Update(request.Name, request.Email, request.Phone, request.Plan,
		status, paymentStatus, request.PaymentAmount); err != nil {
		return nil, errors.NewValidationError("invalid member update", err.Error())
	}

	if err := uc.memberRepo.Update(ctx, m); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	uc.logger.Infow("member updated", "code", code)
	return toMemberResponse(m), nil
}

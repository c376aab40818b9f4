package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	vo "gymdesk/internal/domain/member/valueobjects"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type ListMembersUseCase struct {
	memberRepo member.Repository
	logger     logger.Interface
}

func NewListMembersUseCase(memberRepo member.Repository, logger logger.Interface) *ListMembersUseCase {
	return &ListMembersUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, query dto.ListMembersQuery) ([]*dto.MemberResponse, int64, error) {
	filter := member.ListFilter{
		PlanName: query.Plan,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.ParseStatus(query.Status)
		if err != nil {
			return nil, 0, errors.NewValidationError("invalid status filter", err.Error())
		}
		filter.Status = status
	}

	if query.PaymentStatus != "" {
		paymentStatus, err := vo.ParsePaymentStatus(query.PaymentStatus)
		if err != nil {
			return nil, 0, errors.NewValidationError("invalid payment status filter", err.Error())
		}
		filter.PaymentStatus = paymentStatus
	}

	members, total, err := uc.memberRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}

	return toMemberResponses(members), total, nil
}

package usecases

import (
	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/shared/biztime"
)

func toMemberResponse(m *member.Member) *dto.MemberResponse {
	return &dto.MemberResponse{
		Code:          m.Code(),
		Name:          m.Name(),
		Email:         m.Email(),
		Phone:         m.Phone(),
		Plan:          m.PlanName(),
		JoinDate:      biztime.FormatDate(m.JoinDate()),
		ExpiryDate:    biztime.FormatDate(m.ExpiryDate()),
		Status:        m.Status().String(),
		PaymentStatus: m.PaymentStatus().String(),
		PaymentAmount: m.PaymentAmount(),
		CreatedAt:     m.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     m.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toMemberResponses(members []*member.Member) []*dto.MemberResponse {
	responses := make([]*dto.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, toMemberResponse(m))
	}
	return responses
}

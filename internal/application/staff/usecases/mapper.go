package usecases

import (
	"gymdesk/internal/application/staff/dto"
	"gymdesk/internal/domain/staff"
	"gymdesk/internal/shared/biztime"
)

func toStaffResponse(s *staff.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:       s.ID(),
		Name:     s.Name(),
		Email:    s.Email(),
		Phone:    s.Phone(),
		Role:     string(s.Role()),
		Salary:   s.Salary(),
		Status:   string(s.Status()),
		HireDate: biztime.FormatDate(s.HireDate()),
	}
}

func toStaffResponses(members []*staff.Staff) []*dto.StaffResponse {
	responses := make([]*dto.StaffResponse, 0, len(members))
	for _, s := range members {
		responses = append(responses, toStaffResponse(s))
	}
	return responses
}

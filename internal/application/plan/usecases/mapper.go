package usecases

import (
	"gymdesk/internal/application/plan/dto"
	"gymdesk/internal/domain/plan"
)

func toPlanResponse(p *plan.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:       p.ID(),
		Name:     p.Name(),
		Price:    p.Price(),
		Duration: p.Duration(),
		Features: p.Features(),
		Status:   string(p.Status()),
	}
}

func toPlanResponses(plans []*plan.Plan) []*dto.PlanResponse {
	responses := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		responses = append(responses, toPlanResponse(p))
	}
	return responses
}

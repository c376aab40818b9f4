// Package dto defines the request and response shapes of the plan API.
package dto

type CreatePlanRequest struct {
	Name     string `json:"name" binding:"required"`
	Price    uint64 `json:"price"`
	Duration string `json:"duration" binding:"required"`
	Features string `json:"features"`
}

type UpdatePlanRequest struct {
	Price    *uint64 `json:"price"`
	Duration *string `json:"duration"`
	Features *string `json:"features"`
	Status   *string `json:"status"`
}

type PlanResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    uint64 `json:"price"`
	Duration string `json:"duration"`
	Features string `json:"features,omitempty"`
	Status   string `json:"status"`
}

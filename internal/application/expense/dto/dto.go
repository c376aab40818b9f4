// Package dto defines the request and response shapes of the expense API.
package dto

type CreateExpenseRequest struct {
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
	Amount      uint64 `json:"amount"`
	IncurredOn  string `json:"incurred_on" binding:"required"`
}

type UpdateExpenseRequest struct {
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Amount      *uint64 `json:"amount"`
	IncurredOn  *string `json:"incurred_on"`
}

type ExpenseResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Amount      uint64 `json:"amount"`
	IncurredOn  string `json:"incurred_on"`
}

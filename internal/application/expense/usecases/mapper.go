package usecases

import (
	"gymdesk/internal/application/expense/dto"
	"gymdesk/internal/domain/expense"
	"gymdesk/internal/shared/biztime"
)

func toExpenseResponse(e *expense.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID(),
		Description: e.Description(),
		Category:    e.Category(),
		Amount:      e.Amount(),
		IncurredOn:  biztime.FormatDate(e.IncurredOn()),
	}
}

func toExpenseResponses(expenses []*expense.Expense) []*dto.ExpenseResponse {
	responses := make([]*dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toExpenseResponse(e))
	}
	return responses
}

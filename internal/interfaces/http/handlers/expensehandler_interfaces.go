package handlers

import (
	"context"

	"gymdesk/internal/application/expense/dto"
)

// Use case interfaces for ExpenseHandler

type createExpenseUseCase interface {
	Execute(ctx context.Context, request dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
}

type listExpensesUseCase interface {
	Execute(ctx context.Context, page, pageSize int) ([]*dto.ExpenseResponse, int64, error)
}

type updateExpenseUseCase interface {
	Execute(ctx context.Context, id uint, request dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error)
}

type deleteExpenseUseCase interface {
	Execute(ctx context.Context, id uint) error
}

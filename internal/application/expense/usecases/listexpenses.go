package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/expense/dto"
	"gymdesk/internal/domain/expense"
	"gymdesk/internal/shared/logger"
)

type ListExpensesUseCase struct {
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewListExpensesUseCase(expenseRepo expense.Repository, logger logger.Interface) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *ListExpensesUseCase) Execute(ctx context.Context, page, pageSize int) ([]*dto.ExpenseResponse, int64, error) {
	expenses, total, err := uc.expenseRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	return toExpenseResponses(expenses), total, nil
}

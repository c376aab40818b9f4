package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/expense/dto"
	"gymdesk/internal/domain/expense"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type CreateExpenseUseCase struct {
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewCreateExpenseUseCase(expenseRepo expense.Repository, logger logger.Interface) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *CreateExpenseUseCase) Execute(ctx context.Context, request dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	incurredOn, err := biztime.ParseDate(request.IncurredOn)
	if err != nil {
		return nil, errors.NewValidationError("invalid expense date", err.Error())
	}

	entity, err := expense.NewExpense(request.Description, request.Category, request.Amount, incurredOn)
	if err != nil {
		return nil, errors.NewValidationError("invalid expense", err.Error())
	}

	if err := uc.expenseRepo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	uc.logger.Infow("expense created", "id", entity.ID(), "amount", entity.Amount())
	return toExpenseResponse(entity), nil
}

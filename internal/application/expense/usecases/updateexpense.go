package usecases

import (
	"context"
	"fmt"
	"time"

	"gymdesk/internal/application/expense/dto"
	"gymdesk/internal/domain/expense"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type UpdateExpenseUseCase struct {
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewUpdateExpenseUseCase(expenseRepo expense.Repository, logger logger.Interface) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, id uint, request dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if e == nil {
		return nil, errors.NewNotFoundError("expense not found", fmt.Sprintf("id=%d", id))
	}

	var incurredOn *time.Time
	if request.IncurredOn != nil {
		parsed, err := biztime.ParseDate(*request.IncurredOn)
		if err != nil {
			return nil, errors.NewValidationError("invalid expense date", err.Error())
		}
		incurredOn = &parsed
	}

	if err := e.Update(request.Description, request.Category, request.Amount, incurredOn); err != nil {
		return nil, errors.NewValidationError("invalid expense update", err.Error())
	}

	if err := uc.expenseRepo.Update(ctx, e); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	uc.logger.Infow("expense updated", "id", id)
	return toExpenseResponse(e), nil
}

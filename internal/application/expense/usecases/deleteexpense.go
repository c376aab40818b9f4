package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/domain/expense"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type DeleteExpenseUseCase struct {
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewDeleteExpenseUseCase(expenseRepo expense.Repository, logger logger.Interface) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	uc.logger.Infow("expense deleted", "id", id)
	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gymdesk/internal/domain/expense"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type ExpenseRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewExpenseRepository(db *gorm.DB, logger logger.Interface) expense.Repository {
	return &ExpenseRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ExpenseRepositoryImpl) Create(ctx context.Context, e *expense.Expense) error {
	model := r.toModel(e)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create expense", "error", err)
		return fmt.Errorf("failed to create expense: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return err
	}
	return nil
}

func (r *ExpenseRepositoryImpl) GetByID(ctx context.Context, id uint) (*expense.Expense, error) {
	var model models.ExpenseModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get expense by ID", "error", err, "expense_id", id)
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return r.toEntity(&model)
}

func (r *ExpenseRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*expense.Expense, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	p := utils.ValidatePagination(page, pageSize)

	var expenseModels []*models.ExpenseModel
	if err := r.db.WithContext(ctx).Order("incurred_on DESC, id DESC").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&expenseModels).Error; err != nil {
		r.logger.Errorw("failed to list expenses", "error", err)
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	entities, err := r.toEntities(expenseModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *ExpenseRepositoryImpl) ListIncurredBetween(ctx context.Context, from, to time.Time) ([]*expense.Expense, error) {
	var expenseModels []*models.ExpenseModel
	if err := r.db.WithContext(ctx).
		Where("incurred_on >= ? AND incurred_on <= ?", from, to).
		Order("incurred_on").
		Find(&expenseModels).Error; err != nil {
		r.logger.Errorw("failed to list expenses in range", "error", err)
		return nil, fmt.Errorf("failed to list expenses in range: %w", err)
	}
	return r.toEntities(expenseModels)
}

func (r *ExpenseRepositoryImpl) Update(ctx context.Context, e *expense.Expense) error {
	result := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).
		Where("id = ?", e.ID()).
		Updates(map[string]interface{}{
			"description": e.Description(),
			"category":    e.Category(),
			"amount":      e.Amount(),
			"incurred_on": datatypes.Date(e.IncurredOn()),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update expense", "error", result.Error, "expense_id", e.ID())
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("expense not found", fmt.Sprintf("id=%d", e.ID()))
	}
	return nil
}

func (r *ExpenseRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpenseModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete expense", "error", result.Error, "expense_id", id)
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("expense not found", fmt.Sprintf("id=%d", id))
	}
	return nil
}

func (r *ExpenseRepositoryImpl) toModel(e *expense.Expense) *models.ExpenseModel {
	return &models.ExpenseModel{
		ID:          e.ID(),
		Description: e.Description(),
		Category:    e.Category(),
		Amount:      e.Amount(),
		IncurredOn:  datatypes.Date(e.IncurredOn()),
	}
}

func (r *ExpenseRepositoryImpl) toEntity(model *models.ExpenseModel) (*expense.Expense, error) {
	e, err := expense.ReconstructExpense(
		model.ID,
		model.Description,
		model.Category,
		model.Amount,
		time.Time(model.IncurredOn),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct expense %d: %w", model.ID, err)
	}
	return e, nil
}

func (r *ExpenseRepositoryImpl) toEntities(expenseModels []*models.ExpenseModel) ([]*expense.Expense, error) {
	entities := make([]*expense.Expense, 0, len(expenseModels))
	for _, model := range expenseModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

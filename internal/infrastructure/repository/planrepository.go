package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymdesk/internal/domain/plan"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan) error {
	model := r.toModel(p)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("plan name already exists", p.Name())
		}
		r.logger.Errorw("failed to create plan", "error", err, "name", p.Name())
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("plan created", "plan_id", model.ID, "name", p.Name())
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return r.toEntity(&model)
}

func (r *PlanRepositoryImpl) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by name", "error", err, "name", name)
		return nil, fmt.Errorf("failed to get plan by name: %w", err)
	}
	return r.toEntity(&model)
}

func (r *PlanRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*plan.Plan, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.PlanModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	p := utils.ValidatePagination(page, pageSize)

	var planModels []*models.PlanModel
	if err := r.db.WithContext(ctx).Order("name").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	entities, err := r.toEntities(planModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *PlanRepositoryImpl) ListAll(ctx context.Context) ([]*plan.Plan, error) {
	var planModels []*models.PlanModel
	if err := r.db.WithContext(ctx).Order("name").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list all plans", "error", err)
		return nil, fmt.Errorf("failed to list all plans: %w", err)
	}
	return r.toEntities(planModels)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, p *plan.Plan) error {
	result := r.db.WithContext(ctx).Model(&models.PlanModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"price":    p.Price(),
			"duration": p.Duration(),
			"features": p.Features(),
			"status":   string(p.Status()),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "error", result.Error, "plan_id", p.ID())
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("plan not found", fmt.Sprintf("id=%d", p.ID()))
	}
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PlanModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("plan not found", fmt.Sprintf("id=%d", id))
	}
	return nil
}

func (r *PlanRepositoryImpl) toModel(p *plan.Plan) *models.PlanModel {
	return &models.PlanModel{
		ID:       p.ID(),
		Name:     p.Name(),
		Price:    p.Price(),
		Duration: p.Duration(),
		Features: p.Features(),
		Status:   string(p.Status()),
	}
}

func (r *PlanRepositoryImpl) toEntity(model *models.PlanModel) (*plan.Plan, error) {
	p, err := plan.ReconstructPlan(
		model.ID,
		model.Name,
		model.Price,
		model.Duration,
		model.Features,
		model.Status,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan %d: %w", model.ID, err)
	}
	return p, nil
}

func (r *PlanRepositoryImpl) toEntities(planModels []*models.PlanModel) ([]*plan.Plan, error) {
	entities := make([]*plan.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

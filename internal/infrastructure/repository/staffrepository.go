package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymdesk/internal/domain/staff"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type StaffRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewStaffRepository(db *gorm.DB, logger logger.Interface) staff.Repository {
	return &StaffRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *StaffRepositoryImpl) Create(ctx context.Context, s *staff.Staff) error {
	model := r.toModel(s)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create staff", "error", err, "name", s.Name())
		return fmt.Errorf("failed to create staff: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("staff created", "staff_id", model.ID, "name", s.Name())
	return nil
}

func (r *StaffRepositoryImpl) GetByID(ctx context.Context, id uint) (*staff.Staff, error) {
	var model models.StaffModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get staff by ID", "error", err, "staff_id", id)
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return r.toEntity(&model)
}

func (r *StaffRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*staff.Staff, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.StaffModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	p := utils.ValidatePagination(page, pageSize)

	var staffModels []*models.StaffModel
	if err := r.db.WithContext(ctx).Order("name").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&staffModels).Error; err != nil {
		r.logger.Errorw("failed to list staff", "error", err)
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}

	entities, err := r.toEntities(staffModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *StaffRepositoryImpl) ListActive(ctx context.Context) ([]*staff.Staff, error) {
	var staffModels []*models.StaffModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(staff.StatusActive)).
		Find(&staffModels).Error; err != nil {
		r.logger.Errorw("failed to list active staff", "error", err)
		return nil, fmt.Errorf("failed to list active staff: %w", err)
	}
	return r.toEntities(staffModels)
}

func (r *StaffRepositoryImpl) Update(ctx context.Context, s *staff.Staff) error {
	result := r.db.WithContext(ctx).Model(&models.StaffModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			"name":   s.Name(),
			"email":  s.Email(),
			"phone":  s.Phone(),
			"role":   string(s.Role()),
			"salary": s.Salary(),
			"status": string(s.Status()),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update staff", "error", result.Error, "staff_id", s.ID())
		return fmt.Errorf("failed to update staff: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("staff not found", fmt.Sprintf("id=%d", s.ID()))
	}
	return nil
}

func (r *StaffRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.StaffModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete staff", "error", result.Error, "staff_id", id)
		return fmt.Errorf("failed to delete staff: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("staff not found", fmt.Sprintf("id=%d", id))
	}
	return nil
}

func (r *StaffRepositoryImpl) toModel(s *staff.Staff) *models.StaffModel {
	return &models.StaffModel{
		ID:       s.ID(),
		Name:     s.Name(),
		Email:    s.Email(),
		Phone:    s.Phone(),
		Role:     string(s.Role()),
		Salary:   s.Salary(),
		Status:   string(s.Status()),
		HireDate: s.HireDate(),
	}
}

func (r *StaffRepositoryImpl) toEntity(model *models.StaffModel) (*staff.Staff, error) {
	s, err := staff.ReconstructStaff(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		staff.Role(model.Role),
		model.Salary,
		staff.Status(model.Status),
		model.HireDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct staff %d: %w", model.ID, err)
	}
	return s, nil
}

func (r *StaffRepositoryImpl) toEntities(staffModels []*models.StaffModel) ([]*staff.Staff, error) {
	entities := make([]*staff.Staff, 0, len(staffModels))
	for _, model := range staffModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

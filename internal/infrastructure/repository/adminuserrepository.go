package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymdesk/internal/domain/adminuser"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type AdminUserRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAdminUserRepository(db *gorm.DB, logger logger.Interface) adminuser.Repository {
	return &AdminUserRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *AdminUserRepositoryImpl) Create(ctx context.Context, u *adminuser.AdminUser) error {
	model := r.toModel(u)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("admin user already exists", u.Email())
		}
		r.logger.Errorw("failed to create admin user", "error", err)
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return err
	}
	return nil
}

func (r *AdminUserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*adminuser.AdminUser, error) {
	var model models.AdminUserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get admin user by email", "error", err)
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return r.toEntity(&model)
}

func (r *AdminUserRepositoryImpl) toModel(u *adminuser.AdminUser) *models.AdminUserModel {
	return &models.AdminUserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
	}
}

func (r *AdminUserRepositoryImpl) toEntity(model *models.AdminUserModel) (*adminuser.AdminUser, error) {
	u, err := adminuser.ReconstructAdminUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct admin user %d: %w", model.ID, err)
	}
	return u, nil
}

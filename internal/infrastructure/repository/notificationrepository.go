package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymdesk/internal/domain/notification"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewNotificationRepository(db *gorm.DB, logger logger.Interface) notification.Repository {
	return &NotificationRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	model := r.toModel(n)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create notification", "error", err)
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return err
	}
	return nil
}

func (r *NotificationRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*notification.Notification, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	p := utils.ValidatePagination(page, pageSize)

	var notificationModels []*models.NotificationModel
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&notificationModels).Error; err != nil {
		r.logger.Errorw("failed to list notifications", "error", err)
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	entities, err := r.toEntities(notificationModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		r.logger.Errorw("failed to mark notification read", "error", result.Error, "notification_id", id)
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification not found", fmt.Sprintf("id=%d", id))
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllRead(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("`read` = ?", false).
		Update("read", true).Error; err != nil {
		r.logger.Errorw("failed to mark all notifications read", "error", err)
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("`read` = ?", false).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count unread notifications", "error", err)
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.NotificationModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete notification", "error", result.Error, "notification_id", id)
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification not found", fmt.Sprintf("id=%d", id))
	}
	return nil
}

func (r *NotificationRepositoryImpl) toModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:       n.ID(),
		Title:    n.Title(),
		Message:  n.Message(),
		Severity: string(n.Severity()),
		Read:     n.IsRead(),
	}
}

func (r *NotificationRepositoryImpl) toEntity(model *models.NotificationModel) (*notification.Notification, error) {
	n, err := notification.ReconstructNotification(
		model.ID,
		model.Title,
		model.Message,
		notification.Severity(model.Severity),
		model.Read,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification %d: %w", model.ID, err)
	}
	return n, nil
}

func (r *NotificationRepositoryImpl) toEntities(notificationModels []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, 0, len(notificationModels))
	for _, model := range notificationModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

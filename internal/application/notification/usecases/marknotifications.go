package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/notification/dto"
	"gymdesk/internal/domain/notification"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type MarkNotificationReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkNotificationReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.notificationRepo.MarkRead(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

type MarkAllNotificationsReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllNotificationsReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkAllNotificationsReadUseCase {
	return &MarkAllNotificationsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllNotificationsReadUseCase) Execute(ctx context.Context) error {
	if err := uc.notificationRepo.MarkAllRead(ctx); err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}

type CountUnreadNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewCountUnreadNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *CountUnreadNotificationsUseCase {
	return &CountUnreadNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *CountUnreadNotificationsUseCase) Execute(ctx context.Context) (*dto.UnreadCountResponse, error) {
	count, err := uc.notificationRepo.CountUnread(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return &dto.UnreadCountResponse{Unread: count}, nil
}

type DeleteNotificationUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewDeleteNotificationUseCase(notificationRepo notification.Repository, logger logger.Interface) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.notificationRepo.Delete(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

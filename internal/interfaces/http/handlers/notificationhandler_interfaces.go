package handlers

import (
	"context"

	"gymdesk/internal/application/notification/dto"
)

// Use case interfaces for NotificationHandler

type listNotificationsUseCase interface {
	Execute(ctx context.Context, page, pageSize int) ([]*dto.NotificationResponse, int64, error)
}

type markNotificationReadUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type markAllNotificationsReadUseCase interface {
	Execute(ctx context.Context) error
}

type countUnreadNotificationsUseCase interface {
	Execute(ctx context.Context) (*dto.UnreadCountResponse, error)
}

type deleteNotificationUseCase interface {
	Execute(ctx context.Context, id uint) error
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"gymdesk/internal/application/notification/dto"
	"gymdesk/internal/domain/notification"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/services/markdown"
)

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	renderer         markdown.MarkdownService
	logger           logger.Interface
}

func NewListNotificationsUseCase(
	notificationRepo notification.Repository,
	renderer markdown.MarkdownService,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		renderer:         renderer,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, page, pageSize int) ([]*dto.NotificationResponse, int64, error) {
	notifications, total, err := uc.notificationRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp := &dto.NotificationResponse{
			ID:        n.ID(),
			Title:     n.Title(),
			Message:   n.Message(),
			Severity:  string(n.Severity()),
			Read:      n.IsRead(),
			CreatedAt: n.CreatedAt().Format(time.RFC3339),
		}

		html, err := uc.renderer.ToHTMLSanitized(n.Message())
		if err != nil {
			uc.logger.Warnw("failed to render notification message", "id", n.ID(), "error", err)
		} else {
			resp.MessageHTML = html
		}

		responses = append(responses, resp)
	}

	return responses, total, nil
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/notification"
	"gymdesk/internal/domain/shared/events"
	"gymdesk/internal/shared/logger"
)

// MemberCreatedHandler persists a back-office notification whenever a member
// is created. It runs on the event dispatcher's handler goroutines; failures
// are logged by the dispatcher and never reach the creation path.
type MemberCreatedHandler struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMemberCreatedHandler(notificationRepo notification.Repository, logger logger.Interface) *MemberCreatedHandler {
	return &MemberCreatedHandler{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (h *MemberCreatedHandler) Handle(event events.DomainEvent) error {
	created, ok := event.(*member.CreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.GetEventType())
	}

	n, err := notification.NewNotification(
		"New member joined",
		fmt.Sprintf("**%s** joined on the *%s* plan (code `%s`).",
			created.MemberName, created.PlanName, created.MemberCode),
		notification.SeveritySuccess,
	)
	if err != nil {
		return fmt.Errorf("failed to build notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.notificationRepo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	h.logger.Debugw("member created notification stored", "member_code", created.MemberCode)
	return nil
}

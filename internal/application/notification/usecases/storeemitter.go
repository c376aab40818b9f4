package usecases

import (
	"context"
	"time"

	"gymdesk/internal/domain/notification"
	"gymdesk/internal/shared/goroutine"
	"gymdesk/internal/shared/logger"
)

// StoreEmitter implements the notification.Emitter port by persisting the
// notification asynchronously. Emit returns immediately; storage failures are
// logged and swallowed so emitting never blocks or fails the caller.
type StoreEmitter struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewStoreEmitter(notificationRepo notification.Repository, logger logger.Interface) *StoreEmitter {
	return &StoreEmitter{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (e *StoreEmitter) Emit(title, message string, severity notification.Severity) {
	n, err := notification.NewNotification(title, message, severity)
	if err != nil {
		e.logger.Warnw("dropping invalid notification", "title", title, "error", err)
		return
	}

	goroutine.SafeGo(e.logger, "notification-emit", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := e.notificationRepo.Create(ctx, n); err != nil {
			e.logger.Warnw("failed to store emitted notification", "title", title, "error", err)
		}
	})
}

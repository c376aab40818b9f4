package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	List(ctx context.Context, page, pageSize int) ([]*Notification, int64, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context) error
	CountUnread(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

// Emitter is the best-effort notification port. Emit must never block the
// caller's success path; failures are logged and swallowed.
type Emitter interface {
	Emit(title, message string, severity Severity)
}

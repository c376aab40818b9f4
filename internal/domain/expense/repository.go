package expense

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e *Expense) error
	GetByID(ctx context.Context, id uint) (*Expense, error)
	List(ctx context.Context, page, pageSize int) ([]*Expense, int64, error)
	// ListIncurredBetween returns expenses with incurred_on in [from, to],
	// used by the dashboard's trailing-window series.
	ListIncurredBetween(ctx context.Context, from, to time.Time) ([]*Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uint) error
}

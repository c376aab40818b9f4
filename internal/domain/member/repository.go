package member

import (
	"context"
	"time"

	vo "gymdesk/internal/domain/member/valueobjects"
)

// ListFilter narrows List queries. Zero values mean "no filter".
type ListFilter struct {
	Status        vo.Status
	PaymentStatus vo.PaymentStatus
	PlanName      string
	Search        string // matches name or phone
	Page          int
	PageSize      int
}

// Repository is the member persistence port. All lookups are keyed by the
// externally visible member code, not the surrogate ID.
type Repository interface {
	// Create persists a new member. A duplicate member code surfaces as a
	// conflict error so the caller can re-allocate the sequence and retry.
	Create(ctx context.Context, m *Member) error

	GetByCode(ctx context.Context, code string) (*Member, error)
	List(ctx context.Context, filter ListFilter) ([]*Member, int64, error)
	ListAll(ctx context.Context) ([]*Member, error)
	Update(ctx context.Context, m *Member) error
	DeleteByCode(ctx context.Context, code string) error

	// CountJoinedInMonth counts members whose join date falls in the given
	// calendar month. The sequence allocator derives the next sequence
	// number from this count at insert time.
	CountJoinedInMonth(ctx context.Context, year int, month time.Month) (int64, error)

	// ListExpiringBetween returns active members whose expiry date falls in
	// [from, to], for the reminder batch.
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]*Member, error)

	// MarkExpiredBefore sets status to expired for active members whose
	// expiry date precedes the cutoff. Returns the number of rows updated.
	MarkExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

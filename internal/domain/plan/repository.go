package plan

import "context"

// Repository is the plan persistence port. GetByName returns (nil, nil) when
// no plan matches; the expiry calculator relies on that to apply its default
// term instead of failing.
type Repository interface {
	Create(ctx context.Context, p *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByName(ctx context.Context, name string) (*Plan, error)
	List(ctx context.Context, page, pageSize int) ([]*Plan, int64, error)
	ListAll(ctx context.Context) ([]*Plan, error)
	Update(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, id uint) error
}

package staff

import "context"

type Repository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id uint) (*Staff, error)
	List(ctx context.Context, page, pageSize int) ([]*Staff, int64, error)
	ListActive(ctx context.Context) ([]*Staff, error)
	Update(ctx context.Context, s *Staff) error
	Delete(ctx context.Context, id uint) error
}

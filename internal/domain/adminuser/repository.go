package adminuser

import "context"

type Repository interface {
	Create(ctx context.Context, u *AdminUser) error
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
}

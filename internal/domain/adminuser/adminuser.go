// Package adminuser contains the back-office operator account used for
// login. There is a single role; authorization is presence of a valid token.
package adminuser

import (
	"fmt"
	"time"
)

type AdminUser struct {
	id           uint
	email        string
	name         string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAdminUser(email, name, passwordHash string) (*AdminUser, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &AdminUser{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAdminUser(id uint, email, name, passwordHash string, createdAt, updatedAt time.Time) (*AdminUser, error) {
	if id == 0 {
		return nil, fmt.Errorf("admin user ID cannot be zero")
	}
	return &AdminUser{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *AdminUser) ID() uint             { return u.id }
func (u *AdminUser) Email() string        { return u.email }
func (u *AdminUser) Name() string         { return u.name }
func (u *AdminUser) PasswordHash() string { return u.passwordHash }
func (u *AdminUser) CreatedAt() time.Time { return u.createdAt }
func (u *AdminUser) UpdatedAt() time.Time { return u.updatedAt }

func (u *AdminUser) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("admin user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("admin user ID cannot be zero")
	}
	u.id = id
	return nil
}

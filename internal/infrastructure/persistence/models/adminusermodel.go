package models

import (
	"time"

	"gorm.io/gorm"

	"gymdesk/internal/shared/constants"
)

type AdminUserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Name         string `gorm:"size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (AdminUserModel) TableName() string {
	return constants.TableAdminUsers
}

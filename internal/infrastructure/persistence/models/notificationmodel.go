package models

import (
	"time"

	"gorm.io/gorm"

	"gymdesk/internal/shared/constants"
)

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text;not null"`
	Severity  string `gorm:"size:20;not null;default:'info'"`
	Read      bool   `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.Severity == "" {
		n.Severity = "info"
	}
	return nil
}

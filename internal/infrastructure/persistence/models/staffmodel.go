package models

import (
	"time"

	"gorm.io/gorm"

	"gymdesk/internal/shared/constants"
)

type StaffModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;size:100"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:32"`
	Role      string `gorm:"not null;size:20;index"`
	Salary    uint64 `gorm:"not null;default:0"`
	Status    string `gorm:"not null;size:20;default:active;index"`
	HireDate  time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (StaffModel) TableName() string {
	return constants.TableStaff
}

func (s *StaffModel) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = "active"
	}
	return nil
}

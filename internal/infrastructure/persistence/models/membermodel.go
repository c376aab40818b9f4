// Package models holds the gorm persistence models. These are the
// anti-corruption layer between the domain aggregates and the database.
package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gymdesk/internal/shared/constants"
)

type MemberModel struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex;not null;size:8"`
	Name string `gorm:"not null;size:100"`
	// Email is optional; phone is the primary contact field.
	Email         string         `gorm:"size:255"`
	Phone         string         `gorm:"not null;size:32"`
	PlanName      string         `gorm:"not null;size:100;index"`
	JoinDate      datatypes.Date `gorm:"not null;index"`
	ExpiryDate    datatypes.Date `gorm:"not null;index"`
	Status        string         `gorm:"not null;size:20;default:active;index"`
	PaymentStatus string         `gorm:"not null;size:20;default:unpaid"`
	PaymentAmount uint64         `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (MemberModel) TableName() string {
	return constants.TableMembers
}

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "active"
	}
	if m.PaymentStatus == "" {
		m.PaymentStatus = "unpaid"
	}
	return nil
}

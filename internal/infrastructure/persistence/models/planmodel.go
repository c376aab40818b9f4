package models

import (
	"time"

	"gorm.io/gorm"

	"gymdesk/internal/shared/constants"
)

type PlanModel struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"uniqueIndex;not null;size:100"`
	Price uint64 `gorm:"not null"`
	// Duration is the free-text descriptor ("3 months", "1 year") that the
	// expiry calculator parses.
	Duration  string `gorm:"not null;size:50"`
	Features  string `gorm:"type:text"`
	Status    string `gorm:"not null;size:20;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}

func (p *PlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = "active"
	}
	return nil
}

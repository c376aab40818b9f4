package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gymdesk/internal/shared/constants"
)

type ExpenseModel struct {
	ID          uint           `gorm:"primaryKey"`
	Description string         `gorm:"not null;size:255"`
	Category    string         `gorm:"size:50;index"`
	Amount      uint64         `gorm:"not null"`
	IncurredOn  datatypes.Date `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ExpenseModel) TableName() string {
	return constants.TableExpenses
}

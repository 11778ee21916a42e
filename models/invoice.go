package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID        uint            `gorm:"primaryKey"`
	ServiceID uint            `gorm:"index;not null"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Date      time.Time       `gorm:"not null"`
	Paid      bool            `gorm:"not null;default:false"`

	CreatedAt time.Time
}

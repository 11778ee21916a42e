package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceStatus tracks where a service order stands. New orders always start
// open; the add-only lifecycle never moves them today.
type ServiceStatus string

const StatusOpen ServiceStatus = "Open"

// Service is a repair order placed for a client account. ClientID goes nil
// when the client is later removed; the order itself stays.
type Service struct {
	ID          uint  `gorm:"primaryKey"`
	ClientID    *uint `gorm:"index"`
	Client      *User `gorm:"foreignKey:ClientID"`
	Description string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Date        time.Time       `gorm:"not null"`
	Status      ServiceStatus   `gorm:"type:varchar(20);not null;default:'Open'"`

	CreatedAt time.Time
}

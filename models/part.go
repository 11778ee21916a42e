package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part is one inventory item, keyed on its unique SKU. Quantity is the units
// on the shelf; the dashboard flags it when stock runs low.
type Part struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	SKU         string          `gorm:"uniqueIndex;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2)"`
	Description string

	CreatedAt time.Time
}

package models

import "time"

// Tool is one piece of workshop equipment, keyed on its unique code.
// Available counts the units not currently in use.
type Tool struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Code        string `gorm:"uniqueIndex;not null"`
	Available   int    `gorm:"not null"`
	Description string

	CreatedAt time.Time
}

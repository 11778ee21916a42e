package models

import "time"

// Role labels the two account types the workflow distinguishes. It is fixed
// at creation time.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // opaque credential, compared only through store.CredentialVerifier
	FullName string `gorm:"not null"`
	Email    string `gorm:"not null"`
	Phone    string `gorm:"not null"`
	Role     Role   `gorm:"type:varchar(20);not null"`
	Photo    string // optional path to an avatar image

	CreatedAt time.Time
}

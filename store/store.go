// Package store is the record store: the single owner of all persisted
// entity state. Every create persists synchronously before returning, and
// listings come back in insertion order.
package store

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Store struct {
	db       *gorm.DB
	validate *validator.Validate
	creds    CredentialVerifier
}

// New wraps an open database handle. A nil verifier gets the plain
// byte-for-byte comparison.
func New(db *gorm.DB, creds CredentialVerifier) *Store {
	if creds == nil {
		creds = PlainVerifier{}
	}
	return &Store{
		db:       db,
		validate: validator.New(),
		creds:    creds,
	}
}

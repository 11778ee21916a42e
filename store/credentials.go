package store

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier compares a candidate password against the stored
// credential. Call sites never compare credentials directly, so a hashed
// scheme can replace the plain one without touching them.
type CredentialVerifier interface {
	Verify(candidate, stored string) bool
}

// PlainVerifier matches the stored credential byte for byte. It is the
// default, and the one the seed accounts work with.
type PlainVerifier struct{}

func (PlainVerifier) Verify(candidate, stored string) bool {
	return candidate == stored
}

// BcryptVerifier expects the stored credential to be a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(candidate, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// HashPassword produces a bcrypt hash suitable for BcryptVerifier.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

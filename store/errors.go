package store

import "errors"

// Failure taxonomy surfaced to the screens. All four are recoverable at the
// screen boundary: the operator sees a message and the screen stays
// interactive.
var (
	ErrValidation   = errors.New("missing or malformed required field")
	ErrDuplicateKey = errors.New("unique key already in use")
	ErrNotFound     = errors.New("referenced record does not exist")
	ErrForbidden    = errors.New("operation not allowed for this account")
)
